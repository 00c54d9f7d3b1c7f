package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/TheNoah-BaseApps/legal-app-new-legal-21211dbc/internal/api/response"
	"github.com/TheNoah-BaseApps/legal-app-new-legal-21211dbc/internal/auth"
)

const identityKey contextKey = "identity"

// Authenticator resolves a bearer token to an Identity.
type Authenticator interface {
	Authenticate(token string) (*auth.Identity, error)
}

// Auth is middleware that requires an "Authorization: Bearer <token>" header and
// resolves it to an Identity. Missing, malformed or invalid tokens return 401
// before the wrapped handler runs.
func Auth(authenticator Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := GetRequestID(r.Context())

			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || strings.TrimSpace(token) == "" {
				response.Err(w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", requestID)
				return
			}

			identity, err := authenticator.Authenticate(strings.TrimSpace(token))
			if err != nil {
				response.Err(w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", requestID)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
		})
	}
}

// WithIdentity returns a copy of ctx carrying identity.
func WithIdentity(ctx context.Context, identity *auth.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// GetIdentity retrieves the authenticated Identity from the request context.
func GetIdentity(ctx context.Context) *auth.Identity {
	if id, ok := ctx.Value(identityKey).(*auth.Identity); ok {
		return id
	}
	return nil
}
