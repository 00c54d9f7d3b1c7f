package api

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"

	"github.com/TheNoah-BaseApps/legal-app-new-legal-21211dbc/internal/api/handler"
	"github.com/TheNoah-BaseApps/legal-app-new-legal-21211dbc/internal/api/middleware"
	"github.com/TheNoah-BaseApps/legal-app-new-legal-21211dbc/internal/record"
)

// loginBurst is how many auth attempts a client may make back to back.
const loginBurst = 5

// AuthService covers account operations and bearer token checks.
type AuthService interface {
	handler.AuthService
	middleware.Authenticator
}

// RouterDeps holds all dependencies needed by the router.
type RouterDeps struct {
	DBPinger    handler.DBPinger
	Version     string
	OpenAPISpec []byte
	AuthService AuthService
	Records     []record.Repository
	Stats       handler.StatsProvider
	Exporter    handler.Exporter
	// LoginRate is the sustained number of register/login calls per minute
	// allowed from one client. Zero disables the limit.
	LoginRate float64
}

// NewRouter creates and configures a Chi router with all middleware and routes.
func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery)
	r.Use(chimiddleware.Logger)

	healthHandler := handler.NewHealthHandler(deps.DBPinger, deps.Version)
	r.Get("/health", healthHandler.ServeHTTP)

	if len(deps.OpenAPISpec) > 0 {
		openapiHandler := handler.NewOpenAPIHandler(deps.OpenAPISpec, deps.Version)
		r.Get("/openapi.json", openapiHandler.ServeHTTP)
		r.Get("/openapi.yaml", openapiHandler.ServeYAML)
	}

	r.Route("/api", func(r chi.Router) {
		authHandler := handler.NewAuthHandler(deps.AuthService)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(rate.Limit(deps.LoginRate/60), loginBurst))
			r.Post("/auth/register", authHandler.Register)
			r.Post("/auth/login", authHandler.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(deps.AuthService))

			r.Get("/auth/me", authHandler.Me)

			for _, repo := range deps.Records {
				h := handler.NewRecordHandler(repo)
				r.Route("/"+repo.Descriptor().Name, h.Routes)
			}

			dashboardHandler := handler.NewDashboardHandler(deps.Stats)
			r.Get("/dashboard/stats", dashboardHandler.Stats)
			r.Get("/catalog", dashboardHandler.Catalog)

			r.Get("/reports/export", handler.NewExportHandler(deps.Exporter).ServeHTTP)
		})
	})

	return r
}
