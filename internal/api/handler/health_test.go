package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TheNoah-BaseApps/legal-app-new-legal-21211dbc/internal/api/handler"
)

type mockPinger struct {
	err error
}

func (m *mockPinger) Ping(context.Context) error { return m.err }

func TestHealthHandler_Healthy(t *testing.T) {
	t.Parallel()

	h := handler.NewHealthHandler(&mockPinger{}, "1.4.0")
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	h.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	env := parseEnvelope(t, w)
	data := env["data"].(map[string]interface{})
	assert.Equal(t, "healthy", data["status"])
	assert.Equal(t, "1.4.0", data["version"])
	db := data["database"].(map[string]interface{})
	assert.Equal(t, true, db["connected"])
	assert.NotNil(t, db["latencyMs"])
}

func TestHealthHandler_Degraded(t *testing.T) {
	t.Parallel()

	h := handler.NewHealthHandler(&mockPinger{err: errors.New("connection refused")}, "1.4.0")
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	data := parseEnvelope(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "degraded", data["status"])
	db := data["database"].(map[string]interface{})
	assert.Equal(t, false, db["connected"])
	assert.Nil(t, db["latencyMs"])
}
