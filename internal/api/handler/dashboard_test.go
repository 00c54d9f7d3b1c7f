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
	"github.com/TheNoah-BaseApps/legal-app-new-legal-21211dbc/internal/report"
)

type mockStats struct {
	stats *report.Stats
	err   error
}

func (m *mockStats) Stats(context.Context) (*report.Stats, error) { return m.stats, m.err }

func TestDashboardStats_Success(t *testing.T) {
	t.Parallel()

	open := "Open"
	h := handler.NewDashboardHandler(&mockStats{stats: &report.Stats{
		TotalCustomers: 3,
		TotalCases:     5,
		ActiveCases:    2,
		ClosedCases:    2,
		CompletionRate: 40,
		CasesByStatus:  []report.StatusCount{{Status: &open, Count: 2}},
	}})
	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/stats", nil)
	w := httptest.NewRecorder()

	h.Stats(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `"totalCases":5`)
	assert.Contains(t, body, `"completionRate":40`)
}

func TestDashboardStats_Failure(t *testing.T) {
	t.Parallel()

	h := handler.NewDashboardHandler(&mockStats{err: errors.New("timeout")})
	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/stats", nil)
	w := httptest.NewRecorder()

	h.Stats(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	env := parseEnvelope(t, w)
	assert.Equal(t, "Failed to fetch dashboard statistics", env["error"])
}

func TestDashboardCatalog(t *testing.T) {
	t.Parallel()

	h := handler.NewDashboardHandler(&mockStats{})
	req := httptest.NewRequest(http.MethodGet, "/api/catalog", nil)
	w := httptest.NewRecorder()

	h.Catalog(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	data := parseEnvelope(t, w)["data"].(map[string]interface{})
	assert.Equal(t, []interface{}{"Admin", "Attorney", "Paralegal", "Viewer"}, data["userRoles"])
}
