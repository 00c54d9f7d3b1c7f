package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/TheNoah-BaseApps/legal-app-new-legal-21211dbc/internal/api/middleware"
	"github.com/TheNoah-BaseApps/legal-app-new-legal-21211dbc/internal/api/response"
	"github.com/TheNoah-BaseApps/legal-app-new-legal-21211dbc/internal/catalog"
	"github.com/TheNoah-BaseApps/legal-app-new-legal-21211dbc/internal/report"
)

// StatsProvider computes the dashboard summary.
type StatsProvider interface {
	Stats(ctx context.Context) (*report.Stats, error)
}

// DashboardHandler serves the dashboard summary and the form vocabularies.
type DashboardHandler struct {
	stats StatsProvider
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(stats StatsProvider) *DashboardHandler {
	return &DashboardHandler{stats: stats}
}

// Stats handles GET /api/dashboard/stats.
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	st, err := h.stats.Stats(r.Context())
	if err != nil {
		slog.Error("failed to compute dashboard stats", "error", err, "requestId", requestID)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch dashboard statistics", requestID)
		return
	}

	response.Success(w, http.StatusOK, st, requestID)
}

// Catalog handles GET /api/catalog.
func (h *DashboardHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, catalog.Vocabularies(), middleware.GetRequestID(r.Context()))
}
