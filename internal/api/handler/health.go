package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/TheNoah-BaseApps/legal-app-new-legal-21211dbc/internal/api/middleware"
	"github.com/TheNoah-BaseApps/legal-app-new-legal-21211dbc/internal/api/response"
)

const pingTimeout = 2 * time.Second

// DBPinger reports database reachability.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler handles the GET /health endpoint.
type HealthHandler struct {
	db      DBPinger
	version string
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(db DBPinger, version string) *HealthHandler {
	return &HealthHandler{
		db:      db,
		version: version,
	}
}

type databaseStatus struct {
	Connected bool   `json:"connected"`
	LatencyMs *int64 `json:"latencyMs"`
}

type healthData struct {
	Status   string         `json:"status"`
	Version  string         `json:"version"`
	Database databaseStatus `json:"database"`
}

// ServeHTTP handles the health check request. An unreachable database reports
// "degraded" with 503.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	data := healthData{Status: "healthy", Version: h.version}
	status := http.StatusOK

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		slog.Warn("database ping failed", "error", err, "requestId", requestID)
		data.Status = "degraded"
		status = http.StatusServiceUnavailable
	} else {
		latency := time.Since(start).Milliseconds()
		data.Database = databaseStatus{Connected: true, LatencyMs: &latency}
	}

	response.Success(w, status, data, requestID)
}
