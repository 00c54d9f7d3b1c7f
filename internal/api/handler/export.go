package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/TheNoah-BaseApps/legal-app-new-legal-21211dbc/internal/api/middleware"
	"github.com/TheNoah-BaseApps/legal-app-new-legal-21211dbc/internal/api/response"
	"github.com/TheNoah-BaseApps/legal-app-new-legal-21211dbc/internal/report"
)

// Exporter renders bulk exports.
type Exporter interface {
	Export(ctx context.Context, typ, format string) (*report.File, error)
}

// ExportHandler handles GET /api/reports/export.
type ExportHandler struct {
	exporter Exporter
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(exporter Exporter) *ExportHandler {
	return &ExportHandler{exporter: exporter}
}

// ServeHTTP writes the export as an attachment.
func (h *ExportHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	q := r.URL.Query()

	file, err := h.exporter.Export(r.Context(), q.Get("type"), q.Get("format"))
	if err != nil {
		switch {
		case errors.Is(err, report.ErrInvalidType):
			response.Err(w, http.StatusBadRequest, "INVALID_PARAM", "Invalid export type", requestID)
		case errors.Is(err, report.ErrInvalidFormat):
			response.Err(w, http.StatusBadRequest, "INVALID_PARAM", "Invalid format", requestID)
		case errors.Is(err, report.ErrAllRequiresJSON):
			response.Err(w, http.StatusBadRequest, "INVALID_PARAM", `Export type "all" is only available in JSON format`, requestID)
		default:
			slog.Error("failed to export data", "error", err, "requestId", requestID)
			response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to export data", requestID)
		}
		return
	}

	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(file.Body)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(file.Body); err != nil {
		slog.Error("failed to write export response", "error", err, "requestId", requestID)
	}
}
