package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/TheNoah-BaseApps/legal-app-new-legal-21211dbc/internal/api/middleware"
	"github.com/TheNoah-BaseApps/legal-app-new-legal-21211dbc/internal/api/response"
	"github.com/TheNoah-BaseApps/legal-app-new-legal-21211dbc/internal/api/validation"
	"github.com/TheNoah-BaseApps/legal-app-new-legal-21211dbc/internal/record"
)

// RecordHandler serves the CRUD endpoints of one record type.
type RecordHandler struct {
	repo  record.Repository
	desc  *record.Descriptor
	title string
}

// NewRecordHandler creates a new RecordHandler for repo.
func NewRecordHandler(repo record.Repository) *RecordHandler {
	d := repo.Descriptor()
	return &RecordHandler{repo: repo, desc: d, title: d.Title()}
}

// Routes mounts the collection, item and scope routes on r.
func (h *RecordHandler) Routes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	for _, s := range h.desc.Scopes {
		r.Get("/"+s.Path+"/{parentId}", h.Scoped(s.Filter))
	}
	r.Get("/{id}", h.GetByID)
	r.Put("/{id}", h.Update)
	r.Patch("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}

// List handles GET /api/{name}.
func (h *RecordHandler) List(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, nil)
}

// Scoped returns a handler for GET /api/{name}/{scope}/{parentId}. The parent id is
// applied as the named filter and overrides any query parameter of the same name.
func (h *RecordHandler) Scoped(filter string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		parentID, err := uuid.Parse(chi.URLParam(r, "parentId"))
		if err != nil {
			response.Err(w, http.StatusBadRequest, "INVALID_ID", "parentId must be a valid UUID", middleware.GetRequestID(r.Context()))
			return
		}
		h.list(w, r, map[string]string{filter: parentID.String()})
	}
}

func (h *RecordHandler) list(w http.ResponseWriter, r *http.Request, fixed map[string]string) {
	requestID := middleware.GetRequestID(r.Context())
	q := r.URL.Query()

	params := record.ListParams{Values: make(map[string]string, len(h.desc.Filters))}
	for _, f := range h.desc.Filters {
		if v := q.Get(f.Param); v != "" {
			params.Values[f.Param] = v
		}
	}
	for k, v := range fixed {
		params.Values[k] = v
	}

	if v := q.Get("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil {
			response.Err(w, http.StatusBadRequest, "INVALID_PARAM", "page must be an integer", requestID)
			return
		}
		params.Page = page
	}
	if v := q.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			response.Err(w, http.StatusBadRequest, "INVALID_PARAM", "limit must be an integer", requestID)
			return
		}
		params.Limit = limit
	}

	result, err := h.repo.List(r.Context(), params)
	if err != nil {
		h.writeError(w, err, "list", requestID)
		return
	}

	response.SuccessList(w, result.Records, response.Pagination{
		Page:       result.Page,
		Limit:      result.Limit,
		Total:      result.Total,
		TotalPages: result.TotalPages,
	}, requestID)
}

// GetByID handles GET /api/{name}/{id}.
func (h *RecordHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	id, ok := parseID(w, r, requestID)
	if !ok {
		return
	}

	rec, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		h.writeError(w, err, "get", requestID)
		return
	}

	response.Success(w, http.StatusOK, rec, requestID)
}

// Create handles POST /api/{name}.
func (h *RecordHandler) Create(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	payload, ok := decodePayload(w, r, requestID)
	if !ok {
		return
	}

	rec, err := h.repo.Create(r.Context(), payload)
	if err != nil {
		h.writeError(w, err, "create", requestID)
		return
	}

	response.Success(w, http.StatusCreated, rec, requestID)
}

// Update handles PUT and PATCH /api/{name}/{id}. Both apply a partial update.
func (h *RecordHandler) Update(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	id, ok := parseID(w, r, requestID)
	if !ok {
		return
	}

	payload, ok := decodePayload(w, r, requestID)
	if !ok {
		return
	}

	rec, err := h.repo.Update(r.Context(), id, payload)
	if err != nil {
		h.writeError(w, err, "update", requestID)
		return
	}

	response.Success(w, http.StatusOK, rec, requestID)
}

// Delete handles DELETE /api/{name}/{id}.
func (h *RecordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	id, ok := parseID(w, r, requestID)
	if !ok {
		return
	}

	if err := h.repo.Delete(r.Context(), id); err != nil {
		h.writeError(w, err, "delete", requestID)
		return
	}

	response.SuccessMessage(w, http.StatusOK, h.title+" deleted successfully", requestID)
}

// writeError maps the record error taxonomy onto HTTP statuses. System errors are
// logged by the repository; their cause never reaches the client.
func (h *RecordHandler) writeError(w http.ResponseWriter, err error, op, requestID string) {
	var (
		verr *record.ValidationError
		cerr *record.ConflictError
	)
	switch {
	case errors.As(err, &verr):
		response.ErrWithDetails(w, http.StatusBadRequest, "VALIDATION_ERROR", verr.Error(), fieldErrors(verr), requestID)
	case errors.Is(err, record.ErrEmptyUpdate):
		response.Err(w, http.StatusBadRequest, "EMPTY_UPDATE", "No fields to update", requestID)
	case errors.Is(err, record.ErrNotFound):
		response.Err(w, http.StatusNotFound, "NOT_FOUND", h.title+" not found", requestID)
	case errors.As(err, &cerr):
		response.Err(w, http.StatusConflict, "CONFLICT", cerr.Reason, requestID)
	default:
		if !errors.Is(err, record.ErrSystem) {
			slog.Error("record handler failed", "error", err, "op", op, "entity", h.desc.Name, "requestId", requestID)
		}
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", fmt.Sprintf("Failed to %s %s", op, h.desc.Label), requestID)
	}
}

func fieldErrors(verr *record.ValidationError) []validation.FieldError {
	if verr.Message == "" {
		return validation.Required(verr.Fields)
	}
	errs := make([]validation.FieldError, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		errs = append(errs, validation.FieldError{Field: f, Message: verr.Message})
	}
	return errs
}

func parseID(w http.ResponseWriter, r *http.Request, requestID string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_ID", "id must be a valid UUID", requestID)
		return uuid.Nil, false
	}
	return id, true
}

func decodePayload(w http.ResponseWriter, r *http.Request, requestID string) (record.Payload, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	var payload record.Payload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_JSON", "Request body must be a valid JSON object", requestID)
		return record.Payload{}, false
	}
	return payload, true
}
