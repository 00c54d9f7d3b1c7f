package response_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TheNoah-BaseApps/legal-app-new-legal-21211dbc/internal/api/response"
)

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var env map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestNewMeta_GeneratesUUID(t *testing.T) {
	meta := response.NewMeta("")

	_, err := uuid.Parse(meta.RequestID)
	assert.NoError(t, err, "requestId should be a valid UUID")
}

func TestNewMeta_UsesProvidedRequestID(t *testing.T) {
	meta := response.NewMeta("my-custom-request-id")

	assert.Equal(t, "my-custom-request-id", meta.RequestID)
}

func TestNewMeta_TimestampIsRFC3339(t *testing.T) {
	before := time.Now().UTC().Add(-1 * time.Second)

	meta := response.NewMeta("")

	parsed, err := time.Parse(time.RFC3339, meta.Timestamp)
	require.NoError(t, err, "timestamp should be valid RFC3339")
	assert.False(t, parsed.Before(before), "timestamp should be recent")
}

func TestSuccess_WritesEnvelope(t *testing.T) {
	w := httptest.NewRecorder()

	response.Success(w, http.StatusCreated, map[string]string{"key": "value"}, "test-req-id")

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	env := decode(t, w)
	assert.Equal(t, true, env["success"])
	assert.Equal(t, map[string]interface{}{"key": "value"}, env["data"])
	assert.NotContains(t, env, "error")
	assert.NotContains(t, env, "pagination")

	meta := env["meta"].(map[string]interface{})
	assert.Equal(t, "test-req-id", meta["requestId"])
	assert.NotEmpty(t, meta["timestamp"])
}

func TestSuccessList_EmptyPageKeepsData(t *testing.T) {
	w := httptest.NewRecorder()

	response.SuccessList(w, []string{}, response.Pagination{Page: 3, Limit: 10, Total: 0, TotalPages: 0}, "req")

	env := decode(t, w)
	assert.Equal(t, true, env["success"])
	assert.Equal(t, []interface{}{}, env["data"])

	page := env["pagination"].(map[string]interface{})
	assert.Equal(t, float64(3), page["page"])
	assert.Equal(t, float64(10), page["limit"])
	assert.Equal(t, float64(0), page["total"])
	assert.Equal(t, float64(0), page["totalPages"])
}

func TestSuccessMessage(t *testing.T) {
	w := httptest.NewRecorder()

	response.SuccessMessage(w, http.StatusOK, "Case deleted successfully", "req")

	env := decode(t, w)
	assert.Equal(t, true, env["success"])
	assert.Equal(t, "Case deleted successfully", env["message"])
	assert.NotContains(t, env, "data")
}

func TestErr_WritesErrorEnvelope(t *testing.T) {
	w := httptest.NewRecorder()

	response.Err(w, http.StatusNotFound, "NOT_FOUND", "Case not found", "err-req-id")

	assert.Equal(t, http.StatusNotFound, w.Code)

	env := decode(t, w)
	assert.Equal(t, false, env["success"])
	assert.Equal(t, "Case not found", env["error"])
	assert.Equal(t, "NOT_FOUND", env["code"])
	assert.NotContains(t, env, "data")

	meta := env["meta"].(map[string]interface{})
	assert.Equal(t, "err-req-id", meta["requestId"])
}

func TestErrWithDetails_IncludesDetails(t *testing.T) {
	w := httptest.NewRecorder()
	details := []map[string]string{{"field": "email", "message": "email is required"}}

	response.ErrWithDetails(w, http.StatusBadRequest, "VALIDATION_ERROR", "Missing required fields: email", details, "det-req")

	env := decode(t, w)
	assert.Equal(t, false, env["success"])
	assert.Equal(t, "Missing required fields: email", env["error"])

	det := env["details"].([]interface{})
	require.Len(t, det, 1)
	assert.Equal(t, "email", det[0].(map[string]interface{})["field"])
}

func TestJSON_SetsContentTypeAndStatus(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{"200 OK", http.StatusOK},
		{"400 Bad Request", http.StatusBadRequest},
		{"409 Conflict", http.StatusConflict},
		{"500 Internal Server Error", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			response.JSON(w, tt.status, response.Envelope{Meta: response.NewMeta("")})

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
		})
	}
}
