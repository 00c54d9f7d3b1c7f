package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"sigs.k8s.io/yaml"

	"github.com/TheNoah-BaseApps/legal-app-new-legal-21211dbc/internal/api/middleware"
	"github.com/TheNoah-BaseApps/legal-app-new-legal-21211dbc/internal/api/response"
)

// OpenAPIHandler serves the API description as JSON or YAML.
type OpenAPIHandler struct {
	rawYAML  []byte
	version  string
	jsonOnce sync.Once
	jsonSpec []byte
	jsonErr  error
}

// NewOpenAPIHandler creates a handler for yamlSpec. A non-empty version replaces
// info.version in the JSON rendering.
func NewOpenAPIHandler(yamlSpec []byte, version string) *OpenAPIHandler {
	return &OpenAPIHandler{rawYAML: yamlSpec, version: version}
}

// ServeHTTP converts the YAML document to JSON once and writes the cached result.
func (h *OpenAPIHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.jsonOnce.Do(func() {
		h.jsonSpec, h.jsonErr = renderOpenAPI(h.rawYAML, h.version)
	})

	if h.jsonErr != nil {
		slog.Error("failed to convert OpenAPI document to JSON", "error", h.jsonErr)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to convert OpenAPI document", middleware.GetRequestID(r.Context()))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(h.jsonSpec); err != nil {
		slog.Error("failed to write OpenAPI response", "error", err)
	}
}

// ServeYAML writes the document as authored.
func (h *OpenAPIHandler) ServeYAML(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(h.rawYAML); err != nil {
		slog.Error("failed to write OpenAPI response", "error", err)
	}
}

func renderOpenAPI(rawYAML []byte, version string) ([]byte, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(rawYAML, &doc); err != nil {
		return nil, fmt.Errorf("parsing OpenAPI YAML: %w", err)
	}
	if doc == nil {
		return nil, fmt.Errorf("OpenAPI document is empty")
	}

	if version != "" {
		info, _ := doc["info"].(map[string]any)
		if info == nil {
			info = map[string]any{}
		}
		info["version"] = version
		doc["info"] = info
	}

	return json.Marshal(doc)
}
