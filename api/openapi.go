// Package api holds the OpenAPI description of the HTTP surface.
package api

import _ "embed"

// OpenAPISpec is the OpenAPI 3 document served at /openapi.json and /openapi.yaml.
//
//go:embed openapi.yaml
var OpenAPISpec []byte
