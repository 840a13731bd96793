// Package docs serves the embedded API schema and its interactive viewer.
// The schema is static data describing the HTTP surface; nothing here is
// generated at build time.
package docs

import (
	_ "embed"
	"net/http"
)

//go:embed openapi.json
var openapiSchema []byte

//go:embed swagger.html
var swaggerPage []byte

// Schema serves the raw OpenAPI document.
func Schema(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write(openapiSchema)
}

// UI serves the interactive documentation page, which renders the schema.
func UI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(swaggerPage)
}
