// Package docs serves the embedded OpenAPI document and a ReDoc page that
// renders it.
package docs

import (
	_ "embed"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Paths the documentation is served on.
const (
	SpecPath = "/openapi.yaml"
	PagePath = "/docs"
)

// OpenAPI contains the embedded OpenAPI YAML document.
//
//go:embed openapi.yaml
var OpenAPI []byte

// Register attaches the documentation routes to r.
//
//	GET /docs          -> ReDoc HTML
//	GET /openapi.yaml  -> embedded OpenAPI document
func Register(r chi.Router) {
	if r == nil {
		panic("router is nil")
	}

	r.Get(PagePath, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(indexHTML))
	})

	r.Get(SpecPath, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml; charset=utf-8")
		_, _ = w.Write(OpenAPI)
	})
}

const indexHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8">
    <title>People API Docs - ReDoc</title>
    <style>body{margin:0;padding:0}</style>
  </head>
  <body>
    <redoc id="redoc-container"></redoc>
    <script src="https://cdn.redoc.ly/redoc/latest/bundles/redoc.standalone.js"></script>
    <script>Redoc.init('/openapi.yaml', { suppressWarnings: true }, document.getElementById('redoc-container'));</script>
  </body>
</html>`
