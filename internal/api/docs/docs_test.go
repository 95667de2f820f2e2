package docs

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type openAPIDoc struct {
	OpenAPI string `yaml:"openapi"`
	Tags    []struct {
		Name string `yaml:"name"`
	} `yaml:"tags"`
	Paths map[string]map[string]struct {
		Tags        []string `yaml:"tags"`
		Summary     string   `yaml:"summary"`
		Description string   `yaml:"description"`
	} `yaml:"paths"`
}

func TestRegister(t *testing.T) {
	r := chi.NewRouter()
	Register(r)

	tests := []struct {
		name        string
		path        string
		contentType string
		contains    string
	}{
		{"docs page", PagePath, "text/html; charset=utf-8", "redoc-container"},
		{"openapi document", SpecPath, "application/yaml; charset=utf-8", "openapi: 3.0.3"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.path, nil))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tc.contentType, rec.Header().Get("Content-Type"))
			assert.Contains(t, rec.Body.String(), tc.contains)
		})
	}
}

func TestRegister_NilRouterPanics(t *testing.T) {
	assert.Panics(t, func() { Register(nil) })
}

func TestOpenAPI_ListsEveryRouteUnderItsTag(t *testing.T) {
	var doc openAPIDoc
	require.NoError(t, yaml.Unmarshal(OpenAPI, &doc))
	assert.Equal(t, "3.0.3", doc.OpenAPI)

	declared := make(map[string]bool)
	for _, tag := range doc.Tags {
		declared[tag.Name] = true
	}
	for _, tag := range []string{"Home", "People", "Contact", "Upload"} {
		assert.True(t, declared[tag], "tag %s should be declared", tag)
	}

	routes := map[string]struct {
		method string
		tag    string
	}{
		"/":                          {"get", "Home"},
		"/person/new":                {"post", "People"},
		"/person/detail":             {"get", "People"},
		"/person/detail/{person_id}": {"get", "People"},
		"/person/{person_id}":        {"put", "People"},
		"/login":                     {"post", "Contact"},
		"/contact":                   {"post", "Contact"},
		"/post-image":                {"post", "Upload"},
	}

	assert.Len(t, doc.Paths, len(routes))
	for path, want := range routes {
		ops, ok := doc.Paths[path]
		require.True(t, ok, "path %s missing", path)
		op, ok := ops[want.method]
		require.True(t, ok, "%s %s missing", want.method, path)
		assert.Equal(t, []string{want.tag}, op.Tags, path)
		assert.NotEmpty(t, op.Summary, path)
		assert.NotEmpty(t, op.Description, path)
	}
}
