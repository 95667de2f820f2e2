package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/people-api/internal/platform/metrics"
)

func TestMetricsMiddleware_LabelsByRoutePattern(t *testing.T) {
	m := metrics.New()

	r := chi.NewRouter()
	r.Use(NewMetricsMiddleware(m))
	r.Get("/person/detail/{person_id}", func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "person_id") == "6" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte("ok"))
	})

	for _, path := range []string{"/person/detail/4", "/person/detail/5", "/person/detail/6", "/nope"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	expected := `
# HELP people_api_http_requests_total Total HTTP requests by route, method and status code
# TYPE people_api_http_requests_total counter
people_api_http_requests_total{method="GET",route="/person/detail/{person_id}",status="200"} 2
people_api_http_requests_total{method="GET",route="/person/detail/{person_id}",status="404"} 1
people_api_http_requests_total{method="GET",route="unmatched",status="404"} 1
`
	err := testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "people_api_http_requests_total")
	require.NoError(t, err)

	count, err := testutil.GatherAndCount(m.Registry(), "people_api_http_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestMetricsMiddleware_ImplicitOK(t *testing.T) {
	m := metrics.New()
	handler := NewMetricsMiddleware(m)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	expected := `
# HELP people_api_http_requests_total Total HTTP requests by route, method and status code
# TYPE people_api_http_requests_total counter
people_api_http_requests_total{method="GET",route="unmatched",status="200"} 1
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "people_api_http_requests_total"))
}
