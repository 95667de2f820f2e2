package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/phrazzld/people-api/internal/platform/metrics"
)

// unmatchedRoute labels requests that no route matched, keeping label
// cardinality bounded.
const unmatchedRoute = "unmatched"

// NewMetricsMiddleware records a request counter and latency histogram for
// every request, labelled by chi route pattern, method and status code.
func NewMetricsMiddleware(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			m.ObserveRequest(routePattern(r), r.Method, strconv.Itoa(status), time.Since(start))
		})
	}
}

func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return unmatchedRoute
	}
	if pattern := rctx.RoutePattern(); pattern != "" {
		return pattern
	}
	return unmatchedRoute
}
