// Package middleware holds the HTTP middleware chain: cross-cutting
// concerns that wrap the router rather than living inside any one
// handler. Each middleware has the classic shape
//
//	func(next http.Handler) http.Handler
//
// so they compose by nesting: Metrics(limiter.Wrap(router)).
package middleware

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// requestsTotal counts every request the server answers, labelled by
// method, path, and final status code. Registered once at package load
// via promauto — the /metrics endpoint exposes it through the default
// registry.
//
// Path labels are safe here: the API has a tiny, fixed route table, so
// label cardinality stays bounded by what clients probe.
var requestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total HTTP requests processed, by method, path and status code.",
	},
	[]string{"method", "path", "code"},
)

// statusRecorder wraps http.ResponseWriter to remember the status code
// a handler wrote. The stdlib writer offers no way to read it back, so
// the middleware has to intercept WriteHeader.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

// Metrics wraps next and increments requestsTotal after every request.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Default to 200: handlers that never call WriteHeader get it
		// implicitly from the first body write.
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		requestsTotal.WithLabelValues(
			r.Method,
			r.URL.Path,
			strconv.Itoa(rec.status),
		).Inc()
	})
}
