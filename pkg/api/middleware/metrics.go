package middleware

import (
	"net/http"
	"strconv"
	"time"

	"crimson-hq/crimson/pkg/telemetry/metrics"
)

// Metrics records a request counter and latency histogram for every
// request. A nil collector disables recording.
func Metrics(collector *metrics.Collector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if collector == nil {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			rw := newResponseWriter(w)

			next.ServeHTTP(rw, r)

			collector.RecordRequest(
				r.URL.Path,
				r.Method,
				strconv.Itoa(rw.statusCode),
				time.Since(start),
			)
		})
	}
}

// Chain applies middlewares to handler in reverse order, so the first
// listed middleware is the outermost.
func Chain(handler http.Handler, middlewares ...func(http.Handler) http.Handler) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		handler = middlewares[i](handler)
	}
	return handler
}
