package api

import (
	"net/http"
	"time"

	"crimson-hq/crimson/pkg/api/middleware"
	"crimson-hq/crimson/pkg/telemetry/metrics"
)

// RouterConfig controls optional routes on the gateway mux.
type RouterConfig struct {
	// MetricsPath is where the Prometheus exposition handler is mounted.
	// Empty disables the route.
	MetricsPath string

	// StaticDir serves a directory of static assets at the root path.
	// Empty disables static serving.
	StaticDir string

	// RequestTimeout bounds each request with a context deadline.
	// Zero disables the bound.
	RequestTimeout time.Duration
}

// NewRouter builds the gateway's HTTP handler: API routes wrapped in the
// shared middleware chain, plus optional metrics and static routes.
func NewRouter(h *Handlers, collector *metrics.Collector, cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/chat", h.Chat)
	mux.HandleFunc("/api/history", h.History)
	mux.HandleFunc("GET /api/status", h.Status)
	mux.HandleFunc("GET /api/weather", h.Weather)
	mux.HandleFunc("GET /api/youtube-search", h.VideoSearch)
	mux.HandleFunc("GET /health", h.Health)
	mux.HandleFunc("GET /ready", h.Ready)

	if cfg.MetricsPath != "" && collector != nil {
		mux.Handle("GET "+cfg.MetricsPath, collector.Handler())
	}
	if cfg.StaticDir != "" {
		mux.Handle("/", http.FileServer(http.Dir(cfg.StaticDir)))
	}

	return middleware.Chain(mux,
		middleware.Recovery,
		middleware.RequestID,
		middleware.Logging,
		middleware.Metrics(collector),
		middleware.CORS,
		middleware.Timeout(cfg.RequestTimeout),
	)
}
