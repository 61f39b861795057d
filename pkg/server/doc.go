// Package server provides the gateway's HTTP server lifecycle.
//
// The server package wraps a configured handler (see pkg/api) with
// start, graceful shutdown, and OS signal handling. It owns nothing
// about routing; it exists so the cmd layer has a single object to
// start and stop.
//
// # Basic Usage
//
//	import (
//	    "context"
//	    "crimson-hq/crimson/pkg/config"
//	    "crimson-hq/crimson/pkg/server"
//	)
//
//	cfg := config.GetConfig()
//	srv := server.NewServer(cfg.Server, handler)
//	if err := srv.Start(context.Background()); err != nil {
//	    log.Fatal(err)
//	}
//
// # Graceful Shutdown
//
// Start blocks until the context is cancelled, a SIGTERM/SIGINT
// arrives, or the listener fails. Shutdown stops accepting new
// connections and waits up to the configured shutdown timeout for
// in-flight requests; chat turns against a local model can run for
// minutes, so the write and shutdown timeouts are sized generously.
package server
