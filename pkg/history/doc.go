// Package history provides the shared, bounded conversation log for the
// Crimson gateway.
//
// A single Store instance is shared by all concurrent chat requests. It keeps
// an ordered sequence of conversation turns, evicting the oldest turns once
// the configured bound is exceeded, and supports the rollback operation the
// fallback orchestrator needs when every provider fails.
//
// The store never performs I/O and never persists across process restarts.
package history
