// Package chat implements the fallback orchestration for a chat turn.
//
// A turn records the user's prompt in the shared history, then walks the
// provider chain in priority order: probe, assemble context, send. The
// first success appends the assistant reply and wins. If every provider
// is skipped or fails, the pending user turn is rolled back and the
// caller receives the full ordered list of per-provider failures.
package chat
