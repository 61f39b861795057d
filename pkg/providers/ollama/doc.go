// Package ollama implements the Ollama adapter, the gateway's local,
// offline-capable backend.
//
// Local inference can be slow, so the adapter carries the longest timeout in
// the chain, and its availability probe is a reachability ping against the
// Ollama tags endpoint rather than a credential check.
package ollama
