// Package cli provides shared helpers for the crimson command line:
// typed command errors, shutdown signal plumbing, and output
// formatting for commands that print structured results.
package cli
