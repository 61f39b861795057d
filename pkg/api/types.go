// Package api implements the gateway's HTTP surface: the chat endpoint,
// history inspection and clearing, provider status, and the weather and
// video collaborator endpoints.
package api

import (
	"encoding/json"
	"net/http"

	"crimson-hq/crimson/pkg/chat"
	"crimson-hq/crimson/pkg/history"
)

// ChatRequest is the POST /api/chat request body.
type ChatRequest struct {
	Prompt string `json:"prompt"`
}

// ChatResponse is the successful chat response.
type ChatResponse struct {
	Reply   string `json:"reply"`
	Backend string `json:"backend"`
}

// ErrorResponse is the JSON error envelope. Details is present only for
// aggregate failures, ordered by provider attempt.
type ErrorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

// HistoryResponse is the GET /api/history response.
type HistoryResponse struct {
	History []history.Turn `json:"history"`
	Count   int            `json:"count"`
}

// StatusResponse is the GET /api/status response. Backend is the provider
// the next chat turn would attempt first, or "none". The three per-provider
// booleans keep the historical top-level keys alongside the richer
// providers array.
type StatusResponse struct {
	Backend          string                `json:"backend"`
	Model            string                `json:"model,omitempty"`
	GroqConfigured   bool                  `json:"groq_configured"`
	OllamaAvailable  bool                  `json:"ollama_available"`
	OpenAIConfigured bool                  `json:"openai_configured"`
	Providers        []chat.ProviderStatus `json:"providers"`
}

// VideoResponse is the GET /api/youtube-search response. VideoID is the
// top result; VideoIDs holds every deduplicated result in page order.
type VideoResponse struct {
	VideoID  string   `json:"videoId"`
	VideoIDs []string `json:"videoIds"`
	Query    string   `json:"query"`
}

// writeJSON writes v as a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error envelope.
func writeError(w http.ResponseWriter, status int, message string, details ...string) {
	writeJSON(w, status, ErrorResponse{Error: message, Details: details})
}
