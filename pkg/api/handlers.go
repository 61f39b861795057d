package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"crimson-hq/crimson/pkg/api/middleware"
	"crimson-hq/crimson/pkg/audit"
	"crimson-hq/crimson/pkg/chat"
	"crimson-hq/crimson/pkg/history"
	"crimson-hq/crimson/pkg/telemetry/metrics"
	"crimson-hq/crimson/pkg/video"
	"crimson-hq/crimson/pkg/weather"
)

// Handlers bundles the gateway's HTTP handlers and their collaborators.
// Weather, video, recorder and collector are optional; a nil collaborator
// disables its endpoint (404) or its recording.
type Handlers struct {
	orchestrator *chat.Orchestrator
	store        *history.Store
	weather      *weather.Client
	video        *video.Client
	recorder     *audit.Recorder
	collector    *metrics.Collector
	logger       *slog.Logger
}

// NewHandlers creates the handler set.
func NewHandlers(
	orchestrator *chat.Orchestrator,
	store *history.Store,
	weatherClient *weather.Client,
	videoClient *video.Client,
	recorder *audit.Recorder,
	collector *metrics.Collector,
) *Handlers {
	return &Handlers{
		orchestrator: orchestrator,
		store:        store,
		weather:      weatherClient,
		video:        videoClient,
		recorder:     recorder,
		collector:    collector,
		logger:       slog.Default().With("component", "api"),
	}
}

// Chat handles POST /api/chat: one fallback-orchestrated chat turn.
func (h *Handlers) Chat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	prompt := strings.TrimSpace(req.Prompt)
	start := time.Now()

	result, err := h.orchestrator.Do(r.Context(), prompt)
	if err != nil {
		h.handleChatError(w, r, err, prompt, start)
		return
	}

	h.recordChatTurn(r, &audit.Record{
		Outcome:        audit.OutcomeSuccess,
		Backend:        result.Backend,
		FailedAttempts: len(result.Failures),
		PromptChars:    len(prompt),
		ReplyChars:     len(result.Reply),
		DurationMs:     result.Duration.Milliseconds(),
	})
	if h.collector != nil {
		h.collector.RecordChatTurn("success", result.Backend)
		for _, failure := range result.Failures {
			h.collector.RecordProviderAttempt(failure.Provider, false, 0)
		}
		h.collector.RecordProviderAttempt(result.Backend, true, result.Duration)
		h.collector.SetHistoryLength(h.store.Len())
	}

	writeJSON(w, http.StatusOK, ChatResponse{
		Reply:   result.Reply,
		Backend: result.Backend,
	})
}

func (h *Handlers) handleChatError(w http.ResponseWriter, r *http.Request, err error, prompt string, start time.Time) {
	if errors.Is(err, chat.ErrEmptyPrompt) {
		writeError(w, http.StatusBadRequest, "prompt is required")
		return
	}

	var allFailed *chat.AllFailedError
	if errors.As(err, &allFailed) {
		h.recordChatTurn(r, &audit.Record{
			Outcome:        audit.OutcomeAllFailed,
			FailedAttempts: len(allFailed.Attempts),
			PromptChars:    len(prompt),
			DurationMs:     time.Since(start).Milliseconds(),
		})
		if h.collector != nil {
			h.collector.RecordChatTurn("all_failed", "")
			for _, attempt := range allFailed.Attempts {
				h.collector.RecordProviderAttempt(attempt.Provider, false, 0)
			}
			h.collector.SetHistoryLength(h.store.Len())
		}

		writeError(w, http.StatusServiceUnavailable, "All AI backends failed", allFailed.Details()...)
		return
	}

	h.logger.Error("chat turn failed", "error", err)
	writeError(w, http.StatusInternalServerError, "internal server error")
}

func (h *Handlers) recordChatTurn(r *http.Request, record *audit.Record) {
	record.RequestID = middleware.GetRequestID(r.Context())
	h.recorder.Record(record)
}

// History handles GET and DELETE /api/history.
func (h *Handlers) History(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		turns := h.store.Snapshot()
		writeJSON(w, http.StatusOK, HistoryResponse{
			History: turns,
			Count:   len(turns),
		})

	case http.MethodDelete:
		h.store.Clear()
		if h.collector != nil {
			h.collector.SetHistoryLength(0)
		}
		h.logger.Info("history cleared", "request_id", middleware.GetRequestID(r.Context()))
		writeJSON(w, http.StatusOK, map[string]string{"status": "cleared"})

	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// Status handles GET /api/status: per-provider probe results and the
// provider a chat turn would attempt first.
func (h *Handlers) Status(w http.ResponseWriter, r *http.Request) {
	statuses := h.orchestrator.Status(r.Context())

	backend := "none"
	model := ""
	for _, s := range statuses {
		if s.Available {
			backend = s.Name
			model = s.Model
			break
		}
	}

	if h.collector != nil {
		for _, s := range statuses {
			h.collector.UpdateAvailability(s.Name, s.Available)
		}
	}

	resp := StatusResponse{
		Backend:   backend,
		Model:     model,
		Providers: statuses,
	}
	for _, s := range statuses {
		switch s.Name {
		case "groq":
			resp.GroqConfigured = s.Available
		case "ollama":
			resp.OllamaAvailable = s.Available
		case "openai":
			resp.OpenAIConfigured = s.Available
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// Weather handles GET /api/weather?city=.
func (h *Handlers) Weather(w http.ResponseWriter, r *http.Request) {
	if h.weather == nil {
		writeError(w, http.StatusNotFound, "weather is not configured")
		return
	}

	report, err := h.weather.Fetch(r.Context(), r.URL.Query().Get("city"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// VideoSearch handles GET /api/youtube-search?q=.
func (h *Handlers) VideoSearch(w http.ResponseWriter, r *http.Request) {
	if h.video == nil {
		writeError(w, http.StatusNotFound, "video search is not configured")
		return
	}

	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		writeError(w, http.StatusBadRequest, "q parameter required")
		return
	}

	ids, err := h.video.Search(r.Context(), query)
	if err != nil {
		if errors.Is(err, video.ErrNoResults) {
			writeError(w, http.StatusNotFound, "No videos found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, VideoResponse{
		VideoID:  ids[0],
		VideoIDs: ids,
		Query:    query,
	})
}

// Health handles GET /health: process liveness.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Ready handles GET /ready: the gateway is ready when at least one
// provider probes available.
func (h *Handlers) Ready(w http.ResponseWriter, r *http.Request) {
	backend := h.orchestrator.First(r.Context())
	if backend == "" {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "no providers available",
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ready",
		"backend": backend,
	})
}
