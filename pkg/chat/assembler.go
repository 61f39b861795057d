package chat

import (
	"crimson-hq/crimson/pkg/history"
	"crimson-hq/crimson/pkg/providers"
)

// DefaultWindow is the number of most recent turns injected as context.
const DefaultWindow = 20

// DefaultSystemPrompt is the persona instruction prepended to every
// provider call. The MUSIC/VIDEO COMMANDS section defines the [PLAY:...]
// and [STOP] tags the frontend parses to drive video search playback.
const DefaultSystemPrompt = "You are Crimson, a friendly and cheerful AI robot companion. " +
	"Your name is Crimson — always refer to yourself as Crimson. " +
	"You are warm, playful, helpful, and a little quirky. " +
	"Keep replies concise and fun. Respond in 1-3 short sentences. " +
	"You remember the full conversation so far.\n\n" +
	"MUSIC/VIDEO COMMANDS:\n" +
	"When the user asks you to play a song, music, or video, you MUST respond with EXACTLY this format:\n" +
	"[PLAY:song title - artist]\n" +
	"For example: [PLAY:Bohemian Rhapsody - Queen]\n" +
	"If the user only says \"play me a song\" or \"play music\" without specifying a title, " +
	"ask them what song they want to hear.\n" +
	"If the user says \"stop\", \"stop the music\", \"stop playing\", or similar, " +
	"respond with exactly: [STOP]\n" +
	"You can add a short fun comment before or after the [PLAY:...] or [STOP] tag."

// Assembler builds the provider-agnostic message list for a chat turn:
// the system instruction followed by the most recent window of history.
//
// The orchestrator appends the pending user turn to the store before
// assembly, so the window normally already ends with the prompt. Every
// provider in the fallback chain therefore sees the same terminal entry.
type Assembler struct {
	store        *history.Store
	systemPrompt string
	window       int
}

// NewAssembler creates an assembler over the given store.
// Zero window and empty system prompt select the defaults.
func NewAssembler(store *history.Store, systemPrompt string, window int) *Assembler {
	if systemPrompt == "" {
		systemPrompt = DefaultSystemPrompt
	}
	if window <= 0 {
		window = DefaultWindow
	}
	return &Assembler{
		store:        store,
		systemPrompt: systemPrompt,
		window:       window,
	}
}

// Window returns the configured context window size.
func (a *Assembler) Window() int {
	return a.window
}

// Assemble builds the message list for the given prompt. It reads the
// store but never mutates it. If the window does not already end with the
// prompt as a user turn (the store was mutated concurrently, or the caller
// never recorded the turn), the prompt is appended as the final entry so
// the provider always sees it exactly once.
func (a *Assembler) Assemble(prompt string) []providers.Message {
	window := a.store.Window(a.window)

	msgs := make([]providers.Message, 0, len(window)+2)
	msgs = append(msgs, providers.Message{
		Role:    providers.RoleSystem,
		Content: a.systemPrompt,
	})
	for _, turn := range window {
		msgs = append(msgs, providers.Message{
			Role:    string(turn.Role),
			Content: turn.Content,
		})
	}

	last := len(window) - 1
	if last < 0 || window[last].Role != history.RoleUser || window[last].Content != prompt {
		msgs = append(msgs, providers.Message{
			Role:    providers.RoleUser,
			Content: prompt,
		})
	}

	return msgs
}
