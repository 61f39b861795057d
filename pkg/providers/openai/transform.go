package openai

import (
	"fmt"
	"strings"

	"crimson-hq/crimson/pkg/providers"
)

// OpenAI API request/response types.

// ChatRequest represents an OpenAI chat completion request.
type ChatRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature,omitempty"`
}

// ChatMessage represents a message in OpenAI format.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatResponse represents an OpenAI chat completion response.
type ChatResponse struct {
	ID      string       `json:"id"`
	Object  string       `json:"object"`
	Created int64        `json:"created"`
	Model   string       `json:"model"`
	Choices []ChatChoice `json:"choices"`
	Usage   ChatUsage    `json:"usage"`
}

// ChatChoice represents a completion choice in OpenAI format.
type ChatChoice struct {
	Index        int         `json:"index"`
	Message      ChatMessage `json:"message"`
	FinishReason string      `json:"finish_reason"`
}

// ChatUsage represents token usage in OpenAI format.
type ChatUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// TransformRequest transforms provider-agnostic messages to an OpenAI
// request with the given model and sampling parameters.
func TransformRequest(msgs []providers.Message, model string, maxTokens int, temperature float64) *ChatRequest {
	req := &ChatRequest{
		Model:       model,
		Messages:    make([]ChatMessage, len(msgs)),
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}
	for i, msg := range msgs {
		req.Messages[i] = ChatMessage{
			Role:    msg.Role,
			Content: msg.Content,
		}
	}
	return req
}

// ExtractReply pulls the trimmed reply text out of an OpenAI response.
// A response without choices is malformed; an empty content string is a
// valid reply.
func ExtractReply(resp *ChatResponse) (string, error) {
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
