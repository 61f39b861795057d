package groq

import (
	"context"
	"encoding/json"
	"testing"

	"crimson-hq/crimson/internal/providertest"
	"crimson-hq/crimson/pkg/providers"
	"crimson-hq/crimson/pkg/providers/openai"
)

func TestGroqProvider_Send(t *testing.T) {
	mock := providertest.NewMockServer()
	defer mock.Close()

	mock.SetResponse("/v1/chat/completions", providertest.MockResponse{
		StatusCode: 200,
		Body:       providertest.MockOpenAIResponse("Fast reply", "llama-3.1-8b-instant"),
	})

	provider, err := NewProvider(providertest.TestConfigWithURL("groq", mock.URL()))
	if err != nil {
		t.Fatalf("failed to create provider: %v", err)
	}
	defer provider.Close()

	reply, err := provider.Send(context.Background(), []providers.Message{
		{Role: providers.RoleUser, Content: "Hello"},
	})
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if reply != "Fast reply" {
		t.Errorf("expected reply %q, got %q", "Fast reply", reply)
	}

	var req openai.ChatRequest
	if err := json.Unmarshal(mock.LastRequestBody(), &req); err != nil {
		t.Fatalf("failed to decode request body: %v", err)
	}
	if req.Model != "test-model" {
		t.Errorf("expected model test-model, got %s", req.Model)
	}
}

func TestGroqProvider_Defaults(t *testing.T) {
	provider, err := NewProvider(providers.Config{APIKey: "gsk-test"})
	if err != nil {
		t.Fatalf("failed to create provider: %v", err)
	}
	defer provider.Close()

	cfg := provider.Config()
	if cfg.Name != "groq" {
		t.Errorf("expected name groq, got %s", cfg.Name)
	}
	if cfg.BaseURL != DefaultBaseURL {
		t.Errorf("expected base URL %s, got %s", DefaultBaseURL, cfg.BaseURL)
	}
	if cfg.Model != DefaultModel {
		t.Errorf("expected model %s, got %s", DefaultModel, cfg.Model)
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("expected timeout %s, got %s", DefaultTimeout, cfg.Timeout)
	}
}

func TestGroqProvider_Available(t *testing.T) {
	config := providertest.TestConfig("groq")
	config.APIKey = ""
	provider, err := NewProvider(config)
	if err != nil {
		t.Fatalf("failed to create provider: %v", err)
	}
	defer provider.Close()

	if provider.Available(context.Background()) {
		t.Error("expected unavailable without API key")
	}
}
