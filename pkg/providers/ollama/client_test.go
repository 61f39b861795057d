package ollama

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"crimson-hq/crimson/internal/providertest"
	"crimson-hq/crimson/pkg/providers"
)

func TestOllamaProvider_Send(t *testing.T) {
	mock := providertest.NewMockServer()
	defer mock.Close()

	mock.SetResponse("/api/chat", providertest.MockResponse{
		StatusCode: 200,
		Body:       providertest.MockOllamaResponse("Local reply", "gemma2:2b"),
	})

	provider, err := NewProvider(providertest.TestConfigWithURL("ollama", mock.URL()))
	if err != nil {
		t.Fatalf("failed to create provider: %v", err)
	}
	defer provider.Close()

	reply, err := provider.Send(context.Background(), []providers.Message{
		{Role: providers.RoleSystem, Content: "Be brief."},
		{Role: providers.RoleUser, Content: "Hello"},
	})
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if reply != "Local reply" {
		t.Errorf("expected reply %q, got %q", "Local reply", reply)
	}

	var req ChatRequest
	if err := json.Unmarshal(mock.LastRequestBody(), &req); err != nil {
		t.Fatalf("failed to decode request body: %v", err)
	}
	if req.Stream {
		t.Error("expected stream false")
	}
	if req.Model != "test-model" {
		t.Errorf("expected model test-model, got %s", req.Model)
	}
	if req.Options.NumPredict != DefaultNumPredict {
		t.Errorf("expected num_predict %d, got %d", DefaultNumPredict, req.Options.NumPredict)
	}
	if req.Options.Temperature != DefaultTemperature {
		t.Errorf("expected temperature %f, got %f", DefaultTemperature, req.Options.Temperature)
	}
}

func TestOllamaProvider_SendServerError(t *testing.T) {
	mock := providertest.NewMockServer()
	defer mock.Close()

	mock.SetResponse("/api/chat", providertest.MockServerError())

	provider, err := NewProvider(providertest.TestConfigWithURL("ollama", mock.URL()))
	if err != nil {
		t.Fatalf("failed to create provider: %v", err)
	}
	defer provider.Close()

	_, err = provider.Send(context.Background(), []providers.Message{
		{Role: providers.RoleUser, Content: "Hello"},
	})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if _, ok := err.(*providers.ProviderError); !ok {
		t.Fatalf("expected ProviderError, got %T: %v", err, err)
	}
}

func TestOllamaProvider_Available(t *testing.T) {
	mock := providertest.NewMockServer()
	defer mock.Close()

	mock.SetResponse("/api/tags", providertest.MockResponse{
		StatusCode: http.StatusOK,
		Body:       map[string]interface{}{"models": []interface{}{}},
	})

	provider, err := NewProvider(providertest.TestConfigWithURL("ollama", mock.URL()))
	if err != nil {
		t.Fatalf("failed to create provider: %v", err)
	}
	defer provider.Close()

	if !provider.Available(context.Background()) {
		t.Error("expected available when tags endpoint answers")
	}
}

func TestOllamaProvider_UnavailableWhenUnreachable(t *testing.T) {
	// Point at a closed server so the probe fails fast.
	mock := providertest.NewMockServer()
	url := mock.URL()
	mock.Close()

	provider, err := NewProvider(providertest.TestConfigWithURL("ollama", url))
	if err != nil {
		t.Fatalf("failed to create provider: %v", err)
	}
	defer provider.Close()

	if provider.Available(context.Background()) {
		t.Error("expected unavailable when server is down")
	}
}

func TestOllamaProvider_UnavailableOnProbeError(t *testing.T) {
	mock := providertest.NewMockServer()
	defer mock.Close()

	mock.SetResponse("/api/tags", providertest.MockResponse{
		StatusCode: http.StatusInternalServerError,
		Body:       "broken",
	})

	provider, err := NewProvider(providertest.TestConfigWithURL("ollama", mock.URL()))
	if err != nil {
		t.Fatalf("failed to create provider: %v", err)
	}
	defer provider.Close()

	if provider.Available(context.Background()) {
		t.Error("expected unavailable on non-2xx probe response")
	}
}

func TestOllamaProvider_Defaults(t *testing.T) {
	provider, err := NewProvider(providers.Config{})
	if err != nil {
		t.Fatalf("failed to create provider: %v", err)
	}
	defer provider.Close()

	cfg := provider.Config()
	if cfg.Name != "ollama" {
		t.Errorf("expected name ollama, got %s", cfg.Name)
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
