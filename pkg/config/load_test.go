package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfig_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Server.ListenAddress != DefaultListenAddress {
		t.Errorf("expected default listen address, got %s", cfg.Server.ListenAddress)
	}
	if cfg.Chat.Window != DefaultWindow {
		t.Errorf("expected default window %d, got %d", DefaultWindow, cfg.Chat.Window)
	}
	if cfg.History.MaxTurns != 2*DefaultWindow {
		t.Errorf("expected max turns %d, got %d", 2*DefaultWindow, cfg.History.MaxTurns)
	}
	if len(cfg.Providers.Order) != 3 || cfg.Providers.Order[0] != "groq" {
		t.Errorf("unexpected default provider order: %v", cfg.Providers.Order)
	}
}

func TestLoadConfig_FromFile(t *testing.T) {
	path := writeConfigFile(t, `
server:
  listen_address: ":8080"
chat:
  window: 10
providers:
  order: [ollama, openai]
  ollama:
    base_url: http://gpu-box:11434
    model: llama3:8b
logging:
  level: debug
  format: text
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Server.ListenAddress != ":8080" {
		t.Errorf("expected :8080, got %s", cfg.Server.ListenAddress)
	}
	if cfg.Chat.Window != 10 {
		t.Errorf("expected window 10, got %d", cfg.Chat.Window)
	}
	if cfg.History.MaxTurns != 20 {
		t.Errorf("expected derived max turns 20, got %d", cfg.History.MaxTurns)
	}
	if len(cfg.Providers.Order) != 2 || cfg.Providers.Order[0] != "ollama" {
		t.Errorf("unexpected provider order: %v", cfg.Providers.Order)
	}
	if cfg.Providers.Ollama.BaseURL != "http://gpu-box:11434" {
		t.Errorf("unexpected ollama base URL: %s", cfg.Providers.Ollama.BaseURL)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "text" {
		t.Errorf("unexpected logging config: %+v", cfg.Logging)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig("/nonexistent/config.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := writeConfigFile(t, "server: [not a map")
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestLoadConfigWithEnvOverrides(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "gsk-from-env")
	t.Setenv("OLLAMA_URL", "http://localhost:11435")
	t.Setenv("WEATHER_CITY", "Kazan")
	t.Setenv("CRIMSON_SERVER_LISTEN_ADDRESS", ":9000")
	t.Setenv("CRIMSON_CHAT_WINDOW", "5")
	t.Setenv("CRIMSON_SERVER_READ_TIMEOUT", "45s")
	t.Setenv("CRIMSON_AUDIT_ENABLED", "true")

	cfg, err := LoadConfigWithEnvOverrides("")
	if err != nil {
		t.Fatalf("LoadConfigWithEnvOverrides failed: %v", err)
	}

	if cfg.Providers.Groq.APIKey != "gsk-from-env" {
		t.Errorf("GROQ_API_KEY not applied: %q", cfg.Providers.Groq.APIKey)
	}
	if cfg.Providers.Ollama.BaseURL != "http://localhost:11435" {
		t.Errorf("OLLAMA_URL not applied: %q", cfg.Providers.Ollama.BaseURL)
	}
	if cfg.Weather.DefaultCity != "Kazan" {
		t.Errorf("WEATHER_CITY not applied: %q", cfg.Weather.DefaultCity)
	}
	if cfg.Server.ListenAddress != ":9000" {
		t.Errorf("listen address override not applied: %q", cfg.Server.ListenAddress)
	}
	if cfg.Chat.Window != 5 {
		t.Errorf("window override not applied: %d", cfg.Chat.Window)
	}
	if cfg.Server.ReadTimeout != 45*time.Second {
		t.Errorf("read timeout override not applied: %s", cfg.Server.ReadTimeout)
	}
	if !cfg.Audit.Enabled {
		t.Error("audit enabled override not applied")
	}
}

func TestLoadConfigWithEnvOverrides_BareNameWins(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-bare")
	t.Setenv("CRIMSON_PROVIDERS_OPENAI_API_KEY", "sk-prefixed")

	cfg, err := LoadConfigWithEnvOverrides("")
	if err != nil {
		t.Fatalf("LoadConfigWithEnvOverrides failed: %v", err)
	}
	if cfg.Providers.OpenAI.APIKey != "sk-bare" {
		t.Errorf("expected bare name to win, got %q", cfg.Providers.OpenAI.APIKey)
	}
}

func TestLoadConfigWithEnvOverrides_InvalidResult(t *testing.T) {
	t.Setenv("CRIMSON_CHAT_WINDOW", "-3")

	if _, err := LoadConfigWithEnvOverrides(""); err == nil {
		t.Fatal("expected validation error after env overrides")
	}
}
