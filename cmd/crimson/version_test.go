package main

import (
	"testing"

	"crimson-hq/crimson/pkg/config"
)

func TestVersionDefaults(t *testing.T) {
	if Version == "" {
		t.Error("Version should not be empty")
	}
	if GitCommit == "" {
		t.Error("GitCommit should not be empty")
	}
	if BuildDate == "" {
		t.Error("BuildDate should not be empty")
	}
}

func TestRootCommand(t *testing.T) {
	if rootCmd.Use != "crimson" {
		t.Errorf("root command use = %q, want crimson", rootCmd.Use)
	}

	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"run", "check", "validate", "version"} {
		if !names[want] {
			t.Errorf("missing subcommand %q", want)
		}
	}
}

func TestProviderConfigs_FollowsOrder(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Providers.Order = []string{"ollama", "groq"}
	cfg.Providers.Groq.APIKey = "gk"
	cfg.Providers.Ollama.BaseURL = "http://box:11434"

	configs := providerConfigs(cfg)
	if len(configs) != 2 {
		t.Fatalf("len = %d, want 2", len(configs))
	}
	if configs[0].Name != "ollama" || configs[0].BaseURL != "http://box:11434" {
		t.Errorf("configs[0] = %+v, want ollama with base URL", configs[0])
	}
	if configs[1].Name != "groq" || configs[1].APIKey != "gk" {
		t.Errorf("configs[1] = %+v, want groq with API key", configs[1])
	}
}
