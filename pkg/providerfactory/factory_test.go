package providerfactory

import (
	"testing"

	"crimson-hq/crimson/pkg/providers"
)

func TestNewProvider(t *testing.T) {
	tests := []struct {
		name     string
		config   providers.Config
		wantName string
		wantErr  bool
	}{
		{
			name:     "groq",
			config:   providers.Config{Name: "groq", APIKey: "gsk-test"},
			wantName: "groq",
		},
		{
			name:     "ollama",
			config:   providers.Config{Name: "ollama"},
			wantName: "ollama",
		},
		{
			name:     "openai",
			config:   providers.Config{Name: "openai", APIKey: "sk-test"},
			wantName: "openai",
		},
		{
			name:    "unknown",
			config:  providers.Config{Name: "mistral"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, err := NewProvider(tt.config)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			defer provider.Close()

			if provider.Name() != tt.wantName {
				t.Errorf("expected name %s, got %s", tt.wantName, provider.Name())
			}
		})
	}
}

func TestNewChain(t *testing.T) {
	configs := []providers.Config{
		{Name: "groq", APIKey: "gsk-test"},
		{Name: "ollama"},
		{Name: "openai", APIKey: "sk-test"},
	}

	chain, err := NewChain(configs)
	if err != nil {
		t.Fatalf("NewChain failed: %v", err)
	}
	defer func() {
		for _, p := range chain {
			p.Close()
		}
	}()

	if len(chain) != 3 {
		t.Fatalf("expected 3 providers, got %d", len(chain))
	}

	// Order is priority order.
	want := []string{"groq", "ollama", "openai"}
	for i, name := range want {
		if chain[i].Name() != name {
			t.Errorf("position %d: expected %s, got %s", i, name, chain[i].Name())
		}
	}
}

func TestNewChain_UnknownProvider(t *testing.T) {
	configs := []providers.Config{
		{Name: "groq", APIKey: "gsk-test"},
		{Name: "unknown"},
	}

	if _, err := NewChain(configs); err == nil {
		t.Fatal("expected error, got nil")
	}
}
