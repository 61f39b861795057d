package config

import "testing"

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "defaults are valid",
			mutate: func(cfg *Config) {},
		},
		{
			name:    "empty listen address",
			mutate:  func(cfg *Config) { cfg.Server.ListenAddress = "" },
			wantErr: true,
		},
		{
			name:    "zero window",
			mutate:  func(cfg *Config) { cfg.Chat.Window = -1 },
			wantErr: true,
		},
		{
			name:    "empty provider order",
			mutate:  func(cfg *Config) { cfg.Providers.Order = nil },
			wantErr: true,
		},
		{
			name:    "unknown provider in order",
			mutate:  func(cfg *Config) { cfg.Providers.Order = []string{"groq", "mistral"} },
			wantErr: true,
		},
		{
			name:    "duplicate provider in order",
			mutate:  func(cfg *Config) { cfg.Providers.Order = []string{"groq", "groq"} },
			wantErr: true,
		},
		{
			name:   "subset order is valid",
			mutate: func(cfg *Config) { cfg.Providers.Order = []string{"ollama"} },
		},
		{
			name:    "max turns below window",
			mutate:  func(cfg *Config) { cfg.History.MaxTurns = 5 },
			wantErr: true,
		},
		{
			name: "audit enabled without path",
			mutate: func(cfg *Config) {
				cfg.Audit.Enabled = true
				cfg.Audit.Path = ""
			},
			wantErr: true,
		},
		{
			name:    "bad log level",
			mutate:  func(cfg *Config) { cfg.Logging.Level = "verbose" },
			wantErr: true,
		},
		{
			name:    "bad log format",
			mutate:  func(cfg *Config) { cfg.Logging.Format = "xml" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := Validate(cfg)
			if tt.wantErr && err == nil {
				t.Fatal("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
