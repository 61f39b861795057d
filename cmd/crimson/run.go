package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"crimson-hq/crimson/pkg/api"
	"crimson-hq/crimson/pkg/audit"
	"crimson-hq/crimson/pkg/chat"
	"crimson-hq/crimson/pkg/cli"
	"crimson-hq/crimson/pkg/config"
	"crimson-hq/crimson/pkg/history"
	"crimson-hq/crimson/pkg/providerfactory"
	"crimson-hq/crimson/pkg/providers"
	"crimson-hq/crimson/pkg/server"
	"crimson-hq/crimson/pkg/telemetry/logging"
	"crimson-hq/crimson/pkg/telemetry/metrics"
	"crimson-hq/crimson/pkg/video"
	"crimson-hq/crimson/pkg/weather"
)

var runFlags struct {
	listenAddress string
	logLevel      string
	dryRun        bool
	watch         bool
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the Crimson gateway",
	Long: `Start the Crimson gateway with the specified configuration.

The gateway listens on the configured address and serves chat turns
through the provider fallback chain, plus the history, status, weather
and video search endpoints.

Examples:
  # Start with defaults (env vars configure providers)
  crimson run

  # Start with a config file
  crimson run --config /etc/crimson/config.yaml

  # Override listen address
  crimson run --listen 0.0.0.0:8080

  # Validate config without starting the server
  crimson run --dry-run`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runFlags.listenAddress, "listen", "l", "", "override listen address")
	runCmd.Flags().StringVar(&runFlags.logLevel, "log-level", "", "override log level (debug, info, warn, error)")
	runCmd.Flags().BoolVar(&runFlags.dryRun, "dry-run", false, "validate config without starting server")
	runCmd.Flags().BoolVar(&runFlags.watch, "watch", false, "reload the config file on change")
}

func runServer(cmd *cobra.Command, args []string) error {
	if err := config.Initialize(cfgFile); err != nil {
		return cli.NewConfigError("", fmt.Sprintf("failed to load config: %v", err))
	}
	cfg := config.GetConfig()

	if runFlags.listenAddress != "" {
		cfg.Server.ListenAddress = runFlags.listenAddress
	}
	if runFlags.logLevel != "" {
		cfg.Logging.Level = runFlags.logLevel
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}

	logging.Setup(cfg.Logging)

	if runFlags.dryRun {
		fmt.Println("✓ Configuration valid")
		return nil
	}

	printBanner(cfg)

	// Provider chain in fallback priority order.
	slog.Info("initializing provider chain", "order", cfg.Providers.Order)
	chain, err := providerfactory.NewChain(providerConfigs(cfg))
	if err != nil {
		return cli.NewCommandError("run", fmt.Errorf("failed to initialize providers: %w", err))
	}
	fmt.Printf("✓ Providers initialized (%d providers)\n", len(chain))

	store := history.NewStore(cfg.History.MaxTurns)
	assembler := chat.NewAssembler(store, cfg.Chat.SystemPrompt, cfg.Chat.Window)
	orchestrator := chat.NewOrchestrator(chain, store, assembler)
	defer orchestrator.Close()

	// Cancelled on SIGINT/SIGTERM; the server shuts down gracefully.
	ctx, cancel := context.WithCancel(cli.SetupSignalHandler())
	defer cancel()

	// Scheduled history resets, when configured.
	retention := history.NewRetentionScheduler(store, history.RetentionConfig{
		ResetSchedule: cfg.History.ResetSchedule,
	})
	if err := retention.Start(ctx); err != nil {
		return cli.NewConfigError("history.reset_schedule", err.Error())
	}
	defer retention.Stop()

	// Audit log, when enabled. Records outcomes and sizes only, never
	// conversation text.
	var recorder *audit.Recorder
	if cfg.Audit.Enabled {
		sqliteCfg := audit.DefaultSQLiteConfig()
		sqliteCfg.Path = cfg.Audit.Path
		storage, err := audit.NewSQLiteStorage(sqliteCfg)
		if err != nil {
			return cli.NewCommandError("run", fmt.Errorf("failed to open audit storage: %w", err))
		}
		defer storage.Close()

		recorder = audit.NewRecorder(storage, &audit.RecorderConfig{
			Enabled:      true,
			AsyncBuffer:  cfg.Audit.AsyncBuffer,
			WriteTimeout: cfg.Audit.WriteTimeout,
		})
		defer recorder.Close()
		fmt.Println("✓ Audit log initialized")
	}

	var collector *metrics.Collector
	if cfg.Metrics.Enabled {
		collector = metrics.NewCollector(cfg.Metrics, nil)
	}

	weatherClient := weather.NewClient(weather.Config{
		APIKey:      cfg.Weather.APIKey,
		DefaultCity: cfg.Weather.DefaultCity,
		Timeout:     cfg.Weather.Timeout,
	})
	videoClient := video.NewClient(video.Config{
		MaxResults: cfg.Video.MaxResults,
		Timeout:    cfg.Video.Timeout,
	})

	handlers := api.NewHandlers(orchestrator, store, weatherClient, videoClient, recorder, collector)
	router := api.NewRouter(handlers, collector, api.RouterConfig{
		MetricsPath:    cfg.Metrics.Path,
		StaticDir:      cfg.Server.StaticDir,
		RequestTimeout: cfg.Server.WriteTimeout,
	})

	// Live config reload, when requested. Only logging level changes
	// apply to a running server; the rest takes effect on restart.
	if runFlags.watch && cfgFile != "" {
		watcher, err := config.NewWatcher(config.WatcherConfig{Path: cfgFile})
		if err != nil {
			return cli.NewCommandError("run", err)
		}
		defer watcher.Close()
		go func() {
			_ = watcher.Watch(ctx, func() error {
				if err := config.ReloadConfig(cfgFile); err != nil {
					return err
				}
				logging.Setup(config.GetConfig().Logging)
				return nil
			})
		}()
	}

	srv := server.NewServer(cfg.Server, router)

	errChan := make(chan error, 1)
	go func() {
		if err := srv.Start(ctx); err != nil {
			errChan <- err
		}
		close(errChan)
	}()

	fmt.Println()
	fmt.Printf("✓ Server listening on %s\n", cfg.Server.ListenAddress)
	fmt.Printf("✓ Chat endpoint: http://%s/api/chat\n", cfg.Server.ListenAddress)
	if cfg.Metrics.Enabled {
		fmt.Printf("✓ Metrics endpoint: http://%s%s\n", cfg.Server.ListenAddress, cfg.Metrics.Path)
	}
	fmt.Println("\nPress Ctrl+C to stop")

	if err := <-errChan; err != nil {
		return cli.NewCommandError("run", err)
	}
	fmt.Println("✓ Server stopped")
	return nil
}

// providerConfigs maps the configured fallback order to adapter configs.
// Zero adapter fields fall back to per-adapter defaults.
func providerConfigs(cfg *config.Config) []providers.Config {
	adapterFor := map[string]config.ProviderConfig{
		"groq":   cfg.Providers.Groq,
		"ollama": cfg.Providers.Ollama,
		"openai": cfg.Providers.OpenAI,
	}

	configs := make([]providers.Config, 0, len(cfg.Providers.Order))
	for _, name := range cfg.Providers.Order {
		adapter := adapterFor[name]
		configs = append(configs, providers.Config{
			Name:    name,
			BaseURL: adapter.BaseURL,
			APIKey:  adapter.APIKey,
			Model:   adapter.Model,
			Timeout: adapter.Timeout,
		})
	}
	return configs
}

func printBanner(cfg *config.Config) {
	fmt.Printf("Crimson v%s\n", Version)
	if cfgFile != "" {
		fmt.Printf("Loading configuration from: %s\n", cfgFile)
	}
	fmt.Println("✓ Configuration loaded")

	slog.Debug("providers configured", "order", cfg.Providers.Order)
	if cfg.History.ResetSchedule != "" {
		slog.Debug("history reset scheduled", "schedule", cfg.History.ResetSchedule)
	}
	if cfg.Audit.Enabled {
		slog.Debug("audit enabled", "path", cfg.Audit.Path)
	}
}
