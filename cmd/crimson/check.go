package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"crimson-hq/crimson/pkg/chat"
	"crimson-hq/crimson/pkg/cli"
	"crimson-hq/crimson/pkg/config"
	"crimson-hq/crimson/pkg/history"
	"crimson-hq/crimson/pkg/providerfactory"
)

var checkFlags struct {
	format  string
	timeout time.Duration
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Probe provider availability",
	Long: `Probe each configured provider and report whether a chat turn
could reach it right now.

Cloud providers report available when an API key is configured; the
local provider is probed over HTTP. Probes are advisory: a provider
reported available can still fail when actually called.

Examples:
  # Probe with default config
  crimson check

  # Machine-readable output
  crimson check --format json`,
	RunE: checkProviders,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVar(&checkFlags.format, "format", "text", "output format: text, json")
	checkCmd.Flags().DurationVar(&checkFlags.timeout, "timeout", 10*time.Second, "overall probe timeout")
}

func checkProviders(cmd *cobra.Command, args []string) error {
	if err := config.Initialize(cfgFile); err != nil {
		return cli.NewConfigError("", fmt.Sprintf("failed to load config: %v", err))
	}
	cfg := config.GetConfig()

	chain, err := providerfactory.NewChain(providerConfigs(cfg))
	if err != nil {
		return cli.NewCommandError("check", err)
	}

	store := history.NewStore(cfg.History.MaxTurns)
	orchestrator := chat.NewOrchestrator(chain, store, chat.NewAssembler(store, "", 0))
	defer orchestrator.Close()

	ctx, cancel := context.WithTimeout(context.Background(), checkFlags.timeout)
	defer cancel()

	statuses := orchestrator.Status(ctx)

	if checkFlags.format == string(cli.FormatJSON) {
		return cli.NewFormatter(cli.FormatJSON).FormatTo(os.Stdout, statuses)
	}

	for _, s := range statuses {
		mark := "✗"
		if s.Available {
			mark = "✓"
		}
		fmt.Printf("%s %-8s %s\n", mark, s.Name, s.Model)
	}
	if first := orchestrator.First(ctx); first != "" {
		fmt.Printf("\nChat turns would use: %s\n", first)
	} else {
		fmt.Println("\nNo providers available")
	}
	return nil
}
