package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"crimson-hq/crimson/pkg/cli"
	"crimson-hq/crimson/pkg/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration",
	Long: `Load the configuration file, apply environment overrides, and
check every field the gateway would reject at startup.

Examples:
  # Validate the default configuration (env vars only)
  crimson validate

  # Validate a config file
  crimson validate --config config.yaml`,
	RunE: validateConfig,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func validateConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfigWithEnvOverrides(cfgFile)
	if err != nil {
		return cli.NewConfigError("", err.Error())
	}

	fmt.Println("✓ Configuration valid")
	fmt.Printf("  Listen address:  %s\n", cfg.Server.ListenAddress)
	fmt.Printf("  Provider order:  %v\n", cfg.Providers.Order)
	fmt.Printf("  Context window:  %d turns\n", cfg.Chat.Window)
	fmt.Printf("  History bound:   %d turns\n", cfg.History.MaxTurns)
	if cfg.History.ResetSchedule != "" {
		fmt.Printf("  Reset schedule:  %s\n", cfg.History.ResetSchedule)
	}
	fmt.Printf("  Audit enabled:   %t\n", cfg.Audit.Enabled)
	fmt.Printf("  Metrics enabled: %t\n", cfg.Metrics.Enabled)
	return nil
}
