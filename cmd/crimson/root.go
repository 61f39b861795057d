package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "crimson",
	Short: "Crimson - AI chat companion gateway",
	Long: `Crimson is an AI chat companion gateway with provider fallback.

It serves a small HTTP API backed by a prioritized chain of chat
providers, falling back down the chain when a provider is unavailable
or fails:
  - Groq (fast free cloud)
  - Ollama (local model)
  - OpenAI (paid cloud, last resort)

The gateway keeps a bounded shared conversation history, and exposes
weather lookup and video search endpoints for the companion frontend.`,
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Provider keys usually live in a .env file during development.
		// A missing file is not an error.
		_ = godotenv.Load()
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path (optional, env vars apply either way)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
