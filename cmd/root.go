// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/openclaw/radar/internal/config"
	"github.com/openclaw/radar/internal/gateway"
	"github.com/openclaw/radar/internal/usecase"
)

var rootCmd = &cobra.Command{
	Use:   "radar",
	Short: "A CLI tool to scan GitHub for recent project activity.",
	Long: `radar aggregates recent GitHub activity (issues, pull requests, and
related repositories) for a tracked open-source project, renders it as a
markdown report, and can publish the same report to a Notion page.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Persistent flags, available to all commands.
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
	rootCmd.PersistentFlags().Int("window", 0, "Override the recency window in hours")
}

// newLogger builds the command logger: silent by default, stderr when
// --verbose is set.
func newLogger(cmd *cobra.Command) *log.Logger {
	logger := log.New(io.Discard, "", log.LstdFlags)
	if verbose, _ := cmd.InheritedFlags().GetBool("verbose"); verbose {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

// loadConfig loads and validates the environment configuration, applying
// the --window flag override when given.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if window, _ := cmd.InheritedFlags().GetInt("window"); window > 0 {
		cfg.WindowHours = window
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newBuilder wires the GitHub gateway and snapshot builder for a command run.
func newBuilder(cfg *config.Config, logger *log.Logger) (*usecase.Builder, error) {
	fetcher, err := gateway.NewGitHubGateway(cfg.GitHubToken, logger)
	if err != nil {
		return nil, err
	}
	return usecase.NewBuilder(fetcher, logger, nil), nil
}
