package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/openclaw/radar/internal/render"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Build an activity snapshot and print the markdown report",
	Long: `Build a snapshot of recent activity for the tracked repository, write it
as JSON to the configured output path, and print the markdown report to
standard output.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger(cmd)

		cfg, err := loadConfig(cmd)
		if err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		builder, err := newBuilder(cfg, logger)
		if err != nil {
			return fmt.Errorf("failed to create GitHub gateway: %w", err)
		}

		snapshot, err := builder.Build(cmd.Context(), cfg.Repo, cfg.SearchTerm, cfg.WindowHours)
		if err != nil {
			return fmt.Errorf("failed to build snapshot: %w", err)
		}

		data, err := json.MarshalIndent(snapshot, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal snapshot: %w", err)
		}
		if err := os.WriteFile(cfg.OutputPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write snapshot to %s: %w", cfg.OutputPath, err)
		}
		logger.Printf("Snapshot written to %s\n", cfg.OutputPath)

		fmt.Fprintln(cmd.OutOrStdout(), render.Text(snapshot))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
}
