package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openclaw/radar/internal/notion"
	"github.com/openclaw/radar/internal/render"
)

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Build an activity snapshot and publish it as a Notion page",
	Long: `Build a snapshot of recent activity for the tracked repository and create
a Notion page under the configured parent page, with the report as native
Notion blocks (headings, bullets, and tables with linked cells).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger(cmd)

		cfg, err := loadConfig(cmd)
		if err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
		if err := cfg.ValidateNotion(); err != nil {
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

		blocks := render.Blocks(snapshot)
		title := snapshot.GeneratedAt.Format("2006-01-02") + " GitHub Radar"

		client := notion.NewClient(cfg.NotionAPIKey)
		pageID, err := client.CreatePage(cmd.Context(), cfg.NotionParentPageID, title, blocks)
		if err != nil {
			return fmt.Errorf("failed to create Notion page: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Notion page created with id: %s\n", pageID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(publishCmd)
}
