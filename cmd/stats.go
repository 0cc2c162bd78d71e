package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/montanaflynn/stats"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/openclaw/radar/internal/domain"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize activity ages inside the window",
	Long: `Build a snapshot of recent activity for the tracked repository and print
summary statistics: filtered counts, pull request classification breakdown,
and the mean/median/max age of the activity inside the window.`,
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

		return writeStats(cmd.OutOrStdout(), snapshot)
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

// writeStats prints the count and age summary tables for a snapshot.
func writeStats(w io.Writer, snapshot *domain.Snapshot) error {
	fmt.Fprintf(w, "\nActivity for %s (last %d hours)\n\n", snapshot.Repo, snapshot.WindowHours)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Metric", "Value"})
	table.Append([]string{"Issues", fmt.Sprintf("%d", len(snapshot.CoreIssues))})
	table.Append([]string{"Pull Requests", fmt.Sprintf("%d", len(snapshot.CorePRs))})
	table.Append([]string{"Related Repositories", fmt.Sprintf("%d", len(snapshot.Repos))})
	for _, label := range []domain.Label{domain.LabelBug, domain.LabelFeature, domain.LabelDocs, domain.LabelRefactor, domain.LabelOther} {
		count := 0
		for _, pr := range snapshot.CorePRs {
			if domain.Classify(pr.Title) == label {
				count++
			}
		}
		table.Append([]string{fmt.Sprintf("PRs: %s", label), fmt.Sprintf("%d", count)})
	}
	table.Render()

	ages := activityAges(snapshot)
	if len(ages) == 0 {
		fmt.Fprintln(w, "\nNo issue or pull request activity inside the window.")
		return nil
	}

	mean, err := stats.Mean(ages)
	if err != nil {
		return fmt.Errorf("failed to compute mean age: %w", err)
	}
	median, err := stats.Median(ages)
	if err != nil {
		return fmt.Errorf("failed to compute median age: %w", err)
	}
	max, err := stats.Max(ages)
	if err != nil {
		return fmt.Errorf("failed to compute max age: %w", err)
	}

	fmt.Fprintln(w)
	ageTable := tablewriter.NewWriter(w)
	ageTable.SetHeader([]string{"Age of activity (hours)", "Value"})
	ageTable.Append([]string{"Mean", fmt.Sprintf("%.1f", mean)})
	ageTable.Append([]string{"Median", fmt.Sprintf("%.1f", median)})
	ageTable.Append([]string{"Max", fmt.Sprintf("%.1f", max)})
	ageTable.Render()

	return nil
}

// activityAges returns the hours between each issue/PR best timestamp and
// the snapshot generation time. Records already passed the recency filter,
// so their timestamps are known to parse.
func activityAges(s *domain.Snapshot) []float64 {
	var ages []float64
	records := make([]domain.ActivityRecord, 0, len(s.CoreIssues)+len(s.CorePRs))
	records = append(records, s.CoreIssues...)
	records = append(records, s.CorePRs...)
	for _, r := range records {
		t, err := time.Parse(time.RFC3339, r.BestTimestamp())
		if err != nil {
			continue
		}
		ages = append(ages, s.GeneratedAt.Sub(t).Hours())
	}
	return ages
}
