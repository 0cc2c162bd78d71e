// Package render projects a Snapshot into its two output forms: a flat
// markdown report and a tree of typed content blocks for a document API.
// Derived values shared by both projections (summary counts, section
// titles, classification, description truncation) live in this file so the
// two outputs can never disagree about the underlying facts.
package render

import (
	"fmt"
	"strings"

	"github.com/openclaw/radar/internal/domain"
)

const (
	// displayLimit caps table rows; the summary always reports the full
	// filtered counts.
	displayLimit = 10

	// Repository descriptions longer than descMaxChars characters are cut
	// to descKeepChars plus the ellipsis.
	descMaxChars  = 80
	descKeepChars = 77
	ellipsis      = "..."
)

func reportTitle(s *domain.Snapshot) string {
	return fmt.Sprintf("GitHub Radar (last %d hours)", s.WindowHours)
}

func issuesTitle(s *domain.Snapshot) string {
	return fmt.Sprintf("[%s] Issues", s.Repo)
}

func prsTitle(s *domain.Snapshot) string {
	return fmt.Sprintf("[%s] Pull Requests", s.Repo)
}

func reposTitle() string {
	return "Recently updated related repositories"
}

// summaryLines states the total filtered counts, not the capped row counts.
func summaryLines(s *domain.Snapshot) [3]string {
	return [3]string{
		fmt.Sprintf("Issues updated: %d", len(s.CoreIssues)),
		fmt.Sprintf("Pull requests updated: %d (classified as bug/feature/docs/refactor/other)", len(s.CorePRs)),
		fmt.Sprintf("Recently updated related repositories: %d", len(s.Repos)),
	}
}

// truncateDescription caps a description at descMaxChars characters,
// cutting to descKeepChars plus an ellipsis when longer. Counted in runes,
// not bytes.
func truncateDescription(desc string) string {
	runes := []rune(desc)
	if len(runes) > descMaxChars {
		return string(runes[:descKeepChars]) + ellipsis
	}
	return desc
}

// orPlaceholder substitutes "?" for an absent value.
func orPlaceholder(s string) string {
	if s == "" {
		return "?"
	}
	return s
}

// capActivity returns at most displayLimit records, in snapshot order.
func capActivity(records []domain.ActivityRecord) []domain.ActivityRecord {
	if len(records) > displayLimit {
		return records[:displayLimit]
	}
	return records
}

func capRepos(records []domain.RepoRecord) []domain.RepoRecord {
	if len(records) > displayLimit {
		return records[:displayLimit]
	}
	return records
}

// sanitizeCell prepares free text for a markdown table cell: surrounding
// whitespace trimmed and the column separator swapped for a look-alike
// (U+2016) so the grid is not corrupted. The swap is cosmetic, not an
// escaping scheme.
func sanitizeCell(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), "|", "‖")
}
