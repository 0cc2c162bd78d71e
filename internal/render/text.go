package render

import (
	"fmt"
	"strings"

	"github.com/openclaw/radar/internal/domain"
)

// Text renders the snapshot as a flat markdown report: window heading,
// summary bullets with the total filtered counts, then the issues, pull
// requests, and repositories tables capped at ten rows each. Pure and
// deterministic: the same snapshot always yields the same bytes.
func Text(s *domain.Snapshot) string {
	var lines []string

	lines = append(lines, fmt.Sprintf("## %s\n", reportTitle(s)))

	lines = append(lines, "### Summary")
	for _, l := range summaryLines(s) {
		lines = append(lines, "- "+l)
	}
	lines = append(lines, "")

	lines = append(lines, "### "+issuesTitle(s))
	if len(s.CoreIssues) == 0 {
		lines = append(lines, "- No new or updated issues in this window.\n")
	} else {
		lines = append(lines, "| # | State | Author | Title |")
		lines = append(lines, "|---|-------|--------|-------|")
		for _, it := range capActivity(s.CoreIssues) {
			lines = append(lines, fmt.Sprintf("| %d | %s | %s | %s |",
				it.ID, orPlaceholder(it.State), orPlaceholder(it.Author), titleCell(it)))
		}
		lines = append(lines, "")
	}

	lines = append(lines, "### "+prsTitle(s))
	if len(s.CorePRs) == 0 {
		lines = append(lines, "- No new or updated pull requests in this window.\n")
	} else {
		lines = append(lines, "| # | Type | State | Author | Title |")
		lines = append(lines, "|---|------|-------|--------|-------|")
		for _, pr := range capActivity(s.CorePRs) {
			lines = append(lines, fmt.Sprintf("| %d | %s | %s | %s | %s |",
				pr.ID, domain.Classify(pr.Title), orPlaceholder(pr.State), orPlaceholder(pr.Author), titleCell(pr)))
		}
		lines = append(lines, "")
	}

	lines = append(lines, "### "+reposTitle())
	if len(s.Repos) == 0 {
		lines = append(lines, "- No recently updated related repositories.")
	} else {
		lines = append(lines, "| Repo | Owner | Description |")
		lines = append(lines, "|------|-------|-------------|")
		for _, r := range capRepos(s.Repos) {
			name := sanitizeCell(r.DisplayName())
			cell := name
			if r.URL != "" {
				cell = fmt.Sprintf("[%s](%s)", name, r.URL)
			}
			desc := truncateDescription(sanitizeCell(r.Description))
			lines = append(lines, fmt.Sprintf("| %s | %s | %s |", cell, orPlaceholder(r.Owner), desc))
		}
	}

	return strings.Join(lines, "\n")
}

// titleCell renders a record title as a markdown link when a URL exists.
func titleCell(r domain.ActivityRecord) string {
	title := sanitizeCell(r.Title)
	if r.URL == "" {
		return title
	}
	return fmt.Sprintf("[%s](%s)", title, r.URL)
}
