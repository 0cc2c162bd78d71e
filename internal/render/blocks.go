package render

import (
	"strconv"
	"strings"

	"github.com/openclaw/radar/internal/domain"
)

// Block is one node of the hierarchical report. The concrete variants are
// Heading, Bullet, and Table; each maps one-to-one onto a native block type
// of a document-collaboration API.
type Block interface {
	isBlock()
}

// Heading is a section heading at the given level (2 for the report title,
// 3 for sections).
type Heading struct {
	Level int
	Text  string
}

// Bullet is one bulleted list item.
type Bullet struct {
	Text string
}

// Cell is one table cell: plain text, hyperlinked when URL is non-empty.
type Cell struct {
	Text string
	URL  string
}

// Table is a grid of Width columns; the first row is the column header.
type Table struct {
	Width int
	Rows  [][]Cell
}

func (Heading) isBlock() {}
func (Bullet) isBlock()  {}
func (Table) isBlock()   {}

// Blocks renders the snapshot as an ordered block sequence carrying the
// same sections and facts as Text. Empty sections keep their heading and a
// header-only table; the structured medium has no prose placeholder line.
// Pure and deterministic: the same snapshot always yields the same tree.
func Blocks(s *domain.Snapshot) []Block {
	var blocks []Block

	blocks = append(blocks, Heading{Level: 2, Text: reportTitle(s)})

	blocks = append(blocks, Heading{Level: 3, Text: "Summary"})
	for _, l := range summaryLines(s) {
		blocks = append(blocks, Bullet{Text: l})
	}

	blocks = append(blocks, Heading{Level: 3, Text: issuesTitle(s)})
	issueRows := [][]Cell{{{Text: "#"}, {Text: "State"}, {Text: "Author"}, {Text: "Title"}}}
	for _, it := range capActivity(s.CoreIssues) {
		issueRows = append(issueRows, []Cell{
			{Text: strconv.Itoa(it.ID)},
			{Text: orPlaceholder(it.State)},
			{Text: orPlaceholder(it.Author)},
			{Text: strings.TrimSpace(it.Title), URL: it.URL},
		})
	}
	blocks = append(blocks, Table{Width: 4, Rows: issueRows})

	blocks = append(blocks, Heading{Level: 3, Text: prsTitle(s)})
	prRows := [][]Cell{{{Text: "#"}, {Text: "Type"}, {Text: "State"}, {Text: "Author"}, {Text: "Title"}}}
	for _, pr := range capActivity(s.CorePRs) {
		prRows = append(prRows, []Cell{
			{Text: strconv.Itoa(pr.ID)},
			{Text: string(domain.Classify(pr.Title))},
			{Text: orPlaceholder(pr.State)},
			{Text: orPlaceholder(pr.Author)},
			{Text: strings.TrimSpace(pr.Title), URL: pr.URL},
		})
	}
	blocks = append(blocks, Table{Width: 5, Rows: prRows})

	blocks = append(blocks, Heading{Level: 3, Text: reposTitle()})
	repoRows := [][]Cell{{{Text: "Repo"}, {Text: "Owner"}, {Text: "Description"}}}
	for _, r := range capRepos(s.Repos) {
		repoRows = append(repoRows, []Cell{
			{Text: strings.TrimSpace(r.DisplayName()), URL: r.URL},
			{Text: orPlaceholder(r.Owner)},
			{Text: truncateDescription(strings.TrimSpace(r.Description))},
		})
	}
	blocks = append(blocks, Table{Width: 3, Rows: repoRows})

	return blocks
}
