package domain

import "strings"

// Label is the intent category derived from a pull request title.
type Label string

const (
	LabelBug      Label = "bug"
	LabelFeature  Label = "feature"
	LabelDocs     Label = "docs"
	LabelRefactor Label = "refactor"
	LabelOther    Label = "other"
)

// classifyRules is an ordered decision list over the lowercased title.
// Order matters: the first matching rule wins, so "Fix docs typo" is bug,
// not docs. "add " keeps its trailing space so that "added" and "addendum"
// do not match.
var classifyRules = []struct {
	match func(string) bool
	label Label
}{
	{func(t string) bool {
		return strings.HasPrefix(t, "fix") || strings.Contains(t, "bug") || strings.Contains(t, "error")
	}, LabelBug},
	{func(t string) bool {
		return strings.HasPrefix(t, "feat") || strings.Contains(t, "feature") || strings.Contains(t, "add ")
	}, LabelFeature},
	{func(t string) bool {
		return strings.HasPrefix(t, "docs") || strings.Contains(t, "doc") || strings.Contains(t, "readme")
	}, LabelDocs},
	{func(t string) bool {
		return strings.Contains(t, "refactor")
	}, LabelRefactor},
}

// Classify maps a pull request title to its Label. Matching is
// case-insensitive and purely lexical; it never fails, and an empty title
// is LabelOther.
func Classify(title string) Label {
	t := strings.ToLower(title)
	for _, rule := range classifyRules {
		if rule.match(t) {
			return rule.label
		}
	}
	return LabelOther
}
