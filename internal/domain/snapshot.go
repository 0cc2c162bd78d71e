// Package domain contains the core data structures and domain logic for the
// application: the activity snapshot, the recency window predicate, and the
// pull request classifier.
package domain

import "time"

// Kind distinguishes the two activity record variants.
type Kind string

const (
	KindIssue       Kind = "issue"
	KindPullRequest Kind = "pull_request"
)

// ActivityRecord is one issue or pull request from the tracked repository.
// Timestamps are kept as the ISO-8601 strings the source returned; an empty
// string means the field was absent.
type ActivityRecord struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	State     string `json:"state"`
	Author    string `json:"author"`
	URL       string `json:"url,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
	MergedAt  string `json:"mergedAt,omitempty"`
	Kind      Kind   `json:"kind"`
}

// BestTimestamp returns the timestamp used for recency evaluation:
// updatedAt, falling back to createdAt, falling back to mergedAt.
// An empty result means the record carries no usable timestamp.
func (r ActivityRecord) BestTimestamp() string {
	if r.UpdatedAt != "" {
		return r.UpdatedAt
	}
	if r.CreatedAt != "" {
		return r.CreatedAt
	}
	return r.MergedAt
}

// RepoRecord is one repository matching the configured search term.
type RepoRecord struct {
	Name        string `json:"name"`
	FullName    string `json:"fullName"`
	Description string `json:"description"`
	Owner       string `json:"owner"`
	URL         string `json:"url,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
}

// BestTimestamp returns updatedAt, falling back to createdAt.
func (r RepoRecord) BestTimestamp() string {
	if r.UpdatedAt != "" {
		return r.UpdatedAt
	}
	return r.CreatedAt
}

// DisplayName returns the full name, falling back to the short name.
func (r RepoRecord) DisplayName() string {
	if r.FullName != "" {
		return r.FullName
	}
	return r.Name
}

// Snapshot is the immutable aggregate of one radar run: every issue, pull
// request, and related repository whose best timestamp falls inside the
// recency window, in the order the source returned them. Both renderers
// consume the same snapshot, and callers may serialize it as-is.
type Snapshot struct {
	GeneratedAt time.Time        `json:"generatedAt"`
	WindowHours int              `json:"windowHours"`
	Repo        string           `json:"repo"`
	CoreIssues  []ActivityRecord `json:"coreIssues"`
	CorePRs     []ActivityRecord `json:"corePRs"`
	Repos       []RepoRecord     `json:"repos"`
}
