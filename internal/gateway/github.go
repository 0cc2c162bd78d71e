// Package gateway provides a gateway to the GitHub API,
// abstracting away the underlying REST and GraphQL clients.
package gateway

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/google/go-github/v62/github"
	"github.com/shurcooL/githubv4"
	"golang.org/x/oauth2"

	"github.com/gofri/go-github-ratelimit/github_ratelimit"

	"github.com/openclaw/radar/internal/domain"
)

// Fetcher defines the behavior of a gateway for fetching radar source data
// from GitHub. Each method issues a single bounded query; there is no
// pagination beyond the given limit.
type Fetcher interface {
	FetchIssues(ctx context.Context, owner, repo string, limit int) ([]domain.ActivityRecord, error)
	FetchPullRequests(ctx context.Context, owner, repo string, limit int) ([]domain.ActivityRecord, error)
	SearchRepositories(ctx context.Context, term string, limit int) ([]domain.RepoRecord, error)
}

// GitHubGateway is the concrete implementation of the Fetcher interface.
type GitHubGateway struct {
	restClient    *github.Client
	graphqlClient *githubv4.Client
	logger        *log.Logger
}

// repoSearchQuery fetches repositories matching the radar search term,
// most recently updated first.
type repoSearchQuery struct {
	Search struct {
		Nodes []struct {
			Repository struct {
				Name          string
				NameWithOwner string
				Description   string
				Url           string `graphql:"url"`
				CreatedAt     githubv4.DateTime
				UpdatedAt     githubv4.DateTime
				Owner         struct {
					Login string
				}
			} `graphql:"... on Repository"`
		}
	} `graphql:"search(query: $query, type: REPOSITORY, first: $limit)"`
}

// NewGitHubGateway is a constructor that creates a new instance of GitHubGateway.
func NewGitHubGateway(token string, logger *log.Logger) (Fetcher, error) {
	rateLimitWaiter, err := github_ratelimit.NewRateLimitWaiter(nil, github_ratelimit.WithSingleSleepLimit(1*time.Hour, nil))
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limit waiter: %w", err)
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	httpClient := &http.Client{
		Transport: &oauth2.Transport{
			Base:   rateLimitWaiter,
			Source: ts,
		},
	}
	return &GitHubGateway{
		restClient:    github.NewClient(httpClient),
		graphqlClient: githubv4.NewClient(httpClient),
		logger:        logger,
	}, nil
}

// FetchIssues returns the most recently updated issues of owner/repo, in
// any state. The REST issues listing also returns pull requests; those are
// skipped here so the two record streams stay disjoint.
func (g *GitHubGateway) FetchIssues(ctx context.Context, owner, repo string, limit int) ([]domain.ActivityRecord, error) {
	g.logger.Printf("Fetching up to %d issues for %s/%s...\n", limit, owner, repo)
	opts := &github.IssueListByRepoOptions{
		State:       "all",
		Sort:        "updated",
		Direction:   "desc",
		ListOptions: github.ListOptions{PerPage: limit},
	}
	issues, _, err := g.restClient.Issues.ListByRepo(ctx, owner, repo, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list issues for %s/%s: %w", owner, repo, err)
	}

	records := make([]domain.ActivityRecord, 0, len(issues))
	for _, is := range issues {
		if is.IsPullRequest() {
			continue
		}
		records = append(records, domain.ActivityRecord{
			ID:        is.GetNumber(),
			Title:     is.GetTitle(),
			State:     is.GetState(),
			Author:    login(is.User),
			URL:       is.GetHTMLURL(),
			CreatedAt: isoTimestamp(is.CreatedAt),
			UpdatedAt: isoTimestamp(is.UpdatedAt),
			Kind:      domain.KindIssue,
		})
	}
	g.logger.Printf("Fetched %d issues.\n", len(records))
	return records, nil
}

// FetchPullRequests returns the most recently updated pull requests of
// owner/repo, in any state. A pull request with a merge timestamp reports
// its state as "merged"; the REST listing only distinguishes open/closed.
func (g *GitHubGateway) FetchPullRequests(ctx context.Context, owner, repo string, limit int) ([]domain.ActivityRecord, error) {
	g.logger.Printf("Fetching up to %d pull requests for %s/%s...\n", limit, owner, repo)
	opts := &github.PullRequestListOptions{
		State:       "all",
		Sort:        "updated",
		Direction:   "desc",
		ListOptions: github.ListOptions{PerPage: limit},
	}
	prs, _, err := g.restClient.PullRequests.List(ctx, owner, repo, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list pull requests for %s/%s: %w", owner, repo, err)
	}

	records := make([]domain.ActivityRecord, 0, len(prs))
	for _, pr := range prs {
		state := pr.GetState()
		if pr.MergedAt != nil {
			state = "merged"
		}
		records = append(records, domain.ActivityRecord{
			ID:        pr.GetNumber(),
			Title:     pr.GetTitle(),
			State:     state,
			Author:    login(pr.User),
			URL:       pr.GetHTMLURL(),
			CreatedAt: isoTimestamp(pr.CreatedAt),
			UpdatedAt: isoTimestamp(pr.UpdatedAt),
			MergedAt:  isoTimestamp(pr.MergedAt),
			Kind:      domain.KindPullRequest,
		})
	}
	g.logger.Printf("Fetched %d pull requests.\n", len(records))
	return records, nil
}

// SearchRepositories returns repositories whose name or description matches
// term, most recently updated first, via the GraphQL search API.
func (g *GitHubGateway) SearchRepositories(ctx context.Context, term string, limit int) ([]domain.RepoRecord, error) {
	g.logger.Printf("Searching up to %d repositories for %q...\n", limit, term)
	variables := map[string]interface{}{
		"query": githubv4.String(fmt.Sprintf("%s sort:updated-desc", term)),
		"limit": githubv4.Int(limit),
	}

	var q repoSearchQuery
	if err := g.graphqlClient.Query(ctx, &q, variables); err != nil {
		return nil, fmt.Errorf("failed to execute GraphQL repository search: %w", err)
	}

	records := make([]domain.RepoRecord, 0, len(q.Search.Nodes))
	for _, node := range q.Search.Nodes {
		r := node.Repository
		owner := r.Owner.Login
		if owner == "" {
			owner = "?"
		}
		records = append(records, domain.RepoRecord{
			Name:        r.Name,
			FullName:    r.NameWithOwner,
			Description: r.Description,
			Owner:       owner,
			URL:         r.Url,
			CreatedAt:   isoDateTime(r.CreatedAt),
			UpdatedAt:   isoDateTime(r.UpdatedAt),
		})
	}
	g.logger.Printf("Found %d repositories.\n", len(records))
	return records, nil
}

// login resolves a user to its login, with the "?" placeholder when the
// user or login is absent.
func login(u *github.User) string {
	if u == nil || u.GetLogin() == "" {
		return "?"
	}
	return u.GetLogin()
}

func isoTimestamp(ts *github.Timestamp) string {
	if ts == nil || ts.IsZero() {
		return ""
	}
	return ts.UTC().Format(time.RFC3339)
}

func isoDateTime(dt githubv4.DateTime) string {
	if dt.IsZero() {
		return ""
	}
	return dt.UTC().Format(time.RFC3339)
}
