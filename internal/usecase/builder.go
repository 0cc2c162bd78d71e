// Package usecase contains the business logic of the application.
package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/openclaw/radar/internal/domain"
	"github.com/openclaw/radar/internal/gateway"
)

// Source record caps, matching the query limits of the underlying API
// calls. Display truncation is a renderer concern; the snapshot keeps
// everything inside the window.
const (
	issueLimit = 50
	prLimit    = 50
	repoLimit  = 30
)

// Builder assembles one radar Snapshot per run. It orchestrates the three
// fetches and applies the recency window; it holds no state between runs.
type Builder struct {
	fetcher gateway.Fetcher
	logger  *log.Logger
	now     func() time.Time
}

// NewBuilder creates a new Builder instance. The clock is injectable for
// tests; pass nil to use the wall clock.
func NewBuilder(fetcher gateway.Fetcher, logger *log.Logger, now func() time.Time) *Builder {
	if now == nil {
		now = time.Now
	}
	return &Builder{
		fetcher: fetcher,
		logger:  logger,
		now:     now,
	}
}

// Build fetches issues and pull requests for repoFullName ("owner/name")
// and repositories matching searchTerm, keeps the records whose best
// timestamp falls inside the trailing windowHours, and returns them as one
// immutable Snapshot. The three fetches are independent and run
// concurrently; any fetch error aborts the run. Source ordering is
// preserved, and a record with no resolvable timestamp is dropped rather
// than defaulted to now.
func (b *Builder) Build(ctx context.Context, repoFullName, searchTerm string, windowHours int) (*domain.Snapshot, error) {
	b.logger.Println("Usecase: Building activity snapshot...")
	owner, name := splitRepo(repoFullName)

	var issues, prs []domain.ActivityRecord
	var repos []domain.RepoRecord

	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		var err error
		issues, err = b.fetcher.FetchIssues(egCtx, owner, name, issueLimit)
		return err
	})

	eg.Go(func() error {
		var err error
		prs, err = b.fetcher.FetchPullRequests(egCtx, owner, name, prLimit)
		return err
	})

	eg.Go(func() error {
		var err error
		repos, err = b.fetcher.SearchRepositories(egCtx, searchTerm, repoLimit)
		return err
	})

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	b.logger.Println("Usecase: All sources fetched successfully.")

	// One captured clock value drives both the window evaluation and the
	// generation stamp, so a fixed clock yields a fully deterministic run.
	now := b.now().UTC()

	snapshot := &domain.Snapshot{
		GeneratedAt: now,
		WindowHours: windowHours,
		Repo:        repoFullName,
		CoreIssues:  recentActivity(issues, windowHours, now),
		CorePRs:     recentActivity(prs, windowHours, now),
		Repos:       recentRepos(repos, windowHours, now),
	}

	b.logger.Printf("Usecase: Snapshot ready (%d issues, %d pull requests, %d repos in the last %dh).\n",
		len(snapshot.CoreIssues), len(snapshot.CorePRs), len(snapshot.Repos), windowHours)
	return snapshot, nil
}

func recentActivity(records []domain.ActivityRecord, windowHours int, now time.Time) []domain.ActivityRecord {
	recent := make([]domain.ActivityRecord, 0, len(records))
	for _, r := range records {
		if ts := r.BestTimestamp(); ts != "" && domain.IsRecent(ts, windowHours, now) {
			recent = append(recent, r)
		}
	}
	return recent
}

func recentRepos(records []domain.RepoRecord, windowHours int, now time.Time) []domain.RepoRecord {
	recent := make([]domain.RepoRecord, 0, len(records))
	for _, r := range records {
		if ts := r.BestTimestamp(); ts != "" && domain.IsRecent(ts, windowHours, now) {
			recent = append(recent, r)
		}
	}
	return recent
}

// splitRepo splits "owner/name" into its parts. A bare name is treated as
// both owner and name missing its counterpart, which the gateway will
// surface as a not-found error from the API.
func splitRepo(fullName string) (owner, name string) {
	owner, name, found := strings.Cut(fullName, "/")
	if !found {
		return fullName, ""
	}
	return owner, name
}
