package usecase

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/openclaw/radar/internal/domain"
)

// mockFetcher is a mock implementation of the gateway.Fetcher interface.
// It allows us to simulate the GitHub gateway without making real API calls.
type mockFetcher struct {
	mock.Mock
}

func (m *mockFetcher) FetchIssues(ctx context.Context, owner, repo string, limit int) ([]domain.ActivityRecord, error) {
	args := m.Called(ctx, owner, repo, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ActivityRecord), args.Error(1)
}

func (m *mockFetcher) FetchPullRequests(ctx context.Context, owner, repo string, limit int) ([]domain.ActivityRecord, error) {
	args := m.Called(ctx, owner, repo, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ActivityRecord), args.Error(1)
}

func (m *mockFetcher) SearchRepositories(ctx context.Context, term string, limit int) ([]domain.RepoRecord, error) {
	args := m.Called(ctx, term, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RepoRecord), args.Error(1)
}

// fixedNow is the injected clock for all builder tests.
var fixedNow = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

func TestBuilder_Build(t *testing.T) {
	recent := "2026-08-30T10:00:00Z"
	recentToo := "2026-08-30T08:00:00Z"
	stale := "2026-08-01T10:00:00Z"

	testCases := []struct {
		name           string
		mockIssues     []domain.ActivityRecord
		mockPRs        []domain.ActivityRecord
		mockRepos      []domain.RepoRecord
		mockIssueErr   error
		mockPRErr      error
		mockRepoErr    error
		expectedIssues []domain.ActivityRecord
		expectedPRs    []domain.ActivityRecord
		expectedRepos  []domain.RepoRecord
		expectError    bool
	}{
		{
			name: "happy path - keeps recent records in source order",
			mockIssues: []domain.ActivityRecord{
				{ID: 2, Title: "b", UpdatedAt: recent, Kind: domain.KindIssue},
				{ID: 9, Title: "stale", UpdatedAt: stale, Kind: domain.KindIssue},
				{ID: 1, Title: "a", UpdatedAt: recentToo, Kind: domain.KindIssue},
			},
			mockPRs: []domain.ActivityRecord{
				{ID: 7, Title: "merged only", MergedAt: recent, Kind: domain.KindPullRequest},
			},
			mockRepos: []domain.RepoRecord{
				{FullName: "a/fresh", UpdatedAt: recent},
				{FullName: "b/stale", UpdatedAt: stale},
			},
			expectedIssues: []domain.ActivityRecord{
				{ID: 2, Title: "b", UpdatedAt: recent, Kind: domain.KindIssue},
				{ID: 1, Title: "a", UpdatedAt: recentToo, Kind: domain.KindIssue},
			},
			expectedPRs: []domain.ActivityRecord{
				{ID: 7, Title: "merged only", MergedAt: recent, Kind: domain.KindPullRequest},
			},
			expectedRepos: []domain.RepoRecord{
				{FullName: "a/fresh", UpdatedAt: recent},
			},
		},
		{
			name: "records without any timestamp are dropped, not defaulted",
			mockIssues: []domain.ActivityRecord{
				{ID: 3, Title: "no timestamps at all", Kind: domain.KindIssue},
			},
			mockPRs:        []domain.ActivityRecord{},
			mockRepos:      []domain.RepoRecord{},
			expectedIssues: []domain.ActivityRecord{},
			expectedPRs:    []domain.ActivityRecord{},
			expectedRepos:  []domain.RepoRecord{},
		},
		{
			name: "unparseable timestamps are silently excluded",
			mockIssues: []domain.ActivityRecord{
				{ID: 4, Title: "garbage clock", UpdatedAt: "not-a-time", Kind: domain.KindIssue},
				{ID: 5, Title: "good clock", UpdatedAt: recent, Kind: domain.KindIssue},
			},
			mockPRs:   []domain.ActivityRecord{},
			mockRepos: []domain.RepoRecord{},
			expectedIssues: []domain.ActivityRecord{
				{ID: 5, Title: "good clock", UpdatedAt: recent, Kind: domain.KindIssue},
			},
			expectedPRs:   []domain.ActivityRecord{},
			expectedRepos: []domain.RepoRecord{},
		},
		{
			name:         "fetch failure propagates to the caller",
			mockIssueErr: errors.New("github api error"),
			mockPRs:      []domain.ActivityRecord{},
			mockRepos:    []domain.RepoRecord{},
			expectError:  true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			logger := log.New(io.Discard, "", 0)
			fetcher := new(mockFetcher)

			fetcher.On("FetchIssues", mock.Anything, "openclaw", "openclaw", issueLimit).Return(tc.mockIssues, tc.mockIssueErr)
			fetcher.On("FetchPullRequests", mock.Anything, "openclaw", "openclaw", prLimit).Return(tc.mockPRs, tc.mockPRErr)
			fetcher.On("SearchRepositories", mock.Anything, "openclaw", repoLimit).Return(tc.mockRepos, tc.mockRepoErr)

			builder := NewBuilder(fetcher, logger, func() time.Time { return fixedNow })

			snapshot, err := builder.Build(context.Background(), "openclaw/openclaw", "openclaw", 24)

			if tc.expectError {
				assert.Error(t, err)
				assert.Nil(t, snapshot)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, fixedNow, snapshot.GeneratedAt)
			assert.Equal(t, 24, snapshot.WindowHours)
			assert.Equal(t, "openclaw/openclaw", snapshot.Repo)
			assert.Equal(t, tc.expectedIssues, snapshot.CoreIssues)
			assert.Equal(t, tc.expectedPRs, snapshot.CorePRs)
			assert.Equal(t, tc.expectedRepos, snapshot.Repos)

			fetcher.AssertExpectations(t)
		})
	}
}

// Build must be deterministic under a fixed clock: two runs over the same
// inputs produce equal snapshots regardless of fetch interleaving.
func TestBuilder_BuildDeterministic(t *testing.T) {
	logger := log.New(io.Discard, "", 0)
	records := []domain.ActivityRecord{
		{ID: 1, Title: "one", UpdatedAt: "2026-08-30T10:00:00Z", Kind: domain.KindIssue},
	}

	fetcher := new(mockFetcher)
	fetcher.On("FetchIssues", mock.Anything, "openclaw", "openclaw", issueLimit).Return(records, nil)
	fetcher.On("FetchPullRequests", mock.Anything, "openclaw", "openclaw", prLimit).Return([]domain.ActivityRecord{}, nil)
	fetcher.On("SearchRepositories", mock.Anything, "openclaw", repoLimit).Return([]domain.RepoRecord{}, nil)

	builder := NewBuilder(fetcher, logger, func() time.Time { return fixedNow })

	first, err := builder.Build(context.Background(), "openclaw/openclaw", "openclaw", 24)
	assert.NoError(t, err)
	second, err := builder.Build(context.Background(), "openclaw/openclaw", "openclaw", 24)
	assert.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSplitRepo(t *testing.T) {
	owner, name := splitRepo("openclaw/openclaw")
	assert.Equal(t, "openclaw", owner)
	assert.Equal(t, "openclaw", name)

	owner, name = splitRepo("bare")
	assert.Equal(t, "bare", owner)
	assert.Equal(t, "", name)
}
