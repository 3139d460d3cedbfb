package render

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maintainhq/maintain/internal/bumpdeps"
	"github.com/maintainhq/maintain/internal/domain"
)

func TestPullRequestTable(t *testing.T) {
	pulls := []domain.PullRequest{
		{
			Repo:      domain.Repository{Owner: "alpha", Name: "one"},
			Title:     "Fix build",
			UpdatedAt: time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
		},
		{
			Repo:      domain.Repository{Owner: "beta", Name: "two"},
			Title:     "Bump deps",
			UpdatedAt: time.Date(2026, 3, 15, 11, 30, 0, 0, time.UTC),
		},
	}
	summary := domain.PullRequestSummary{Count: 2, MeanAgeDays: 2.5, MedianAgeDays: 2.5}

	var sb strings.Builder
	require.NoError(t, PullRequestTable(&sb, pulls, summary))
	out := sb.String()

	// The shared "2026-03-1" prefix moves into the title line; rows keep the rest.
	assert.Contains(t, out, "Pull requests @ 2026-03-1")
	assert.Contains(t, out, "4T10:00:00Z")
	assert.Contains(t, out, "5T11:30:00Z")
	assert.NotContains(t, out, "2026-03-14T10:00:00Z")
	assert.Contains(t, out, "alpha")
	assert.Contains(t, out, "Fix build")
	assert.Contains(t, out, "2 open, mean age 2.5 days, median 2.5 days")
}

func TestPullRequestTable_Empty(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, PullRequestTable(&sb, nil, domain.PullRequestSummary{}))
	assert.Contains(t, sb.String(), "Pull requests @")
	assert.NotContains(t, sb.String(), "mean age")
}

func TestRepositoryTable(t *testing.T) {
	repos := []domain.Repository{{Owner: "alpha", Name: "one"}}
	urls := []string{"https://github.com/alpha/one/actions"}

	var sb strings.Builder
	require.NoError(t, RepositoryTable(&sb, repos, urls))
	assert.Contains(t, sb.String(), "alpha")
	assert.Contains(t, sb.String(), "https://github.com/alpha/one/actions")
}

func TestBumpTable(t *testing.T) {
	results := []bumpdeps.Result{
		{Repo: "/repos/a", Branch: "bump-2026-08-30", HooksClean: true},
		{Repo: "/repos/b", Branch: "bump-2026-08-30", HooksClean: false},
	}

	var sb strings.Builder
	require.NoError(t, BumpTable(&sb, results))
	out := sb.String()
	assert.Contains(t, out, "/repos/a")
	assert.Contains(t, out, "clean")
	assert.Contains(t, out, "dirty")
}

func TestCommonPrefix(t *testing.T) {
	assert.Equal(t, "", commonPrefix(nil))
	assert.Equal(t, "abc", commonPrefix([]string{"abc"}))
	assert.Equal(t, "ab", commonPrefix([]string{"abc", "abd"}))
	assert.Equal(t, "", commonPrefix([]string{"abc", "xyz"}))
}
