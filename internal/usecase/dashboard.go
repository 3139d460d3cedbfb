// Package usecase contains the business logic of the application.
package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/montanaflynn/stats"
	"go.uber.org/zap"

	"github.com/maintainhq/maintain/internal/collect"
	"github.com/maintainhq/maintain/internal/domain"
	"github.com/maintainhq/maintain/internal/gateway"
)

// Dashboard is the use case behind the open pull request overview.
// It fans the repository list through a bounded worker pool and merges
// everything into one sorted view.
type Dashboard struct {
	fetcher gateway.Fetcher
	logger  *zap.Logger
	now     func() time.Time
}

// NewDashboard creates a new Dashboard instance.
func NewDashboard(fetcher gateway.Fetcher, logger *zap.Logger) *Dashboard {
	return &Dashboard{
		fetcher: fetcher,
		logger:  logger,
		now:     time.Now,
	}
}

// OpenPullRequests gathers the open pull requests of every repository
// concurrently and returns them sorted by (owner, repo, updated) descending,
// together with age statistics.
//
// The underlying fan-out is fail-fast: if any single repository cannot be
// fetched, the whole call fails and partial results are discarded.
func (d *Dashboard) OpenPullRequests(ctx context.Context, repos []domain.Repository) ([]domain.PullRequest, domain.PullRequestSummary, error) {
	d.logger.Debug("starting pull request aggregation", zap.Int("repositories", len(repos)))

	pulls, err := collect.All(ctx, repos, collect.DefaultWorkers, d.fetcher.FetchOpenPullRequests)
	if err != nil {
		return nil, domain.PullRequestSummary{}, err
	}

	// Completion order is non-deterministic, so impose a stable order here.
	sort.Slice(pulls, func(i, j int) bool {
		a, b := pulls[i], pulls[j]
		if a.Repo.Owner != b.Repo.Owner {
			return a.Repo.Owner > b.Repo.Owner
		}
		if a.Repo.Name != b.Repo.Name {
			return a.Repo.Name > b.Repo.Name
		}
		return a.UpdatedAt.After(b.UpdatedAt)
	})

	summary := summarize(pulls, d.now())
	d.logger.Debug("aggregation complete", zap.Int("pull_requests", summary.Count))
	return pulls, summary, nil
}

// summarize computes age statistics, in days since last update, over the
// aggregated pull requests.
func summarize(pulls []domain.PullRequest, now time.Time) domain.PullRequestSummary {
	if len(pulls) == 0 {
		return domain.PullRequestSummary{}
	}
	ages := make([]float64, 0, len(pulls))
	for _, pr := range pulls {
		ages = append(ages, now.Sub(pr.UpdatedAt).Hours()/24)
	}
	mean, _ := stats.Mean(ages)
	median, _ := stats.Median(ages)
	return domain.PullRequestSummary{
		Count:         len(pulls),
		MeanAgeDays:   mean,
		MedianAgeDays: median,
	}
}
