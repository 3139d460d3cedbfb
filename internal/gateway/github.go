// Package gateway provides a gateway to the GitHub API,
// abstracting away the underlying REST and GraphQL clients.
package gateway

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/go-github/v62/github"
	"github.com/shurcooL/githubv4"
	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"github.com/gofri/go-github-ratelimit/github_ratelimit"

	"github.com/maintainhq/maintain/internal/domain"
)

// Fetcher defines the behavior of a gateway for fetching information from GitHub.
type Fetcher interface {
	// FetchOpenPullRequests returns every open pull request of one repository,
	// consuming all result pages before returning.
	FetchOpenPullRequests(ctx context.Context, repo domain.Repository) ([]domain.PullRequest, error)
	// FetchViewer resolves the user behind the configured token.
	FetchViewer(ctx context.Context) (domain.Viewer, error)
}

// GitHubGateway is the concrete implementation of the Fetcher interface.
type GitHubGateway struct {
	restClient    *github.Client
	graphqlClient *githubv4.Client
	logger        *zap.Logger
}

// viewerQuery resolves the authenticated user via GraphQL.
type viewerQuery struct {
	Viewer struct {
		Login githubv4.String
		Name  githubv4.String
	}
}

// NewGitHubGateway constructs a gateway around a single authenticated HTTP
// client. The gateway is built once at process start and passed by handle to
// everything that talks to GitHub.
func NewGitHubGateway(token string, logger *zap.Logger) (*GitHubGateway, error) {
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

// FetchOpenPullRequests lists the open pull requests of one repository using
// the REST API, following pagination until exhausted.
func (g *GitHubGateway) FetchOpenPullRequests(ctx context.Context, repo domain.Repository) ([]domain.PullRequest, error) {
	g.logger.Debug("fetching open pull requests", zap.String("repository", repo.FullName()))
	opts := &github.PullRequestListOptions{
		State:       "open",
		ListOptions: github.ListOptions{PerPage: 100},
	}
	var pulls []domain.PullRequest
	for {
		page, resp, err := g.restClient.PullRequests.List(ctx, repo.Owner, repo.Name, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list open pull requests for %s: %w", repo.FullName(), err)
		}
		for _, pr := range page {
			pulls = append(pulls, domain.PullRequest{
				Repo:      repo,
				Number:    pr.GetNumber(),
				Title:     strings.TrimSpace(pr.GetTitle()),
				URL:       pr.GetHTMLURL(),
				UpdatedAt: pr.GetUpdatedAt().Time,
			})
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
		g.logger.Debug("fetching next page of pull requests", zap.String("repository", repo.FullName()), zap.Int("page", resp.NextPage))
	}
	return pulls, nil
}

// FetchViewer resolves the authenticated user with a GraphQL viewer query.
func (g *GitHubGateway) FetchViewer(ctx context.Context) (domain.Viewer, error) {
	var q viewerQuery
	if err := g.graphqlClient.Query(ctx, &q, nil); err != nil {
		return domain.Viewer{}, fmt.Errorf("failed to execute GraphQL viewer query: %w", err)
	}
	return domain.Viewer{
		Login: string(q.Viewer.Login),
		Name:  string(q.Viewer.Name),
	}, nil
}
