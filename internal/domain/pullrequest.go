// Package domain contains the core data structures shared by the commands.
package domain

import (
	"fmt"
	"strings"
	"time"
)

// Repository identifies a GitHub repository by owner and name.
type Repository struct {
	Owner string `json:"owner"`
	Name  string `json:"name"`
}

// ParseRepository parses an "owner/name" string into a Repository.
func ParseRepository(full string) (Repository, error) {
	owner, name, ok := strings.Cut(full, "/")
	if !ok || owner == "" || name == "" {
		return Repository{}, fmt.Errorf("invalid repository %q: expected owner/name", full)
	}
	return Repository{Owner: owner, Name: name}, nil
}

// FullName returns the "owner/name" form used in GitHub URLs and queries.
func (r Repository) FullName() string {
	return r.Owner + "/" + r.Name
}

// PageURL returns the GitHub web page for the repository, optionally pointing
// at a sub-page such as "actions" or "settings".
func (r Repository) PageURL(suffix string) string {
	url := "https://github.com/" + r.FullName()
	if suffix != "" {
		url += "/" + suffix
	}
	return url
}

// PullRequest holds the subset of pull request data shown on the dashboard.
type PullRequest struct {
	Repo      Repository `json:"repo"`
	Number    int        `json:"number"`
	Title     string     `json:"title"`
	URL       string     `json:"url"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Viewer is the authenticated GitHub user running the tool.
type Viewer struct {
	Login string `json:"login"`
	Name  string `json:"name"`
}

// PullRequestSummary aggregates age statistics over a set of open pull
// requests, measured from their last update.
type PullRequestSummary struct {
	Count         int     `json:"count"`
	MeanAgeDays   float64 `json:"mean_age_days"`
	MedianAgeDays float64 `json:"median_age_days"`
}
