// Package render formats command results for the terminal.
package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/maintainhq/maintain/internal/bumpdeps"
	"github.com/maintainhq/maintain/internal/domain"
)

// PullRequestTable writes the dashboard table. The shared prefix of the
// updated timestamps becomes part of the title so the date column only shows
// what differs between rows.
func PullRequestTable(w io.Writer, pulls []domain.PullRequest, summary domain.PullRequestSummary) error {
	timestamps := make([]string, 0, len(pulls))
	for _, pr := range pulls {
		timestamps = append(timestamps, pr.UpdatedAt.UTC().Format(time.RFC3339))
	}
	prefix := commonPrefix(timestamps)

	if _, err := fmt.Fprintf(w, "Pull requests @ %s\n", prefix); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tORG\tREPO\tTITLE")
	for i, pr := range pulls {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			strings.TrimPrefix(timestamps[i], prefix),
			pr.Repo.Owner,
			pr.Repo.Name,
			pr.Title,
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if summary.Count > 0 {
		if _, err := fmt.Fprintf(w, "\n%d open, mean age %.1f days, median %.1f days\n",
			summary.Count, summary.MeanAgeDays, summary.MedianAgeDays); err != nil {
			return err
		}
	}
	return nil
}

// RepositoryTable writes the list of opened repository pages.
func RepositoryTable(w io.Writer, repos []domain.Repository, urls []string) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ORG\tREPO\tURL")
	for i, repo := range repos {
		url := ""
		if i < len(urls) {
			url = urls[i]
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", repo.Owner, repo.Name, url)
	}
	return tw.Flush()
}

// BumpTable writes the per-repository bump results.
func BumpTable(w io.Writer, results []bumpdeps.Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "REPO\tBRANCH\tHOOKS")
	for _, result := range results {
		state := "clean"
		if !result.HooksClean {
			state = "dirty"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", result.Repo, result.Branch, state)
	}
	return tw.Flush()
}

// commonPrefix returns the longest prefix shared by all values.
func commonPrefix(values []string) string {
	if len(values) == 0 {
		return ""
	}
	prefix := values[0]
	for _, value := range values[1:] {
		for !strings.HasPrefix(value, prefix) {
			prefix = prefix[:len(prefix)-1]
		}
	}
	return prefix
}
