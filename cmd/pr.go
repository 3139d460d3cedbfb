package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/maintainhq/maintain/internal/execshell"
	"github.com/maintainhq/maintain/internal/gateway"
	"github.com/maintainhq/maintain/internal/render"
	"github.com/maintainhq/maintain/internal/usecase"
)

var prCmd = &cobra.Command{
	Use:     "pr",
	Aliases: []string{"p"},
	Short:   "Show open pull requests across all configured repositories",
	Long: `Fetches the open pull requests of every configured repository in parallel
and renders them as one table, newest first. With --open each pull request is
also opened in the browser.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		logger, err := newLogger(cmd)
		if err != nil {
			return err
		}
		defer logger.Sync()

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		repos, err := configuredRepositories(cfg)
		if err != nil {
			return err
		}
		token, err := githubToken()
		if err != nil {
			return err
		}

		gw, err := gateway.NewGitHubGateway(token, logger)
		if err != nil {
			return fmt.Errorf("failed to create GitHub gateway: %w", err)
		}

		viewer, err := gw.FetchViewer(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Running with user %s (%s)\n", viewer.Name, viewer.Login)

		dashboard := usecase.NewDashboard(gw, logger)
		pulls, summary, err := dashboard.OpenPullRequests(ctx, repos)
		if err != nil {
			return fmt.Errorf("failed to aggregate pull requests: %w", err)
		}

		if openEach, _ := cmd.Flags().GetBool("open"); openEach {
			browser := execshell.NewBrowser(execshell.NewOSRunner())
			for _, pr := range pulls {
				if err := browser.Open(ctx, pr.URL); err != nil {
					return err
				}
			}
		}

		return render.PullRequestTable(cmd.OutOrStdout(), pulls, summary)
	},
}

func init() {
	rootCmd.AddCommand(prCmd)
	prCmd.Flags().BoolP("open", "o", false, "Open each pull request in the browser")
}
