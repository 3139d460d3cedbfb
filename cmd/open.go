package cmd

import (
	"github.com/spf13/cobra"

	"github.com/maintainhq/maintain/internal/execshell"
	"github.com/maintainhq/maintain/internal/render"
	"github.com/maintainhq/maintain/internal/usecase"
)

var openCmd = &cobra.Command{
	Use:     "open [suffix]",
	Aliases: []string{"o"},
	Args:    cobra.MaximumNArgs(1),
	Short:   "Open the GitHub page of every configured repository",
	Long: `Opens one browser tab per configured repository. An optional suffix selects
a sub-page, e.g. "maintain open actions" or "maintain open settings".`,
	RunE: func(cmd *cobra.Command, args []string) error {
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

		suffix := ""
		if len(args) == 1 {
			suffix = args[0]
		}

		opener := usecase.NewPageOpener(execshell.NewBrowser(execshell.NewOSRunner()), logger)
		urls, err := opener.OpenAll(cmd.Context(), repos, suffix)
		if err != nil {
			return err
		}

		return render.RepositoryTable(cmd.OutOrStdout(), repos, urls)
	},
}

func init() {
	rootCmd.AddCommand(openCmd)
}
