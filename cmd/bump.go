package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/maintainhq/maintain/internal/bumpdeps"
	"github.com/maintainhq/maintain/internal/execshell"
	"github.com/maintainhq/maintain/internal/render"
)

var bumpCmd = &cobra.Command{
	Use:   "bump <dir>...",
	Short: "Bump dependencies and pre-commit hooks in repository working copies",
	Long: `For every given working copy, runs the configured dependency bump command,
updates the pre-commit hooks, and runs them once across all files. Hook
failures are reported but do not abort the run; they usually just mean the
hooks rewrote files.`,
	Args: cobra.MinimumNArgs(1),
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
		if len(cfg.Bump.Command) == 0 {
			return errors.New("no bump command configured")
		}

		bumper := bumpdeps.NewBumper(execshell.NewOSRunner(), logger)
		results, err := bumper.BumpAll(cmd.Context(), args, bumpdeps.Options{
			Command: cfg.Bump.Command,
			Jobs:    cfg.Bump.Jobs,
		})
		if err != nil {
			return err
		}

		return render.BumpTable(cmd.OutOrStdout(), results)
	},
}

func init() {
	rootCmd.AddCommand(bumpCmd)
}
