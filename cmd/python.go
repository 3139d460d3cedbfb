package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/maintainhq/maintain/internal/execshell"
	"github.com/maintainhq/maintain/internal/pythontool"
)

var installPythonCmd = &cobra.Command{
	Use:   "install-python",
	Short: "Install uv-managed Python toolchains and refresh interpreter symlinks",
	Long: `Installs every configured CPython and PyPy toolchain through uv and links
versioned interpreters (python3.13, pypy3.10, ...) plus a default "python"
into the local bin directory.`,
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

		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to resolve home directory: %w", err)
		}

		opts := pythontool.Options{
			CPython:   cfg.Python.CPython,
			PyPy:      cfg.Python.PyPy,
			SourceDir: cfg.Python.SourceDir,
			BinDir:    cfg.Python.BinDir,
			Triple:    pythontool.Triple(),
		}
		if opts.SourceDir == "" {
			opts.SourceDir = pythontool.DefaultSourceDir(home, runtime.GOOS)
		}
		if opts.BinDir == "" {
			opts.BinDir = pythontool.DefaultBinDir(home)
		}

		installer := pythontool.NewInstaller(execshell.NewOSRunner(), logger)
		if err := installer.Install(cmd.Context(), opts); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Installed %d toolchains into %s\n", len(opts.CPython)+len(opts.PyPy), opts.BinDir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(installPythonCmd)
}
