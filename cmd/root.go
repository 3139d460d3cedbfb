// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/maintainhq/maintain/internal/config"
	"github.com/maintainhq/maintain/internal/domain"
	"github.com/maintainhq/maintain/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "maintain",
	Short: "Maintainer helper for a fleet of GitHub repositories.",
	Long: `maintain automates the recurring chores of looking after many GitHub
repositories: an open pull request dashboard, bulk page opening, local Python
toolchain installation, and dependency/tool bumps.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the configuration file")
}

// newLogger builds the logger honoring the persistent --verbose flag.
func newLogger(cmd *cobra.Command) (*zap.Logger, error) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	return logging.New(verbose)
}

// loadConfig reads the configuration honoring the persistent --config flag.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}

// configuredRepositories resolves and validates the repository list.
func configuredRepositories(cfg config.Config) ([]domain.Repository, error) {
	repos, err := cfg.ParsedRepositories()
	if err != nil {
		return nil, err
	}
	if len(repos) == 0 {
		return nil, errors.New("no repositories configured")
	}
	return repos, nil
}

// githubToken reads the token from the environment; the single authenticated
// gateway built from it is passed explicitly to everything that needs it.
func githubToken() (string, error) {
	token := os.Getenv("GITHUB_TOKEN")
	if token == "" {
		return "", errors.New("GITHUB_TOKEN environment variable is not set")
	}
	return token, nil
}
