// Package config loads the maintain configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/maintainhq/maintain/internal/domain"
)

// Config is the root of the maintain configuration.
type Config struct {
	// Repositories lists the maintained repositories as "owner/name" strings.
	Repositories []string     `mapstructure:"repositories"`
	Python       PythonConfig `mapstructure:"python"`
	Bump         BumpConfig   `mapstructure:"bump"`
}

// PythonConfig configures the install-python command.
type PythonConfig struct {
	CPython   []string `mapstructure:"cpython"`
	PyPy      []string `mapstructure:"pypy"`
	SourceDir string   `mapstructure:"source_dir"`
	BinDir    string   `mapstructure:"bin_dir"`
}

// BumpConfig configures the bump command.
type BumpConfig struct {
	Command []string `mapstructure:"command"`
	Jobs    int      `mapstructure:"jobs"`
}

// Version feeds come from the python-build-standalone releases that uv
// installs from.
var defaults = map[string]any{
	"python.cpython": []string{"3.8.20", "3.9.21", "3.10.16", "3.11.11", "3.12.9", "3.13.2"},
	"python.pypy":    []string{"3.8.16", "3.9.19", "3.10.14"},
	"bump.command":   []string{"bump-deps-index", "-p", "no"},
	"bump.jobs":      12,
}

// Load reads the configuration from the given file, or, when path is empty,
// from maintain.yaml in the working directory or ~/.config/maintain.
// Environment variables prefixed with MAINTAIN_ override file values.
// A missing file yields the defaults.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigName("maintain")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "maintain"))
	}

	v.SetEnvPrefix("MAINTAIN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if path != "" {
		v.SetConfigFile(path)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read configuration: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse configuration: %w", err)
	}
	return cfg, nil
}

// ParsedRepositories converts the configured "owner/name" strings into
// domain repositories, failing on the first malformed entry.
func (c Config) ParsedRepositories() ([]domain.Repository, error) {
	repos := make([]domain.Repository, 0, len(c.Repositories))
	for _, full := range c.Repositories {
		repo, err := domain.ParseRepository(full)
		if err != nil {
			return nil, err
		}
		repos = append(repos, repo)
	}
	return repos, nil
}
