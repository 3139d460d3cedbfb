// Package bumpdeps updates dependencies and pre-commit hooks across
// repository working copies.
package bumpdeps

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/maintainhq/maintain/internal/collect"
	"github.com/maintainhq/maintain/internal/execshell"
)

// DefaultJobs is the pre-commit autoupdate parallelism.
const DefaultJobs = 12

// Options configures one bump run.
type Options struct {
	// Command is the dependency bump command run first in every repository.
	Command []string
	// Jobs is passed to pre-commit autoupdate; DefaultJobs when zero.
	Jobs int
}

// Result summarizes the bump of one repository working copy.
type Result struct {
	Repo   string
	Branch string
	// HooksClean reports whether "pre-commit run --all-files" passed. Hook
	// failures are expected when hooks rewrite files, so they are recorded
	// here instead of failing the run.
	HooksClean bool
}

// Bumper runs the bump toolchain across repository working copies.
type Bumper struct {
	runner execshell.Runner
	logger *zap.Logger
	now    func() time.Time
}

// NewBumper creates a new Bumper instance.
func NewBumper(runner execshell.Runner, logger *zap.Logger) *Bumper {
	return &Bumper{
		runner: runner,
		logger: logger,
		now:    time.Now,
	}
}

// BumpAll bumps every repository directory through the bounded worker pool.
// All repositories share one throwaway PRE_COMMIT_HOME so hook environments
// are built once per run and never pollute the user cache; it is removed when
// the run finishes. The first infrastructure failure aborts the whole run.
func (b *Bumper) BumpAll(ctx context.Context, repoDirs []string, opts Options) ([]Result, error) {
	cacheDir, err := os.MkdirTemp("", "pre-commit-home-")
	if err != nil {
		return nil, fmt.Errorf("failed to create pre-commit cache: %w", err)
	}
	defer os.RemoveAll(cacheDir)

	branch := "bump-" + b.now().UTC().Format("2006-01-02")
	b.logger.Debug("starting bump run", zap.String("branch", branch), zap.Int("repositories", len(repoDirs)))

	return collect.All(ctx, repoDirs, collect.DefaultWorkers, func(ctx context.Context, dir string) ([]Result, error) {
		result, err := b.bumpOne(ctx, dir, branch, cacheDir, opts)
		if err != nil {
			return nil, err
		}
		return []Result{result}, nil
	})
}

func (b *Bumper) bumpOne(ctx context.Context, dir, branch, cacheDir string, opts Options) (Result, error) {
	env := map[string]string{"PRE_COMMIT_HOME": cacheDir}

	if len(opts.Command) > 0 {
		if err := b.runChecked(ctx, dir, env, opts.Command[0], opts.Command[1:]...); err != nil {
			return Result{}, err
		}
	}

	jobs := opts.Jobs
	if jobs < 1 {
		jobs = DefaultJobs
	}
	if err := b.runChecked(ctx, dir, env, "pre-commit", "autoupdate", "-j", strconv.Itoa(jobs)); err != nil {
		return Result{}, err
	}

	run, err := b.runner.Run(ctx, execshell.Command{
		Name: "pre-commit",
		Args: []string{"run", "--all-files"},
		Dir:  dir,
		Env:  env,
	})
	if err != nil {
		return Result{}, fmt.Errorf("failed to run pre-commit in %s: %w", dir, err)
	}

	b.logger.Debug("bumped repository", zap.String("repository", dir), zap.Bool("hooks_clean", run.ExitCode == 0))
	return Result{
		Repo:       dir,
		Branch:     branch,
		HooksClean: run.ExitCode == 0,
	}, nil
}

func (b *Bumper) runChecked(ctx context.Context, dir string, env map[string]string, name string, args ...string) error {
	result, err := b.runner.Run(ctx, execshell.Command{Name: name, Args: args, Dir: dir, Env: env})
	if err != nil {
		return fmt.Errorf("failed to run %s in %s: %w", name, dir, err)
	}
	if result.ExitCode != 0 {
		return fmt.Errorf("%s exited with code %d in %s: %s", name, result.ExitCode, dir, strings.TrimSpace(result.Stderr))
	}
	return nil
}
