// Package pythontool installs uv-managed Python toolchains and maintains the
// interpreter symlinks in the local bin directory.
package pythontool

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"go.uber.org/zap"

	"github.com/maintainhq/maintain/internal/execshell"
)

// Options describes which toolchains to install and where the interpreters live.
type Options struct {
	// CPython versions, oldest first; the last one becomes the default "python".
	CPython []string
	// PyPy versions, oldest first.
	PyPy []string
	// SourceDir is uv's python install directory.
	SourceDir string
	// BinDir receives the interpreter symlinks.
	BinDir string
	// Triple is the platform part of uv's install directory names,
	// e.g. "macos-aarch64-none".
	Triple string
}

// Installer drives uv and keeps the interpreter symlinks current.
type Installer struct {
	runner execshell.Runner
	logger *zap.Logger
}

// NewInstaller creates a new Installer instance.
func NewInstaller(runner execshell.Runner, logger *zap.Logger) *Installer {
	return &Installer{
		runner: runner,
		logger: logger,
	}
}

// Install installs every configured toolchain via uv and links versioned
// interpreter names (pythonX.Y, pypyX.Y) plus a default "python" into BinDir.
// Existing links are replaced.
func (i *Installer) Install(ctx context.Context, opts Options) error {
	matrix := []struct {
		impl     string
		versions []string
	}{
		{impl: "cpython", versions: opts.CPython},
		{impl: "pypy", versions: opts.PyPy},
	}

	for _, entry := range matrix {
		for _, version := range entry.versions {
			spec := entry.impl + "-" + version
			if err := i.installOne(ctx, spec); err != nil {
				return err
			}
			link := filepath.Join(opts.BinDir, linkName(entry.impl, version))
			if err := forceSymlink(interpreterPath(opts, spec), link); err != nil {
				return err
			}
			i.logger.Debug("linked interpreter", zap.String("toolchain", spec), zap.String("link", link))
		}
	}

	// The default "python" points at the newest configured CPython.
	if len(opts.CPython) > 0 {
		newest := "cpython-" + opts.CPython[len(opts.CPython)-1]
		if err := forceSymlink(interpreterPath(opts, newest), filepath.Join(opts.BinDir, "python")); err != nil {
			return err
		}
	}
	return nil
}

func (i *Installer) installOne(ctx context.Context, spec string) error {
	result, err := i.runner.Run(ctx, execshell.Command{
		Name: "uv",
		Args: []string{"python", "install", spec, "--no-progress", "--reinstall"},
	})
	if err != nil {
		return fmt.Errorf("failed to run uv for %s: %w", spec, err)
	}
	if result.ExitCode != 0 {
		return fmt.Errorf("uv python install %s exited with code %d: %s", spec, result.ExitCode, strings.TrimSpace(result.Stderr))
	}
	return nil
}

func interpreterPath(opts Options, spec string) string {
	return filepath.Join(opts.SourceDir, spec+"-"+opts.Triple, "bin", "python")
}

// linkName maps a toolchain to its symlink name, keeping only the minor
// version: cpython-3.12.9 -> python3.12, pypy-3.10.14 -> pypy3.10.
func linkName(impl, version string) string {
	parts := strings.SplitN(version, ".", 3)
	minor := version
	if len(parts) >= 2 {
		minor = parts[0] + "." + parts[1]
	}
	if impl == "cpython" {
		return "python" + minor
	}
	return "pypy" + minor
}

func forceSymlink(target, link string) error {
	if err := os.Remove(link); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove existing link %s: %w", link, err)
	}
	if err := os.Symlink(target, link); err != nil {
		return fmt.Errorf("failed to link %s: %w", link, err)
	}
	return nil
}

// Triple returns uv's platform triple for the current build target.
func Triple() string {
	return tripleFor(runtime.GOOS, runtime.GOARCH)
}

func tripleFor(goos, goarch string) string {
	arch := goarch
	switch goarch {
	case "arm64":
		arch = "aarch64"
	case "amd64":
		arch = "x86_64"
	}
	if goos == "darwin" {
		return "macos-" + arch + "-none"
	}
	return goos + "-" + arch + "-gnu"
}

// DefaultSourceDir returns uv's python install directory for the platform.
func DefaultSourceDir(home, goos string) string {
	if goos == "darwin" {
		return filepath.Join(home, "Library", "Application Support", "uv", "python")
	}
	return filepath.Join(home, ".local", "share", "uv", "python")
}

// DefaultBinDir returns the directory that receives interpreter symlinks.
func DefaultBinDir(home string) string {
	return filepath.Join(home, ".local", "bin")
}
