package execshell

import (
	"context"
	"fmt"
	"runtime"
	"strings"
)

// Browser opens URLs with the platform's URL launcher.
type Browser struct {
	runner   Runner
	launcher string
}

// NewBrowser constructs a Browser around the given runner, picking the
// launcher binary for the current platform.
func NewBrowser(runner Runner) *Browser {
	return &Browser{
		runner:   runner,
		launcher: launcherName(runtime.GOOS),
	}
}

// Open launches the URL in the user's default browser.
func (b *Browser) Open(ctx context.Context, url string) error {
	result, err := b.runner.Run(ctx, Command{Name: b.launcher, Args: []string{url}})
	if err != nil {
		return fmt.Errorf("failed to launch browser: %w", err)
	}
	if result.ExitCode != 0 {
		return fmt.Errorf("%s exited with code %d: %s", b.launcher, result.ExitCode, strings.TrimSpace(result.Stderr))
	}
	return nil
}

func launcherName(goos string) string {
	if goos == "darwin" {
		return "open"
	}
	return "xdg-open"
}
