// Package execshell runs external commands behind a narrow interface so that
// the packages shelling out to uv, pre-commit, and the browser launcher stay
// testable without spawning processes.
package execshell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// Command describes one external command invocation.
type Command struct {
	Name string
	Args []string
	Dir  string
	Env  map[string]string
}

// Result captures the observable outcome of a finished command.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Runner executes external commands.
type Runner interface {
	Run(ctx context.Context, cmd Command) (Result, error)
}

// OSRunner executes commands with os/exec. A non-zero exit is reported
// through Result.ExitCode, not as an error; errors are reserved for commands
// that could not run at all.
type OSRunner struct{}

// NewOSRunner constructs a runner backed by os/exec.
func NewOSRunner() *OSRunner {
	return &OSRunner{}
}

// Run executes the supplied command and captures its output.
func (r *OSRunner) Run(ctx context.Context, cmd Command) (Result, error) {
	executable := exec.CommandContext(ctx, cmd.Name, cmd.Args...)

	if cmd.Dir != "" {
		executable.Dir = cmd.Dir
	}
	if len(cmd.Env) > 0 {
		merged := append([]string{}, os.Environ()...)
		for key, value := range cmd.Env {
			merged = append(merged, fmt.Sprintf("%s=%s", key, value))
		}
		executable.Env = merged
	}

	var stdout, stderr bytes.Buffer
	executable.Stdout = &stdout
	executable.Stderr = &stderr

	if runErr := executable.Run(); runErr != nil {
		exitErr := &exec.ExitError{}
		if errors.As(runErr, &exitErr) {
			return Result{
				Stdout:   stdout.String(),
				Stderr:   stderr.String(),
				ExitCode: exitErr.ExitCode(),
			}, nil
		}
		return Result{}, fmt.Errorf("failed to run %s: %w", cmd.Name, runErr)
	}

	return Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: 0,
	}, nil
}
