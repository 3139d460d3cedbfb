package bumpdeps

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/maintainhq/maintain/internal/execshell"
)

// fakeRunner records invocations; results are keyed by "name arg0 arg1 ...".
type fakeRunner struct {
	mu       sync.Mutex
	commands []execshell.Command
	results  map[string]execshell.Result
	errs     map[string]error
}

func key(cmd execshell.Command) string {
	return strings.Join(append([]string{cmd.Name}, cmd.Args...), " ")
}

func (f *fakeRunner) Run(_ context.Context, cmd execshell.Command) (execshell.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.commands = append(f.commands, cmd)
	if err, ok := f.errs[key(cmd)]; ok {
		return execshell.Result{}, err
	}
	return f.results[key(cmd)], nil
}

func (f *fakeRunner) recorded() []execshell.Command {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]execshell.Command{}, f.commands...)
}

func newTestBumper(runner *fakeRunner) *Bumper {
	bumper := NewBumper(runner, zap.NewNop())
	bumper.now = func() time.Time {
		return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	}
	return bumper
}

func TestBumper_BumpAll(t *testing.T) {
	runner := &fakeRunner{}
	bumper := newTestBumper(runner)
	opts := Options{Command: []string{"bump-deps-index", "-p", "no"}}

	results, err := bumper.BumpAll(context.Background(), []string{"/repos/alpha"}, opts)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, Result{Repo: "/repos/alpha", Branch: "bump-2026-08-30", HooksClean: true}, results[0])

	commands := runner.recorded()
	require.Len(t, commands, 3)

	assert.Equal(t, "bump-deps-index", commands[0].Name)
	assert.Equal(t, []string{"-p", "no"}, commands[0].Args)
	assert.Equal(t, "pre-commit", commands[1].Name)
	assert.Equal(t, []string{"autoupdate", "-j", "12"}, commands[1].Args)
	assert.Equal(t, "pre-commit", commands[2].Name)
	assert.Equal(t, []string{"run", "--all-files"}, commands[2].Args)

	// Everything runs inside the repository with an isolated hook cache.
	for _, cmd := range commands {
		assert.Equal(t, "/repos/alpha", cmd.Dir)
		assert.NotEmpty(t, cmd.Env["PRE_COMMIT_HOME"])
	}
}

func TestBumper_BumpAll_HookFailuresAreTolerated(t *testing.T) {
	// Hooks rewriting files exit non-zero; the bump must still succeed so the
	// change can be committed.
	runner := &fakeRunner{results: map[string]execshell.Result{
		"pre-commit run --all-files": {ExitCode: 1},
	}}
	bumper := newTestBumper(runner)

	results, err := bumper.BumpAll(context.Background(), []string{"/repos/alpha"}, Options{})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.False(t, results[0].HooksClean)
}

func TestBumper_BumpAll_AutoupdateFailureAborts(t *testing.T) {
	runner := &fakeRunner{results: map[string]execshell.Result{
		"pre-commit autoupdate -j 12": {ExitCode: 2, Stderr: "network down"},
	}}
	bumper := newTestBumper(runner)

	results, err := bumper.BumpAll(context.Background(), []string{"/repos/alpha", "/repos/beta"}, Options{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "network down")
	assert.Nil(t, results)
}

func TestBumper_BumpAll_RunnerFailureAborts(t *testing.T) {
	runner := &fakeRunner{errs: map[string]error{
		"pre-commit autoupdate -j 12": errors.New("pre-commit not installed"),
	}}
	bumper := newTestBumper(runner)

	_, err := bumper.BumpAll(context.Background(), []string{"/repos/alpha"}, Options{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "pre-commit not installed")
}

func TestBumper_BumpAll_ManyRepositories(t *testing.T) {
	runner := &fakeRunner{}
	bumper := newTestBumper(runner)

	dirs := []string{"/repos/a", "/repos/b", "/repos/c", "/repos/d"}
	results, err := bumper.BumpAll(context.Background(), dirs, Options{Jobs: 4})
	require.NoError(t, err)

	// Completion order is not guaranteed, so compare as sets.
	var bumped []string
	for _, result := range results {
		bumped = append(bumped, result.Repo)
	}
	assert.ElementsMatch(t, dirs, bumped)

	for _, cmd := range runner.recorded() {
		if len(cmd.Args) > 0 && cmd.Args[0] == "autoupdate" {
			assert.Equal(t, []string{"autoupdate", "-j", "4"}, cmd.Args)
		}
	}
}
