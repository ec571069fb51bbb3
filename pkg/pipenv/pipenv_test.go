package pipenv

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRunner records commands and simulates lookup/run outcomes
type fakeRunner struct {
	commands  []string
	installed map[string]bool
	runErr    error
}

func (f *fakeRunner) Run(_ context.Context, _ string, name string, args ...string) error {
	f.commands = append(f.commands, strings.Join(append([]string{name}, args...), " "))
	return f.runErr
}

func (f *fakeRunner) LookPath(name string) (string, error) {
	if f.installed[name] {
		return "/usr/bin/" + name, nil
	}
	return "", errors.New("not found")
}

func TestEnsureInstalledAlreadyPresent(t *testing.T) {
	runner := &fakeRunner{installed: map[string]bool{"pipenv": true}}
	tool := New(runner, ".", "pipenv", "curl -sSL https://example.com/install.py | python3")

	require.NoError(t, tool.EnsureInstalled(context.Background()))
	assert.Empty(t, runner.commands, "no install should run when the tool is present")
}

func TestEnsureInstalledMissing(t *testing.T) {
	runner := &fakeRunner{}
	tool := New(runner, ".", "pipenv", "curl -sSL https://example.com/install.py | python3")

	require.NoError(t, tool.EnsureInstalled(context.Background()))
	require.Len(t, runner.commands, 1)
	assert.Equal(t, "sh -c curl -sSL https://example.com/install.py | python3", runner.commands[0])
}

func TestEnsureInstalledInstallFails(t *testing.T) {
	runner := &fakeRunner{runErr: errors.New("exit status 1")}
	tool := New(runner, ".", "pipenv", "false")

	assert.Error(t, tool.EnsureInstalled(context.Background()))
}

func TestInstallDeps(t *testing.T) {
	runner := &fakeRunner{}
	tool := New(runner, "/repo", "pipenv", "")

	require.NoError(t, tool.InstallDeps(context.Background()))
	require.Len(t, runner.commands, 1)
	assert.Equal(t, "pipenv install --dev", runner.commands[0])
}

func TestInstallHooks(t *testing.T) {
	runner := &fakeRunner{}
	tool := New(runner, "/repo", "pipenv", "")

	require.NoError(t, tool.InstallHooks(context.Background()))
	require.Len(t, runner.commands, 1)
	assert.Equal(t, "pipenv run pre-commit install", runner.commands[0])
}

func TestExecRunnerDryRun(t *testing.T) {
	runner := NewExecRunner(true)

	// the command does not exist; dry-run must still succeed without executing
	assert.NoError(t, runner.Run(context.Background(), ".", "definitely-not-a-command"))
}

func TestExecRunnerFailure(t *testing.T) {
	runner := NewExecRunner(false)

	err := runner.Run(context.Background(), ".", "sh", "-c", "exit 3")
	assert.Error(t, err)
}
