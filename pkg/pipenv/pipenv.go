// Package pipenv manages the pipenv dependency tool for the bootstrapped
// project: presence check, installation, dependency install and the
// pre-commit hook installer.
package pipenv

import (
	"context"
	"os"
	"os/exec"

	"github.com/rs/zerolog"

	"github.com/Luna-Klatzer/pybootstrap/pkg/errors"
	"github.com/Luna-Klatzer/pybootstrap/pkg/logging"
)

// Runner executes external commands. Tests inject a recording fake.
type Runner interface {
	Run(ctx context.Context, dir string, name string, args ...string) error
	LookPath(name string) (string, error)
}

// ExecRunner runs commands via os/exec with output passed through to the
// terminal, since tool installs are attended by a human
type ExecRunner struct {
	logger zerolog.Logger
	dryRun bool
}

// NewExecRunner creates a runner; in dry-run mode commands are logged but
// not executed
func NewExecRunner(dryRun bool) *ExecRunner {
	return &ExecRunner{
		logger: logging.GetLogger("pipenv.runner"),
		dryRun: dryRun,
	}
}

// Run executes one command, blocking until it completes. A non-zero exit
// status is an error; the caller aborts the whole run on it.
func (r *ExecRunner) Run(ctx context.Context, dir string, name string, args ...string) error {
	logging.LogCommand(name, args)

	if r.dryRun {
		r.logger.Info().Str("cmd", name).Strs("args", args).Msg("Dry run: would execute command")
		return nil
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, errors.ErrCommandRun, "%s failed", name)
	}
	return nil
}

// LookPath reports where name is installed, or an error when it is not on
// the system path
func (r *ExecRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// Tool drives the dependency-management executable
type Tool struct {
	runner     Runner
	name       string
	installCmd string
	dir        string
	logger     zerolog.Logger
}

// New creates a Tool for the repository at dir. name is the executable to
// look for and installCmd the shell command that installs it when missing.
func New(runner Runner, dir, name, installCmd string) *Tool {
	return &Tool{
		runner:     runner,
		name:       name,
		installCmd: installCmd,
		dir:        dir,
		logger:     logging.GetLogger("pipenv"),
	}
}

// EnsureInstalled checks for the tool on the path and runs the official
// install command through a piped shell invocation when it is missing.
// Fetching and running remote code is an accepted risk of the target
// environment, not a boundary this tool defends.
func (t *Tool) EnsureInstalled(ctx context.Context) error {
	if path, err := t.runner.LookPath(t.name); err == nil {
		t.logger.Debug().Str("tool", t.name).Str("path", path).Msg("Tool already installed")
		return nil
	}

	t.logger.Info().Str("tool", t.name).Msg("Tool not found, installing")
	if err := t.runner.Run(ctx, t.dir, "sh", "-c", t.installCmd); err != nil {
		return errors.Wrapf(err, errors.ErrToolInstall, "installing %s", t.name)
	}
	return nil
}

// InstallDeps installs the project dependencies, including dev packages
func (t *Tool) InstallDeps(ctx context.Context) error {
	return t.runner.Run(ctx, t.dir, t.name, "install", "--dev")
}

// InstallHooks installs the pre-commit git hook through the tool
func (t *Tool) InstallHooks(ctx context.Context) error {
	return t.runner.Run(ctx, t.dir, t.name, "run", "pre-commit", "install")
}
