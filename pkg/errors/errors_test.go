package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(ErrRemoteForm, "unrecognized remote URL")

	assert.Equal(t, ErrRemoteForm, err.Code)
	assert.Equal(t, "[REMOTE_FORM] unrecognized remote URL", err.Error())
	assert.Nil(t, err.Wrapped)
}

func TestWrap(t *testing.T) {
	cause := errors.New("exit status 1")
	err := Wrap(cause, ErrCommandRun, "pipenv install failed")

	require.NotNil(t, err)
	assert.Equal(t, ErrCommandRun, err.Code)
	assert.Equal(t, "[COMMAND_RUN] pipenv install failed: exit status 1", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrCommandRun, "should vanish"))
	assert.Nil(t, Wrapf(nil, ErrCommandRun, "should %s", "vanish"))
}

func TestIsMatchesByCode(t *testing.T) {
	err := Newf(ErrFileEmpty, "%s has no lines left", ".gitignore")
	wrapped := fmt.Errorf("editing ignore file: %w", err)

	assert.True(t, errors.Is(wrapped, New(ErrFileEmpty, "")))
	assert.False(t, errors.Is(wrapped, New(ErrFileDelete, "")))
}

func TestIsCode(t *testing.T) {
	err := fmt.Errorf("outer: %w", New(ErrRemoteForm, "bad url"))

	assert.True(t, IsCode(err, ErrRemoteForm))
	assert.False(t, IsCode(err, ErrGitCommit))
	assert.False(t, IsCode(errors.New("plain"), ErrRemoteForm))
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, ErrGitCommit, GetCode(New(ErrGitCommit, "no staged changes")))
	assert.Equal(t, ErrUnknown, GetCode(errors.New("plain")))
}

func TestWithDetail(t *testing.T) {
	err := New(ErrFileRename, "rename failed").
		WithDetail("from", "pythontemplate.py").
		WithDetail("to", "widget.py")

	assert.Equal(t, "pythontemplate.py", err.Details["from"])
	assert.Equal(t, "widget.py", err.Details["to"])
}
