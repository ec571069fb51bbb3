package operations

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecuteWriteFile(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "widget.py")

	executor := NewExecutor(false)
	err := executor.Execute(context.Background(), []Operation{
		WriteFile(target, []byte("class widget: pass\n"), 0644, "write widget.py"),
	})
	require.NoError(t, err)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "class widget: pass\n", string(data))
}

func TestExecuteDeleteFile(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "Dockerfile")
	require.NoError(t, os.WriteFile(target, []byte("FROM python:3\n"), 0644))

	executor := NewExecutor(false)
	err := executor.Execute(context.Background(), []Operation{
		DeleteFile(target, "delete Dockerfile"),
	})
	require.NoError(t, err)

	_, err = os.Stat(target)
	assert.True(t, os.IsNotExist(err))
}

func TestExecuteRenameFile(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "pythontemplate.py")
	target := filepath.Join(dir, "widget.py")
	require.NoError(t, os.WriteFile(source, []byte("pass\n"), 0644))

	executor := NewExecutor(false)
	err := executor.Execute(context.Background(), []Operation{
		Rename(source, target, "rename module file"),
	})
	require.NoError(t, err)

	_, err = os.Stat(source)
	assert.True(t, os.IsNotExist(err))
	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "pass\n", string(data))
}

func TestExecuteRenameDirectory(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "pythontemplate")
	target := filepath.Join(dir, "widget")
	require.NoError(t, os.MkdirAll(source, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(source, "__init__.py"), nil, 0644))

	executor := NewExecutor(false)
	err := executor.Execute(context.Background(), []Operation{
		Rename(source, target, "rename package directory"),
	})
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(target, "__init__.py"))
	assert.NoError(t, err)
}

func TestExecuteStopsAtFirstFailure(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "absent")
	later := filepath.Join(dir, "later.py")

	executor := NewExecutor(false)
	err := executor.Execute(context.Background(), []Operation{
		Rename(missing, filepath.Join(dir, "elsewhere"), "rename missing file"),
		WriteFile(later, []byte("pass\n"), 0644, "write later.py"),
	})
	require.Error(t, err)

	_, statErr := os.Stat(later)
	assert.True(t, os.IsNotExist(statErr), "operations after a failure must not run")
}

func TestExecuteDryRun(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "Dockerfile")
	require.NoError(t, os.WriteFile(target, []byte("FROM python:3\n"), 0644))

	executor := NewExecutor(true)
	err := executor.Execute(context.Background(), []Operation{
		DeleteFile(target, "delete Dockerfile"),
		WriteFile(filepath.Join(dir, "new.py"), []byte("pass\n"), 0644, "write new.py"),
	})
	require.NoError(t, err)

	_, err = os.Stat(target)
	assert.NoError(t, err, "dry run must not delete")
	_, err = os.Stat(filepath.Join(dir, "new.py"))
	assert.True(t, os.IsNotExist(err), "dry run must not write")
}

func TestExecuteRejectsUnknownType(t *testing.T) {
	executor := NewExecutor(false)
	err := executor.Execute(context.Background(), []Operation{{Type: "chmod"}})
	assert.Error(t, err)
}
