package operations

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/arthur-debert/synthfs/pkg/synthfs"
	"github.com/arthur-debert/synthfs/pkg/synthfs/core"
	"github.com/arthur-debert/synthfs/pkg/synthfs/filesystem"
	"github.com/arthur-debert/synthfs/pkg/synthfs/operations"
	"github.com/rs/zerolog"

	"github.com/Luna-Klatzer/pybootstrap/pkg/errors"
	"github.com/Luna-Klatzer/pybootstrap/pkg/logging"
)

// Executor executes operations using synthfs, in order. Renames go through
// os.Rename directly since synthfs models creates, copies and deletes.
type Executor struct {
	logger     zerolog.Logger
	dryRun     bool
	filesystem synthfs.FileSystem
}

// NewExecutor creates an executor; in dry-run mode operations are logged
// but nothing is touched
func NewExecutor(dryRun bool) *Executor {
	return &Executor{
		logger:     logging.GetLogger("operations"),
		dryRun:     dryRun,
		filesystem: filesystem.NewOSFileSystem("/"),
	}
}

// Execute runs the operations in sequence, stopping at the first failure
func (e *Executor) Execute(ctx context.Context, ops []Operation) error {
	for _, op := range ops {
		if e.dryRun {
			e.logOperation(op)
			continue
		}
		if err := e.executeOne(ctx, op); err != nil {
			return err
		}
	}
	return nil
}

func (e *Executor) logOperation(op Operation) {
	e.logger.Info().
		Str("type", string(op.Type)).
		Str("source", op.Source).
		Str("target", op.Target).
		Str("description", op.Description).
		Msg("Dry run: operation would be executed")
}

func (e *Executor) executeOne(ctx context.Context, op Operation) error {
	e.logger.Debug().
		Str("type", string(op.Type)).
		Str("target", op.Target).
		Str("description", op.Description).
		Msg("Executing operation")

	switch op.Type {
	case TypeRename:
		if op.Source == "" || op.Target == "" {
			return errors.New(errors.ErrActionInvalid, "rename operation requires source and target")
		}
		if err := os.Rename(op.Source, op.Target); err != nil {
			return errors.Wrapf(err, errors.ErrFileRename, "renaming %s to %s", op.Source, op.Target)
		}
		return nil
	case TypeWriteFile, TypeDeleteFile, TypeCopyFile:
		synthOp, err := e.convert(op)
		if err != nil {
			return err
		}
		return e.runPipeline(ctx, op, synthOp)
	default:
		return errors.Newf(errors.ErrActionInvalid, "unsupported operation type: %s", op.Type)
	}
}

func (e *Executor) runPipeline(ctx context.Context, op Operation, synthOp synthfs.Operation) error {
	pipeline := synthfs.NewMemPipeline()
	if err := pipeline.Add(synthOp); err != nil {
		return errors.Wrapf(err, errors.ErrActionExecute, "queueing operation: %s", op.Description)
	}

	executor := synthfs.NewExecutor()
	result := executor.Run(ctx, pipeline, e.filesystem)
	if result.GetError() != nil {
		return errors.Wrapf(result.GetError(), errors.ErrActionExecute, "%s", op.Description)
	}
	return nil
}

func (e *Executor) convert(op Operation) (synthfs.Operation, error) {
	if op.Target == "" {
		return nil, errors.Newf(errors.ErrActionInvalid, "%s operation requires target", op.Type)
	}

	relTarget, err := relToRoot(op.Target)
	if err != nil {
		return nil, err
	}

	switch op.Type {
	case TypeWriteFile:
		mode := op.Mode
		if mode == 0 {
			mode = 0644
		}
		opID := core.OperationID(fmt.Sprintf("write-file-%s", op.Target))
		createOp := operations.NewCreateFileOperation(opID, relTarget)
		createOp.SetItem(&fileItem{
			path:    relTarget,
			content: op.Content,
			mode:    mode,
		})
		return synthfs.NewOperationsPackageAdapter(createOp), nil

	case TypeDeleteFile:
		opID := core.OperationID(fmt.Sprintf("delete-%s", op.Target))
		deleteOp := operations.NewDeleteOperation(opID, relTarget)
		return synthfs.NewOperationsPackageAdapter(deleteOp), nil

	case TypeCopyFile:
		if op.Source == "" {
			return nil, errors.New(errors.ErrActionInvalid, "copy operation requires source")
		}
		relSource, err := relToRoot(op.Source)
		if err != nil {
			return nil, err
		}
		opID := core.OperationID(fmt.Sprintf("copy-%s-to-%s", filepath.Base(op.Source), op.Target))
		copyOp := operations.NewCopyOperation(opID, relTarget)
		copyOp.SetPaths(relSource, relTarget)
		return synthfs.NewOperationsPackageAdapter(copyOp), nil
	}

	return nil, errors.Newf(errors.ErrActionInvalid, "unsupported operation type: %s", op.Type)
}

// relToRoot converts an absolute path to the root-relative form synthfs
// expects
func relToRoot(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrActionInvalid, "resolving path: %s", path)
	}
	rel, err := filepath.Rel("/", abs)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrActionInvalid, "converting path: %s", path)
	}
	return rel, nil
}

// fileItem implements the item interface synthfs file operations require
type fileItem struct {
	path    string
	content []byte
	mode    fs.FileMode
}

func (f *fileItem) Path() string       { return f.path }
func (f *fileItem) Type() string       { return "file" }
func (f *fileItem) Content() []byte    { return f.content }
func (f *fileItem) Mode() fs.FileMode  { return f.mode }
func (f *fileItem) IsDir() bool        { return false }
func (f *fileItem) ModTime() time.Time { return time.Now() }
func (f *fileItem) Size() int64        { return int64(len(f.content)) }
