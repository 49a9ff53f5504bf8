// Package fsaction provides filesystem actions: writing, reading and
// deleting files, and temporary directories.
package fsaction

import (
	"context"
	"fmt"
	"os"
	"sync"

	barleyerrors "github.com/panthios/barley/pkg/errors"
	"github.com/panthios/barley/pkg/runtime"
)

// WriteFile writes content to a path. The content is either a literal or
// the string output of another node. Rollback removes the written file.
type WriteFile struct {
	path    string
	content runtime.Input[string]
	mode    os.FileMode
}

// NewWriteFile creates a WriteFile with literal content.
func NewWriteFile(path, content string) *WriteFile {
	return &WriteFile{
		path:    path,
		content: runtime.NewStaticInput(content),
		mode:    0o644,
	}
}

// NewWriteFileFrom creates a WriteFile whose content is resolved from the
// producer node's output. The caller must still declare the dependency
// edge with Requires.
func NewWriteFileFrom(path string, producer *runtime.Node) *WriteFile {
	return &WriteFile{
		path:    path,
		content: runtime.NewDynamicInput[string](producer),
		mode:    0o644,
	}
}

var _ runtime.Action = (*WriteFile)(nil)

// Probe implements runtime.Action.
func (a *WriteFile) Probe(ctx context.Context, rt *runtime.Runtime) (runtime.Probe, error) {
	return runtime.Probe{NeedsRun: true, CanRollback: true}, nil
}

// Run implements runtime.Action.
func (a *WriteFile) Run(ctx context.Context, rt *runtime.Runtime, op runtime.Operation) (*runtime.Output, error) {
	if op == runtime.OperationRollback {
		if err := os.Remove(a.path); err != nil && !os.IsNotExist(err) {
			return nil, barleyerrors.NewActionFailed(
				fmt.Sprintf("failed to delete file %s", a.path),
				err.Error(),
			)
		}
		return nil, nil
	}

	content, err := runtime.ResolveString(rt, a.content)
	if err != nil {
		return nil, err
	}

	if err := os.WriteFile(a.path, []byte(content), a.mode); err != nil {
		return nil, barleyerrors.NewActionFailed(
			fmt.Sprintf("failed to write file %s", a.path),
			err.Error(),
		)
	}

	return nil, nil
}

// DisplayName implements runtime.Action.
func (a *WriteFile) DisplayName() string {
	return fmt.Sprintf("Write file %s", a.path)
}

// ReadFile reads a file and publishes its contents as a string output.
type ReadFile struct {
	path string
}

// NewReadFile creates a ReadFile action.
func NewReadFile(path string) *ReadFile {
	return &ReadFile{path: path}
}

var _ runtime.Action = (*ReadFile)(nil)

// Probe implements runtime.Action.
func (a *ReadFile) Probe(ctx context.Context, rt *runtime.Runtime) (runtime.Probe, error) {
	return runtime.Probe{NeedsRun: true, CanRollback: false}, nil
}

// Run implements runtime.Action.
func (a *ReadFile) Run(ctx context.Context, rt *runtime.Runtime, op runtime.Operation) (*runtime.Output, error) {
	if op == runtime.OperationRollback {
		return nil, barleyerrors.ErrOperationNotSupported
	}

	content, err := os.ReadFile(a.path)
	if err != nil {
		return nil, barleyerrors.NewActionFailed(
			fmt.Sprintf("failed to read file %s", a.path),
			err.Error(),
		)
	}

	out := runtime.StringOutput(string(content))
	return &out, nil
}

// DisplayName implements runtime.Action.
func (a *ReadFile) DisplayName() string {
	return fmt.Sprintf("Read file %s", a.path)
}

// DeleteFile removes a file. The probe reports no work when the file is
// already gone.
type DeleteFile struct {
	path string
}

// NewDeleteFile creates a DeleteFile action.
func NewDeleteFile(path string) *DeleteFile {
	return &DeleteFile{path: path}
}

var _ runtime.Action = (*DeleteFile)(nil)

// Probe implements runtime.Action.
func (a *DeleteFile) Probe(ctx context.Context, rt *runtime.Runtime) (runtime.Probe, error) {
	_, err := os.Stat(a.path)
	if err != nil {
		if os.IsNotExist(err) {
			return runtime.Probe{NeedsRun: false, CanRollback: false}, nil
		}
		return runtime.Probe{}, barleyerrors.NewActionFailed(
			fmt.Sprintf("failed to stat %s", a.path),
			err.Error(),
		)
	}
	return runtime.Probe{NeedsRun: true, CanRollback: false}, nil
}

// Run implements runtime.Action.
func (a *DeleteFile) Run(ctx context.Context, rt *runtime.Runtime, op runtime.Operation) (*runtime.Output, error) {
	if op == runtime.OperationRollback {
		return nil, barleyerrors.ErrOperationNotSupported
	}

	if err := os.Remove(a.path); err != nil {
		return nil, barleyerrors.NewActionFailed(
			fmt.Sprintf("failed to delete file %s", a.path),
			err.Error(),
		)
	}

	return nil, nil
}

// DisplayName implements runtime.Action.
func (a *DeleteFile) DisplayName() string {
	return fmt.Sprintf("Delete file %s", a.path)
}

// TempDir creates a temporary directory and publishes its path. Rollback
// removes the directory and everything under it.
type TempDir struct {
	pattern string

	mu      sync.Mutex
	created string
}

// NewTempDir creates a TempDir action. The pattern is passed to
// os.MkdirTemp.
func NewTempDir(pattern string) *TempDir {
	return &TempDir{pattern: pattern}
}

var _ runtime.Action = (*TempDir)(nil)

// Probe implements runtime.Action.
func (a *TempDir) Probe(ctx context.Context, rt *runtime.Runtime) (runtime.Probe, error) {
	return runtime.Probe{NeedsRun: true, CanRollback: true}, nil
}

// Run implements runtime.Action.
func (a *TempDir) Run(ctx context.Context, rt *runtime.Runtime, op runtime.Operation) (*runtime.Output, error) {
	if op == runtime.OperationRollback {
		a.mu.Lock()
		created := a.created
		a.created = ""
		a.mu.Unlock()

		if created == "" {
			return nil, nil
		}
		if err := os.RemoveAll(created); err != nil {
			return nil, barleyerrors.NewActionFailed(
				fmt.Sprintf("failed to remove temp dir %s", created),
				err.Error(),
			)
		}
		return nil, nil
	}

	dir, err := os.MkdirTemp("", a.pattern)
	if err != nil {
		return nil, barleyerrors.NewActionFailed(
			"failed to create temp dir",
			err.Error(),
		)
	}

	a.mu.Lock()
	a.created = dir
	a.mu.Unlock()

	out := runtime.StringOutput(dir)
	return &out, nil
}

// DisplayName implements runtime.Action.
func (a *TempDir) DisplayName() string {
	return "Create temp dir"
}
