package runtime

import (
	"context"

	"github.com/google/uuid"
)

// Id uniquely identifies a node for the lifetime of its graph.
type Id = uuid.UUID

// Operation tells an action's Run what to do.
type Operation int

const (
	// OperationPerform executes the action's forward step.
	OperationPerform Operation = iota
	// OperationRollback undoes the action's forward step.
	OperationRollback
)

func (op Operation) String() string {
	switch op {
	case OperationRollback:
		return "rollback"
	default:
		return "perform"
	}
}

// Probe is an action's answer to "do you need to run, and can you undo?".
type Probe struct {
	// NeedsRun is false when the desired post-condition already holds and
	// execution can be skipped.
	NeedsRun bool
	// CanRollback is true when the action supports OperationRollback.
	CanRollback bool
}

// Action is a measurable, reversible task.
//
// Probe must be side-effect-free with respect to external systems and
// idempotent: the runtime may call it several times across a perform and a
// rollback. Run is the effectful step; it returns an optional output for
// OperationPerform and must return errors.ErrOperationNotSupported for an
// operation it does not implement. An empty DisplayName suppresses
// lifecycle reporting for the action.
type Action interface {
	Probe(ctx context.Context, rt *Runtime) (Probe, error)
	Run(ctx context.Context, rt *Runtime, op Operation) (*Output, error)
	DisplayName() string
}

// StateLoader is an optional hook detected by type assertion when a node is
// added to a builder. Actions implement it to pre-register shared state
// they will later require.
type StateLoader interface {
	LoadState(b *Builder)
}
