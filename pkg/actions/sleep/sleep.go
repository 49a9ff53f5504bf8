// Package sleepaction provides an action that pauses the workflow.
package sleepaction

import (
	"context"
	"fmt"
	"time"

	barleyerrors "github.com/panthios/barley/pkg/errors"
	"github.com/panthios/barley/pkg/runtime"
)

// Sleep pauses for a fixed duration when performed.
type Sleep struct {
	duration time.Duration
}

// New creates a Sleep action.
func New(duration time.Duration) *Sleep {
	return &Sleep{duration: duration}
}

var _ runtime.Action = (*Sleep)(nil)

// Probe implements runtime.Action. Sleeping is always necessary and never
// reversible.
func (a *Sleep) Probe(ctx context.Context, rt *runtime.Runtime) (runtime.Probe, error) {
	return runtime.Probe{NeedsRun: true, CanRollback: false}, nil
}

// Run implements runtime.Action.
func (a *Sleep) Run(ctx context.Context, rt *runtime.Runtime, op runtime.Operation) (*runtime.Output, error) {
	if op == runtime.OperationRollback {
		return nil, barleyerrors.ErrOperationNotSupported
	}

	select {
	case <-time.After(a.duration):
		return nil, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// DisplayName implements runtime.Action.
func (a *Sleep) DisplayName() string {
	return fmt.Sprintf("Sleep for %s", a.duration)
}
