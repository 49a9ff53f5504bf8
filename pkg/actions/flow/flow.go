// Package flowaction provides pure coordination actions with no effect of
// their own.
package flowaction

import (
	"context"

	"github.com/panthios/barley/pkg/runtime"
)

// Join is a rendezvous node: it performs nothing and reports nothing, but
// a node wrapping it can require many prerequisites so that downstream
// work waits for all of them at once.
type Join struct{}

// NewJoin creates a Join action.
func NewJoin() *Join {
	return &Join{}
}

var _ runtime.Action = (*Join)(nil)

// Probe implements runtime.Action. A join never needs to run.
func (a *Join) Probe(ctx context.Context, rt *runtime.Runtime) (runtime.Probe, error) {
	return runtime.Probe{NeedsRun: false, CanRollback: false}, nil
}

// Run implements runtime.Action.
func (a *Join) Run(ctx context.Context, rt *runtime.Runtime, op runtime.Operation) (*runtime.Output, error) {
	return nil, nil
}

// DisplayName implements runtime.Action. The empty name keeps joins out of
// lifecycle reporting.
func (a *Join) DisplayName() string {
	return ""
}
