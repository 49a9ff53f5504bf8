package runtime

import (
	"context"
	"errors"
	"fmt"
	"os"
	"reflect"

	"golang.org/x/sync/errgroup"

	barleyerrors "github.com/panthios/barley/pkg/errors"
	"github.com/panthios/barley/pkg/logging"
)

// Runtime is a frozen workflow: the scheduler, the output store, the state
// registry and the observer dispatcher. A single Runtime is freely shared
// across the tasks it spawns.
type Runtime struct {
	nodes     []*Node
	state     map[reflect.Type]any
	variables map[string]string
	hooks     hooks
	log       logging.Logger
	outputs   *outputStore
}

// GetOutput returns a snapshot of the node's published output. The second
// return is false if the node has not run or returned no value.
func (rt *Runtime) GetOutput(n *Node) (Output, bool) {
	if n == nil {
		return Output{}, false
	}
	return rt.outputs.get(n.id)
}

// GetVariable looks up a value in the name-keyed registry.
func (rt *Runtime) GetVariable(name string) (string, bool) {
	v, ok := rt.variables[name]
	return v, ok
}

// State looks up the instance registered under T in the type-keyed
// registry. Methods cannot be generic, hence the free function.
func State[T any](rt *Runtime) (T, bool) {
	v, ok := rt.state[reflect.TypeOf((*T)(nil)).Elem()]
	if !ok {
		var zero T
		return zero, false
	}
	return v.(T), true
}

// Perform executes every node at most once, honoring dependency edges.
// Independent nodes run concurrently. The first surfaced error cancels all
// outstanding tasks and is returned verbatim; on success nil is returned.
func (rt *Runtime) Perform(ctx context.Context) error {
	// Reject cycles up front rather than deadlocking the tasks.
	if _, err := levels(rt.nodes); err != nil {
		return err
	}

	inGraph := make(map[Id]struct{}, len(rt.nodes))
	dependents := make(map[Id]int, len(rt.nodes))
	for _, n := range rt.nodes {
		inGraph[n.id] = struct{}{}
	}
	for _, n := range rt.nodes {
		for _, dep := range n.deps {
			if _, ok := inGraph[dep.id]; ok {
				dependents[dep.id]++
			}
		}
	}

	// One completion signal per node with dependents. Closing the channel
	// releases every waiter, the moral equivalent of an N+1 barrier.
	signals := make(map[Id]chan struct{}, len(dependents))
	for id, count := range dependents {
		if count > 0 {
			signals[id] = make(chan struct{})
		}
	}

	g, ctx := errgroup.WithContext(ctx)

	rt.log.Debug(ctx, "starting actions", "count", len(rt.nodes))

	for _, node := range rt.nodes {
		node := node
		g.Go(func() error {
			return rt.performNode(ctx, node, signals)
		})
	}

	err := g.Wait()
	if err != nil {
		rt.reportAbort(err)
		return err
	}
	return nil
}

func (rt *Runtime) performNode(ctx context.Context, node *Node, signals map[Id]chan struct{}) (err error) {
	defer func() {
		if r := recover(); r != nil {
			rt.log.Error(ctx, "task panicked", "action", node.DisplayName(), "panic", fmt.Sprint(r))
			err = barleyerrors.NewInternalError(barleyerrors.CodeJoin)
		}
	}()

	for _, dep := range node.deps {
		sig, ok := signals[dep.id]
		if !ok {
			continue
		}
		select {
		case <-sig:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	probe, err := node.probe(ctx, rt)
	if err != nil {
		rt.failNode(ctx, node, err)
		return err
	}

	if probe.NeedsRun {
		displayName := node.DisplayName()
		if displayName != "" {
			rt.log.Info(ctx, "starting action", "action", displayName)
			if rt.hooks.started != nil {
				rt.hooks.started(node)
			}
		}

		output, err := node.run(ctx, rt, OperationPerform)
		if err != nil {
			rt.failNode(ctx, node, err)
			return err
		}

		if displayName != "" {
			rt.log.Info(ctx, "action finished", "action", displayName)
			if rt.hooks.finished != nil {
				rt.hooks.finished(node)
			}
		}

		if output != nil {
			rt.outputs.put(node.id, *output)
		}
	}

	if sig, ok := signals[node.id]; ok {
		close(sig)
	}

	return nil
}

func (rt *Runtime) failNode(ctx context.Context, node *Node, err error) {
	displayName := node.DisplayName()
	if displayName == "" {
		return
	}
	rt.log.Error(ctx, "action failed", "action", displayName, "error", err)
	if rt.hooks.failed != nil {
		rt.hooks.failed(node, err)
	}
}

// Rollback undoes the workflow in reverse dependency order. Every node must
// report CanRollback from its probe; otherwise InternalError(NO_ROLLBACK)
// is returned before any rollback runs. Rollback is serialized: within the
// reverse walk a dependent is always undone before its prerequisites.
func (rt *Runtime) Rollback(ctx context.Context) error {
	for _, node := range rt.nodes {
		probe, err := node.probe(ctx, rt)
		if err != nil {
			rt.reportAbort(err)
			return err
		}
		if !probe.CanRollback {
			return barleyerrors.NewInternalError(barleyerrors.CodeNoRollback)
		}
	}

	sorted, err := levels(rt.nodes)
	if err != nil {
		return err
	}

	for i := len(sorted) - 1; i >= 0; i-- {
		for _, node := range sorted[i] {
			if err := ctx.Err(); err != nil {
				return err
			}

			rt.log.Info(ctx, "rolling back action", "action", node.DisplayName())

			// Rollback never produces an output; any returned value is
			// discarded.
			if _, err := node.run(ctx, rt, OperationRollback); err != nil {
				rt.reportAbort(err)
				return err
			}
		}
	}

	return nil
}

// reportAbort writes the verbose half of an action failure to standard
// error. Other error kinds are surfaced verbatim without printing.
func (rt *Runtime) reportAbort(err error) {
	var failed *barleyerrors.ActionFailedError
	if errors.As(err, &failed) && failed.Long != "" {
		fmt.Fprintln(os.Stderr, failed.Long)
	}
}
