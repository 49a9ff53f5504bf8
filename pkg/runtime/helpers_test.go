package runtime

import (
	"context"
	"sync"
	"sync/atomic"
)

// stubAction is a configurable action for scheduler tests.
type stubAction struct {
	name     string
	probe    Probe
	probeErr error
	runFn    func(ctx context.Context, rt *Runtime, op Operation) (*Output, error)

	probeCalls    atomic.Int32
	performCalls  atomic.Int32
	rollbackCalls atomic.Int32
}

func (a *stubAction) Probe(ctx context.Context, rt *Runtime) (Probe, error) {
	a.probeCalls.Add(1)
	if a.probeErr != nil {
		return Probe{}, a.probeErr
	}
	return a.probe, nil
}

func (a *stubAction) Run(ctx context.Context, rt *Runtime, op Operation) (*Output, error) {
	switch op {
	case OperationRollback:
		a.rollbackCalls.Add(1)
	default:
		a.performCalls.Add(1)
	}
	if a.runFn != nil {
		return a.runFn(ctx, rt, op)
	}
	return nil, nil
}

func (a *stubAction) DisplayName() string {
	return a.name
}

// runnable returns a stub that needs to run and succeeds.
func runnable(name string) *stubAction {
	return &stubAction{name: name, probe: Probe{NeedsRun: true}}
}

// reversible returns a stub that needs to run and supports rollback.
func reversible(name string) *stubAction {
	return &stubAction{name: name, probe: Probe{NeedsRun: true, CanRollback: true}}
}

// eventLog records lifecycle hook invocations in wall-clock order.
type eventLog struct {
	mu     sync.Mutex
	events []string
}

func (l *eventLog) record(event string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, event)
}

func (l *eventLog) snapshot() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.events))
	copy(out, l.events)
	return out
}

func (l *eventLog) index(event string) int {
	for i, e := range l.snapshot() {
		if e == event {
			return i
		}
	}
	return -1
}

// attach wires the log to a builder's three lifecycle hooks.
func (l *eventLog) attach(b *Builder) {
	b.OnActionStarted(func(n *Node) { l.record("started " + n.DisplayName()) })
	b.OnActionFinished(func(n *Node) { l.record("finished " + n.DisplayName()) })
	b.OnActionFailed(func(n *Node, err error) { l.record("failed " + n.DisplayName()) })
}
