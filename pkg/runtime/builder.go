package runtime

import (
	"reflect"
	"sync"

	"github.com/panthios/barley/pkg/logging"
)

// hooks carries the optional lifecycle callbacks. A nil callback is a no-op.
type hooks struct {
	started  func(*Node)
	finished func(*Node)
	failed   func(*Node, error)
}

// Builder accumulates nodes and shared state, then freezes them into a
// Runtime. It is a pure collector: acyclicity and reachability are not
// validated here.
type Builder struct {
	nodes     []*Node
	seen      map[Id]struct{}
	state     map[reflect.Type]any
	variables map[string]string
	hooks     hooks
	log       logging.Logger
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{
		seen:      make(map[Id]struct{}),
		state:     make(map[reflect.Type]any),
		variables: make(map[string]string),
		log:       logging.NewNoop(),
	}
}

// AddAction appends a node to the graph, invoking the action's state
// registration hook. A node already present is not added twice.
func (b *Builder) AddAction(n *Node) *Builder {
	if n == nil {
		return b
	}
	if _, ok := b.seen[n.id]; ok {
		return b
	}
	n.loadState(b)
	b.seen[n.id] = struct{}{}
	b.nodes = append(b.nodes, n)
	return b
}

// AddScope adds every node in the scope, in order.
func (b *Builder) AddScope(s *Scope) *Builder {
	if s == nil {
		return b
	}
	for _, n := range s.nodes {
		b.AddAction(n)
	}
	return b
}

// SetVariable stores a value in the name-keyed registry, overwriting any
// previous entry.
func (b *Builder) SetVariable(name, value string) *Builder {
	b.variables[name] = value
	return b
}

// SetState stores value in the type-keyed registry under T, overwriting any
// previous entry. The registry is read-only once the runtime is built.
func SetState[T any](b *Builder, value T) {
	b.state[reflect.TypeOf((*T)(nil)).Elem()] = value
}

// OnActionStarted registers the callback invoked when an action with a
// non-empty display name begins its effectful step.
func (b *Builder) OnActionStarted(fn func(*Node)) *Builder {
	b.hooks.started = fn
	return b
}

// OnActionFinished registers the callback invoked when an action with a
// non-empty display name completes its effectful step.
func (b *Builder) OnActionFinished(fn func(*Node)) *Builder {
	b.hooks.finished = fn
	return b
}

// OnActionFailed registers the callback invoked, before the error is
// surfaced, when an action with a non-empty display name fails.
func (b *Builder) OnActionFailed(fn func(*Node, error)) *Builder {
	b.hooks.failed = fn
	return b
}

// WithLogger sets the logger the runtime writes scheduler events to.
func (b *Builder) WithLogger(log logging.Logger) *Builder {
	if log != nil {
		b.log = log
	}
	return b
}

// Build freezes the graph and state into a Runtime. The runtime gets its
// own copies, so later builder mutations cannot reach a running workflow.
func (b *Builder) Build() *Runtime {
	nodes := make([]*Node, len(b.nodes))
	copy(nodes, b.nodes)

	state := make(map[reflect.Type]any, len(b.state))
	for k, v := range b.state {
		state[k] = v
	}
	variables := make(map[string]string, len(b.variables))
	for k, v := range b.variables {
		variables[k] = v
	}

	return &Runtime{
		nodes:     nodes,
		state:     state,
		variables: variables,
		hooks:     b.hooks,
		log:       b.log,
		outputs:   &outputStore{values: make(map[Id]Output)},
	}
}

// outputStore is the mutex-guarded Id → Output mapping populated during
// execution. Writes are coarse-grained: once per finished action.
type outputStore struct {
	mu     sync.RWMutex
	values map[Id]Output
}

func (s *outputStore) get(id Id) (Output, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out, ok := s.values[id]
	return out, ok
}

func (s *outputStore) put(id Id, out Output) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[id] = out
}
