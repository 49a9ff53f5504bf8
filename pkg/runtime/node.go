package runtime

import (
	"context"

	"github.com/google/uuid"
)

// Node wraps an action with identity and its prerequisite list. Nodes are
// shared by pointer: the same node may appear in many dependency lists and
// in dynamic inputs.
type Node struct {
	action Action
	deps   []*Node
	id     Id
}

// NewNode wraps an action in a fresh node.
func NewNode(action Action) *Node {
	return &Node{
		action: action,
		id:     uuid.New(),
	}
}

// Requires declares dep as a prerequisite of this node. Edges may be added
// until the owning builder freezes the graph.
func (n *Node) Requires(dep *Node) *Node {
	n.deps = append(n.deps, dep)
	return n
}

// ID returns the node's identifier.
func (n *Node) ID() Id {
	return n.id
}

// DisplayName returns the wrapped action's human label.
func (n *Node) DisplayName() string {
	return n.action.DisplayName()
}

// Deps returns the prerequisite list. Insertion order is preserved but has
// no semantic weight.
func (n *Node) Deps() []*Node {
	out := make([]*Node, len(n.deps))
	copy(out, n.deps)
	return out
}

func (n *Node) probe(ctx context.Context, rt *Runtime) (Probe, error) {
	return n.action.Probe(ctx, rt)
}

func (n *Node) run(ctx context.Context, rt *Runtime, op Operation) (*Output, error) {
	return n.action.Run(ctx, rt, op)
}

func (n *Node) loadState(b *Builder) {
	if loader, ok := n.action.(StateLoader); ok {
		loader.LoadState(b)
	}
}

// Scope is a convenience bundle of nodes added to a builder as a group. It
// has no execution semantics of its own.
type Scope struct {
	nodes []*Node
}

// NewScope creates an empty scope.
func NewScope() *Scope {
	return &Scope{}
}

// Add appends a node to the scope and returns it so dependencies can be
// declared on the same value.
func (s *Scope) Add(n *Node) *Node {
	s.nodes = append(s.nodes, n)
	return n
}

// Nodes lists the scope's nodes in insertion order.
func (s *Scope) Nodes() []*Node {
	out := make([]*Node, len(s.nodes))
	copy(out, s.nodes)
	return out
}
