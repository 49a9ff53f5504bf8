package runtime

import (
	barleyerrors "github.com/panthios/barley/pkg/errors"
)

// Input is an action parameter that is either a literal value or a handle
// to another node whose output is resolved at run-time.
//
// Declaring a dynamic input does not add a dependency edge by itself; the
// caller must also declare the edge with Node.Requires so the scheduler
// orders the producer before the consumer.
type Input[T any] struct {
	value   T
	node    *Node
	dynamic bool
}

// NewStaticInput creates an input carrying a literal value.
func NewStaticInput[T any](value T) Input[T] {
	return Input[T]{value: value}
}

// NewDynamicInput creates an input resolved from the node's output.
func NewDynamicInput[T any](node *Node) Input[T] {
	return Input[T]{node: node, dynamic: true}
}

// StaticValue returns the literal value, or false if the input is dynamic.
func (in Input[T]) StaticValue() (T, bool) {
	if in.dynamic {
		var zero T
		return zero, false
	}
	return in.value, true
}

// Dynamic returns the producing node, or false if the input is static.
func (in Input[T]) Dynamic() (*Node, bool) {
	if !in.dynamic {
		return nil, false
	}
	return in.node, true
}

// IsStatic reports whether the input carries a literal value.
func (in Input[T]) IsStatic() bool {
	return !in.dynamic
}

// IsDynamic reports whether the input is resolved from another node.
func (in Input[T]) IsDynamic() bool {
	return in.dynamic
}

// ResolveString resolves a string input against the runtime. Static inputs
// pass through; dynamic inputs read the producer's output from the store.
func ResolveString(rt *Runtime, in Input[string]) (string, error) {
	if v, ok := in.StaticValue(); ok {
		return v, nil
	}
	node, _ := in.Dynamic()
	out, ok := rt.GetOutput(node)
	if !ok {
		return "", barleyerrors.ErrNoActionReturn
	}
	s, err := out.AsString()
	if err != nil {
		return "", barleyerrors.ErrWrongOutputType
	}
	return s, nil
}
