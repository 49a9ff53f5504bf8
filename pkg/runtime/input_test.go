package runtime

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	barleyerrors "github.com/panthios/barley/pkg/errors"
)

func TestStaticInput(t *testing.T) {
	t.Parallel()

	in := NewStaticInput("value")
	require.True(t, in.IsStatic())
	require.False(t, in.IsDynamic())

	v, ok := in.StaticValue()
	require.True(t, ok)
	require.Equal(t, "value", v)

	_, ok = in.Dynamic()
	require.False(t, ok)
}

func TestDynamicInput(t *testing.T) {
	t.Parallel()

	node := NewNode(runnable("producer"))
	in := NewDynamicInput[string](node)
	require.True(t, in.IsDynamic())
	require.False(t, in.IsStatic())

	got, ok := in.Dynamic()
	require.True(t, ok)
	require.Same(t, node, got)

	_, ok = in.StaticValue()
	require.False(t, ok)
}

func TestResolveStringStatic(t *testing.T) {
	t.Parallel()

	rt := NewBuilder().Build()
	v, err := ResolveString(rt, NewStaticInput("literal"))
	require.NoError(t, err)
	require.Equal(t, "literal", v)
}

func TestResolveStringDynamic(t *testing.T) {
	t.Parallel()

	producer := runnable("producer")
	producer.runFn = func(context.Context, *Runtime, Operation) (*Output, error) {
		out := StringOutput("xyz")
		return &out, nil
	}
	node := NewNode(producer)

	rt := NewBuilder().AddAction(node).Build()
	require.NoError(t, rt.Perform(context.Background()))

	v, err := ResolveString(rt, NewDynamicInput[string](node))
	require.NoError(t, err)
	require.Equal(t, "xyz", v)
}

func TestResolveStringNoOutput(t *testing.T) {
	t.Parallel()

	node := NewNode(runnable("silent"))
	rt := NewBuilder().AddAction(node).Build()
	require.NoError(t, rt.Perform(context.Background()))

	_, err := ResolveString(rt, NewDynamicInput[string](node))
	require.ErrorIs(t, err, barleyerrors.ErrNoActionReturn)
}

func TestResolveStringWrongType(t *testing.T) {
	t.Parallel()

	producer := runnable("counter")
	producer.runFn = func(context.Context, *Runtime, Operation) (*Output, error) {
		out := IntOutput(7)
		return &out, nil
	}
	node := NewNode(producer)

	rt := NewBuilder().AddAction(node).Build()
	require.NoError(t, rt.Perform(context.Background()))

	_, err := ResolveString(rt, NewDynamicInput[string](node))
	require.ErrorIs(t, err, barleyerrors.ErrWrongOutputType)
}
