package sleepaction

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	barleyerrors "github.com/panthios/barley/pkg/errors"
	"github.com/panthios/barley/pkg/runtime"
)

func TestSleepWaits(t *testing.T) {
	t.Parallel()

	node := runtime.NewNode(New(50 * time.Millisecond))
	rt := runtime.NewBuilder().AddAction(node).Build()

	start := time.Now()
	require.NoError(t, rt.Perform(context.Background()))
	require.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
}

func TestSleepHonorsCancellation(t *testing.T) {
	t.Parallel()

	node := runtime.NewNode(New(10 * time.Second))
	rt := runtime.NewBuilder().AddAction(node).Build()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := rt.Perform(ctx)
	require.Error(t, err)
	require.Less(t, time.Since(start), 5*time.Second)
}

func TestSleepRollbackUnsupported(t *testing.T) {
	t.Parallel()

	action := New(time.Millisecond)
	rt := runtime.NewBuilder().Build()

	_, err := action.Run(context.Background(), rt, runtime.OperationRollback)
	require.ErrorIs(t, err, barleyerrors.ErrOperationNotSupported)
}

func TestSleepDisplayName(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Sleep for 2s", New(2*time.Second).DisplayName())
}
