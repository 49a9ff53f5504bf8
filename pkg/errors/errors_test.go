package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestActionFailedCarriesShortAndLong(t *testing.T) {
	t.Parallel()

	err := NewActionFailed("command exited with status 2", "stderr: permission denied")

	var failed *ActionFailedError
	require.ErrorAs(t, err, &failed)
	require.Equal(t, "command exited with status 2", failed.Short)
	require.Equal(t, "stderr: permission denied", failed.Long)
	require.Equal(t, "command exited with status 2", err.Error())
}

func TestOutputConversionErrorNamesTarget(t *testing.T) {
	t.Parallel()

	err := NewOutputConversionError("string")

	var conv *OutputConversionError
	require.ErrorAs(t, err, &conv)
	require.Equal(t, "string", conv.Target)
	require.Contains(t, err.Error(), "string")
}

func TestInternalErrorCodeMatching(t *testing.T) {
	t.Parallel()

	err := NewInternalError(CodeNoRollback)

	require.True(t, IsInternal(err, CodeNoRollback))
	require.False(t, IsInternal(err, CodeJoin))
	require.Contains(t, err.Error(), "NO_ROLLBACK")

	wrapped := fmt.Errorf("perform: %w", err)
	require.True(t, IsInternal(wrapped, CodeNoRollback))
}

func TestSentinelErrorsAreDistinct(t *testing.T) {
	t.Parallel()

	sentinels := []error{
		ErrNoActionReturn,
		ErrOperationNotSupported,
		ErrStateNotLoaded,
		ErrWrongOutputType,
	}

	for i, err := range sentinels {
		for j, other := range sentinels {
			if i == j {
				require.True(t, stdErrors.Is(err, other))
				continue
			}
			require.False(t, stdErrors.Is(err, other))
		}
	}
}

func TestSentinelsSurviveWrapping(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("resolve input: %w", ErrWrongOutputType)
	require.True(t, stdErrors.Is(wrapped, ErrWrongOutputType))
	require.False(t, stdErrors.Is(wrapped, ErrNoActionReturn))
}
