package runtime

import (
	"testing"

	"github.com/stretchr/testify/require"

	barleyerrors "github.com/panthios/barley/pkg/errors"
)

func TestOutputRoundTrips(t *testing.T) {
	t.Parallel()

	s, err := StringOutput("hello").AsString()
	require.NoError(t, err)
	require.Equal(t, "hello", s)

	i, err := IntOutput(42).AsInt()
	require.NoError(t, err)
	require.Equal(t, int64(42), i)

	f, err := FloatOutput(2.5).AsFloat()
	require.NoError(t, err)
	require.Equal(t, 2.5, f)

	b, err := BoolOutput(true).AsBool()
	require.NoError(t, err)
	require.True(t, b)
}

func TestOutputConversionMismatchNamesTarget(t *testing.T) {
	t.Parallel()

	_, err := IntOutput(7).AsString()
	require.Error(t, err)

	var conv *barleyerrors.OutputConversionError
	require.ErrorAs(t, err, &conv)
	require.Equal(t, "string", conv.Target)

	_, err = StringOutput("x").AsInt()
	require.ErrorAs(t, err, &conv)
	require.Equal(t, "int64", conv.Target)

	_, err = BoolOutput(false).AsFloat()
	require.ErrorAs(t, err, &conv)
	require.Equal(t, "float64", conv.Target)

	_, err = FloatOutput(1.0).AsBool()
	require.ErrorAs(t, err, &conv)
	require.Equal(t, "bool", conv.Target)
}

func TestOutputKind(t *testing.T) {
	t.Parallel()

	require.Equal(t, OutputString, StringOutput("").Kind())
	require.Equal(t, OutputInteger, IntOutput(0).Kind())
	require.Equal(t, OutputFloat, FloatOutput(0).Kind())
	require.Equal(t, OutputBoolean, BoolOutput(false).Kind())
}
