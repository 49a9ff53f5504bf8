package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
}

func TestLoggerWritesFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log, err := New(Options{Writer: &buf, Level: "debug", Component: "runtime"})
	require.NoError(t, err)

	log.Info(context.Background(), "action finished", "action", "Sleep for 1 seconds")

	out := buf.String()
	require.Contains(t, out, "action finished")
	require.Contains(t, out, "component")
	require.Contains(t, out, "runtime")
	require.Contains(t, out, "Sleep for 1 seconds")
}

func TestWithCarriesPersistentFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log, err := New(Options{Writer: &buf, Level: "info"})
	require.NoError(t, err)

	derived := log.With("workflow", "deploy")
	derived.Info(context.Background(), "starting")

	require.Contains(t, buf.String(), "deploy")
}

func TestLevelFiltering(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log, err := New(Options{Writer: &buf, Level: "warn"})
	require.NoError(t, err)

	log.Info(context.Background(), "quiet")
	log.Warn(context.Background(), "loud")

	out := buf.String()
	require.NotContains(t, out, "quiet")
	require.Contains(t, out, "loud")
}

func TestNoopLoggerIsSilent(t *testing.T) {
	t.Parallel()

	log := NewNoop()
	log.Debug(context.Background(), "nothing")
	log.With("a", 1).Error(context.Background(), "still nothing")
}
