package console

import (
	"bytes"
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	barleyerrors "github.com/panthios/barley/pkg/errors"
	"github.com/panthios/barley/pkg/runtime"
)

type namedAction struct {
	name string
	err  error
}

func (a namedAction) Probe(ctx context.Context, rt *runtime.Runtime) (runtime.Probe, error) {
	return runtime.Probe{NeedsRun: true}, nil
}

func (a namedAction) Run(ctx context.Context, rt *runtime.Runtime, op runtime.Operation) (*runtime.Output, error) {
	return nil, a.err
}

func (a namedAction) DisplayName() string {
	return a.name
}

func TestPrinterReportsLifecycle(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	b := runtime.NewBuilder()
	NewPrinter(&buf).Attach(b)

	b.AddAction(runtime.NewNode(namedAction{name: "step one"}))
	require.NoError(t, b.Build().Perform(context.Background()))

	out := buf.String()
	require.Contains(t, out, "[STARTED] step one")
	require.Contains(t, out, "[FINISHED] step one")
	require.NotContains(t, out, "[FAILED]")
}

func TestPrinterReportsFailure(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	b := runtime.NewBuilder()
	NewPrinter(&buf).Attach(b)

	b.AddAction(runtime.NewNode(namedAction{
		name: "broken",
		err:  barleyerrors.NewActionFailed("boom", ""),
	}))
	require.Error(t, b.Build().Perform(context.Background()))

	require.Contains(t, buf.String(), "[FAILED] broken: boom")
}

func TestProgressModelTracksStates(t *testing.T) {
	t.Parallel()

	m := newProgressModel("deploy", make(chan tea.Msg, 1), make(chan tea.Msg, 1))

	next, _ := m.Update(ActionStartedMsg{Name: "fetch"})
	m = next.(progressModel)
	require.Contains(t, m.View(), "fetch")

	next, _ = m.Update(ActionFinishedMsg{Name: "fetch"})
	m = next.(progressModel)
	require.Contains(t, m.View(), "✓")

	next, _ = m.Update(ActionFailedMsg{Name: "deploy", Err: barleyerrors.NewActionFailed("boom", "")})
	m = next.(progressModel)
	require.Contains(t, m.View(), "✗")

	next, cmd := m.Update(WorkflowDoneMsg{Err: nil})
	m = next.(progressModel)
	require.NotNil(t, cmd)
	require.True(t, m.done)
	require.Contains(t, m.View(), "workflow failed")
}

func TestProgressModelSuccessSummary(t *testing.T) {
	t.Parallel()

	m := newProgressModel("deploy", make(chan tea.Msg, 1), make(chan tea.Msg, 1))

	next, _ := m.Update(ActionStartedMsg{Name: "fetch"})
	m = next.(progressModel)
	next, _ = m.Update(ActionFinishedMsg{Name: "fetch"})
	m = next.(progressModel)
	next, _ = m.Update(WorkflowDoneMsg{Err: nil})
	m = next.(progressModel)

	require.Contains(t, m.View(), "workflow complete")
}
