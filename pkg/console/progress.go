package console

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/panthios/barley/pkg/runtime"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	runningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("33"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

// ActionStartedMsg reports an action entering its effectful step.
type ActionStartedMsg struct {
	Name string
}

// ActionFinishedMsg reports an action completing its effectful step.
type ActionFinishedMsg struct {
	Name string
}

// ActionFailedMsg reports an action failure.
type ActionFailedMsg struct {
	Name string
	Err  error
}

// WorkflowDoneMsg reports the end of the whole run.
type WorkflowDoneMsg struct {
	Err error
}

type actionState int

const (
	stateRunning actionState = iota
	stateDone
	stateFailed
)

// Progress is a bubbletea dashboard fed by workflow lifecycle hooks.
type Progress struct {
	title  string
	events chan tea.Msg
	done   chan tea.Msg
}

// NewProgress creates a dashboard with the given title.
func NewProgress(title string) *Progress {
	return &Progress{
		title:  title,
		events: make(chan tea.Msg, 64),
		done:   make(chan tea.Msg, 1),
	}
}

// Attach registers the dashboard's hooks on the builder. Attach must be
// called before Build. Hooks must not block scheduler tasks, so an event
// that cannot be buffered is dropped.
func (p *Progress) Attach(b *runtime.Builder) {
	b.OnActionStarted(func(n *runtime.Node) {
		p.send(ActionStartedMsg{Name: n.DisplayName()})
	})
	b.OnActionFinished(func(n *runtime.Node) {
		p.send(ActionFinishedMsg{Name: n.DisplayName()})
	})
	b.OnActionFailed(func(n *runtime.Node, err error) {
		p.send(ActionFailedMsg{Name: n.DisplayName(), Err: err})
	})
}

func (p *Progress) send(msg tea.Msg) {
	select {
	case p.events <- msg:
	default:
	}
}

// Run executes the runtime's Perform while rendering the dashboard. It
// returns Perform's error once both the UI and Perform have finished. The
// UI quits as soon as it receives the done message; events still buffered
// at that point are not rendered.
func (p *Progress) Run(ctx context.Context, rt *runtime.Runtime) error {
	model := newProgressModel(p.title, p.events, p.done)
	program := tea.NewProgram(model, tea.WithContext(ctx))

	var wg sync.WaitGroup
	var performErr error

	wg.Add(1)
	go func() {
		defer wg.Done()
		performErr = rt.Perform(ctx)
		p.done <- WorkflowDoneMsg{Err: performErr}
	}()

	if _, err := program.Run(); err != nil {
		program.Kill()
		wg.Wait()
		if performErr != nil {
			return performErr
		}
		return err
	}

	wg.Wait()
	return performErr
}

type progressModel struct {
	title    string
	spinner  spinner.Model
	order    []string
	status   map[string]actionState
	events   chan tea.Msg
	doneChan chan tea.Msg
	done     bool
	err      error
}

func newProgressModel(title string, events, done chan tea.Msg) progressModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = runningStyle

	return progressModel{
		title:    title,
		spinner:  sp,
		status:   make(map[string]actionState),
		events:   events,
		doneChan: done,
	}
}

func (m progressModel) listen() tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-m.events:
			return msg
		case msg := <-m.doneChan:
			return msg
		}
	}
}

// Init implements tea.Model.
func (m progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.listen())
}

// Update implements tea.Model.
func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ActionStartedMsg:
		m.ensure(msg.Name)
		m.status[msg.Name] = stateRunning
		return m, m.listen()
	case ActionFinishedMsg:
		m.ensure(msg.Name)
		m.status[msg.Name] = stateDone
		return m, m.listen()
	case ActionFailedMsg:
		m.ensure(msg.Name)
		m.status[msg.Name] = stateFailed
		m.err = msg.Err
		return m, m.listen()
	case WorkflowDoneMsg:
		m.done = true
		if msg.Err != nil {
			m.err = msg.Err
		}
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *progressModel) ensure(name string) {
	if _, ok := m.status[name]; !ok {
		m.order = append(m.order, name)
	}
}

// View implements tea.Model.
func (m progressModel) View() string {
	var lines []string
	lines = append(lines, titleStyle.Render(m.title))

	for _, name := range m.order {
		switch m.status[name] {
		case stateDone:
			lines = append(lines, fmt.Sprintf(" %s %s", successStyle.Render("✓"), name))
		case stateFailed:
			lines = append(lines, fmt.Sprintf(" %s %s", failureStyle.Render("✗"), name))
		default:
			lines = append(lines, fmt.Sprintf(" %s %s", m.spinner.View(), name))
		}
	}

	if m.done {
		if m.err != nil {
			lines = append(lines, failureStyle.Render(fmt.Sprintf("workflow failed: %v", m.err)))
		} else {
			lines = append(lines, successStyle.Render("workflow complete"))
		}
	}

	return strings.Join(lines, "\n") + "\n"
}
