package tui

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vito/progrock"
)

const (
	statusRunning   = "running"
	statusCompleted = "completed"
	statusCached    = "cached"
	statusFailed    = "failed"
)

// failedLogLines is the number of trailing output lines shown for a failed vertex.
const failedLogLines = 10

// VertexState represents the current state of a product vertex in the TUI.
type VertexState struct {
	ID     string
	Name   string
	Status string
	Error  string
}

type styles struct {
	running   lipgloss.Style
	completed lipgloss.Style
	cached    lipgloss.Style
	failed    lipgloss.Style
	output    lipgloss.Style
}

// Model is the Bubble Tea model for the TUI, managing vertices and tape updates.
type Model struct {
	tape     TapeSource
	vertices []VertexState
	logs     map[string]*bytes.Buffer
	height   int
	spinner  spinner.Model
	styles   styles
}

// NewModel creates a new TUI model with the given tape source.
func NewModel(tape TapeSource) *Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("yellow"))

	return &Model{
		tape:    tape,
		logs:    make(map[string]*bytes.Buffer),
		spinner: s,
		styles: styles{
			running:   lipgloss.NewStyle().Foreground(lipgloss.Color("yellow")),
			completed: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),  // Green
			cached:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")), // Gray
			failed:    lipgloss.NewStyle().Foreground(lipgloss.Color("160")), // Red
			output:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		},
	}
}

// Init initializes the model and starts reading from the tape.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		WaitForTape(m.tape),
		m.spinner.Tick,
	)
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case MsgTapeUpdate:
		m.apply(msg.Update)
		return m, WaitForTape(m.tape)
	case MsgTapeEnded:
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) apply(update *progrock.StatusUpdate) {
	for _, v := range update.Vertexes {
		m.updateOrAddVertex(v)
	}
	for _, l := range update.Logs {
		buf, ok := m.logs[l.Vertex]
		if !ok {
			buf = &bytes.Buffer{}
			m.logs[l.Vertex] = buf
		}
		buf.Write(l.Data)
	}
}

func (m *Model) updateOrAddVertex(v *progrock.Vertex) {
	state := VertexState{ID: v.Id, Name: v.Name, Status: statusRunning}
	switch {
	case v.Completed != nil && v.Error != nil:
		state.Status = statusFailed
		state.Error = *v.Error
	case v.Cached:
		state.Status = statusCached
	case v.Completed != nil:
		state.Status = statusCompleted
	}

	for i, existing := range m.vertices {
		if existing.ID == v.Id {
			m.vertices[i] = state
			return
		}
	}
	m.vertices = append(m.vertices, state)
}

// View renders the current state of the model as a string.
func (m *Model) View() string {
	var s strings.Builder

	// Keep the most recent vertices when the terminal is too short.
	start := 0
	if len(m.vertices) > m.height && m.height > 0 {
		start = len(m.vertices) - m.height
	}

	for _, v := range m.vertices[start:] {
		var icon string
		var style lipgloss.Style
		switch v.Status {
		case statusRunning:
			icon = m.spinner.View()
			style = m.styles.running
		case statusCompleted:
			icon = "✓"
			style = m.styles.completed
		case statusCached:
			icon = "="
			style = m.styles.cached
		default:
			icon = "✗"
			style = m.styles.failed
		}

		fmt.Fprintf(&s, "%s %s\n", style.Render(icon), v.Name)
		if v.Status != statusFailed {
			continue
		}
		for _, line := range tail(m.logs[v.ID], failedLogLines) {
			fmt.Fprintf(&s, "    %s\n", m.styles.output.Render(line))
		}
		if v.Error != "" {
			fmt.Fprintf(&s, "    %s\n", m.styles.failed.Render(v.Error))
		}
	}

	return s.String()
}

// tail returns the last n lines of buf.
func tail(buf *bytes.Buffer, n int) []string {
	if buf == nil || buf.Len() == 0 {
		return nil
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return lines
}
