package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"roster/internal/app"
	"roster/internal/config"
	"roster/internal/registry"
	"roster/internal/shell"
)

// Controller defines the subset of app.App behaviour the TUI needs.
type Controller interface {
	Execute(line string) app.Result
	Registry() *registry.Registry
}

// Options configures the transcript.
type Options struct {
	Prompt       string
	HistoryLimit int
}

// Model represents the Bubble Tea state.
type Model struct {
	controller Controller

	input textinput.Model
	view  viewport.Model

	lines        []string
	historyLimit int
	lastKind     app.ResultKind

	width  int
	height int
}

// New constructs a TUI model with default styles.
func New(ctrl Controller, opts Options) *Model {
	in := textinput.New()
	in.Prompt = "> "
	in.Placeholder = opts.Prompt
	in.Focus()

	limit := opts.HistoryLimit
	if limit <= 0 {
		limit = config.DefaultHistoryLimit
	}

	return &Model{
		controller:   ctrl,
		input:        in,
		view:         viewport.New(80, 20),
		historyLimit: limit,
	}
}

// Run spins up the Bubble Tea program with sensible defaults.
func Run(ctrl Controller, opts Options) error {
	m := New(ctrl, opts)
	prog := tea.NewProgram(m, tea.WithAltScreen())
	_, err := prog.Run()
	return err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.view.Width = msg.Width
		if msg.Height > 4 {
			m.view.Height = msg.Height - 4
		}
		m.input.Width = max(0, msg.Width-len(m.input.Prompt)-1)
		m.view.GotoBottom()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			return m, m.submit()
		case tea.KeyPgUp:
			m.view.HalfViewUp()
			return m, nil
		case tea.KeyPgDown:
			m.view.HalfViewDown()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit executes the current input line and appends its output.
func (m *Model) submit() tea.Cmd {
	line := m.input.Value()
	m.input.SetValue("")

	res := m.controller.Execute(line)
	m.lastKind = res.Kind
	m.appendLines("> " + line)
	m.appendLines(strings.Split(shell.Format(res), "\n")...)

	if res.Kind == app.ResultExit {
		return tea.Quit
	}
	return nil
}

func (m *Model) appendLines(lines ...string) {
	m.lines = append(m.lines, lines...)
	if over := len(m.lines) - m.historyLimit; over > 0 {
		m.lines = append([]string(nil), m.lines[over:]...)
	}
	m.view.SetContent(strings.Join(m.lines, "\n"))
	m.view.GotoBottom()
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder

	reg := m.controller.Registry()
	status := fmt.Sprintf("roster • %d employee(s) • %d department(s)", reg.Len(), len(reg.Departments()))
	statusStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	if m.lastKind == app.ResultError {
		statusStyle = statusStyle.Foreground(lipgloss.Color("203"))
	}
	b.WriteString(statusStyle.Render(status))
	b.WriteByte('\n')

	b.WriteString(m.view.View())
	b.WriteByte('\n')
	b.WriteString(m.input.View())
	b.WriteByte('\n')

	help := "Commands: add <name> to <dept> • remove <name> from <dept> • list [dept] • exit • pgup/pgdn scroll"
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	b.WriteString(helpStyle.Render(help))

	return b.String()
}

// Transcript returns the lines currently kept in the output pane.
func (m *Model) Transcript() []string {
	return append([]string(nil), m.lines...)
}
