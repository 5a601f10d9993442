// Package tui is a terminal text field that shows the palindrome verdict of
// its contents after every keystroke.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/baditaflorin/go_palindrome/internal/core/live"
	"github.com/baditaflorin/go_palindrome/internal/render"
)

var (
	yesStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	noStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	hintStyle = lipgloss.NewStyle().Faint(true)
)

// Model is the bubbletea model for the live checker.
type Model struct {
	input   textinput.Model
	binding *live.Binding
	labels  render.Labels
	last    string
}

// New creates a focused model driving binding.
func New(binding *live.Binding, labels render.Labels) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "type some text"
	ti.CharLimit = 0 // unlimited
	ti.Width = 60
	ti.Focus()

	if labels.Yes == "" || labels.No == "" {
		labels = render.DefaultLabels
	}
	return Model{input: ti, binding: binding, labels: labels}
}

// Init starts the cursor blinking.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update forwards keys to the text field and re-evaluates when its value changes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc, tea.KeyEnter:
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	if value := m.input.Value(); value != m.last {
		m.last = value
		m.binding.OnInputChange(value)
	}
	return m, cmd
}

// View renders the text field and the verdict badge.
func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(m.input.View())
	sb.WriteString("\n\n")

	result, evaluated := m.binding.Current()
	switch {
	case !evaluated:
		sb.WriteString(hintStyle.Render("start typing to check"))
	case result.Palindrome:
		sb.WriteString(yesStyle.Render(m.labels.Yes))
	default:
		sb.WriteString(noStyle.Render(m.labels.No))
	}

	sb.WriteString("\n")
	sb.WriteString(hintStyle.Render("enter or esc to quit"))
	sb.WriteString("\n")
	return sb.String()
}

// Value returns the current text.
func (m Model) Value() string {
	return m.input.Value()
}
