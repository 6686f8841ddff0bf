package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/maze-chase/internal/engine"
)

var errLettersOnly = errors.New("letters only")

// NameEntry collects the three initials for a new high score.
type NameEntry struct {
	input textinput.Model
	err   error
}

// NewNameEntry returns a focused, empty name field.
func NewNameEntry() NameEntry {
	ti := textinput.New()
	ti.Prompt = "NAME: "
	ti.Placeholder = "AAA"
	ti.CharLimit = engine.NameLength
	ti.Width = engine.NameLength + 1
	ti.Validate = func(s string) error {
		for _, r := range s {
			if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
				return errLettersOnly
			}
		}
		return nil
	}
	ti.Focus()
	return NameEntry{input: ti}
}

// Update forwards key input to the text field, upper-casing as it goes.
func (n NameEntry) Update(msg tea.Msg) (NameEntry, tea.Cmd) {
	var cmd tea.Cmd
	n.input, cmd = n.input.Update(msg)
	n.input.SetValue(strings.ToUpper(n.input.Value()))
	n.err = nil
	return n, cmd
}

// Value returns the current text.
func (n NameEntry) Value() string {
	return n.input.Value()
}

// SetError shows a rejection under the field.
func (n *NameEntry) SetError(err error) {
	n.err = err
}

// View renders the prompt box.
func (n NameEntry) View() string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("229")).
		Padding(0, 2)

	lines := []string{
		lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Render("NEW HIGH SCORE"),
		n.input.View(),
	}
	if n.err != nil {
		lines = append(lines, lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Render(n.err.Error()))
	} else {
		lines = append(lines, lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render("enter to save, esc to skip"))
	}
	return box.Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
}
