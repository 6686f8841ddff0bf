package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/maze-chase/internal/registry"
)

// MenuKeyMap defines the key bindings for the pack picker.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Scores key.Binding
	Quit   key.Binding
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k", "w")),
		Down:   key.NewBinding(key.WithKeys("down", "j", "s")),
		Select: key.NewBinding(key.WithKeys("enter", " ")),
		Scores: key.NewBinding(key.WithKeys("tab")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c")),
	}
}

// MenuModel is the Bubble Tea model for choosing a layout pack.
type MenuModel struct {
	packs          []registry.PackInfo
	cursor         int
	width          int
	height         int
	keys           MenuKeyMap
	quitting       bool
	selected       string // set when user selects a pack
	openScoreboard bool
}

// NewMenuModel creates a new menu model.
func NewMenuModel(width, height int) MenuModel {
	m := MenuModel{
		packs:  registry.List(),
		width:  width,
		height: height,
		keys:   DefaultMenuKeyMap(),
	}
	return m.focus(registry.Default)
}

// focus moves the cursor to the named pack, if listed.
func (m MenuModel) focus(name string) MenuModel {
	for i, p := range m.packs {
		if p.Name == name {
			m.cursor = i
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.packs)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Select):
			if len(m.packs) > 0 {
				m.selected = m.packs[m.cursor].Name
			}
		case key.Matches(msg, m.keys.Scores):
			m.openScoreboard = true
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")).Render("M A Z E   C H A S E")
	b.WriteString("\n")
	b.WriteString(centerText(title, m.width, lipgloss.Width(title)))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a maze pack", m.width, 0))
	b.WriteString("\n\n")

	for i, p := range m.packs {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%-8s %s", cursor, p.Name, p.Description)
		b.WriteString(centerText(line, m.width, 0))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Play  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(controls, m.width, 0))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen pack name, or "" if none selected.
func (m MenuModel) Selected() string {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested the scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// centerText centers text within the given width. visible overrides the
// measured length for pre-styled text; pass 0 to use len(text).
func centerText(text string, width, visible int) string {
	if visible == 0 {
		visible = len([]rune(text))
	}
	if visible >= width {
		return text
	}
	return strings.Repeat(" ", (width-visible)/2) + text
}
