package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/maze-chase/internal/core"
	"github.com/vovakirdan/maze-chase/internal/engine"
)

// cueTicks is how long a cue banner stays on the HUD.
const cueTicks = 60

// Model is the Bubble Tea model for one maze-chase game.
type Model struct {
	eng    *engine.Engine
	screen *core.Screen
	config core.RuntimeConfig
	input  core.InputFrame
	keys   KeyMap
	help   help.Model

	naming      bool
	nameSkipped bool
	name        NameEntry

	banner     string
	bannerLeft int

	quitting   bool
	backToMenu bool
	embedded   bool // hosted by a menu; Back returns instead of quitting
}

// NewModel creates a Bubble Tea model driving eng.
func NewModel(eng *engine.Engine, cfg core.RuntimeConfig) Model {
	h := help.New()
	h.ShowAll = false

	return Model{
		eng:    eng,
		screen: core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		config: cfg,
		input:  core.NewInputFrame(),
		keys:   DefaultKeyMap(),
		help:   h,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.naming {
			return m.handleNameKey(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.embedded && key.Matches(msg, m.keys.Back) {
		s := m.eng.Session()
		if s.Paused || s.State == engine.GameOver || s.State == engine.NotStarted {
			m.backToMenu = true
			return m, nil
		}
	}

	if m.keys.MapKeyToFrame(msg, &m.input) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleNameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "esc":
		m.naming = false
		m.nameSkipped = true
		return m, nil
	case "enter":
		if err := m.eng.SubmitName(m.name.Value()); err != nil {
			m.name.SetError(err)
			return m, nil
		}
		m.naming = false
		return m, nil
	}

	var cmd tea.Cmd
	m.name, cmd = m.name.Update(msg)
	return m, cmd
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu {
		return m, nil
	}

	res := m.eng.Step(m.config.TickDuration(), m.input)
	m.input.Clear()

	for _, c := range res.Cues {
		if text := cueBanner(c, m.eng.Session()); text != "" {
			m.banner = text
			m.bannerLeft = cueTicks
		}
	}
	if m.bannerLeft > 0 {
		m.bannerLeft--
	}

	if res.State != engine.GameOver {
		m.nameSkipped = false
	}
	if m.eng.NameRequested() && !m.naming && !m.nameSkipped {
		m.naming = true
		m.name = NewNameEntry()
	}

	return m, tickCmd(m.config.TickRate)
}

func cueBanner(c engine.Cue, s *engine.Session) string {
	switch c {
	case engine.CueExtraLife:
		return "EXTRA LIFE!"
	case engine.CueBonusEaten:
		return "BONUS!"
	case engine.CueGhostEaten:
		return fmt.Sprintf("GHOST x%d", s.Power.EatCombo)
	}
	return ""
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	if m.naming {
		box := m.name.View()
		return lipgloss.Place(m.config.ScreenW, m.config.ScreenH, lipgloss.Center, lipgloss.Center, box)
	}

	DrawSnapshot(m.screen, m.eng.Snapshot())
	if m.bannerLeft > 0 {
		m.screen.DrawTextCentered(1, m.banner, core.ColorGreen)
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a full-screen Bubble Tea program for eng.
func Run(eng *engine.Engine, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(eng, cfg),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
