package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/maze-chase/internal/config"
	"github.com/vovakirdan/maze-chase/internal/core"
	"github.com/vovakirdan/maze-chase/internal/engine"
	"github.com/vovakirdan/maze-chase/internal/maze"
)

func newTestEngine(t *testing.T) *engine.Engine {
	t.Helper()
	cfg := config.Default()
	cfg.Timing.ReadyMS = 0
	eng, err := engine.New(maze.MustBuiltin(), cfg, engine.WithSeed(1))
	require.NoError(t, err)
	return eng
}

func TestDrawSnapshot(t *testing.T) {
	eng := newTestEngine(t)
	snap := eng.Snapshot()

	w, h := RequiredSize(snap.Maze)
	screen := core.NewScreen(w, h)
	DrawSnapshot(screen, snap)

	assert.Contains(t, screen.Row(0), "SCORE 0")
	assert.Contains(t, screen.Row(h-1), "PRESS ENTER TO START")

	spawn := snap.Maze.PlayerSpawn()
	assert.Equal(t, '●', screen.Get(spawn.X, hudRows+spawn.Y), "player drawn on its spawn tile")

	for row := 0; row < snap.Maze.Height(); row++ {
		for col := 0; col < snap.Maze.Width(); col++ {
			if snap.Maze.At(col, row) == maze.Wall && !snap.Maze.IsDoor(col, row) {
				require.Equal(t, '█', screen.Get(col, hudRows+row), "wall at (%d,%d)", col, row)
			}
		}
	}
}

func TestDrawSnapshotDoubleWidth(t *testing.T) {
	eng := newTestEngine(t)
	snap := eng.Snapshot()

	w, h := RequiredSize(snap.Maze)
	screen := core.NewScreen(2*w, h)
	DrawSnapshot(screen, snap)

	spawn := snap.Maze.PlayerSpawn()
	assert.Equal(t, '●', screen.Get(2*spawn.X, hudRows+spawn.Y))
}

func TestDrawSnapshotTooSmall(t *testing.T) {
	eng := newTestEngine(t)
	screen := core.NewScreen(40, 5)

	DrawSnapshot(screen, eng.Snapshot())

	assert.Contains(t, screen.String(), "terminal too small")
	assert.NotContains(t, screen.String(), "█")
}

func TestDrawStatus(t *testing.T) {
	eng := newTestEngine(t)
	base := eng.Snapshot()
	w, h := RequiredSize(base.Maze)
	w *= 2 // room for the longest status line

	tests := []struct {
		name   string
		modify func(*engine.Snapshot)
		want   string
	}{
		{"paused", func(s *engine.Snapshot) { s.State = engine.Playing; s.Paused = true }, "PAUSED"},
		{"ready", func(s *engine.Snapshot) { s.State = engine.Ready }, "READY!"},
		{"level clear", func(s *engine.Snapshot) { s.State = engine.LevelComplete }, "LEVEL 1 CLEAR"},
		{"game over", func(s *engine.Snapshot) { s.State = engine.GameOver }, "GAME OVER"},
		{"high score", func(s *engine.Snapshot) { s.State = engine.GameOver; s.NameRequested = true }, "NEW HIGH SCORE!"},
		{"mode", func(s *engine.Snapshot) { s.State = engine.Playing }, "SCATTER"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := base
			tt.modify(&snap)
			screen := core.NewScreen(w, h)
			DrawSnapshot(screen, snap)
			assert.Contains(t, screen.Row(h-1), tt.want)
		})
	}
}

func TestModelStartsAndQuits(t *testing.T) {
	eng := newTestEngine(t)
	cfg := core.DefaultConfig()
	var m tea.Model = NewModel(eng, cfg)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = m.Update(TickMsg{})
	assert.Equal(t, engine.Playing, eng.Session().State)

	m, cmd := m.Update(runeKey('q'))
	require.NotNil(t, cmd)
	assert.True(t, m.(Model).IsQuitting())
	assert.Empty(t, m.View())
}

func TestModelBackOnlyWhenEmbedded(t *testing.T) {
	eng := newTestEngine(t)
	m := NewModel(eng, core.DefaultConfig())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, next.(Model).BackToMenu())

	m.embedded = true
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, next.(Model).BackToMenu())
}
