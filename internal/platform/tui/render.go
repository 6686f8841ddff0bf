package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/maze-chase/internal/core"
	"github.com/vovakirdan/maze-chase/internal/engine"
	"github.com/vovakirdan/maze-chase/internal/maze"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:    lipgloss.NewStyle(),
	core.ColorRed:        lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorPink:       lipgloss.NewStyle().Foreground(lipgloss.Color("213")),
	core.ColorCyan:       lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorOrange:     lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorYellow:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	core.ColorBlue:       lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorBrightBlue: lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorWhite:      lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorGray:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorGreen:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
}

// ghostColors is indexed by engine.Personality.
var ghostColors = [...]core.Color{
	engine.Direct: core.ColorRed,
	engine.Ambush: core.ColorPink,
	engine.Pincer: core.ColorCyan,
	engine.Shy:    core.ColorOrange,
}

const (
	hudRows      = 2 // score line + gap above the maze
	footerRows   = 1 // status line below the maze
	flashWarning = 2 * time.Second
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// RequiredSize returns the smallest screen that fits m with one character
// per cell.
func RequiredSize(m *maze.Maze) (w, h int) {
	return m.Width(), m.Height() + hudRows + footerRows
}

// cellWidth doubles cells horizontally when there is room, which keeps the
// maze closer to square in most terminal fonts.
func cellWidth(dst *core.Screen, m *maze.Maze) int {
	if dst.Width() >= 2*m.Width() {
		return 2
	}
	return 1
}

// DrawSnapshot renders a frame of the game into dst.
func DrawSnapshot(dst *core.Screen, snap engine.Snapshot) {
	dst.Clear()
	m := snap.Maze

	if w, h := RequiredSize(m); dst.Width() < w || dst.Height() < h {
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("terminal too small: need %dx%d", w, h), core.ColorRed)
		return
	}

	cw := cellWidth(dst, m)
	ox := (dst.Width() - m.Width()*cw) / 2
	oy := hudRows

	drawHUD(dst, snap, ox, m.Width()*cw)

	cell := func(col, row int, r rune, c core.Color) {
		x := ox + col*cw
		dst.SetColored(x, oy+row, r, c)
		if cw == 2 {
			fill := ' '
			if r == '█' {
				fill = '█'
			}
			dst.SetColored(x+1, oy+row, fill, c)
		}
	}

	for row := 0; row < m.Height(); row++ {
		for col := 0; col < m.Width(); col++ {
			switch {
			case m.IsDoor(col, row):
				cell(col, row, '─', core.ColorPink)
			case m.At(col, row) == maze.Wall:
				cell(col, row, '█', core.ColorBlue)
			}
		}
	}

	for _, c := range snap.Collectibles {
		if c.Eaten {
			continue
		}
		if c.Kind == maze.PowerPellet {
			if snap.State != engine.Playing || snap.Tick%30 < 20 {
				cell(c.Pos.X, c.Pos.Y, '●', core.ColorWhite)
			}
			continue
		}
		cell(c.Pos.X, c.Pos.Y, '·', core.ColorWhite)
	}

	if snap.Bonus.Active {
		cell(snap.Bonus.X, snap.Bonus.Y, '♦', core.ColorGreen)
	}

	agent := func(a engine.AgentView, r rune, c core.Color) {
		x, y := agentCell(a, snap.TileSize, cw)
		dst.SetColored(ox+x, oy+y, r, c)
	}

	for _, g := range snap.Ghosts {
		agent(g.AgentView, 'ᗣ', ghostColor(g, snap))
	}
	agent(snap.Player, playerGlyph(snap.Player.Facing, snap.Tick), core.ColorYellow)

	drawStatus(dst, snap, oy+m.Height())
}

// agentCell converts an agent's pixel position to screen cell offsets so
// moves render as a glide rather than a jump when cells are two wide.
func agentCell(a engine.AgentView, tile, cw int) (x, y int) {
	if tile <= 0 {
		return a.X * cw, a.Y
	}
	t := float32(tile)
	x = int(a.PixelX*float32(cw)/t + 0.5)
	y = int(a.PixelY/t + 0.5)
	return x, y
}

func ghostColor(g engine.GhostView, snap engine.Snapshot) core.Color {
	if !g.Vulnerable {
		return ghostColors[g.Personality]
	}
	if snap.PowerRemaining < flashWarning && snap.Tick%20 < 10 {
		return core.ColorWhite
	}
	return core.ColorBrightBlue
}

func playerGlyph(d engine.Direction, tick uint64) rune {
	if tick%16 < 8 {
		return '●'
	}
	switch d {
	case engine.DirUp:
		return 'ᗢ'
	case engine.DirDown:
		return 'ᗜ'
	case engine.DirLeft:
		return 'ᗤ'
	default:
		return 'ᗧ'
	}
}

func drawHUD(dst *core.Screen, snap engine.Snapshot, x, width int) {
	left := fmt.Sprintf("SCORE %d", snap.Score)
	dst.DrawText(x, 0, left, core.ColorWhite)

	hi := snap.HighScore.Score
	if snap.Score > hi {
		hi = snap.Score
	}
	mid := fmt.Sprintf("HI %d", hi)
	if snap.HighScore.Name != "" {
		mid += " " + snap.HighScore.Name
	}
	dst.DrawText(x+(width-len(mid))/2, 0, mid, core.ColorGray)

	right := fmt.Sprintf("L%d %s", snap.Level, strings.Repeat("♥", max(snap.Lives, 0)))
	dst.DrawText(x+width-len([]rune(right)), 0, right, core.ColorYellow)
}

func drawStatus(dst *core.Screen, snap engine.Snapshot, y int) {
	var text string
	color := core.ColorYellow

	switch {
	case snap.Paused:
		text = "PAUSED"
	case snap.State == engine.NotStarted:
		text = "PRESS ENTER TO START"
	case snap.State == engine.Ready:
		text = "READY!"
	case snap.State == engine.LevelComplete:
		text = fmt.Sprintf("LEVEL %d CLEAR - ENTER TO CONTINUE", snap.Level)
		color = core.ColorGreen
	case snap.State == engine.GameOver && snap.NameRequested:
		text = "NEW HIGH SCORE!"
		color = core.ColorGreen
	case snap.State == engine.GameOver:
		text = "GAME OVER - ENTER TO PLAY AGAIN"
		color = core.ColorRed
	case snap.PowerActive:
		text = fmt.Sprintf("POWER %.1fs", snap.PowerRemaining.Seconds())
		color = core.ColorBrightBlue
	default:
		text = strings.ToUpper(snap.Mode.String())
		color = core.ColorGray
	}
	dst.DrawTextCentered(y, text, color)
}
