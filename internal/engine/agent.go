package engine

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/maze-chase/internal/core"
)

// Agent is the movement state shared by the player and the ghosts.
type Agent struct {
	Pos    core.Point
	Facing Direction

	acc time.Duration // time banked toward the next grid step

	pixelX, pixelY float32
	tweenX, tweenY *gween.Tween
}

// Pixel returns the interpolated on-screen position.
func (a *Agent) Pixel() (x, y float32) {
	return a.pixelX, a.pixelY
}

// place puts the agent on p with no interpolation and clears its timers.
func (a *Agent) place(p core.Point, tile int) {
	a.Pos = p
	a.acc = 0
	a.snap(tile)
}

func (a *Agent) snap(tile int) {
	a.pixelX = float32(a.Pos.X * tile)
	a.pixelY = float32(a.Pos.Y * tile)
	a.tweenX, a.tweenY = nil, nil
}

// glide starts interpolating the pixel position toward the current grid
// position over d.
func (a *Agent) glide(tile int, d time.Duration) {
	ms := float32(d.Milliseconds())
	if ms <= 0 {
		a.snap(tile)
		return
	}
	a.tweenX = gween.New(a.pixelX, float32(a.Pos.X*tile), ms, ease.Linear)
	a.tweenY = gween.New(a.pixelY, float32(a.Pos.Y*tile), ms, ease.Linear)
}

// animate advances the pixel tweens by dt.
func (a *Agent) animate(dt time.Duration) {
	ms := float32(dt.Microseconds()) / 1000
	if a.tweenX != nil {
		var done bool
		a.pixelX, done = a.tweenX.Update(ms)
		if done {
			a.tweenX = nil
		}
	}
	if a.tweenY != nil {
		var done bool
		a.pixelY, done = a.tweenY.Update(ms)
		if done {
			a.tweenY = nil
		}
	}
}

// due banks dt and reports whether a step interval has elapsed. At most one
// step is granted per call; surplus time beyond one interval is dropped.
func (a *Agent) due(dt, interval time.Duration) bool {
	a.acc += dt
	if a.acc < interval {
		return false
	}
	a.acc %= interval
	return true
}

// Player is the user-controlled agent.
type Player struct {
	Agent
	Buffered Direction // latest requested heading, applied when legal
}

// Personality selects a ghost's chase rule.
type Personality uint8

const (
	Direct Personality = iota
	Ambush
	Pincer
	Shy
)

func (p Personality) String() string {
	switch p {
	case Direct:
		return "direct"
	case Ambush:
		return "ambush"
	case Pincer:
		return "pincer"
	case Shy:
		return "shy"
	}
	return "unknown"
}

// HomeState tracks a ghost's stay inside the home rectangle.
type HomeState struct {
	Confined  bool
	ExitDelay time.Duration
	ExitTimer time.Duration
}

// Ghost is a computer-controlled pursuer.
type Ghost struct {
	Agent
	Personality Personality
	Vulnerable  bool
	Home        HomeState
	Corner      core.Point
	Spawn       core.Point
}

// Active reports whether the ghost roams the maze.
func (g *Ghost) Active() bool {
	return !g.Home.Confined
}
