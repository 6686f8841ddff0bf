package main

import (
	"bytes"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/maze-chase/internal/config"
	"github.com/vovakirdan/maze-chase/internal/engine"
	"github.com/vovakirdan/maze-chase/internal/maze"
)

const leftWalk = `
seed: 7
tick_ms: 40
ticks: 120
events:
  - {tick: 0, action: start}
  - {tick: 3, action: left}
`

func TestReplayCountsCues(t *testing.T) {
	sc, err := engine.ParseScript([]byte(leftWalk))
	require.NoError(t, err)

	cfg := config.Default()
	cfg.Timing.ReadyMS = 0

	var logs bytes.Buffer
	logger := log.New(&logs)
	logger.SetLevel(log.DebugLevel)

	snap, cues, err := replay(sc, maze.MustBuiltin(), cfg, logger)
	require.NoError(t, err)

	assert.Equal(t, uint64(120), snap.Tick)
	assert.Positive(t, cues[engine.CuePelletEaten])
	assert.Contains(t, logs.String(), "cue=pellet_eaten")

	var out bytes.Buffer
	printReplay(&out, sc, snap, cues)
	assert.Contains(t, out.String(), "Cues:      pellet_eaten=")
}

func TestReplayBadConfig(t *testing.T) {
	sc, err := engine.ParseScript([]byte(leftWalk))
	require.NoError(t, err)

	_, _, err = replay(sc, nil, config.Default(), log.New(io.Discard))
	assert.Error(t, err)
}
