package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/maze-chase/internal/config"
	"github.com/vovakirdan/maze-chase/internal/core"
	"github.com/vovakirdan/maze-chase/internal/engine"
	"github.com/vovakirdan/maze-chase/internal/maze"
	"github.com/vovakirdan/maze-chase/internal/platform/tui"
	"github.com/vovakirdan/maze-chase/internal/registry"
)

var flagReplayFrame bool

var replayCmd = &cobra.Command{
	Use:   "replay <script>",
	Short: "Run a scripted game headless",
	Long: `Feed a YAML input script to the engine without a terminal UI and
print the final state. The same script, seed and layouts always produce
the same result.

Script format:
  seed: 7          # optional, --seed overrides
  tick_ms: 20      # optional, default 1000/60
  ticks: 600       # optional, default one past the last event
  events:
    - {tick: 0, action: start}
    - {tick: 40, action: left}

Examples:
  mazechase replay run.yaml
  mazechase replay run.yaml --frame
  mazechase replay run.yaml --pack classic --log-level debug`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagReplayFrame, "frame", false, "Print the final frame")
}

func runReplay(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading script: %w", err)
	}
	sc, err := engine.ParseScript(data)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("seed") {
		sc.Seed = flagSeed
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	layouts, err := registry.Resolve(packName(cfg), flagLevelsDir)
	if err != nil {
		return err
	}

	snap, cues, err := replay(sc, layouts, cfg, logger)
	if err != nil {
		return err
	}

	printReplay(os.Stdout, sc, snap, cues)
	if flagReplayFrame {
		w, h := tui.RequiredSize(snap.Maze)
		screen := core.NewScreen(w, h)
		tui.DrawSnapshot(screen, snap)
		fmt.Println()
		fmt.Println(screen.String())
	}
	return nil
}

// replay runs sc on a fresh engine. Every cue is logged at debug level and
// counted.
func replay(sc engine.Script, layouts []*maze.Maze, cfg config.Config, logger *log.Logger) (engine.Snapshot, engine.CueTally, error) {
	cues := engine.CueTally{}
	var eng *engine.Engine
	sink := engine.CueFunc(func(c engine.Cue) {
		cues.Cue(c)
		logger.Debug("cue", "cue", c, "tick", eng.Session().Tick)
	})

	eng, err := engine.New(layouts, cfg,
		engine.WithSeed(sc.Seed),
		engine.WithLogger(logger),
		engine.WithCueSink(sink),
	)
	if err != nil {
		return engine.Snapshot{}, nil, err
	}
	return sc.Run(eng), cues, nil
}

func printReplay(w io.Writer, sc engine.Script, snap engine.Snapshot, cues engine.CueTally) {
	fmt.Fprintf(w, "Seed:      %d\n", sc.Seed)
	fmt.Fprintf(w, "Ticks:     %d of %d (%s each)\n", snap.Tick, sc.Ticks, sc.Delta())
	fmt.Fprintf(w, "State:     %s\n", snap.State)
	fmt.Fprintf(w, "Level:     %d (%s)\n", snap.Level, snap.LayoutID)
	fmt.Fprintf(w, "Score:     %d\n", snap.Score)
	fmt.Fprintf(w, "Lives:     %d\n", snap.Lives)
	fmt.Fprintf(w, "Remaining: %d\n", snap.Remaining)
	fmt.Fprintf(w, "Cues:      %s\n", cues)
}
