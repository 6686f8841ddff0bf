// mazechase is a maze-chase arcade game for the terminal.
//
// Usage:
//
//	mazechase play             - Play a game
//	mazechase menu             - Pick a maze pack interactively
//	mazechase levels [pack]    - List packs or the layouts of one pack
//	mazechase scores [pack]    - Show high scores
//	mazechase serve            - Start SSH server for remote play
//	mazechase replay <script>  - Run a scripted game headless
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.mazechase/scores.db)
//	--config <path>       - Engine config YAML
//	--difficulty <name>   - easy, normal, hard or fixed
//	--pack <name>         - Layout pack (default: arcade)
//	--levels-dir <dir>    - Load layouts from a directory instead of a pack
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write logs to a file
//
// MAZECHASE_DB, MAZECHASE_CONFIG and MAZECHASE_LOG_LEVEL, read from the
// environment or a .env file, provide defaults for the matching flags.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/maze-chase/internal/config"
	"github.com/vovakirdan/maze-chase/internal/platform/tui"
	"github.com/vovakirdan/maze-chase/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagPack       string
	flagLevelsDir  string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mazechase",
	Short: "Maze Chase - eat the pellets, dodge the ghosts",
	Long: `Maze Chase is a terminal maze game: clear every pellet while four
ghosts with different personalities hunt you down.

Available commands:
  play     - Play a game
  menu     - Interactive pack picker
  levels   - Show layout packs
  scores   - View high scores
  serve    - Start SSH server for remote play
  replay   - Run a scripted game without a terminal

Examples:
  mazechase play
  mazechase play --pack classic --difficulty hard
  mazechase levels arcade
  mazechase serve --ssh :2222
  mazechase replay ./scripts/demo.yaml`,
	SilenceUsage: true,
}

func init() {
	// .env is optional
	_ = godotenv.Load()

	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", envOr("MAZECHASE_DB", "~/.mazechase/scores.db"), "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", envOr("MAZECHASE_CONFIG", ""), "Path to custom engine config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagPack, "pack", "", "Layout pack (see 'mazechase levels')")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels-dir", "", "Directory of YAML layouts to play instead of a pack")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", envOr("MAZECHASE_LOG_LEVEL", "info"), "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(replayCmd)
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

// newLogger builds the process logger. fallback receives output when no
// --log-file is set; the TUI commands pass io.Discard since the terminal is
// taken.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	out, closer := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out, closer = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "mazechase",
		Level:           level,
	})
	return logger, closer, nil
}

// loadConfig loads the engine config and applies --difficulty.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.Config{}, err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, nil
}

// openStore opens the scores database. Failure is not fatal: the game runs
// without persistence.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// packName is --pack, falling back to the config's gameplay.pack.
func packName(cfg config.Config) string {
	return tui.GameSetup{Config: cfg, Pack: flagPack}.PackName()
}

// gameSetup collects the flag-driven parts of an engine.
func gameSetup(cfg config.Config, store *storage.Store, logger *log.Logger) tui.GameSetup {
	return tui.GameSetup{
		Config:    cfg,
		Pack:      flagPack,
		LevelsDir: flagLevelsDir,
		Seed:      flagSeed,
		Store:     store,
		Logger:    logger,
	}
}
