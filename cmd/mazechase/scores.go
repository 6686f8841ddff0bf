package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/maze-chase/internal/platform/tui"
	"github.com/vovakirdan/maze-chase/internal/registry"
	"github.com/vovakirdan/maze-chase/internal/storage"
)

var (
	flagScoresTUI   bool
	flagScoresClear bool
	flagScoresLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [pack]",
	Short: "Show high scores",
	Long: `Display the top high scores for a layout pack. Scores from
--levels-dir games are filed under "custom".

Examples:
  mazechase scores
  mazechase scores classic
  mazechase scores --tui
  mazechase scores custom --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores interactively")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores for the pack")
	scoresCmd.Flags().IntVarP(&flagScoresLimit, "limit", "n", 10, "Number of scores to show")
}

func runScores(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	pack := packName(cfg)
	switch {
	case len(args) == 1:
		pack = args[0]
	case flagLevelsDir != "":
		pack = tui.CustomPack
	}
	if pack != tui.CustomPack && !registry.Exists(pack) {
		fmt.Fprintln(os.Stderr, "Run 'mazechase levels' to see available packs.")
		return fmt.Errorf("unknown pack %q", pack)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(pack); err != nil {
			return err
		}
		fmt.Printf("Cleared scores for %s.\n", pack)
		return nil
	}

	if flagScoresTUI {
		cfg := terminalConfig()
		return tui.RunScoreboard(store, pack, cfg.ScreenW, cfg.ScreenH)
	}

	return printScores(os.Stdout, store, pack, flagScoresLimit)
}

func printScores(w io.Writer, store *storage.Store, pack string, limit int) error {
	scores, err := store.TopScores(pack, limit)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "High Scores - %s\n\n", pack)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Play 'mazechase play --pack %s' to set the first high score!\n", pack)
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-4s  %-8s  %-5s  %s\n", "Rank", "Name", "Score", "Level", "Date")
	fmt.Fprintf(w, "  %-4s  %-4s  %-8s  %-5s  %s\n", "----", "----", "-----", "-----", "----")
	for i, e := range scores {
		fmt.Fprintf(w, "  %-4d  %-4s  %-8d  %-5d  %s\n", i+1, e.Name, e.Score, e.Level, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(pack)
	if err == nil {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Entries: %d  Best level: %d  Average: %.0f\n", stats.Entries, stats.BestLevel, stats.AvgScore)
	}
	return nil
}
