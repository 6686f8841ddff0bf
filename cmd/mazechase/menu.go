package main

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/maze-chase/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a maze pack interactively",
	Long: `Start with a pack picker. After a game you return to the menu;
Tab opens the high score table.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select pack
  Tab          - High scores
  Esc          - Back to menu (paused or after game over)
  Q            - Quit

This is the same flow SSH players get from 'mazechase serve'.`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	model := tui.NewSessionModel(gameSetup(cfg, store, logger), terminalConfig())
	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
