package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/maze-chase/internal/maze"
	"github.com/vovakirdan/maze-chase/internal/registry"
)

var levelsCmd = &cobra.Command{
	Use:   "levels [pack]",
	Short: "List layout packs, or the layouts in one pack",
	Long: `Without arguments, lists the registered layout packs. With a pack
name, lists its layouts in play order. --levels-dir lists and validates a
directory of custom layouts instead.

Examples:
  mazechase levels
  mazechase levels classic
  mazechase levels --levels-dir ./my-mazes`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLevels,
}

func runLevels(_ *cobra.Command, args []string) error {
	if len(args) == 0 && flagLevelsDir == "" {
		printPacks()
		return nil
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	name := packName(cfg)
	if len(args) == 1 {
		name = args[0]
	}
	layouts, err := registry.Resolve(name, flagLevelsDir)
	if err != nil {
		return err
	}

	title := name
	if flagLevelsDir != "" {
		title = flagLevelsDir
	}
	fmt.Printf("Layouts in %s:\n\n", title)
	printLayouts(layouts)
	return nil
}

func printPacks() {
	packs := registry.List()

	maxLen := 4 // "Pack" header
	for _, p := range packs {
		maxLen = max(maxLen, len(p.Name))
	}

	fmt.Println("Available packs:")
	fmt.Println()
	fmt.Printf("  %-*s  %s\n", maxLen, "Pack", "Description")
	fmt.Printf("  %-*s  %s\n", maxLen, "----", "-----------")
	for _, p := range packs {
		fmt.Printf("  %-*s  %s\n", maxLen, p.Name, p.Description)
	}
	fmt.Println()
	fmt.Println("Run 'mazechase play --pack <name>' to play a pack.")
}

func printLayouts(layouts []*maze.Maze) {
	fmt.Printf("  %-5s  %-12s  %-20s  %-7s  %s\n", "Level", "ID", "Name", "Size", "Pellets")
	fmt.Printf("  %-5s  %-12s  %-20s  %-7s  %s\n", "-----", "--", "----", "----", "-------")
	for i, m := range layouts {
		pellets, power := 0, 0
		for _, it := range m.Collectibles() {
			if it.Kind == maze.PowerPellet {
				power++
			} else {
				pellets++
			}
		}
		size := fmt.Sprintf("%dx%d", m.Width(), m.Height())
		fmt.Printf("  %-5d  %-12s  %-20s  %-7s  %d + %d power\n", i+1, m.ID(), m.Name(), size, pellets, power)
	}
	fmt.Println()
	fmt.Println("Levels past the last layout wrap around to the first.")
}
