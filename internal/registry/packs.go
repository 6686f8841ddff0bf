// Package registry provides named layout packs. A pack is an ordered list of
// mazes; level N of a game plays layout (N-1) mod len(pack).
// Built-in packs register themselves in init(), and custom packs can be
// loaded from a directory of YAML layouts at runtime.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/maze-chase/internal/maze"
)

// Default is the pack used when none is named.
const Default = "arcade"

// PackInfo describes a registered pack.
type PackInfo struct {
	Name        string
	Description string
}

// Loader builds the layouts of a pack.
type Loader func() ([]*maze.Maze, error)

type pack struct {
	info PackInfo
	load Loader
}

var (
	packs = make(map[string]pack)
	mu    sync.RWMutex
)

func init() {
	Register(PackInfo{Name: "classic", Description: "the original maze on every level"}, func() ([]*maze.Maze, error) {
		return builtinByID("classic")
	})
	Register(PackInfo{Name: "arcade", Description: "rotation of every built-in maze"}, maze.Builtin)
}

// Register adds a pack. Panics if the name is already taken.
func Register(info PackInfo, load Loader) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := packs[info.Name]; exists {
		panic(fmt.Sprintf("registry: pack %q already registered", info.Name))
	}
	packs[info.Name] = pack{info: info, load: load}
}

// List returns all registered packs, sorted by name.
func List() []PackInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]PackInfo, 0, len(packs))
	for _, p := range packs {
		result = append(result, p.info)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

// Exists checks if a pack with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := packs[name]
	return ok
}

// Load returns the layouts of the named pack. An empty name selects Default.
func Load(name string) ([]*maze.Maze, error) {
	if name == "" {
		name = Default
	}

	mu.RLock()
	p, ok := packs[name]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("registry: unknown pack %q", name)
	}

	layouts, err := p.load()
	if err != nil {
		return nil, fmt.Errorf("registry: pack %q: %w", name, err)
	}
	if len(layouts) == 0 {
		return nil, fmt.Errorf("registry: pack %q has no layouts", name)
	}
	return layouts, nil
}

// Resolve picks the layouts for a game: a non-empty dir overrides the named
// pack with every layout found there.
func Resolve(name, dir string) ([]*maze.Maze, error) {
	if dir == "" {
		return Load(name)
	}
	layouts, err := maze.LoadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("registry: %w", err)
	}
	if len(layouts) == 0 {
		return nil, fmt.Errorf("registry: no layouts in %s", dir)
	}
	return layouts, nil
}

func builtinByID(ids ...string) ([]*maze.Maze, error) {
	all, err := maze.Builtin()
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*maze.Maze, len(all))
	for _, m := range all {
		byID[m.ID()] = m
	}

	result := make([]*maze.Maze, 0, len(ids))
	for _, id := range ids {
		m, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("built-in layout %q not found", id)
		}
		result = append(result, m)
	}
	return result, nil
}
