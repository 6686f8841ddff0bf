package maze

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed layouts/*.yaml
var builtinFS embed.FS

// LoadYAML parses a single YAML layout document.
func LoadYAML(data []byte) (*Maze, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("maze: yaml unmarshal: %w", err)
	}
	return Parse(l)
}

// LoadFile reads and parses one layout file.
func LoadFile(path string) (*Maze, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("maze: reading %s: %w", path, err)
	}
	m, err := LoadYAML(data)
	if err != nil {
		return nil, fmt.Errorf("maze: parsing %s: %w", path, err)
	}
	return m, nil
}

// LoadDir recursively loads every .yaml/.yml layout under root, sorted by ID.
// The first malformed file aborts the load.
func LoadDir(root string) ([]*Maze, error) {
	return loadFS(os.DirFS(root), ".")
}

// Builtin returns the layouts shipped with the binary, sorted by ID.
func Builtin() ([]*Maze, error) {
	return loadFS(builtinFS, "layouts")
}

// MustBuiltin is Builtin for callers that treat a broken embedded layout as a
// programming error.
func MustBuiltin() []*Maze {
	mazes, err := Builtin()
	if err != nil {
		panic(err)
	}
	return mazes
}

func loadFS(fsys fs.FS, root string) ([]*Maze, error) {
	var mazes []*Maze
	seen := make(map[string]string)

	err := fs.WalkDir(fsys, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		m, err := LoadYAML(data)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
		if prev, ok := seen[m.ID()]; ok {
			return fmt.Errorf("duplicate layout id %q in %s and %s", m.ID(), prev, path)
		}
		seen[m.ID()] = path
		mazes = append(mazes, m)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("maze: loading layouts: %w", err)
	}

	sort.Slice(mazes, func(i, j int) bool {
		return mazes[i].ID() < mazes[j].ID()
	})
	return mazes, nil
}
