package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/maze-chase/internal/maze"
)

const lineYAML = `id: line
home: {x: 3, y: 3, w: 3, h: 1}
exit: {x: 4, y: 2}
ghosts:
  - {x: 4, y: 2}
  - {x: 3, y: 3}
  - {x: 4, y: 3}
  - {x: 5, y: 3}
grid:
  - "#########"
  - "#o.....o#"
  - "#.## ##.#"
  - "  # - #  "
  - "#.#####.#"
  - "#...P...#"
  - "#########"
`

func ids(layouts []*maze.Maze) []string {
	out := make([]string, len(layouts))
	for i, m := range layouts {
		out[i] = m.ID()
	}
	return out
}

func TestBuiltinPacks(t *testing.T) {
	tests := []struct {
		name     string
		expected []string
	}{
		{"classic", []string{"classic"}},
		{"arcade", []string{"classic", "crossroads"}},
		{"", []string{"classic", "crossroads"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layouts, err := Load(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ids(layouts))
		})
	}
}

func TestList(t *testing.T) {
	names := []string{}
	for _, p := range List() {
		names = append(names, p.Name)
		assert.NotEmpty(t, p.Description)
	}
	assert.Equal(t, []string{"arcade", "classic"}, names)
	assert.True(t, Exists("classic"))
	assert.False(t, Exists("nope"))
}

func TestLoadUnknown(t *testing.T) {
	_, err := Load("nope")
	assert.ErrorContains(t, err, `unknown pack "nope"`)
}

func TestRegisterDuplicatePanics(t *testing.T) {
	assert.Panics(t, func() {
		Register(PackInfo{Name: "classic"}, maze.Builtin)
	})
}

func TestResolveDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "line.yaml"), []byte(lineYAML), 0o644))

	layouts, err := Resolve("classic", dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"line"}, ids(layouts))

	layouts, err = Resolve("classic", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"classic"}, ids(layouts))

	_, err = Resolve("", t.TempDir())
	assert.ErrorContains(t, err, "no layouts")
}
