package gridmap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdrpinto/gridpath"
)

const swampYAML = `
legend:
  ".": {}
  "#": {blocked: true}
  "~": {cost: 4}
rows:
  - "..~.."
  - ".#~#."
  - "....."
`

func TestParse_YAML(t *testing.T) {
	m, err := Parse([]byte(swampYAML), "yaml")
	require.NoError(t, err)

	assert.Equal(t, 3, m.Rows())
	assert.Equal(t, 5, m.Columns())

	assert.True(t, m.Cell(0, 0).IsOpenable())
	assert.Equal(t, 1.0, m.Cell(0, 0).Cost())
	assert.Equal(t, 4.0, m.Cell(0, 2).Cost())
	assert.False(t, m.Cell(1, 1).IsOpenable())
	assert.Equal(t, []gridpath.Coords{{X: 1, Y: 1}, {X: 3, Y: 1}}, m.Blocked())
}

func TestParse_DefaultLegend(t *testing.T) {
	m, err := Parse([]byte(`{"default_cost": 2, "rows": [".#", ".."]}`), "json")
	require.NoError(t, err)

	assert.Equal(t, 2.0, m.Cell(0, 0).Cost())
	assert.False(t, m.Cell(0, 1).IsOpenable())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"empty", `rows: []`, "no cells"},
		{"ragged", `rows: ["...", ".."]`, "row 1 has 2 cells"},
		{"unknown symbol", `rows: [".x."]`, "unknown symbol"},
		{"negative cost", "legend: {'.': {cost: -1}}\nrows: ['.']", "negative cost"},
		{"long symbol", "legend: {'..': {}}\nrows: ['.']", "single character"},
		{"bad yaml", `rows: [`, "failed to parse map yaml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), "yaml")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	_, err := Parse([]byte(swampYAML), "toml")
	assert.ErrorContains(t, err, "unknown map format")
}

func TestLoad_PicksFormatByExtension(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "swamp.yaml")
	jsonPath := filepath.Join(dir, "line.json")
	require.NoError(t, os.WriteFile(yamlPath, []byte(swampYAML), 0o644))
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"rows": ["..."]}`), 0o644))

	m, err := Load(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, 5, m.Columns())

	m, err = Load(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, 3, m.Columns())

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read map")
}

func TestMap_FindPathAcrossSwamp(t *testing.T) {
	m, err := Parse([]byte(swampYAML), "yaml")
	require.NoError(t, err)

	result, err := gridpath.Search(gridpath.NewCoords(0, 1), gridpath.NewCoords(4, 1), m)
	require.NoError(t, err)

	assert.Equal(t, gridpath.NewCoords(0, 1), result.Path[0])
	assert.Equal(t, gridpath.NewCoords(4, 1), result.Path[len(result.Path)-1])
	for _, c := range result.Path {
		assert.True(t, m.InBounds(c))
		assert.True(t, m.Cell(c.Y, c.X).IsOpenable())
	}
}

func TestMap_Render(t *testing.T) {
	m, err := Parse([]byte(`rows: ["...", ".#.", "..."]`), "yaml")
	require.NoError(t, err)

	path := []gridpath.Coords{{X: 0, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2}, {X: 2, Y: 1}}
	assert.Equal(t, "...\nS#G\n***\n", m.Render(path))
	assert.Equal(t, "...\n.#.\n...\n", m.Render(nil))
}

func TestMap_InBounds(t *testing.T) {
	m, err := Parse([]byte(`rows: ["..", ".."]`), "yaml")
	require.NoError(t, err)

	assert.True(t, m.InBounds(gridpath.NewCoords(1, 1)))
	assert.False(t, m.InBounds(gridpath.NewCoords(2, 0)))
	assert.False(t, m.InBounds(gridpath.NewCoords(0, -1)))
}

func TestParseCoords(t *testing.T) {
	c, err := ParseCoords(" 3, 4")
	require.NoError(t, err)
	assert.Equal(t, gridpath.NewCoords(3, 4), c)

	for _, bad := range []string{"3", "a,1", "1,b", ""} {
		_, err := ParseCoords(bad)
		assert.Error(t, err, bad)
	}
}
