// Package gridmap loads tile maps from YAML or JSON files and renders routes
// over them. A Map satisfies gridpath.Grid.
package gridmap

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pdrpinto/gridpath"
)

// TileSpec describes one legend symbol.
type TileSpec struct {
	Cost    *float64 `yaml:"cost" json:"cost"`
	Blocked bool     `yaml:"blocked" json:"blocked"`
}

// File is the on-disk layout of a map. Rows are listed by increasing Y.
type File struct {
	DefaultCost float64             `yaml:"default_cost" json:"default_cost"`
	Legend      map[string]TileSpec `yaml:"legend" json:"legend"`
	Rows        []string            `yaml:"rows" json:"rows"`
}

// Tile is a single map cell.
type Tile struct {
	Symbol  rune
	Blocked bool
	Weight  float64
}

func (t Tile) IsOpenable() bool { return !t.Blocked }
func (t Tile) Cost() float64    { return t.Weight }

// Map is a rectangular grid of tiles indexed [row][column].
type Map struct {
	Tiles [][]Tile
}

var _ gridpath.Grid = (*Map)(nil)

var ErrEmptyMap = errors.New("map has no cells")

func defaultLegend() map[string]TileSpec {
	return map[string]TileSpec{
		".": {},
		"#": {Blocked: true},
	}
}

// Load reads a map file. Files ending in .json are decoded as JSON,
// anything else as YAML.
func Load(path string) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read map: %w", err)
	}
	format := "yaml"
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		format = "json"
	}
	m, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Parse decodes a map in the given format ("yaml" or "json").
func Parse(data []byte, format string) (*Map, error) {
	var file File
	switch format {
	case "json":
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse map json: %w", err)
		}
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse map yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown map format %q", format)
	}
	return file.Build()
}

// Build validates the file and produces its tiles.
func (f File) Build() (*Map, error) {
	if len(f.Rows) == 0 || len(f.Rows[0]) == 0 {
		return nil, ErrEmptyMap
	}
	defaultCost := f.DefaultCost
	if defaultCost == 0 {
		defaultCost = 1
	}
	legend := f.Legend
	if len(legend) == 0 {
		legend = defaultLegend()
	}

	tiles := make(map[rune]Tile, len(legend))
	for symbol, spec := range legend {
		runes := []rune(symbol)
		if len(runes) != 1 {
			return nil, fmt.Errorf("legend symbol %q must be a single character", symbol)
		}
		weight := defaultCost
		if spec.Cost != nil {
			weight = *spec.Cost
		}
		if weight < 0 {
			return nil, fmt.Errorf("legend symbol %q has negative cost %v", symbol, weight)
		}
		tiles[runes[0]] = Tile{Symbol: runes[0], Blocked: spec.Blocked, Weight: weight}
	}

	width := len([]rune(f.Rows[0]))
	m := &Map{Tiles: make([][]Tile, len(f.Rows))}
	for y, row := range f.Rows {
		symbols := []rune(row)
		if len(symbols) != width {
			return nil, fmt.Errorf("row %d has %d cells, want %d", y, len(symbols), width)
		}
		m.Tiles[y] = make([]Tile, width)
		for x, symbol := range symbols {
			tile, ok := tiles[symbol]
			if !ok {
				return nil, fmt.Errorf("row %d column %d: unknown symbol %q", y, x, symbol)
			}
			m.Tiles[y][x] = tile
		}
	}
	return m, nil
}

func (m *Map) Rows() int { return len(m.Tiles) }

func (m *Map) Columns() int {
	if len(m.Tiles) == 0 {
		return 0
	}
	return len(m.Tiles[0])
}

func (m *Map) Cell(row, column int) gridpath.Walkable { return m.Tiles[row][column] }

// InBounds reports whether c addresses a tile of m.
func (m *Map) InBounds(c gridpath.Coords) bool {
	return c.Y >= 0 && c.Y < m.Rows() && c.X >= 0 && c.X < m.Columns()
}

// Blocked lists the coordinates of every blocked tile, row by row.
func (m *Map) Blocked() []gridpath.Coords {
	var blocked []gridpath.Coords
	for y, row := range m.Tiles {
		for x, tile := range row {
			if tile.Blocked {
				blocked = append(blocked, gridpath.NewCoords(x, y))
			}
		}
	}
	return blocked
}

// Render draws the map one row per line in file order. Path cells are
// drawn as '*', with 'S' and 'G' marking its first and last cell.
func (m *Map) Render(path []gridpath.Coords) string {
	marks := make(map[gridpath.Coords]rune, len(path))
	for _, c := range path {
		marks[c] = '*'
	}
	if len(path) > 0 {
		marks[path[len(path)-1]] = 'G'
		marks[path[0]] = 'S'
	}

	var sb strings.Builder
	for y, row := range m.Tiles {
		for x, tile := range row {
			if mark, ok := marks[gridpath.NewCoords(x, y)]; ok {
				sb.WriteRune(mark)
			} else {
				sb.WriteRune(tile.Symbol)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParseCoords parses "x,y".
func ParseCoords(s string) (gridpath.Coords, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return gridpath.Coords{}, fmt.Errorf("invalid coordinates %q: want x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return gridpath.Coords{}, fmt.Errorf("invalid x in %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return gridpath.Coords{}, fmt.Errorf("invalid y in %q: %w", s, err)
	}
	return gridpath.NewCoords(x, y), nil
}
