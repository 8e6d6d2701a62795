package world

import (
	"fmt"
	"io/fs"
	"slices"

	"github.com/goccy/go-yaml"
)

// Layout is the full content of a default sized grid, row by row. An empty
// Layout means a blank grid.
type Layout []int64

func LayoutFromGrid(g *Grid) Layout {
	return slices.Clone(g.cells)
}

func (l Layout) Grid() Grid {
	g := NewDefaultGrid()
	if int64(len(l)) != NRows*NCols {
		Check(fmt.Errorf("layout has %d cells, expected %d", len(l),
			NRows*NCols))
		return g
	}
	copy(g.cells, l)
	if !g.BorderIntact() {
		Check(fmt.Errorf("layout does not have intact borders"))
	}
	return g
}

// LayoutFile is the YAML description of a starting position, used for tests
// and for trying out specific situations in the game.
//
// Rows lists the inside of the bottom rows of the playing field, without the
// border columns and without the floor. The last string is the row right
// above the floor. Each character is a cell:
// - '.' or ' ' is empty
// - '2' to '8' is a color code
// - 'I', 'J', 'L', 'O', 'S', 'T', 'Z' is the color of that variant
type LayoutFile struct {
	Rows           []string `yaml:"Rows"`
	Seed           int64    `yaml:"Seed"`
	RotationPolicy string   `yaml:"RotationPolicy"`
}

func ParseLayoutFile(data []byte) (l LayoutFile, err error) {
	err = yaml.Unmarshal(data, &l)
	if err != nil {
		return l, fmt.Errorf("parsing layout: %w", err)
	}
	return l, nil
}

// LoadYAML reads a YAML file from fsys into v.
func LoadYAML(fsys fs.FS, name string, v any) {
	data, err := fs.ReadFile(fsys, name)
	Check(err)
	Check(yaml.Unmarshal(data, v))
}

func cellFromChar(c rune) (int64, error) {
	switch {
	case c == '.' || c == ' ':
		return Empty, nil
	case c >= '2' && c <= '8':
		return int64(c - '0'), nil
	}
	for v := I; v < NVariants; v++ {
		if v.String() == string(c) {
			return v.ColorCode(), nil
		}
	}
	return Empty, fmt.Errorf("invalid layout cell: %q", c)
}

// GetGrid builds the grid described by the layout.
func (l *LayoutFile) GetGrid() (Grid, error) {
	g := NewDefaultGrid()
	interior := g.Cols() - 2
	playable := g.Rows() - 1
	if int64(len(l.Rows)) > playable {
		return g, fmt.Errorf("layout has %d rows, at most %d fit",
			len(l.Rows), playable)
	}
	top := playable - int64(len(l.Rows))
	for i, row := range l.Rows {
		chars := []rune(row)
		if int64(len(chars)) != interior {
			return g, fmt.Errorf("layout row %d has %d cells, expected %d",
				i, len(chars), interior)
		}
		for x, c := range chars {
			val, err := cellFromChar(c)
			if err != nil {
				return g, fmt.Errorf("layout row %d: %w", i, err)
			}
			g.SetCell(top+int64(i), int64(x)+1, val)
		}
	}
	return g, nil
}

// GetLayout is like GetGrid but panics through Check on invalid input.
func (l *LayoutFile) GetLayout() Layout {
	g, err := l.GetGrid()
	Check(err)
	return LayoutFromGrid(&g)
}
