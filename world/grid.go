package world

import "slices"

// Cell codes.
const (
	Empty  = int64(0)
	Border = int64(1)
)

// Default dimensions of the playing field, borders and floor included.
const (
	NRows = int64(23)
	NCols = int64(12)
)

// Grid rules
// - Column 0 and column Cols()-1 of every row are Border.
// - The last row is entirely Border and acts as the floor.
// - Every other cell is either Empty or holds the color code of the variant
// that was locked there.
// - Only locking a piece and clearing rows change the grid.
type Grid struct {
	Mat
}

// NewGrid creates a blank grid with the given dimensions.
func NewGrid(rows, cols int64) (g Grid) {
	g.Mat = NewMat(Pt{cols, rows})
	for y := int64(0); y < rows-1; y++ {
		g.ResetRow(y)
	}
	floor := g.Mat.Row(rows - 1)
	for x := range floor {
		floor[x] = Border
	}
	return
}

func NewDefaultGrid() Grid {
	return NewGrid(NRows, NCols)
}

func (g *Grid) Rows() int64 {
	return g.size.Y
}

func (g *Grid) Cols() int64 {
	return g.size.X
}

// Cell returns the code at (row, col).
func (g *Grid) Cell(row, col int64) int64 {
	return g.Get(Pt{col, row})
}

func (g *Grid) SetCell(row, col int64, val int64) {
	g.Set(Pt{col, row}, val)
}

func (g *Grid) InBounds(row, col int64) bool {
	return g.Mat.InBounds(Pt{col, row})
}

// ResetRow overwrites a row with the canonical empty row: Border, Empty, ...,
// Empty, Border.
func (g *Grid) ResetRow(row int64) {
	r := g.Mat.Row(row)
	for x := range r {
		r[x] = Empty
	}
	r[0] = Border
	r[len(r)-1] = Border
}

// RowFull reports whether every cell in the row, borders included, is
// non-empty.
func (g *Grid) RowFull(row int64) bool {
	for _, v := range g.Mat.Row(row) {
		if v == Empty {
			return false
		}
	}
	return true
}

// Row returns a copy of a row.
func (g *Grid) Row(row int64) []int64 {
	return slices.Clone(g.Mat.Row(row))
}

// Cells returns a copy of the grid as a slice of rows.
func (g *Grid) Cells() [][]int64 {
	cells := make([][]int64, g.Rows())
	for y := range cells {
		cells[y] = make([]int64, g.Cols())
		copy(cells[y], g.Mat.Row(int64(y)))
	}
	return cells
}

// BorderIntact checks that both border columns and the floor are still
// Border.
func (g *Grid) BorderIntact() bool {
	last := g.Cols() - 1
	for y := int64(0); y < g.Rows(); y++ {
		if g.Cell(y, 0) != Border || g.Cell(y, last) != Border {
			return false
		}
	}
	for _, v := range g.Mat.Row(g.Rows() - 1) {
		if v != Border {
			return false
		}
	}
	return true
}

// NOccupied counts cells that hold a piece color.
func (g *Grid) NOccupied() (n int64) {
	for _, v := range g.cells {
		if v > Border {
			n++
		}
	}
	return
}

func (g *Grid) Clone() Grid {
	return Grid{Mat: g.Mat.Clone()}
}
