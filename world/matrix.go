package world

import "slices"

// Mat is a dense row-major matrix of int64 values.
type Mat struct {
	cells []int64
	size  Pt
}

func NewMat(size Pt) Mat {
	m := Mat{}
	m.size = size
	m.cells = make([]int64, size.X*size.Y)
	return m
}

func (m *Mat) Set(pos Pt, val int64) {
	m.cells[pos.Y*m.size.X+pos.X] = val
}

func (m *Mat) Get(pos Pt) int64 {
	return m.cells[pos.Y*m.size.X+pos.X]
}

func (m *Mat) Size() Pt {
	return m.size
}

func (m *Mat) InBounds(pt Pt) bool {
	return pt.X >= 0 &&
		pt.Y >= 0 &&
		pt.Y < m.size.Y &&
		pt.X < m.size.X
}

// Row returns the backing slice of row y. Writes through it modify the
// matrix.
func (m *Mat) Row(y int64) []int64 {
	return m.cells[y*m.size.X : (y+1)*m.size.X]
}

func (m *Mat) Clone() Mat {
	return Mat{cells: slices.Clone(m.cells), size: m.size}
}
