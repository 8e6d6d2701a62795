package world

import "fmt"

type Variant int64

const (
	I Variant = iota
	J
	L
	O
	S
	T
	Z
	NVariants
)

var variantNames = [NVariants]string{"I", "J", "L", "O", "S", "T", "Z"}

func (v Variant) String() string {
	if v < 0 || v >= NVariants {
		return fmt.Sprintf("Variant(%d)", int64(v))
	}
	return variantNames[v]
}

// ColorCode is the cell code written into the grid when a piece of this
// variant locks. Codes start right after Border.
func (v Variant) ColorCode() int64 {
	return int64(v) + 2
}

// Template is the 2x4 occupancy of a variant at rotation 0.
type Template [2][4]int64

var templates = [NVariants]Template{
	I: {
		{0, 0, 0, 0},
		{1, 1, 1, 1},
	},
	J: {
		{1, 1, 1, 0},
		{0, 0, 1, 0},
	},
	L: {
		{1, 1, 1, 0},
		{1, 0, 0, 0},
	},
	O: {
		{0, 1, 1, 0},
		{0, 1, 1, 0},
	},
	S: {
		{0, 1, 1, 0},
		{1, 1, 0, 0},
	},
	T: {
		{1, 1, 1, 0},
		{0, 1, 0, 0},
	},
	Z: {
		{1, 1, 0, 0},
		{0, 1, 1, 0},
	},
}

func (v Variant) Template() Template {
	return templates[v]
}

type Rotation int64

const (
	Rot0 Rotation = iota
	Rot90
	Rot180
	Rot270
	NRotations
)

func (r Rotation) Next() Rotation {
	return (r + 1) % NRotations
}

// transform maps a template cell (row, col) to an offset from the piece
// anchor:
// dy = RowRow*row + RowCol*col + RowC
// dx = ColRow*row + ColCol*col + ColC
// Each rotation keeps the 2x4 template inside a 4x4 box anchored at the
// piece position.
type transform struct {
	RowRow, RowCol, RowC int64
	ColRow, ColCol, ColC int64
}

var transforms = [NRotations]transform{
	Rot0:   {1, 0, 0, 0, 1, 0},   // (row, col)
	Rot90:  {0, 1, 0, -1, 0, 1},  // (col, 1-row)
	Rot180: {-1, 0, 1, 0, -1, 2}, // (1-row, 2-col)
	Rot270: {0, -1, 3, 1, 0, 0},  // (3-col, row)
}

func (t transform) apply(row, col int64) Pt {
	return Pt{
		X: t.ColRow*row + t.ColCol*col + t.ColC,
		Y: t.RowRow*row + t.RowCol*col + t.RowC,
	}
}

// RotationPolicy decides what Rotate does when the next rotation state
// collides.
type RotationPolicy int64

const (
	// RotateSkipAhead tries the following rotation state once more and keeps
	// it without validating it.
	RotateSkipAhead RotationPolicy = iota
	// RotateRevert restores the previous rotation state.
	RotateRevert
)

func ParseRotationPolicy(s string) (RotationPolicy, error) {
	switch s {
	case "", "SkipAhead":
		return RotateSkipAhead, nil
	case "Revert":
		return RotateRevert, nil
	default:
		return RotateSkipAhead, fmt.Errorf("invalid rotation policy: %s", s)
	}
}

// Source provides random numbers for spawning pieces.
type Source interface {
	// RInt returns a number in [min, max].
	RInt(min, max int64) int64
}

// SpawnCol and SpawnRow are the anchor of a freshly spawned piece.
const (
	SpawnCol = int64(4)
	SpawnRow = int64(0)
)

type Piece struct {
	Variant  Variant
	X        int64
	Y        int64
	Rotation Rotation
}

// SpawnPiece picks a variant uniformly at random and places it at the top of
// the grid. It does not check for collisions.
func SpawnPiece(src Source) Piece {
	return Piece{
		Variant:  Variant(src.RInt(0, int64(NVariants)-1)),
		X:        SpawnCol,
		Y:        SpawnRow,
		Rotation: Rot0,
	}
}

// OccupiedCells returns the grid positions covered by the piece in its
// current rotation. Positions may lie outside the grid.
func (p *Piece) OccupiedCells() []Pt {
	pts := make([]Pt, 0, 8)
	tmpl := p.Variant.Template()
	t := transforms[p.Rotation]
	anchor := Pt{p.X, p.Y}
	for row := int64(0); row < 2; row++ {
		for col := int64(0); col < 4; col++ {
			if tmpl[row][col] != 1 {
				continue
			}
			pts = append(pts, anchor.Plus(t.apply(row, col)))
		}
	}
	return pts
}

// Fits reports whether every cell of the piece is inside the grid and empty.
func (p *Piece) Fits(g *Grid) bool {
	for _, pt := range p.OccupiedCells() {
		if !g.InBounds(pt.Y, pt.X) || g.Cell(pt.Y, pt.X) != Empty {
			return false
		}
	}
	return true
}

// MoveLeft moves the piece one column to the left if the new position fits.
func (p *Piece) MoveLeft(g *Grid) bool {
	if p.X <= 0 {
		return false
	}
	p.X--
	if !p.Fits(g) {
		p.X++
		return false
	}
	return true
}

// MoveRight moves the piece one column to the right if the new position fits.
func (p *Piece) MoveRight(g *Grid) bool {
	if p.X >= g.Cols() {
		return false
	}
	p.X++
	if !p.Fits(g) {
		p.X--
		return false
	}
	return true
}

// Rotate advances the rotation by 90 degrees. See RotationPolicy for what
// happens when the new state collides.
func (p *Piece) Rotate(g *Grid, policy RotationPolicy) {
	previous := p.Rotation
	p.Rotation = p.Rotation.Next()
	if p.Fits(g) {
		return
	}
	switch policy {
	case RotateRevert:
		p.Rotation = previous
	default:
		p.Rotation = p.Rotation.Next()
	}
}

// StepDown moves the piece one row down. It returns false and leaves the
// piece in place if the lower position does not fit, meaning the piece must
// be locked.
func (p *Piece) StepDown(g *Grid) bool {
	p.Y++
	if !p.Fits(g) {
		p.Y--
		return false
	}
	return true
}

// MergeInto writes the piece's color code into every empty cell it covers.
func (p *Piece) MergeInto(g *Grid) {
	color := p.Variant.ColorCode()
	for _, pt := range p.OccupiedCells() {
		if g.InBounds(pt.Y, pt.X) && g.Cell(pt.Y, pt.X) == Empty {
			g.SetCell(pt.Y, pt.X, color)
		}
	}
}
