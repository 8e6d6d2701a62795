package world

import "math"

// AI plays the game by picking, for every new piece, the placement with the
// best evaluation of the resulting grid and then steering the piece there one
// command per frame.
//
// The AI does not tick the World. The driver decides the fall cadence, same
// as for a human player.
type AI struct {
	planned bool
	target  Piece
	lastPos Piece
	nPieces int64
}

// Weights of the grid evaluation.
const (
	aiWeightRows      = 0.76
	aiWeightHeight    = -0.51
	aiWeightHoles     = -0.36
	aiWeightBumpiness = -0.18
)

func (a *AI) Step(w *World) (input PlayerInput) {
	if w.GameOver {
		return
	}

	if !a.planned || a.nPieces != w.NPiecesLocked {
		a.target = a.plan(w)
		a.planned = true
		a.nPieces = w.NPiecesLocked
		a.lastPos = Piece{Variant: w.Piece.Variant, X: -100}
	}

	// If the previous command had no effect the target is not reachable
	// from here, drop the piece where it is.
	if w.Piece == a.lastPos {
		input.Add(HardDrop)
		return
	}
	a.lastPos = w.Piece

	p := w.Piece
	switch {
	case p.Rotation != a.target.Rotation:
		input.Add(Rotate)
	case p.X < a.target.X:
		input.Add(MoveRight)
	case p.X > a.target.X:
		input.Add(MoveLeft)
	default:
		input.Add(HardDrop)
	}
	return
}

// plan returns the rotation and column the current piece should be dropped
// at. The returned piece has the current Y.
func (a *AI) plan(w *World) Piece {
	best := w.Piece
	bestScore := math.Inf(-1)
	for r := Rot0; r < NRotations; r++ {
		for x := int64(-2); x < w.Grid.Cols(); x++ {
			p := w.Piece
			p.Rotation = r
			p.X = x
			if !p.Fits(&w.Grid) {
				continue
			}
			g := w.Grid.Clone()
			for p.StepDown(&g) {
			}
			p.MergeInto(&g)
			res := ClearRows(&g)
			score := evaluate(&g, res.Dropped)
			if score > bestScore {
				bestScore = score
				best = p
				best.Y = w.Piece.Y
			}
		}
	}
	return best
}

func evaluate(g *Grid, dropped int64) float64 {
	heights := make([]int64, g.Cols()-2)
	holes := int64(0)
	for x := int64(1); x < g.Cols()-1; x++ {
		top := g.Rows() - 1
		for y := int64(0); y < g.Rows()-1; y++ {
			if g.Cell(y, x) != Empty {
				top = y
				break
			}
		}
		heights[x-1] = g.Rows() - 1 - top
		for y := top + 1; y < g.Rows()-1; y++ {
			if g.Cell(y, x) == Empty {
				holes++
			}
		}
	}

	aggregate := int64(0)
	bumpiness := int64(0)
	for i, h := range heights {
		aggregate += h
		if i > 0 {
			d := h - heights[i-1]
			if d < 0 {
				d = -d
			}
			bumpiness += d
		}
	}

	return aiWeightRows*float64(dropped) +
		aiWeightHeight*float64(aggregate) +
		aiWeightHoles*float64(holes) +
		aiWeightBumpiness*float64(bumpiness)
}
