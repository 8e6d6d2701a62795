package world

// ClearResult describes one clear event: every detection pass that found
// full rows, in order.
type ClearResult struct {
	Dropped int64
	Passes  []int64
}

// ClearRows removes full rows and lets the blocks above them settle, until no
// full row is left.
//
// Settling is done per group, not per column. A group is a maximal
// horizontal run of occupied cells in one row. Each group falls as a rigid
// unit and stops as soon as any of its cells has something right below it.
// This can leave holes under a group, which is intended.
func ClearRows(g *Grid) (r ClearResult) {
	for {
		n := clearPass(g)
		if n == 0 {
			return
		}
		r.Passes = append(r.Passes, n)
		r.Dropped += n
	}
}

// clearPass clears the rows that are full right now, compacts what is above
// the lowest cleared row and returns the number of cleared rows.
func clearPass(g *Grid) int64 {
	dropped := int64(0)
	lowest := int64(-1)
	for row := int64(0); row < g.Rows()-1; row++ {
		if g.RowFull(row) {
			dropped++
			lowest = row
			g.ResetRow(row)
		}
	}
	if dropped == 0 {
		return 0
	}

	for row := lowest - 1; row >= 0; row-- {
		for _, group := range groupsInRow(g, row) {
			dropGroup(g, row, group)
		}
	}
	return dropped
}

// group is a run of columns [Start, End).
type group struct {
	Start int64
	End   int64
}

// groupsInRow finds the runs of occupied cells in a row, left to right.
func groupsInRow(g *Grid, row int64) (groups []group) {
	start := int64(-1)
	for col := int64(0); col < g.Cols(); col++ {
		if g.Cell(row, col) > Border {
			if start < 0 {
				start = col
			}
			continue
		}
		if start >= 0 {
			groups = append(groups, group{start, col})
			start = -1
		}
	}
	// Border columns terminate every run, so a run cannot reach the end of
	// the row on a well formed grid.
	if start >= 0 {
		groups = append(groups, group{start, g.Cols()})
	}
	return
}

func dropGroup(g *Grid, row int64, gr group) {
	for row+1 < g.Rows() && spaceBelow(g, row, gr) {
		for col := gr.Start; col < gr.End; col++ {
			g.SetCell(row+1, col, g.Cell(row, col))
			g.SetCell(row, col, Empty)
		}
		row++
	}
}

func spaceBelow(g *Grid, row int64, gr group) bool {
	for col := gr.Start; col < gr.End; col++ {
		if g.Cell(row+1, col) != Empty {
			return false
		}
	}
	return true
}
