package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func inputOf(tick bool, commands ...Command) (p PlayerInput) {
	for _, c := range commands {
		p.Add(c)
	}
	p.Tick = tick
	return
}

// randomInput returns an input with up to 3 random commands.
func randomInput() PlayerInput {
	var p PlayerInput
	for range RInt(0, 3) {
		p.Add(Command(RInt(int64(MoveLeft), int64(HardDrop))))
	}
	p.Tick = RInt(0, 2) == 0
	return p
}

func TestNewWorld(t *testing.T) {
	w := NewWorld(5)
	assert.False(t, w.GameOver)
	assert.True(t, w.Piece.Fits(&w.Grid))
	assert.Equal(t, SpawnCol, w.Piece.X)
	assert.Equal(t, SpawnRow, w.Piece.Y)
	assert.Equal(t, Scoring{}, w.Scoring)
	assert.Equal(t, int64(0), w.Grid.NOccupied())
}

func TestWorld_SameSeedSamePieces(t *testing.T) {
	w1 := NewWorld(99)
	w2 := NewWorld(99)
	for range 500 {
		in := inputOf(true, HardDrop)
		w1.Step(in)
		w2.Step(in)
		require.Equal(t, w1.StateBytes(), w2.StateBytes())
	}
}

func TestWorld_DropOPieceToTheFloor(t *testing.T) {
	w := NewWorld(0)
	w.Piece = Piece{Variant: O, X: SpawnCol, Y: SpawnRow}

	for w.Piece.StepDown(&w.Grid) {
	}
	w.Piece.MergeInto(&w.Grid)

	assert.Equal(t, int64(4), w.Grid.NOccupied())
	// The floor is row 22.
	assert.Equal(t, O.ColorCode(), w.Grid.Cell(20, 5))
	assert.Equal(t, O.ColorCode(), w.Grid.Cell(20, 6))
	assert.Equal(t, O.ColorCode(), w.Grid.Cell(21, 5))
	assert.Equal(t, O.ColorCode(), w.Grid.Cell(21, 6))

	r := ClearRows(&w.Grid)
	assert.Equal(t, int64(0), r.Dropped)
	assert.Equal(t, int64(4), w.Grid.NOccupied())
}

func TestWorld_TickLocksAndSpawns(t *testing.T) {
	w := NewWorld(1)
	w.Piece = Piece{Variant: O, X: SpawnCol, Y: SpawnRow}

	for range 20 {
		w.Step(inputOf(true))
	}
	assert.Equal(t, int64(20), w.Piece.Y)
	assert.Equal(t, int64(0), w.NPiecesLocked)
	assert.Equal(t, int64(0), w.Grid.NOccupied())

	w.Step(inputOf(true))
	assert.Equal(t, int64(1), w.NPiecesLocked)
	assert.Equal(t, int64(4), w.Grid.NOccupied())
	assert.Equal(t, SpawnRow, w.Piece.Y)
	assert.Equal(t, SpawnCol, w.Piece.X)
	assert.False(t, w.GameOver)
	assert.Equal(t, int64(0), w.LastClear.Dropped)
}

func TestWorld_LineClearScores(t *testing.T) {
	l := LayoutFile{Rows: []string{"222....222"}}
	g, err := l.GetGrid()
	require.NoError(t, err)
	w := NewWorldWithGrid(0, g)
	w.Piece = Piece{Variant: I, X: SpawnCol, Y: SpawnRow}

	w.Step(inputOf(true, HardDrop))

	assert.Equal(t, int64(1), w.NPiecesLocked)
	assert.Equal(t, int64(1), w.LastClear.Dropped)
	assert.Equal(t, int64(40), w.Score)
	assert.Equal(t, int64(1), w.RowsCleared)
	assert.Equal(t, int64(0), w.Level)
	assert.Equal(t, int64(0), w.Grid.NOccupied())
	assert.False(t, w.GameOver)
}

func TestWorld_LockOutAtTopIsGameOver(t *testing.T) {
	w := NewWorld(1)
	w.Piece = Piece{Variant: O, X: SpawnCol, Y: SpawnRow}
	w.Grid.SetCell(2, 5, 3)

	w.Step(inputOf(true))
	assert.True(t, w.GameOver)
	// The piece is not merged.
	assert.Equal(t, int64(1), w.Grid.NOccupied())
	assert.Equal(t, int64(0), w.NPiecesLocked)

	// Nothing happens anymore.
	nSteps := w.NSteps
	before := w.StateBytes()
	w.Step(inputOf(true, MoveLeft, Rotate, HardDrop))
	assert.Equal(t, nSteps, w.NSteps)
	assert.Equal(t, before, w.StateBytes())
}

func TestWorld_BlockedSpawnIsGameOver(t *testing.T) {
	g := NewDefaultGrid()
	for x := int64(4); x <= 7; x++ {
		g.SetCell(1, x, 3)
	}
	w := NewWorldWithGrid(0, g)
	assert.True(t, w.GameOver)

	w = NewWorld(0)
	w.Piece = Piece{Variant: O, X: 0, Y: 10}
	for x := int64(4); x <= 7; x++ {
		w.Grid.SetCell(1, x, 3)
	}
	w.Step(inputOf(true, HardDrop))
	assert.Equal(t, int64(1), w.NPiecesLocked)
	assert.True(t, w.GameOver)
}

func TestWorld_CommandsAppliedInOrder(t *testing.T) {
	start := Piece{Variant: I, X: 2, Y: 5, Rotation: Rot90}

	w := NewWorld(0)
	w.Piece = start
	w.Step(inputOf(false, MoveLeft, Rotate))
	assert.Equal(t, int64(1), w.Piece.X)
	assert.Equal(t, Rot270, w.Piece.Rotation)

	w = NewWorld(0)
	w.Piece = start
	w.Step(inputOf(false, Rotate, MoveLeft))
	assert.Equal(t, int64(2), w.Piece.X)
	assert.Equal(t, Rot180, w.Piece.Rotation)
}

func TestWorld_CommandsBeforeTick(t *testing.T) {
	w := NewWorld(0)
	w.Piece = Piece{Variant: O, X: SpawnCol, Y: SpawnRow}
	w.Step(inputOf(true, MoveRight, HardDrop))
	assert.Equal(t, int64(1), w.NPiecesLocked)
	assert.Equal(t, O.ColorCode(), w.Grid.Cell(21, 6))
	assert.Equal(t, O.ColorCode(), w.Grid.Cell(21, 7))
}

func TestWorld_SoftDrop(t *testing.T) {
	w := NewWorld(0)
	w.Piece = Piece{Variant: T, X: SpawnCol, Y: SpawnRow}
	w.Step(inputOf(false, SoftDrop, SoftDrop))
	assert.Equal(t, int64(2), w.Piece.Y)
	assert.Equal(t, int64(0), w.NPiecesLocked)
}

func TestWorld_RotationPolicy(t *testing.T) {
	w := NewWorld(0)
	w.RotationPolicy = RotateRevert
	w.Piece = Piece{Variant: T, X: 4, Y: 5}
	w.Grid.SetCell(7, 5, 3)
	w.Step(inputOf(false, Rotate))
	assert.Equal(t, Rot0, w.Piece.Rotation)

	w.RotationPolicy = RotateSkipAhead
	w.Step(inputOf(false, Rotate))
	assert.Equal(t, Rot180, w.Piece.Rotation)
}

func TestPlayerInput_Add(t *testing.T) {
	var p PlayerInput
	assert.Equal(t, 0, p.NCommands())
	assert.False(t, p.EventOccurred())
	for range MaxCommandsPerFrame + 3 {
		p.Add(MoveLeft)
	}
	assert.Equal(t, MaxCommandsPerFrame, p.NCommands())
	assert.True(t, p.EventOccurred())

	p = PlayerInput{Tick: true}
	assert.True(t, p.EventOccurred())
}

func TestWorld_SnapshotOverlaysPiece(t *testing.T) {
	w := NewWorld(0)
	w.Piece = Piece{Variant: O, X: SpawnCol, Y: SpawnRow}
	snap := w.Snapshot()
	assert.Equal(t, O.ColorCode(), snap[0][5])
	assert.Equal(t, O.ColorCode(), snap[0][6])
	assert.Equal(t, O.ColorCode(), snap[1][5])
	assert.Equal(t, O.ColorCode(), snap[1][6])
	assert.Equal(t, Empty, snap[0][4])
	assert.Equal(t, int64(0), w.Grid.NOccupied())
	assert.Len(t, w.PieceCells(), 4)
}

func TestWorld_Clone(t *testing.T) {
	w := NewWorld(8)
	c := w.Clone()
	c.Grid.SetCell(10, 3, 4)
	assert.Equal(t, Empty, w.Grid.Cell(10, 3))

	// Same state and same generator, same future.
	c = w.Clone()
	for range 300 {
		in := inputOf(true, HardDrop)
		w.Step(in)
		c.Step(in)
	}
	assert.Equal(t, w.StateBytes(), c.StateBytes())
}

func TestWorld_InvariantsHoldDuringRandomPlay(t *testing.T) {
	RSeed(3)
	for game := range 10 {
		w := NewWorld(int64(game))
		for range 3000 {
			require.NotPanics(t, func() {
				w.Step(randomInput())
			})
			require.True(t, w.Grid.BorderIntact())
			for y := int64(0); y < w.Grid.Rows()-1; y++ {
				require.False(t, w.Grid.RowFull(y))
			}
			require.Equal(t, LevelFor(w.RowsCleared), w.Level)
			if w.GameOver {
				break
			}
		}
	}
}

func TestNewWorldFromPlaythrough(t *testing.T) {
	p := Playthrough{}
	p.SimulationVersion = 25
	require.Panics(t, func() {
		NewWorldFromPlaythrough(p)
	})
	p.SimulationVersion = SimulationVersion
	require.NotPanics(t, func() {
		NewWorldFromPlaythrough(p)
	})

	l := LayoutFile{Rows: []string{"2.2.2.2.2."}}
	p.Layout = l.GetLayout()
	p.RotationPolicy = RotateRevert
	w := NewWorldFromPlaythrough(p)
	assert.Equal(t, int64(5), w.Grid.NOccupied())
	assert.Equal(t, RotateRevert, w.RotationPolicy)
}
