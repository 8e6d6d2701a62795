package world

import (
	"fmt"
)

// SimulationVersion identifies the rules implemented by World. Any change that
// makes the same Playthrough produce a different game must increase it.
const SimulationVersion = 1

// World rules
// - There is one active piece at a time. It falls one row per tick.
// - Commands are applied in the order they arrived, before the tick of the
// same frame.
// - When a tick can't move the piece down, the piece locks: it is merged into
// the grid, full rows are cleared, the score is updated and a new piece
// spawns. All of this happens inside the same Step.
// - If the piece can't fall while still at the top row, or a new piece
// doesn't fit where it spawns, the game is over and Step does nothing
// anymore.

type Command int64

const (
	NoCommand Command = iota
	MoveLeft
	MoveRight
	Rotate
	SoftDrop
	HardDrop
)

func (c Command) String() string {
	switch c {
	case NoCommand:
		return "NoCommand"
	case MoveLeft:
		return "MoveLeft"
	case MoveRight:
		return "MoveRight"
	case Rotate:
		return "Rotate"
	case SoftDrop:
		return "SoftDrop"
	case HardDrop:
		return "HardDrop"
	default:
		return fmt.Sprintf("Command(%d)", int64(c))
	}
}

// MaxCommandsPerFrame limits how many commands a single PlayerInput holds.
// PlayerInput has a fixed size so that a Playthrough can store it as raw
// bytes.
const MaxCommandsPerFrame = 8

// PlayerInput is everything the driver sends to the World in one frame.
type PlayerInput struct {
	Commands [MaxCommandsPerFrame]Command
	Tick     bool
}

// Add queues a command after the ones already in the input. Commands beyond
// MaxCommandsPerFrame are ignored.
func (p *PlayerInput) Add(c Command) {
	for i := range p.Commands {
		if p.Commands[i] == NoCommand {
			p.Commands[i] = c
			return
		}
	}
}

// NCommands returns the number of queued commands.
func (p *PlayerInput) NCommands() (n int) {
	for _, c := range p.Commands {
		if c == NoCommand {
			break
		}
		n++
	}
	return
}

func (p *PlayerInput) EventOccurred() bool {
	return p.Tick || p.NCommands() > 0
}

type World struct {
	Scoring
	Grid           Grid
	Piece          Piece
	Rand           Rand
	RotationPolicy RotationPolicy
	GameOver       bool
	LastClear      ClearResult
	NPiecesLocked  int64
	NSteps         int64
}

func NewWorld(seed int64) World {
	return NewWorldWithGrid(seed, NewDefaultGrid())
}

// NewWorldWithGrid starts a game on an existing grid, for example one loaded
// from a layout.
func NewWorldWithGrid(seed int64, g Grid) (w World) {
	w.Grid = g
	w.Rand = NewRand(seed)
	w.spawn()
	return
}

func NewWorldFromPlaythrough(p Playthrough) World {
	if p.SimulationVersion != SimulationVersion {
		Check(fmt.Errorf("can't run this playthrough - we are at "+
			"SimulationVersion %d and playthrough was generated with "+
			"SimulationVersion %d", SimulationVersion, p.SimulationVersion))
	}
	g := NewDefaultGrid()
	if len(p.Layout) > 0 {
		g = p.Layout.Grid()
	}
	w := NewWorldWithGrid(p.Seed, g)
	w.RotationPolicy = p.RotationPolicy
	return w
}

func (w *World) Step(input PlayerInput) {
	if w.GameOver {
		return
	}
	w.NSteps++

	for _, c := range input.Commands {
		if c == NoCommand {
			break
		}
		w.apply(c)
	}

	if input.Tick {
		w.tick()
	}

	Assert(w.Grid.BorderIntact())
}

func (w *World) apply(c Command) {
	switch c {
	case MoveLeft:
		w.Piece.MoveLeft(&w.Grid)
	case MoveRight:
		w.Piece.MoveRight(&w.Grid)
	case Rotate:
		w.Piece.Rotate(&w.Grid, w.RotationPolicy)
	case SoftDrop:
		w.Piece.StepDown(&w.Grid)
	case HardDrop:
		for w.Piece.StepDown(&w.Grid) {
		}
	default:
		Check(fmt.Errorf("unknown command: %d", int64(c)))
	}
}

// tick lets the piece fall one row and locks it if it can't.
func (w *World) tick() {
	if w.Piece.StepDown(&w.Grid) {
		return
	}

	if w.Piece.Y == SpawnRow {
		w.GameOver = true
		return
	}

	w.Piece.MergeInto(&w.Grid)
	w.NPiecesLocked++
	w.LastClear = ClearRows(&w.Grid)
	w.AddClearResult(w.LastClear)
	w.spawn()
}

func (w *World) spawn() {
	w.Piece = SpawnPiece(&w.Rand)
	if !w.Piece.Fits(&w.Grid) {
		w.GameOver = true
	}
}

// PieceCells returns the cells covered by the active piece that are inside
// the grid.
func (w *World) PieceCells() []Pt {
	var pts []Pt
	for _, pt := range w.Piece.OccupiedCells() {
		if w.Grid.InBounds(pt.Y, pt.X) {
			pts = append(pts, pt)
		}
	}
	return pts
}

// Snapshot returns the grid as it should be drawn: locked cells plus the
// active piece in its own color. The grid itself is not modified.
func (w *World) Snapshot() [][]int64 {
	cells := w.Grid.Cells()
	if w.GameOver {
		return cells
	}
	color := w.Piece.Variant.ColorCode()
	for _, pt := range w.PieceCells() {
		cells[pt.Y][pt.X] = color
	}
	return cells
}

// Clone returns a World that shares no memory with w.
func (w *World) Clone() World {
	clone := *w
	clone.Grid = w.Grid.Clone()
	clone.LastClear.Passes = append([]int64(nil), w.LastClear.Passes...)
	return clone
}
