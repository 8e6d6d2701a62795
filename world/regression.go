package world

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
)

// StateBytes is an array of bytes that represent the current state of the
// World, as perceived by the outside. If two Worlds have the same StateBytes
// they are considered "the same", even though they may be implemented
// differently.
//
// The World is "the same" if it has:
// - the same cells in the grid
// - the same active piece, in the same place and rotation
// - the same score, cleared rows and level
// - the same game over status
// The random generator and the counters are left out, they are not visible
// to the player.
func (w *World) StateBytes() []byte {
	buf := new(bytes.Buffer)
	SerializeSlice(buf, w.Grid.cells)
	Serialize(buf, w.Piece)
	Serialize(buf, w.Score)
	Serialize(buf, w.RowsCleared)
	Serialize(buf, w.Level)
	Serialize(buf, w.GameOver)
	return buf.Bytes()
}

// RegressionId returns a string which uniquely identifies the playthrough.
// It is a hash of all the states of the World, one per frame.
//
// RegressionId is meant to be used this way:
// - Compute the RegressionId for a playthrough.
// - Refactor the implementation of the World.
// - Compute the RegressionId for the same playthrough.
// - If the RegressionId hasn't changed, the refactoring did not alter the
// game. If it has, something now plays differently.
func RegressionId(p *Playthrough) string {
	hash := sha256.New()

	w := NewWorldFromPlaythrough(*p)
	hash.Write(w.StateBytes())

	for i := range p.History {
		w.Step(p.History[i])
		hash.Write(w.StateBytes())
	}

	return hex.EncodeToString(hash.Sum(nil))
}
