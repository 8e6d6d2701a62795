package world

import (
	"bytes"
	"fmt"
	"slices"

	"github.com/google/uuid"
)

// InputVersion is the version of the byte representation of the Playthrough
// structure. If serializing a Playthrough produces a different array of bytes
// than before, InputVersion must change.
// An executable can replay any playthrough with the same InputVersion and
// SimulationVersion as its own.
const InputVersion = 1

// Playthrough holds everything needed to replay a game: the versions it was
// recorded with, the starting conditions and the input of every frame.
type Playthrough struct {
	InputVersion      int64
	SimulationVersion int64
	ReleaseVersion    int64
	Id                uuid.UUID
	Seed              int64
	RotationPolicy    RotationPolicy
	Layout            Layout
	History           []PlayerInput
}

// NewPlaythrough starts an empty recording with a fresh id.
func NewPlaythrough(releaseVersion int64, seed int64) (p Playthrough) {
	p.InputVersion = InputVersion
	p.SimulationVersion = SimulationVersion
	p.ReleaseVersion = releaseVersion
	p.Id = uuid.New()
	p.Seed = seed
	return
}

func (p *Playthrough) Serialize() []byte {
	buf := new(bytes.Buffer)
	Serialize(buf, p.InputVersion)
	Serialize(buf, p.SimulationVersion)
	Serialize(buf, p.ReleaseVersion)
	Serialize(buf, p.Id)
	Serialize(buf, p.Seed)
	Serialize(buf, p.RotationPolicy)
	SerializeSlice(buf, p.Layout)
	SerializeSlice(buf, p.History)
	return Zip(buf.Bytes())
}

func (p *Playthrough) Clone() *Playthrough {
	clone := *p
	clone.Layout = slices.Clone(p.Layout)
	clone.History = slices.Clone(p.History)
	return &clone
}

func DeserializePlaythrough(data []byte) (p Playthrough) {
	buf := bytes.NewBuffer(Unzip(data))
	Deserialize(buf, &p.InputVersion)
	if p.InputVersion != InputVersion {
		Check(fmt.Errorf("can't deserialize this playthrough - we are at "+
			"InputVersion %d and playthrough was generated with InputVersion "+
			"version %d",
			InputVersion, p.InputVersion))
	}
	Deserialize(buf, &p.SimulationVersion)
	Deserialize(buf, &p.ReleaseVersion)
	Deserialize(buf, &p.Id)
	Deserialize(buf, &p.Seed)
	Deserialize(buf, &p.RotationPolicy)
	DeserializeSlice(buf, (*[]int64)(&p.Layout))
	DeserializeSlice(buf, &p.History)
	return
}
