package world

import (
	"fmt"
	"math/rand/v2"
)

// Rand is a deterministic random number generator. Copying a Rand gives an
// independent generator that produces the same numbers as the original from
// that point on, which is what replays rely on.
type Rand struct {
	pcg rand.PCG
}

const randStream = 0x9e3779b97f4a7c15

func NewRand(seed int64) (r Rand) {
	r.pcg = *rand.NewPCG(uint64(seed), randStream)
	return
}

// RInt returns a random number in [min, max].
func (r *Rand) RInt(min, max int64) int64 {
	if max < min {
		Check(fmt.Errorf("invalid interval for RInt: [%d, %d]", min, max))
		return min
	}
	n := uint64(max-min) + 1
	return min + int64(r.pcg.Uint64()%n)
}

// defaultRand is used by RSeed and RInt for code that doesn't carry its own
// generator, like test helpers.
var defaultRand = NewRand(0)

func RSeed(seed int64) {
	defaultRand = NewRand(seed)
}

func RInt(min, max int64) int64 {
	return defaultRand.RInt(min, max)
}
