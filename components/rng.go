package components

import (
	"math/rand"

	"github.com/yohamta/donburi"
)

// RandData is the simulation's random source (singleton), seeded once so a
// run can be replayed from its seed.
type RandData struct {
	*rand.Rand
}

// Range returns a uniform value in [lo, hi).
func (r RandData) Range(lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

var Rand = donburi.NewComponentType[RandData]()
