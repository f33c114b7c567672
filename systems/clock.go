package systems

import (
	"math/rand"
	"time"

	"github.com/automoto/flyshoot/components"
	cfg "github.com/automoto/flyshoot/config"
	"github.com/yohamta/donburi"
)

// AdvanceClock stores the tick's delta. Every system of the tick reads the
// same value.
func AdvanceClock(w donburi.World, dt time.Duration) {
	e, ok := components.Clock.First(w)
	if !ok {
		return
	}
	clock := components.Clock.Get(e)
	clock.Delta = dt.Seconds()
	clock.Elapsed += clock.Delta
	clock.Frame++
}

// ApplyInput swaps the input buffers and records the actions held this tick.
func ApplyInput(w donburi.World, actions cfg.Actions) {
	e, ok := components.Input.First(w)
	if !ok {
		return
	}
	input := components.Input.Get(e)
	input.Previous = input.Current
	input.Current = actions
}

func clock(w donburi.World) components.ClockData {
	if e, ok := components.Clock.First(w); ok {
		return *components.Clock.Get(e)
	}
	return components.ClockData{}
}

// delta returns the tick's delta as a duration for timers.
func delta(w donburi.World) time.Duration {
	return time.Duration(clock(w).Delta * float64(time.Second))
}

func input(w donburi.World) *components.InputData {
	if e, ok := components.Input.First(w); ok {
		return components.Input.Get(e)
	}
	return &components.InputData{}
}

func score(w donburi.World) *components.ScoreData {
	if e, ok := components.Score.First(w); ok {
		return components.Score.Get(e)
	}
	return &components.ScoreData{}
}

func rng(w donburi.World) components.RandData {
	if e, ok := components.Rand.First(w); ok {
		return *components.Rand.Get(e)
	}
	return components.RandData{Rand: rand.New(rand.NewSource(1))}
}
