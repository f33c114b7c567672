package components

import (
	"github.com/automoto/flyshoot/config"
	"github.com/yohamta/donburi"
)

// GameData holds the game flow state (singleton).
type GameData struct {
	Current config.GameState

	// Set by a transition until its hooks have run at the end of the tick.
	Changed  bool
	Previous config.GameState

	// OnGameOver receives the final score whenever a run ends.
	OnGameOver func(score int)
}

var Game = donburi.NewComponentType[GameData]()

// ClockData is the time of the current tick (singleton).
type ClockData struct {
	Delta   float64 // Seconds
	Elapsed float64 // Seconds since start
	Frame   int
}

var Clock = donburi.NewComponentType[ClockData]()

// AssetsData mirrors the asset loader (singleton).
type AssetsData struct {
	Done     bool
	Failures []string
}

var Assets = donburi.NewComponentType[AssetsData]()
