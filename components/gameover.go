package components

import (
	"github.com/automoto/flyshoot/timer"
	"github.com/yohamta/donburi"
)

// GameOverData holds the delay before a new game starts (singleton).
type GameOverData struct {
	NewGameTimer *timer.Timer
}

var GameOver = donburi.NewComponentType[GameOverData]()
