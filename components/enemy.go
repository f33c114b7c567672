package components

import (
	"github.com/automoto/flyshoot/timer"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	Gun BulletTimer
}

var Enemy = donburi.NewComponentType[EnemyData]()

// SpawnerData holds the enemy wave timer (singleton). Its period shrinks as
// the score grows.
type SpawnerData struct {
	Timer *timer.Timer
}

var Spawner = donburi.NewComponentType[SpawnerData]()
