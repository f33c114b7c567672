package components

import (
	"time"

	"github.com/automoto/flyshoot/config"
	"github.com/automoto/flyshoot/gamemath"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Direction    gamemath.Vec2 // Current movement direction, eased toward the input
	Heat         float64
	HeatRecovery float64
	Gun          BulletTimer
}

func NewPlayerData() PlayerData {
	return PlayerData{Gun: NewBulletTimer(time.Duration(config.Player.FireInterval * float64(time.Second)))}
}

// IncreaseHeat registers one shot.
func (p *PlayerData) IncreaseHeat() {
	p.Heat += config.Player.BulletHeat
	p.HeatRecovery = config.Player.MinHeatRecovery
}

// Cooldown lets the weapon cool for dt seconds. Recovery speeds up the longer
// the player holds fire.
func (p *PlayerData) Cooldown(dt float64) {
	p.HeatRecovery = min(p.HeatRecovery+config.Player.HeatRecoveryIncrease*dt, config.Player.MaxHeatRecovery)
	p.Heat = max(p.Heat-p.HeatRecovery*dt, 0)
}

// Overheated reports whether the weapon is too hot to fire.
func (p *PlayerData) Overheated() bool {
	return p.Heat >= config.Player.MaxHeat
}

var Player = donburi.NewComponentType[PlayerData]()
