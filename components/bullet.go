package components

import (
	"time"

	"github.com/automoto/flyshoot/timer"
	"github.com/yohamta/donburi"
)

// Faction tells who fired a bullet.
type Faction int

const (
	FactionPlayer Faction = iota
	FactionEnemy
)

func (f Faction) String() string {
	if f == FactionEnemy {
		return "enemy"
	}
	return "player"
}

type BulletData struct {
	Faction Faction
}

var Bullet = donburi.NewComponentType[BulletData]()

// BulletTimer is a shooter's cooldown. The timer only runs while the shooter
// is locked out, so a shot is available again exactly one period after Shoot.
type BulletTimer struct {
	Timer    *timer.Timer
	CanShoot bool
}

func NewBulletTimer(period time.Duration) BulletTimer {
	return BulletTimer{Timer: timer.New(period, timer.Repeating), CanShoot: true}
}

// NewDelayedBulletTimer returns a locked timer that unlocks after delay.
// The timer is pre-advanced by period-delay at millisecond precision.
func NewDelayedBulletTimer(period, delay time.Duration) BulletTimer {
	b := BulletTimer{Timer: timer.New(period, timer.Repeating)}
	b.Process((period - delay).Truncate(time.Millisecond))
	return b
}

// Process advances the cooldown.
func (b *BulletTimer) Process(dt time.Duration) {
	if b.CanShoot {
		return
	}
	b.Timer.Tick(dt)
	if b.Timer.JustFinished() {
		b.CanShoot = true
	}
}

func (b *BulletTimer) Shoot() {
	b.CanShoot = false
}
