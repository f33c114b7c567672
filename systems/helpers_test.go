package systems

import (
	"testing"
	"time"

	"github.com/automoto/flyshoot/components"
	cfg "github.com/automoto/flyshoot/config"
	"github.com/automoto/flyshoot/gamemath"
	"github.com/automoto/flyshoot/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const tick = time.Second / 60

// newTestWorld builds the singletons and the collision space with the game
// forced into state.
func newTestWorld(t *testing.T, state cfg.GameState) donburi.World {
	t.Helper()
	cfg.Reset()
	w := donburi.NewWorld()
	game := factory.CreateGame(w, 1)
	factory.CreateSpace(w)
	components.Game.Get(game).Current = state
	AdvanceClock(w, tick)
	return w
}

// run executes systems once, in order, against w.
func run(w donburi.World, fns ...ecs.System) {
	e := ecs.NewECS(w)
	for _, s := range fns {
		s(e)
	}
}

// nextTick finishes the current tick and starts a new one with actions held.
func nextTick(w donburi.World, dt time.Duration, actions cfg.Actions) {
	run(w, UpdateTransitions, FlushDespawned)
	AdvanceClock(w, dt)
	ApplyInput(w, actions)
}

// placeAt moves e and its collision proxy to pos.
func placeAt(e *donburi.Entry, pos gamemath.Vec2) {
	components.Transform.Get(e).Position = pos
	components.Object.Get(e).Place(pos, components.HitBox.Get(e).Half)
}

func spawnPlayer(t *testing.T, w donburi.World, pos gamemath.Vec2) *donburi.Entry {
	t.Helper()
	p := factory.CreatePlayer(w)
	placeAt(p, pos)
	return p
}

func spawnEnemy(t *testing.T, w donburi.World, pos gamemath.Vec2) *donburi.Entry {
	t.Helper()
	return factory.CreateEnemy(w, factory.EnemySpec{
		Position:   pos,
		FirePeriod: 3 * time.Second,
		FireDelay:  time.Second,
	})
}

func spawnBullet(t *testing.T, w donburi.World, faction components.Faction, pos gamemath.Vec2) *donburi.Entry {
	t.Helper()
	return factory.CreateBullet(w, factory.BulletSpec{
		Faction: faction,
		Origin:  pos,
		Target:  pos.Add(gamemath.Right),
		Color:   cfg.White,
	})
}

func gameData(t *testing.T, w donburi.World) *components.GameData {
	t.Helper()
	e, ok := components.Game.First(w)
	if !ok {
		t.Fatal("world has no game entity")
	}
	return components.Game.Get(e)
}
