package factory

import (
	"math/rand"

	"github.com/automoto/flyshoot/archetypes"
	"github.com/automoto/flyshoot/components"
	cfg "github.com/automoto/flyshoot/config"
	"github.com/automoto/flyshoot/timer"
	"github.com/yohamta/donburi"
)

// CreateGame adds the world-wide singletons: game flow, score, clock, input,
// audio queue, loading gate, despawn queue and the seeded random source.
func CreateGame(w donburi.World, seed int64) *donburi.Entry {
	game := archetypes.Game.Spawn(w)
	components.Game.SetValue(game, components.GameData{Current: cfg.Loading})
	components.Rand.SetValue(game, components.RandData{Rand: rand.New(rand.NewSource(seed))})

	spawner := archetypes.Spawner.Spawn(w)
	components.Spawner.SetValue(spawner, components.SpawnerData{
		Timer: timer.FromSeconds(cfg.Enemy.InitialSpawnInterval, timer.Repeating),
	})

	gameOver := archetypes.GameOver.Spawn(w)
	components.GameOver.SetValue(gameOver, components.GameOverData{
		NewGameTimer: timer.FromSeconds(cfg.GameOverScreen.NewGameDelay, timer.Repeating),
	})

	return game
}

func queueSFX(w donburi.World, id cfg.SoundID, volume float64) {
	if e, ok := components.Audio.First(w); ok {
		components.Audio.Get(e).QueueSFX(id, volume)
	}
}

func randRange(w donburi.World, lo, hi float64) float64 {
	if e, ok := components.Rand.First(w); ok {
		return components.Rand.Get(e).Range(lo, hi)
	}
	return lo
}
