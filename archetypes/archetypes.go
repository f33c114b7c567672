package archetypes

import (
	"github.com/automoto/flyshoot/components"
	"github.com/automoto/flyshoot/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Transform,
		components.HitBox,
		components.Object,
		components.Sprite,
		components.Children,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Transform,
		components.Velocity,
		components.HitBox,
		components.Object,
		components.Sprite,
		components.DestroyOutside,
		components.Children,
	)
	Bullet = newArchetype(
		tags.Bullet,
		components.Bullet,
		components.Transform,
		components.Velocity,
		components.HitBox,
		components.Object,
		components.Sprite,
		components.DestroyOutside,
	)
	Explosion = newArchetype(
		tags.Explosion,
		components.Transform,
		components.Sprite,
		components.Animation,
	)
	Exhaust = newArchetype(
		tags.Exhaust,
		components.Transform,
		components.Sprite,
		components.Animation,
		components.Parent,
	)
	Background = newArchetype(
		tags.Background,
		components.Background,
		components.Transform,
		components.Sprite,
	)
	Text = newArchetype(
		components.Transform,
		components.Text,
	)
	Space = newArchetype(
		components.Space,
	)
	// World-wide singletons
	Game = newArchetype(
		components.Game,
		components.Score,
		components.Clock,
		components.Input,
		components.Audio,
		components.Assets,
		components.Despawn,
		components.Rand,
	)
	Spawner = newArchetype(
		components.Spawner,
	)
	GameOver = newArchetype(
		components.GameOver,
	)
	Title = newArchetype(
		components.Title,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	return w.Entry(w.Create(append(a.components, cs...)...))
}
