package factory

import (
	"time"

	"github.com/automoto/flyshoot/archetypes"
	"github.com/automoto/flyshoot/components"
	cfg "github.com/automoto/flyshoot/config"
	"github.com/automoto/flyshoot/gamemath"
	"github.com/automoto/flyshoot/tags"
	"github.com/yohamta/donburi"
)

// EnemySpec carries the values the spawner rolled for one enemy.
type EnemySpec struct {
	Position   gamemath.Vec2
	Velocity   gamemath.Vec2
	FirePeriod time.Duration
	FireDelay  time.Duration
}

func CreateEnemy(w donburi.World, spec EnemySpec) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(w)

	size := cfg.Enemy.Size
	components.Transform.SetValue(enemy, components.TransformData{Position: spec.Position, Z: cfg.Enemy.Z})
	components.Velocity.SetValue(enemy, components.VelocityData{Value: spec.Velocity})
	components.Enemy.SetValue(enemy, components.EnemyData{
		Gun: components.NewDelayedBulletTimer(spec.FirePeriod, spec.FireDelay),
	})
	components.Sprite.SetValue(enemy, components.SpriteData{
		ID:    cfg.SpriteEnemy,
		Size:  size,
		Tint:  cfg.White,
		FlipX: true,
	})
	components.DestroyOutside.SetValue(enemy, components.DestroyOutsideData{Size: size})

	hitBox := components.HitBoxFor(size, cfg.Enemy.HitBoxScale)
	components.HitBox.SetValue(enemy, hitBox)
	addObject(w, enemy, spec.Position, hitBox.Half, tags.ResolvEnemy)

	attachExhaust(w, enemy, cfg.SpriteEnemyExhaust, cfg.Enemy.Exhaust)
	return enemy
}
