package factory

import (
	"math"

	"github.com/automoto/flyshoot/archetypes"
	"github.com/automoto/flyshoot/components"
	cfg "github.com/automoto/flyshoot/config"
	"github.com/automoto/flyshoot/gamemath"
	"github.com/automoto/flyshoot/timer"
	"github.com/yohamta/donburi"
)

// CreateExplosion plays the explosion sheet once at pos with a random spin.
func CreateExplosion(w donburi.World, pos gamemath.Vec2) *donburi.Entry {
	explosion := archetypes.Explosion.Spawn(w)

	components.Transform.SetValue(explosion, components.TransformData{
		Position: pos,
		Z:        cfg.Explosion.Z,
		Rotation: randRange(w, 0, math.Pi),
	})
	components.Sprite.SetValue(explosion, components.SpriteData{
		ID:   cfg.SpriteExplosion,
		Size: cfg.Explosion.Size,
		Tint: cfg.White,
	})
	frames := cfg.Sheets[cfg.SpriteExplosion].Frames()
	components.Animation.SetValue(explosion, components.FiniteAnimation(timer.Seconds(cfg.Explosion.FrameTime), frames))

	queueSFX(w, cfg.SoundExplosion, cfg.Explosion.Volume)
	return explosion
}
