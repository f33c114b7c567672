package factory

import (
	"image/color"

	"github.com/automoto/flyshoot/archetypes"
	"github.com/automoto/flyshoot/components"
	cfg "github.com/automoto/flyshoot/config"
	"github.com/automoto/flyshoot/gamemath"
	"github.com/automoto/flyshoot/tags"
	"github.com/yohamta/donburi"
)

type BulletSpec struct {
	Faction components.Faction
	Origin  gamemath.Vec2
	Target  gamemath.Vec2
	Z       float64
	Color   color.RGBA
}

// CreateBullet fires a projectile from Origin toward Target at the faction's
// speed. A target on the origin itself fires to the right.
func CreateBullet(w donburi.World, spec BulletSpec) *donburi.Entry {
	bc := cfg.PlayerBullet
	factionTag, resolvTag := tags.PlayerBullet, tags.ResolvPlayerBullet
	sprite, sound := cfg.SpritePlayerBullet, cfg.SoundPlayerBullet
	if spec.Faction == components.FactionEnemy {
		bc = cfg.EnemyBullet
		factionTag, resolvTag = tags.EnemyBullet, tags.ResolvEnemyBullet
		sprite, sound = cfg.SpriteEnemyBullet, cfg.SoundEnemyBullet
	}

	bullet := archetypes.Bullet.Spawn(w, factionTag)

	dir := spec.Target.Sub(spec.Origin).NormalizeOr(gamemath.Right)
	components.Transform.SetValue(bullet, components.TransformData{
		Position: spec.Origin,
		Z:        spec.Z,
		Rotation: dir.Angle(),
	})
	components.Velocity.SetValue(bullet, components.VelocityData{Value: dir.Scale(bc.Speed)})
	components.Bullet.SetValue(bullet, components.BulletData{Faction: spec.Faction})
	components.Sprite.SetValue(bullet, components.SpriteData{ID: sprite, Size: bc.Size, Tint: spec.Color})
	components.DestroyOutside.SetValue(bullet, components.DestroyOutsideData{Size: bc.Size})

	hitBox := components.HitBoxFor(bc.Size, bc.CollisionScale)
	components.HitBox.SetValue(bullet, hitBox)
	addObject(w, bullet, spec.Origin, hitBox.Half, resolvTag)

	queueSFX(w, sound, bc.Volume)
	return bullet
}
