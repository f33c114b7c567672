package factory

import (
	"github.com/automoto/flyshoot/archetypes"
	"github.com/automoto/flyshoot/components"
	cfg "github.com/automoto/flyshoot/config"
	"github.com/automoto/flyshoot/gamemath"
	"github.com/automoto/flyshoot/tags"
	"github.com/yohamta/donburi"
)

// CreatePlayer spawns the ship just left of the field, ready to slide in.
func CreatePlayer(w donburi.World) *donburi.Entry {
	player := archetypes.Player.Spawn(w)

	size := cfg.Player.Size
	pos := gamemath.V(-size.X, cfg.Field.Height/2+size.Y/2)
	components.Transform.SetValue(player, components.TransformData{Position: pos, Z: cfg.Player.Z})
	components.Player.SetValue(player, components.NewPlayerData())
	components.Sprite.SetValue(player, components.SpriteData{
		ID:   cfg.SpritePlayer,
		Size: size,
		Tint: cfg.White,
	})

	hitBox := components.HitBoxFor(size, cfg.Player.HitBoxScale)
	components.HitBox.SetValue(player, hitBox)
	addObject(w, player, pos, hitBox.Half, tags.ResolvPlayer)

	attachExhaust(w, player, cfg.SpritePlayerExhaust, cfg.Player.Exhaust)
	return player
}
