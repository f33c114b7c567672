package factory

import (
	"github.com/automoto/flyshoot/archetypes"
	"github.com/automoto/flyshoot/components"
	cfg "github.com/automoto/flyshoot/config"
	"github.com/automoto/flyshoot/timer"
	"github.com/yohamta/donburi"
)

// attachExhaust adds an animated flame as a child of the ship.
func attachExhaust(w donburi.World, ship *donburi.Entry, sprite cfg.SpriteID, ec cfg.ExhaustConfig) *donburi.Entry {
	exhaust := archetypes.Exhaust.Spawn(w)

	shipTransform := components.Transform.Get(ship)
	components.Transform.SetValue(exhaust, components.TransformData{
		Position: shipTransform.Position.Add(ec.Offset),
		Z:        shipTransform.Z + ec.ZOffset,
	})
	components.Sprite.SetValue(exhaust, components.SpriteData{ID: sprite, Size: ec.Size, Tint: cfg.White})
	components.Animation.SetValue(exhaust, components.InfiniteAnimation(timer.Seconds(ec.FrameTime), cfg.Sheets[sprite].Frames()))
	components.Parent.SetValue(exhaust, components.ParentData{
		Entity:  ship.Entity(),
		Offset:  ec.Offset,
		ZOffset: ec.ZOffset,
	})

	children := components.Children.Get(ship)
	children.Entities = append(children.Entities, exhaust.Entity())
	return exhaust
}
