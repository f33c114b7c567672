package factory

import (
	"github.com/automoto/flyshoot/archetypes"
	"github.com/automoto/flyshoot/components"
	cfg "github.com/automoto/flyshoot/config"
	"github.com/automoto/flyshoot/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateSpace builds the collision grid covering the field plus a margin on
// every side, so ships entering from off screen are tracked too.
func CreateSpace(w donburi.World) *donburi.Entry {
	ppu := cfg.Collision.PixelsPerUnit
	width := int((cfg.Field.Width + 2*cfg.Collision.Margin) * ppu)
	height := int((cfg.Field.Height + 2*cfg.Collision.Margin) * ppu)

	space := archetypes.Space.Spawn(w)
	components.Space.Set(space, resolv.NewSpace(width, height, cfg.Collision.CellSize, cfg.Collision.CellSize))
	return space
}

// addObject registers a collision proxy for e in the world's space.
func addObject(w donburi.World, e *donburi.Entry, center, half gamemath.Vec2, tag string) {
	obj := components.ObjectData{Object: resolv.NewObject(0, 0, 1, 1, tag)}
	obj.Data = e
	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Add(obj.Object)
	}
	obj.Place(center, half)
	components.Object.SetValue(e, obj)
}
