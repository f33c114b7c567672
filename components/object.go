package components

import (
	"github.com/automoto/flyshoot/config"
	"github.com/automoto/flyshoot/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is the entity's proxy in the collision space. Its Data field
// points back at the entry.
type ObjectData struct {
	*resolv.Object
}

// Place moves the object over a box given by its center and half extents.
// Space coordinates are pixels with y pointing down, offset by the margin.
func (o ObjectData) Place(center, half gamemath.Vec2) {
	ppu := config.Collision.PixelsPerUnit
	margin := config.Collision.Margin
	o.X = (center.X - half.X + margin) * ppu
	o.Y = (config.Field.Height - center.Y - half.Y + margin) * ppu
	o.W = 2 * half.X * ppu
	o.H = 2 * half.Y * ppu
	o.Update()
}

var Object = donburi.NewComponentType[ObjectData]()

var Space = donburi.NewComponentType[resolv.Space]()
