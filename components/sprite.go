package components

import (
	"image/color"

	"github.com/automoto/flyshoot/config"
	"github.com/automoto/flyshoot/gamemath"
	"github.com/yohamta/donburi"
)

type SpriteData struct {
	ID     config.SpriteID
	Size   gamemath.Vec2 // Drawn size in field units
	Frame  int           // Cell of the sprite sheet
	Tint   color.RGBA
	FlipX  bool
	Hidden bool
}

var Sprite = donburi.NewComponentType[SpriteData]()
