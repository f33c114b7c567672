package components

import (
	"github.com/automoto/flyshoot/gamemath"
	"github.com/yohamta/donburi"
)

// HitBoxData is the axis-aligned collision box, centered on the transform.
type HitBoxData struct {
	Half gamemath.Vec2
}

// HitBoxFor returns a box covering scale of a sprite of the given size.
func HitBoxFor(size gamemath.Vec2, scale float64) HitBoxData {
	return HitBoxData{Half: size.Scale(scale / 2)}
}

var HitBox = donburi.NewComponentType[HitBoxData]()
