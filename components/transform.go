package components

import (
	"github.com/automoto/flyshoot/gamemath"
	"github.com/yohamta/donburi"
)

// TransformData places an entity on the field. Z orders drawing, higher on top.
type TransformData struct {
	Position gamemath.Vec2
	Z        float64
	Rotation float64 // Radians, counter-clockwise
}

var Transform = donburi.NewComponentType[TransformData]()

type VelocityData struct {
	Value gamemath.Vec2 // Field units per second
}

var Velocity = donburi.NewComponentType[VelocityData]()
