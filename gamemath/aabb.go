package gamemath

import "math"

// Collide reports whether two axis-aligned boxes overlap. Boxes are given by
// their centers and half extents; boxes that only touch do not collide.
func Collide(aCenter, aHalf, bCenter, bHalf Vec2) bool {
	return math.Abs(aCenter.X-bCenter.X) < aHalf.X+bHalf.X &&
		math.Abs(aCenter.Y-bCenter.Y) < aHalf.Y+bHalf.Y
}
