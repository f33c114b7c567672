package gamemath

import "math"

// Vec2 is a point or direction in field units.
type Vec2 struct {
	X, Y float64
}

func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Mul multiplies component-wise.
func (v Vec2) Mul(o Vec2) Vec2 {
	return Vec2{v.X * o.X, v.Y * o.Y}
}

func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

func (v Vec2) Distance(o Vec2) float64 {
	return o.Sub(v).Length()
}

// Angle returns the direction of v in radians, counter-clockwise from +X.
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Rotate turns v counter-clockwise by rad radians.
func (v Vec2) Rotate(rad float64) Vec2 {
	sin, cos := math.Sincos(rad)
	return Vec2{v.X*cos - v.Y*sin, v.X*sin + v.Y*cos}
}

// NormalizeOr returns the unit vector of v, or fallback when v has no usable
// length. The result is never NaN.
func (v Vec2) NormalizeOr(fallback Vec2) Vec2 {
	l := v.Length()
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return fallback
	}
	return Vec2{v.X / l, v.Y / l}
}

// NormalizeOrZero is NormalizeOr with a zero fallback, used for input directions.
func (v Vec2) NormalizeOrZero() Vec2 {
	return v.NormalizeOr(Vec2{})
}

// Right is the default heading for degenerate directions.
var Right = Vec2{X: 1}

// Clamp limits value to [lo, hi].
func Clamp(value, lo, hi float64) float64 {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}
