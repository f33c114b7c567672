package gamemath

// Rect holds the edges of an axis-aligned area in field units (y grows upwards).
type Rect struct {
	Left, Right, Bottom, Top float64
}

func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Left && p.X <= r.Right && p.Y >= r.Bottom && p.Y <= r.Top
}

// Field is the visible play area. Height is always one unit; width follows the
// aspect ratio of the window.
type Field struct {
	Width  float64
	Height float64
}

func (f Field) Middle() Vec2 {
	return Vec2{f.Width / 2, f.Height / 2}
}

// Inside returns the area where the center of a box of the given size keeps the
// whole box on screen.
func (f Field) Inside(size Vec2) Rect {
	return Rect{
		Left:   size.X / 2,
		Right:  f.Width - size.X/2,
		Bottom: size.Y / 2,
		Top:    f.Height - size.Y/2,
	}
}

// Outside returns the area beyond which a box of the given size is entirely
// off screen.
func (f Field) Outside(size Vec2) Rect {
	return Rect{
		Left:   -size.X / 2,
		Right:  f.Width + size.X/2,
		Bottom: -size.Y / 2,
		Top:    f.Height + size.Y/2,
	}
}

// ClampInside moves p into r and reports which axes were clamped.
func ClampInside(p Vec2, r Rect) (clamped Vec2, hitX, hitY bool) {
	clamped = p
	if clamped.X < r.Left {
		clamped.X, hitX = r.Left, true
	} else if clamped.X > r.Right {
		clamped.X, hitX = r.Right, true
	}
	if clamped.Y < r.Bottom {
		clamped.Y, hitY = r.Bottom, true
	} else if clamped.Y > r.Top {
		clamped.Y, hitY = r.Top, true
	}
	return clamped, hitX, hitY
}
