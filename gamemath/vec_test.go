package gamemath

import (
	"math"
	"testing"
)

func TestNormalizeOr(t *testing.T) {
	tests := []struct {
		name     string
		v        Vec2
		expected Vec2
	}{
		{"unit x", V(3, 0), V(1, 0)},
		{"diagonal", V(2, 2), V(math.Sqrt2/2, math.Sqrt2/2)},
		{"zero falls back", V(0, 0), Right},
		{"nan falls back", V(math.NaN(), 1), Right},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.v.NormalizeOr(Right)
			if math.Abs(got.X-tc.expected.X) > 1e-9 || math.Abs(got.Y-tc.expected.Y) > 1e-9 {
				t.Errorf("NormalizeOr() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestNormalizeOrZero(t *testing.T) {
	if got := V(0, 0).NormalizeOrZero(); !got.IsZero() {
		t.Errorf("NormalizeOrZero() = %v, expected zero", got)
	}
}

func TestRotate(t *testing.T) {
	got := V(1, 0).Rotate(math.Pi / 2)
	if math.Abs(got.X) > 1e-9 || math.Abs(got.Y-1) > 1e-9 {
		t.Errorf("Rotate() = %v, expected (0, 1)", got)
	}
	if l := V(3, 4).Rotate(0.3).Length(); math.Abs(l-5) > 1e-9 {
		t.Errorf("Rotate() changed length to %v", l)
	}
}

func TestFieldBounds(t *testing.T) {
	f := Field{Width: 16.0 / 9.0, Height: 1}
	size := V(0.2, 0.1)

	tests := []struct {
		name     string
		got      Rect
		expected Rect
	}{
		{"inside", f.Inside(size), Rect{Left: 0.1, Right: f.Width - 0.1, Bottom: 0.05, Top: 0.95}},
		{"outside", f.Outside(size), Rect{Left: -0.1, Right: f.Width + 0.1, Bottom: -0.05, Top: 1.05}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, e := tc.got, tc.expected
			if !near(g.Left, e.Left) || !near(g.Right, e.Right) || !near(g.Bottom, e.Bottom) || !near(g.Top, e.Top) {
				t.Errorf("bounds = %+v, expected %+v", g, e)
			}
		})
	}
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestClampInside(t *testing.T) {
	r := Rect{Left: 0, Right: 1, Bottom: 0, Top: 1}

	tests := []struct {
		name       string
		p          Vec2
		expected   Vec2
		hitX, hitY bool
	}{
		{"inside", V(0.5, 0.5), V(0.5, 0.5), false, false},
		{"left", V(-1, 0.5), V(0, 0.5), true, false},
		{"top right", V(2, 3), V(1, 1), true, true},
		{"bottom", V(0.2, -0.1), V(0.2, 0), false, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, hx, hy := ClampInside(tc.p, r)
			if got != tc.expected || hx != tc.hitX || hy != tc.hitY {
				t.Errorf("ClampInside() = %v,%v,%v expected %v,%v,%v", got, hx, hy, tc.expected, tc.hitX, tc.hitY)
			}
		})
	}
}
