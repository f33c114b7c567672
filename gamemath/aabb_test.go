package gamemath

import (
	"math/rand"
	"testing"
)

func TestCollide(t *testing.T) {
	tests := []struct {
		name     string
		aPos     Vec2
		aHalf    Vec2
		bPos     Vec2
		bHalf    Vec2
		expected bool
	}{
		{"same center", V(0.5, 0.5), V(0.1, 0.1), V(0.5, 0.5), V(0.01, 0.01), true},
		{"overlap on both axes", V(0, 0), V(0.1, 0.1), V(0.15, 0.05), V(0.1, 0.1), true},
		{"apart horizontally", V(0, 0), V(0.1, 0.1), V(0.3, 0), V(0.1, 0.1), false},
		{"apart vertically", V(0, 0), V(0.1, 0.1), V(0, 0.3), V(0.1, 0.1), false},
		{"touching edges", V(0, 0), V(0.25, 0.25), V(0.5, 0), V(0.25, 0.25), false},
		{"overlap x only", V(0, 0), V(0.1, 0.1), V(0.05, 0.5), V(0.1, 0.1), false},
		{"zero sized inside", V(0, 0), V(0.1, 0.1), V(0.05, 0.05), V(0, 0), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Collide(tc.aPos, tc.aHalf, tc.bPos, tc.bHalf); got != tc.expected {
				t.Errorf("Collide() = %v, expected %v", got, tc.expected)
			}
			if got := Collide(tc.bPos, tc.bHalf, tc.aPos, tc.aHalf); got != tc.expected {
				t.Errorf("Collide() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestCollideSymmetricRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	r := func() float64 { return rng.Float64()*2 - 0.5 }
	for i := 0; i < 2000; i++ {
		a, ah := V(r(), r()), V(rng.Float64()*0.3, rng.Float64()*0.3)
		b, bh := V(r(), r()), V(rng.Float64()*0.3, rng.Float64()*0.3)
		if Collide(a, ah, b, bh) != Collide(b, bh, a, ah) {
			t.Fatalf("asymmetric result for %v/%v and %v/%v", a, ah, b, bh)
		}
	}
}
