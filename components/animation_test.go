package components

import (
	"testing"
	"time"
)

func TestInfiniteAnimationWraps(t *testing.T) {
	a := InfiniteAnimation(100*time.Millisecond, 4)
	frame := 0
	var seen []int
	for i := 0; i < 5; i++ {
		frame = a.Advance(100*time.Millisecond, frame)
		seen = append(seen, frame)
	}
	want := []int{1, 2, 3, 0, 1}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("frames = %v, want %v", seen, want)
		}
	}
	if a.Done() {
		t.Error("infinite animation reports done")
	}
}

func TestFiniteAnimationStopsOnLastFrame(t *testing.T) {
	a := FiniteAnimation(50*time.Millisecond, 16)
	frame := 0
	for i := 0; i < 15; i++ {
		frame = a.Advance(50*time.Millisecond, frame)
	}
	if frame != 15 || a.Done() {
		t.Fatalf("frame = %d done = %v after 15 steps, want 15 and running", frame, a.Done())
	}

	frame = a.Advance(50*time.Millisecond, frame)
	if frame != 15 || !a.Done() {
		t.Fatalf("frame = %d done = %v after the last step, want 15 and done", frame, a.Done())
	}
	if got := a.Advance(time.Second, frame); got != 15 {
		t.Errorf("finished animation moved to frame %d", got)
	}
}

func TestAnimationCatchesUp(t *testing.T) {
	a := InfiniteAnimation(100*time.Millisecond, 4)
	if got := a.Advance(300*time.Millisecond, 0); got != 3 {
		t.Errorf("frame after three periods = %d, want 3", got)
	}
}
