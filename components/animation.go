package components

import (
	"time"

	"github.com/automoto/flyshoot/timer"
	"github.com/yohamta/donburi"
)

// AnimationData steps a sprite through its sheet. Infinite animations wrap
// around; finite ones stop on the last frame and pause their timer.
type AnimationData struct {
	Timer    *timer.Timer
	Frames   int
	Infinite bool
}

func InfiniteAnimation(frameTime time.Duration, frames int) AnimationData {
	return AnimationData{Timer: timer.New(frameTime, timer.Repeating), Frames: frames, Infinite: true}
}

func FiniteAnimation(frameTime time.Duration, frames int) AnimationData {
	return AnimationData{Timer: timer.New(frameTime, timer.Repeating), Frames: frames}
}

// Advance ticks the animation and returns the next frame index.
func (a *AnimationData) Advance(dt time.Duration, frame int) int {
	if a.Timer.Paused() {
		return frame
	}
	a.Timer.Tick(dt)
	for i := 0; i < a.Timer.TimesFinished(); i++ {
		next := frame + 1
		if next >= a.Frames {
			if !a.Infinite {
				a.Timer.Pause()
				return frame
			}
			next = 0
		}
		frame = next
	}
	return frame
}

// Done reports whether a finite animation reached its last frame.
func (a *AnimationData) Done() bool {
	return !a.Infinite && a.Timer.Paused()
}

var Animation = donburi.NewComponentType[AnimationData]()
