// Package timer provides the countdown used by every time driven behaviour in
// the game: spawners, cooldowns, animations and screen transitions.
package timer

import "time"

// Mode selects what happens when a timer reaches its duration.
type Mode int

const (
	// Once stops at the duration and stays finished.
	Once Mode = iota
	// Repeating wraps elapsed by the duration, keeping the remainder.
	Repeating
)

type Timer struct {
	duration     time.Duration
	elapsed      time.Duration
	mode         Mode
	paused       bool
	finished     bool
	justFinished bool
	timesDone    int
}

func New(d time.Duration, mode Mode) *Timer {
	return &Timer{duration: d, mode: mode}
}

// FromSeconds builds a timer from a float duration, the unit used by config.
func FromSeconds(secs float64, mode Mode) *Timer {
	return New(Seconds(secs), mode)
}

// Seconds converts float seconds to a time.Duration.
func Seconds(secs float64) time.Duration {
	return time.Duration(secs * float64(time.Second))
}

// Tick advances the timer by dt. JustFinished reports true until the next
// Tick if a cycle completed during this one.
func (t *Timer) Tick(dt time.Duration) *Timer {
	t.justFinished = false
	t.timesDone = 0
	if t.paused {
		return t
	}
	if t.mode == Once && t.finished {
		return t
	}

	t.elapsed += dt
	if t.elapsed < t.duration {
		return t
	}

	t.finished = true
	t.justFinished = true
	if t.mode == Once || t.duration <= 0 {
		t.timesDone = 1
		t.elapsed = t.duration
		if t.duration < 0 {
			t.elapsed = 0
		}
		return t
	}

	t.timesDone = int(t.elapsed / t.duration)
	t.elapsed %= t.duration
	return t
}

func (t *Timer) JustFinished() bool {
	return t.justFinished
}

// TimesFinished is the number of cycles completed by the last Tick.
func (t *Timer) TimesFinished() int {
	return t.timesDone
}

// Finished reports whether the timer has completed at least once. For a
// repeating timer it mirrors JustFinished.
func (t *Timer) Finished() bool {
	if t.mode == Repeating {
		return t.justFinished
	}
	return t.finished
}

func (t *Timer) Elapsed() time.Duration {
	return t.elapsed
}

func (t *Timer) Duration() time.Duration {
	return t.duration
}

// SetDuration changes the period. Elapsed time is kept, so the next cycle
// completes at the new duration.
func (t *Timer) SetDuration(d time.Duration) {
	t.duration = d
}

// Fraction returns elapsed/duration in [0, 1].
func (t *Timer) Fraction() float64 {
	if t.duration <= 0 {
		return 1
	}
	f := float64(t.elapsed) / float64(t.duration)
	if f > 1 {
		return 1
	}
	if f < 0 {
		return 0
	}
	return f
}

func (t *Timer) Pause() {
	t.paused = true
}

func (t *Timer) Unpause() {
	t.paused = false
}

func (t *Timer) Paused() bool {
	return t.paused
}

// Reset rewinds the timer to zero and clears the finished flags. The paused
// state is left untouched.
func (t *Timer) Reset() {
	t.elapsed = 0
	t.finished = false
	t.justFinished = false
	t.timesDone = 0
}
