package components

import (
	"github.com/automoto/flyshoot/timer"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// TitleData drives the title screen (singleton). The timer measures the
// current phase; the tweens map its elapsed seconds onto the animated values.
type TitleData struct {
	Timer *timer.Timer

	FlyInRadius  *gween.Tween
	FlyInAlpha   *gween.Tween
	FlyOutRadius *gween.Tween
	FlyOutAlpha  *gween.Tween
	Instructions *gween.Tween // 0 to 1 over the instructions phase
}

var Title = donburi.NewComponentType[TitleData]()

// ShadowData marks one of the orbiting title labels.
type ShadowData struct {
	Index int
}

var Shadow = donburi.NewComponentType[ShadowData]()

// BackgroundData is one scrolling background tile.
type BackgroundData struct {
	InitialX float64
}

var Background = donburi.NewComponentType[BackgroundData]()
