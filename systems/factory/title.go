package factory

import (
	"image/color"

	"github.com/automoto/flyshoot/archetypes"
	"github.com/automoto/flyshoot/components"
	cfg "github.com/automoto/flyshoot/config"
	"github.com/automoto/flyshoot/gamemath"
	"github.com/automoto/flyshoot/tags"
	"github.com/automoto/flyshoot/timer"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// CreateTitle spawns the title labels and the tweens that animate them.
func CreateTitle(w donburi.World) *donburi.Entry {
	ts := cfg.TitleScreen
	title := archetypes.Title.Spawn(w)
	components.Title.SetValue(title, NewTitleData())

	center := cfg.Field.Middle().Add(gamemath.V(0, ts.CenterOffsetY))
	for i := 0; i < ts.Shadows; i++ {
		shadow := CreateText(w, tags.TitleShadow, center, 0.1+0.01*float64(i), components.TextData{
			Content: ts.Text,
			Size:    ts.TextSize,
			Color:   color.NRGBA(cfg.White),
			Hidden:  true,
		})
		donburi.Add(shadow, components.Shadow, &components.ShadowData{Index: i})
	}

	mid := cfg.Field.Middle()
	CreateText(w, tags.Instructions, gamemath.V(mid.X, ts.InstructionsY), 0.1, components.TextData{
		Content: ts.Instructions,
		Size:    ts.InstructionsSize,
		Color:   color.NRGBA(cfg.White),
		Hidden:  true,
	})
	CreateText(w, tags.ActionText, gamemath.V(mid.X, mid.Y-ts.ActionOffset), 0.1, components.TextData{
		Content: ts.Action,
		Size:    ts.ActionSize,
		Color:   color.NRGBA(cfg.White),
		Hidden:  true,
	})
	return title
}

// NewTitleData returns the title timer and tweens at their start.
func NewTitleData() components.TitleData {
	ts := cfg.TitleScreen
	flyIn := float32(ts.FlyInDuration)
	flyOut := float32(ts.FlyOutDuration)
	return components.TitleData{
		Timer:        timer.FromSeconds(ts.FlyInDuration, timer.Repeating),
		FlyInRadius:  gween.New(float32(ts.OuterRadius), float32(ts.ShadowRadius), flyIn, ease.Linear),
		FlyInAlpha:   gween.New(0, float32(ts.ShadowAlpha), flyIn, ease.Linear),
		FlyOutRadius: gween.New(float32(ts.ShadowRadius), float32(ts.OuterRadius), flyOut, ease.Linear),
		FlyOutAlpha:  gween.New(float32(ts.ShadowAlpha), 0, flyOut, ease.Linear),
		Instructions: gween.New(0, 1, float32(ts.InstructionsDuration), ease.Linear),
	}
}
