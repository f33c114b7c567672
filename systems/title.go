package systems

import (
	"image/color"
	"math"

	"github.com/automoto/flyshoot/components"
	cfg "github.com/automoto/flyshoot/config"
	"github.com/automoto/flyshoot/gamemath"
	"github.com/automoto/flyshoot/timer"
	"github.com/charmbracelet/log"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTitle plays the title screen: the shadows fly in, the instructions
// fade in, the prompt waits for confirm and everything flies out again.
func UpdateTitle(ecs *ecs.ECS) {
	w := ecs.World
	te, ok := components.Title.First(w)
	if !ok {
		log.Debug("title skipped", "reason", "no title")
		return
	}
	title := components.Title.Get(te)
	ts := cfg.TitleScreen
	c := clock(w)
	dt := float32(c.Delta)

	if cfg.Debug.SkipTitle {
		skipTitle(w)
		return
	}

	switch CurrentState(w) {
	case cfg.TitleFlyIn:
		if title.Timer.Tick(delta(w)).JustFinished() {
			setStateOrLog(w, cfg.TitleInstructionsFlyIn)
			return
		}
		radius, _ := title.FlyInRadius.Update(dt)
		alpha, _ := title.FlyInAlpha.Update(dt)
		placeShadows(w, c.Elapsed, float64(radius), float64(alpha))

	case cfg.TitleInstructionsFlyIn:
		if title.Timer.Tick(delta(w)).JustFinished() {
			setStateOrLog(w, cfg.Title)
			return
		}
		ratio, _ := title.Instructions.Update(dt)
		placeInstructions(w, float64(ratio))
		placeShadows(w, c.Elapsed, ts.ShadowRadius, ts.ShadowAlpha)

	case cfg.Title:
		placeShadows(w, c.Elapsed, ts.ShadowRadius, ts.ShadowAlpha)
		r := math.Abs(math.Sin(c.Elapsed))
		eachText(w, actionTexts, func(_ *donburi.Entry, t *components.TextData) {
			t.Color = color.NRGBA{R: uint8(255 * r), G: uint8(255 * (1 - r)), B: 255, A: 255}
		})
		if input(w).JustPressed(cfg.ActionConfirm) {
			setStateOrLog(w, cfg.TitleFlyOut)
		}

	case cfg.TitleFlyOut:
		if title.Timer.Tick(delta(w)).JustFinished() {
			setStateOrLog(w, cfg.PlayerSlideOut)
			return
		}
		radius, _ := title.FlyOutRadius.Update(dt)
		alpha, _ := title.FlyOutAlpha.Update(dt)
		placeShadows(w, c.Elapsed, float64(radius), float64(alpha))

		ratio := 1 - title.Timer.Fraction()
		placeInstructions(w, ratio)
		visible := int(ratio*ts.BlinkRate)%2 == 1
		setHidden(w, actionTexts, !visible)
	}
}

// skipTitle walks through the title phases one tick each.
func skipTitle(w donburi.World) {
	next := map[cfg.GameState]cfg.GameState{
		cfg.TitleFlyIn:             cfg.TitleInstructionsFlyIn,
		cfg.TitleInstructionsFlyIn: cfg.Title,
		cfg.Title:                  cfg.TitleFlyOut,
		cfg.TitleFlyOut:            cfg.PlayerSlideOut,
	}
	if to, ok := next[CurrentState(w)]; ok {
		setStateOrLog(w, to)
	}
}

// placeShadows orbits the title shadows around the title center.
func placeShadows(w donburi.World, t, radius, alpha float64) {
	ts := cfg.TitleScreen
	center := cfg.Field.Middle().Add(gamemath.V(0, ts.CenterOffsetY))
	shadows.Each(w, func(e *donburi.Entry) {
		offset := shadowAngleOffset(components.Shadow.Get(e).Index)
		angle := t*ts.ShadowSpeed + offset
		components.Transform.Get(e).Position = center.Add(gamemath.V(math.Cos(angle), math.Sin(angle)).Scale(radius))
		components.Text.Get(e).Color = shadowColor(offset, alpha)
	})
}

func shadowAngleOffset(index int) float64 {
	return 2 * math.Pi / float64(cfg.TitleScreen.Shadows) * float64(index)
}

// shadowColor gives each shadow its own fully saturated hue.
func shadowColor(angleOffset, alpha float64) color.NRGBA {
	hue := math.Sin(angleOffset)*180 + 180
	r, g, b := colorful.Hsl(hue, 1, 0.5).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(255 * gamemath.Clamp(alpha, 0, 1))}
}

// placeInstructions fades the instructions in as ratio goes from 0 to 1,
// rising slightly while they do.
func placeInstructions(w donburi.World, ratio float64) {
	ts := cfg.TitleScreen
	eachText(w, instructions, func(e *donburi.Entry, t *components.TextData) {
		t.Color.A = uint8(255 * gamemath.Clamp(ratio, 0, 1))
		components.Transform.Get(e).Position.Y = ts.InstructionsY + ratio*ts.InstructionsRise
	})
}

// resetTitle restarts the title timer for a phase of the given length.
func resetTitle(w donburi.World, secs float64) *components.TitleData {
	te, ok := components.Title.First(w)
	if !ok {
		return nil
	}
	title := components.Title.Get(te)
	title.Timer.SetDuration(timer.Seconds(secs))
	title.Timer.Reset()
	return title
}
