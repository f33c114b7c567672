package systems

import (
	"image/color"
	"math"

	"github.com/automoto/flyshoot/components"
	cfg "github.com/automoto/flyshoot/config"
	"github.com/automoto/flyshoot/gamemath"
	"github.com/automoto/flyshoot/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTexts keeps the score label current and pulses it on the game over
// screen.
func UpdateTexts(ecs *ecs.ECS) {
	w := ecs.World
	label := factory.ScoreLabel(score(w).Value)
	blink := CurrentState(w) == cfg.GameOver
	v := uint8(255 * math.Abs(math.Sin(clock(w).Elapsed)))

	eachText(w, scoreTexts, func(_ *donburi.Entry, t *components.TextData) {
		t.Content = label
		if blink {
			t.Color = color.NRGBA{R: 255, G: v, B: v, A: 255}
		}
	})
}

// showScoreForGame puts the small score label in the top left corner.
func showScoreForGame(w donburi.World) {
	eachText(w, scoreTexts, func(e *donburi.Entry, t *components.TextData) {
		t.Hidden = false
		t.AlignX, t.AlignY = components.AlignStart, components.AlignStart
		t.Size = cfg.Score.GameTextSize
		t.Color = color.NRGBA(cfg.White)
		components.Transform.Get(e).Position = cfg.Score.GameTextPos
	})
}

// showScoreForGameOver centers a large score label above the banner.
func showScoreForGameOver(w donburi.World) {
	eachText(w, scoreTexts, func(e *donburi.Entry, t *components.TextData) {
		t.Hidden = false
		t.AlignX, t.AlignY = components.AlignCenter, components.AlignCenter
		t.Size = cfg.Score.GameOverTextSize
		components.Transform.Get(e).Position = gamemath.V(cfg.Field.Middle().X, cfg.Score.GameOverTextY)
	})
}

func setHidden(w donburi.World, q *donburi.Query, hidden bool) {
	eachText(w, q, func(_ *donburi.Entry, t *components.TextData) {
		t.Hidden = hidden
	})
}
