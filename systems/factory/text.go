package factory

import (
	"fmt"
	"image/color"

	"github.com/automoto/flyshoot/archetypes"
	"github.com/automoto/flyshoot/components"
	cfg "github.com/automoto/flyshoot/config"
	"github.com/automoto/flyshoot/gamemath"
	"github.com/automoto/flyshoot/tags"
	"github.com/yohamta/donburi"
)

// CreateText spawns a label. Labels start hidden unless the data says otherwise.
func CreateText(w donburi.World, tag donburi.IComponentType, pos gamemath.Vec2, z float64, data components.TextData) *donburi.Entry {
	text := archetypes.Text.Spawn(w, tag)
	components.Transform.SetValue(text, components.TransformData{Position: pos, Z: z})
	components.Text.SetValue(text, data)
	return text
}

// CreateScoreText spawns the hidden score label.
func CreateScoreText(w donburi.World) *donburi.Entry {
	return CreateText(w, tags.ScoreText, cfg.Score.GameTextPos, 0.1, components.TextData{
		Content: ScoreLabel(0),
		Size:    cfg.Score.GameTextSize,
		Color:   color.NRGBA(cfg.White),
		AlignX:  components.AlignStart,
		AlignY:  components.AlignStart,
		Hidden:  true,
	})
}

// CreateGameOverText spawns the hidden game over banner.
func CreateGameOverText(w donburi.World) *donburi.Entry {
	return CreateText(w, tags.GameOverText, cfg.Field.Middle(), cfg.GameOverScreen.Z, components.TextData{
		Content: GameOverLabel(true),
		Size:    cfg.GameOverScreen.TextSize,
		Color:   color.NRGBA(cfg.White),
		AlignY:  components.AlignStart,
		Hidden:  true,
	})
}

func ScoreLabel(score int) string {
	return fmt.Sprintf("SCORE: %d", score)
}

// GameOverLabel picks the banner for whether the score pays for a continue.
func GameOverLabel(canContinue bool) string {
	if canContinue {
		return fmt.Sprintf(cfg.GameOverScreen.ContinueText, cfg.Score.ContinueCost)
	}
	return cfg.GameOverScreen.QuickRestartText
}
