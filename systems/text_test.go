package systems

import (
	"image/color"
	"math"
	"testing"

	"github.com/automoto/flyshoot/components"
	cfg "github.com/automoto/flyshoot/config"
	"github.com/automoto/flyshoot/gamemath"
	"github.com/automoto/flyshoot/systems/factory"
)

func TestScoreTextFollowsGameOver(t *testing.T) {
	w := newTestWorld(t, cfg.Game)
	factory.CreateScoreText(w)
	factory.CreateGameOverText(w)
	score(w).Value = 7
	showScoreForGame(w)

	run(w, UpdateTexts)
	e, text := firstText(t, w, scoreTexts)
	if text.Content != "SCORE: 7" || text.Size != cfg.Score.GameTextSize || text.Hidden {
		t.Fatalf("in game: %q size %v hidden %v", text.Content, text.Size, text.Hidden)
	}
	if pos := components.Transform.Get(e).Position; pos != cfg.Score.GameTextPos {
		t.Errorf("in game at %v, want %v", pos, cfg.Score.GameTextPos)
	}

	if err := SetState(w, cfg.GameOver); err != nil {
		t.Fatal(err)
	}
	run(w, UpdateTransitions)
	e, text = firstText(t, w, scoreTexts)
	if text.Size != cfg.Score.GameOverTextSize || text.AlignX != components.AlignCenter {
		t.Errorf("on game over: size %v align %v, want %v centered", text.Size, text.AlignX, cfg.Score.GameOverTextSize)
	}
	want := gamemath.V(cfg.Field.Middle().X, cfg.Score.GameOverTextY)
	if pos := components.Transform.Get(e).Position; pos != want {
		t.Errorf("on game over at %v, want %v", pos, want)
	}

	c, _ := components.Clock.First(w)
	components.Clock.Get(c).Elapsed = math.Pi / 6
	run(w, UpdateTexts)
	_, text = firstText(t, w, scoreTexts)
	if want := (color.NRGBA{R: 255, G: 127, B: 127, A: 255}); text.Color != want {
		t.Errorf("pulse at sin = 0.5: %v, want %v", text.Color, want)
	}

	if err := SetState(w, cfg.GameOverWaitingForEmptyField); err != nil {
		t.Fatal(err)
	}
	run(w, UpdateTransitions, UpdateTexts)
	e, text = firstText(t, w, scoreTexts)
	if text.Size != cfg.Score.GameTextSize || text.Color != color.NRGBA(cfg.White) {
		t.Errorf("after game over: size %v color %v, want small and white", text.Size, text.Color)
	}
	if pos := components.Transform.Get(e).Position; pos != cfg.Score.GameTextPos {
		t.Errorf("after game over at %v, want %v", pos, cfg.Score.GameTextPos)
	}
}

func TestGameOverBannerVariant(t *testing.T) {
	tests := []struct {
		name  string
		score int
		want  string
	}{
		{"can continue", 50, factory.GameOverLabel(true)},
		{"quick restart", 49, factory.GameOverLabel(false)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t, cfg.Game)
			factory.CreateScoreText(w)
			factory.CreateGameOverText(w)
			score(w).Value = tt.score

			if err := SetState(w, cfg.GameOver); err != nil {
				t.Fatal(err)
			}
			run(w, UpdateTransitions)
			_, banner := firstText(t, w, gameOverTexts)
			if banner.Hidden || banner.Content != tt.want {
				t.Errorf("banner hidden %v content %q, want %q", banner.Hidden, banner.Content, tt.want)
			}
		})
	}
}
