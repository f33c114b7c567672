package systems

import (
	"testing"
	"time"

	"github.com/automoto/flyshoot/components"
	cfg "github.com/automoto/flyshoot/config"
	"github.com/automoto/flyshoot/gamemath"
)

func TestContinueChargesScore(t *testing.T) {
	tests := []struct {
		name  string
		score int
		want  int
	}{
		{"enough points", 120, 70},
		{"exact cost", 50, 0},
		{"quick restart", 30, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t, cfg.GameOver)
			score(w).Value = tt.score
			enemy := spawnEnemy(t, w, gamemath.V(1, 0.5))

			ApplyInput(w, cfg.Press(cfg.ActionConfirm))
			run(w, UpdateGameOver)
			if got := CurrentState(w); got != cfg.GameOverWaitingForEmptyField {
				t.Fatalf("state after confirm = %v", got)
			}

			nextTick(w, tick, cfg.Press(cfg.ActionConfirm))
			run(w, UpdateGameOver)
			if got := CurrentState(w); got != cfg.GameOverWaitingForEmptyField {
				t.Fatalf("left the game over screen with an enemy on the field: %v", got)
			}

			Despawn(w, enemy)
			run(w, UpdateGameOver)
			if got := CurrentState(w); got != cfg.GameOverWaitingForTimer {
				t.Fatalf("state with an empty field = %v", got)
			}

			for i := 0; i < 4; i++ {
				nextTick(w, 100*time.Millisecond, cfg.Actions{})
				run(w, UpdateGameOver)
				if got := CurrentState(w); got != cfg.GameOverWaitingForTimer {
					t.Fatalf("new game started after %d00ms", i+1)
				}
			}
			nextTick(w, 100*time.Millisecond, cfg.Actions{})
			run(w, UpdateGameOver)
			if got := CurrentState(w); got != cfg.PlayerSlideOut {
				t.Fatalf("state after the delay = %v, want PlayerSlideOut", got)
			}
			if got := score(w).Value; got != tt.want {
				t.Errorf("score after continue = %d, want %d", got, tt.want)
			}

			run(w, UpdateTransitions)
			if n := count(w, players); n != 1 {
				t.Errorf("players after slide out started = %d, want 1", n)
			}
		})
	}
}

func TestHeldConfirmDoesNotRepeat(t *testing.T) {
	w := newTestWorld(t, cfg.GameOver)
	ApplyInput(w, cfg.Press(cfg.ActionConfirm))
	ApplyInput(w, cfg.Press(cfg.ActionConfirm))

	run(w, UpdateGameOver)
	if got := CurrentState(w); got != cfg.GameOver {
		t.Errorf("held confirm moved state to %v", got)
	}
}

func TestQuitClearsField(t *testing.T) {
	w := newTestWorld(t, cfg.GameOver)
	spawnEnemy(t, w, gamemath.V(1, 0.5))
	spawnBullet(t, w, components.FactionEnemy, gamemath.V(0.8, 0.5))
	spawnBullet(t, w, components.FactionPlayer, gamemath.V(0.3, 0.2))

	ApplyInput(w, cfg.Press(cfg.ActionQuit))
	run(w, UpdateGameOver)

	if got := CurrentState(w); got != cfg.TitleFlyIn {
		t.Fatalf("state after quit = %v, want TitleFlyIn", got)
	}
	if !FieldEmpty(w) {
		t.Error("field not empty after quit")
	}

	nextTick(w, tick, cfg.Actions{})
	if n := count(w, enemies) + count(w, bullets); n != 0 {
		t.Errorf("%d entities left after flush", n)
	}
}
