package factory

import (
	"strings"
	"testing"

	cfg "github.com/automoto/flyshoot/config"
)

func TestScoreLabel(t *testing.T) {
	if got := ScoreLabel(42); got != "SCORE: 42" {
		t.Errorf("ScoreLabel(42) = %q", got)
	}
}

func TestGameOverLabel(t *testing.T) {
	cfg.Reset()

	cont := GameOverLabel(true)
	if !strings.Contains(cont, "SPEND 50 POINTS") {
		t.Errorf("continue label missing the cost: %q", cont)
	}
	restart := GameOverLabel(false)
	if !strings.Contains(restart, "QUICK RESTART") {
		t.Errorf("restart label = %q", restart)
	}
}
