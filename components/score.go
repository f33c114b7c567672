package components

import (
	"github.com/automoto/flyshoot/config"
	"github.com/yohamta/donburi"
)

// ScoreData is the number of enemies destroyed this session (singleton).
// It never goes below zero.
type ScoreData struct {
	Value int
}

func (s *ScoreData) Inc() {
	s.Value++
}

func (s *ScoreData) Clear() {
	s.Value = 0
}

func (s *ScoreData) CanContinue() bool {
	return s.Value >= config.Score.ContinueCost
}

// BuyContinue spends the continue cost. A score below the cost drops to zero
// and the continue is still granted.
func (s *ScoreData) BuyContinue() {
	s.Value = max(s.Value-config.Score.ContinueCost, 0)
}

// Interp maps the score from [0, maxScore] linearly onto [start, end],
// clamped to that range.
func (s *ScoreData) Interp(start, end float64, maxScore int) float64 {
	if maxScore <= 0 {
		return end
	}
	v := start + float64(s.Value)/float64(maxScore)*(end-start)
	if start < end {
		return min(max(v, start), end)
	}
	return min(max(v, end), start)
}

var Score = donburi.NewComponentType[ScoreData]()
