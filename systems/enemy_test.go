package systems

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/automoto/flyshoot/components"
	cfg "github.com/automoto/flyshoot/config"
	"github.com/automoto/flyshoot/gamemath"
	"github.com/automoto/flyshoot/systems/factory"
)

func TestEnemySpecFollowsScore(t *testing.T) {
	cfg.Reset()
	tests := []struct {
		score  int
		speed  float64
		period time.Duration
	}{
		{0, 0.5, 3 * time.Second},
		{100, 1.25, 2250 * time.Millisecond},
		{200, 2.0, 1500 * time.Millisecond},
		{500, 2.0, 1500 * time.Millisecond},
	}

	target := gamemath.V(0.3, 0.5)
	for _, tt := range tests {
		r := components.RandData{Rand: rand.New(rand.NewSource(7))}
		spec := enemySpec(r, &components.ScoreData{Value: tt.score}, target, 0.8)

		if got := spec.Velocity.Length(); math.Abs(got-tt.speed) > 1e-9 {
			t.Errorf("score %d: speed = %v, want %v", tt.score, got, tt.speed)
		}
		if d := spec.FirePeriod - tt.period; d < -time.Microsecond || d > time.Microsecond {
			t.Errorf("score %d: fire period = %v, want %v", tt.score, spec.FirePeriod, tt.period)
		}
		if spec.FireDelay < 0 || spec.FireDelay >= spec.FirePeriod {
			t.Errorf("score %d: fire delay %v outside [0, %v)", tt.score, spec.FireDelay, spec.FirePeriod)
		}
		if want := cfg.Field.Outside(cfg.Enemy.Size).Right; spec.Position.X != want || spec.Position.Y != 0.8 {
			t.Errorf("score %d: position = %v, want (%v, 0.8)", tt.score, spec.Position, want)
		}

		aim := target.Sub(spec.Position)
		deviation := math.Abs(math.Remainder(spec.Velocity.Angle()-aim.Angle(), 2*math.Pi))
		if deviation > cfg.Enemy.MaxAimDeviation+1e-9 {
			t.Errorf("score %d: aim off by %v rad", tt.score, deviation)
		}
	}
}

func TestSpawnerNeedsPlayer(t *testing.T) {
	w := newTestWorld(t, cfg.Game)

	AdvanceClock(w, time.Second)
	run(w, UpdateEnemySpawner)
	if n := count(w, enemies); n != 0 {
		t.Fatalf("spawned %d enemies without a player", n)
	}

	spawnPlayer(t, w, gamemath.V(0.3, 0.5))
	run(w, UpdateEnemySpawner)
	if n := count(w, enemies); n != 1 {
		t.Fatalf("enemies after one wave = %d, want 1", n)
	}

	se, _ := components.Spawner.First(w)
	want := time.Duration(cfg.Enemy.SpawnIntervalStart * float64(time.Second))
	if got := components.Spawner.Get(se).Timer.Duration(); got != want {
		t.Errorf("next wave in %v, want %v", got, want)
	}
}

func TestEnemyAttack(t *testing.T) {
	tests := []struct {
		name  string
		enemy gamemath.Vec2
		shots int
	}{
		{"ahead of the player", gamemath.V(1.5, 0.5), 1},
		{"behind the player", gamemath.V(0.2, 0.5), 0},
		{"too close", gamemath.V(0.7, 0.5), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t, cfg.Game)
			spawnPlayer(t, w, gamemath.V(0.4, 0.5))
			e := factory.CreateEnemy(w, factory.EnemySpec{Position: tt.enemy, FirePeriod: 3 * time.Second})

			run(w, UpdateEnemyAttack)
			if n := count(w, bullets); n != tt.shots {
				t.Errorf("bullets = %d, want %d", n, tt.shots)
			}
			if ready := components.Enemy.Get(e).Gun.CanShoot; ready == (tt.shots == 1) {
				t.Errorf("gun ready = %v after %d shots", ready, tt.shots)
			}
		})
	}
}
