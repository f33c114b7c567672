package systems

import (
	"math"
	"testing"

	"github.com/automoto/flyshoot/components"
	cfg "github.com/automoto/flyshoot/config"
	"github.com/automoto/flyshoot/gamemath"
)

func TestSteer(t *testing.T) {
	tests := []struct {
		name            string
		current, target gamemath.Vec2
		step            float64
		want            gamemath.Vec2
	}{
		{"from rest", gamemath.Vec2{}, gamemath.V(1, 0), 0.075, gamemath.V(0.075, 0)},
		{"snaps when close", gamemath.V(0.99, 0), gamemath.V(1, 0), 0.075, gamemath.V(1, 0)},
		{"already there", gamemath.V(0, 1), gamemath.V(0, 1), 0.075, gamemath.V(0, 1)},
		{"releasing", gamemath.V(0, 1), gamemath.Vec2{}, 0.5, gamemath.V(0, 0.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := steer(tt.current, tt.target, tt.step)
			if got.Distance(tt.want) > 1e-9 {
				t.Errorf("steer() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMovementStopsAtEdge(t *testing.T) {
	w := newTestWorld(t, cfg.Game)
	bounds := cfg.Field.Inside(cfg.Player.Size)
	player := spawnPlayer(t, w, gamemath.V(0.5, bounds.Top-0.01))

	for i := 0; i < 60; i++ {
		nextTick(w, tick, cfg.Press(cfg.ActionMoveUp))
		run(w, UpdatePlayerMovement)
	}

	pos := components.Transform.Get(player).Position
	if pos.Y != bounds.Top {
		t.Errorf("y = %v, want top edge %v", pos.Y, bounds.Top)
	}
	if pos.X != 0.5 {
		t.Errorf("x drifted to %v", pos.X)
	}
	if dir := components.Player.Get(player).Direction; dir.Y != 0 {
		t.Errorf("direction.y = %v at the edge, want 0", dir.Y)
	}
}

func TestSlowMovement(t *testing.T) {
	travel := func(actions cfg.Actions) float64 {
		w := newTestWorld(t, cfg.Game)
		player := spawnPlayer(t, w, gamemath.V(0.2, 0.5))
		for i := 0; i < 30; i++ {
			nextTick(w, tick, actions)
			run(w, UpdatePlayerMovement)
		}
		return components.Transform.Get(player).Position.X - 0.2
	}

	full := travel(cfg.Press(cfg.ActionMoveRight))
	slow := travel(cfg.Press(cfg.ActionMoveRight, cfg.ActionSlow))
	if math.Abs(slow-full*cfg.Player.SlowFactor) > 1e-9 {
		t.Errorf("slow travel = %v, want %v of %v", slow, cfg.Player.SlowFactor, full)
	}
}

func TestPlayerAttack(t *testing.T) {
	w := newTestWorld(t, cfg.Game)
	player := spawnPlayer(t, w, gamemath.V(0.5, 0.5))
	ApplyInput(w, cfg.Press(cfg.ActionFire))

	run(w, UpdatePlayerAttack)
	if n := count(w, bullets); n != 1 {
		t.Fatalf("bullets after the first tick = %d, want 1", n)
	}
	p := components.Player.Get(player)
	if p.Heat != cfg.Player.BulletHeat {
		t.Errorf("heat = %v, want %v", p.Heat, cfg.Player.BulletHeat)
	}

	for i := 0; i < 5; i++ {
		nextTick(w, tick, cfg.Press(cfg.ActionFire))
		run(w, UpdatePlayerAttack)
	}
	if n := count(w, bullets); n != 1 {
		t.Errorf("bullets during the cooldown = %d, want 1", n)
	}

	for i := 0; i < 3; i++ {
		nextTick(w, tick, cfg.Press(cfg.ActionFire))
		run(w, UpdatePlayerAttack)
	}
	if n := count(w, bullets); n != 2 {
		t.Errorf("bullets after the cooldown = %d, want 2", n)
	}
}

func TestOverheatedPlayerCannotFire(t *testing.T) {
	w := newTestWorld(t, cfg.Game)
	player := spawnPlayer(t, w, gamemath.V(0.5, 0.5))
	components.Player.Get(player).Heat = cfg.Player.MaxHeat
	ApplyInput(w, cfg.Press(cfg.ActionFire))

	run(w, UpdatePlayerAttack)
	if n := count(w, bullets); n != 0 {
		t.Errorf("overheated weapon fired %d bullets", n)
	}
	if heat := components.Player.Get(player).Heat; heat >= cfg.Player.MaxHeat {
		t.Errorf("heat = %v, want it cooling", heat)
	}
}

func TestSlideOutStartsGame(t *testing.T) {
	w := newTestWorld(t, cfg.TitleFlyOut)
	if err := SetState(w, cfg.PlayerSlideOut); err != nil {
		t.Fatalf("SetState(PlayerSlideOut) failed: %v", err)
	}

	for i := 0; i < 600 && CurrentState(w) == cfg.PlayerSlideOut; i++ {
		nextTick(w, tick, cfg.Actions{})
		run(w, UpdateSlideOut)
	}
	if got := CurrentState(w); got != cfg.Game {
		t.Fatalf("state = %v, want Game", got)
	}
	p, ok := firstLive(w, players)
	if !ok {
		t.Fatal("no player after slide out")
	}
	if x := components.Transform.Get(p).Position.X; x <= cfg.Player.Size.X/2 {
		t.Errorf("player x = %v, want past %v", x, cfg.Player.Size.X/2)
	}
}
