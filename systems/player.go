package systems

import (
	"github.com/automoto/flyshoot/components"
	cfg "github.com/automoto/flyshoot/config"
	"github.com/automoto/flyshoot/gamemath"
	"github.com/automoto/flyshoot/systems/factory"
	"github.com/automoto/flyshoot/tags"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayerMovement steers the ship from the held directions. The current
// direction eases toward the input and the ship stops at the field edges.
func UpdatePlayerMovement(ecs *ecs.ECS) {
	w := ecs.World
	dt := clock(w).Delta
	in := input(w)

	speed := cfg.Player.Speed
	if in.Pressed(cfg.ActionSlow) {
		speed *= cfg.Player.SlowFactor
	}
	bounds := cfg.Field.Inside(cfg.Player.Size)

	live(w, players, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		player.Direction = steer(player.Direction, targetDirection(in), cfg.Player.SpeedChange*dt)
		if player.Direction.IsZero() {
			return
		}

		t := components.Transform.Get(e)
		next := t.Position.Add(player.Direction.Scale(speed * dt))
		clamped, hitX, hitY := gamemath.ClampInside(next, bounds)
		if hitX {
			player.Direction.X = 0
		}
		if hitY {
			player.Direction.Y = 0
		}
		t.Position = clamped
	})
}

// targetDirection maps the held directions to a unit vector, or zero.
func targetDirection(in *components.InputData) gamemath.Vec2 {
	var dir gamemath.Vec2
	if in.Pressed(cfg.ActionMoveLeft) {
		dir.X--
	}
	if in.Pressed(cfg.ActionMoveRight) {
		dir.X++
	}
	if in.Pressed(cfg.ActionMoveUp) {
		dir.Y++
	}
	if in.Pressed(cfg.ActionMoveDown) {
		dir.Y--
	}
	return dir.NormalizeOrZero()
}

// steer moves current toward target by at most step, landing exactly on the
// target when it is closer than that.
func steer(current, target gamemath.Vec2, step float64) gamemath.Vec2 {
	change := target.Sub(current)
	dist := change.Length()
	if dist == 0 || dist < step {
		return target
	}
	return current.Add(change.Scale(step / dist))
}

// UpdatePlayerAttack fires while Fire is held, the gun is ready and the
// weapon is not overheated. Any other tick cools the weapon.
func UpdatePlayerAttack(ecs *ecs.ECS) {
	w := ecs.World
	c := clock(w)
	dt := delta(w)
	in := input(w)

	live(w, players, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		player.Gun.Process(dt)

		if !in.Pressed(cfg.ActionFire) || !player.Gun.CanShoot || player.Overheated() {
			player.Cooldown(c.Delta)
			return
		}

		t := components.Transform.Get(e)
		origin := t.Position.Add(cfg.Player.MuzzleOffset)
		tint := cfg.White
		tint.B = uint8(255 * gamemath.Clamp(1-player.Heat, 0, 1))
		factory.CreateBullet(w, factory.BulletSpec{
			Faction: components.FactionPlayer,
			Origin:  origin,
			Target:  origin.Add(gamemath.Right),
			Z:       t.Z + cfg.PlayerBullet.Z,
			Color:   tint,
		})
		player.Gun.Shoot()
		player.IncreaseHeat()
	})
}

// UpdatePlayerCollisions destroys the player on contact with an enemy or an
// enemy bullet and ends the game. Nothing more is checked once the game is
// over.
func UpdatePlayerCollisions(ecs *ecs.ECS) {
	w := ecs.World
	live(w, players, func(e *donburi.Entry) {
		if CurrentState(w) != cfg.Game {
			return
		}
		pos := components.Transform.Get(e).Position

		if hits := overlapping(w, e, tags.ResolvEnemy); len(hits) > 0 {
			enemy := hits[0]
			enemyPos := components.Transform.Get(enemy).Position
			Despawn(w, e)
			Despawn(w, enemy)
			factory.CreateExplosion(w, pos)
			factory.CreateExplosion(w, enemyPos)
			setStateOrLog(w, cfg.GameOver)
			return
		}

		if hits := overlapping(w, e, tags.ResolvEnemyBullet); len(hits) > 0 {
			Despawn(w, e)
			Despawn(w, hits[0])
			factory.CreateExplosion(w, pos)
			setStateOrLog(w, cfg.GameOver)
		}
	})
}

// UpdateSlideOut brings a fresh ship in from the left edge, then starts the
// game.
func UpdateSlideOut(ecs *ecs.ECS) {
	w := ecs.World
	e, ok := firstLive(w, players)
	if !ok {
		log.Debug("slide out skipped", "reason", "no player")
		return
	}
	t := components.Transform.Get(e)
	t.Position.X += cfg.Player.Speed * clock(w).Delta / cfg.Player.SlideOutSlowdown
	if t.Position.X > cfg.Player.Size.X/2 {
		setStateOrLog(w, cfg.Game)
	}
}
