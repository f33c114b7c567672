package systems

import (
	"github.com/automoto/flyshoot/components"
	cfg "github.com/automoto/flyshoot/config"
	"github.com/automoto/flyshoot/gamemath"
	"github.com/automoto/flyshoot/systems/factory"
	"github.com/automoto/flyshoot/tags"
	"github.com/automoto/flyshoot/timer"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemySpawner sends an enemy toward the player every time the wave
// timer fires. The period shrinks as the score grows.
func UpdateEnemySpawner(ecs *ecs.ECS) {
	w := ecs.World
	se, ok := components.Spawner.First(w)
	if !ok {
		log.Debug("enemy spawn skipped", "reason", "no spawner")
		return
	}
	spawner := components.Spawner.Get(se)
	spawner.Timer.Tick(delta(w))
	if !spawner.Timer.JustFinished() {
		return
	}

	r := rng(w)
	y := r.Range(cfg.Enemy.SpawnMinY, cfg.Enemy.SpawnMaxY)
	player, ok := firstLive(w, players)
	if !ok {
		return
	}

	s := score(w)
	factory.CreateEnemy(w, enemySpec(r, s, components.Transform.Get(player).Position, y))
	spawner.Timer.SetDuration(timer.Seconds(s.Interp(cfg.Enemy.SpawnIntervalStart, cfg.Enemy.SpawnIntervalEnd, cfg.Enemy.DifficultyMaxScore)))
}

// enemySpec rolls an enemy entering at height y from the right edge, headed
// roughly at target. Speed and fire rate follow the score.
func enemySpec(r components.RandData, s *components.ScoreData, target gamemath.Vec2, y float64) factory.EnemySpec {
	ec := cfg.Enemy
	pos := gamemath.V(cfg.Field.Outside(ec.Size).Right, y)

	speed := s.Interp(ec.SpeedStart, ec.SpeedEnd, ec.DifficultyMaxScore)
	velocity := target.Sub(pos).NormalizeOr(gamemath.Right.Scale(-1)).Scale(speed)
	velocity = velocity.Rotate(r.Range(-ec.MaxAimDeviation, ec.MaxAimDeviation))

	period := s.Interp(ec.FireIntervalStart, ec.FireIntervalEnd, ec.DifficultyMaxScore)
	return factory.EnemySpec{
		Position:   pos,
		Velocity:   velocity,
		FirePeriod: timer.Seconds(period),
		FireDelay:  timer.Seconds(r.Range(0, period)),
	}
}

// UpdateEnemyAttack lets enemies ahead of the player shoot near it. Shots
// from closer than the minimum distance are held back.
func UpdateEnemyAttack(ecs *ecs.ECS) {
	w := ecs.World
	player, ok := firstLive(w, players)
	if !ok {
		return
	}
	target := components.Transform.Get(player).Position
	dt := delta(w)
	r := rng(w)

	live(w, enemies, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		enemy.Gun.Process(dt)

		pos := components.Transform.Get(e).Position
		if !enemy.Gun.CanShoot || pos.X <= target.X {
			return
		}

		aim := target.Add(gamemath.V(0, r.Range(-cfg.Enemy.AimJitter, cfg.Enemy.AimJitter)))
		if pos.Distance(target) <= cfg.Enemy.MinShootDistance {
			return
		}
		factory.CreateBullet(w, factory.BulletSpec{
			Faction: components.FactionEnemy,
			Origin:  pos,
			Target:  aim,
			Z:       cfg.EnemyBullet.Z,
			Color:   cfg.White,
		})
		enemy.Gun.Shoot()
	})
}

// UpdateBulletHits destroys every enemy touched by a player bullet along with
// the first such bullet. Each kill scores one point.
func UpdateBulletHits(ecs *ecs.ECS) {
	w := ecs.World
	s := score(w)
	live(w, enemies, func(e *donburi.Entry) {
		hits := overlapping(w, e, tags.ResolvPlayerBullet)
		if len(hits) == 0 {
			return
		}
		pos := components.Transform.Get(e).Position
		Despawn(w, e)
		Despawn(w, hits[0])
		factory.CreateExplosion(w, pos)
		s.Inc()
	})
}
