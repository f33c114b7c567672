package systems

import (
	"testing"

	"github.com/automoto/flyshoot/components"
	cfg "github.com/automoto/flyshoot/config"
	"github.com/automoto/flyshoot/gamemath"
	"github.com/automoto/flyshoot/tags"
)

func TestEnemyBulletEndsGame(t *testing.T) {
	w := newTestWorld(t, cfg.Game)
	pos := gamemath.V(0.5, 0.5)
	player := spawnPlayer(t, w, pos)
	bullet := spawnBullet(t, w, components.FactionEnemy, pos)

	run(w, UpdatePlayerCollisions)

	if got := CurrentState(w); got != cfg.GameOver {
		t.Fatalf("state = %v, want GameOver", got)
	}
	if !Despawned(w, player) || !Despawned(w, bullet) {
		t.Error("player and bullet not both destroyed")
	}
	if n := count(w, explosions); n != 1 {
		t.Errorf("explosions = %d, want 1", n)
	}
}

func TestEnemyContactEndsGame(t *testing.T) {
	w := newTestWorld(t, cfg.Game)
	pos := gamemath.V(0.5, 0.5)
	player := spawnPlayer(t, w, pos)
	enemy := spawnEnemy(t, w, pos.Add(gamemath.V(0.05, 0)))

	run(w, UpdatePlayerCollisions)

	if got := CurrentState(w); got != cfg.GameOver {
		t.Fatalf("state = %v, want GameOver", got)
	}
	if !Despawned(w, player) || !Despawned(w, enemy) {
		t.Error("ships not both destroyed")
	}
	if n := count(w, explosions); n != 2 {
		t.Errorf("explosions = %d, want 2", n)
	}
}

func TestNearMissKeepsPlaying(t *testing.T) {
	w := newTestWorld(t, cfg.Game)
	pos := gamemath.V(0.5, 0.5)
	spawnPlayer(t, w, pos)
	// Clear of the reduced hit box.
	spawnBullet(t, w, components.FactionEnemy, pos.Add(gamemath.V(0, cfg.Player.Size.Y*0.6)))

	run(w, UpdatePlayerCollisions)
	if got := CurrentState(w); got != cfg.Game {
		t.Errorf("state = %v after a near miss, want Game", got)
	}
}

func TestBulletHitsScoreOnce(t *testing.T) {
	w := newTestWorld(t, cfg.Game)
	pos := gamemath.V(1.2, 0.4)
	enemy := spawnEnemy(t, w, pos)
	first := spawnBullet(t, w, components.FactionPlayer, pos)
	second := spawnBullet(t, w, components.FactionPlayer, pos)

	run(w, UpdateBulletHits)
	run(w, UpdateBulletHits)

	if got := score(w).Value; got != 1 {
		t.Errorf("score = %d, want 1", got)
	}
	if !Despawned(w, enemy) {
		t.Error("enemy survived the hit")
	}
	if Despawned(w, first) == Despawned(w, second) {
		t.Error("want exactly one bullet consumed by the kill")
	}
	if n := count(w, explosions); n != 1 {
		t.Errorf("explosions = %d, want 1", n)
	}
}

func TestSyncObjectsFollowsTransform(t *testing.T) {
	w := newTestWorld(t, cfg.Game)
	enemy := spawnEnemy(t, w, gamemath.V(1.5, 0.5))
	bullet := spawnBullet(t, w, components.FactionPlayer, gamemath.V(0.5, 0.5))

	if hits := overlapping(w, enemy, tags.ResolvPlayerBullet); len(hits) != 0 {
		t.Fatal("distant bullet reported as overlapping")
	}
	components.Transform.Get(bullet).Position = gamemath.V(1.5, 0.5)
	run(w, SyncObjects)
	run(w, UpdateBulletHits)
	if got := score(w).Value; got != 1 {
		t.Errorf("score = %d after moving the bullet onto the enemy, want 1", got)
	}
}
