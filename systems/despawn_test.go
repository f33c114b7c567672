package systems

import (
	"testing"

	"github.com/automoto/flyshoot/components"
	cfg "github.com/automoto/flyshoot/config"
	"github.com/automoto/flyshoot/gamemath"
	"github.com/automoto/flyshoot/tags"
)

func TestDespawnTakesChildren(t *testing.T) {
	w := newTestWorld(t, cfg.Game)
	player := spawnPlayer(t, w, gamemath.V(0.5, 0.5))
	children := components.Children.Get(player).Entities
	if len(children) != 1 {
		t.Fatalf("player has %d children, want its exhaust", len(children))
	}
	exhaust := w.Entry(children[0])

	Despawn(w, player)
	if !Despawned(w, player) || !Despawned(w, exhaust) {
		t.Fatal("despawn did not reach the exhaust")
	}
	if n := count(w, players); n != 0 {
		t.Errorf("live players = %d after despawn, want 0", n)
	}
	if !w.Valid(player.Entity()) {
		t.Fatal("entity removed before the end of the tick")
	}

	run(w, FlushDespawned)
	if w.Valid(player.Entity()) || w.Valid(exhaust.Entity()) {
		t.Error("entities still valid after flush")
	}
}

func TestFlushRemovesCollisionProxy(t *testing.T) {
	w := newTestWorld(t, cfg.Game)
	pos := gamemath.V(1, 0.5)
	enemy := spawnEnemy(t, w, pos)
	witness := spawnBullet(t, w, components.FactionPlayer, pos)

	if components.Object.Get(witness).Check(0, 0, tags.ResolvEnemy) == nil {
		t.Fatal("witness does not see the enemy before despawn")
	}

	Despawn(w, enemy)
	run(w, FlushDespawned)
	if components.Object.Get(witness).Check(0, 0, tags.ResolvEnemy) != nil {
		t.Error("enemy still registered in the space after flush")
	}
}

func TestDespawnTwiceIsHarmless(t *testing.T) {
	w := newTestWorld(t, cfg.Game)
	enemy := spawnEnemy(t, w, gamemath.V(1, 0.5))

	Despawn(w, enemy)
	Despawn(w, enemy)
	run(w, FlushDespawned)
	run(w, FlushDespawned)
	if w.Valid(enemy.Entity()) {
		t.Error("enemy survived despawn")
	}
}

func TestOrphanedChildFollowsParent(t *testing.T) {
	w := newTestWorld(t, cfg.Game)
	enemy := spawnEnemy(t, w, gamemath.V(1, 0.5))
	exhaust := w.Entry(components.Children.Get(enemy).Entities[0])

	w.Remove(enemy.Entity())
	run(w, UpdateAttachments)
	if !Despawned(w, exhaust) {
		t.Error("child of a removed parent was not despawned")
	}
}

func TestDestroyOutside(t *testing.T) {
	w := newTestWorld(t, cfg.Game)
	inside := spawnBullet(t, w, components.FactionEnemy, gamemath.V(1, 0.5))
	edge := spawnBullet(t, w, components.FactionEnemy, gamemath.V(cfg.Field.Width+cfg.EnemyBullet.Size.X/4, 0.5))
	gone := spawnBullet(t, w, components.FactionEnemy, gamemath.V(-cfg.EnemyBullet.Size.X, 0.5))

	run(w, UpdateDestroyOutside)
	if Despawned(w, inside) || Despawned(w, edge) {
		t.Error("bullet still partly visible was destroyed")
	}
	if !Despawned(w, gone) {
		t.Error("bullet fully off screen was kept")
	}
}
