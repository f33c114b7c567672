package systems

import (
	"github.com/automoto/flyshoot/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateVelocity moves every entity with a velocity by velocity*dt.
func UpdateVelocity(ecs *ecs.ECS) {
	w := ecs.World
	dt := clock(w).Delta
	live(w, movers, func(e *donburi.Entry) {
		t := components.Transform.Get(e)
		t.Position = t.Position.Add(components.Velocity.Get(e).Value.Scale(dt))
	})
}

// UpdateAttachments keeps children at their offset from the parent. A child
// whose parent is gone goes with it.
func UpdateAttachments(ecs *ecs.ECS) {
	w := ecs.World
	live(w, attached, func(e *donburi.Entry) {
		p := components.Parent.Get(e)
		if !w.Valid(p.Entity) {
			Despawn(w, e)
			return
		}
		parent := w.Entry(p.Entity)
		pt := components.Transform.Get(parent)
		t := components.Transform.Get(e)
		t.Position = pt.Position.Add(p.Offset)
		t.Z = pt.Z + p.ZOffset
	})
}

// UpdateAnimation steps sprite sheet animations.
func UpdateAnimation(ecs *ecs.ECS) {
	w := ecs.World
	dt := delta(w)
	live(w, animated, func(e *donburi.Entry) {
		sprite := components.Sprite.Get(e)
		sprite.Frame = components.Animation.Get(e).Advance(dt, sprite.Frame)
	})
}

// UpdateExplosions removes explosions that played to the end.
func UpdateExplosions(ecs *ecs.ECS) {
	w := ecs.World
	live(w, explosions, func(e *donburi.Entry) {
		if components.Animation.Get(e).Done() {
			Despawn(w, e)
		}
	})
}
