package systems

import (
	"github.com/automoto/flyshoot/components"
	"github.com/automoto/flyshoot/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SyncObjects moves every collision proxy to its entity's hit box.
func SyncObjects(ecs *ecs.ECS) {
	w := ecs.World
	live(w, collidables, func(e *donburi.Entry) {
		components.Object.Get(e).Place(components.Transform.Get(e).Position, components.HitBox.Get(e).Half)
	})
}

// overlapping returns the live entities tagged with tag whose hit box
// overlaps e's. The space narrows the candidates; the boxes decide.
func overlapping(w donburi.World, e *donburi.Entry, tag string) []*donburi.Entry {
	obj := components.Object.Get(e)
	if obj.Object == nil {
		return nil
	}
	check := obj.Check(0, 0, tag)
	if check == nil {
		return nil
	}

	center := components.Transform.Get(e).Position
	half := components.HitBox.Get(e).Half
	var hits []*donburi.Entry
	for _, other := range check.ObjectsByTags(tag) {
		oe, ok := other.Data.(*donburi.Entry)
		if !ok || Despawned(w, oe) {
			continue
		}
		if collides(center, half, oe) {
			hits = append(hits, oe)
		}
	}
	return hits
}

func collides(center, half gamemath.Vec2, other *donburi.Entry) bool {
	return gamemath.Collide(center, half,
		components.Transform.Get(other).Position, components.HitBox.Get(other).Half)
}
