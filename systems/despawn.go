package systems

import (
	"github.com/automoto/flyshoot/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Despawn queues e and all of its children for removal at the end of the
// tick. Queued entities are ignored by every gameplay system from now on.
func Despawn(w donburi.World, e *donburi.Entry) {
	qe, ok := components.Despawn.First(w)
	if !ok {
		return
	}
	markTree(w, components.Despawn.Get(qe), e)
}

func markTree(w donburi.World, queue *components.DespawnData, e *donburi.Entry) {
	if !e.Valid() || !queue.Mark(e.Entity()) {
		return
	}
	if !e.HasComponent(components.Children) {
		return
	}
	for _, child := range components.Children.Get(e).Entities {
		if w.Valid(child) {
			markTree(w, queue, w.Entry(child))
		}
	}
}

// Despawned reports whether e is gone or queued for removal.
func Despawned(w donburi.World, e *donburi.Entry) bool {
	if !e.Valid() {
		return true
	}
	qe, ok := components.Despawn.First(w)
	return ok && components.Despawn.Get(qe).Marked(e.Entity())
}

// FlushDespawned removes queued entities and their collision proxies.
func FlushDespawned(ecs *ecs.ECS) {
	w := ecs.World
	qe, ok := components.Despawn.First(w)
	if !ok {
		return
	}
	queue := components.Despawn.Get(qe).Drain()

	spaceEntry, hasSpace := components.Space.First(w)
	for _, entity := range queue {
		if !w.Valid(entity) {
			continue
		}
		e := w.Entry(entity)
		if hasSpace && e.HasComponent(components.Object) {
			if obj := components.Object.Get(e); obj.Object != nil {
				components.Space.Get(spaceEntry).Remove(obj.Object)
			}
		}
		w.Remove(entity)
	}
}

// live calls fn for every entity of query that is not queued for removal.
// Entities are collected first so fn may create or despawn entities.
func live(w donburi.World, query *donburi.Query, fn func(e *donburi.Entry)) {
	var entries []*donburi.Entry
	query.Each(w, func(e *donburi.Entry) {
		entries = append(entries, e)
	})
	for _, e := range entries {
		if !Despawned(w, e) {
			fn(e)
		}
	}
}

// count returns the number of live entities matching query.
func count(w donburi.World, query *donburi.Query) int {
	n := 0
	live(w, query, func(*donburi.Entry) { n++ })
	return n
}

// firstLive returns the first live entity matching query.
func firstLive(w donburi.World, query *donburi.Query) (*donburi.Entry, bool) {
	var found *donburi.Entry
	live(w, query, func(e *donburi.Entry) {
		if found == nil {
			found = e
		}
	})
	return found, found != nil
}
