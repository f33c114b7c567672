package components

import (
	"github.com/automoto/flyshoot/gamemath"
	"github.com/yohamta/donburi"
)

// DestroyOutsideData removes the entity once a box of Size is fully off the field.
type DestroyOutsideData struct {
	Size gamemath.Vec2
}

var DestroyOutside = donburi.NewComponentType[DestroyOutsideData]()

// DespawnData collects entities destroyed during a tick (singleton). They are
// removed from the world when the tick ends.
type DespawnData struct {
	Queue  []donburi.Entity
	marked map[donburi.Entity]struct{}
}

// Mark queues e and reports whether it was not queued already.
func (d *DespawnData) Mark(e donburi.Entity) bool {
	if d.marked == nil {
		d.marked = make(map[donburi.Entity]struct{})
	}
	if _, ok := d.marked[e]; ok {
		return false
	}
	d.marked[e] = struct{}{}
	d.Queue = append(d.Queue, e)
	return true
}

func (d *DespawnData) Marked(e donburi.Entity) bool {
	_, ok := d.marked[e]
	return ok
}

// Drain returns the queued entities and empties the queue.
func (d *DespawnData) Drain() []donburi.Entity {
	q := d.Queue
	d.Queue = nil
	d.marked = nil
	return q
}

var Despawn = donburi.NewComponentType[DespawnData]()
