package components

import (
	"testing"

	"github.com/yohamta/donburi"
)

func TestDespawnQueue(t *testing.T) {
	w := donburi.NewWorld()
	a := w.Create(Transform)
	b := w.Create(Transform)

	var q DespawnData
	if !q.Mark(a) {
		t.Fatal("first Mark returned false")
	}
	if q.Mark(a) {
		t.Error("second Mark of the same entity returned true")
	}
	q.Mark(b)

	if !q.Marked(a) || !q.Marked(b) {
		t.Fatal("marked entities not reported")
	}
	drained := q.Drain()
	if len(drained) != 2 {
		t.Fatalf("Drain() returned %d entities, want 2", len(drained))
	}
	if q.Marked(a) || len(q.Queue) != 0 {
		t.Error("queue not empty after Drain")
	}
}
