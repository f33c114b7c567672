package systems

import (
	"github.com/automoto/flyshoot/components"
	cfg "github.com/automoto/flyshoot/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDestroyOutside despawns entities that left the field entirely.
func UpdateDestroyOutside(ecs *ecs.ECS) {
	w := ecs.World
	live(w, outsiders, func(e *donburi.Entry) {
		bounds := cfg.Field.Outside(components.DestroyOutside.Get(e).Size)
		if !bounds.Contains(components.Transform.Get(e).Position) {
			Despawn(w, e)
		}
	})
}
