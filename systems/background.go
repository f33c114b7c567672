package systems

import (
	"github.com/automoto/flyshoot/components"
	cfg "github.com/automoto/flyshoot/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBackground scrolls the tiles left and wraps each one back by a tile
// width once it moved a full tile.
func UpdateBackground(ecs *ecs.ECS) {
	w := ecs.World
	dt := clock(w).Delta
	backgrounds.Each(w, func(e *donburi.Entry) {
		initialX := components.Background.Get(e).InitialX
		t := components.Transform.Get(e)

		x := t.Position.X - cfg.Background.Speed*dt
		minX := initialX - cfg.Background.Size.X
		if x < minX {
			x = initialX - (minX - x)
		}
		t.Position.X = x
	})
}
