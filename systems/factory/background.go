package factory

import (
	"github.com/automoto/flyshoot/archetypes"
	"github.com/automoto/flyshoot/components"
	cfg "github.com/automoto/flyshoot/config"
	"github.com/automoto/flyshoot/gamemath"
	"github.com/yohamta/donburi"
)

// CreateBackground lays the tiles side by side, each overlapping the previous
// one by the configured gap.
func CreateBackground(w donburi.World) []*donburi.Entry {
	bg := cfg.Background
	tiles := make([]*donburi.Entry, 0, bg.Tiles)
	for i := 0; i < bg.Tiles; i++ {
		initialX := bg.Size.X/2 + (bg.Size.X-bg.Gap)*float64(i)
		tile := archetypes.Background.Spawn(w)
		components.Background.SetValue(tile, components.BackgroundData{InitialX: initialX})
		components.Transform.SetValue(tile, components.TransformData{
			Position: gamemath.V(initialX, bg.Size.Y/2),
		})
		components.Sprite.SetValue(tile, components.SpriteData{
			ID:   cfg.SpriteBackground,
			Size: bg.Size,
			Tint: cfg.White,
		})
		tiles = append(tiles, tile)
	}
	return tiles
}
