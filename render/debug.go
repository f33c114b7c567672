package render

import (
	"image/color"

	"github.com/automoto/flyshoot/components"
	cfg "github.com/automoto/flyshoot/config"
	"github.com/automoto/flyshoot/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/colornames"
)

// DrawHitboxes outlines every collision proxy in the space while
// config.Debug.ShowHitboxes is set.
func DrawHitboxes(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowHitboxes {
		return
	}
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	v := newView(screen)
	space := components.Space.Get(spaceEntry)

	// Space coordinates are pixels with y down, offset by the margin.
	ppu, margin := cfg.Collision.PixelsPerUnit, cfg.Collision.Margin
	k := v.scale / ppu
	for _, obj := range space.Objects() {
		x := (obj.X - margin*ppu) * k
		y := (obj.Y - margin*ppu) * k
		vector.StrokeRect(screen, float32(x), float32(y), float32(obj.W*k), float32(obj.H*k), 1, hitboxColor(obj), false)
	}
}

func hitboxColor(obj *resolv.Object) color.Color {
	switch {
	case obj.HasTags(tags.ResolvPlayer):
		return colornames.Lime
	case obj.HasTags(tags.ResolvEnemy):
		return colornames.Red
	case obj.HasTags(tags.ResolvPlayerBullet):
		return colornames.Cyan
	case obj.HasTags(tags.ResolvEnemyBullet):
		return colornames.Yellow
	}
	return colornames.White
}
