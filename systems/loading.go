package systems

import (
	"github.com/automoto/flyshoot/components"
	cfg "github.com/automoto/flyshoot/config"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MarkAssetsLoaded records the loader's outcome. Failed assets do not block
// the game; they are drawn as placeholders.
func MarkAssetsLoaded(w donburi.World, failures []string) {
	e, ok := components.Assets.First(w)
	if !ok {
		return
	}
	assets := components.Assets.Get(e)
	assets.Done = true
	assets.Failures = append(assets.Failures[:0], failures...)
	for _, f := range failures {
		log.Warn("asset unavailable", "error", f)
	}
}

// UpdateLoading leaves the loading screen once the assets are done.
func UpdateLoading(ecs *ecs.ECS) {
	w := ecs.World
	e, ok := components.Assets.First(w)
	if !ok || !components.Assets.Get(e).Done {
		return
	}
	setStateOrLog(w, cfg.TitleFlyIn)
}
