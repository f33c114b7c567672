package systems

import (
	"github.com/automoto/flyshoot/components"
	cfg "github.com/automoto/flyshoot/config"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateGameOver runs the game over screen: confirm starts a new run once the
// field is empty and the delay passed, quit goes back to the title.
func UpdateGameOver(ecs *ecs.ECS) {
	w := ecs.World
	switch CurrentState(w) {
	case cfg.GameOver:
		in := input(w)
		if in.JustPressed(cfg.ActionConfirm) {
			setStateOrLog(w, cfg.GameOverWaitingForEmptyField)
		} else if in.JustPressed(cfg.ActionQuit) {
			ClearField(w)
			setStateOrLog(w, cfg.TitleFlyIn)
		}

	case cfg.GameOverWaitingForEmptyField:
		if FieldEmpty(w) {
			setStateOrLog(w, cfg.GameOverWaitingForTimer)
		}

	case cfg.GameOverWaitingForTimer:
		ge, ok := components.GameOver.First(w)
		if !ok {
			log.Debug("new game skipped", "reason", "no game over timer")
			return
		}
		t := components.GameOver.Get(ge).NewGameTimer
		t.Tick(delta(w))
		if t.JustFinished() {
			score(w).BuyContinue()
			setStateOrLog(w, cfg.PlayerSlideOut)
		}
	}
}

// ClearField despawns every player, enemy, bullet and explosion.
func ClearField(w donburi.World) {
	for _, q := range []*donburi.Query{players, enemies, bullets, explosions} {
		live(w, q, func(e *donburi.Entry) {
			Despawn(w, e)
		})
	}
}

// FieldEmpty reports whether no player, enemy, bullet or explosion is left.
func FieldEmpty(w donburi.World) bool {
	return count(w, players)+count(w, enemies)+count(w, bullets)+count(w, explosions) == 0
}
