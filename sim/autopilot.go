package sim

import (
	"math"

	"github.com/automoto/flyshoot/components"
	cfg "github.com/automoto/flyshoot/config"
	"github.com/automoto/flyshoot/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var (
	pilotPlayers = donburi.NewQuery(filter.Contains(tags.Player, components.Transform))
	pilotEnemies = donburi.NewQuery(filter.Contains(tags.Enemy, components.Transform))
)

// Autopilot produces input for unattended runs. It confirms every prompt,
// keeps firing and lines the ship up with the closest enemy.
type Autopilot struct {
	tick int
}

func (a *Autopilot) Actions(s *Simulation) cfg.Actions {
	a.tick++
	switch s.State() {
	case cfg.Title, cfg.GameOver:
		// Release every other tick so confirm registers as a fresh press.
		if a.tick%2 == 0 {
			return cfg.Press(cfg.ActionConfirm)
		}
	case cfg.Game:
		return a.fly(s.World())
	}
	return cfg.Actions{}
}

func (a *Autopilot) fly(w donburi.World) cfg.Actions {
	actions := cfg.Press(cfg.ActionFire)
	pe, ok := pilotPlayers.First(w)
	if !ok {
		return actions
	}
	player := components.Transform.Get(pe).Position

	targetY, best := player.Y, math.Inf(1)
	pilotEnemies.Each(w, func(e *donburi.Entry) {
		pos := components.Transform.Get(e).Position
		if d := pos.Distance(player); pos.X > player.X && d < best {
			best, targetY = d, pos.Y
		}
	})

	const deadZone = 0.02
	switch {
	case targetY > player.Y+deadZone:
		actions[cfg.ActionMoveUp] = true
	case targetY < player.Y-deadZone:
		actions[cfg.ActionMoveDown] = true
	}
	return actions
}
