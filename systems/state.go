package systems

import (
	"errors"
	"fmt"
	"slices"

	"github.com/automoto/flyshoot/components"
	cfg "github.com/automoto/flyshoot/config"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	ErrInvalidTransition = errors.New("invalid state transition")
	ErrTransitionPending = errors.New("state already changed this tick")
	ErrNoGame            = errors.New("world has no game state")
)

// CurrentState returns the active game state, or Loading for a world
// without one.
func CurrentState(w donburi.World) cfg.GameState {
	if e, ok := components.Game.First(w); ok {
		return components.Game.Get(e).Current
	}
	return cfg.Loading
}

// SetState moves the game to the next state. The change is visible right away
// to the systems that run later in the tick; its hooks run in
// UpdateTransitions. Only one transition is accepted per tick.
func SetState(w donburi.World, next cfg.GameState) error {
	e, ok := components.Game.First(w)
	if !ok {
		return ErrNoGame
	}
	game := components.Game.Get(e)

	if game.Changed {
		log.Warn("state transition rejected", "from", game.Current, "to", next, "reason", "pending")
		return fmt.Errorf("%w: %s -> %s after %s -> %s", ErrTransitionPending, game.Current, next, game.Previous, game.Current)
	}
	if !cfg.CanTransition(game.Current, next) {
		log.Warn("state transition rejected", "from", game.Current, "to", next, "reason", "invalid")
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, game.Current, next)
	}

	log.Info("state transition", "from", game.Current, "to", next)
	game.Previous = game.Current
	game.Current = next
	game.Changed = true
	return nil
}

// InState wraps a system so it only runs while the game is in one of states.
func InState(system ecs.System, states ...cfg.GameState) ecs.System {
	return When(system, func(s cfg.GameState) bool {
		return slices.Contains(states, s)
	})
}

// When wraps a system so it only runs while active reports true for the
// current state.
func When(system ecs.System, active func(cfg.GameState) bool) ecs.System {
	return func(ecs *ecs.ECS) {
		if active(CurrentState(ecs.World)) {
			system(ecs)
		}
	}
}

// UpdateTransitions runs the exit hook of the old state and the enter hook of
// the new one after a transition. It must run last in the tick.
func UpdateTransitions(ecs *ecs.ECS) {
	w := ecs.World
	e, ok := components.Game.First(w)
	if !ok {
		return
	}
	game := components.Game.Get(e)
	if !game.Changed {
		return
	}
	game.Changed = false
	from, to := game.Previous, game.Current

	if hook, ok := exitHooks[from]; ok {
		hook(w)
	}
	if hook, ok := enterHooks[to]; ok {
		hook(w)
	}
}

func setStateOrLog(w donburi.World, next cfg.GameState) {
	if err := SetState(w, next); err != nil {
		log.Debug("transition skipped", "error", err)
	}
}
