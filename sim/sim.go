// Package sim drives the game simulation headless: one Step per tick runs
// every system in a fixed order on the same delta.
package sim

import (
	"time"

	"github.com/automoto/flyshoot/components"
	cfg "github.com/automoto/flyshoot/config"
	"github.com/automoto/flyshoot/systems"
	"github.com/automoto/flyshoot/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type Simulation struct {
	ecs *ecs.ECS
}

// New builds a world in the Loading state. The seed fixes every random roll.
func New(seed int64) *Simulation {
	w := donburi.NewWorld()
	factory.CreateGame(w, seed)
	factory.CreateSpace(w)
	factory.CreateBackground(w)
	factory.CreateScoreText(w)
	factory.CreateGameOverText(w)
	factory.CreateTitle(w)

	ecs := ecs.NewECS(w)

	// Flow
	ecs.AddSystem(systems.InState(systems.UpdateLoading, cfg.Loading))
	ecs.AddSystem(systems.When(systems.UpdateTitle, cfg.GameState.IsTitle))

	// Movement
	ecs.AddSystem(systems.InState(systems.UpdateEnemySpawner, cfg.Game))
	ecs.AddSystem(systems.InState(systems.UpdatePlayerMovement, cfg.Game))
	ecs.AddSystem(systems.InState(systems.UpdateSlideOut, cfg.PlayerSlideOut))
	ecs.AddSystem(systems.UpdateVelocity)
	ecs.AddSystem(systems.UpdateAttachments)
	ecs.AddSystem(systems.UpdateAnimation)

	// Combat
	ecs.AddSystem(systems.InState(systems.UpdatePlayerAttack, cfg.Game))
	ecs.AddSystem(systems.InState(systems.UpdateEnemyAttack, cfg.Game))
	ecs.AddSystem(systems.SyncObjects)
	ecs.AddSystem(systems.InState(systems.UpdatePlayerCollisions, cfg.Game))
	ecs.AddSystem(systems.UpdateBulletHits)
	ecs.AddSystem(systems.UpdateDestroyOutside)
	ecs.AddSystem(systems.UpdateExplosions)

	ecs.AddSystem(systems.When(systems.UpdateGameOver, cfg.GameState.IsGameOver))
	ecs.AddSystem(systems.UpdateTexts)
	ecs.AddSystem(systems.UpdateBackground)

	// Must stay last: hooks see the whole tick, removals happen after it.
	ecs.AddSystem(systems.UpdateTransitions)
	ecs.AddSystem(systems.FlushDespawned)

	return &Simulation{ecs: ecs}
}

// Step advances the game by dt with the given actions held.
func (s *Simulation) Step(dt time.Duration, actions cfg.Actions) {
	systems.AdvanceClock(s.ecs.World, dt)
	systems.ApplyInput(s.ecs.World, actions)
	s.ecs.Update()
}

func (s *Simulation) World() donburi.World {
	return s.ecs.World
}

// ECS exposes the scheduler so a front end can add renderers.
func (s *Simulation) ECS() *ecs.ECS {
	return s.ecs
}

func (s *Simulation) State() cfg.GameState {
	return systems.CurrentState(s.ecs.World)
}

func (s *Simulation) Score() int {
	if e, ok := components.Score.First(s.ecs.World); ok {
		return components.Score.Get(e).Value
	}
	return 0
}

// SetAssetsReady ends the loading screen on the next Step.
func (s *Simulation) SetAssetsReady(failures []string) {
	systems.MarkAssetsLoaded(s.ecs.World, failures)
}

// OnGameOver registers fn to receive the final score of every run.
func (s *Simulation) OnGameOver(fn func(score int)) {
	if e, ok := components.Game.First(s.ecs.World); ok {
		components.Game.Get(e).OnGameOver = fn
	}
}
