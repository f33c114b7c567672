// Package scenes hosts the windowed front end around the simulation.
package scenes

import (
	"time"

	"github.com/automoto/flyshoot/assets"
	cfg "github.com/automoto/flyshoot/config"
	"github.com/automoto/flyshoot/input"
	"github.com/automoto/flyshoot/render"
	"github.com/automoto/flyshoot/settings"
	"github.com/automoto/flyshoot/sim"
	"github.com/automoto/flyshoot/sound"
	"github.com/automoto/flyshoot/ui"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// GameScene steps the simulation once per frame and presents the result.
type GameScene struct {
	sim      *sim.Simulation
	lib      *assets.Library
	renderer *render.Renderer
	mixer    *sound.Mixer

	store    *settings.Store
	settings settings.Settings
	overlay  *ui.SettingsUI
	paused   bool

	assetsReported bool
	mixerReady     bool
}

// GameOptions configures a GameScene. Store may be nil.
type GameOptions struct {
	Seed       int64
	AssetsDir  string
	Settings   *settings.Store
	OnGameOver func(score int)
}

func NewGameScene(opts GameOptions) *GameScene {
	lib := assets.Load(opts.AssetsDir)
	gs := &GameScene{
		sim:      sim.New(opts.Seed),
		lib:      lib,
		renderer: render.New(lib),
		mixer:    sound.NewMixer(lib),
		store:    opts.Settings,
	}
	gs.sim.ECS().
		AddRenderer(ecs.LayerDefault, gs.renderer.Draw).
		AddRenderer(ecs.LayerDefault, render.DrawHitboxes)
	if opts.OnGameOver != nil {
		gs.sim.OnGameOver(opts.OnGameOver)
	}

	gs.settings = gs.store.Load()
	if cfg.Debug.ShowHitboxes {
		gs.settings.ShowHitboxes = true
	}
	gs.apply(gs.settings)
	gs.overlay = ui.NewSettingsUI(gs.settings, gs.changeSettings, gs.toggleOverlay)
	return gs
}

func (gs *GameScene) Update() {
	keys := input.PollHotkeys()
	if keys.ToggleSettings {
		gs.toggleOverlay()
	}
	if keys.ToggleHitboxes {
		gs.settings.ShowHitboxes = !gs.settings.ShowHitboxes
		gs.changeSettings(gs.settings)
		gs.overlay.SetSettings(gs.settings)
	}
	if keys.ToggleFullscreen {
		gs.settings.Fullscreen = !gs.settings.Fullscreen
		gs.changeSettings(gs.settings)
		gs.overlay.SetSettings(gs.settings)
	}

	if !gs.assetsReported && gs.lib.Done() {
		gs.assetsReported = true
		if err := gs.lib.Err(); err != nil {
			log.Warn("assets unavailable, drawing placeholders", "error", err)
		}
		gs.sim.SetAssetsReady(gs.lib.Failures())
	}
	if gs.assetsReported && !gs.mixerReady {
		gs.mixerReady = true
		gs.mixer.Preload()
	}

	if gs.paused {
		gs.overlay.Update()
		return
	}

	before := gs.sim.State()
	gs.sim.Step(time.Second/time.Duration(cfg.C.TPS), input.Poll())
	if after := gs.sim.State(); after != before {
		log.Debug("state changed", "from", before, "to", after, "score", gs.sim.Score())
	}
	if gs.assetsReported {
		gs.mixer.Drain(gs.sim.World())
	}
}

func (gs *GameScene) Draw(screen *ebiten.Image) {
	gs.sim.ECS().Draw(screen)
	if gs.paused {
		gs.overlay.Draw(screen)
	}
}

func (gs *GameScene) toggleOverlay() {
	gs.paused = !gs.paused
	if !gs.paused {
		if err := gs.store.Save(gs.settings); err != nil {
			log.Warn("could not save settings", "error", err)
		}
	}
}

func (gs *GameScene) changeSettings(s settings.Settings) {
	gs.settings = s
	gs.apply(s)
}

func (gs *GameScene) apply(s settings.Settings) {
	gs.mixer.SetMusicVolume(s.EffectiveMusic())
	gs.mixer.SetSFXVolume(s.EffectiveSFX())
	cfg.Debug.ShowHitboxes = s.ShowHitboxes
	ebiten.SetFullscreen(s.Fullscreen)
}
