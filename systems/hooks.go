package systems

import (
	"image/color"

	"github.com/automoto/flyshoot/components"
	cfg "github.com/automoto/flyshoot/config"
	"github.com/automoto/flyshoot/systems/factory"
	"github.com/yohamta/donburi"
)

type hook func(w donburi.World)

var enterHooks = map[cfg.GameState]hook{
	cfg.TitleFlyIn:              enterTitleFlyIn,
	cfg.TitleInstructionsFlyIn:  enterInstructionsFlyIn,
	cfg.Title:                   enterTitle,
	cfg.TitleFlyOut:             enterTitleFlyOut,
	cfg.PlayerSlideOut:          enterPlayerSlideOut,
	cfg.GameOver:                enterGameOver,
	cfg.GameOverWaitingForTimer: enterWaitingForTimer,
}

var exitHooks = map[cfg.GameState]hook{
	cfg.Title:       exitTitle,
	cfg.TitleFlyOut: exitTitleFlyOut,
	cfg.GameOver:    exitGameOver,
}

func enterTitleFlyIn(w donburi.World) {
	StopMusic(w, cfg.MusicBackground)
	PlayMusic(w, cfg.MusicTitle)
	setHidden(w, scoreTexts, true)
	setHidden(w, actionTexts, true)

	if title := resetTitle(w, cfg.TitleScreen.FlyInDuration); title != nil {
		title.FlyInRadius.Reset()
		title.FlyInAlpha.Reset()
	}
	setHidden(w, shadows, false)
	placeShadows(w, clock(w).Elapsed, cfg.TitleScreen.OuterRadius, 0)

	setHidden(w, instructions, false)
	placeInstructions(w, 0)
}

func enterInstructionsFlyIn(w donburi.World) {
	if title := resetTitle(w, cfg.TitleScreen.InstructionsDuration); title != nil {
		title.Instructions.Reset()
	}
}

func enterTitle(w donburi.World) {
	placeInstructions(w, 1)
	setHidden(w, actionTexts, false)
}

func exitTitle(w donburi.World) {
	StopMusic(w, cfg.MusicTitle)
	PlaySFX(w, cfg.SoundStart, cfg.Audio.DefaultSFXVol)
	score(w).Clear()
}

func enterTitleFlyOut(w donburi.World) {
	if title := resetTitle(w, cfg.TitleScreen.FlyOutDuration); title != nil {
		title.FlyOutRadius.Reset()
		title.FlyOutAlpha.Reset()
	}
}

func exitTitleFlyOut(w donburi.World) {
	setHidden(w, shadows, true)
	setHidden(w, instructions, true)
	setHidden(w, actionTexts, true)
}

func enterPlayerSlideOut(w donburi.World) {
	factory.CreatePlayer(w)
	PlayMusic(w, cfg.MusicBackground)
	showScoreForGame(w)
}

func enterGameOver(w donburi.World) {
	s := score(w)
	eachText(w, gameOverTexts, func(e *donburi.Entry, t *components.TextData) {
		t.Content = factory.GameOverLabel(s.CanContinue())
		t.Color = color.NRGBA(cfg.White)
		t.Hidden = false
		components.Transform.Get(e).Position = cfg.Field.Middle()
	})
	showScoreForGameOver(w)
	resetNewGameTimer(w)

	if e, ok := components.Game.First(w); ok {
		if cb := components.Game.Get(e).OnGameOver; cb != nil {
			cb(s.Value)
		}
	}
}

func exitGameOver(w donburi.World) {
	setHidden(w, gameOverTexts, true)
	showScoreForGame(w)
}

func enterWaitingForTimer(w donburi.World) {
	resetNewGameTimer(w)
}

func resetNewGameTimer(w donburi.World) {
	if e, ok := components.GameOver.First(w); ok {
		components.GameOver.Get(e).NewGameTimer.Reset()
	}
}
