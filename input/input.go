// Package input polls the keyboard and gamepads into simulation actions.
package input

import (
	cfg "github.com/automoto/flyshoot/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Binding lists the keys and standard gamepad buttons that trigger an action
type Binding struct {
	Keys    []ebiten.Key
	Buttons []ebiten.StandardGamepadButton
}

var Bindings = map[cfg.ActionID]Binding{
	cfg.ActionMoveUp: {
		Keys:    []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp},
		Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop},
	},
	cfg.ActionMoveDown: {
		Keys:    []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown},
		Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
	},
	cfg.ActionMoveLeft: {
		Keys:    []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft},
		Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
	},
	cfg.ActionMoveRight: {
		Keys:    []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight},
		Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
	},
	cfg.ActionSlow: {
		Keys:    []ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeyShiftRight},
		Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontBottomLeft},
	},
	cfg.ActionFire: {
		Keys:    []ebiten.Key{ebiten.KeyM, ebiten.KeySpace},
		Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
	},
	cfg.ActionConfirm: {
		Keys:    []ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter},
		Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
	},
	cfg.ActionQuit: {
		Keys:    []ebiten.Key{ebiten.KeyQ},
		Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightRight},
	},
}

// AnalogDeadzone is the stick deflection below which it counts as centered.
const AnalogDeadzone = 0.3

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Poll returns the actions held right now.
func Poll() cfg.Actions {
	var actions cfg.Actions
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for id, binding := range Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				actions[id] = true
			}
		}
		for _, gp := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gp) {
				continue
			}
			for _, btn := range binding.Buttons {
				if ebiten.IsStandardGamepadButtonPressed(gp, btn) {
					actions[id] = true
				}
			}
		}
	}

	for _, gp := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gp) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(gp, ebiten.StandardGamepadAxisLeftStickHorizontal)
		v := ebiten.StandardGamepadAxisValue(gp, ebiten.StandardGamepadAxisLeftStickVertical)
		if h < -AnalogDeadzone {
			actions[cfg.ActionMoveLeft] = true
		}
		if h > AnalogDeadzone {
			actions[cfg.ActionMoveRight] = true
		}
		// Screen y grows downward, field y upward.
		if v < -AnalogDeadzone {
			actions[cfg.ActionMoveUp] = true
		}
		if v > AnalogDeadzone {
			actions[cfg.ActionMoveDown] = true
		}
	}
	return actions
}

// Hotkeys are front-end toggles that never reach the simulation.
type Hotkeys struct {
	ToggleHitboxes   bool
	ToggleFullscreen bool
	ToggleSettings   bool
}

func PollHotkeys() Hotkeys {
	return Hotkeys{
		ToggleHitboxes:   inpututil.IsKeyJustPressed(ebiten.KeyF3),
		ToggleFullscreen: inpututil.IsKeyJustPressed(ebiten.KeyF11),
		ToggleSettings:   inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
}
