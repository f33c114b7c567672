package components

import (
	cfg "github.com/automoto/flyshoot/config"
	"github.com/yohamta/donburi"
)

// InputData stores the current and previous tick's held state for all actions.
// JustPressed is computed on demand by comparing ticks.
type InputData struct {
	Current  cfg.Actions
	Previous cfg.Actions
}

func (i *InputData) Pressed(id cfg.ActionID) bool {
	return i.Current[id]
}

func (i *InputData) JustPressed(id cfg.ActionID) bool {
	return i.Current[id] && !i.Previous[id]
}

var Input = donburi.NewComponentType[InputData]()
