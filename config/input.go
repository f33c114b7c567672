package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionSlow
	ActionFire
	ActionConfirm
	ActionQuit
	ActionCount // Must be last - used for array sizing
)

// Actions holds the held state of every action for one tick.
type Actions [ActionCount]bool

// With returns a copy of a with the given actions held.
func (a Actions) With(ids ...ActionID) Actions {
	for _, id := range ids {
		a[id] = true
	}
	return a
}

// Press builds an Actions value with only the given actions held.
func Press(ids ...ActionID) Actions {
	return Actions{}.With(ids...)
}
