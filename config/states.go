package config

// GameState is the screen or phase the whole game is in. Exactly one is
// active at a time.
type GameState int

const (
	Loading GameState = iota

	TitleFlyIn
	TitleInstructionsFlyIn
	Title
	TitleFlyOut

	PlayerSlideOut
	Game

	GameOver
	GameOverWaitingForEmptyField
	GameOverWaitingForTimer

	GameStateCount // Must be last
)

var gameStateNames = [GameStateCount]string{
	Loading:                      "Loading",
	TitleFlyIn:                   "TitleFlyIn",
	TitleInstructionsFlyIn:       "TitleInstructionsFlyIn",
	Title:                        "Title",
	TitleFlyOut:                  "TitleFlyOut",
	PlayerSlideOut:               "PlayerSlideOut",
	Game:                         "Game",
	GameOver:                     "GameOver",
	GameOverWaitingForEmptyField: "GameOverWaitingForEmptyField",
	GameOverWaitingForTimer:      "GameOverWaitingForTimer",
}

func (s GameState) String() string {
	if s < 0 || s >= GameStateCount {
		return "Unknown"
	}
	return gameStateNames[s]
}

// transitions lists the only edges the game flow may take.
var transitions = map[GameState][]GameState{
	Loading:                      {TitleFlyIn},
	TitleFlyIn:                   {TitleInstructionsFlyIn},
	TitleInstructionsFlyIn:       {Title},
	Title:                        {TitleFlyOut},
	TitleFlyOut:                  {PlayerSlideOut},
	PlayerSlideOut:               {Game},
	Game:                         {GameOver},
	GameOver:                     {GameOverWaitingForEmptyField, TitleFlyIn},
	GameOverWaitingForEmptyField: {GameOverWaitingForTimer},
	GameOverWaitingForTimer:      {PlayerSlideOut},
}

// CanTransition reports whether the game flow allows moving from one state
// to another.
func CanTransition(from, to GameState) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTitle reports whether s is one of the title screen phases.
func (s GameState) IsTitle() bool {
	return s >= TitleFlyIn && s <= TitleFlyOut
}

// IsGameOver reports whether s is one of the game over phases.
func (s GameState) IsGameOver() bool {
	return s >= GameOver && s <= GameOverWaitingForTimer
}
