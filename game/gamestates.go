package game

// GamePlayState represents where the game is in its lifetime
type GamePlayState int

const (
	gameNotStarted GamePlayState = iota
	gameStarted
	gameOver
)

var gamePlayStateNames = map[GamePlayState]string{
	gameNotStarted: "not started",
	gameStarted:    "started",
	gameOver:       "over",
}

func (s GamePlayState) String() string {
	return gamePlayStateNames[s]
}
