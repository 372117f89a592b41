package protocol

import "github.com/minaorangina/crazycircus/podium"

// Event is a message from the game to whoever is watching it
type Event struct {
	Command  Cmd    `json:"command"`
	PlayerID string `json:"playerID,omitempty"`
	Name     string `json:"name,omitempty"`
	Order    string `json:"order,omitempty"` // offending code of an UnknownOrder
	Blocked  bool   `json:"blocked,omitempty"`
	Round    int    `json:"round"`
	Message  string `json:"message"`
}

// Arrangement is a snapshot of both podiums, top to bottom
type Arrangement struct {
	Blue []podium.Token `json:"blue"`
	Red  []podium.Token `json:"red"`
}

// NewArrangement snapshots a state
func NewArrangement(s *podium.State) Arrangement {
	return Arrangement{
		Blue: s.Tokens(podium.Blue),
		Red:  s.Tokens(podium.Red),
	}
}

// Height is the number of tokens on the taller podium
func (a Arrangement) Height() int {
	if len(a.Blue) > len(a.Red) {
		return len(a.Blue)
	}
	return len(a.Red)
}

// Duel is what players look at during a round: where the animals are, and
// where they must end up.
type Duel struct {
	Round   int         `json:"round"`
	Current Arrangement `json:"current"`
	Target  Arrangement `json:"target"`
}

// Standing is one line of the scoreboard
type Standing struct {
	PlayerID string `json:"playerID"`
	Name     string `json:"name"`
	Score    int    `json:"score"`
}
