package protocol

import "fmt"

// Cmd represents the kind of an Event
type Cmd int

const (
	Null Cmd = iota
	NewRound
	RoundWon
	Eliminated
	ForfeitWin
	// rejected attempts. None of these cost the player anything
	UnknownOrder
	UnknownPlayer
	CannotPlay
	MissingSequence
	GameOver
)

var CmdNames = map[Cmd]string{
	Null:            "Null",
	NewRound:        "NewRound",
	RoundWon:        "RoundWon",
	Eliminated:      "Eliminated",
	ForfeitWin:      "ForfeitWin",
	UnknownOrder:    "UnknownOrder",
	UnknownPlayer:   "UnknownPlayer",
	CannotPlay:      "CannotPlay",
	MissingSequence: "MissingSequence",
	GameOver:        "GameOver",
}

var NameToCmd = map[string]Cmd{
	"Null":            Null,
	"NewRound":        NewRound,
	"RoundWon":        RoundWon,
	"Eliminated":      Eliminated,
	"ForfeitWin":      ForfeitWin,
	"UnknownOrder":    UnknownOrder,
	"UnknownPlayer":   UnknownPlayer,
	"CannotPlay":      CannotPlay,
	"MissingSequence": MissingSequence,
	"GameOver":        GameOver,
}

func (c Cmd) String() string {
	return CmdNames[c]
}

// MarshalText writes commands by name, so JSON output stays readable
func (c Cmd) MarshalText() ([]byte, error) {
	name, ok := CmdNames[c]
	if !ok {
		return nil, fmt.Errorf("unknown command %d", int(c))
	}
	return []byte(name), nil
}

func (c *Cmd) UnmarshalText(text []byte) error {
	cmd, ok := NameToCmd[string(text)]
	if !ok {
		return fmt.Errorf("unknown command %q", text)
	}
	*c = cmd
	return nil
}

// EndsRound reports whether the command closes the current round
func (c Cmd) EndsRound() bool {
	return c == RoundWon || c == ForfeitWin
}
