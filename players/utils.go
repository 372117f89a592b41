package players

import (
	"fmt"
	"io"
)

const (
	configPromptText     = "Configuration file [%s]: "
	countPromptText      = "Number of players (%d-%d): "
	namePromptText       = "Name of player %d: "
	retryCountText       = "Please enter a number between %d and %d\n"
	retryEmptyNameText   = "A name cannot be empty\n"
	retryDuplicateText   = "%s is already playing, choose another name\n"
	clampedPlayersText   = "At most %d players can play, keeping %d\n"
	defaultConfigPath    = "crazy.cfg"
	maxPromptAttemptsErr = "too many invalid answers"
)

// SendText writes a formatted message to a player's terminal
func SendText(w io.Writer, text string, a ...interface{}) {
	fmt.Fprintf(w, text, a...)
}
