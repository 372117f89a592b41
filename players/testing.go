package players

// APlayer builds a player with a fixed ID
func APlayer(id, name string) *Player {
	return NewPlayer(id, name)
}
