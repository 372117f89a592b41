package players

import (
	"errors"
	"fmt"
	"sort"

	uuid "github.com/satori/go.uuid"
)

const (
	MinPlayers = 2
	MaxPlayers = 10
)

var (
	ErrEmptyName     = errors.New("player name is empty")
	ErrDuplicateName = errors.New("player name is already taken")
)

// NewID constructs a player ID
func NewID() string {
	return uuid.NewV4().String()
}

// Player represents a player in the game
type Player struct {
	ID    string
	Name  string
	Score int
}

// NewPlayer constructs a new player
func NewPlayer(id, name string) *Player {
	return &Player{ID: id, Name: name}
}

// Players represents all players in the game, in joining order
type Players []*Player

// NewPlayers returns a set of Players, one per name.
// Names must be non-empty and unique; case matters.
func NewPlayers(names ...string) (Players, error) {
	ps := Players{}
	for _, n := range names {
		if err := ps.CheckName(n); err != nil {
			return nil, err
		}
		ps = append(ps, NewPlayer(NewID(), n))
	}
	return ps, nil
}

// CheckName reports why name cannot join ps, if it cannot
func (ps Players) CheckName(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	if _, ok := ps.FindByName(name); ok {
		return fmt.Errorf("%w: %s", ErrDuplicateName, name)
	}
	return nil
}

// FindByName finds a player by name
func (ps Players) FindByName(name string) (*Player, bool) {
	for _, p := range ps {
		if p.Name == name {
			return p, true
		}
	}
	return nil, false
}

// Names lists the players' names in joining order
func (ps Players) Names() []string {
	names := make([]string, 0, len(ps))
	for _, p := range ps {
		names = append(names, p.Name)
	}
	return names
}

// Ranking orders players by score, highest first, then by name
func (ps Players) Ranking() Players {
	ranked := append(Players(nil), ps...)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Name < ranked[j].Name
	})
	return ranked
}
