package game

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"

	"github.com/minaorangina/crazycircus/deck"
	"github.com/minaorangina/crazycircus/order"
	"github.com/minaorangina/crazycircus/players"
	"github.com/minaorangina/crazycircus/podium"
	"github.com/minaorangina/crazycircus/protocol"
)

var (
	ErrUnknownPlayer   = errors.New("unknown player")
	ErrCannotPlay      = errors.New("player cannot play again this round")
	ErrMissingSequence = errors.New("missing sequence")
	ErrGameOver        = errors.New("game is already over")
	ErrGameNotStarted  = errors.New("game has not started")
	ErrGameStarted     = errors.New("game has already started")
	ErrTooFewPlayers   = fmt.Errorf("minimum of %d players required", players.MinPlayers)
	ErrTooManyPlayers  = fmt.Errorf("maximum of %d players allowed", players.MaxPlayers)
)

// Opts configures a new Circus
type Opts struct {
	Tokens []podium.Token
	// Orders are the configured orders. Empty means all five.
	Orders  order.Set
	Players []string
	Rand    *rand.Rand
	// Restrict makes orders outside Orders unplayable
	Restrict bool
	Logger   *log.Logger
}

// Circus is a game of Crazy Circus.
//
// Each round shows the animals in a current arrangement and a target one.
// Players race to send a sequence of orders leading from one to the other.
// A wrong answer costs the player the rest of the round; the first right
// answer wins a point. The game ends when the deck has no new target left.
type Circus struct {
	deck     *deck.Deck
	orders   order.Set
	restrict bool
	players  players.Players
	eligible map[string]bool // by player ID
	current  deck.Card
	target   deck.Card
	round    int
	gamePlay GamePlayState
	logger   *log.Logger
}

// New constructs a game that has not started yet
func New(opts Opts) (*Circus, error) {
	if len(opts.Players) < players.MinPlayers {
		return nil, ErrTooFewPlayers
	}
	if len(opts.Players) > players.MaxPlayers {
		return nil, ErrTooManyPlayers
	}
	if len(opts.Tokens) > deck.MaxTokens {
		return nil, deck.ErrTooManyTokens
	}

	ps, err := players.NewPlayers(opts.Players...)
	if err != nil {
		return nil, fmt.Errorf("could not seat players: %w", err)
	}

	orders := opts.Orders
	if orders.Len() == 0 {
		orders = order.All()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	c := &Circus{
		deck:     deck.New(opts.Tokens, opts.Rand),
		orders:   orders,
		restrict: opts.Restrict,
		players:  ps,
		eligible: map[string]bool{},
		logger:   logger,
	}
	logger.Printf("deck holds %d arrangements of %d animals", c.deck.Len(), len(opts.Tokens))

	return c, nil
}

// Start draws the first arrangement and the first target
func (c *Circus) Start() ([]protocol.Event, error) {
	switch c.gamePlay {
	case gameStarted:
		return nil, ErrGameStarted
	case gameOver:
		return nil, ErrGameOver
	}

	c.gamePlay = gameStarted

	current, ok := c.deck.Draw()
	if !ok {
		return c.finish(), nil
	}
	c.current = current

	return c.nextRound(), nil
}

// Submit resolves one attempt by the named player. Rejected attempts come
// back as a single event plus an error; they never cost the player anything.
// Eliminations and wins are not errors.
func (c *Circus) Submit(name, sequence string) ([]protocol.Event, error) {
	switch c.gamePlay {
	case gameOver:
		return nil, ErrGameOver
	case gameNotStarted:
		return nil, ErrGameNotStarted
	}

	p, ok := c.players.FindByName(name)
	if !ok {
		return []protocol.Event{c.buildUnknownPlayerEvent(name)}, fmt.Errorf("%w: %s", ErrUnknownPlayer, name)
	}
	if !c.eligible[p.ID] {
		return []protocol.Event{c.buildCannotPlayEvent(p)}, fmt.Errorf("%w: %s", ErrCannotPlay, name)
	}
	if sequence == "" {
		return []protocol.Event{c.buildMissingSequenceEvent(p)}, ErrMissingSequence
	}

	attempt := c.deck.Position(c.current)
	outcome := order.ExecuteIn(sequence, &attempt, c.playable())

	if outcome.Result == order.Malformed {
		return []protocol.Event{c.buildUnknownOrderEvent(p, outcome.Unknown)}, outcome.Err(sequence)
	}

	target := c.deck.Position(c.target)
	if outcome.Result == order.OK && attempt.Equal(&target) {
		p.Score++
		c.logger.Printf("round %d: %s wins with %s", c.round, p.Name, sequence)
		events := []protocol.Event{c.buildRoundWonEvent(p)}
		return append(events, c.endRound()...), nil
	}

	c.eligible[p.ID] = false
	c.logger.Printf("round %d: %s eliminated (%s after %d orders)", c.round, p.Name, outcome.Result, outcome.Applied)
	events := []protocol.Event{c.buildEliminatedEvent(p, outcome.Result == order.Blocked)}

	if last, ok := c.lastPlayerStanding(); ok {
		last.Score++
		c.logger.Printf("round %d: %s wins by forfeit", c.round, last.Name)
		events = append(events, c.buildForfeitWinEvent(last))
		events = append(events, c.endRound()...)
	}

	return events, nil
}

// Stop ends the game early, as if the deck had run out
func (c *Circus) Stop() []protocol.Event {
	if c.gamePlay == gameOver {
		return nil
	}
	return c.finish()
}

// lastPlayerStanding returns the only eligible player, if there is exactly one
func (c *Circus) lastPlayerStanding() (*players.Player, bool) {
	var last *players.Player
	count := 0
	for _, p := range c.players {
		if c.eligible[p.ID] {
			last = p
			count++
		}
	}

	if count == 0 {
		panic("game: no eligible player left")
	}
	return last, count == 1
}

// endRound turns the target into the new current arrangement and draws the
// next target
func (c *Circus) endRound() []protocol.Event {
	c.current = c.target
	return c.nextRound()
}

func (c *Circus) nextRound() []protocol.Event {
	target, ok := c.deck.Draw()
	if !ok {
		c.logger.Printf("deck exhausted after %d rounds", c.round)
		return c.finish()
	}

	c.target = target
	c.round++
	for _, p := range c.players {
		c.eligible[p.ID] = true
	}
	c.logger.Printf("round %d: card %d to card %d, %d left", c.round, c.current, c.target, c.deck.Remaining())

	return []protocol.Event{c.buildNewRoundEvent()}
}

func (c *Circus) finish() []protocol.Event {
	c.gamePlay = gameOver
	for id := range c.eligible {
		c.eligible[id] = false
	}
	return []protocol.Event{c.buildGameOverEvent()}
}

func (c *Circus) playable() order.Set {
	if c.restrict {
		return c.orders
	}
	return order.All()
}

// Orders returns the configured orders
func (c *Circus) Orders() order.Set {
	return c.orders
}

// Duel returns the current and target arrangements of the round
func (c *Circus) Duel() protocol.Duel {
	if c.round == 0 {
		return protocol.Duel{}
	}

	current := c.deck.Position(c.current)
	target := c.deck.Position(c.target)
	return protocol.Duel{
		Round:   c.round,
		Current: protocol.NewArrangement(&current),
		Target:  protocol.NewArrangement(&target),
	}
}

// Score returns the named player's score
func (c *Circus) Score(name string) (int, bool) {
	p, ok := c.players.FindByName(name)
	if !ok {
		return 0, false
	}
	return p.Score, true
}

// Standings lists every player, best score first, ties by name
func (c *Circus) Standings() []protocol.Standing {
	standings := []protocol.Standing{}
	for _, p := range c.players.Ranking() {
		standings = append(standings, protocol.Standing{PlayerID: p.ID, Name: p.Name, Score: p.Score})
	}
	return standings
}

// Players lists the players' names in joining order
func (c *Circus) Players() []string {
	return c.players.Names()
}

// Eligible lists the players who may still answer this round
func (c *Circus) Eligible() []string {
	names := []string{}
	for _, p := range c.players {
		if c.eligible[p.ID] {
			names = append(names, p.Name)
		}
	}
	return names
}

func (c *Circus) GameOver() bool {
	return c.gamePlay == gameOver
}

// Round is the number of the current round, starting at 1
func (c *Circus) Round() int {
	return c.round
}
