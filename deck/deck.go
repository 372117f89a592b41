package deck

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/minaorangina/crazycircus/internal/random"
	"github.com/minaorangina/crazycircus/podium"
)

var ErrTooManyTokens = fmt.Errorf("a deck holds at most %d animals", MaxTokens)

var errUnknownCard = errors.New("card is not part of the deck")

// Card identifies one position of a Deck
type Card int

// Deck holds every position a set of animals can take, and remembers which
// ones have already been dealt.
//
// Positions are stored packed: one permutation of token indices serves
// n+1 cards, card c being permutation c/(n+1) cut at c%(n+1).
type Deck struct {
	tokens    []podium.Token
	perms     []uint8
	used      []bool
	remaining int
	rng       *rand.Rand
}

// New builds the full deck for the given animals. The whole deck is
// reserved up front; a deck that cannot be built is fatal.
// A nil rng is replaced by a freshly seeded one.
func New(tokens []podium.Token, rng *rand.Rand) *Deck {
	n := len(tokens)
	if n > MaxTokens {
		panic(ErrTooManyTokens)
	}
	if rng == nil {
		rng = random.New(0)
	}

	d := &Deck{
		tokens: append([]podium.Token(nil), tokens...),
		perms:  make([]uint8, 0, factorial(n)*n),
		used:   make([]bool, Count(n)),
		rng:    rng,
	}

	permute(n, func(perm []int) {
		for _, idx := range perm {
			d.perms = append(d.perms, uint8(idx))
		}
	})

	d.remaining = len(d.used)

	return d
}

// Tokens returns the animals the deck was built with
func (d *Deck) Tokens() []podium.Token {
	return append([]podium.Token(nil), d.tokens...)
}

// Len is the total number of positions in the deck
func (d *Deck) Len() int {
	return len(d.used)
}

// Remaining is the number of positions not dealt yet
func (d *Deck) Remaining() int {
	return d.remaining
}

// Used reports whether a card has been dealt
func (d *Deck) Used(c Card) bool {
	d.mustContain(c)
	return d.used[c]
}

// Draw deals a random position that has not been dealt before.
// It returns false once every position has been dealt.
func (d *Deck) Draw() (Card, bool) {
	if d.remaining == 0 {
		return 0, false
	}

	choice := d.rng.Intn(d.remaining)
	seen := 0
	for i, used := range d.used {
		if used {
			continue
		}
		if seen == choice {
			d.used[i] = true
			d.remaining--
			return Card(i), true
		}
		seen++
	}

	// remaining is out of step with used
	panic("deck: no unused position found")
}

// Position lays a card out on the podiums. The State is freshly built, so
// the caller owns it and may play on it.
func (d *Deck) Position(c Card) podium.State {
	d.mustContain(c)

	n := len(d.tokens)
	perm := int(c) / (n + 1)
	k := int(c) % (n + 1)

	idx := make([]int, n)
	for i, v := range d.perms[perm*n : perm*n+n] {
		idx[i] = int(v)
	}

	return cut(d.tokens, idx, k)
}

func (d *Deck) mustContain(c Card) {
	if c < 0 || int(c) >= len(d.used) {
		panic(fmt.Errorf("%w: %d", errUnknownCard, c))
	}
}
