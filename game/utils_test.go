package game

import (
	"math/rand"
	"strings"
	"testing"

	utils "github.com/minaorangina/crazycircus/internal"
	"github.com/minaorangina/crazycircus/order"
	"github.com/minaorangina/crazycircus/podium"
	"github.com/minaorangina/crazycircus/protocol"
	"github.com/stretchr/testify/require"
)

var (
	twoPlayers   = func() []string { return []string{"Harry", "Sally"} }
	threePlayers = func() []string { return []string{"Harry", "Sally", "Meg"} }
)

func someCircus(t *testing.T, names []string, tokens ...string) *Circus {
	t.Helper()

	c, err := New(Opts{
		Tokens:  utils.Tokens(tokens...),
		Players: names,
		Rand:    rand.New(rand.NewSource(1)),
	})
	utils.AssertNoError(t, err)
	return c
}

func startedCircus(t *testing.T, names []string, tokens ...string) *Circus {
	t.Helper()

	c := someCircus(t, names, tokens...)
	events, err := c.Start()
	utils.AssertNoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, protocol.NewRound, events[0].Command)
	return c
}

// solve finds a shortest sequence from the round's current arrangement to
// its target
func solve(t *testing.T, c *Circus) string {
	t.Helper()

	from := c.deck.Position(c.current)
	to := c.deck.Position(c.target)

	type node struct {
		state podium.State
		seq   string
	}
	seen := map[string]bool{from.String(): true}
	queue := []node{{from, ""}}

	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if n.state.Equal(&to) {
			return n.seq
		}
		for _, code := range order.All().Codes() {
			next := n.state.Copy()
			if !order.Apply(code, &next) || seen[next.String()] {
				continue
			}
			seen[next.String()] = true
			queue = append(queue, node{next, n.seq + code.String()})
		}
	}

	t.Fatalf("no sequence from %s to %s", from, to)
	return ""
}

// wrongAnswer is a valid sequence that leaves the animals where they are,
// which is never the target
func wrongAnswer(c *Circus) string {
	current := c.deck.Position(c.current)
	if current.Podium(podium.Blue).IsEmpty() {
		return "LOKI"
	}
	return "KILO"
}

// blockedAnswer always runs out of animals on the blue podium
func blockedAnswer(c *Circus) string {
	return strings.Repeat("KI", len(c.deck.Tokens())+1)
}

func commands(events []protocol.Event) []protocol.Cmd {
	cmds := []protocol.Cmd{}
	for _, e := range events {
		cmds = append(cmds, e.Command)
	}
	return cmds
}
