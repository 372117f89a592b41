package game

import (
	"fmt"

	"github.com/minaorangina/crazycircus/players"
	"github.com/minaorangina/crazycircus/protocol"
)

func (c *Circus) buildBaseEvent(cmd protocol.Cmd, p *players.Player) protocol.Event {
	e := protocol.Event{
		Command: cmd,
		Round:   c.round,
	}
	if p != nil {
		e.PlayerID = p.ID
		e.Name = p.Name
	}
	return e
}

func (c *Circus) buildNewRoundEvent() protocol.Event {
	e := c.buildBaseEvent(protocol.NewRound, nil)
	e.Message = fmt.Sprintf("Round %d", c.round)
	return e
}

func (c *Circus) buildRoundWonEvent(p *players.Player) protocol.Event {
	e := c.buildBaseEvent(protocol.RoundWon, p)
	e.Message = fmt.Sprintf("%s wins a point", p.Name)
	return e
}

func (c *Circus) buildForfeitWinEvent(p *players.Player) protocol.Event {
	e := c.buildBaseEvent(protocol.ForfeitWin, p)
	e.Message = fmt.Sprintf("%s wins a point as the only player left this round", p.Name)
	return e
}

func (c *Circus) buildEliminatedEvent(p *players.Player, blocked bool) protocol.Event {
	e := c.buildBaseEvent(protocol.Eliminated, p)
	e.Blocked = blocked
	e.Message = fmt.Sprintf("The sequence does not lead to the expected arrangement -- %s cannot play again this round", p.Name)
	return e
}

func (c *Circus) buildUnknownOrderEvent(p *players.Player, code string) protocol.Event {
	e := c.buildBaseEvent(protocol.UnknownOrder, p)
	e.Order = code
	e.Message = fmt.Sprintf("Order %s does not exist", code)
	return e
}

func (c *Circus) buildUnknownPlayerEvent(name string) protocol.Event {
	e := c.buildBaseEvent(protocol.UnknownPlayer, nil)
	e.Name = name
	e.Message = "Unknown player"
	return e
}

func (c *Circus) buildCannotPlayEvent(p *players.Player) protocol.Event {
	e := c.buildBaseEvent(protocol.CannotPlay, p)
	e.Message = fmt.Sprintf("%s cannot play", p.Name)
	return e
}

func (c *Circus) buildMissingSequenceEvent(p *players.Player) protocol.Event {
	e := c.buildBaseEvent(protocol.MissingSequence, p)
	e.Message = "Missing sequence"
	return e
}

func (c *Circus) buildGameOverEvent() protocol.Event {
	e := c.buildBaseEvent(protocol.GameOver, nil)
	e.Message = "Game over!"
	return e
}
