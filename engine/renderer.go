package engine

import (
	"encoding/json"
	"io"

	"github.com/minaorangina/crazycircus/protocol"
)

type renderer interface {
	legend(legend string) error
	events(events []protocol.Event, duel protocol.Duel) error
	standings(standings []protocol.Standing) error
}

type textRenderer struct {
	out    io.Writer
	styles Styles
}

func newTextRenderer(out io.Writer, styles Styles) *textRenderer {
	return &textRenderer{out: out, styles: styles}
}

func (r *textRenderer) legend(legend string) error {
	_, err := io.WriteString(r.out, BuildLegendText(legend, r.styles))
	return err
}

func (r *textRenderer) events(events []protocol.Event, duel protocol.Duel) error {
	for _, e := range events {
		if _, err := io.WriteString(r.out, BuildEventText(e, duel, r.styles)); err != nil {
			return err
		}
	}
	return nil
}

func (r *textRenderer) standings(standings []protocol.Standing) error {
	_, err := io.WriteString(r.out, BuildStandingsText(standings))
	return err
}

// Line is one line of JSON output. Exactly one of the other fields is set,
// depending on Type.
type Line struct {
	Type      string              `json:"type"`
	Legend    string              `json:"legend,omitempty"`
	Event     *protocol.Event     `json:"event,omitempty"`
	Duel      *protocol.Duel      `json:"duel,omitempty"`
	Standings []protocol.Standing `json:"standings,omitempty"`
}

const (
	LineLegend    = "legend"
	LineEvent     = "event"
	LineDuel      = "duel"
	LineStandings = "standings"
)

type jsonRenderer struct {
	enc *json.Encoder
}

func newJSONRenderer(out io.Writer) *jsonRenderer {
	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)
	return &jsonRenderer{enc: enc}
}

func (r *jsonRenderer) legend(legend string) error {
	return r.enc.Encode(Line{Type: LineLegend, Legend: legend})
}

// events writes each event, and the duel after every new round
func (r *jsonRenderer) events(events []protocol.Event, duel protocol.Duel) error {
	for i := range events {
		if err := r.enc.Encode(Line{Type: LineEvent, Event: &events[i]}); err != nil {
			return err
		}
		if events[i].Command == protocol.NewRound {
			if err := r.enc.Encode(Line{Type: LineDuel, Duel: &duel}); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *jsonRenderer) standings(standings []protocol.Standing) error {
	return r.enc.Encode(Line{Type: LineStandings, Standings: standings})
}
