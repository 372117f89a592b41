package engine

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/minaorangina/crazycircus/podium"
	"github.com/minaorangina/crazycircus/protocol"
)

const (
	colW     = 12
	gap      = "          "
	arrowGap = "   ==>    "
	base     = "----"
)

var (
	colorBlue   = lipgloss.Color("#3B82F6")
	colorRed    = lipgloss.Color("#E74C3C")
	colorWin    = lipgloss.Color("#2CD7C7")
	colorWarn   = lipgloss.Color("#F4D03F")
	colorMuted  = lipgloss.Color("#2C4A54")
	orderPrefix = "Orders: "
)

// Styles colours the parts of the display
type Styles struct {
	Blue    lipgloss.Style
	Red     lipgloss.Style
	Win     lipgloss.Style
	Warning lipgloss.Style
	Muted   lipgloss.Style
	plain   bool
}

// NewStyles returns the display styles for w. Without colour every style
// renders text unchanged.
func NewStyles(w io.Writer, color bool) Styles {
	if !color {
		return Styles{plain: true}
	}

	r := lipgloss.NewRenderer(w)
	return Styles{
		Blue:    r.NewStyle().Bold(true).Foreground(colorBlue),
		Red:     r.NewStyle().Bold(true).Foreground(colorRed),
		Win:     r.NewStyle().Bold(true).Foreground(colorWin),
		Warning: r.NewStyle().Foreground(colorWarn),
		Muted:   r.NewStyle().Foreground(colorMuted),
	}
}

func (s Styles) paint(style lipgloss.Style, text string) string {
	if s.plain {
		return text
	}
	return style.Render(text)
}

func pad(text string) string {
	return fmt.Sprintf("%-*s", colW, text)
}

// level returns the token at height k counted from the podium, or "" when
// the podium is lower than that
func level(topToBottom []podium.Token, k int) string {
	h := len(topToBottom)
	if k >= h {
		return ""
	}
	return string(topToBottom[h-1-k])
}

// BuildDuelText lays out the current arrangement next to the target one:
// animals from the highest level down, then the bases and the labels.
//
//	OURS                              LION
//	LION        ELEPHANT              ELEPHANT    OURS
//	----        ----           ==>    ----        ----
//	BLUE        RED                   BLUE        RED
func BuildDuelText(duel protocol.Duel, styles Styles) string {
	height := duel.Current.Height()
	if h := duel.Target.Height(); h > height {
		height = h
	}

	var b strings.Builder
	for k := height - 1; k >= 0; k-- {
		row := pad(level(duel.Current.Blue, k)) +
			pad(level(duel.Current.Red, k)) +
			gap +
			pad(level(duel.Target.Blue, k)) +
			level(duel.Target.Red, k)
		b.WriteString(strings.TrimRight(row, " "))
		b.WriteString("\n")
	}

	b.WriteString(pad(base) + pad(base) + arrowGap + pad(base) + base + "\n")

	blue := styles.paint(styles.Blue, pad(podium.Blue.String()))
	red := podium.Red.String()
	b.WriteString(blue + styles.paint(styles.Red, pad(red)) + gap + blue + styles.paint(styles.Red, red) + "\n")

	return b.String()
}

// BuildEventText renders an event for the terminal. New rounds show the
// duel; everything else is its message.
func BuildEventText(e protocol.Event, duel protocol.Duel, styles Styles) string {
	switch {
	case e.Command == protocol.NewRound:
		return BuildDuelText(duel, styles) + "\n"
	case e.Command.EndsRound():
		return styles.paint(styles.Win, e.Message) + "\n\n"
	case e.Command == protocol.GameOver, e.Command == protocol.Null:
		return e.Message + "\n"
	}
	return styles.paint(styles.Warning, e.Message) + "\n"
}

// BuildLegendText lists the orders players may shout
func BuildLegendText(legend string, styles Styles) string {
	return styles.paint(styles.Muted, orderPrefix+legend) + "\n\n"
}

// BuildStandingsText is the final scoreboard, one "name score" per line
func BuildStandingsText(standings []protocol.Standing) string {
	var b strings.Builder
	for _, s := range standings {
		fmt.Fprintf(&b, "%s %d\n", s.Name, s.Score)
	}
	return b.String()
}
