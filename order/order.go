// Package order holds the five orders a ringmaster can shout and the
// rules for applying them to a pair of podiums.
package order

import (
	"strings"

	"github.com/minaorangina/crazycircus/podium"
)

// Code is one of the five known orders
type Code int

const (
	Null Code = iota
	KI        // Blue top -> Red top
	LO        // Red top -> Blue top
	SO        // swap both tops
	NI        // Blue bottom -> Blue top
	MA        // Red bottom -> Red top
)

// codeWidth is the number of characters of every order in a sequence
const codeWidth = 2

var CodeNames = map[Code]string{
	Null: "Null",
	KI:   "KI",
	LO:   "LO",
	SO:   "SO",
	NI:   "NI",
	MA:   "MA",
}

var NameToCode = map[string]Code{
	"KI": KI,
	"LO": LO,
	"SO": SO,
	"NI": NI,
	"MA": MA,
}

var legends = map[Code]string{
	KI: "(B -> R)",
	LO: "(B <- R)",
	SO: "(B <-> R)",
	NI: "(B ^)",
	MA: "(R ^)",
}

func (c Code) String() string {
	return CodeNames[c]
}

// Legend describes the order, e.g. "KI (B -> R)"
func (c Code) Legend() string {
	return c.String() + " " + legends[c]
}

// ParseCode looks up a two-letter order. Orders are case-sensitive.
func ParseCode(s string) (Code, bool) {
	c, ok := NameToCode[s]
	return c, ok
}

// Apply runs a single order against the state.
// It reports false, leaving the state untouched, when the order cannot be carried out.
func Apply(c Code, s *podium.State) bool {
	blue, red := s.Podium(podium.Blue), s.Podium(podium.Red)

	switch c {
	case KI:
		return move(blue, red)
	case LO:
		return move(red, blue)
	case SO:
		return swapTops(blue, red)
	case NI:
		return rotate(blue)
	case MA:
		return rotate(red)
	}

	return false
}

func move(from, to *podium.Stack) bool {
	t, err := from.Pop()
	if err != nil {
		return false
	}
	to.Push(t)
	return true
}

func swapTops(a, b *podium.Stack) bool {
	if a.IsEmpty() || b.IsEmpty() {
		return false
	}
	ta, _ := a.Pop()
	tb, _ := b.Pop()
	a.Push(tb)
	b.Push(ta)
	return true
}

// rotate brings the bottom token to the top, keeping the others in order.
// A single token is a successful no-op.
func rotate(s *podium.Stack) bool {
	if s.IsEmpty() {
		return false
	}
	if s.Size() == 1 {
		return true
	}

	tmp := podium.NewStack()
	for !s.IsEmpty() {
		t, _ := s.Pop()
		tmp.Push(t)
	}

	bottom, _ := tmp.Pop()

	for !tmp.IsEmpty() {
		t, _ := tmp.Pop()
		s.Push(t)
	}
	s.Push(bottom)

	return true
}

// Set is the ordered list of orders a game was configured with
type Set struct {
	codes []Code
}

// NewSet builds a Set, dropping duplicates and unknown codes
func NewSet(codes ...Code) Set {
	set := Set{codes: []Code{}}
	for _, c := range codes {
		if _, known := legends[c]; !known || set.Contains(c) {
			continue
		}
		set.codes = append(set.codes, c)
	}
	return set
}

// All is the Set of the five known orders
func All() Set {
	return NewSet(KI, LO, SO, NI, MA)
}

// ParseSet builds a Set from order names.
// The first unknown name is returned as a *SequenceError.
func ParseSet(names []string) (Set, error) {
	codes := []Code{}
	for _, n := range names {
		c, ok := ParseCode(n)
		if !ok {
			return Set{}, &SequenceError{Sequence: strings.Join(names, " "), Code: n}
		}
		codes = append(codes, c)
	}
	return NewSet(codes...), nil
}

func (s Set) Contains(c Code) bool {
	for _, have := range s.codes {
		if have == c {
			return true
		}
	}
	return false
}

// Codes returns the configured orders in configuration order
func (s Set) Codes() []Code {
	out := make([]Code, len(s.codes))
	copy(out, s.codes)
	return out
}

func (s Set) Len() int {
	return len(s.codes)
}

// Legend renders the configured orders, e.g. "KI (B -> R) | NI (B ^)"
func (s Set) Legend() string {
	parts := make([]string, len(s.codes))
	for i, c := range s.codes {
		parts[i] = c.Legend()
	}
	return strings.Join(parts, " | ")
}
