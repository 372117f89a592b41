package podium

import (
	"fmt"
	"strings"
)

// Color identifies one of the two podiums
type Color int

const (
	Blue Color = iota
	Red
)

var colorNames = []string{"BLUE", "RED"}

func (c Color) String() string {
	if c < Blue || c > Red {
		return ""
	}
	return colorNames[c]
}

// State is one arrangement of the animals across the Blue and Red podiums
type State struct {
	blue Stack
	red  Stack
}

// NewState builds a State from two bottom-to-top token lists
func NewState(blue, red []Token) State {
	return State{
		blue: NewStack(blue...),
		red:  NewStack(red...),
	}
}

// Podium gives mutable access to one of the two stacks
func (s *State) Podium(c Color) *Stack {
	if c == Red {
		return &s.red
	}
	return &s.blue
}

// Tokens returns a top-to-bottom snapshot of one podium
func (s *State) Tokens(c Color) []Token {
	return s.Podium(c).Tokens()
}

// Len is the number of tokens on both podiums
func (s *State) Len() int {
	return s.blue.Size() + s.red.Size()
}

// Copy returns a deep copy. Both podiums keep their top-to-bottom order.
func (s *State) Copy() State {
	return State{
		blue: copyStack(&s.blue),
		red:  copyStack(&s.red),
	}
}

// copyStack reads the source top first, then pushes from the bottom of
// that buffer so the copy is not reversed.
func copyStack(src *Stack) Stack {
	buf := src.Tokens()
	dst := Stack{items: make([]Token, 0, len(buf))}
	for i := len(buf) - 1; i >= 0; i-- {
		dst.Push(buf[i])
	}
	return dst
}

// Equal reports whether both podiums hold the same tokens in the same order
func (s *State) Equal(other *State) bool {
	if other == nil {
		return false
	}
	return sameStack(&s.blue, &other.blue) && sameStack(&s.red, &other.red)
}

func sameStack(a, b *Stack) bool {
	if a.Size() != b.Size() {
		return false
	}
	at, bt := a.Tokens(), b.Tokens()
	for i := range at {
		if at[i] != bt[i] {
			return false
		}
	}
	return true
}

// String lists each podium bottom first, e.g. "blue=[LION OURS] red=[ELEPHANT]"
func (s State) String() string {
	return fmt.Sprintf("blue=%s red=%s", bottomFirst(&s.blue), bottomFirst(&s.red))
}

func bottomFirst(st *Stack) string {
	top := st.Tokens()
	names := make([]string, len(top))
	for i, t := range top {
		names[len(top)-1-i] = string(t)
	}
	return "[" + strings.Join(names, " ") + "]"
}
