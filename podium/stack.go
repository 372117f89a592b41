package podium

import "errors"

// ErrEmptyStack is returned when popping or peeking an empty Stack
var ErrEmptyStack = errors.New("stack is empty")

// Token names one animal standing on a podium
type Token string

// Stack is a LIFO pile of tokens.
// Items are stored bottom first; only the top is reachable.
type Stack struct {
	items []Token
}

// NewStack builds a stack by pushing tokens in the order given,
// so the first token ends up at the bottom.
func NewStack(bottomToTop ...Token) Stack {
	s := Stack{items: make([]Token, 0, len(bottomToTop))}
	for _, t := range bottomToTop {
		s.Push(t)
	}
	return s
}

// Push puts a token on top of the stack
func (s *Stack) Push(t Token) {
	s.items = append(s.items, t)
}

// Pop removes and returns the top token
func (s *Stack) Pop() (Token, error) {
	if s.IsEmpty() {
		return "", ErrEmptyStack
	}
	last := len(s.items) - 1
	t := s.items[last]
	s.items = s.items[:last]
	return t, nil
}

// Peek returns the top token without removing it
func (s *Stack) Peek() (Token, error) {
	if s.IsEmpty() {
		return "", ErrEmptyStack
	}
	return s.items[len(s.items)-1], nil
}

func (s *Stack) IsEmpty() bool {
	return len(s.items) == 0
}

func (s *Stack) Size() int {
	return len(s.items)
}

// Clear empties the stack and releases its storage
func (s *Stack) Clear() {
	s.items = nil
}

// Tokens returns a snapshot of the stack, top first.
// The returned slice is a copy.
func (s *Stack) Tokens() []Token {
	out := make([]Token, len(s.items))
	for i, t := range s.items {
		out[len(s.items)-1-i] = t
	}
	return out
}
