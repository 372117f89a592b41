package order

import (
	"errors"
	"fmt"

	"github.com/minaorangina/crazycircus/podium"
)

// ErrMalformed is matched by every *SequenceError
var ErrMalformed = errors.New("malformed sequence")

// SequenceError reports the first order of a sequence that could not be read
type SequenceError struct {
	Sequence string
	Code     string
}

func (e *SequenceError) Error() string {
	return fmt.Sprintf("order %s does not exist", e.Code)
}

func (e *SequenceError) Is(target error) bool {
	return target == ErrMalformed
}

// Result classifies the outcome of running a sequence
type Result int

const (
	OK Result = iota
	Blocked
	Malformed
)

var resultNames = []string{"OK", "Blocked", "Malformed"}

func (r Result) String() string {
	if r < OK || r > Malformed {
		return ""
	}
	return resultNames[r]
}

// Outcome describes what happened when a sequence ran.
// Failed is set when Result is Blocked, and Applied is then also the index of
// the failing order. Unknown is set when Result is Malformed.
type Outcome struct {
	Result  Result
	Applied int
	Failed  Code
	Unknown string
}

// Err returns the *SequenceError behind a Malformed outcome, nil otherwise
func (o Outcome) Err(seq string) error {
	if o.Result != Malformed {
		return nil
	}
	return &SequenceError{Sequence: seq, Code: o.Unknown}
}

// FirstUnknown scans a sequence two characters at a time and returns the
// first piece that is not a known order. A dangling last character counts.
// Characters are runes, so the piece is always valid UTF-8.
func FirstUnknown(seq string) (string, bool) {
	chars := []rune(seq)
	for i := 0; i < len(chars); i += codeWidth {
		end := i + codeWidth
		if end > len(chars) {
			end = len(chars)
		}
		piece := string(chars[i:end])
		if _, ok := ParseCode(piece); !ok {
			return piece, true
		}
	}
	return "", false
}

// Parse splits a sequence such as "KIMALO" into its orders
func Parse(seq string) ([]Code, error) {
	if unknown, found := FirstUnknown(seq); found {
		return nil, &SequenceError{Sequence: seq, Code: unknown}
	}

	codes := make([]Code, 0, len(seq)/codeWidth)
	for i := 0; i < len(seq); i += codeWidth {
		c, _ := ParseCode(seq[i : i+codeWidth])
		codes = append(codes, c)
	}
	return codes, nil
}

// Execute runs every order of seq against s, left to right.
//
// A malformed sequence is rejected before anything runs. Otherwise orders are
// applied until one cannot be carried out; the ones before it stay applied, so
// callers that need all-or-nothing must pass a copy.
func Execute(seq string, s *podium.State) Outcome {
	return ExecuteIn(seq, s, All())
}

// ExecuteIn is Execute restricted to the orders of allowed.
// A known order missing from allowed makes the sequence Malformed.
func ExecuteIn(seq string, s *podium.State, allowed Set) Outcome {
	codes, err := Parse(seq)
	if err != nil {
		var seqErr *SequenceError
		errors.As(err, &seqErr)
		return Outcome{Result: Malformed, Unknown: seqErr.Code}
	}

	for _, c := range codes {
		if !allowed.Contains(c) {
			return Outcome{Result: Malformed, Unknown: c.String()}
		}
	}

	for i, c := range codes {
		if !Apply(c, s) {
			return Outcome{Result: Blocked, Applied: i, Failed: c}
		}
	}

	return Outcome{Result: OK, Applied: len(codes)}
}
