// Package engine runs a game of Crazy Circus over a text stream: it reads
// "NAME SEQUENCE" lines and writes what happens, as text or as JSON lines.
package engine

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/minaorangina/crazycircus/game"
)

var ErrNilGame = errors.New("game is nil")

// GameEngineOpts configures a GameEngine
type GameEngineOpts struct {
	Game   *game.Circus
	In     io.Reader
	Out    io.Writer
	JSON   bool
	Color  bool
	Logger *log.Logger
}

// GameEngine feeds players' answers to a game and reports the outcome
type GameEngine struct {
	game     *game.Circus
	in       io.Reader
	renderer renderer
	logger   *log.Logger
}

// NewGameEngine constructs a GameEngine
func NewGameEngine(opts GameEngineOpts) (*GameEngine, error) {
	if opts.Game == nil {
		return nil, ErrNilGame
	}

	in := opts.In
	if in == nil {
		in = strings.NewReader("")
	}
	out := opts.Out
	if out == nil {
		out = io.Discard
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	var r renderer
	if opts.JSON {
		r = newJSONRenderer(out)
	} else {
		r = newTextRenderer(out, NewStyles(out, opts.Color))
	}

	return &GameEngine{
		game:     opts.Game,
		in:       in,
		renderer: r,
		logger:   logger,
	}, nil
}

// MaxLineLength is the longest input line read as an attempt. Longer lines
// are skipped.
const MaxLineLength = 64 * 1024

// Run plays the game until the deck runs out, the input ends or ctx is
// cancelled, then writes the final scores. Each line is resolved before the
// next one is read; cancelling ctx stops the game even while waiting for one.
func (ge *GameEngine) Run(ctx context.Context) error {
	if err := ge.renderer.legend(ge.game.Orders().Legend()); err != nil {
		return err
	}

	events, err := ge.game.Start()
	if err != nil {
		return fmt.Errorf("could not start game: %w", err)
	}
	if err := ge.renderer.events(events, ge.game.Duel()); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	lines := readLines(ctx, ge.in)

	var inputErr error
	for !ge.game.GameOver() {
		if ctx.Err() != nil {
			ge.logger.Printf("stopping: %v", ctx.Err())
			break
		}

		var line inputLine
		var ok bool
		select {
		case <-ctx.Done():
			ge.logger.Printf("stopping: %v", ctx.Err())
		case line, ok = <-lines:
		}
		if !ok {
			break
		}
		if line.err != nil {
			inputErr = line.err
			break
		}
		if line.tooLong {
			ge.logger.Printf("skipped a line longer than %d bytes", MaxLineLength)
			continue
		}

		name, sequence, ok := parseLine(line.text)
		if !ok {
			continue
		}

		events, err := ge.game.Submit(name, sequence)
		if errors.Is(err, game.ErrGameOver) {
			break
		}
		if err != nil {
			ge.logger.Printf("rejected %q: %v", line.text, err)
		}
		if err := ge.renderer.events(events, ge.game.Duel()); err != nil {
			return err
		}
	}

	if err := ge.renderer.events(ge.game.Stop(), ge.game.Duel()); err != nil {
		return err
	}
	if err := ge.renderer.standings(ge.game.Standings()); err != nil {
		return err
	}

	return inputErr
}

type inputLine struct {
	text    string
	tooLong bool
	err     error
}

// readLines reads in on its own goroutine and hands over one line at a time.
// The channel is closed at end of input, after a read error or once ctx is
// done.
func readLines(ctx context.Context, in io.Reader) <-chan inputLine {
	lines := make(chan inputLine)

	go func() {
		defer close(lines)

		send := func(l inputLine) bool {
			select {
			case lines <- l:
				return true
			case <-ctx.Done():
				return false
			}
		}

		reader := bufio.NewReader(in)
		for {
			text, tooLong, err := readLine(reader)
			if text != "" || tooLong {
				if !send(inputLine{text: text, tooLong: tooLong}) {
					return
				}
			}
			if err != nil {
				if err != io.EOF {
					send(inputLine{err: err})
				}
				return
			}
		}
	}()

	return lines
}

// readLine returns the next line without its line ending. Only the first
// MaxLineLength bytes are kept; the rest of a longer line is read and dropped.
func readLine(r *bufio.Reader) (string, bool, error) {
	var line []byte
	size := 0
	for {
		chunk, err := r.ReadSlice('\n')
		if err == nil {
			chunk = chunk[:len(chunk)-1]
		}
		size += len(chunk)
		if size <= MaxLineLength {
			line = append(line, chunk...)
		}
		if err == bufio.ErrBufferFull {
			continue
		}
		return strings.TrimSuffix(string(line), "\r"), size > MaxLineLength, err
	}
}

// parseLine splits "NAME SEQUENCE". Words after the sequence are ignored;
// blank lines are skipped.
func parseLine(line string) (string, string, bool) {
	fields := strings.Fields(line)
	switch len(fields) {
	case 0:
		return "", "", false
	case 1:
		return fields[0], "", true
	}
	return fields[0], fields[1], true
}
