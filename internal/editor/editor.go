// Package editor drives a session: it pulls key events off the input
// decoder, applies them to the cursor, and redraws the screen after every
// state change until quit or end of input. Terminal mode changes stay with
// the caller; by the time an Editor runs, the terminal is already raw, and
// the caller restores it after Run returns.
package editor

import (
	"errors"
	"fmt"
	"io"

	"github.com/kimsnj/fanto/internal/input"
	"github.com/kimsnj/fanto/internal/screen"
	"github.com/kimsnj/fanto/internal/terminal"
)

// Editor holds the state for one interactive session. The window size is
// captured once and treated as constant for the session's lifetime.
type Editor struct {
	size   terminal.WindowSize
	cursor Position
	keys   *input.Decoder
	out    io.Writer
	logger *Logger
}

// New creates an editor reading keys from in and writing frames to out.
// size must have strictly positive dimensions; the terminal layer rejects
// anything else before a session starts. A nil logger disables diagnostics.
func New(size terminal.WindowSize, in io.Reader, out io.Writer, logger *Logger) *Editor {
	return &Editor{
		size:   size,
		keys:   input.NewDecoder(in),
		out:    out,
		logger: logger,
	}
}

// Cursor returns the current cursor position.
func (e *Editor) Cursor() Position {
	return e.cursor
}

// Run executes the session loop: initial clear and draw, then
// read-decode-apply-redraw until Ctrl-Q or input exhaustion. Both are clean
// stops; read and write failures propagate. On every exit the screen is
// wiped so the shell prompt comes back to a blank terminal.
func (e *Editor) Run() error {
	e.logger.Info("session start, window %dx%d", e.size.Rows, e.size.Cols)

	if _, err := e.out.Write(screen.Clear()); err != nil {
		return fmt.Errorf("clear screen: %w", err)
	}
	defer func() {
		// Best effort; the write target may be the failed one.
		_, _ = e.out.Write(screen.Clear())
	}()

	if err := e.draw(); err != nil {
		return err
	}

	for {
		ev, err := e.keys.Next()
		if errors.Is(err, io.EOF) {
			e.logger.Info("input exhausted")
			return nil
		}
		if err != nil {
			return fmt.Errorf("read key: %w", err)
		}

		if e.cursor.Apply(ev, e.size) == SignalQuit {
			e.logger.Info("quit requested")
			return nil
		}
		if ev.Key == input.KeyControl || ev.Key == input.KeyUnknownEscape {
			e.logger.Debug("ignored key %s", ev)
		}

		if err := e.draw(); err != nil {
			return err
		}
	}
}

// draw flushes one complete frame for the current state.
func (e *Editor) draw() error {
	if _, err := e.out.Write(screen.Frame(e.size, e.cursor.X, e.cursor.Y)); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}
