package editor

import (
	"github.com/kimsnj/fanto/internal/input"
	"github.com/kimsnj/fanto/internal/terminal"
)

// keyQuit is Ctrl-Q, the only key that ends a session.
const keyQuit = 'q' & 0x1f

// Signal tells the session loop whether to keep going after a key event.
type Signal uint8

const (
	// SignalContinue keeps the session running.
	SignalContinue Signal = iota
	// SignalQuit ends the session cleanly.
	SignalQuit
)

// Position is a zero-based cursor location. Apply keeps it inside
// [0, Cols-1] x [0, Rows-1] by clamping at the edges; it never wraps.
type Position struct {
	X int
	Y int
}

// Apply updates the position for one key event and reports whether the
// session should continue. Arrow keys move one cell and saturate at the
// window edges. Ctrl-Q quits; every other control byte, character, and
// unrecognized escape leaves the cursor untouched.
func (p *Position) Apply(ev input.Event, size terminal.WindowSize) Signal {
	switch ev.Key {
	case input.KeyArrowUp:
		if p.Y > 0 {
			p.Y--
		}
	case input.KeyArrowDown:
		if p.Y < size.Rows-1 {
			p.Y++
		}
	case input.KeyArrowLeft:
		if p.X > 0 {
			p.X--
		}
	case input.KeyArrowRight:
		if p.X < size.Cols-1 {
			p.X++
		}
	case input.KeyControl:
		if ev.Byte == keyQuit {
			return SignalQuit
		}
	}
	return SignalContinue
}
