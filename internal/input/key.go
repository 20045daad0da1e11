// Package input turns the terminal's raw byte stream into discrete key
// events. Arrow keys arrive as 3-byte VT100 escape sequences; everything else
// is a single byte, classified as a control byte or a printable character.
package input

import (
	"fmt"
	"unicode"
)

// esc is the ASCII escape byte that opens a multi-byte sequence.
const esc = 0x1b

// Key identifies the kind of key a decoded event represents.
type Key uint8

const (
	// KeyRune is a printable character; Event.Rune carries it.
	KeyRune Key = iota
	// KeyControl is a bare control byte; Event.Byte carries it.
	KeyControl
	// KeyArrowUp through KeyArrowRight are the decoded cursor keys.
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	// KeyUnknownEscape is an escape sequence this decoder does not
	// recognize. Event.Byte carries the byte that ended the sequence, or
	// zero when the stream ended mid-sequence.
	KeyUnknownEscape
)

// String returns a short name for the key kind.
func (k Key) String() string {
	switch k {
	case KeyRune:
		return "rune"
	case KeyControl:
		return "control"
	case KeyArrowUp:
		return "up"
	case KeyArrowDown:
		return "down"
	case KeyArrowLeft:
		return "left"
	case KeyArrowRight:
		return "right"
	case KeyUnknownEscape:
		return "unknown-escape"
	default:
		return "invalid"
	}
}

// Event is one logical keypress. Exactly one payload field is meaningful,
// selected by Key: Rune for KeyRune, Byte for KeyControl and KeyUnknownEscape.
type Event struct {
	Key  Key
	Rune rune
	Byte byte
}

// RuneEvent builds an event for a printable character.
func RuneEvent(r rune) Event {
	return Event{Key: KeyRune, Rune: r}
}

// ControlEvent builds an event for a bare control byte.
func ControlEvent(b byte) Event {
	return Event{Key: KeyControl, Byte: b}
}

// IsControl reports whether the event is the given control byte.
func (e Event) IsControl(b byte) bool {
	return e.Key == KeyControl && e.Byte == b
}

// String renders the event for diagnostics.
func (e Event) String() string {
	switch e.Key {
	case KeyRune:
		return fmt.Sprintf("%q", e.Rune)
	case KeyControl:
		return fmt.Sprintf("control(%#x)", e.Byte)
	case KeyUnknownEscape:
		return fmt.Sprintf("unknown-escape(%#x)", e.Byte)
	default:
		return e.Key.String()
	}
}

// isControlByte classifies a raw byte the way the decoder does: anything that
// is not printable counts as control input.
func isControlByte(b byte) bool {
	return unicode.IsControl(rune(b))
}
