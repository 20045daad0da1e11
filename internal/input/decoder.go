package input

import (
	"errors"
	"io"
)

// Decoder reads key events off a byte stream, one blocking byte at a time. It
// never buffers past the current sequence: an arrow key costs exactly three
// reads, anything else one. A Decoder is single-use; once the underlying
// stream is exhausted it keeps returning io.EOF.
type Decoder struct {
	r   io.Reader
	buf [1]byte
}

// NewDecoder returns a Decoder over r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// Next blocks for the next logical keypress. It returns io.EOF when the
// stream ends with no bytes pending; any other error comes from the
// underlying reader.
func (d *Decoder) Next() (Event, error) {
	b, err := d.readByte()
	if err != nil {
		return Event{}, err
	}

	if b == esc {
		return d.decodeEscape()
	}
	if isControlByte(b) {
		return ControlEvent(b), nil
	}
	return RuneEvent(rune(b)), nil
}

// decodeEscape resolves the bytes after an escape. The sequences this editor
// understands are the cursor keys, ESC [ A..D; a lone escape at end of stream
// is still a keypress in its own right.
func (d *Decoder) decodeEscape() (Event, error) {
	b, err := d.readByte()
	if errors.Is(err, io.EOF) {
		return ControlEvent(esc), nil
	}
	if err != nil {
		return Event{}, err
	}
	if b != '[' {
		return Event{Key: KeyUnknownEscape, Byte: b}, nil
	}

	final, err := d.readByte()
	if errors.Is(err, io.EOF) {
		return Event{Key: KeyUnknownEscape}, nil
	}
	if err != nil {
		return Event{}, err
	}

	switch final {
	case 'A':
		return Event{Key: KeyArrowUp}, nil
	case 'B':
		return Event{Key: KeyArrowDown}, nil
	case 'C':
		return Event{Key: KeyArrowRight}, nil
	case 'D':
		return Event{Key: KeyArrowLeft}, nil
	default:
		return Event{Key: KeyUnknownEscape, Byte: final}, nil
	}
}

func (d *Decoder) readByte() (byte, error) {
	for {
		n, err := d.r.Read(d.buf[:])
		if n == 1 {
			return d.buf[0], nil
		}
		if err != nil {
			return 0, err
		}
	}
}
