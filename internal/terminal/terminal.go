// Package terminal owns the controlling terminal's mode for the lifetime of a
// session. It captures the original attributes once, switches to raw mode, and
// restores the capture on shutdown; no other package writes terminal state.
package terminal

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Terminal errors.
var (
	// ErrNotTerminal indicates the input stream is not a terminal.
	ErrNotTerminal = errors.New("standard input is not a terminal")

	// ErrZeroWindow indicates the terminal reported a zero-sized window,
	// typically because output is redirected.
	ErrZeroWindow = errors.New("terminal reports a zero-sized window")
)

// WindowSize is the terminal's visible size in character cells.
// Both dimensions are strictly positive for a usable session.
type WindowSize struct {
	Rows int
	Cols int
}

// Terminal holds the file pair for a controlling terminal together with the
// attribute snapshot taken before raw mode was enabled. The snapshot is
// immutable after Open; Restore writes it back verbatim.
type Terminal struct {
	in   *os.File
	out  *os.File
	orig unix.Termios
}

// Open verifies that in is a terminal and captures its current attributes.
// The capture is the only state Restore ever writes back, so Open must run
// before any mode change.
func Open(in, out *os.File) (*Terminal, error) {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return nil, ErrNotTerminal
	}

	attrs, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return nil, fmt.Errorf("read terminal attributes: %w", err)
	}

	return &Terminal{in: in, out: out, orig: *attrs}, nil
}

// EnableRawMode switches the terminal to raw mode: no echo, no line
// buffering, no signal keys, no flow control, no output post-processing,
// 8-bit characters. The original attributes stay untouched in the snapshot.
func (t *Terminal) EnableRawMode() error {
	raw := t.orig
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	raw.Oflag &^= unix.OPOST
	raw.Cflag |= unix.CS8
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG

	if err := unix.IoctlSetTermios(int(t.in.Fd()), ioctlWriteTermios, &raw); err != nil {
		return fmt.Errorf("apply raw terminal attributes: %w", err)
	}
	return nil
}

// Restore writes the snapshot captured by Open back to the terminal. It must
// run on every exit path; a shell left in raw mode is unusable.
func (t *Terminal) Restore() error {
	if err := unix.IoctlSetTermios(int(t.in.Fd()), ioctlWriteTermios, &t.orig); err != nil {
		return fmt.Errorf("restore terminal attributes: %w", err)
	}
	return nil
}

// WindowSize queries the terminal for its current dimensions. A zero row or
// column count is ErrZeroWindow: the session cannot lay out a frame inside a
// degenerate window, so callers treat it as a startup failure rather than
// substituting a default.
func (t *Terminal) WindowSize() (WindowSize, error) {
	ws, err := unix.IoctlGetWinsize(int(t.out.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return WindowSize{}, fmt.Errorf("query window size: %w", err)
	}
	if ws.Row == 0 || ws.Col == 0 {
		return WindowSize{}, ErrZeroWindow
	}
	return WindowSize{Rows: int(ws.Row), Cols: int(ws.Col)}, nil
}
