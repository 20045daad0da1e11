// Package screen builds the VT100 byte buffers the editor writes to the
// terminal. Frame is a pure function of the window size and cursor position;
// each call assembles a fresh buffer that the caller flushes in one write, so
// the terminal never sees a partially drawn frame.
package screen

import (
	"bytes"
	"fmt"

	"github.com/mattn/go-runewidth"

	"github.com/kimsnj/fanto/internal/terminal"
)

// banner is the fixed version line shown on the placeholder screen.
const banner = "Fanto editor -- version 0.1.0"

// VT100 control sequences.
const (
	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"
	cursorHome  = "\x1b[H"
	eraseLine   = "\x1b[K"
	eraseScreen = "\x1b[2J"
)

// Frame renders the placeholder view for one redraw: every row a tilde
// marker, except the row one third down which carries the centered banner,
// with the cursor parked at the zero-based position (x, y). Rows are cleared
// with erase-to-end-of-line rather than a full-screen erase so the frame
// replaces the previous one without flicker.
func Frame(size terminal.WindowSize, x, y int) []byte {
	var buf bytes.Buffer

	buf.WriteString(hideCursor)
	buf.WriteString(cursorHome)

	for row := 0; row < size.Rows; row++ {
		if row == size.Rows/3 {
			writeBanner(&buf, size.Cols)
		} else {
			buf.WriteByte('~')
		}
		buf.WriteString(eraseLine)
		if row < size.Rows-1 {
			buf.WriteString("\r\n")
		}
	}

	// Terminal cursor addressing is one-indexed.
	fmt.Fprintf(&buf, "\x1b[%d;%dH", y+1, x+1)
	buf.WriteString(showCursor)

	return buf.Bytes()
}

// writeBanner centers the banner within cols cells, filling the full row:
// a leading tilde when there is room, space padding on both sides, and
// display-width truncation when the window is narrower than the banner.
func writeBanner(buf *bytes.Buffer, cols int) {
	text := banner
	width := runewidth.StringWidth(text)
	if width > cols {
		text = runewidth.Truncate(text, cols, "")
		width = runewidth.StringWidth(text)
	}

	lead := (cols - width) / 2
	if lead > 0 {
		buf.WriteByte('~')
		for i := 1; i < lead; i++ {
			buf.WriteByte(' ')
		}
	}
	buf.WriteString(text)
	for i := lead + width; i < cols; i++ {
		buf.WriteByte(' ')
	}
}

// Clear is the full-screen erase used at session start and end: wipe
// everything and park the cursor at the origin. The per-frame path never
// uses it.
func Clear() []byte {
	return []byte(eraseScreen + cursorHome)
}
