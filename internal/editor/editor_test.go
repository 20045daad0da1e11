package editor

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/kimsnj/fanto/internal/terminal"
)

func TestRunMovesCursorAndQuits(t *testing.T) {
	// Down, down, Ctrl-Q.
	in := bytes.NewReader([]byte("\x1b[B\x1b[B\x11"))
	var out bytes.Buffer

	ed := New(terminal.WindowSize{Rows: 10, Cols: 40}, in, &out, nil)
	if err := ed.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if got := ed.Cursor(); (got != Position{X: 0, Y: 2}) {
		t.Errorf("final cursor = %+v, want {X:0 Y:2}", got)
	}
}

func TestRunStopsWhenInputEnds(t *testing.T) {
	in := bytes.NewReader([]byte("\x1b[C"))
	var out bytes.Buffer

	ed := New(terminal.WindowSize{Rows: 10, Cols: 40}, in, &out, nil)
	if err := ed.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := ed.Cursor(); (got != Position{X: 1, Y: 0}) {
		t.Errorf("final cursor = %+v, want {X:1 Y:0}", got)
	}
}

func TestRunDrawsBeforeFirstKey(t *testing.T) {
	in := bytes.NewReader(nil)
	var out bytes.Buffer

	ed := New(terminal.WindowSize{Rows: 4, Cols: 10}, in, &out, nil)
	if err := ed.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	output := out.String()
	if !strings.HasPrefix(output, "\x1b[2J\x1b[H") {
		t.Errorf("output does not start with a full clear: %q", output)
	}
	if !strings.Contains(output, "\x1b[?25l") {
		t.Error("no frame was drawn before input ended")
	}
}

func TestRunClearsScreenOnExit(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
	}{
		{"quit", []byte{0x11}},
		{"end of input", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			ed := New(terminal.WindowSize{Rows: 4, Cols: 10}, bytes.NewReader(tt.input), &out, nil)
			if err := ed.Run(); err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			if !strings.HasSuffix(out.String(), "\x1b[2J\x1b[H") {
				t.Errorf("output does not end with a full clear: %q", out.String())
			}
		})
	}
}

func TestRunRedrawsPerKey(t *testing.T) {
	in := bytes.NewReader([]byte("\x1b[C\x1b[C\x11"))
	var out bytes.Buffer

	ed := New(terminal.WindowSize{Rows: 4, Cols: 10}, in, &out, nil)
	if err := ed.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	// Initial frame plus one per arrow; the quit key draws nothing.
	if got := strings.Count(out.String(), "\x1b[?25l"); got != 3 {
		t.Errorf("drew %d frames, want 3", got)
	}
}

// brokenReader fails with a non-EOF error on the first read.
type brokenReader struct{ err error }

func (r brokenReader) Read([]byte) (int, error) { return 0, r.err }

func TestRunPropagatesReadError(t *testing.T) {
	readErr := errors.New("tty gone")
	var out bytes.Buffer

	ed := New(terminal.WindowSize{Rows: 4, Cols: 10}, brokenReader{err: readErr}, &out, nil)
	if err := ed.Run(); !errors.Is(err, readErr) {
		t.Errorf("Run() error = %v, want wrapped %v", err, readErr)
	}
}

// brokenWriter fails every write.
type brokenWriter struct{ err error }

func (w brokenWriter) Write(p []byte) (int, error) { return 0, w.err }

func TestRunPropagatesWriteError(t *testing.T) {
	writeErr := errors.New("output closed")

	ed := New(terminal.WindowSize{Rows: 4, Cols: 10}, bytes.NewReader([]byte{0x11}), brokenWriter{err: writeErr}, nil)
	if err := ed.Run(); !errors.Is(err, writeErr) {
		t.Errorf("Run() error = %v, want wrapped %v", err, writeErr)
	}
}
