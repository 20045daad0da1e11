// Package main is the entry point for the fanto editor.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/kimsnj/fanto/internal/editor"
	"github.com/kimsnj/fanto/internal/terminal"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type options struct {
	LogPath  string
	LogLevel string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	term, err := terminal.Open(os.Stdin, os.Stdout)
	if err != nil {
		reportError(err)
		return 1
	}

	// Geometry is read before raw mode so a redirected or zero-sized
	// terminal fails without ever touching terminal state.
	size, err := term.WindowSize()
	if err != nil {
		reportError(err)
		return 1
	}

	logger, closeLog, err := newLogger(opts)
	if err != nil {
		reportError(err)
		return 1
	}
	defer closeLog()

	if err := runSession(term, size, logger); err != nil {
		reportError(err)
		return 1
	}
	return 0
}

// runSession is the raw-mode scope: the terminal is restored on every way
// out of this function, including a panic unwinding through it. A restore
// failure surfaces only when nothing worse already went wrong.
func runSession(term *terminal.Terminal, size terminal.WindowSize, logger *editor.Logger) (err error) {
	if err = term.EnableRawMode(); err != nil {
		return err
	}
	defer func() {
		if rerr := term.Restore(); rerr != nil && err == nil {
			err = rerr
		}
	}()

	return editor.New(size, os.Stdin, os.Stdout, logger).Run()
}

// newLogger opens the session log file, if one was requested. The returned
// close function is safe to call either way.
func newLogger(opts options) (*editor.Logger, func(), error) {
	if opts.LogPath == "" {
		return nil, func() {}, nil
	}

	f, err := os.OpenFile(opts.LogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, func() {}, fmt.Errorf("open log file: %w", err)
	}

	logger := editor.NewLogger(f, editor.ParseLogLevel(opts.LogLevel))
	return logger, func() { f.Close() }, nil
}

// reportError prints the error and its cause chain to stderr.
func reportError(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	for err = errors.Unwrap(err); err != nil; err = errors.Unwrap(err) {
		fmt.Fprintf(os.Stderr, "caused by: %v\n", err)
	}
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.LogPath, "log", "", "Path to session log file (logging disabled when empty)")
	flag.StringVar(&opts.LogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Fanto - a minimal terminal editor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: fanto [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nKeys:\n")
		fmt.Fprintf(os.Stderr, "  Arrow keys        Move the cursor\n")
		fmt.Fprintf(os.Stderr, "  Ctrl+Q            Quit\n")
	}

	flag.Parse()

	if showVersion {
		printVersion(os.Stdout)
		os.Exit(0)
	}

	return opts
}

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "fanto %s\n", version)
	fmt.Fprintf(w, "  commit: %s\n", commit)
	fmt.Fprintf(w, "  built:  %s\n", date)
}
