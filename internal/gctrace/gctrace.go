// Package gctrace provides optional trace-listener wiring for
// parse.LRParser/parse.LLParser (spec §4 "Trace/observability hook"): a
// helper that turns a --trace flag and a --trace-file path into a
// func(string) listener compatible with SetTraceListener, plus an
// interactive line-by-line replay of a recorded trace.
package gctrace

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"github.com/google/uuid"
	"github.com/spf13/pflag"
)

// Options holds the trace-related flags a caller wires into its own
// pflag.FlagSet (this package never touches os.Args itself; a CLI front end
// is out of scope, mirroring cmd/tqi/main.go's own direct pflag.BoolP/
// StringP package-level var pattern reused here as a non-CLI option
// struct).
type Options struct {
	Enabled bool
	File    string
}

// RegisterFlags adds --trace and --trace-file to fs, returning an *Options
// that reflects whatever fs.Parse later fills in.
func RegisterFlags(fs *pflag.FlagSet) *Options {
	opts := &Options{}
	fs.BoolVarP(&opts.Enabled, "trace", "t", false, "emit a line per parser action")
	fs.StringVar(&opts.File, "trace-file", "", "write trace lines to this file instead of stderr")
	return opts
}

// Listener is a trace destination: a run id tag prepended to every line,
// plus the io.Writer lines are written to.
type Listener struct {
	RunID uuid.UUID
	w     io.Writer
	close func() error
}

// NewListener builds the func(string) callback to pass to
// parse.LRParser.SetTraceListener / parse.LLParser.SetTraceListener,
// according to opts. If opts.Enabled is false, the returned function is
// nil, which both drivers treat as "tracing off". Close must be called
// when the caller is done with the returned function, to flush/close a
// --trace-file destination.
func NewListener(opts *Options) (fn func(string), closeFn func() error, err error) {
	if opts == nil || !opts.Enabled {
		return nil, func() error { return nil }, nil
	}

	l := &Listener{RunID: uuid.New(), w: os.Stderr, close: func() error { return nil }}

	if opts.File != "" {
		f, ferr := os.Create(opts.File)
		if ferr != nil {
			return nil, nil, fmt.Errorf("open trace file: %w", ferr)
		}
		l.w = f
		l.close = f.Close
	}

	return func(line string) {
		fmt.Fprintf(l.w, "[%s] %s\n", l.RunID, line)
	}, l.close, nil
}

// TraceSession lets a test or downstream consumer step through a recorded
// trace log line-by-line using readline's line editing, mirroring the
// teacher's own internal/input.InteractiveCommandReader use of
// chzyer/readline for its tqi interactive console.
type TraceSession struct {
	rl    *readline.Instance
	lines *bufio.Scanner
}

// NewTraceSession opens an interactive replay over a trace log previously
// produced by NewListener (read from src), prompting "next> " once per
// readline-read keystroke sequence before printing the next trace line.
func NewTraceSession(src io.Reader) (*TraceSession, error) {
	rl, err := readline.NewEx(&readline.Config{Prompt: "next> "})
	if err != nil {
		return nil, fmt.Errorf("create readline config: %w", err)
	}
	return &TraceSession{rl: rl, lines: bufio.NewScanner(src)}, nil
}

// Close tears down the underlying readline instance.
func (ts *TraceSession) Close() error {
	return ts.rl.Close()
}

// Next blocks for one line of user input (any line, including empty),
// then returns the next trace line, or io.EOF once the trace log is
// exhausted.
func (ts *TraceSession) Next() (string, error) {
	if _, err := ts.rl.Readline(); err != nil {
		return "", err
	}
	if !ts.lines.Scan() {
		if err := ts.lines.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return ts.lines.Text(), nil
}
