// Package gcerrors defines the error kinds surfaced across grammar
// normalization, table construction, and parsing (spec §7 "Error handling
// design"). It follows the split the teacher repo uses for its own
// domain errors (internal/tqerrors's InterpreterError, and the ictiobus
// package's own icterrors, whose shape survives only at call sites as
// icterrors.NewSyntaxErrorFromToken(msg, token).FullMessage()): every error
// here carries both a short Error() string suitable for logs and a longer
// FullMessage() suitable for showing a human the full diagnostic context.
package gcerrors

import (
	"fmt"
	"strings"

	"github.com/dekarrin/gocc/internal/util"
	"github.com/dekarrin/gocc/types"
)

// Kind distinguishes the error categories spec §7 names.
type Kind string

const (
	KindGrammar  Kind = "grammar"
	KindLex      Kind = "lex"
	KindParse    Kind = "parse"
	KindConflict Kind = "conflict"
	KindInternal Kind = "internal"
)

// gcError is the concrete type behind every constructor in this package.
type gcError struct {
	kind    Kind
	msg     string
	full    string
	wrapped error
}

func (e *gcError) Error() string {
	return e.msg
}

// FullMessage returns the longer, multi-line diagnostic rendering, including
// whatever context (state, production, token, offset) the constructor was
// given. Falls back to Error() if no extra context was recorded.
func (e *gcError) FullMessage() string {
	if e.full == "" {
		return e.msg
	}
	return e.full
}

func (e *gcError) Unwrap() error {
	return e.wrapped
}

// Kind returns the error category, for callers that want to switch on it
// without a type assertion per kind.
func (e *gcError) Kind() Kind {
	return e.kind
}

// Grammar reports a malformed grammar description: undefined start symbol,
// unknown precedence tag, inconsistent token list, empty bnf, or similar
// (spec §4.1 "Errors").
func Grammar(format string, a ...interface{}) error {
	msg := fmt.Sprintf(format, a...)
	return &gcError{kind: KindGrammar, msg: msg, full: "grammar error: " + msg}
}

// UnexpectedInput reports that no lex rule matched at the given cursor
// position (spec §7 "LexError / UnexpectedInput").
func UnexpectedInput(offset, line, column int, ch rune, fullLine string) error {
	msg := fmt.Sprintf("unexpected input %q at line %d, col %d", ch, line, column)
	full := msg
	if fullLine != "" {
		full += fmt.Sprintf("\n  %s\n  %s^", fullLine, strings.Repeat(" ", column-1))
	}
	return &gcError{kind: KindLex, msg: msg, full: full}
}

// NewSyntaxErrorFromToken reports that the parser had no ACTION/TABLE entry
// for the current token in the current state/non-terminal (spec §7
// "ParseError / UnexpectedToken"). It mirrors the teacher's
// icterrors.NewSyntaxErrorFromToken call sites (internal/ictiobus/parse/
// lr.go, ll1.go) exactly: a human message plus the offending token.
func NewSyntaxErrorFromToken(msg string, tok types.Token) error {
	full := msg
	loc := tok.Location()
	if !loc.Zero() {
		full = fmt.Sprintf("%s (%s)", msg, loc.String())
	}
	if tok.FullLine() != "" {
		col := loc.StartColumn
		if col < 1 {
			col = 1
		}
		full += fmt.Sprintf("\n  %s\n  %s^", tok.FullLine(), strings.Repeat(" ", col-1))
	}
	return &gcError{kind: KindParse, msg: msg, full: full}
}

// Conflict reports an unresolved shift/reduce, reduce/reduce, or FIRST/FIRST
// conflict discovered at table-construction time (spec §7 "ConflictError").
// The message is the cell followed by the candidates joined with " vs ",
// assembled in a local UndoableStringBuilder; it is fixed once returned.
func Conflict(cell string, candidates ...string) error {
	var usb util.UndoableStringBuilder
	usb.WriteString(fmt.Sprintf("conflict at %s: ", cell))
	usb.WriteString(strings.Join(candidates, " vs "))
	msg := usb.String()
	return &gcError{kind: KindConflict, msg: msg, full: msg}
}

// Internal reports a violated invariant: a state reachable in table
// construction that spec.md guarantees cannot occur (spec §7
// "InternalError").
func Internal(format string, a ...interface{}) error {
	msg := fmt.Sprintf(format, a...)
	return &gcError{kind: KindInternal, msg: msg, full: "internal error (this is a bug): " + msg}
}

// FullMessage extracts the long-form diagnostic message from any error
// produced by this package, falling back to err.Error() for any other error
// type. Mirrors the teacher's tqerrors.GameMessage dispatch helper.
func FullMessage(err error) string {
	if fm, ok := err.(interface{ FullMessage() string }); ok {
		return fm.FullMessage()
	}
	return err.Error()
}

// Is reports whether err (or anything it wraps) is a gcerrors error of the
// given kind.
func Is(err error, k Kind) bool {
	for err != nil {
		if ge, ok := err.(*gcError); ok {
			if ge.kind == k {
				return true
			}
			err = ge.wrapped
			continue
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
