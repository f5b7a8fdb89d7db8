// Package types holds the value types shared by the grammar, lex, automaton,
// and parse packages: token classes, tokens and their source locations,
// parse trees, the token-stream interface the parser drivers consume, and
// the parser-mode tag. None of these types carry behavior specific to any
// one parsing discipline; they are the common currency everything else
// passes around.
package types

import "strings"

// TokenClass identifies a terminal symbol of the grammar from the lexer's
// point of view. Terminals synthesized from quoted literals in the grammar
// description (spec §4.1 step 8) and terminals declared explicitly in the
// lex grammar both resolve to a TokenClass.
type TokenClass interface {
	// ID returns the ID of the token class. The ID must uniquely identify the
	// token within all terminals of a grammar.
	ID() string

	// Human returns a human-readable name for the token class, for use in
	// contexts such as error reporting.
	Human() string

	// Equal returns whether the TokenClass equals another. If two IDs are the
	// same, Equal must return true.
	Equal(o any) bool
}

type simpleTokenClass string

func (class simpleTokenClass) ID() string {
	return strings.ToLower(string(class))
}

func (class simpleTokenClass) Human() string {
	return string(class)
}

func (class simpleTokenClass) Equal(o any) bool {
	other, ok := o.(TokenClass)
	if !ok {
		otherPtr, ok := o.(*TokenClass)
		if !ok {
			return false
		}
		if otherPtr == nil {
			return false
		}
		other = *otherPtr
	}

	return other.ID() == class.ID()
}

const (
	// TokenUndefined is a placeholder class for a token with no assigned
	// class. The tokenizer never emits it.
	TokenUndefined = simpleTokenClass("undefined_token")

	// TokenEndOfText is the token class of the synthetic EOF token ($ in
	// spec terms) emitted once the tokenizer's cursor reaches the end of
	// input.
	TokenEndOfText = simpleTokenClass("$")

	// TokenError is the token class of a token produced in place of a real
	// match when the tokenizer hits UnexpectedInput; its lexeme carries the
	// diagnostic message (spec §7 "LexError / UnexpectedInput").
	TokenError = simpleTokenClass("error")
)

// MakeDefaultClass takes a string and returns a TokenClass that both uses the
// lower-case version of the string as its ID and the un-modified string as
// its human-readable name.
func MakeDefaultClass(s string) TokenClass {
	return simpleTokenClass(s)
}
