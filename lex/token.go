package lex

import (
	"fmt"

	"github.com/dekarrin/gocc/types"
)

// tokenizerToken is the types.Token implementation produced by Tokenizer.
type tokenizerToken struct {
	class    types.TokenClass
	lexeme   string
	loc      types.Location
	fullLine string
}

func (t tokenizerToken) Class() types.TokenClass { return t.class }
func (t tokenizerToken) Lexeme() string          { return t.lexeme }
func (t tokenizerToken) Location() types.Location { return t.loc }
func (t tokenizerToken) FullLine() string        { return t.fullLine }

func (t tokenizerToken) String() string {
	if t.loc.Zero() {
		return fmt.Sprintf("%s %q", t.class.ID(), t.lexeme)
	}
	return fmt.Sprintf("%s %q @ %s", t.class.ID(), t.lexeme, t.loc.String())
}
