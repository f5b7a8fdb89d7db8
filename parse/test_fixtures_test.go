package parse

import (
	"fmt"

	"github.com/dekarrin/gocc/types"
)

// mockToken is a minimal types.Token for exercising the LR/LL drivers
// without bringing up the lex package, following the teacher's
// parse/test_fixtures.go mockToken/mockStream convention.
type mockToken struct {
	class types.TokenClass
	text  string
}

func (tok mockToken) Class() types.TokenClass { return tok.class }
func (tok mockToken) Lexeme() string          { return tok.text }
func (tok mockToken) Location() types.Location {
	return types.Location{StartOffset: 0, EndOffset: len(tok.text), StartLine: 1, EndLine: 1, StartColumn: 1, EndColumn: 1 + len(tok.text)}
}
func (tok mockToken) FullLine() string { return tok.text }
func (tok mockToken) String() string   { return fmt.Sprintf("<%s %q>", tok.class.ID(), tok.text) }

// mockStream is a fixed slice of tokens with an appended synthetic EOF,
// following the teacher's mockStream fixture.
type mockStream struct {
	toks []types.Token
	pos  int
}

func mockTokens(classesAndLexemes ...string) *mockStream {
	if len(classesAndLexemes)%2 != 0 {
		panic("mockTokens requires class/lexeme pairs")
	}
	ms := &mockStream{}
	for i := 0; i < len(classesAndLexemes); i += 2 {
		ms.toks = append(ms.toks, mockToken{class: defaultClassOf(classesAndLexemes[i]), text: classesAndLexemes[i+1]})
	}
	ms.toks = append(ms.toks, mockToken{class: types.TokenEndOfText, text: ""})
	return ms
}

func defaultClassOf(id string) types.TokenClass {
	return types.MakeDefaultClass(id)
}

func (ms *mockStream) Next() types.Token {
	t := ms.Peek()
	if ms.pos < len(ms.toks)-1 {
		ms.pos++
	}
	return t
}

func (ms *mockStream) Peek() types.Token {
	if ms.pos >= len(ms.toks) {
		return mockToken{class: types.TokenEndOfText, text: ""}
	}
	return ms.toks[ms.pos]
}

func (ms *mockStream) HasNext() bool {
	return ms.pos < len(ms.toks)-1
}
