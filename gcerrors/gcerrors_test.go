package gcerrors

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dekarrin/gocc/types"
)

type stubToken struct {
	class    types.TokenClass
	lexeme   string
	loc      types.Location
	fullLine string
}

func (s stubToken) Class() types.TokenClass  { return s.class }
func (s stubToken) Lexeme() string           { return s.lexeme }
func (s stubToken) Location() types.Location { return s.loc }
func (s stubToken) FullLine() string         { return s.fullLine }
func (s stubToken) String() string           { return s.lexeme }

func Test_Grammar_buildsFormattedMessage(t *testing.T) {
	assert := assert.New(t)
	err := Grammar("undeclared symbol %q", "nope")
	assert.Equal(`undeclared symbol "nope"`, err.Error())
	assert.True(Is(err, KindGrammar))
	assert.False(Is(err, KindLex))
}

func Test_UnexpectedInput_includesCaretLineWhenFullLineGiven(t *testing.T) {
	assert := assert.New(t)
	err := UnexpectedInput(5, 1, 6, '#', "12 # 34")

	full := FullMessage(err)
	assert.Contains(full, "12 # 34")
	assert.Contains(full, "^")
}

func Test_NewSyntaxErrorFromToken_includesLocationInFullMessage(t *testing.T) {
	assert := assert.New(t)
	tok := stubToken{
		class: types.MakeDefaultClass("int"),
		loc:   types.Location{StartLine: 3, EndLine: 3, StartColumn: 2, EndColumn: 5},
	}

	err := NewSyntaxErrorFromToken("unexpected token", tok)
	assert.Equal("unexpected token", err.Error())
	assert.Contains(FullMessage(err), "line 3")
}

func Test_Conflict_joinsCandidatesWithVs(t *testing.T) {
	assert := assert.New(t)
	err := Conflict("ACTION[+]", "shift to 7", "reduce E -> E + T")
	assert.Contains(err.Error(), "shift to 7 vs reduce E -> E + T")
	assert.True(Is(err, KindConflict))
}

func Test_Internal_prefixesFullMessage(t *testing.T) {
	assert := assert.New(t)
	err := Internal("state %q has no GOTO entry for %q", "s3", "E")
	assert.Contains(FullMessage(err), "internal error (this is a bug)")
	assert.True(Is(err, KindInternal))
}

func Test_FullMessage_fallsBackToErrorForNonGcError(t *testing.T) {
	assert := assert.New(t)
	plain := assert.AnError
	assert.Equal(plain.Error(), FullMessage(plain))
}
