package lex

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dekarrin/gocc/types"
)

func simpleArithGrammar(t *testing.T) *LexGrammar {
	lg := NewLexGrammar()
	lg.AddClass(types.MakeDefaultClass("int"))
	lg.AddClass(types.MakeDefaultClass("+"))

	assert.NoError(t, lg.AddRule(LexRule{Pattern: `[0-9]+`, Action: LexAs("int")}))
	assert.NoError(t, lg.AddRule(LexRule{Pattern: `\+`, Action: LexAs("+")}))
	assert.NoError(t, lg.AddRule(LexRule{Pattern: `[ \t\n]+`, Action: Discard()}))

	assert.NoError(t, lg.Compile())
	return lg
}

func Test_Tokenizer_emitsTokensAndSkipsWhitespace(t *testing.T) {
	assert := assert.New(t)
	lg := simpleArithGrammar(t)

	tz := NewTokenizer(lg, "12 + 34", false)

	tok := tz.Next()
	assert.Equal("int", tok.Class().ID())
	assert.Equal("12", tok.Lexeme())

	tok = tz.Next()
	assert.Equal("+", tok.Class().ID())

	tok = tz.Next()
	assert.Equal("int", tok.Class().ID())
	assert.Equal("34", tok.Lexeme())

	tok = tz.Next()
	assert.Equal(types.TokenEndOfText, tok.Class())
}

func Test_Tokenizer_peekDoesNotAdvance(t *testing.T) {
	assert := assert.New(t)
	lg := simpleArithGrammar(t)

	tz := NewTokenizer(lg, "12 + 34", false)

	peeked := tz.Peek()
	assert.Equal("12", peeked.Lexeme())

	next := tz.Next()
	assert.Equal("12", next.Lexeme(), "Next after Peek must return the same token Peek saw")

	after := tz.Peek()
	assert.Equal("+", after.Lexeme())
}

func Test_Tokenizer_longestMatchWinsOverEarlierDeclaredRule(t *testing.T) {
	assert := assert.New(t)
	lg := NewLexGrammar()
	lg.AddClass(types.MakeDefaultClass("id"))
	lg.AddClass(types.MakeDefaultClass("kw_if"))

	// "if" would match the keyword rule, but "ifx" is longer and only the id
	// rule matches the whole thing: longest match wins regardless of
	// declaration order.
	assert.NoError(t, lg.AddRule(LexRule{Pattern: `if`, Action: LexAs("kw_if")}))
	assert.NoError(t, lg.AddRule(LexRule{Pattern: `[a-z]+`, Action: LexAs("id")}))
	assert.NoError(t, lg.Compile())

	tz := NewTokenizer(lg, "ifx", false)
	tok := tz.Next()
	assert.Equal("id", tok.Class().ID())
	assert.Equal("ifx", tok.Lexeme())
}

func Test_Tokenizer_tieBreaksToEarlierDeclaredRule(t *testing.T) {
	assert := assert.New(t)
	lg := NewLexGrammar()
	lg.AddClass(types.MakeDefaultClass("kw_if"))
	lg.AddClass(types.MakeDefaultClass("id"))

	assert.NoError(t, lg.AddRule(LexRule{Pattern: `if`, Action: LexAs("kw_if")}))
	assert.NoError(t, lg.AddRule(LexRule{Pattern: `[a-z]+`, Action: LexAs("id")}))
	assert.NoError(t, lg.Compile())

	tz := NewTokenizer(lg, "if", false)
	tok := tz.Next()
	assert.Equal("kw_if", tok.Class().ID(), "equal-length match ties go to the earlier-declared rule")
}

func Test_Tokenizer_startConditionsGateActiveRules(t *testing.T) {
	assert := assert.New(t)
	lg := NewLexGrammar()
	lg.AddCondition("STRING", Exclusive)
	lg.AddClass(types.MakeDefaultClass("quote"))
	lg.AddClass(types.MakeDefaultClass("strtext"))

	assert.NoError(t, lg.AddRule(LexRule{Pattern: `"`, Action: LexAndPushState("quote", "STRING")}))
	assert.NoError(t, lg.AddRule(LexRule{Pattern: `[^"]+`, Action: LexAs("strtext"), States: []string{"STRING"}}))
	assert.NoError(t, lg.AddRule(LexRule{Pattern: `"`, Action: LexAndPopState("quote"), States: []string{"STRING"}}))
	assert.NoError(t, lg.Compile())

	tz := NewTokenizer(lg, `"hi"`, false)

	tok := tz.Next()
	assert.Equal("quote", tok.Class().ID())

	tok = tz.Next()
	assert.Equal("strtext", tok.Class().ID())
	assert.Equal("hi", tok.Lexeme())

	tok = tz.Next()
	assert.Equal("quote", tok.Class().ID())

	tok = tz.Next()
	assert.Equal(types.TokenEndOfText, tok.Class())
}

func Test_Tokenizer_moreConcatenatesAcrossRuleMatches(t *testing.T) {
	assert := assert.New(t)
	lg := NewLexGrammar()
	lg.AddClass(types.MakeDefaultClass("word"))

	assert.NoError(t, lg.AddRule(LexRule{Pattern: `[a-z]+-`, Action: More()}))
	assert.NoError(t, lg.AddRule(LexRule{Pattern: `[a-z]+`, Action: LexAs("word")}))
	assert.NoError(t, lg.Compile())

	tz := NewTokenizer(lg, "abc-def", false)
	tok := tz.Next()
	assert.Equal("word", tok.Class().ID())
	assert.Equal("abc-def", tok.Lexeme())
}

func Test_Tokenizer_unexpectedInputProducesErrorToken(t *testing.T) {
	assert := assert.New(t)
	lg := simpleArithGrammar(t)

	tz := NewTokenizer(lg, "12 # 34", false)
	tz.Next() // "12"
	tok := tz.Next()
	assert.Equal(types.TokenError, tok.Class())
	assert.True(tz.done)
}

func Test_Tokenizer_capturesLineAndColumnAcrossNewlines(t *testing.T) {
	assert := assert.New(t)
	lg := simpleArithGrammar(t)

	tz := NewTokenizer(lg, "12\n+ 34", true)

	tok := tz.Next() // "12"
	assert.Equal(1, tok.Location().StartLine)

	tok = tz.Next() // "+"
	assert.Equal(2, tok.Location().StartLine)
	assert.Equal(1, tok.Location().StartColumn)
}

func Test_columnWidth_combiningMarkIsZeroWidth(t *testing.T) {
	assert := assert.New(t)

	// U+0301 COMBINING ACUTE ACCENT renders atop the preceding rune and
	// should not advance the column counter.
	assert.Equal(0, columnWidth('́'))
}

func Test_columnWidth_fullwidthRuneIsTwoColumnsWide(t *testing.T) {
	assert := assert.New(t)

	// U+FF21 FULLWIDTH LATIN CAPITAL LETTER A
	assert.Equal(2, columnWidth('Ａ'))
}

func Test_columnWidth_ordinaryAsciiIsOneColumnWide(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(1, columnWidth('a'))
}
