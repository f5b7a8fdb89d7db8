package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dekarrin/gocc/grammar"
	"github.com/dekarrin/gocc/types"
)

// exprGrammar is the classic dragon-book "E -> E + T | T" expression
// grammar: SLR(1)-constructible but not LR(0) (the completed item for E's
// reduction only resolves once FOLLOW is consulted).
func exprGrammar() grammar.Grammar {
	g := grammar.Grammar{}
	g.AddTerm("+", types.MakeDefaultClass("+"))
	g.AddTerm("*", types.MakeDefaultClass("*"))
	g.AddTerm("int", types.MakeDefaultClass("int"))
	g.AddTerm("(", types.MakeDefaultClass("("))
	g.AddTerm(")", types.MakeDefaultClass(")"))

	g.AddRule("E", grammar.Production{"E", "+", "T"})
	g.AddRule("E", grammar.Production{"T"})
	g.AddRule("T", grammar.Production{"T", "*", "F"})
	g.AddRule("T", grammar.Production{"F"})
	g.AddRule("F", grammar.Production{"(", "E", ")"})
	g.AddRule("F", grammar.Production{"int"})

	return g
}

func Test_NewLR0Table_exprGrammarHasShiftReduceConflict(t *testing.T) {
	assert := assert.New(t)
	g := exprGrammar()

	// E -> E + T | T is not LR(0): a completed-item state reduces
	// unconditionally regardless of lookahead, which collides with a shift
	// on '*' in the same state. Without resolveConflicts, construction
	// must fail.
	_, _, err := NewLR0Table(g, false)
	assert.Error(err)
}

func Test_NewSLR1Table_exprGrammarBuildsCleanly(t *testing.T) {
	assert := assert.New(t)
	g := exprGrammar()

	table, warnings, err := NewSLR1Table(g, false)
	assert.NoError(err)
	assert.Empty(warnings)
	assert.NotEmpty(table.Initial())

	// the initial state must shift on '(' and 'int', the only two things
	// that can start an E.
	actOnInt := table.Action(table.Initial(), "int")
	assert.Equal(LRShift, actOnInt.Type)
	actOnLParen := table.Action(table.Initial(), "(")
	assert.Equal(LRShift, actOnLParen.Type)
}

func Test_NewCLR1Table_exprGrammarBuildsCleanly(t *testing.T) {
	assert := assert.New(t)
	g := exprGrammar()

	table, warnings, err := NewCLR1Table(g, false)
	assert.NoError(err)
	assert.Empty(warnings)
	assert.NotEmpty(table.Initial())
}

func Test_NewLALR1Table_exprGrammarBuildsCleanly(t *testing.T) {
	assert := assert.New(t)
	g := exprGrammar()

	table, warnings, err := NewLALR1Table(g, false)
	assert.NoError(err)
	assert.Empty(warnings)
	assert.NotEmpty(table.Initial())
}

// ambiguousIfGrammar is the textbook dangling-else grammar: genuinely
// ambiguous, so even SLR(1) hits a shift/reduce conflict on "else" that only
// resolveConflicts (preferring shift) can paper over.
func ambiguousIfGrammar() grammar.Grammar {
	g := grammar.Grammar{}
	g.AddTerm("if", types.MakeDefaultClass("if"))
	g.AddTerm("then", types.MakeDefaultClass("then"))
	g.AddTerm("else", types.MakeDefaultClass("else"))
	g.AddTerm("other", types.MakeDefaultClass("other"))

	g.AddRule("S", grammar.Production{"if", "S", "then", "S"})
	g.AddRule("S", grammar.Production{"if", "S", "then", "S", "else", "S"})
	g.AddRule("S", grammar.Production{"other"})

	return g
}

func Test_NewSLR1Table_danglingElse_requiresResolveConflicts(t *testing.T) {
	assert := assert.New(t)
	g := ambiguousIfGrammar()

	_, _, err := NewSLR1Table(g, false)
	assert.Error(err)

	table, warnings, err := NewSLR1Table(g, true)
	assert.NoError(err)
	assert.NotEmpty(warnings, "resolving the dangling-else conflict should be surfaced as an ambiguity warning")
	assert.NotNil(table)
}

func Test_NewLRParser_SLR1ParsesSimpleExpression(t *testing.T) {
	assert := assert.New(t)
	g := exprGrammar()

	table, _, err := NewSLR1Table(g, false)
	assert.NoError(err)

	parser := NewLRParser(table, g)
	stream := mockTokens("int", "1", "+", "+", "int", "2")

	tree, err := parser.Parse(stream)
	assert.NoError(err)
	assert.Equal("E", tree.Value)
	assert.False(tree.Terminal)
}

func Test_NewLRParser_SLR1ReportsSyntaxErrorOnBadInput(t *testing.T) {
	assert := assert.New(t)
	g := exprGrammar()

	table, _, err := NewSLR1Table(g, false)
	assert.NoError(err)

	parser := NewLRParser(table, g)
	stream := mockTokens("int", "1", "int", "2")

	_, err = parser.Parse(stream)
	assert.Error(err)
}
