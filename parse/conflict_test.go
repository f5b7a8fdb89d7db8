package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dekarrin/gocc/grammar"
)

func precedenceGrammar(t *testing.T) grammar.Grammar {
	g := exprGrammar()
	ot, err := grammar.NewOperatorTable(
		grammar.OperatorLevel{Assoc: grammar.LeftAssoc, Terminals: []string{"+"}},
		grammar.OperatorLevel{Assoc: grammar.LeftAssoc, Terminals: []string{"*"}},
	)
	assert.NoError(t, err)
	g.SetOperators(ot)
	return g
}

func Test_resolveShiftReduce_equalPrecedenceLeftAssocReduces(t *testing.T) {
	assert := assert.New(t)
	g := precedenceGrammar(t)

	shift := LRAction{Type: LRShift, State: "s7"}
	reduce := LRAction{Type: LRReduce, Symbol: "E", Production: grammar.Production{"E", "+", "T"}}

	res := resolveShiftReduce(g, "+", shift, reduce, false)
	assert.Nil(res.conflict)
	assert.Equal(LRReduce, res.action.Type, "left-associative '+' at equal precedence should reduce, not shift")
}

func Test_resolveShiftReduce_higherPrecedenceOnLookaheadShifts(t *testing.T) {
	assert := assert.New(t)
	g := precedenceGrammar(t)

	shift := LRAction{Type: LRShift, State: "s9"}
	reduce := LRAction{Type: LRReduce, Symbol: "E", Production: grammar.Production{"E", "+", "T"}}

	res := resolveShiftReduce(g, "*", shift, reduce, false)
	assert.Nil(res.conflict)
	assert.Equal(LRShift, res.action.Type, "'*' has higher precedence than the pending '+' reduction, so it should shift")
}

func Test_resolveShiftReduce_noPrecedenceReportsConflictUnlessResolving(t *testing.T) {
	assert := assert.New(t)
	g := exprGrammar() // no operator table declared

	shift := LRAction{Type: LRShift, State: "s9"}
	reduce := LRAction{Type: LRReduce, Symbol: "E", Production: grammar.Production{"E", "+", "T"}}

	res := resolveShiftReduce(g, "*", shift, reduce, false)
	assert.NotNil(res.conflict)

	res = resolveShiftReduce(g, "*", shift, reduce, true)
	assert.Nil(res.conflict)
	assert.Equal(LRShift, res.action.Type)
	assert.NotEmpty(res.warning)
}

func Test_resolveReduceReduce_lowerNumberedProductionWins(t *testing.T) {
	assert := assert.New(t)
	g := exprGrammar()

	// E -> T is production #1, F -> int is production #5 (0-indexed
	// declaration order from exprGrammar's AddRule calls).
	act1 := LRAction{Type: LRReduce, Symbol: "E", Production: grammar.Production{"T"}}
	act2 := LRAction{Type: LRReduce, Symbol: "F", Production: grammar.Production{"int"}}

	res := resolveReduceReduce(g, "$", act1, act2, true)
	assert.Nil(res.conflict)
	assert.Equal("E", res.action.Symbol, "lower-numbered production E -> T should win over F -> int")
}

func Test_resolveReduceReduce_reportsConflictUnlessResolving(t *testing.T) {
	assert := assert.New(t)
	g := exprGrammar()

	act1 := LRAction{Type: LRReduce, Symbol: "E", Production: grammar.Production{"T"}}
	act2 := LRAction{Type: LRReduce, Symbol: "F", Production: grammar.Production{"int"}}

	res := resolveReduceReduce(g, "$", act1, act2, false)
	assert.NotNil(res.conflict)
}
