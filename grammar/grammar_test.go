package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dekarrin/gocc/types"
)

// testing terminals, following the teacher's grammar_test.go convention of
// package-level test token classes.
var (
	testTCPlus   = types.MakeDefaultClass("+")
	testTCTimes  = types.MakeDefaultClass("*")
	testTCNumber = types.MakeDefaultClass("int")
	testTCLParen = types.MakeDefaultClass("(")
	testTCRParen = types.MakeDefaultClass(")")
)

// exprGrammar builds the classic dragon-book "E -> E + T | T" expression
// grammar (E, T, F over id/+/*/(/)).
func exprGrammar() Grammar {
	g := Grammar{}
	g.AddTerm("+", testTCPlus)
	g.AddTerm("*", testTCTimes)
	g.AddTerm("int", testTCNumber)
	g.AddTerm("(", testTCLParen)
	g.AddTerm(")", testTCRParen)

	g.AddRule("E", Production{"E", "+", "T"})
	g.AddRule("E", Production{"T"})
	g.AddRule("T", Production{"T", "*", "F"})
	g.AddRule("T", Production{"F"})
	g.AddRule("F", Production{"(", "E", ")"})
	g.AddRule("F", Production{"int"})

	return g
}

func Test_Grammar_Validate(t *testing.T) {
	testCases := []struct {
		name      string
		build     func() Grammar
		expectErr bool
	}{
		{
			name:      "empty grammar",
			build:     func() Grammar { return Grammar{} },
			expectErr: true,
		},
		{
			name: "no terminals declared",
			build: func() Grammar {
				g := Grammar{}
				g.AddRule("S", Production{"S"})
				return g
			},
			expectErr: true,
		},
		{
			name: "undeclared symbol in RHS",
			build: func() Grammar {
				g := Grammar{}
				g.AddTerm("int", testTCNumber)
				g.AddRule("S", Production{"nope"})
				return g
			},
			expectErr: true,
		},
		{
			name:      "expr grammar is well formed",
			build:     exprGrammar,
			expectErr: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)
			err := tc.build().Validate()
			if tc.expectErr {
				assert.Error(err)
			} else {
				assert.NoError(err)
			}
		})
	}
}

func Test_Grammar_IsTerminal(t *testing.T) {
	assert := assert.New(t)
	g := exprGrammar()

	assert.True(g.IsTerminal("+"))
	assert.True(g.IsTerminal("int"))
	assert.False(g.IsTerminal("E"))
	assert.False(g.IsTerminal("T"))
	assert.False(g.IsTerminal(EpsilonSymbolName))
}

func Test_Grammar_Augmented(t *testing.T) {
	assert := assert.New(t)
	g := exprGrammar()

	aug := g.Augmented()

	assert.Equal("$accept", aug.StartSymbol())
	assert.Equal(Rule{NonTerminal: "$accept", Productions: []Production{{"E"}}}, aug.Rule("$accept"))
	// original grammar is untouched
	assert.Equal("E", g.StartSymbol())
}

func Test_Grammar_NumberedProductions_declarationOrder(t *testing.T) {
	assert := assert.New(t)
	g := exprGrammar()

	nums := g.NumberedProductions()
	assert.Equal(6, len(nums))
	assert.Equal(0, nums[0].Number)
	assert.Equal("E", nums[0].LHS)
	assert.Equal(Production{"E", "+", "T"}, nums[0].RHS)
	assert.Equal(5, nums[len(nums)-1].Number)
}

func Test_Grammar_FIRST(t *testing.T) {
	assert := assert.New(t)
	g := exprGrammar()

	first := g.FIRST("F")
	assert.True(first.Has("("))
	assert.True(first.Has("int"))
	assert.False(first.Has("+"))

	// FIRST(T) must equal FIRST(F), since T -> T*F | F and neither
	// alternative is nullable.
	assert.ElementsMatch(g.FIRST("F").Elements(), g.FIRST("T").Elements())
}

// Test_Grammar_FIRST_sharedNullableNonTerminalAcrossSiblingProductions
// guards against a "seen" set that only ever grows: A's two alternatives
// both reach the same nullable N, so a visited-once-anywhere guard would
// wrongly return an empty FIRST set for N the second time around and drop
// 'b' from FIRST(A).
func Test_Grammar_FIRST_sharedNullableNonTerminalAcrossSiblingProductions(t *testing.T) {
	assert := assert.New(t)

	g := Grammar{}
	g.AddTerm("a", testTCPlus)
	g.AddTerm("b", testTCTimes)
	g.AddTerm("n", testTCNumber)

	g.AddRule("A", Production{"X"})
	g.AddRule("A", Production{"Y"})
	g.AddRule("X", Production{"N", "a"})
	g.AddRule("Y", Production{"N", "b"})
	g.AddRule("N", Epsilon)
	g.AddRule("N", Production{"n"})

	first := g.FIRST("A")
	assert.True(first.Has("n"), "FIRST(A) must include 'n' via N")
	assert.True(first.Has("a"), "FIRST(A) must include 'a' via X")
	assert.True(first.Has("b"), "FIRST(A) must include 'b' via Y, even though N was already visited while resolving X")
}

func Test_Grammar_FOLLOW_startSymbolContainsEndOfInput(t *testing.T) {
	assert := assert.New(t)
	g := exprGrammar()

	follow := g.FOLLOW(g.StartSymbol())
	assert.True(follow.Has(EndOfInput))
}

func Test_Grammar_FOLLOW_throughRecursiveRule(t *testing.T) {
	assert := assert.New(t)
	g := exprGrammar()

	// T is followed by whatever follows E (via E -> E + T) plus '*' (via
	// T -> T * F).
	follow := g.FOLLOW("T")
	assert.True(follow.Has("+"))
	assert.True(follow.Has(EndOfInput))
	assert.True(follow.Has(")"))
}

func Test_Grammar_IsLL1_leftRecursiveGrammarIsNot(t *testing.T) {
	assert := assert.New(t)
	g := exprGrammar()

	// E -> E + T | T is left recursive: this exact grammar isn't even
	// well-formed as LL(1) input (left recursion isn't removed by this
	// module, spec §4.5 "the generator does not transform it"), but IsLL1
	// must not panic and must report it as non-LL(1) via a PREDICT clash on
	// E's own alternatives once FIRST/FOLLOW stabilize.
	assert.False(g.IsLL1())
}

func Test_Grammar_IsLL1_trueForFactoredGrammar(t *testing.T) {
	assert := assert.New(t)

	// E -> T E'
	// E' -> + T E' | ε
	// T -> int
	g := Grammar{}
	g.AddTerm("+", testTCPlus)
	g.AddTerm("int", testTCNumber)
	g.AddRule("E", Production{"T", "E'"})
	g.AddRule("E'", Production{"+", "T", "E'"})
	g.AddRule("E'", Epsilon)
	g.AddRule("T", Production{"int"})

	assert.True(g.IsLL1())
}

func Test_Grammar_LLParseTable_conflictOnLeftRecursiveGrammar(t *testing.T) {
	assert := assert.New(t)
	g := exprGrammar()

	_, err := g.LLParseTable()
	assert.Error(err)
}

func Test_Grammar_LLParseTable_factoredGrammar(t *testing.T) {
	assert := assert.New(t)

	g := Grammar{}
	g.AddTerm("+", testTCPlus)
	g.AddTerm("int", testTCNumber)
	g.AddRule("E", Production{"T", "E'"})
	g.AddRule("E'", Production{"+", "T", "E'"})
	g.AddRule("E'", Epsilon)
	g.AddRule("T", Production{"int"})

	table, err := g.LLParseTable()
	assert.NoError(err)

	prod, ok := table.Get("E'", EndOfInput)
	assert.True(ok, "M[E', $] should be populated by the epsilon alternative")
	assert.True(prod.IsEpsilon())

	_, ok = table.Get("E'", "int")
	assert.False(ok, "M[E', int] has no alternative predicting int")
}
