package parse

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/dekarrin/gocc/gcerrors"
	"github.com/dekarrin/gocc/grammar"
	"github.com/dekarrin/gocc/types"
)

// LLParser drives an LL(1) predictive parsing table (C10) over a token
// stream to build a parse tree (spec §3 "LL parser", C12).
type LLParser struct {
	table grammar.LL1Table
	g     grammar.Grammar
	id    uuid.UUID
	trace func(s string)
}

// NewLLParser constructs the LL(1) table for g and returns a driver over it.
// g must already be LL(1) (left-factored, non-left-recursive); this
// function does not transform the grammar (spec §4.5 "the generator does
// not transform it").
func NewLLParser(g grammar.Grammar) (*LLParser, error) {
	table, err := g.LLParseTable()
	if err != nil {
		return nil, err
	}
	return &LLParser{table: table, g: g, id: uuid.New()}, nil
}

// ID returns this parser instance's opaque run identifier.
func (ll *LLParser) ID() uuid.UUID { return ll.id }

// TableString returns the diagnostic rendering of the underlying table.
func (ll *LLParser) TableString() string { return ll.table.String() }

// SetTraceListener registers fn to be called with a human-readable line for
// every stack push/pop/prediction the driver processes, mirroring
// LRParser's trace hook.
func (ll *LLParser) SetTraceListener(fn func(s string)) {
	ll.trace = fn
}

func (ll *LLParser) notifyTrace(format string, args ...interface{}) {
	if ll.trace != nil {
		ll.trace(fmt.Sprintf(format, args...))
	}
}

// Parse runs the predictive (table-driven LL) driver over stream to
// completion (spec §4.8, dragon-book-style LL(1) predictive parsing,
// grounded on the teacher's parse/ll1.go).
func (ll *LLParser) Parse(stream types.TokenStream) (types.ParseTree, error) {
	symStack := newGstack[string]()
	symStack.Push(grammar.EndOfInput)
	symStack.Push(ll.g.StartSymbol())

	root := &types.ParseTree{Value: ll.g.StartSymbol()}
	nodeStack := newGstack[*types.ParseTree]()
	nodeStack.Push(root)

	next := stream.Peek()
	X := symStack.Peek()

	for X != grammar.EndOfInput {
		node := nodeStack.Peek()
		ll.notifyTrace("top of stack: %s, lookahead: %s", X, next.Class().ID())

		if ll.g.IsTerminal(X) {
			stream.Next()
			term := ll.g.Term(X)
			if next.Class().ID() != term.ID() {
				return *root, gcerrors.NewSyntaxErrorFromToken(
					fmt.Sprintf("expected %s here, but found %q", term.Human(), next.Lexeme()), next)
			}
			node.Terminal = true
			node.Source = next
			node.Loc = next.Location()

			symStack.Pop()
			nodeStack.Pop()
			X = symStack.Peek()
			next = stream.Peek()
			continue
		}

		prod, ok := ll.table.Get(X, next.Class().ID())
		if !ok {
			return *root, gcerrors.NewSyntaxErrorFromToken(
				fmt.Sprintf("a %s cannot come next here", next.Class().Human()), next)
		}
		ll.notifyTrace("predict: %s -> %s", X, prod.String())

		symStack.Pop()
		nodeStack.Pop()

		if prod.IsEpsilon() {
			// ε-production: zero-width reduction at the current cursor
			// (spec §9 decided open question 2), recorded as a single
			// terminal child carrying no source token.
			cur := next.Location()
			node.Children = append(node.Children, &types.ParseTree{Terminal: true, Value: grammar.EpsilonSymbolName, Loc: types.AtCursor(cur.StartOffset, cur.StartLine, cur.StartColumn)})
		} else {
			for i := len(prod) - 1; i >= 0; i-- {
				sym := prod[i]
				child := &types.ParseTree{Value: sym}
				node.Children = append([]*types.ParseTree{child}, node.Children...)
				symStack.Push(sym)
				nodeStack.Push(child)
			}
		}

		X = symStack.Peek()
	}

	if next.Class().ID() != types.TokenEndOfText.ID() {
		return *root, gcerrors.NewSyntaxErrorFromToken(
			fmt.Sprintf("expected end of input here, but found %q", next.Lexeme()), next)
	}

	return *root, nil
}
