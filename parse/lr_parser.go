package parse

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dekarrin/gocc/gcerrors"
	"github.com/dekarrin/gocc/grammar"
	"github.com/dekarrin/gocc/internal/util"
	"github.com/dekarrin/gocc/types"
)

// LRParser drives an LRParsingTable over a token stream to build a parse
// tree (spec §3 "LR parser", C11, dragon-book Algorithm 4.44 "LR-parsing
// algorithm"). Each instance carries an opaque run id for trace
// correlation, mirroring the teacher's session-identifier use of
// github.com/google/uuid; a new LRParser should be built per parse, since
// it is not safe to share across goroutines (spec §5).
type LRParser struct {
	table LRParsingTable
	g     grammar.Grammar
	id    uuid.UUID
	trace func(s string)
}

// NewLRParser wraps table (built via NewLR0Table/NewSLR1Table/NewCLR1Table/
// NewLALR1Table) into a driver over g.
func NewLRParser(table LRParsingTable, g grammar.Grammar) *LRParser {
	return &LRParser{table: table, g: g, id: uuid.New()}
}

// ID returns this parser instance's opaque run identifier.
func (lr *LRParser) ID() uuid.UUID { return lr.id }

// Type reports which LR discipline built this parser's table.
func (lr *LRParser) Type() types.ParserType { return lr.table.ParserType() }

// TableString returns the diagnostic rendering of the underlying table.
func (lr *LRParser) TableString() string { return lr.table.String() }

// SetTraceListener registers fn to be called with a human-readable line for
// every state push/pop/action/token the driver processes (spec §4
// "Trace/observability hook", grounded on the teacher's
// RegisterTraceListener/notifyTrace* family). Pass nil to disable tracing.
func (lr *LRParser) SetTraceListener(fn func(s string)) {
	lr.trace = fn
}

func (lr *LRParser) notifyTrace(format string, args ...interface{}) {
	if lr.trace != nil {
		lr.trace(fmt.Sprintf(format, args...))
	}
}

// Parse runs the shift/reduce driver over stream to completion, returning
// the resulting parse tree or the first ParseError/InternalError
// encountered (spec §4.7, dragon-book Algorithm 4.44).
func (lr *LRParser) Parse(stream types.TokenStream) (types.ParseTree, error) {
	stateStack := newGstack[string]()
	stateStack.Push(lr.table.Initial())

	tokenBuffer := newGstack[types.Token]()
	subTreeRoots := newGstack[*types.ParseTree]()

	a := stream.Next()
	lr.notifyTrace("next token: %s", a.String())

	for {
		s := stateStack.Peek()
		lr.notifyTrace("state: %s", s)

		act := lr.table.Action(s, a.Class().ID())
		lr.notifyTrace("action: %s", act.String())

		switch act.Type {
		case LRShift:
			tokenBuffer.Push(a)
			stateStack.Push(act.State)
			a = stream.Next()
			lr.notifyTrace("next token: %s", a.String())

		case LRReduce:
			A := act.Symbol
			beta := act.Production

			node := &types.ParseTree{Value: A}
			for i := len(beta) - 1; i >= 0; i-- {
				sym := beta[i]
				var child *types.ParseTree
				if lr.g.IsTerminal(sym) {
					tok := tokenBuffer.Pop()
					child = &types.ParseTree{Terminal: true, Value: tok.Class().ID(), Source: tok, Loc: tok.Location()}
				} else {
					child = subTreeRoots.Pop()
				}
				node.Children = append([]*types.ParseTree{child}, node.Children...)
				stateStack.Pop()
			}
			if len(beta) == 0 {
				// ε-production: zero-width location at the current cursor.
				cur := a.Location()
				node.Loc = types.AtCursor(cur.StartOffset, cur.StartLine, cur.StartColumn)
			} else {
				node.Loc = spanOf(node.Children)
			}
			subTreeRoots.Push(node)

			t := stateStack.Peek()
			toPush, err := lr.table.Goto(t, A)
			if err != nil {
				return types.ParseTree{}, gcerrors.NewSyntaxErrorFromToken(
					fmt.Sprintf("parser has no valid transition from here on %q", A), a)
			}
			stateStack.Push(toPush)

		case LRAccept:
			return *subTreeRoots.Pop(), nil

		case LRError:
			expected := lr.expectedString(s)
			return types.ParseTree{}, gcerrors.NewSyntaxErrorFromToken(
				fmt.Sprintf("unexpected %s; %s", a.Class().Human(), expected), a)
		}
	}
}

// spanOf combines the source spans of a reduction's children into the span
// of the node they form (spec §8 invariant 9: every parse-tree node's
// location is the span of its leaves).
func spanOf(children []*types.ParseTree) types.Location {
	if len(children) == 0 {
		return types.Location{}
	}
	span := children[0].Loc
	for _, c := range children[1:] {
		span = span.Span(c.Loc)
	}
	return span
}

func (lr *LRParser) expectedString(state string) string {
	expected := lr.expectedTokens(state)

	var sb strings.Builder
	sb.WriteString("expected ")

	for i, t := range expected {
		if i == 0 {
			sb.WriteString(util.ArticleFor(t.Human(), false))
			sb.WriteRune(' ')
		}
		if len(expected) > 1 && i+1 == len(expected) {
			sb.WriteString("or ")
		}
		sb.WriteString(t.Human())
		if len(expected) > 2 && i+1 < len(expected) {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

func (lr *LRParser) expectedTokens(state string) []types.TokenClass {
	var out []types.TokenClass
	for _, term := range lr.table.Terminals() {
		if lr.table.Action(state, term).Type != LRError {
			out = append(out, lr.g.Term(term))
		}
	}
	return out
}
