package grammar

import "github.com/dekarrin/gocc/types"

// SymbolKind distinguishes a terminal from a non-terminal (spec §3
// "Symbol"). This module replaces the teacher's implicit
// strings.ToUpper(sym) == sym convention (internal/ictiobus/automaton/
// nfa.go, parse/lr.go, parse/ll1.go) with Grammar.IsTerminal, which treats a
// symbol as a non-terminal exactly when it has a rule. Grammar stores
// symbols as plain strings and does not store or consult a SymbolKind.
type SymbolKind int

const (
	NonTerminal SymbolKind = iota
	Terminal
)

func (k SymbolKind) String() string {
	if k == Terminal {
		return "terminal"
	}
	return "non-terminal"
}

// EpsilonSymbolName is the sentinel RHS symbol name standing for the empty
// string, used when rendering/parsing LR items ("A -> . ε" style dot
// notation). Grammar itself tracks emptiness structurally: an ε-production
// is simply an empty Production, never a Production holding this name.
const EpsilonSymbolName = ""

// EndOfInput is the distinguished "$" terminal: end of input, and the
// lookahead that FOLLOW(startSymbol) always contains (spec §8 invariant 2).
const EndOfInput = "$"

// Symbol is an interned grammar symbol: a terminal (quoted literal or
// implicit token class) or a non-terminal (spec §3 "Symbol"). Two Symbols
// are equal iff their Name and Kind are equal.
type Symbol struct {
	Name string
	Kind SymbolKind
}

func (s Symbol) String() string {
	return s.Name
}

// IsTerminal reports whether s is a terminal symbol.
func (s Symbol) IsTerminal() bool {
	return s.Kind == Terminal
}

// IsEpsilon reports whether s is the epsilon sentinel.
func (s Symbol) IsEpsilon() bool {
	return s.Name == EpsilonSymbolName
}

// IsEndOfInput reports whether s is the end-of-input marker.
func (s Symbol) IsEndOfInput() bool {
	return s.Name == EndOfInput
}

// TermSymbol builds a terminal Symbol.
func TermSymbol(name string) Symbol {
	return Symbol{Name: name, Kind: Terminal}
}

// NonTermSymbol builds a non-terminal Symbol.
func NonTermSymbol(name string) Symbol {
	return Symbol{Name: name, Kind: NonTerminal}
}

// classOf adapts a types.TokenClass to the Symbol that represents it as a
// terminal.
func classOf(c types.TokenClass) Symbol {
	return TermSymbol(c.ID())
}
