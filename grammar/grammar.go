package grammar

import (
	"fmt"
	"strings"

	"github.com/dekarrin/gocc/gcerrors"
	"github.com/dekarrin/gocc/types"
)

// Grammar is a context-free grammar: a set of non-terminal rules, a set of
// declared terminals (with their token classes), a start symbol, and an
// optional operator table for precedence-based conflict resolution (spec §3
// "Grammar", §4.1 "Normalize grammar").
//
// The zero value is an empty Grammar ready to have rules and terms added to
// it one AddRule/AddTerm call at a time, the same construction style the
// teacher's grammar_test.go setupGrammar helper uses.
type Grammar struct {
	rules     []Rule
	ruleIndex map[string]int

	terminals map[string]types.TokenClass
	termOrder []string

	start string

	operators OperatorTable
}

// AddTerm declares a terminal with the given id and associated token class.
// Calling it twice with the same id overwrites the token class but does not
// duplicate the declaration order entry.
func (g *Grammar) AddTerm(id string, class types.TokenClass) {
	if g.terminals == nil {
		g.terminals = map[string]types.TokenClass{}
	}
	if _, exists := g.terminals[id]; !exists {
		g.termOrder = append(g.termOrder, id)
	}
	g.terminals[id] = class
}

// AddRule adds prod as an alternative of non-terminal nt, creating the rule
// if it doesn't already exist. The first non-terminal ever added becomes the
// grammar's start symbol, mirroring the teacher's convention that the first
// rule in a BNF file is the start rule.
func (g *Grammar) AddRule(nt string, prod Production) {
	if g.ruleIndex == nil {
		g.ruleIndex = map[string]int{}
	}
	if g.start == "" {
		g.start = nt
	}

	idx, ok := g.ruleIndex[nt]
	if !ok {
		idx = len(g.rules)
		g.rules = append(g.rules, Rule{NonTerminal: nt})
		g.ruleIndex[nt] = idx
	}
	g.rules[idx].Productions = append(g.rules[idx].Productions, prod)
}

// SetOperators attaches an operator table to g, used by LR table
// construction to break shift/reduce ties (spec §3 "Operator table").
func (g *Grammar) SetOperators(ot OperatorTable) {
	g.operators = ot
}

// Operators returns the operator table attached to g, if any.
func (g Grammar) Operators() OperatorTable {
	return g.operators
}

// StartSymbol returns the grammar's start non-terminal.
func (g Grammar) StartSymbol() string {
	return g.start
}

// Rule returns the rule for the given non-terminal name, or the zero Rule if
// no such non-terminal has been declared.
func (g Grammar) Rule(nt string) Rule {
	idx, ok := g.ruleIndex[nt]
	if !ok {
		return Rule{}
	}
	return g.rules[idx]
}

// NonTerminals returns the declared non-terminal names in declaration order.
func (g Grammar) NonTerminals() []string {
	names := make([]string, len(g.rules))
	for i := range g.rules {
		names[i] = g.rules[i].NonTerminal
	}
	return names
}

// Terminals returns the declared terminal names in declaration order,
// always including the end-of-input marker "$" even though it is never
// explicitly added via AddTerm (spec §8 invariant 2: FOLLOW(start) always
// contains "$").
func (g Grammar) Terminals() []string {
	terms := make([]string, 0, len(g.termOrder)+1)
	terms = append(terms, g.termOrder...)
	for _, t := range terms {
		if t == EndOfInput {
			return terms
		}
	}
	return append(terms, EndOfInput)
}

// Term returns the token class associated with the given terminal id, or
// nil if the terminal was never declared with AddTerm (e.g. an inline
// literal terminal that appears only in a production's RHS).
func (g Grammar) Term(id string) types.TokenClass {
	return g.terminals[id]
}

// IsTerminal reports whether sym is a terminal symbol of g. Every symbol
// that isn't a declared non-terminal LHS is considered a terminal; a
// terminal need not have been separately declared with AddTerm to count
// (spec §5 decision 4: the classification comes from the set of declared
// non-terminals, looked up on each call, not from any lexical convention on
// the name).
func (g Grammar) IsTerminal(sym string) bool {
	if sym == EpsilonSymbolName {
		return false
	}
	_, isNonTerm := g.ruleIndex[sym]
	return !isNonTerm
}

// Augmented returns a copy of g with a fresh start symbol $accept and a
// single production $accept -> S prepended, where S is g's original start
// symbol (spec §3 "Production": "the augmented start symbol $accept is a
// non-terminal introduced by normalization"; §4.2 "Augment the grammar" is
// the canonical first step of every LR table construction algorithm).
func (g Grammar) Augmented() Grammar {
	g2 := g.Copy()

	newStart := "$accept"
	for g2.ruleIndex != nil {
		if _, exists := g2.ruleIndex[newStart]; !exists {
			break
		}
		newStart += "'"
	}

	g2.rules = append([]Rule{{NonTerminal: newStart, Productions: []Production{{g.start}}}}, g2.rules...)
	g2.ruleIndex = map[string]int{}
	for i := range g2.rules {
		g2.ruleIndex[g2.rules[i].NonTerminal] = i
	}
	g2.start = newStart

	return g2
}

// GenerateUniqueTerminal returns a terminal name derived from prefix that
// does not collide with any symbol (terminal or non-terminal) already
// declared in g.
func (g Grammar) GenerateUniqueTerminal(prefix string) string {
	candidate := prefix
	for i := 0; ; i++ {
		if _, isNonTerm := g.ruleIndex[candidate]; !isNonTerm {
			if _, isTerm := g.terminals[candidate]; !isTerm {
				return candidate
			}
		}
		candidate = fmt.Sprintf("%s%d", prefix, i)
	}
}

// Copy returns a deep copy of g.
func (g Grammar) Copy() Grammar {
	g2 := Grammar{
		start:     g.start,
		operators: g.operators.Copy(),
	}

	g2.rules = make([]Rule, len(g.rules))
	for i := range g.rules {
		g2.rules[i] = g.rules[i].Copy()
	}
	g2.ruleIndex = make(map[string]int, len(g.ruleIndex))
	for k, v := range g.ruleIndex {
		g2.ruleIndex[k] = v
	}

	g2.terminals = make(map[string]types.TokenClass, len(g.terminals))
	for k, v := range g.terminals {
		g2.terminals[k] = v
	}
	g2.termOrder = append([]string{}, g.termOrder...)

	return g2
}

// Validate reports whether g is well-formed: it must declare at least one
// rule and at least one terminal, its start symbol must resolve to a
// declared rule, and every symbol referenced in a production's RHS must be
// either a declared terminal, a declared non-terminal, the epsilon
// sentinel, or the end-of-input marker EndOfInput (spec §4.1 "Normalize
// grammar" / "Errors").
func (g Grammar) Validate() error {
	if len(g.rules) == 0 {
		return gcerrors.Grammar("grammar has no rules")
	}
	if len(g.terminals) == 0 {
		return gcerrors.Grammar("grammar has no declared terminals")
	}
	if _, ok := g.ruleIndex[g.start]; !ok {
		return gcerrors.Grammar("start symbol %q has no rule", g.start)
	}

	for _, r := range g.rules {
		for _, p := range r.Productions {
			if p.IsEpsilon() {
				continue
			}
			for _, sym := range p {
				if sym == EpsilonSymbolName {
					continue
				}
				_, isNonTerm := g.ruleIndex[sym]
				_, isTerm := g.terminals[sym]
				if !isNonTerm && !isTerm && sym != EndOfInput {
					return gcerrors.Grammar("rule %q references undefined symbol %q", r.NonTerminal, sym)
				}
			}
		}
	}

	return nil
}

// NumberedProductions returns every production of g, numbered in
// declaration order across rules (spec §3 "Production": "number is unique,
// assigned in normalization order"; "production 0 is the augmentation
// $accept -> S" when g has already been through Augmented).
func (g Grammar) NumberedProductions() []NumberedProduction {
	var out []NumberedProduction
	n := 0
	for _, r := range g.rules {
		for _, p := range r.Productions {
			prec, _ := g.ProductionPrecedence(p)
			out = append(out, NumberedProduction{Number: n, LHS: r.NonTerminal, RHS: p, Precedence: prec})
			n++
		}
	}
	return out
}

// ProductionNumber returns the declaration-order number of the production nt
// -> prod, and whether it was found.
func (g Grammar) ProductionNumber(nt string, prod Production) (int, bool) {
	for _, np := range g.NumberedProductions() {
		if np.LHS == nt && np.RHS.Equal(prod) {
			return np.Number, true
		}
	}
	return 0, false
}

// ProductionPrecedence resolves the precedence level a production binds at
// for shift/reduce arbitration purposes: the precedence of the rightmost
// terminal in its RHS, since spec §3 "Production" says "precedence is an
// integer 1..k; absent means inherit from the last terminal in RHS if the
// operator table defines one." Returns ok=false if the production has no
// terminal in its RHS, or that terminal has no declared precedence.
func (g Grammar) ProductionPrecedence(p Production) (int, bool) {
	for i := len(p) - 1; i >= 0; i-- {
		if !g.IsTerminal(p[i]) {
			continue
		}
		return g.operators.PrecedenceOf(p[i])
	}
	return 0, false
}

// String renders g as one "NT -> alt1 | alt2 | ..." line per non-terminal,
// in declaration order.
func (g Grammar) String() string {
	var sb strings.Builder
	for i, r := range g.rules {
		if i > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(r.String())
	}
	return sb.String()
}
