package parse

import (
	"github.com/dekarrin/gocc/automaton"
	"github.com/dekarrin/gocc/grammar"
	"github.com/dekarrin/gocc/internal/util"
	"github.com/dekarrin/gocc/types"
)

// NewCLR1Table constructs the canonical LR(1) ACTION/GOTO table for g (spec
// §4.2/§4.3 "CLR(1)", dragon-book Algorithm 4.56): each item carries its own
// lookahead, so a completed item [A -> alpha., b] reduces only on b, never
// on all of FOLLOW(A).
func NewCLR1Table(g grammar.Grammar, resolveConflicts bool) (LRParsingTable, []string, error) {
	dfa := automaton.NewCLR1ViablePrefixDFA(g)
	dfa.NumberStates()
	return constructLR1BasedTable(g, dfa, types.ParserCLR1, resolveConflicts)
}

// NewLALR1Table constructs the LALR(1) ACTION/GOTO table for g: identical
// construction to CLR(1), but driven by the state-merged automaton (spec
// §4.3 "LALR(1)").
func NewLALR1Table(g grammar.Grammar, resolveConflicts bool) (LRParsingTable, []string, error) {
	dfa := automaton.NewLALR1ViablePrefixDFA(g)
	dfa.NumberStates()
	return constructLR1BasedTable(g, dfa, types.ParserLALR1, resolveConflicts)
}

func constructLR1BasedTable(
	g grammar.Grammar,
	dfa *automaton.DFA[util.SVSet[grammar.LR1Item]],
	parserType types.ParserType,
	resolveConflicts bool,
) (LRParsingTable, []string, error) {
	gPrime := g.Augmented()

	t := &lrTable{
		gPrime:     gPrime,
		gStart:     g.StartSymbol(),
		gTerms:     g.Terminals(),
		gNonTerms:  g.NonTerminals(),
		parserType: parserType,
		initial:    dfa.Start,
		goTo:       map[string]map[string]string{},
		action:     map[string]map[string]LRAction{},
		items:      map[string][]string{},
	}

	for name := range dfa.States() {
		t.states = append(t.states, name)
	}

	for _, s := range t.states {
		itemSet := dfa.GetValue(s)
		goTo := map[string]string{}
		for sym, to := range dfa.Transitions(s) {
			if !gPrime.IsTerminal(sym) {
				goTo[sym] = to
			}
		}
		t.goTo[s] = goTo
		t.action[s] = map[string]LRAction{}

		for _, itemName := range itemSet.Elements() {
			t.items[s] = append(t.items[s], itemName)
			item := itemSet.Get(itemName)

			if len(item.Right) > 0 {
				a := item.Right[0]
				if !gPrime.IsTerminal(a) {
					continue
				}
				j := dfa.Next(s, a)
				if j == "" {
					continue
				}
				shiftAct := LRAction{Type: LRShift, State: j}
				if err := mergeAction(g, t, s, a, shiftAct, resolveConflicts); err != nil {
					return nil, t.ambiguityWarnings, err
				}
				continue
			}

			A := item.NonTerminal
			if A == gPrime.StartSymbol() {
				if len(item.Left) == 1 && item.Left[0] == t.gStart && item.Lookahead == grammar.EndOfInput {
					if err := mergeAction(g, t, s, grammar.EndOfInput, LRAction{Type: LRAccept}, resolveConflicts); err != nil {
						return nil, t.ambiguityWarnings, err
					}
				}
				continue
			}

			reduceAct := LRAction{Type: LRReduce, Symbol: A, Production: grammar.Production(item.Left)}
			if err := mergeAction(g, t, s, item.Lookahead, reduceAct, resolveConflicts); err != nil {
				return nil, t.ambiguityWarnings, err
			}
		}
	}

	return t, t.ambiguityWarnings, nil
}
