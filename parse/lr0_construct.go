package parse

import (
	"github.com/dekarrin/gocc/automaton"
	"github.com/dekarrin/gocc/gcerrors"
	"github.com/dekarrin/gocc/grammar"
	"github.com/dekarrin/gocc/internal/util"
	"github.com/dekarrin/gocc/types"
)

// NewLR0Table constructs the plain LR(0) ACTION/GOTO table for g: a state
// with a completed item [A -> α.] reduces on every terminal, regardless of
// context (spec §4.2 "LR(0) automaton", dragon-book §4.6.1). Most grammars
// with any alternation are not LR(0); SLR(1)/CLR(1)/LALR(1) exist precisely
// to narrow the reduce condition with lookahead.
func NewLR0Table(g grammar.Grammar, resolveConflicts bool) (LRParsingTable, []string, error) {
	dfa := automaton.NewLR0ViablePrefixDFA(g)
	dfa.NumberStates()
	return constructLR0BasedTable(g, dfa, types.ParserLR0, func(gPrime grammar.Grammar, A string) util.ISet[string] {
		all := util.NewStringSet()
		for _, t := range gPrime.Terminals() {
			all.Add(t)
		}
		return all
	}, resolveConflicts)
}

// NewSLR1Table constructs the SLR(1) ACTION/GOTO table for g: as LR(0), but
// a completed item [A -> α.] only reduces on terminals in FOLLOW(A) (spec
// §4.2 "SLR(1)", dragon-book Algorithm 4.46).
func NewSLR1Table(g grammar.Grammar, resolveConflicts bool) (LRParsingTable, []string, error) {
	dfa := automaton.NewLR0ViablePrefixDFA(g)
	dfa.NumberStates()
	return constructLR0BasedTable(g, dfa, types.ParserSLR1, func(gPrime grammar.Grammar, A string) util.ISet[string] {
		return gPrime.FOLLOW(A)
	}, resolveConflicts)
}

// constructLR0BasedTable builds an ACTION/GOTO table over an LR(0) viable-
// prefix automaton, parameterized by reduceTerms: the set of terminals a
// completed item for non-terminal A reduces on (spec §4.2, dragon-book
// Algorithm 4.46 generalized to make that set pluggable between LR(0) and
// SLR(1)).
func constructLR0BasedTable(
	g grammar.Grammar,
	dfa *automaton.DFA[util.SVSet[grammar.LR0Item]],
	parserType types.ParserType,
	reduceTerms func(gPrime grammar.Grammar, A string) util.ISet[string],
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

			// completed item [A -> alpha.]
			A := item.NonTerminal
			if A == gPrime.StartSymbol() {
				if len(item.Left) == 1 && item.Left[0] == t.gStart {
					if err := mergeAction(g, t, s, grammar.EndOfInput, LRAction{Type: LRAccept}, resolveConflicts); err != nil {
						return nil, t.ambiguityWarnings, err
					}
				}
				continue
			}
			reduceAct := LRAction{Type: LRReduce, Symbol: A, Production: grammar.Production(item.Left)}
			for _, a := range reduceTerms(gPrime, A).Elements() {
				if err := mergeAction(g, t, s, a, reduceAct, resolveConflicts); err != nil {
					return nil, t.ambiguityWarnings, err
				}
			}
		}
	}

	return t, t.ambiguityWarnings, nil
}

// mergeAction installs act into t.action[state][terminal], resolving any
// conflict with a prior entry via resolveShiftReduce/resolveReduceReduce
// (spec §4.4 "Conflict arbitration").
func mergeAction(g grammar.Grammar, t *lrTable, state, terminal string, act LRAction, resolveConflicts bool) error {
	existing, had := t.action[state][terminal]
	if !had || existing.Equal(act) {
		t.action[state][terminal] = act
		return nil
	}

	var res resolution
	if existing.Type == LRAccept || act.Type == LRAccept {
		other := existing
		if existing.Type == LRAccept {
			other = act
		}
		res = resolution{conflict: gcerrors.Conflict("ACTION["+terminal+"]", "accept", conflictDescription(other))}
	} else if isSR, shiftAct := isShiftReduceConflict(existing, act); isSR {
		reduceAct := existing
		if existing.Type == LRShift {
			reduceAct = act
		}
		res = resolveShiftReduce(g, terminal, shiftAct, reduceAct, resolveConflicts)
	} else if existing.Type == LRReduce && act.Type == LRReduce {
		res = resolveReduceReduce(g, terminal, existing, act, resolveConflicts)
	} else {
		res = resolution{conflict: gcerrors.Conflict("ACTION["+terminal+"]", conflictDescription(existing), conflictDescription(act))}
	}

	if res.conflict != nil {
		return res.conflict
	}
	if res.warning != "" {
		t.ambiguityWarnings = append(t.ambiguityWarnings, res.warning)
	}
	t.action[state][terminal] = res.action
	return nil
}
