package automaton

import (
	"sort"

	"github.com/dekarrin/gocc/grammar"
	"github.com/dekarrin/gocc/internal/util"
)

// kernelKeyOf returns the content-addressed state name for an item set,
// sorting its item-string keys before hashing so the result depends only on
// set membership (spec §4.2 C8 item-set identity).
func kernelKeyOf[E any](s util.SVSet[E]) string {
	elems := s.Elements()
	sort.Strings(elems)
	return KernelHash(elems)
}

// NewLR0ViablePrefixDFA builds the canonical LR(0) viable-prefix automaton
// for g (spec §4.2 "LR(0) automaton", dragon-book Algorithm 4.33). g is
// augmented internally; callers pass the grammar as originally declared.
func NewLR0ViablePrefixDFA(g grammar.Grammar) *DFA[util.SVSet[grammar.LR0Item]] {
	gAug := g.Augmented()
	collection := gAug.CanonicalLR0Items()

	dfa := NewDFA[util.SVSet[grammar.LR0Item]]()

	startItem := grammar.LR0Item{NonTerminal: gAug.StartSymbol(), Right: []string{gAug.Rule(gAug.StartSymbol()).Productions[0][0]}}
	startSet := gAug.LR0_CLOSURE(util.SVSet[grammar.LR0Item]{startItem.String(): startItem})
	dfa.Start = kernelKeyOf(startSet)

	for _, oldName := range collection.Elements() {
		I := collection.Get(oldName)
		dfa.AddState(kernelKeyOf(I), I)
	}

	symbols := append(append([]string{}, gAug.NonTerminals()...), gAug.Terminals()...)
	for _, oldName := range collection.Elements() {
		I := collection.Get(oldName)
		stateName := kernelKeyOf(I)
		for _, X := range symbols {
			goTo := gAug.LR0_GOTO(I, X)
			if goTo.Empty() {
				continue
			}
			dfa.AddTransition(stateName, X, kernelKeyOf(goTo))
		}
	}

	return dfa
}

// NewCLR1ViablePrefixDFA builds the canonical LR(1) ("CLR(1)") viable-prefix
// automaton for g: as NewLR0ViablePrefixDFA, but every state is a set of
// LR(1) items carrying per-item lookaheads rather than bare LR(0) cores
// (spec §4.3 "CLR(1)", dragon-book's canonical-LR(1)-collection algorithm).
func NewCLR1ViablePrefixDFA(g grammar.Grammar) *DFA[util.SVSet[grammar.LR1Item]] {
	gAug := g.Augmented()

	startItem := grammar.LR1Item{
		LR0Item:   grammar.LR0Item{NonTerminal: gAug.StartSymbol(), Right: []string{gAug.Rule(gAug.StartSymbol()).Productions[0][0]}},
		Lookahead: grammar.EndOfInput,
	}
	startSet := gAug.LR1_CLOSURE(util.SVSet[grammar.LR1Item]{startItem.String(): startItem})

	dfa := NewDFA[util.SVSet[grammar.LR1Item]]()
	startName := kernelKeyOf(startSet)
	dfa.Start = startName
	dfa.AddState(startName, startSet)

	symbols := append(append([]string{}, gAug.NonTerminals()...), gAug.Terminals()...)

	queue := []string{startName}

	for len(queue) > 0 {
		stateName := queue[0]
		queue = queue[1:]
		I := dfa.GetValue(stateName)

		for _, X := range symbols {
			goTo := gAug.LR1_GOTO(I, X)
			if goTo.Empty() {
				continue
			}
			toName := kernelKeyOf(goTo)
			if dfa.AddState(toName, goTo) {
				queue = append(queue, toName)
			}
			dfa.AddTransition(stateName, X, toName)
		}
	}

	return dfa
}

// NewLALR1ViablePrefixDFA builds the LALR(1) viable-prefix automaton for g
// by constructing the full canonical LR(1) collection and then merging
// every group of states sharing an LR(0) core into one state whose items
// carry the union of the group's lookaheads (spec §4.3 "LALR(1)": "union the
// new kernel's lookaheads into the existing state's items" — the
// merge-after-construction formulation of the same result, equivalent to
// the teacher's on-the-fly automaton.NewLALR1ViablePrefixDFA which this is
// grounded on; the teacher's own incremental kernel/lookahead-propagation
// functions in parse/lalr.go, computeLALR1Kernels and determineLookaheads,
// are dead code never called from its real construction path and are not
// ported here). The resulting automaton has exactly as many states as the
// LR(0) automaton (spec §8 invariant 5).
func NewLALR1ViablePrefixDFA(g grammar.Grammar) *DFA[util.SVSet[grammar.LR1Item]] {
	clr1 := NewCLR1ViablePrefixDFA(g)

	// Group CLR(1) state names by LR0 core.
	coreKeyOf := map[string]string{}
	groupOf := map[string][]string{}
	for _, stateName := range clr1.States().Elements() {
		I := clr1.GetValue(stateName)
		core := grammar.CoreSet(I)
		key := core.StringOrdered()
		coreKeyOf[stateName] = key
		groupOf[key] = append(groupOf[key], stateName)
	}

	// Pick one representative old name per merged group, and build the
	// merged item set (union of lookaheads per core item).
	mergedName := map[string]string{} // old CLR(1) state name -> merged state name
	mergedValue := map[string]util.SVSet[grammar.LR1Item]{}

	for key, members := range groupOf {
		merged := util.NewSVSet[grammar.LR1Item]()
		for _, old := range members {
			I := clr1.GetValue(old)
			for _, itemName := range I.Elements() {
				item := I.Get(itemName)
				merged.Set(item.LR0Item.String()+","+item.Lookahead, item)
			}
		}
		for _, old := range members {
			mergedName[old] = key
		}
		mergedValue[key] = merged
	}

	dfa := NewDFA[util.SVSet[grammar.LR1Item]]()
	dfa.Start = mergedName[clr1.Start]

	for key, val := range mergedValue {
		dfa.AddState(key, val)
	}

	seenTransition := map[[2]string]bool{}
	for _, oldFrom := range clr1.States().Elements() {
		for sym, oldTo := range clr1.Transitions(oldFrom) {
			from, to := mergedName[oldFrom], mergedName[oldTo]
			k := [2]string{from, sym}
			if seenTransition[k] {
				continue
			}
			seenTransition[k] = true
			dfa.AddTransition(from, sym, to)
		}
	}

	return dfa
}
