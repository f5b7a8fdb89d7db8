// Package automaton builds the deterministic viable-prefix automata the
// parse package's table constructors drive: LR(0), CLR(1), and LALR(1)
// (spec §4.2-§4.3, C8). A DFA here is always a pure state machine over
// grammar symbols; it carries no notion of shift/reduce/goto by itself —
// that arbitration belongs to the parse package's table construction.
package automaton

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cnf/structhash"

	"github.com/dekarrin/gocc/internal/util"
)

// KernelHash returns a content-addressed state identifier for a kernel item
// set, given its items already rendered to their canonical String() form and
// sorted (spec §4.2 C8 "item-set identity": two states are the same state
// iff they contain the same items; construction must key on item-set
// content, not arrival order"). Hashing (rather than using the concatenated
// strings directly as the map key) keeps state names a fixed, short shape
// regardless of how large a kernel gets, mirroring the role
// github.com/cnf/structhash plays in gorgo's lr/earley item-set keying.
func KernelHash(items []string) string {
	h, err := structhash.Hash(items, 1)
	if err != nil {
		// structhash.Hash only errors on reflection failures over
		// unsupported types; items is always a []string.
		panic(err)
	}
	return h
}

// DFAState is one node of a DFA: the value the state was built from (an
// LR(0) or LR(1) item set, prior to renumbering) plus its outgoing
// transitions keyed by grammar symbol.
type DFAState[E any] struct {
	Name        string
	Value       E
	Transitions map[string]string
}

// DFA is a deterministic finite automaton whose states carry an arbitrary
// value E (the item set the state was constructed from). States are
// identified by name; Start names the initial state (grounded on the
// teacher's automaton/dfa.go generic DFA, standardized here on
// util.SVSet[grammar.LR1Item]/util.SVSet[grammar.LR0Item] value types rather
// than the teacher's inconsistent util.BSet naming).
type DFA[E any] struct {
	Start  string
	states map[string]DFAState[E]
	order  uint64
}

// NewDFA returns an empty DFA ready for AddState/AddTransition calls.
func NewDFA[E any]() *DFA[E] {
	return &DFA[E]{states: map[string]DFAState[E]{}}
}

// AddState adds a state named name with the given value, if not already
// present, and returns whether it was newly added.
func (dfa *DFA[E]) AddState(name string, value E) bool {
	if _, ok := dfa.states[name]; ok {
		return false
	}
	dfa.order++
	dfa.states[name] = DFAState[E]{Name: name, Value: value, Transitions: map[string]string{}}
	return true
}

// AddTransition records that from transitions to to on symbol. Both states
// must already have been added.
func (dfa *DFA[E]) AddTransition(from, symbol, to string) {
	st := dfa.states[from]
	st.Transitions[symbol] = to
	dfa.states[from] = st
}

// States returns every state's value, keyed by state name.
func (dfa *DFA[E]) States() util.SVSet[E] {
	out := util.NewSVSet[E]()
	for name, st := range dfa.states {
		out.Set(name, st.Value)
	}
	return out
}

// GetValue returns the value associated with the named state.
func (dfa *DFA[E]) GetValue(name string) E {
	return dfa.states[name].Value
}

// Next returns the state reached from state on symbol, or "" if there is no
// such transition.
func (dfa *DFA[E]) Next(state, symbol string) string {
	return dfa.states[state].Transitions[symbol]
}

// Transitions returns the outgoing symbol/destination pairs of the named
// state.
func (dfa *DFA[E]) Transitions(state string) map[string]string {
	out := map[string]string{}
	for sym, to := range dfa.states[state].Transitions {
		out[sym] = to
	}
	return out
}

// NumberStates renumbers every state to a small decimal string, with the
// start state guaranteed to be renumbered "0" and the rest assigned in
// alphabetical order of their prior name (spec's item-set-identity
// requirement is about canonical construction, not display names; this
// renumbering exists purely so printed tables/diagnostics use short, stable
// state names, mirroring the teacher's automaton/dfa.go NumberStates).
func (dfa *DFA[E]) NumberStates() {
	oldNames := make([]string, 0, len(dfa.states))
	for name := range dfa.states {
		if name != dfa.Start {
			oldNames = append(oldNames, name)
		}
	}
	sort.Strings(oldNames)
	oldNames = append([]string{dfa.Start}, oldNames...)

	renamed := map[string]string{}
	for i, old := range oldNames {
		renamed[old] = fmt.Sprintf("%d", i)
	}

	newStates := make(map[string]DFAState[E], len(dfa.states))
	for old, st := range dfa.states {
		newTrans := map[string]string{}
		for sym, to := range st.Transitions {
			newTrans[sym] = renamed[to]
		}
		newName := renamed[old]
		newStates[newName] = DFAState[E]{Name: newName, Value: st.Value, Transitions: newTrans}
	}

	dfa.states = newStates
	dfa.Start = renamed[dfa.Start]
}

// String renders the DFA as one line per state: its name, whether it is the
// start state, and its outgoing transitions.
func (dfa *DFA[E]) String() string {
	names := make([]string, 0, len(dfa.states))
	for name := range dfa.states {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	for _, name := range names {
		st := dfa.states[name]
		marker := " "
		if name == dfa.Start {
			marker = "*"
		}
		fmt.Fprintf(&sb, "%s%s:\n", marker, name)

		syms := make([]string, 0, len(st.Transitions))
		for sym := range st.Transitions {
			syms = append(syms, sym)
		}
		sort.Strings(syms)
		for _, sym := range syms {
			fmt.Fprintf(&sb, "    %s -> %s\n", sym, st.Transitions[sym])
		}
	}
	return sb.String()
}
