// Package parse implements the LR and LL parsing-table assembly (C9/C10)
// and the table-driven parser drivers (C11/C12) — spec §4.4, §4.7, §4.8.
package parse

import (
	"fmt"
	"sort"

	"github.com/dekarrin/rosed"

	"github.com/dekarrin/gocc/automaton"
	"github.com/dekarrin/gocc/grammar"
	"github.com/dekarrin/gocc/internal/util"
	"github.com/dekarrin/gocc/types"
)

// LRParsingTable is the assembled ACTION/GOTO table driving an LR parser
// (spec §3 "LR parsing table", C9). It is immutable once constructed; all
// conflict detection and precedence arbitration happens during
// construction, not at parse time.
type LRParsingTable interface {
	// Initial returns the parser's start state.
	Initial() string

	// Action returns the action to take given the current state and
	// lookahead terminal.
	Action(state, terminal string) LRAction

	// Goto maps a state and a non-terminal to the state to transition to
	// after a reduction, or an error if no such transition exists.
	Goto(state, symbol string) (string, error)

	// ParserType reports which LR discipline produced this table.
	ParserType() types.ParserType

	// Terminals and NonTerminals return the grammar symbols the table was
	// built over, in declaration order.
	Terminals() []string
	NonTerminals() []string

	// GetDFA returns the table's states as a DFA, with each state's value
	// rendered as the set of item strings it contains (spec §4 "GetDFA /
	// canonical-collection introspection"). Its transitions are the GOTO
	// entries on non-terminals only; transitions on terminals are not
	// included.
	GetDFA() automaton.DFA[util.StringSet]

	// String renders the table as a fixed-width ACTION/GOTO grid.
	String() string
}

// lrTable is the single concrete LRParsingTable implementation shared by
// LR(0), SLR(1), CLR(1), and LALR(1): what differs between the four
// disciplines is only how their ACTION entries were computed at
// construction time (lr0_construct.go, lr1_construct.go); once built, all
// four are driven identically.
type lrTable struct {
	gPrime     grammar.Grammar
	gStart     string
	gTerms     []string
	gNonTerms  []string
	parserType types.ParserType

	initial string
	states  []string
	goTo    map[string]map[string]string
	action  map[string]map[string]LRAction
	items   map[string][]string // state -> item strings, for display/GetDFA only

	// ambiguityWarnings accumulates non-fatal conflict resolutions made
	// under resolveConflicts (spec §4.4).
	ambiguityWarnings []string
}

func (t *lrTable) Initial() string { return t.initial }

func (t *lrTable) ParserType() types.ParserType { return t.parserType }

func (t *lrTable) Terminals() []string    { return append([]string{}, t.gTerms...) }
func (t *lrTable) NonTerminals() []string { return append([]string{}, t.gNonTerms...) }

func (t *lrTable) Action(state, terminal string) LRAction {
	row, ok := t.action[state]
	if !ok {
		return LRAction{Type: LRError}
	}
	act, ok := row[terminal]
	if !ok {
		return LRAction{Type: LRError}
	}
	return act
}

func (t *lrTable) Goto(state, symbol string) (string, error) {
	row, ok := t.goTo[state]
	if !ok {
		return "", fmt.Errorf("GOTO[%q, %q] is an error entry", state, symbol)
	}
	to, ok := row[symbol]
	if !ok {
		return "", fmt.Errorf("GOTO[%q, %q] is an error entry", state, symbol)
	}
	return to, nil
}

func (t *lrTable) GetDFA() automaton.DFA[util.StringSet] {
	dfa := automaton.NewDFA[util.StringSet]()
	dfa.Start = t.initial
	for _, s := range t.states {
		set := util.NewStringSet()
		for _, it := range t.items[s] {
			set.Add(it)
		}
		dfa.AddState(s, set)
	}
	for _, s := range t.states {
		for sym, to := range t.goTo[s] {
			dfa.AddTransition(s, sym, to)
		}
	}
	return *dfa
}

func (t *lrTable) String() string {
	stateRefs := map[string]string{}
	names := append([]string{}, t.states...)
	sort.Strings(names)
	for i := range names {
		if names[i] == t.initial {
			names[0], names[i] = names[i], names[0]
			break
		}
	}
	for i, n := range names {
		stateRefs[n] = fmt.Sprintf("%d", i)
	}

	allTerms := append(append([]string{}, t.gTerms...))

	data := [][]string{}
	headers := []string{"S", "|"}
	for _, term := range allTerms {
		headers = append(headers, fmt.Sprintf("A:%s", term))
	}
	headers = append(headers, "|")
	for _, nt := range t.gNonTerms {
		headers = append(headers, fmt.Sprintf("G:%s", nt))
	}
	data = append(data, headers)

	for _, s := range names {
		row := []string{stateRefs[s], "|"}
		for _, term := range allTerms {
			act := t.Action(s, term)
			cell := ""
			switch act.Type {
			case LRAccept:
				cell = "acc"
			case LRReduce:
				cell = fmt.Sprintf("r%s -> %s", act.Symbol, act.Production.String())
			case LRShift:
				cell = fmt.Sprintf("s%s", stateRefs[act.State])
			}
			row = append(row, cell)
		}
		row = append(row, "|")
		for _, nt := range t.gNonTerms {
			cell := ""
			if to, err := t.Goto(s, nt); err == nil {
				cell = stateRefs[to]
			}
			row = append(row, cell)
		}
		data = append(data, row)
	}

	return rosed.Edit("").
		InsertTableOpts(0, data, 10, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()
}
