package parse

import (
	"fmt"

	"github.com/dekarrin/rezi"

	"github.com/dekarrin/gocc/gcerrors"
	"github.com/dekarrin/gocc/grammar"
	"github.com/dekarrin/gocc/internal/version"
	"github.com/dekarrin/gocc/types"
)

// actionCell is one populated (state, terminal) -> action entry, flattened
// out of lrTable.action for serialization since rezi encodes plain
// structs/slices/maps-of-primitives, not a type carrying an LRAction value.
type actionCell struct {
	State    string
	Terminal string
	Type     int
	ProdLHS  string
	ProdRHS  []string
	ToState  string
}

// gotoCell is one populated (state, non-terminal) -> state GOTO entry.
type gotoCell struct {
	State  string
	Symbol string
	To     string
}

// tableSnapshot is the rezi-encodable form of an lrTable: every field
// flattened to primitives, slices, and maps of primitives so
// rezi.EncBinary/DecBinary's reflection-based codec can round-trip it
// without special-casing LRAction or grammar.Production.
type tableSnapshot struct {
	EngineVersion string
	ParserType    string
	Initial       string
	States        []string
	GTerms        []string
	GNonTerms     []string
	Items         map[string][]string
	GoTos         []gotoCell
	Actions       []actionCell
	Warnings      []string
}

// MarshalBinary encodes t's ACTION/GOTO table to rezi's binary record
// format, so an external code-generator consumer can cache a computed table
// to disk without this module performing any file I/O itself (spec's
// "produces/consumes []byte, never touches a filesystem" boundary, grounded
// on the teacher's own server/dao/sqlite use of rezi.EncBinary/DecBinary to
// persist structured game state as an opaque blob column).
func (t *lrTable) MarshalBinary() ([]byte, error) {
	snap := tableSnapshot{
		EngineVersion: version.Current,
		ParserType:    string(t.parserType),
		Initial:       t.initial,
		States:        append([]string{}, t.states...),
		GTerms:        append([]string{}, t.gTerms...),
		GNonTerms:     append([]string{}, t.gNonTerms...),
		Items:         t.items,
	}
	for s, row := range t.goTo {
		for sym, to := range row {
			snap.GoTos = append(snap.GoTos, gotoCell{State: s, Symbol: sym, To: to})
		}
	}
	for s, row := range t.action {
		for term, act := range row {
			snap.Actions = append(snap.Actions, actionCell{
				State:    s,
				Terminal: term,
				Type:     int(act.Type),
				ProdLHS:  act.Symbol,
				ProdRHS:  append([]string{}, act.Production...),
				ToState:  act.State,
			})
		}
	}
	snap.Warnings = append([]string{}, t.ambiguityWarnings...)

	return rezi.EncBinary(snap), nil
}

// UnmarshalBinary decodes data produced by MarshalBinary back into t,
// overwriting every field that MarshalBinary stores. The augmented grammar
// and start symbol are not part of the encoding and are left as they were.
func (t *lrTable) UnmarshalBinary(data []byte) error {
	var snap tableSnapshot
	if _, err := rezi.DecBinary(data, &snap); err != nil {
		return gcerrors.Internal("decoding serialized parse table: %s", err.Error())
	}

	t.parserType = types.ParserType(snap.ParserType)

	t.initial = snap.Initial
	t.states = snap.States
	t.gTerms = snap.GTerms
	t.gNonTerms = snap.GNonTerms
	t.items = snap.Items
	t.ambiguityWarnings = snap.Warnings
	if snap.EngineVersion != "" && snap.EngineVersion != version.Current {
		t.ambiguityWarnings = append(t.ambiguityWarnings,
			fmt.Sprintf("table was serialized by engine version %s, decoding with %s", snap.EngineVersion, version.Current))
	}

	t.goTo = map[string]map[string]string{}
	for _, c := range snap.GoTos {
		row, ok := t.goTo[c.State]
		if !ok {
			row = map[string]string{}
			t.goTo[c.State] = row
		}
		row[c.Symbol] = c.To
	}

	t.action = map[string]map[string]LRAction{}
	for _, c := range snap.Actions {
		row, ok := t.action[c.State]
		if !ok {
			row = map[string]LRAction{}
			t.action[c.State] = row
		}
		row[c.Terminal] = LRAction{
			Type:       LRActionType(c.Type),
			Symbol:     c.ProdLHS,
			Production: grammar.Production(c.ProdRHS),
			State:      c.ToState,
		}
	}

	return nil
}

// DecodeLRTable is the package-level entry point for UnmarshalBinary, since
// lrTable's zero value is unexported: it allocates a fresh table, decodes
// into it, and returns it as an LRParsingTable.
func DecodeLRTable(data []byte) (LRParsingTable, error) {
	t := &lrTable{}
	if err := t.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return t, nil
}
