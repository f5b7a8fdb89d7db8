package grammar

import (
	"github.com/dekarrin/rezi"

	"github.com/dekarrin/gocc/gcerrors"
)

// ll1Cell is one populated (non-terminal, terminal) -> production cell,
// flattened for rezi serialization the same way parse.lrTable flattens its
// ACTION/GOTO maps.
type ll1Cell struct {
	NonTerminal string
	Terminal    string
	RHS         []string
}

// MarshalBinary encodes t to rezi's binary record format (spec's
// "produces/consumes []byte, never touches a filesystem" table-caching
// boundary), grounded on the same github.com/dekarrin/rezi usage the
// teacher's server/dao/sqlite package applies to persist structured state
// as an opaque blob.
func (t LL1Table) MarshalBinary() ([]byte, error) {
	var cells []ll1Cell
	for nt, row := range t {
		for term, prod := range row {
			cells = append(cells, ll1Cell{NonTerminal: nt, Terminal: term, RHS: append([]string{}, prod...)})
		}
	}
	return rezi.EncBinary(cells), nil
}

// UnmarshalBinary decodes data produced by MarshalBinary into t, which must
// be non-nil.
func (t LL1Table) UnmarshalBinary(data []byte) error {
	var cells []ll1Cell
	if _, err := rezi.DecBinary(data, &cells); err != nil {
		return gcerrors.Internal("decoding serialized LL(1) table: %s", err.Error())
	}
	for k := range t {
		delete(t, k)
	}
	for _, c := range cells {
		row, ok := t[c.NonTerminal]
		if !ok {
			row = map[string]Production{}
			t[c.NonTerminal] = row
		}
		row[c.Terminal] = Production(c.RHS)
	}
	return nil
}

// DecodeLL1Table allocates a fresh LL1Table and decodes data into it.
func DecodeLL1Table(data []byte) (LL1Table, error) {
	t := LL1Table{}
	if err := t.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return t, nil
}
