package grammar

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dekarrin/gocc/gcerrors"
)

// LL1Table is a predictive parsing table: M[non-terminal][terminal] ->
// production to expand with. A missing cell means "no valid production (or
// '$') for this terminal from this non-terminal", which the LL driver
// (parse package) surfaces as a syntax error (spec §4.5 "LL(1) table").
type LL1Table map[string]map[string]Production

// Get returns the production for cell (nt, term) and whether that cell is
// populated. A production with no RHS symbols (Epsilon) is a legitimate,
// present cell; callers must check ok rather than comparing the returned
// Production for emptiness, since an absent cell and an epsilon production
// are both zero-length.
func (t LL1Table) Get(nt, term string) (prod Production, ok bool) {
	row, ok := t[nt]
	if !ok {
		return nil, false
	}
	prod, ok = row[term]
	return prod, ok
}

// NonTerminals returns the table's row labels, alphabetized.
func (t LL1Table) NonTerminals() []string {
	nts := make([]string, 0, len(t))
	for nt := range t {
		nts = append(nts, nt)
	}
	sort.Strings(nts)
	return nts
}

// Terminals returns the table's column labels (the union across all rows),
// alphabetized.
func (t LL1Table) Terminals() []string {
	seen := map[string]bool{}
	for _, row := range t {
		for term := range row {
			seen[term] = true
		}
	}
	terms := make([]string, 0, len(seen))
	for term := range seen {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return terms
}

// String renders the table as rows of "NT, TERM -> PRODUCTION", sorted for
// deterministic output, suitable for diagnostics and for comparing in tests
// on a construction failure.
func (t LL1Table) String() string {
	var sb strings.Builder
	nts := t.NonTerminals()
	for _, nt := range nts {
		row := t[nt]
		terms := make([]string, 0, len(row))
		for term := range row {
			terms = append(terms, term)
		}
		sort.Strings(terms)
		for _, term := range terms {
			fmt.Fprintf(&sb, "M[%s, %s] = %s\n", nt, term, row[term].String())
		}
	}
	return sb.String()
}

// LLParseTable constructs the LL(1) predictive parsing table for g (spec
// §4.5 "Build LL(1) table"): for each alternative prod of non-terminal nt,
// add M[nt, a] = prod for every terminal a in PREDICT(nt, prod). Two
// alternatives claiming the same cell with different productions is a
// conflict and fails construction, matching spec §4.5's "Duplicate =
// conflict; reported unless override" behavior (this module exposes no
// override, so any duplicate is always an error).
func (g Grammar) LLParseTable() (LL1Table, error) {
	table := LL1Table{}

	for _, r := range g.rules {
		row, ok := table[r.NonTerminal]
		if !ok {
			row = map[string]Production{}
			table[r.NonTerminal] = row
		}

		for _, prod := range r.Productions {
			predict := g.PREDICT(r.NonTerminal, prod)
			for _, a := range predict.Elements() {
				existing, taken := row[a]
				if taken && !existing.Equal(prod) {
					return nil, gcerrors.Conflict(
						fmt.Sprintf("M[%s, %s]", r.NonTerminal, a),
						existing.String(), prod.String(),
					)
				}
				row[a] = prod
			}
		}
	}

	return table, nil
}
