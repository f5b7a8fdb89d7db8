package grammar

import "github.com/dekarrin/gocc/internal/util"

// nullable reports whether sym can derive the empty string.
func (g Grammar) nullable(sym string) bool {
	if sym == EpsilonSymbolName {
		return true
	}
	if g.IsTerminal(sym) {
		return false
	}

	seen := map[string]bool{}
	return g.nullableRec(sym, seen)
}

func (g Grammar) nullableRec(nt string, seen map[string]bool) bool {
	if seen[nt] {
		return false
	}
	seen[nt] = true
	defer delete(seen, nt)

	rule := g.Rule(nt)
	for _, p := range rule.Productions {
		if p.IsEpsilon() {
			return true
		}
		allNullable := true
		for _, sym := range p {
			if g.IsTerminal(sym) {
				allNullable = false
				break
			}
			if !g.nullableRec(sym, seen) {
				allNullable = false
				break
			}
		}
		if allNullable {
			return true
		}
	}
	return false
}

// FIRST computes the FIRST set of a single grammar symbol: the set of
// terminals (plus, if sym is nullable, the epsilon sentinel) that can begin
// some string derived from sym (spec §3 "FIRST set").
func (g Grammar) FIRST(sym string) util.StringSet {
	return g.firstOfSymbol(sym, map[string]bool{})
}

func (g Grammar) firstOfSymbol(sym string, seen map[string]bool) util.StringSet {
	result := util.NewStringSet()

	if sym == EpsilonSymbolName {
		result.Add(EpsilonSymbolName)
		return result
	}

	if g.IsTerminal(sym) {
		result.Add(sym)
		return result
	}

	// seen guards against true left recursion (a non-terminal reached again
	// on the same derivation path); it is popped after exploring this
	// symbol's productions so a sibling production reaching the same
	// non-terminal by a different path still sees its real FIRST set,
	// rather than treating "already visited anywhere in this call" as
	// "contributes nothing".
	if seen[sym] {
		return result
	}
	seen[sym] = true
	defer delete(seen, sym)

	rule := g.Rule(sym)
	for _, p := range rule.Productions {
		result.AddAll(g.firstOfSequence(p, seen))
	}

	return result
}

// firstOfSequence computes FIRST(X1 X2 ... Xn) for a production's RHS: the
// standard concatenation rule, where the epsilon sentinel only survives into
// the result if every Xi is nullable.
func (g Grammar) firstOfSequence(seq []string, seen map[string]bool) util.StringSet {
	result := util.NewStringSet()

	if len(seq) == 0 {
		result.Add(EpsilonSymbolName)
		return result
	}

	allNullableSoFar := true
	for _, sym := range seq {
		firstOfSym := g.firstOfSymbol(sym, seen)
		for _, t := range firstOfSym.Elements() {
			if t != EpsilonSymbolName {
				result.Add(t)
			}
		}
		if !firstOfSym.Has(EpsilonSymbolName) {
			allNullableSoFar = false
			break
		}
	}
	if allNullableSoFar {
		result.Add(EpsilonSymbolName)
	}

	return result
}

// FIRSTString computes FIRST of an arbitrary symbol sequence (spec §3
// "FIRST set" extended to strings of symbols, used by LL(1) table
// construction and LR closure computation).
func (g Grammar) FIRSTString(seq []string) util.StringSet {
	return g.firstOfSequence(seq, map[string]bool{})
}

// FOLLOW computes the FOLLOW set of non-terminal nt: the set of terminals
// (and possibly "$") that can immediately follow nt in some derivation from
// the start symbol (spec §3 "FOLLOW set"). FOLLOW(start) always contains
// "$" (spec §8 invariant 2).
func (g Grammar) FOLLOW(nt string) util.StringSet {
	follow := map[string]util.StringSet{}
	for _, n := range g.NonTerminals() {
		follow[n] = util.NewStringSet()
	}
	if _, ok := follow[g.start]; ok {
		follow[g.start].Add(EndOfInput)
	}

	changed := true
	for changed {
		changed = false
		for _, r := range g.rules {
			for _, p := range r.Productions {
				for i, sym := range p {
					if g.IsTerminal(sym) {
						continue
					}
					beta := p[i+1:]
					firstBeta := g.firstOfSequence(beta, map[string]bool{})

					for _, t := range firstBeta.Elements() {
						if t == EpsilonSymbolName {
							continue
						}
						if !follow[sym].Has(t) {
							follow[sym].Add(t)
							changed = true
						}
					}

					if firstBeta.Has(EpsilonSymbolName) {
						for _, t := range follow[r.NonTerminal].Elements() {
							if !follow[sym].Has(t) {
								follow[sym].Add(t)
								changed = true
							}
						}
					}
				}
			}
		}
	}

	if _, ok := follow[nt]; !ok {
		return util.NewStringSet()
	}
	return follow[nt]
}

// PREDICT computes the PREDICT set of a single production alternative of
// non-terminal nt: FIRST(prod) if prod is not nullable, unioned with
// FOLLOW(nt) if it is (spec §4.5 "LL(1) table", the set used to decide which
// table cell(s) a production occupies).
func (g Grammar) PREDICT(nt string, prod Production) util.StringSet {
	first := g.firstOfSequence(prod, map[string]bool{})

	result := util.NewStringSet()
	for _, t := range first.Elements() {
		if t != EpsilonSymbolName {
			result.Add(t)
		}
	}

	if first.Has(EpsilonSymbolName) {
		result.AddAll(g.FOLLOW(nt))
	}

	return result
}

// IsLL1 reports whether every pair of distinct alternatives sharing a
// non-terminal has disjoint PREDICT sets (spec §4.5 "LL(1) table", "Conflict
// reporting").
func (g Grammar) IsLL1() bool {
	for _, r := range g.rules {
		for i := 0; i < len(r.Productions); i++ {
			for j := i + 1; j < len(r.Productions); j++ {
				pi := g.PREDICT(r.NonTerminal, r.Productions[i])
				pj := g.PREDICT(r.NonTerminal, r.Productions[j])
				if !pi.DisjointWith(pj) {
					return false
				}
			}
		}
	}
	return true
}
