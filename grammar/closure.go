package grammar

import "github.com/dekarrin/gocc/internal/util"

// LR0_CLOSURE computes the closure of an LR(0) item set: repeatedly adding,
// for every item [A -> α.Bβ] in the set with B a non-terminal, the items
// [B -> .γ] for every production B -> γ, until no new items are added (spec
// §3 "LR item", dragon-book Algorithm 4.31 "CLOSURE").
func (g Grammar) LR0_CLOSURE(I util.SVSet[LR0Item]) util.SVSet[LR0Item] {
	closure := util.NewSVSet[LR0Item](I)

	changed := true
	for changed {
		changed = false
		for _, itemName := range closure.Elements() {
			item := closure.Get(itemName)
			if len(item.Right) == 0 {
				continue
			}
			B := item.Right[0]
			if g.IsTerminal(B) {
				continue
			}

			rule := g.Rule(B)
			for _, gamma := range rule.Productions {
				var newItem LR0Item
				if gamma.IsEpsilon() {
					newItem = LR0Item{NonTerminal: B, Left: nil, Right: nil}
				} else {
					newItem = LR0Item{NonTerminal: B, Left: nil, Right: append([]string{}, gamma...)}
				}
				name := newItem.String()
				if !closure.Has(name) {
					closure.Set(name, newItem)
					changed = true
				}
			}
		}
	}

	return closure
}

// LR0_GOTO computes GOTO(I, X): the closure of the kernel formed by
// advancing the dot past X in every item of I whose next symbol is X (spec
// §3 "LR item", dragon-book Algorithm 4.32 "GOTO").
func (g Grammar) LR0_GOTO(I util.SVSet[LR0Item], X string) util.SVSet[LR0Item] {
	kernel := util.NewSVSet[LR0Item]()

	for _, itemName := range I.Elements() {
		item := I.Get(itemName)
		if len(item.Right) == 0 || item.Right[0] != X {
			continue
		}

		moved := LR0Item{
			NonTerminal: item.NonTerminal,
			Left:        append(append([]string{}, item.Left...), X),
			Right:       append([]string{}, item.Right[1:]...),
		}
		kernel.Set(moved.String(), moved)
	}

	return g.LR0_CLOSURE(kernel)
}

// CanonicalLR0Items computes the canonical collection of sets of LR(0) items
// for g, which must already be augmented (spec §3 "Canonical collection",
// dragon-book Algorithm 4.33 "Construction of the canonical collection of
// sets of LR(0) items"). States are keyed by the StringOrdered form of their
// item set, giving a stable, order-independent state identity.
func (g Grammar) CanonicalLR0Items() util.SVSet[util.SVSet[LR0Item]] {
	startItem := LR0Item{NonTerminal: g.start, Right: []string{g.Rule(g.start).Productions[0][0]}}
	startSet := g.LR0_CLOSURE(util.SVSet[LR0Item]{startItem.String(): startItem})

	collection := util.NewSVSet[util.SVSet[LR0Item]]()
	collection.Set(startSet.StringOrdered(), startSet)

	symbols := append(append([]string{}, g.NonTerminals()...), g.Terminals()...)

	changed := true
	for changed {
		changed = false
		for _, stateName := range collection.Elements() {
			I := collection.Get(stateName)
			for _, X := range symbols {
				goTo := g.LR0_GOTO(I, X)
				if goTo.Empty() {
					continue
				}
				key := goTo.StringOrdered()
				if !collection.Has(key) {
					collection.Set(key, goTo)
					changed = true
				}
			}
		}
	}

	return collection
}

// LR1_CLOSURE computes the closure of an LR(1) item set: as LR0_CLOSURE, but
// each newly added item [B -> .γ, b] receives a lookahead b drawn from
// FIRST(βa) for every item [A -> α.Bβ, a] already in the set (dragon-book
// Algorithm 4.40 "CLOSURE (LR(1) items)").
func (g Grammar) LR1_CLOSURE(I util.SVSet[LR1Item]) util.SVSet[LR1Item] {
	closure := util.NewSVSet[LR1Item](I)

	changed := true
	for changed {
		changed = false
		for _, itemName := range closure.Elements() {
			item := closure.Get(itemName)
			if len(item.Right) == 0 {
				continue
			}
			B := item.Right[0]
			if g.IsTerminal(B) {
				continue
			}
			beta := item.Right[1:]

			lookaheadSeq := append(append([]string{}, beta...), item.Lookahead)
			firstBetaA := g.firstOfSequence(lookaheadSeq, map[string]bool{})

			rule := g.Rule(B)
			for _, gamma := range rule.Productions {
				for _, b := range firstBetaA.Elements() {
					if b == EpsilonSymbolName {
						continue
					}
					var newCore LR0Item
					if gamma.IsEpsilon() {
						newCore = LR0Item{NonTerminal: B}
					} else {
						newCore = LR0Item{NonTerminal: B, Right: append([]string{}, gamma...)}
					}
					newItem := LR1Item{LR0Item: newCore, Lookahead: b}
					name := newItem.String()
					if !closure.Has(name) {
						closure.Set(name, newItem)
						changed = true
					}
				}
			}
		}
	}

	return closure
}

// LR1_GOTO computes GOTO(I, X) for an LR(1) item set I (dragon-book Algorithm
// 4.40's GOTO analog): advance the dot past X in every item whose next
// symbol is X, preserving that item's lookahead, then take the closure.
func (g Grammar) LR1_GOTO(I util.SVSet[LR1Item], X string) util.SVSet[LR1Item] {
	kernel := util.NewSVSet[LR1Item]()

	for _, itemName := range I.Elements() {
		item := I.Get(itemName)
		if len(item.Right) == 0 || item.Right[0] != X {
			continue
		}

		moved := LR1Item{
			LR0Item: LR0Item{
				NonTerminal: item.NonTerminal,
				Left:        append(append([]string{}, item.Left...), X),
				Right:       append([]string{}, item.Right[1:]...),
			},
			Lookahead: item.Lookahead,
		}
		kernel.Set(moved.String(), moved)
	}

	return g.LR1_CLOSURE(kernel)
}
