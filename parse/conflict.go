package parse

import (
	"github.com/dekarrin/gocc/gcerrors"
	"github.com/dekarrin/gocc/grammar"
)

// resolution is the outcome of arbitrating a single ACTION-table cell
// conflict (spec §4.4 "Conflict arbitration").
type resolution struct {
	action   LRAction
	warning  string // non-empty if the resolution should be surfaced as an ambiguity warning
	conflict error  // non-nil if the conflict could not be resolved and construction must fail
}

// resolveShiftReduce arbitrates a shift-on-terminal-a vs reduce-by-p
// conflict using g's operator table (spec §4.4):
//
//   - both t and p have precedence: higher precedence wins; equal
//     precedence is broken by associativity (left -> reduce, right -> shift,
//     nonassoc -> runtime error action);
//   - precedence partial or missing: if resolveConflicts is set, prefer
//     shift (spec §9 decided open question); otherwise report the conflict.
func resolveShiftReduce(g grammar.Grammar, terminal string, shift, reduce LRAction, resolveConflicts bool) resolution {
	tPrec, tHas := g.Operators().PrecedenceOf(terminal)
	pPrec, pHas := g.ProductionPrecedence(reduce.Production)

	if tHas && pHas {
		if tPrec > pPrec {
			return resolution{action: shift}
		}
		if pPrec > tPrec {
			return resolution{action: reduce}
		}
		assoc, _ := g.Operators().AssocOf(terminal)
		switch assoc {
		case grammar.LeftAssoc:
			return resolution{action: reduce}
		case grammar.RightAssoc:
			return resolution{action: shift}
		default:
			return resolution{action: LRAction{Type: LRError}}
		}
	}

	if resolveConflicts {
		return resolution{
			action:  shift,
			warning: makeConflictMessage(terminal, shift, reduce),
		}
	}

	return resolution{conflict: gcerrors.Conflict(
		"ACTION["+terminal+"]",
		conflictDescription(shift),
		conflictDescription(reduce),
	)}
}

// resolveReduceReduce arbitrates two competing reductions on the same
// terminal: the production with the lower declaration number wins (spec
// §4.4 "reduce/reduce: prefer the production with the lower number; report
// unless resolveConflicts").
func resolveReduceReduce(g grammar.Grammar, terminal string, act1, act2 LRAction, resolveConflicts bool) resolution {
	n1, _ := g.ProductionNumber(act1.Symbol, act1.Production)
	n2, _ := g.ProductionNumber(act2.Symbol, act2.Production)

	winner, loser := act1, act2
	if n2 < n1 {
		winner, loser = act2, act1
	}

	if resolveConflicts {
		return resolution{action: winner, warning: makeConflictMessage(terminal, winner, loser)}
	}

	return resolution{conflict: gcerrors.Conflict(
		"ACTION["+terminal+"]",
		conflictDescription(act1),
		conflictDescription(act2),
	)}
}

func makeConflictMessage(terminal string, kept, dropped LRAction) string {
	return "conflict on " + terminal + ": chose (" + conflictDescription(kept) + ") over (" + conflictDescription(dropped) + ")"
}
