package parse

import (
	"fmt"

	"github.com/dekarrin/gocc/grammar"
)

// LRActionType tags what an LRAction instructs the driver to do (spec §3
// "LR action").
type LRActionType int

const (
	LRShift LRActionType = iota
	LRReduce
	LRAccept
	LRError
)

func (t LRActionType) String() string {
	switch t {
	case LRShift:
		return "shift"
	case LRReduce:
		return "reduce"
	case LRAccept:
		return "accept"
	default:
		return "error"
	}
}

// LRAction is one ACTION-table cell: what to do given the current state and
// lookahead terminal (spec §3 "LR action").
type LRAction struct {
	Type LRActionType

	// Production is used when Type is LRReduce: the β of A -> β being
	// reduced.
	Production grammar.Production

	// Symbol is used when Type is LRReduce: the A of A -> β.
	Symbol string

	// State is used when Type is LRShift: the state to shift to.
	State string
}

func (act LRAction) String() string {
	switch act.Type {
	case LRAccept:
		return "ACTION<accept>"
	case LRError:
		return "ACTION<error>"
	case LRReduce:
		return fmt.Sprintf("ACTION<reduce %s -> %s>", act.Symbol, act.Production.String())
	case LRShift:
		return fmt.Sprintf("ACTION<shift %s>", act.State)
	default:
		return "ACTION<unknown>"
	}
}

func (act LRAction) Equal(o any) bool {
	other, ok := o.(LRAction)
	if !ok {
		otherPtr, ok := o.(*LRAction)
		if !ok || otherPtr == nil {
			return false
		}
		other = *otherPtr
	}

	return act.Type == other.Type &&
		act.Production.Equal(other.Production) &&
		act.Symbol == other.Symbol &&
		act.State == other.State
}

func isShiftReduceConflict(act1, act2 LRAction) (isSR bool, shiftAct LRAction) {
	if act1.Type == LRReduce && act2.Type == LRShift {
		return true, act2
	}
	if act2.Type == LRReduce && act1.Type == LRShift {
		return true, act1
	}
	return false, act1
}

func conflictDescription(a LRAction) string {
	switch a.Type {
	case LRShift:
		return fmt.Sprintf("shift to %s", a.State)
	case LRReduce:
		return fmt.Sprintf("reduce %s -> %s", a.Symbol, a.Production.String())
	case LRAccept:
		return "accept"
	default:
		return "error"
	}
}
