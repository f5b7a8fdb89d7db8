package grammar

import "fmt"

// Associativity is the direction used to arbitrate a shift/reduce conflict
// between two actions of equal precedence (spec §3 "Operator table").
type Associativity int

const (
	NonAssoc Associativity = iota
	LeftAssoc
	RightAssoc
)

func (a Associativity) String() string {
	switch a {
	case LeftAssoc:
		return "left"
	case RightAssoc:
		return "right"
	default:
		return "nonassoc"
	}
}

// OperatorLevel is one precedence level of the operator table: a 1-indexed
// level (increasing = tighter binding, per spec §3), its associativity, and
// the terminals that sit at that level.
type OperatorLevel struct {
	Level     int
	Assoc     Associativity
	Terminals []string
}

// OperatorTable is the ordered list of precedence levels a Grammar was
// declared with (spec §3 "Operator table", §4.1 "Build operator table from
// operators input"). Level 1 binds loosest; increasing level binds tighter.
type OperatorTable struct {
	levels    []OperatorLevel
	termLevel map[string]int
}

// NewOperatorTable builds an OperatorTable from levels in loosest-to-tightest
// declaration order, numbering them 1..len(levels).
func NewOperatorTable(levels ...OperatorLevel) (OperatorTable, error) {
	ot := OperatorTable{termLevel: map[string]int{}}
	for i, lvl := range levels {
		lvl.Level = i + 1
		for _, t := range lvl.Terminals {
			if _, exists := ot.termLevel[t]; exists {
				return OperatorTable{}, fmt.Errorf("terminal %q declared at more than one precedence level", t)
			}
			ot.termLevel[t] = lvl.Level
		}
		ot.levels = append(ot.levels, lvl)
	}
	return ot, nil
}

// PrecedenceOf returns the 1-indexed precedence level of terminal t, and
// whether it has one at all.
func (ot OperatorTable) PrecedenceOf(t string) (int, bool) {
	lvl, ok := ot.termLevel[t]
	return lvl, ok
}

// AssocOf returns the associativity declared for terminal t's precedence
// level. If t has no declared precedence, NonAssoc is returned along with
// false.
func (ot OperatorTable) AssocOf(t string) (Associativity, bool) {
	lvl, ok := ot.termLevel[t]
	if !ok {
		return NonAssoc, false
	}
	return ot.levels[lvl-1].Assoc, true
}

// Levels returns the declared levels in loosest-to-tightest order.
func (ot OperatorTable) Levels() []OperatorLevel {
	return append([]OperatorLevel{}, ot.levels...)
}

func (ot OperatorTable) Copy() OperatorTable {
	cp := OperatorTable{termLevel: map[string]int{}}
	for k, v := range ot.termLevel {
		cp.termLevel[k] = v
	}
	cp.levels = append(cp.levels, ot.levels...)
	return cp
}
