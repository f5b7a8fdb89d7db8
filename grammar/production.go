package grammar

import "strings"

// Production is the ordered RHS symbol sequence of a rule alternative (spec
// §3 "Production"). An empty Production is an ε-production.
type Production []string

// Epsilon is the sentinel empty Production: a production with no RHS
// symbols at all, representing an ε-alternative (spec §3 "Production", "An
// empty Production is an ε-production").
var Epsilon = Production{}

// Equal reports whether p and o contain the same symbols in the same order.
func (p Production) Equal(o any) bool {
	other, ok := o.(Production)
	if !ok {
		otherPtr, ok := o.(*Production)
		if !ok {
			return false
		} else if otherPtr == nil {
			return false
		} else {
			other = *otherPtr
		}
	}

	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// IsEpsilon reports whether p is an ε-production (empty RHS).
func (p Production) IsEpsilon() bool {
	return len(p) == 0
}

func (p Production) String() string {
	if len(p) == 0 {
		return "ε"
	}
	return strings.Join([]string(p), " ")
}

func (p Production) Copy() Production {
	cp := make(Production, len(p))
	copy(cp, p)
	return cp
}

// Rule is all alternative Productions sharing one LHS non-terminal (spec §3
// groups productions by LHS for lookup; "productions having a given LHS").
type Rule struct {
	NonTerminal string
	Productions []Production
}

// Equal reports whether r and o have the same non-terminal and the same set
// of productions, irrespective of production order (used by tests that
// don't care which alternative index a given RHS landed at).
func (r Rule) Equal(o any) bool {
	other, ok := o.(Rule)
	if !ok {
		otherPtr, ok := o.(*Rule)
		if !ok {
			return false
		} else if otherPtr == nil {
			return false
		} else {
			other = *otherPtr
		}
	}

	if r.NonTerminal != other.NonTerminal {
		return false
	}
	if len(r.Productions) != len(other.Productions) {
		return false
	}

	matched := make([]bool, len(other.Productions))
	for _, p := range r.Productions {
		found := false
		for j, op := range other.Productions {
			if matched[j] {
				continue
			}
			if p.Equal(op) {
				matched[j] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func (r Rule) String() string {
	var sb strings.Builder
	sb.WriteString(r.NonTerminal)
	sb.WriteString(" -> ")
	for i, p := range r.Productions {
		if i > 0 {
			sb.WriteString(" | ")
		}
		sb.WriteString(p.String())
	}
	return sb.String()
}

// Copy returns a deep copy of r.
func (r Rule) Copy() Rule {
	cp := Rule{NonTerminal: r.NonTerminal, Productions: make([]Production, len(r.Productions))}
	for i := range r.Productions {
		cp.Productions[i] = r.Productions[i].Copy()
	}
	return cp
}

// NumberedProduction is a Production together with the normalization
// metadata spec §3 "Production" attaches to it: a stable declaration-order
// number, the LHS it belongs to, an opaque semantic-action body (spec §9
// "Dynamic semantic actions" redesign: actions are opaque byte strings
// passed through to the code generator, never evaluated as host-language
// source by this module), and a resolved precedence level (0 = none).
type NumberedProduction struct {
	Number     int
	LHS        string
	RHS        Production
	Action     []byte
	Precedence int
}

func (np NumberedProduction) String() string {
	return strings.TrimSpace(np.LHS + " -> " + np.RHS.String())
}
