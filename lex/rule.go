package lex

// ConditionKind distinguishes an inclusive start condition (unconditional
// rules stay active) from an exclusive one (only rules explicitly tagged
// with it are active) — spec §4.6 "Start conditions".
type ConditionKind int

const (
	Inclusive ConditionKind = iota
	Exclusive
)

// Initial is the start condition every Tokenizer begins in (spec §4.6
// "Model": "a stack of active start conditions initialized with INITIAL").
const Initial = "INITIAL"

// StartCondition is a named tokenizer mode declared on a LexGrammar.
type StartCondition struct {
	Name string
	Kind ConditionKind
}

// LexRule is one regex matcher, its action, and the start conditions under
// which it participates in matching (spec §3 "Lex rule", C3). A rule with no
// explicit States is "always active": it participates under every inclusive
// condition as well as INITIAL.
type LexRule struct {
	// Pattern is the rule's matcher, written in the host regex dialect, with
	// any macro references (spec's "macro-expansion table") still
	// unexpanded. The "^" anchor that ties a match to the cursor is added by
	// LexGrammar.Compile, not written in the rule itself.
	Pattern string

	Action Action

	// States is the set of start conditions this rule is explicitly tagged
	// with. Empty means "always active" (spec §4.6 "rules active in the top
	// start condition" = "always-active rules plus rules whose condition
	// set includes the top").
	States []string
}

func (r LexRule) explicitlyActiveIn(state string) bool {
	for _, s := range r.States {
		if s == state {
			return true
		}
	}
	return false
}

func (r LexRule) alwaysActive() bool {
	return len(r.States) == 0
}
