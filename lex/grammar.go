// Package lex implements the lexical side of the toolkit: lex rules grouped
// into start conditions (C3/C4), and the longest-match tokenizer driven by
// them (C7).
package lex

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/emirpasic/gods/sets/hashset"

	"github.com/dekarrin/gocc/gcerrors"
	"github.com/dekarrin/gocc/types"
)

// LexGrammar is an ordered collection of LexRule plus a macro-expansion
// table and start-condition declarations (spec §3 "Lex rule", C4). It must
// be compiled with Compile before a Tokenizer can be built from it.
type LexGrammar struct {
	rules      []LexRule
	macros     map[string]string
	conditions map[string]ConditionKind
	classes    map[string]types.TokenClass

	// superPattern holds one compiled "super-regex" per start condition:
	// every active rule's (expanded) pattern wrapped in its own capturing
	// group and joined by alternation, anchored at the start (spec §9
	// "Regex compilation" - the teacher's lex/lazy.go super-regex
	// technique, generalized from one global pattern to one per start
	// condition since exclusive conditions change the active rule set).
	superPattern map[string]*regexp.Regexp

	// activeRules maps a start condition to the rule indices active within
	// it, precomputed once here rather than filtered per token (spec §9
	// "Start-condition stack and rule filtering").
	activeRules map[string][]int

	// activeRuleSet mirrors activeRules as a hashset, used only by
	// IsRuleActive to answer "is rule i active in state s" without a linear
	// scan.
	activeRuleSet map[string]*hashset.Set
}

// NewLexGrammar returns an empty LexGrammar with the INITIAL start condition
// pre-declared as inclusive.
func NewLexGrammar() *LexGrammar {
	return &LexGrammar{
		macros:     map[string]string{},
		conditions: map[string]ConditionKind{Initial: Inclusive},
		classes:    map[string]types.TokenClass{},
	}
}

// AddMacro declares a named regex fragment usable in rule patterns as
// "{{name}}"; macros are expanded textually before compilation (spec §3
// "Lex rule": "Macros in the regex source are expanded textually before
// compilation").
func (lg *LexGrammar) AddMacro(name, pattern string) {
	lg.macros[name] = pattern
}

// AddCondition declares a start condition and whether it is inclusive or
// exclusive (spec §4.6 "Start conditions").
func (lg *LexGrammar) AddCondition(name string, kind ConditionKind) {
	lg.conditions[name] = kind
}

// AddClass declares a token class usable as the ClassID of a LexAs /
// LexAndPushState / LexAndPopState action.
func (lg *LexGrammar) AddClass(class types.TokenClass) {
	lg.classes[class.ID()] = class
}

// AddRule appends a rule to the grammar. Rule declaration order is
// significant: it is the GNU-lex tie-break order used when two rules
// produce a match of equal length at the same cursor position (spec §4.6
// invariant 7).
func (lg *LexGrammar) AddRule(rule LexRule) error {
	if rule.Action.Type == ActionScan || rule.Action.Type == ActionScanAndState || rule.Action.Type == ActionScanAndPopState {
		if _, ok := lg.classes[rule.Action.ClassID]; !ok {
			return gcerrors.Grammar("lex rule references undeclared token class %q", rule.Action.ClassID)
		}
	}
	if rule.Action.Type == ActionState || rule.Action.Type == ActionScanAndState {
		if rule.Action.State == "" {
			return gcerrors.Grammar("lex rule action shifts state but names no target state")
		}
	}

	lg.rules = append(lg.rules, rule)
	return nil
}

// expandMacros replaces every "{{name}}" occurrence in pat with the named
// macro's pattern, recursively, up to a bound that catches a cyclic macro
// definition.
func (lg *LexGrammar) expandMacros(pat string) (string, error) {
	const maxDepth = 32
	for depth := 0; depth < maxDepth; depth++ {
		expanded, changed := lg.expandMacrosOnce(pat)
		if !changed {
			return expanded, nil
		}
		pat = expanded
	}
	return "", gcerrors.Grammar("macro expansion did not terminate (cyclic macro definition?) starting from %q", pat)
}

func (lg *LexGrammar) expandMacrosOnce(pat string) (string, bool) {
	changed := false
	var sb strings.Builder
	for i := 0; i < len(pat); {
		if strings.HasPrefix(pat[i:], "{{") {
			end := strings.Index(pat[i:], "}}")
			if end >= 0 {
				name := pat[i+2 : i+end]
				if macroPat, ok := lg.macros[name]; ok {
					sb.WriteString(macroPat)
					i += end + 2
					changed = true
					continue
				}
			}
		}
		sb.WriteByte(pat[i])
		i++
	}
	return sb.String(), changed
}

// Compile expands macros, partitions rules by active start condition, and
// builds one anchored "super-regex" per condition. It must be called
// exactly once before the grammar is handed to NewTokenizer.
func (lg *LexGrammar) Compile() error {
	lg.superPattern = map[string]*regexp.Regexp{}
	lg.activeRules = map[string][]int{}
	lg.activeRuleSet = map[string]*hashset.Set{}

	for state, kind := range lg.conditions {
		var indices []int
		for i, r := range lg.rules {
			if r.explicitlyActiveIn(state) {
				indices = append(indices, i)
				continue
			}
			if r.alwaysActive() && kind == Inclusive {
				indices = append(indices, i)
			}
		}

		set := hashset.New()
		for _, i := range indices {
			set.Add(i)
		}
		lg.activeRuleSet[state] = set
		lg.activeRules[state] = indices

		if len(indices) == 0 {
			continue
		}

		var superRegex strings.Builder
		superRegex.WriteString("^(?:")
		for j, i := range indices {
			expanded, err := lg.expandMacros(lg.rules[i].Pattern)
			if err != nil {
				return err
			}
			fmt.Fprintf(&superRegex, "(%s)", expanded)
			if j+1 < len(indices) {
				superRegex.WriteRune('|')
			}
		}
		superRegex.WriteRune(')')

		compiled, err := regexp.Compile(superRegex.String())
		if err != nil {
			return gcerrors.Grammar("compiling lex rules active in state %q: %s", state, err.Error())
		}
		// Go's regexp alternation is leftmost-first by default: it would
		// stop at the first branch that matches at all, rather than the
		// one that matches the most text. Longest() switches the engine to
		// leftmost-longest semantics, which is what selectMatch's
		// length comparison across capture groups requires (spec's
		// "token length is the longest match across all active rules").
		compiled.Longest()
		lg.superPattern[state] = compiled
	}

	return nil
}

// IsRuleActive reports whether the rule at declaration index ruleIdx
// participates in matching while the tokenizer is in the given start
// condition. Exposed for diagnostics and tests; the tokenizer itself always
// matches through the precomputed super-regex rather than calling this.
func (lg *LexGrammar) IsRuleActive(state string, ruleIdx int) bool {
	set, ok := lg.activeRuleSet[state]
	if !ok {
		return false
	}
	return set.Contains(ruleIdx)
}

// ruleAt returns the rule at the given declaration index.
func (lg *LexGrammar) ruleAt(i int) LexRule {
	return lg.rules[i]
}

// classFor resolves a declared token class by id.
func (lg *LexGrammar) classFor(id string) types.TokenClass {
	return lg.classes[id]
}
