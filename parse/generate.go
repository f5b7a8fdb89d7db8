package parse

import "github.com/dekarrin/gocc/grammar"

// GenerateLR0Parser builds the LR(0) table for g and wraps it in a driver
// (spec external interface "buildLRTable(grammar, collection,
// resolveConflicts)" followed by "parseLR(grammar, table, input)" collapsed
// into one call), grounded on the teacher's GenerateSimpleLRParser-style
// build+wrap convenience constructors in parse/slr.go.
func GenerateLR0Parser(g grammar.Grammar, resolveConflicts bool) (*LRParser, []string, error) {
	table, warnings, err := NewLR0Table(g, resolveConflicts)
	if err != nil {
		return nil, warnings, err
	}
	return NewLRParser(table, g), warnings, nil
}

// GenerateSLR1Parser builds the SLR(1) table for g and wraps it in a driver.
func GenerateSLR1Parser(g grammar.Grammar, resolveConflicts bool) (*LRParser, []string, error) {
	table, warnings, err := NewSLR1Table(g, resolveConflicts)
	if err != nil {
		return nil, warnings, err
	}
	return NewLRParser(table, g), warnings, nil
}

// GenerateCanonicalLR1Parser builds the CLR(1) table for g and wraps it in a
// driver.
func GenerateCanonicalLR1Parser(g grammar.Grammar, resolveConflicts bool) (*LRParser, []string, error) {
	table, warnings, err := NewCLR1Table(g, resolveConflicts)
	if err != nil {
		return nil, warnings, err
	}
	return NewLRParser(table, g), warnings, nil
}

// GenerateLALR1Parser builds the LALR(1) table for g and wraps it in a
// driver.
func GenerateLALR1Parser(g grammar.Grammar, resolveConflicts bool) (*LRParser, []string, error) {
	table, warnings, err := NewLALR1Table(g, resolveConflicts)
	if err != nil {
		return nil, warnings, err
	}
	return NewLRParser(table, g), warnings, nil
}

// GenerateLL1Parser builds the LL(1) table for g and wraps it in a driver
// (spec external interface "buildLLTable(grammar)" + "parseLL(grammar,
// table, input)" collapsed into one call).
func GenerateLL1Parser(g grammar.Grammar) (*LLParser, error) {
	return NewLLParser(g)
}
