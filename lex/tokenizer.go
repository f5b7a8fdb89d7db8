package lex

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/width"

	"github.com/dekarrin/gocc/gcerrors"
	"github.com/dekarrin/gocc/types"
)

// Tokenizer is a cursor over an input string plus a stack of active start
// conditions, producing a lazy types.TokenStream (spec §4.6 "Tokenizer",
// C7). A Tokenizer is mutable, single-use, and not safe to share between
// goroutines (spec §5 "Tokenizer and Parser instances are not shareable").
type Tokenizer struct {
	grammar *LexGrammar
	input   string

	offset int
	line   int
	column int

	states []string

	captureLocations bool
	done             bool

	// pending accumulates lexeme text across an ActionMore sequence (spec
	// §4.6 "request more (concatenate next match to this one)").
	pending       string
	pendingStart  types.Location
	pendingActive bool
}

// NewTokenizer builds a Tokenizer over input using the rules of grammar,
// which must already have had Compile called on it. captureLocations
// controls whether Token.Location() populates a non-zero Location (spec §6
// "Grammar.from(description, mode, captureLocations)" applies the same flag
// to tokenization).
func NewTokenizer(grammar *LexGrammar, input string, captureLocations bool) *Tokenizer {
	return &Tokenizer{
		grammar:          grammar,
		input:            input,
		line:             1,
		column:           1,
		states:           []string{Initial},
		captureLocations: captureLocations,
	}
}

// HasNext reports whether the tokenizer has not yet produced its terminal
// EOF token.
func (tz *Tokenizer) HasNext() bool {
	return !tz.done
}

// Next returns the next token in the stream and advances the cursor. Once
// the input is exhausted, it returns a token of class types.TokenEndOfText
// on every subsequent call.
func (tz *Tokenizer) Next() types.Token {
	return tz.next(false)
}

// Peek returns the next token without advancing the tokenizer's externally
// visible state.
func (tz *Tokenizer) Peek() types.Token {
	return tz.next(true)
}

func (tz *Tokenizer) next(peek bool) types.Token {
	savedOffset, savedLine, savedColumn := tz.offset, tz.line, tz.column
	savedStates := append([]string{}, tz.states...)
	savedDone := tz.done
	savedPending, savedPendingStart, savedPendingActive := tz.pending, tz.pendingStart, tz.pendingActive

	tok := tz.scan()

	if peek {
		tz.offset, tz.line, tz.column = savedOffset, savedLine, savedColumn
		tz.states = savedStates
		tz.done = savedDone
		tz.pending, tz.pendingStart, tz.pendingActive = savedPending, savedPendingStart, savedPendingActive
	}

	return tok
}

func (tz *Tokenizer) scan() types.Token {
	if tz.done {
		return tz.eofToken()
	}

	for {
		if tz.offset >= len(tz.input) {
			tz.done = true
			if tz.pendingActive {
				// input ended mid-`more` sequence; nothing more can ever
				// arrive, so the lexeme as accumulated is final but there is
				// no rule action left to run. Surface it as an error: a
				// well-formed lex grammar's more-using rules are expected to
				// be followed by a scanning rule before EOF.
				return tz.errTokenf("unexpected end of input while accumulating a lexeme")
			}
			return tz.eofToken()
		}

		state := tz.currentState()
		pat := tz.grammar.superPattern[state]
		indices := tz.grammar.activeRules[state]
		if pat == nil || len(indices) == 0 {
			return tz.unexpectedInputToken()
		}

		matches := pat.FindStringSubmatchIndex(tz.input[tz.offset:])
		if matches == nil {
			return tz.unexpectedInputToken()
		}

		groupIdx, lexeme := selectMatch(matches, tz.input[tz.offset:])
		ruleIdx := indices[groupIdx]
		rule := tz.grammar.ruleAt(ruleIdx)

		start := tz.currentLocation()
		tz.advance(lexeme)
		end := tz.currentLocation()

		switch rule.Action.Type {
		case ActionNone:
			continue
		case ActionState:
			tz.pushState(rule.Action.State)
			continue
		case ActionPopState:
			tz.popState()
			continue
		case ActionMore:
			if !tz.pendingActive {
				tz.pendingStart = start
				tz.pendingActive = true
			}
			tz.pending += lexeme
			continue
		case ActionScan:
			full, loc := tz.finishPending(lexeme, start, end)
			return tz.emit(rule.Action.ClassID, full, loc)
		case ActionScanAndState:
			full, loc := tz.finishPending(lexeme, start, end)
			tok := tz.emit(rule.Action.ClassID, full, loc)
			tz.pushState(rule.Action.State)
			return tok
		case ActionScanAndPopState:
			full, loc := tz.finishPending(lexeme, start, end)
			tok := tz.emit(rule.Action.ClassID, full, loc)
			tz.popState()
			return tok
		}
	}
}

// finishPending combines any lexeme accumulated by a preceding ActionMore
// sequence with the final matched lexeme, and computes the full span: from
// where the `more` sequence began (or this match's own start, if there was
// no pending sequence) to this match's end.
func (tz *Tokenizer) finishPending(lexeme string, start, end types.Location) (string, types.Location) {
	if !tz.pendingActive {
		return lexeme, start.Span(end)
	}
	full := tz.pending + lexeme
	loc := tz.pendingStart.Span(end)
	tz.pending = ""
	tz.pendingActive = false
	return full, loc
}

func (tz *Tokenizer) currentState() string {
	return tz.states[len(tz.states)-1]
}

func (tz *Tokenizer) pushState(state string) {
	tz.states = append(tz.states, state)
}

func (tz *Tokenizer) popState() {
	if len(tz.states) > 1 {
		tz.states = tz.states[:len(tz.states)-1]
	}
}

func (tz *Tokenizer) currentLocation() types.Location {
	if !tz.captureLocations {
		return types.Location{}
	}
	return types.AtCursor(tz.offset, tz.line, tz.column)
}

// advance moves the cursor past lexeme, updating line/column counters by
// counting newlines within it (spec §4.6 "update line/column counters by
// counting newlines inside the match"; "column resets to 1 after \n"). Each
// rune's contribution to the column count is weighted by its east-asian
// display width via golang.org/x/text/width, so a combining mark (width
// Neutral over a base rune already counted) does not double-advance the
// column and a fullwidth/wide rune advances it by two, matching what a
// terminal or editor would show as the caret position.
func (tz *Tokenizer) advance(lexeme string) {
	for _, r := range lexeme {
		if r == '\n' {
			tz.line++
			tz.column = 1
			continue
		}
		tz.column += columnWidth(r)
	}
	tz.offset += len(lexeme)
}

// columnWidth returns how many columns r occupies for cursor-advancement
// purposes: 0 for combining/non-spacing marks (they render atop the
// previous rune), 2 for wide/fullwidth runes, 1 otherwise.
func columnWidth(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	case width.EastAsianNarrow, width.EastAsianAmbiguous, width.Neutral:
		if unicode.Is(unicode.Mn, r) {
			return 0
		}
		return 1
	default:
		return 1
	}
}

func (tz *Tokenizer) emit(classID, lexeme string, loc types.Location) types.Token {
	class := tz.grammar.classFor(classID)
	return tokenizerToken{
		class:    class,
		lexeme:   lexeme,
		loc:      loc,
		fullLine: tz.currentFullLine(),
	}
}

func (tz *Tokenizer) eofToken() types.Token {
	return tokenizerToken{
		class:    types.TokenEndOfText,
		loc:      tz.currentLocation(),
		fullLine: tz.currentFullLine(),
	}
}

func (tz *Tokenizer) unexpectedInputToken() types.Token {
	tz.done = true
	var ch rune
	if tz.offset < len(tz.input) {
		ch, _ = utf8.DecodeRuneInString(tz.input[tz.offset:])
	}
	err := gcerrors.UnexpectedInput(tz.offset, tz.line, tz.column, ch, tz.currentFullLine())
	return tokenizerToken{
		class:    types.TokenError,
		lexeme:   err.Error(),
		loc:      tz.currentLocation(),
		fullLine: tz.currentFullLine(),
	}
}

func (tz *Tokenizer) errTokenf(msg string) types.Token {
	tz.done = true
	return tokenizerToken{
		class:    types.TokenError,
		lexeme:   msg,
		loc:      tz.currentLocation(),
		fullLine: tz.currentFullLine(),
	}
}

func (tz *Tokenizer) currentFullLine() string {
	if !tz.captureLocations {
		return ""
	}
	lineStart := tz.offset
	for lineStart > 0 && tz.input[lineStart-1] != '\n' {
		lineStart--
	}
	lineEnd := tz.offset
	for lineEnd < len(tz.input) && tz.input[lineEnd] != '\n' {
		lineEnd++
	}
	return tz.input[lineStart:lineEnd]
}

// selectMatch picks the winning capture group from a FindStringSubmatchIndex
// result: groups 1..n correspond 1:1 to the rule indices the super-regex was
// built from. On a tie in match length, the earliest-declared rule wins
// (spec §4.6 invariant 7; the same GNU-lex tie-break the teacher's
// lex/lazy.go selectMatch performs).
func selectMatch(pairs []int, sourceFromCursor string) (groupIdx int, lexeme string) {
	bestLen := -1
	bestGroup := -1

	for g := 1; g*2+1 < len(pairs); g++ {
		left, right := pairs[g*2], pairs[g*2+1]
		if left == -1 || right == -1 {
			continue
		}
		length := right - left
		if length > bestLen {
			bestLen = length
			bestGroup = g - 1
		}
	}

	if bestGroup < 0 {
		return 0, ""
	}

	left, right := pairs[(bestGroup+1)*2], pairs[(bestGroup+1)*2+1]
	return bestGroup, sourceFromCursor[left:right]
}
