package lex

// ActionType distinguishes what a lex rule's action does once its pattern
// has matched (spec §4.6 "Execute the rule's action").
type ActionType int

const (
	// ActionNone discards the matched lexeme and resumes scanning; no token
	// is emitted (spec's "skip").
	ActionNone ActionType = iota

	// ActionScan emits a token of the given class.
	ActionScan

	// ActionState discards the matched lexeme but pushes a new start
	// condition onto the stack before resuming scanning.
	ActionState

	// ActionScanAndState emits a token of the given class and pushes a new
	// start condition onto the stack.
	ActionScanAndState

	// ActionPopState discards the matched lexeme and pops the start
	// condition stack before resuming scanning.
	ActionPopState

	// ActionScanAndPopState emits a token of the given class and pops the
	// start condition stack.
	ActionScanAndPopState

	// ActionMore concatenates the matched lexeme onto the pending lexeme and
	// resumes scanning without emitting (spec §4.6 "request more").
	ActionMore
)

// Action is what a LexRule does once its pattern matches at the cursor.
type Action struct {
	Type    ActionType
	ClassID string
	State   string
}

// Discard builds an Action that consumes the match and emits no token.
func Discard() Action {
	return Action{Type: ActionNone}
}

// LexAs builds an Action that emits a token of the given class.
func LexAs(classID string) Action {
	return Action{Type: ActionScan, ClassID: classID}
}

// PushState builds an Action that consumes the match, emits no token, and
// pushes newState onto the start-condition stack.
func PushState(newState string) Action {
	return Action{Type: ActionState, State: newState}
}

// LexAndPushState builds an Action that emits a token of the given class and
// pushes newState onto the start-condition stack.
func LexAndPushState(classID, newState string) Action {
	return Action{Type: ActionScanAndState, ClassID: classID, State: newState}
}

// PopState builds an Action that consumes the match, emits no token, and
// pops the start-condition stack.
func PopState() Action {
	return Action{Type: ActionPopState}
}

// LexAndPopState builds an Action that emits a token of the given class and
// pops the start-condition stack.
func LexAndPopState(classID string) Action {
	return Action{Type: ActionScanAndPopState, ClassID: classID}
}

// More builds an Action that appends the match to the pending lexeme without
// emitting a token (spec §4.6 "request more").
func More() Action {
	return Action{Type: ActionMore}
}
