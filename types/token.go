package types

// Token is a lexeme read from text combined with the token class it is as
// well as the source location it was matched at (spec §3 "Token").
type Token interface {
	// Class returns the TokenClass of the Token.
	Class() TokenClass

	// Lexeme returns the text that was lexed as the TokenClass of the Token,
	// as it appears in the source text.
	Lexeme() string

	// Location returns the token's source span. It is the zero Location if
	// the tokenizer that produced it was not constructed with location
	// capture enabled.
	Location() Location

	// FullLine returns the full text of the line in source that the token
	// appears on, including both anything that came before the token as well
	// as after it on the line. Used for diagnostic rendering; empty if the
	// tokenizer was not given access to full source lines.
	FullLine() string

	// String is the string representation, for trace/debug output.
	String() string
}
