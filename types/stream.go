package types

// TokenStream is a stream of tokens read from source text, produced by a
// Tokenizer (C7) and consumed by the LR driver (C11) or LL driver (C12). The
// stream may be lazily-loaded or immediately available; both drivers only
// ever call Next/Peek/HasNext, never rewind.
type TokenStream interface {
	// Next returns the next token in the stream and advances the stream by
	// one token.
	Next() Token

	// Peek returns the next token in the stream without advancing the
	// stream.
	Peek() Token

	// HasNext returns whether the stream has any additional tokens.
	HasNext() bool
}
