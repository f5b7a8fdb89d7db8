package parse

import "github.com/emirpasic/gods/stacks/arraystack"

// gstack is a thin generic facade over gods/stacks/arraystack (SPEC_FULL.md
// §3 domain-stack wiring), since arraystack predates Go generics and stores
// interface{}. It backs LRParser's state stack and token/subtree buffers and
// LLParser's symbol and node stacks.
type gstack[T any] struct {
	s *arraystack.Stack
}

func newGstack[T any]() gstack[T] {
	return gstack[T]{s: arraystack.New()}
}

func (g gstack[T]) Push(v T) {
	g.s.Push(v)
}

func (g gstack[T]) Pop() T {
	v, _ := g.s.Pop()
	t, _ := v.(T)
	return t
}

func (g gstack[T]) Peek() T {
	v, _ := g.s.Peek()
	t, _ := v.(T)
	return t
}

func (g gstack[T]) Empty() bool {
	return g.s.Empty()
}

func (g gstack[T]) Len() int {
	return g.s.Size()
}

// Values returns the stack's contents top-to-bottom (arraystack's own
// iteration order), typed back to T.
func (g gstack[T]) Values() []T {
	raw := g.s.Values()
	out := make([]T, len(raw))
	for i, v := range raw {
		out[i], _ = v.(T)
	}
	return out
}
