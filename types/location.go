package types

import "fmt"

// Location is the source span of a token or, after an LR/LL reduction, of
// the synthesized value of a non-terminal (spec §3 "Token", §6 "Location
// record"). Offsets are 0-indexed and half-open: StartOffset is inclusive,
// EndOffset is exclusive. Lines and columns are 1-indexed; column resets to
// 1 immediately after a newline (spec §4.6 "Location semantics").
type Location struct {
	StartOffset int
	EndOffset   int
	StartLine   int
	EndLine     int
	StartColumn int
	EndColumn   int
}

// Zero returns whether loc is the unset location, with every field zero.
// An ε-production reduction carries a zero-width location at the current
// cursor (see AtCursor), which is Zero only at the unset cursor.
func (loc Location) Zero() bool {
	return loc == Location{}
}

// Span returns the smallest Location that covers both loc and end, i.e. one
// that starts where loc starts and ends where end ends. This implements
// spec §8 invariant 9: for a reduction A -> X1...Xk with k>=1, the result
// location spans from loc(X1) to loc(Xk).
func (loc Location) Span(end Location) Location {
	return Location{
		StartOffset: loc.StartOffset,
		EndOffset:   end.EndOffset,
		StartLine:   loc.StartLine,
		EndLine:     end.EndLine,
		StartColumn: loc.StartColumn,
		EndColumn:   end.EndColumn,
	}
}

// AtCursor returns a zero-width Location anchored at the given offset/line/
// column, used for the default location of an ε-production reduction.
func AtCursor(offset, line, column int) Location {
	return Location{
		StartOffset: offset,
		EndOffset:   offset,
		StartLine:   line,
		EndLine:     line,
		StartColumn: column,
		EndColumn:   column,
	}
}

func (loc Location) String() string {
	if loc.StartLine == loc.EndLine {
		return fmt.Sprintf("line %d, col %d-%d", loc.StartLine, loc.StartColumn, loc.EndColumn)
	}
	return fmt.Sprintf("line %d col %d - line %d col %d", loc.StartLine, loc.StartColumn, loc.EndLine, loc.EndColumn)
}
