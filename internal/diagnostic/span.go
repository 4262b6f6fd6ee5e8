package diagnostic

import "fmt"

// Span identifies a region of declaration source text.
// The zero Span means "no position available".
type Span struct {
	// Offset is the byte offset of the region start.
	Offset int
	// Line is the 1-based line of the region start.
	Line int
	// Col is the 1-based column of the region start.
	Col int
	// Len is the region length in bytes.
	Len int
}

// IsZero returns true if the span carries no position.
func (s Span) IsZero() bool {
	return s == Span{}
}

// String returns a human-readable "line:col" position.
func (s Span) String() string {
	if s.IsZero() {
		return "?:?"
	}

	return fmt.Sprintf("%d:%d", s.Line, s.Col)
}

// Extend returns a span covering both s and other.
// A zero operand yields the other span unchanged.
func (s Span) Extend(other Span) Span {
	if s.IsZero() {
		return other
	}

	if other.IsZero() {
		return s
	}

	if other.Offset < s.Offset {
		s, other = other, s
	}

	end := other.Offset + other.Len
	if selfEnd := s.Offset + s.Len; selfEnd > end {
		end = selfEnd
	}

	s.Len = end - s.Offset

	return s
}
