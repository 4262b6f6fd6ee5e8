package modifier

import (
	"strconv"

	"autoimpl-generator/internal/diagnostic"
)

// FieldRef identifies one field in a modifier directive, by name for
// named records or by zero-based index for positional records.
type FieldRef struct {
	// Name is the field identifier. Empty for positional references.
	Name string
	// Index is the field position. -1 for named references.
	Index int
	// Span locates the reference in the invocation arguments.
	Span diagnostic.Span
}

// String returns the reference as it appeared in the directive.
func (r FieldRef) String() string {
	if r.Name != "" {
		return r.Name
	}

	return strconv.Itoa(r.Index)
}

// Set is the resolved modifier arguments of one capability invocation:
// the ignored field references plus at most one delegate reference.
//
// The invoking collaborator rejects a delegate that also appears in the
// ignore set before constructing a Set; this package consumes sets it
// can assume are free of that overlap.
type Set struct {
	Ignored []FieldRef
	Using   *FieldRef
}

// IsEmpty returns true if the set carries no directives.
func (s Set) IsEmpty() bool {
	return len(s.Ignored) == 0 && s.Using == nil
}
