package modifier

import (
	"fmt"

	"autoimpl-generator/internal/common"
	"autoimpl-generator/internal/decl"
	"autoimpl-generator/internal/diagnostic"
)

// State classifies how a capability generator handles one field.
type State int

//go:generate go tool stringer -type=State -output=state_string.go

const (
	// Included fields receive the capability's normal per-field handling.
	Included State = iota
	// Ignored fields receive the capability's fallback handling.
	Ignored
	// Delegate marks the single field the capability routes through.
	Delegate
)

// Resolution is the per-field classification for one invocation.
// States follows the descriptor's declaration order.
type Resolution struct {
	States []State
	// AnyIgnored reports whether at least one field was ignored.
	AnyIgnored bool
	// DelegateIndex is the delegate field's index, or -1.
	DelegateIndex int
}

// State returns the classification of field i, defaulting to Included
// for out-of-range indexes (unit records have no states).
func (r *Resolution) State(i int) State {
	if i < 0 || i >= len(r.States) {
		return Included
	}

	return r.States[i]
}

// Resolve validates the modifier set against a capability's support
// flags and classifies every field of the descriptor.
//
// Supplying ignore directives to a capability with supportsIgnore false,
// or a using directive to one with supportsDelegate false, is a usage
// error (UnsupportedModifier). References to unknown fields are syntax
// errors at the reference's span.
func Resolve(
	desc *decl.TypeDescriptor,
	set Set,
	supportsIgnore, supportsDelegate bool,
) (*Resolution, *diagnostic.Diagnostic) {
	if !supportsIgnore && !common.IsEmpty(set.Ignored) {
		first, _ := common.First(set.Ignored)

		return nil, &diagnostic.Diagnostic{
			Severity: diagnostic.SeverityError,
			Code:     diagnostic.CodeUnsupportedModifier,
			Message:  "ignore is not supported by this capability",
			Span:     first.Span,
		}
	}

	if !supportsDelegate && set.Using != nil {
		return nil, &diagnostic.Diagnostic{
			Severity: diagnostic.SeverityError,
			Code:     diagnostic.CodeUnsupportedModifier,
			Message:  "using is not supported by this capability",
			Span:     set.Using.Span,
		}
	}

	res := &Resolution{
		States:        make([]State, len(desc.Fields)),
		DelegateIndex: -1,
	}

	for _, ref := range set.Ignored {
		i, diag := locate(desc, ref)
		if diag != nil {
			return nil, diag
		}

		res.States[i] = Ignored
		res.AnyIgnored = true
	}

	if set.Using != nil {
		i, diag := locate(desc, *set.Using)
		if diag != nil {
			return nil, diag
		}

		res.States[i] = Delegate
		res.DelegateIndex = i
	}

	return res, nil
}

// locate maps a field reference onto the descriptor's field order.
func locate(desc *decl.TypeDescriptor, ref FieldRef) (int, *diagnostic.Diagnostic) {
	if ref.Name != "" {
		if desc.Shape != decl.ShapeNamed {
			return 0, refError(ref, fmt.Sprintf("field name %q on a %s record", ref.Name, desc.Shape))
		}

		if i := desc.FieldByName(ref.Name); i >= 0 {
			return i, nil
		}

		return 0, refError(ref, fmt.Sprintf("no field named %q", ref.Name))
	}

	if desc.Shape != decl.ShapePositional {
		return 0, refError(ref, fmt.Sprintf("field index %d on a %s record", ref.Index, desc.Shape))
	}

	if !common.IsInRange(0, ref.Index, len(desc.Fields)-1) {
		return 0, refError(ref, fmt.Sprintf("field index %d out of range (record has %d fields)",
			ref.Index, len(desc.Fields)))
	}

	return ref.Index, nil
}

func refError(ref FieldRef, msg string) *diagnostic.Diagnostic {
	return &diagnostic.Diagnostic{
		Severity: diagnostic.SeverityError,
		Code:     diagnostic.CodeSyntax,
		Message:  msg,
		Span:     ref.Span,
		Field:    ref.String(),
	}
}
