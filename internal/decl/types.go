package decl

import (
	"strconv"
	"strings"

	"autoimpl-generator/internal/common"
	"autoimpl-generator/internal/diagnostic"
)

// ShapeKind represents the field layout of a record declaration.
type ShapeKind int

const (
	// ShapeUnit is a record with no fields.
	ShapeUnit ShapeKind = iota
	// ShapeNamed is a record with a brace-delimited list of named fields.
	ShapeNamed
	// ShapePositional is a record with a parenthesized list of fields
	// identified only by position.
	ShapePositional
)

// String returns a human-readable shape name.
func (k ShapeKind) String() string {
	switch k {
	case ShapeUnit:
		return "unit"
	case ShapeNamed:
		return "named"
	case ShapePositional:
		return "positional"
	default:
		return common.UnknownStr
	}
}

// GenericParam is one generic parameter of a declaration. The constraint
// text is opaque: it is echoed into output, never interpreted.
type GenericParam struct {
	Name       string
	Constraint string
}

// Field is one field of a record declaration.
//
// Type and Default are opaque expression texts. A non-empty Default is
// the `= expression` extension recognized by the field-list parser; it
// must be consumed by a default-construction pass before the field list
// is re-rendered.
type Field struct {
	// Attrs holds opaque attribute texts preceding the field.
	Attrs []string
	// Vis is the opaque visibility marker ("pub" or empty).
	Vis string
	// Ident is the field identifier. Empty for positional fields.
	Ident string
	// Index is the declaration-order position of the field.
	Index int
	// Type is the field's opaque type expression.
	Type string
	// Default is the optional attached default-value expression.
	Default string
	// Span locates the whole field in the declaration source.
	Span diagnostic.Span
	// DefaultSpan locates the `= expression` suffix, if present.
	DefaultSpan diagnostic.Span
}

// Label returns the field's identity for diagnostics and modifier
// matching: the identifier for named fields, the index for positional.
func (f Field) Label() string {
	if f.Ident != "" {
		return f.Ident
	}

	return strconv.Itoa(f.Index)
}

// GoName returns the field's name in the rendered Go declaration.
// Positional fields are named by index (F0, F1, ...).
func (f Field) GoName() string {
	if f.Ident != "" {
		return f.Ident
	}

	return "F" + strconv.Itoa(f.Index)
}

// TypeDescriptor is the normalized representation of one record
// declaration. It is constructed by the parser and read-only afterwards.
type TypeDescriptor struct {
	// Name is the record identifier.
	Name string
	// Generics holds the declared generic parameters, in order.
	Generics []GenericParam
	// Shape is the field-list variant.
	Shape ShapeKind
	// Fields holds the fields in declaration order. Empty for unit records.
	Fields []Field
	// Where is the opaque where-clause text, if one was present.
	Where string
	// Span locates the declaration in source.
	Span diagnostic.Span
}

// FieldByName returns the index of the named field, or -1.
func (d *TypeDescriptor) FieldByName(name string) int {
	for i, f := range d.Fields {
		if f.Ident == name {
			return i
		}
	}

	return -1
}

// GenericDecl renders the generic parameter list with constraints,
// e.g. "[T any, U comparable]". Empty for non-generic declarations.
func (d *TypeDescriptor) GenericDecl() string {
	if common.IsEmpty(d.Generics) {
		return ""
	}

	var sb strings.Builder

	sb.WriteByte('[')

	for i, p := range d.Generics {
		if i > 0 {
			sb.WriteString(", ")
		}

		sb.WriteString(p.Name)

		if p.Constraint != "" {
			sb.WriteByte(' ')
			sb.WriteString(p.Constraint)
		}
	}

	sb.WriteByte(']')

	return sb.String()
}

// TypeName renders the record's type reference with generic arguments,
// e.g. "Pair[T, U]". Equal to Name for non-generic declarations.
func (d *TypeDescriptor) TypeName() string {
	if common.IsEmpty(d.Generics) {
		return d.Name
	}

	names := common.Names(d.Generics, func(p GenericParam) string { return p.Name })

	return d.Name + "[" + strings.Join(names, ", ") + "]"
}

// DefaultFields returns the labels of fields carrying an attached
// default-value expression, in declaration order.
func (d *TypeDescriptor) DefaultFields() []string {
	var labels []string
	for _, f := range d.Fields {
		if f.Default != "" {
			labels = append(labels, f.Label())
		}
	}

	return labels
}

// HasFieldDefaults returns true if any field carries an attached
// default-value expression.
func (d *TypeDescriptor) HasFieldDefaults() bool {
	return len(d.DefaultFields()) > 0
}
