package decl

import (
	"autoimpl-generator/internal/common"
	"autoimpl-generator/internal/diagnostic"
)

// ItemKind classifies an externally-parsed top-level item. Only record
// items carry a field list this package models; the other kinds exist
// solely for the expression-only default-construction path.
type ItemKind int

const (
	ItemOther ItemKind = iota
	ItemRecord
	ItemEnum
	ItemAlias
	ItemUnion
)

// String returns a human-readable item kind name.
func (k ItemKind) String() string {
	switch k {
	case ItemRecord:
		return "record"
	case ItemEnum:
		return "enum"
	case ItemAlias:
		return "type alias"
	case ItemUnion:
		return "union"
	case ItemOther:
		return "item"
	default:
		return common.UnknownStr
	}
}

// SupportsExplicitDefault returns true if a whole-type default
// expression may be generated against this item kind.
func (k ItemKind) SupportsExplicitDefault() bool {
	switch k {
	case ItemRecord, ItemEnum, ItemAlias, ItemUnion:
		return true
	default:
		return false
	}
}

// Item is the declared identity of a top-level item: enough to generate
// an expression-only default implementation without a field list.
type Item struct {
	Kind     ItemKind
	Name     string
	Generics []GenericParam
	Span     diagnostic.Span
}

// Descriptor wraps the item identity in a fieldless TypeDescriptor so
// identity-only generation paths can share rendering helpers.
func (it Item) Descriptor() *TypeDescriptor {
	return &TypeDescriptor{
		Name:     it.Name,
		Generics: it.Generics,
		Shape:    ShapeUnit,
		Span:     it.Span,
	}
}
