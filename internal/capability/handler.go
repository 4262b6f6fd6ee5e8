package capability

import (
	"fmt"
	"strings"

	"autoimpl-generator/internal/decl"
	"autoimpl-generator/internal/diagnostic"
	"autoimpl-generator/internal/emit"
)

// DefaultArgs is a default-construction invocation's arguments: an
// optional whole-type expression and an optional trailing where-clause.
// The where-clause is recorded but opaque.
type DefaultArgs struct {
	Expr  string
	Where string
	Span  diagnostic.Span
}

// Expand applies the invocation inside a declaration context.
//
// With an explicit expression the whole-type path is taken and any
// per-field attached defaults are shadowed; an advisory note names
// them. Without one, every field derives its own default.
func (a DefaultArgs) Expand(desc *decl.TypeDescriptor, diags *diagnostic.Diagnostics) *emit.Fragment {
	if a.Expr == "" {
		return generateDefault(desc, nil)
	}

	if shadowed := desc.DefaultFields(); len(shadowed) > 0 {
		diags.AddInfo(diagnostic.CodeShadowedDefault,
			fmt.Sprintf("explicit default expression shadows field defaults on %s",
				strings.Join(shadowed, ", ")),
			a.Span)
	}

	return generateDefaultExpr(desc, a.Expr)
}

// ExpandItem applies the invocation with no declaration context,
// generating solely from the explicit expression and an
// externally-parsed item's declared identity.
//
// Without an expression there is nothing to derive from
// (MissingContext); item kinds outside record, enum, type alias, and
// union are rejected (UnsupportedItemKind). Either failure suppresses
// all output for the invocation.
func (a DefaultArgs) ExpandItem(item decl.Item, diags *diagnostic.Diagnostics) *emit.Fragment {
	if a.Expr == "" {
		diags.AddError(diagnostic.CodeMissingContext,
			"invalid use outside of a declaration context", a.Span)

		return nil
	}

	if !item.Kind.SupportsExplicitDefault() {
		diags.AddError(diagnostic.CodeUnsupportedItem,
			"default only supports record, enum, type alias and union items", item.Span)

		return nil
	}

	return generateDefaultExpr(item.Descriptor(), a.Expr)
}
