// Package scope aggregates one declaration with every fragment
// generated for it.
//
// A scope runs its capability invocations sequentially in source order
// for deterministic diagnostic ordering. Failures are fail-soft: a
// failed invocation reports a diagnostic and emits nothing, and the
// remaining invocations still run.
package scope

import (
	"fmt"

	"autoimpl-generator/internal/capability"
	"autoimpl-generator/internal/decl"
	"autoimpl-generator/internal/diagnostic"
	"autoimpl-generator/internal/emit"
	"autoimpl-generator/internal/modifier"
	"autoimpl-generator/internal/parse"
)

// Scope owns one parsed declaration, its capability invocations, and
// the fragments they generate.
type Scope struct {
	Desc        *decl.TypeDescriptor
	Invocations []parse.Invocation

	// Generated holds the fragments of successful invocations, in
	// invocation order.
	Generated []*emit.Fragment
	// Diags collects every diagnostic of the expansion pass.
	Diags diagnostic.Diagnostics

	// defaultsConsumed is set once a default-construction pass claims
	// the per-field `= expression` extensions. Until then, re-rendering
	// a field that carries one is a dangling-default error.
	defaultsConsumed bool
}

// New creates a scope for one parsed declaration, carrying over any
// diagnostics its attribute parse produced.
func New(pd parse.ParsedDecl) *Scope {
	s := &Scope{Desc: pd.Desc, Invocations: pd.Invocations}
	s.Diags.Merge(pd.Diags)

	return s
}

// Expand runs every invocation against the declaration. It never
// mutates the descriptor; all expansion state lives on the scope.
func (s *Scope) Expand() {
	for _, inv := range s.Invocations {
		switch inv.Kind {
		case parse.InvokeCapability:
			s.expandCapability(inv)
		case parse.InvokeDefault:
			s.expandDefault(inv)
		}
	}
}

func (s *Scope) expandCapability(inv parse.Invocation) {
	spec, ok := capability.Lookup(inv.Capability)
	if !ok {
		s.Diags.AddErrorf(diagnostic.CodeSyntax, inv.Span,
			"unknown capability %q", inv.Capability)

		return
	}

	res, diag := modifier.Resolve(s.Desc, inv.Modifiers, spec.SupportsIgnore, spec.SupportsDelegate)
	if diag != nil {
		d := *diag
		d.Message = fmt.Sprintf("%s: %s", spec.Name(), d.Message)
		s.Diags.Add(d)

		return
	}

	s.Generated = append(s.Generated, spec.Generate(s.Desc, res))

	if spec.Path == capability.DefaultPath {
		s.defaultsConsumed = true
	}
}

func (s *Scope) expandDefault(inv parse.Invocation) {
	args := capability.DefaultArgs{Expr: inv.Expr, Where: inv.Where, Span: inv.Span}

	frag := args.Expand(s.Desc, &s.Diags)
	if frag == nil {
		return
	}

	s.Generated = append(s.Generated, frag)
	s.defaultsConsumed = true
}

// File renders the declaration and its fragments into one output file.
// This is where a still-unconsumed per-field default expression is
// reported and dropped.
func (s *Scope) File(pkg string) *emit.File {
	f := emit.NewFile(pkg)

	f.AddBlock(decl.RenderDecl(s.Desc, s.defaultsConsumed, &s.Diags))

	for _, frag := range s.Generated {
		f.AddFragment(frag)
	}

	return f
}
