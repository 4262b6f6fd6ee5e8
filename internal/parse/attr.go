package parse

import (
	"strconv"
	"strings"

	"autoimpl-generator/internal/common"
	"autoimpl-generator/internal/decl"
	"autoimpl-generator/internal/diagnostic"
	"autoimpl-generator/internal/modifier"
)

// InvocationKind distinguishes the two attribute forms.
type InvocationKind int

const (
	// InvokeCapability is `#[impl(Capability, directives...)]`.
	InvokeCapability InvocationKind = iota
	// InvokeDefault is `#[default]` / `#[default(expr [where ...])]`.
	InvokeDefault
)

// Invocation is one parsed capability invocation attribute.
type Invocation struct {
	Kind InvocationKind
	// Capability is the invoked capability path (impl form only),
	// e.g. "Clone" or "autoimpl.Clone".
	Capability string
	// Modifiers holds the resolved ignore/using directives (impl form).
	Modifiers modifier.Set
	// Expr is the optional whole-type default expression (default form).
	Expr string
	// Where is the optional trailing where-clause (default form), opaque.
	Where string
	// Span locates the whole attribute.
	Span diagnostic.Span
}

// ParsedDecl is one declaration together with its invocation attributes,
// in source order. Diags holds the syntax errors of invocations that
// were dropped during attribute parsing; the declaration itself and the
// surviving invocations are still usable.
type ParsedDecl struct {
	Desc        *decl.TypeDescriptor
	Invocations []Invocation
	Diags       diagnostic.Diagnostics
}

// ParseFile parses a declaration file: a sequence of attribute-prefixed
// record declarations.
//
// Parsing is fail-soft at two boundaries. A syntax error inside one
// attribute drops only that invocation: its diagnostic is recorded on
// the owning ParsedDecl and the remaining attributes and the
// declaration still parse. A syntax error in a declaration drops that
// declaration: its diagnostic lands in the returned file-level
// diagnostics and parsing resumes at the next declaration.
func ParseFile(src string) ([]ParsedDecl, diagnostic.Diagnostics) {
	var fileDiags diagnostic.Diagnostics

	p, err := newParser(src)
	if err != nil {
		fileDiags.Add(AsDiagnostic(err))

		return nil, fileDiags
	}

	var decls []ParsedDecl

	for p.peek().Kind != TokenEOF {
		var pd ParsedDecl
		p.parseInvocations(&pd)

		desc, err := p.parseRecord()
		if err != nil {
			fileDiags.Merge(pd.Diags)
			fileDiags.Add(AsDiagnostic(err))
			p.syncDecl()

			continue
		}

		pd.Desc = desc
		decls = append(decls, pd)
	}

	return decls, fileDiags
}

// parseInvocations parses the attribute lines preceding a declaration.
// A malformed attribute is recorded and skipped; the scan resumes at
// its closing bracket or the next top-level boundary.
func (p *parser) parseInvocations(pd *ParsedDecl) {
	for p.peek().Is("#") {
		inv, err := p.parseInvocation()
		if err != nil {
			pd.Diags.Add(AsDiagnostic(err))
			p.syncAttr()

			continue
		}

		pd.Invocations = append(pd.Invocations, inv)
	}
}

func (p *parser) parseInvocation() (Invocation, error) {
	hash := p.next() // consume "#"

	if _, err := p.expectPunct("["); err != nil {
		return Invocation{}, err
	}

	name, err := p.expectIdent()
	if err != nil {
		return Invocation{}, err
	}

	var inv Invocation

	switch name.Text {
	case "impl":
		inv, err = p.parseImplArgs()
	case "default":
		inv, err = p.parseDefaultArgs()
	default:
		err = syntaxErrf(name.Span, "unknown attribute %q", name.Text)
	}

	if err != nil {
		return Invocation{}, err
	}

	if _, err := p.expectPunct("]"); err != nil {
		return Invocation{}, err
	}

	inv.Span = hash.Span.Extend(p.last.Span)

	return inv, nil
}

// parseImplArgs parses `(Capability, ignore(a, b), using(c), ...)`.
func (p *parser) parseImplArgs() (Invocation, error) {
	inv := Invocation{Kind: InvokeCapability}

	if _, err := p.expectPunct("("); err != nil {
		return Invocation{}, err
	}

	path, err := p.parseCapabilityPath()
	if err != nil {
		return Invocation{}, err
	}

	inv.Capability = path

	for p.peek().Is(",") {
		p.next()

		if err := p.parseDirective(&inv.Modifiers); err != nil {
			return Invocation{}, err
		}
	}

	if _, err := p.expectPunct(")"); err != nil {
		return Invocation{}, err
	}

	if err := checkUsingOverlap(inv.Modifiers); err != nil {
		return Invocation{}, err
	}

	return inv, nil
}

// parseCapabilityPath parses a dotted capability path.
func (p *parser) parseCapabilityPath() (string, error) {
	seg, err := p.expectIdent()
	if err != nil {
		return "", err
	}

	parts := []string{seg.Text}

	for p.peek().Is(".") {
		p.next()

		seg, err := p.expectIdent()
		if err != nil {
			return "", err
		}

		parts = append(parts, seg.Text)
	}

	return strings.Join(parts, "."), nil
}

// parseDirective parses one ignore(...) or using(...) directive into
// the modifier set.
func (p *parser) parseDirective(set *modifier.Set) error {
	name, err := p.expectIdent()
	if err != nil {
		return err
	}

	switch name.Text {
	case "ignore":
		refs, err := p.parseFieldRefs()
		if err != nil {
			return err
		}

		set.Ignored = append(set.Ignored, refs...)

		return nil

	case "using":
		if set.Using != nil {
			return syntaxErrf(name.Span, "duplicate using directive")
		}

		refs, err := p.parseFieldRefs()
		if err != nil {
			return err
		}

		if !common.IsSingle(refs) {
			return syntaxErrf(name.Span, "using takes exactly one field")
		}

		ref, _ := common.First(refs)
		set.Using = &ref

		return nil

	default:
		return syntaxErrf(name.Span, "unknown directive %q", name.Text)
	}
}

// parseFieldRefs parses a parenthesized field reference list. Fields
// are referenced by name or by zero-based position index.
func (p *parser) parseFieldRefs() ([]modifier.FieldRef, error) {
	if _, err := p.expectPunct("("); err != nil {
		return nil, err
	}

	var refs []modifier.FieldRef

	for {
		tok := p.peek()

		switch tok.Kind {
		case TokenIdent:
			p.next()
			refs = append(refs, modifier.FieldRef{Name: tok.Text, Index: -1, Span: tok.Span})

		case TokenNumber:
			p.next()

			idx, err := strconv.Atoi(tok.Text)
			if err != nil {
				return nil, syntaxErrf(tok.Span, "invalid field index %q", tok.Text)
			}

			refs = append(refs, modifier.FieldRef{Index: idx, Span: tok.Span})

		default:
			return nil, syntaxErrf(tok.Span, "expected field name or index, found %s", describe(tok))
		}

		if p.peek().Is(",") {
			p.next()

			continue
		}

		break
	}

	if _, err := p.expectPunct(")"); err != nil {
		return nil, err
	}

	return refs, nil
}

// parseDefaultArgs parses the default form: a bare attribute, or a
// parenthesized optional expression and optional trailing where-clause.
func (p *parser) parseDefaultArgs() (Invocation, error) {
	inv := Invocation{Kind: InvokeDefault}

	if !p.peek().Is("(") {
		return inv, nil
	}

	p.next()

	if !p.peek().IsIdent("where") && !p.peek().Is(")") {
		expr, _, err := p.exprRun("where", ")")
		if err != nil {
			return Invocation{}, err
		}

		inv.Expr = expr
	}

	if p.peek().IsIdent("where") {
		p.next()

		clause, _, err := p.exprRun(")")
		if err != nil {
			return Invocation{}, err
		}

		inv.Where = clause
	}

	if tok := p.peek(); !tok.Is(")") {
		return Invocation{}, syntaxErrf(tok.Span, "unexpected %s", describe(tok))
	}

	p.next()

	return inv, nil
}

// checkUsingOverlap rejects a delegate field that also appears in the
// ignore set. Downstream resolution assumes the overlap cannot occur.
func checkUsingOverlap(set modifier.Set) error {
	if set.Using == nil {
		return nil
	}

	for _, ref := range set.Ignored {
		if ref.Name == set.Using.Name && ref.Index == set.Using.Index {
			return syntaxErrf(set.Using.Span, "using field %s is also ignored", set.Using)
		}
	}

	return nil
}
