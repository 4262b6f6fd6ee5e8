package parse

import (
	"autoimpl-generator/internal/decl"
)

// ParseRecord parses one full record declaration:
//
//	struct NAME [generics] { name: type [= expr], ... }
//	struct NAME [generics] ( type [= expr], ... ) ;
//	struct NAME [generics] ;
//
// A leading where-clause may precede the field list; the positional
// form also allows one between the parens and the terminator.
// Where-clause content is recorded but opaque.
func ParseRecord(src string) (*decl.TypeDescriptor, error) {
	p, err := newParser(src)
	if err != nil {
		return nil, err
	}

	desc, err := p.parseRecord()
	if err != nil {
		return nil, err
	}

	if tok := p.peek(); tok.Kind != TokenEOF {
		return nil, syntaxErrf(tok.Span, "unexpected %s after declaration", describe(tok))
	}

	return desc, nil
}

func (p *parser) parseRecord() (*decl.TypeDescriptor, error) {
	kw := p.peek()
	if !kw.IsIdent("struct") {
		return nil, syntaxErrf(kw.Span, "expected \"struct\", found %s", describe(kw))
	}

	p.next()

	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}

	desc := &decl.TypeDescriptor{Name: name.Text}

	desc.Generics, err = p.parseGenerics()
	if err != nil {
		return nil, err
	}

	if err := p.parseShape(desc); err != nil {
		return nil, err
	}

	desc.Span = p.spanFrom(kw.Span)

	return desc, nil
}

// parseGenerics parses an optional bracketed generic parameter list:
// `[T any, U comparable]`. Constraints are opaque runs and may be empty.
func (p *parser) parseGenerics() ([]decl.GenericParam, error) {
	if !p.peek().Is("[") {
		return nil, nil
	}

	p.next()

	var params []decl.GenericParam

	for {
		if p.peek().Is("]") {
			p.next()

			return params, nil
		}

		name, err := p.expectIdent()
		if err != nil {
			return nil, err
		}

		param := decl.GenericParam{Name: name.Text}

		if tok := p.peek(); !tok.Is(",") && !tok.Is("]") {
			param.Constraint, _, err = p.exprRun(",", "]")
			if err != nil {
				return nil, err
			}
		}

		params = append(params, param)

		if p.peek().Is(",") {
			p.next()
		}
	}
}

// parseShape dispatches on the body form: braced named fields,
// parenthesized positional fields, or a bare terminator.
func (p *parser) parseShape(desc *decl.TypeDescriptor) error {
	if p.peek().IsIdent("where") {
		p.next()

		clause, _, err := p.exprRun("{", "(", ";")
		if err != nil {
			return err
		}

		desc.Where = clause
	}

	switch tok := p.peek(); {
	case tok.Is("{"):
		desc.Shape = decl.ShapeNamed

		return p.parseNamedFields(desc)

	case tok.Is("("):
		desc.Shape = decl.ShapePositional

		return p.parsePositionalFields(desc)

	case tok.Is(";"):
		desc.Shape = decl.ShapeUnit
		p.next()

		return nil

	default:
		return syntaxErrf(tok.Span, "expected field list, found %s", describe(tok))
	}
}

func (p *parser) parseNamedFields(desc *decl.TypeDescriptor) error {
	p.next() // consume "{"

	for !p.peek().Is("}") {
		field, err := p.parseField(decl.ShapeNamed, len(desc.Fields))
		if err != nil {
			return err
		}

		desc.Fields = append(desc.Fields, field)

		switch tok := p.peek(); {
		case tok.Is(","):
			p.next()
		case tok.Is("}"):
		default:
			return syntaxErrf(tok.Span, "expected \",\" or \"}\", found %s", describe(tok))
		}
	}

	p.next() // consume "}"

	return nil
}

func (p *parser) parsePositionalFields(desc *decl.TypeDescriptor) error {
	p.next() // consume "("

	for !p.peek().Is(")") {
		field, err := p.parseField(decl.ShapePositional, len(desc.Fields))
		if err != nil {
			return err
		}

		desc.Fields = append(desc.Fields, field)

		switch tok := p.peek(); {
		case tok.Is(","):
			p.next()
		case tok.Is(")"):
		default:
			return syntaxErrf(tok.Span, "expected \",\" or \")\", found %s", describe(tok))
		}
	}

	p.next() // consume ")"

	if p.peek().IsIdent("where") {
		p.next()

		clause, _, err := p.exprRun(";")
		if err != nil {
			return err
		}

		if desc.Where != "" {
			desc.Where += " "
		}

		desc.Where += clause
	}

	// The positional form requires the statement terminator.
	if _, err := p.expectPunct(";"); err != nil {
		return err
	}

	return nil
}

// parseField parses one field: `[attributes] [visibility] ident : type
// [= expr]` for named records, `[attributes] [visibility] type [= expr]`
// for positional ones. The `= expression` suffix is this parser's sole
// extension over the emitted surface syntax.
func (p *parser) parseField(shape decl.ShapeKind, index int) (decl.Field, error) {
	start := p.peek().Span
	field := decl.Field{Index: index}

	for p.peek().Is("#") {
		attr, err := p.parseRawAttr()
		if err != nil {
			return decl.Field{}, err
		}

		field.Attrs = append(field.Attrs, attr)
	}

	if p.peek().IsIdent("pub") {
		field.Vis = p.next().Text
	}

	typeStops := []string{",", ")", "="}

	if shape == decl.ShapeNamed {
		ident, err := p.expectIdent()
		if err != nil {
			return decl.Field{}, err
		}

		field.Ident = ident.Text

		if _, err := p.expectPunct(":"); err != nil {
			return decl.Field{}, err
		}

		typeStops = []string{",", "}", "="}
	}

	typ, _, err := p.exprRun(typeStops...)
	if err != nil {
		return decl.Field{}, err
	}

	field.Type = typ

	if p.peek().Is("=") {
		eq := p.next()

		expr, exprSpan, err := p.exprRun(typeStops[0], typeStops[1])
		if err != nil {
			return decl.Field{}, err
		}

		field.Default = expr
		field.DefaultSpan = eq.Span.Extend(exprSpan)
	}

	field.Span = p.spanFrom(start)

	return field, nil
}

// parseRawAttr captures a field attribute `#[...]` as opaque text.
func (p *parser) parseRawAttr() (string, error) {
	if _, err := p.expectPunct("#"); err != nil {
		return "", err
	}

	if _, err := p.expectPunct("["); err != nil {
		return "", err
	}

	text, _, err := p.exprRun("]")
	if err != nil {
		return "", err
	}

	if _, err := p.expectPunct("]"); err != nil {
		return "", err
	}

	return text, nil
}
