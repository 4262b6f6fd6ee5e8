package parse

import (
	"autoimpl-generator/internal/decl"
)

// itemKinds maps item header keywords onto kinds.
var itemKinds = map[string]decl.ItemKind{
	"struct": decl.ItemRecord,
	"enum":   decl.ItemEnum,
	"type":   decl.ItemAlias,
	"union":  decl.ItemUnion,
}

// ParseItem parses a top-level item's declared identity: kind,
// identifier, and generic parameters. The item body is not modeled;
// this path exists for expression-only default construction against
// items the field-list grammar does not cover.
//
// An unrecognized header yields an ItemOther item with the offending
// span, letting the caller report the unsupported kind.
func ParseItem(src string) (decl.Item, error) {
	p, err := newParser(src)
	if err != nil {
		return decl.Item{}, err
	}

	kw := p.peek()

	kind, ok := itemKinds[kw.Text]
	if kw.Kind != TokenIdent || !ok {
		return decl.Item{Kind: decl.ItemOther, Span: kw.Span}, nil
	}

	p.next()

	name, err := p.expectIdent()
	if err != nil {
		return decl.Item{}, err
	}

	item := decl.Item{Kind: kind, Name: name.Text}

	item.Generics, err = p.parseGenerics()
	if err != nil {
		return decl.Item{}, err
	}

	item.Span = p.spanFrom(kw.Span)

	return item, nil
}
