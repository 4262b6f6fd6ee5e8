package parse

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"autoimpl-generator/internal/diagnostic"
)

// SyntaxError is a syntax diagnostic surfaced as an error value.
// It carries the offending span so callers can report it fail-soft.
type SyntaxError struct {
	Diag diagnostic.Diagnostic
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	return e.Diag.String()
}

// AsDiagnostic extracts the diagnostic from an error. Non-syntax errors
// (e.g. lexer failures) map onto a spanless syntax diagnostic.
func AsDiagnostic(err error) diagnostic.Diagnostic {
	var syn *SyntaxError
	if errors.As(err, &syn) {
		return syn.Diag
	}

	return diagnostic.Diagnostic{
		Severity: diagnostic.SeverityError,
		Code:     diagnostic.CodeSyntax,
		Message:  err.Error(),
	}
}

func syntaxErrf(span diagnostic.Span, format string, args ...any) *SyntaxError {
	return &SyntaxError{Diag: diagnostic.Diagnostic{
		Severity: diagnostic.SeverityError,
		Code:     diagnostic.CodeSyntax,
		Message:  fmt.Sprintf(format, args...),
		Span:     span,
	}}
}

// parser is a recursive-descent parser over a pre-lexed token slice.
type parser struct {
	src  string
	toks []Token
	pos  int
	last Token
}

func newParser(src string) (*parser, error) {
	toks, err := tokenize(src)
	if err != nil {
		return nil, err
	}

	return &parser{src: src, toks: toks}, nil
}

// peek returns the current token without consuming it.
func (p *parser) peek() Token {
	return p.toks[p.pos]
}

// next consumes and returns the current token.
func (p *parser) next() Token {
	tok := p.toks[p.pos]
	if tok.Kind != TokenEOF {
		p.pos++
		p.last = tok
	}

	return tok
}

// expectPunct consumes the given punctuation or fails.
func (p *parser) expectPunct(text string) (Token, error) {
	tok := p.peek()
	if !tok.Is(text) {
		return Token{}, syntaxErrf(tok.Span, "expected %q, found %s", text, describe(tok))
	}

	return p.next(), nil
}

// expectIdent consumes an identifier or fails.
func (p *parser) expectIdent() (Token, error) {
	tok := p.peek()
	if tok.Kind != TokenIdent {
		return Token{}, syntaxErrf(tok.Span, "expected identifier, found %s", describe(tok))
	}

	return p.next(), nil
}

// spanFrom returns a span covering start through the last consumed token.
func (p *parser) spanFrom(start diagnostic.Span) diagnostic.Span {
	return start.Extend(p.last.Span)
}

// exprRun captures an opaque balanced token run, stopping before any of
// the stop texts at nesting depth zero. Stops match punctuation, or
// identifiers for keyword stops like "where". The stop token itself is
// not consumed. The run's text is the raw source slice, trimmed.
func (p *parser) exprRun(stops ...string) (string, diagnostic.Span, error) {
	startPos := p.pos

	depth := 0
	for {
		tok := p.peek()

		if tok.Kind == TokenEOF {
			return "", diagnostic.Span{}, syntaxErrf(tok.Span, "unexpected end of input")
		}

		if depth == 0 && isStop(tok, stops) {
			break
		}

		if tok.Kind == TokenPunct {
			if _, ok := openDelims[tok.Text]; ok {
				depth++
			} else if isCloser(tok.Text) {
				if depth == 0 {
					return "", diagnostic.Span{}, syntaxErrf(tok.Span, "unexpected %q", tok.Text)
				}

				depth--
			}
		}

		p.next()
	}

	if p.pos == startPos {
		return "", diagnostic.Span{}, syntaxErrf(p.peek().Span, "expected expression, found %s", describe(p.peek()))
	}

	span := p.toks[startPos].Span.Extend(p.last.Span)
	text := strings.TrimSpace(p.src[span.Offset : span.Offset+span.Len])

	return text, span, nil
}

// syncAttr skips the remainder of a malformed attribute so parsing can
// resume at the next attribute or the declaration.
func (p *parser) syncAttr() {
	p.syncTo("]")
}

// syncDecl skips the remainder of a malformed declaration so parsing
// can resume at the next one.
func (p *parser) syncDecl() {
	p.syncTo("}", ";")
}

// syncTo consumes tokens through the first of the given punctuation at
// nesting depth zero. It stops early, without consuming, at a top-level
// attribute or declaration header, or at end of input.
func (p *parser) syncTo(stops ...string) {
	depth := 0

	for {
		tok := p.peek()

		if tok.Kind == TokenEOF {
			return
		}

		if depth == 0 && (tok.Is("#") || tok.IsIdent("struct")) {
			return
		}

		p.next()

		if tok.Kind != TokenPunct {
			continue
		}

		if _, ok := openDelims[tok.Text]; ok {
			depth++

			continue
		}

		if depth == 0 && slices.Contains(stops, tok.Text) {
			return
		}

		if isCloser(tok.Text) && depth > 0 {
			depth--
		}
	}
}

func isStop(tok Token, stops []string) bool {
	for _, s := range stops {
		if tok.Is(s) || tok.IsIdent(s) {
			return true
		}
	}

	return false
}

func describe(tok Token) string {
	if tok.Kind == TokenEOF {
		return tok.Kind.String()
	}

	return fmt.Sprintf("%q", tok.Text)
}
