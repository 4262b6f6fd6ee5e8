package parse

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"autoimpl-generator/internal/diagnostic"
)

// lexer tokenizes declaration source. It is a plain scanner: no
// lookahead state, one token per call.
type lexer struct {
	src  string
	off  int
	line int
	col  int
}

func newLexer(src string) *lexer {
	return &lexer{src: src, line: 1, col: 1}
}

// tokenize scans the whole source into a token slice terminated by a
// TokenEOF token.
func tokenize(src string) ([]Token, error) {
	lx := newLexer(src)

	var toks []Token

	for {
		tok, err := lx.next()
		if err != nil {
			return nil, err
		}

		toks = append(toks, tok)

		if tok.Kind == TokenEOF {
			return toks, nil
		}
	}
}

// next scans one token, skipping whitespace and line comments.
func (lx *lexer) next() (Token, error) {
	lx.skipBlanks()

	start := lx.pos()

	if lx.off >= len(lx.src) {
		return Token{Kind: TokenEOF, Span: start}, nil
	}

	r, size := utf8.DecodeRuneInString(lx.src[lx.off:])

	switch {
	case r == '_' || unicode.IsLetter(r):
		return lx.ident(start), nil

	case unicode.IsDigit(r):
		return lx.number(start), nil

	case r == '"':
		return lx.str(start)

	default:
		lx.advance(size)

		return Token{
			Kind: TokenPunct,
			Text: string(r),
			Span: lx.spanFrom(start),
		}, nil
	}
}

func (lx *lexer) ident(start diagnostic.Span) Token {
	for lx.off < len(lx.src) {
		r, size := utf8.DecodeRuneInString(lx.src[lx.off:])
		if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			break
		}

		lx.advance(size)
	}

	span := lx.spanFrom(start)

	return Token{
		Kind: TokenIdent,
		Text: lx.src[span.Offset : span.Offset+span.Len],
		Span: span,
	}
}

func (lx *lexer) number(start diagnostic.Span) Token {
	for lx.off < len(lx.src) {
		r, size := utf8.DecodeRuneInString(lx.src[lx.off:])
		// Keeps number literals opaque: digits, radix/exponent letters,
		// underscores, and a decimal point all belong to the run.
		if r != '_' && r != '.' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			break
		}

		lx.advance(size)
	}

	span := lx.spanFrom(start)

	return Token{
		Kind: TokenNumber,
		Text: lx.src[span.Offset : span.Offset+span.Len],
		Span: span,
	}
}

func (lx *lexer) str(start diagnostic.Span) (Token, error) {
	lx.advance(1) // opening quote

	for lx.off < len(lx.src) {
		r, size := utf8.DecodeRuneInString(lx.src[lx.off:])
		lx.advance(size)

		if r == '\\' && lx.off < len(lx.src) {
			_, esc := utf8.DecodeRuneInString(lx.src[lx.off:])
			lx.advance(esc)

			continue
		}

		if r == '"' {
			span := lx.spanFrom(start)

			return Token{
				Kind: TokenString,
				Text: lx.src[span.Offset : span.Offset+span.Len],
				Span: span,
			}, nil
		}

		if r == '\n' {
			break
		}
	}

	return Token{}, fmt.Errorf("%s: unterminated string literal", start)
}

func (lx *lexer) skipBlanks() {
	for lx.off < len(lx.src) {
		rest := lx.src[lx.off:]

		r, size := utf8.DecodeRuneInString(rest)
		if unicode.IsSpace(r) {
			lx.advance(size)

			continue
		}

		if strings.HasPrefix(rest, "//") {
			end := strings.IndexByte(rest, '\n')
			if end < 0 {
				end = len(rest)
			}

			lx.advance(end)

			continue
		}

		return
	}
}

func (lx *lexer) pos() diagnostic.Span {
	return diagnostic.Span{Offset: lx.off, Line: lx.line, Col: lx.col}
}

func (lx *lexer) spanFrom(start diagnostic.Span) diagnostic.Span {
	start.Len = lx.off - start.Offset

	return start
}

func (lx *lexer) advance(n int) {
	for i := 0; i < n; i++ {
		if lx.off >= len(lx.src) {
			return
		}

		if lx.src[lx.off] == '\n' {
			lx.line++
			lx.col = 1
		} else {
			lx.col++
		}

		lx.off++
	}
}
