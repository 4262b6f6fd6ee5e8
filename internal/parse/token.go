package parse

import (
	"autoimpl-generator/internal/common"
	"autoimpl-generator/internal/diagnostic"
)

// TokenKind represents the lexical class of a token.
type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenIdent
	TokenNumber
	TokenString
	TokenPunct
)

// String returns a human-readable token kind name.
func (k TokenKind) String() string {
	switch k {
	case TokenEOF:
		return "end of input"
	case TokenIdent:
		return "identifier"
	case TokenNumber:
		return "number"
	case TokenString:
		return "string"
	case TokenPunct:
		return "punctuation"
	default:
		return common.UnknownStr
	}
}

// Token is one lexical token of declaration source.
type Token struct {
	Kind TokenKind
	Text string
	Span diagnostic.Span
}

// Is reports whether the token is the given punctuation.
func (t Token) Is(punct string) bool {
	return t.Kind == TokenPunct && t.Text == punct
}

// IsIdent reports whether the token is the given identifier.
func (t Token) IsIdent(name string) bool {
	return t.Kind == TokenIdent && t.Text == name
}

// openDelims maps opening delimiters to their closers, for balanced
// token-run capture.
var openDelims = map[string]string{
	"(": ")",
	"[": "]",
	"{": "}",
}

// isCloser reports whether the text is a closing delimiter.
func isCloser(text string) bool {
	return text == ")" || text == "]" || text == "}"
}
