// Package parse provides the declaration-language parser.
//
// It recognizes record declarations with braced named fields,
// parenthesized positional fields, or no fields at all, preceded by
// zero or more capability invocation attributes. Its one extension
// over the emitted Go surface is an optional `= expression` default
// suffix on any field, which only a default-construction pass may
// consume.
//
// Type expressions, default expressions, attribute payloads, and
// where-clauses are captured as opaque balanced-token runs: echoed,
// never interpreted.
package parse
