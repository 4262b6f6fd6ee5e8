// Package emit renders generated implementation fragments into Go
// source files.
//
// Generation approach uses text/template for the file skeleton and
// gofumpt for in-memory formatting of the result. Formatting failure
// falls back to the unformatted source so callers can still inspect
// what was produced.
package emit
