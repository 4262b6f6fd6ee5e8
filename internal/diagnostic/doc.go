// Package diagnostic provides structured errors, warnings, and
// advisory notes for the autoimpl generator.
//
// Key capabilities:
//   - Syntax errors carrying a source span
//   - Unsupported-modifier usage errors
//   - Dangling default-expression errors with fix hints
//   - Advisory notes (e.g. shadowed per-field defaults)
package diagnostic
