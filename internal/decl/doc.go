// Package decl provides the normalized in-memory model of one record
// declaration: its identity, generic parameters, and field layout.
//
// Key types:
//   - TypeDescriptor: name + generics + field shape (named/positional/unit)
//   - Field: optional identifier, opaque type expression, optional
//     attached default-value expression
//   - Item: identity of an externally-parsed item (record, enum,
//     type alias, union) for the expression-only default path
//
// A TypeDescriptor is immutable once parsed: generators read it but
// never mutate it.
package decl
