// Package modifier resolves per-field capability modifiers.
//
// A capability invocation may carry ignore(field, ...) directives and,
// for capabilities that support it, a single using(field) directive.
// The resolver validates the set against a capability's support flags
// and classifies every field of the descriptor as Included, Ignored,
// or Delegate, in declaration order.
package modifier
