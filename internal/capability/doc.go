// Package capability provides the closed registry of implementation
// generators: Clone, Debug, and Default.
//
// Each capability carries a fully-qualified path, fixed support flags
// for the ignore and using modifiers, and a pure generation function
// specialized per field shape. Generators share nothing but the
// immutable type descriptor; each invocation is independent.
package capability
