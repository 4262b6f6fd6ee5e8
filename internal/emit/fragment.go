package emit

// Fragment is one self-contained unit of generated implementation code
// for one capability on one declaration.
type Fragment struct {
	// Capability is the fully-qualified capability path that produced
	// the fragment.
	Capability string
	// TypeName is the declaration the fragment implements.
	TypeName string
	// Imports lists the import paths the fragment's source requires.
	Imports []string
	// Source is the fragment's Go source: one or more top-level
	// declarations, unformatted.
	Source string
}
