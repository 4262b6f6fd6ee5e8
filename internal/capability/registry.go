package capability

import (
	"strings"

	"autoimpl-generator/internal/decl"
	"autoimpl-generator/internal/emit"
	"autoimpl-generator/internal/modifier"
)

// Fully-qualified capability paths.
const (
	ClonePath   = "autoimpl.Clone"
	DebugPath   = "autoimpl.Debug"
	DefaultPath = "autoimpl.Default"
)

// GenerateFunc produces one implementation fragment for a descriptor
// under a resolved modifier classification. Generation functions are
// stateless and pure.
type GenerateFunc func(desc *decl.TypeDescriptor, res *modifier.Resolution) *emit.Fragment

// Spec describes one capability: its path, which modifiers it supports
// (fixed per capability, not configurable per invocation), and its
// generation function.
type Spec struct {
	Path             string
	SupportsIgnore   bool
	SupportsDelegate bool
	Generate         GenerateFunc
}

// Name returns the path's last segment.
func (s *Spec) Name() string {
	i := strings.LastIndexByte(s.Path, '.')

	return s.Path[i+1:]
}

// registry is the closed set of built-in capabilities. No capability in
// this set enables the using modifier; the mechanism exists for the
// resolver contract.
var registry = []*Spec{
	{Path: ClonePath, SupportsIgnore: true, Generate: generateClone},
	{Path: DebugPath, SupportsIgnore: true, Generate: generateDebug},
	{Path: DefaultPath, Generate: generateDefault},
}

// Lookup finds a capability by fully-qualified path or by its bare
// name (last path segment).
func Lookup(name string) (*Spec, bool) {
	for _, spec := range registry {
		if spec.Path == name || spec.Name() == name {
			return spec, true
		}
	}

	return nil, false
}

// All returns the registered capabilities in registration order.
func All() []*Spec {
	return registry
}
