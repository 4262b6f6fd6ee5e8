package capability_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autoimpl-generator/internal/capability"
)

func TestLookup(t *testing.T) {
	byName, ok := capability.Lookup("Clone")
	require.True(t, ok)

	byPath, ok := capability.Lookup("autoimpl.Clone")
	require.True(t, ok)

	assert.Same(t, byName, byPath)

	_, ok = capability.Lookup("Serialize")
	assert.False(t, ok)
}

func TestSupportFlagsAreFixed(t *testing.T) {
	tests := []struct {
		path           string
		supportsIgnore bool
	}{
		{capability.ClonePath, true},
		{capability.DebugPath, true},
		{capability.DefaultPath, false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			spec, ok := capability.Lookup(tt.path)
			require.True(t, ok)

			assert.Equal(t, tt.supportsIgnore, spec.SupportsIgnore)

			// No built-in capability enables delegation.
			assert.False(t, spec.SupportsDelegate)
		})
	}
}

func ExampleLookup() {
	for _, spec := range capability.All() {
		fmt.Println(spec.Path, spec.Name(), spec.SupportsIgnore)
	}

	// Output:
	// autoimpl.Clone Clone true
	// autoimpl.Debug Debug true
	// autoimpl.Default Default false
}
