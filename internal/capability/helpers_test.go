package capability_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"autoimpl-generator/internal/capability"
	"autoimpl-generator/internal/decl"
	"autoimpl-generator/internal/emit"
	"autoimpl-generator/internal/modifier"
	"autoimpl-generator/internal/parse"
)

func parseRecord(t *testing.T, src string) *decl.TypeDescriptor {
	t.Helper()

	desc, err := parse.ParseRecord(src)
	require.NoError(t, err)

	return desc
}

func generate(t *testing.T, capName string, desc *decl.TypeDescriptor, set modifier.Set) *emit.Fragment {
	t.Helper()

	spec, ok := capability.Lookup(capName)
	require.True(t, ok)

	res, diag := modifier.Resolve(desc, set, spec.SupportsIgnore, spec.SupportsDelegate)
	require.Nil(t, diag)

	return spec.Generate(desc, res)
}
