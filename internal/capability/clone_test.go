package capability_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autoimpl-generator/internal/capability"
	"autoimpl-generator/internal/decl"
	"autoimpl-generator/internal/modifier"
	"autoimpl-generator/internal/parse"
)

// expand parses a record and runs one capability against it.
func expand(t *testing.T, src, capName string, set modifier.Set) string {
	t.Helper()

	desc, err := parse.ParseRecord(src)
	require.NoError(t, err)

	spec, ok := capability.Lookup(capName)
	require.True(t, ok)

	res, diag := modifier.Resolve(desc, set, spec.SupportsIgnore, spec.SupportsDelegate)
	require.Nil(t, diag)

	return spec.Generate(desc, res).Source
}

func ignoreNames(names ...string) modifier.Set {
	var set modifier.Set
	for _, name := range names {
		set.Ignored = append(set.Ignored, modifier.FieldRef{Name: name, Index: -1})
	}

	return set
}

func ignoreIndexes(idxs ...int) modifier.Set {
	var set modifier.Set
	for _, i := range idxs {
		set.Ignored = append(set.Ignored, modifier.FieldRef{Index: i})
	}

	return set
}

func TestClone_Named(t *testing.T) {
	src := expand(t, `struct S { a: int, b: string, c: int }`, "Clone", modifier.Set{})

	assert.Contains(t, src, "func (v S) Clone() S {")
	assert.Contains(t, src, "a: v.a,")
	assert.Contains(t, src, "b: v.b,")
	assert.Contains(t, src, "c: v.c,")
}

func TestClone_IgnoredFieldGetsDefault(t *testing.T) {
	src := expand(t, `struct S { a: int, b: string, c: int }`, "Clone", ignoreNames("b"))

	// Copied fields stay verbatim; the ignored field becomes its own
	// type's default value, never another field's value.
	assert.Contains(t, src, "a: v.a,")
	assert.Contains(t, src, "b: *new(string),")
	assert.Contains(t, src, "c: v.c,")
	assert.NotContains(t, src, "b: v.a")
	assert.NotContains(t, src, "b: v.c")
	assert.NotContains(t, src, "b: v.b")
}

func TestClone_Positional(t *testing.T) {
	src := expand(t, `struct P(int, string);`, "Clone", ignoreIndexes(1))

	assert.Contains(t, src, "func (v P) Clone() P {")
	assert.Contains(t, src, "v.F0,")
	assert.Contains(t, src, "*new(string),")
	assert.NotContains(t, src, "v.F1")
}

func TestClone_Unit(t *testing.T) {
	src := expand(t, `struct M;`, "Clone", modifier.Set{})

	assert.Contains(t, src, "func (v M) Clone() M {")
	assert.Contains(t, src, "return M{}")
}

func TestClone_Generic(t *testing.T) {
	src := expand(t, `struct Box[T any] { value: T }`, "Clone", modifier.Set{})

	assert.Contains(t, src, "func (v Box[T]) Clone() Box[T] {")
	assert.Contains(t, src, "value: v.value,")
}

func TestClone_FragmentMetadata(t *testing.T) {
	desc, err := parse.ParseRecord(`struct S;`)
	require.NoError(t, err)

	spec, _ := capability.Lookup(capability.ClonePath)
	res, _ := modifier.Resolve(desc, modifier.Set{}, true, false)

	frag := spec.Generate(desc, res)
	assert.Equal(t, capability.ClonePath, frag.Capability)
	assert.Equal(t, "S", frag.TypeName)
	assert.Empty(t, frag.Imports)
}

func TestClone_DescriptorNotMutated(t *testing.T) {
	desc, err := parse.ParseRecord(`struct S { a: int = 1 }`)
	require.NoError(t, err)

	spec, _ := capability.Lookup("Clone")
	res, _ := modifier.Resolve(desc, ignoreNames("a"), true, false)

	spec.Generate(desc, res)
	spec.Generate(desc, res)

	assert.Equal(t, decl.ShapeNamed, desc.Shape)
	assert.Equal(t, "1", desc.Fields[0].Default)
}
