package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autoimpl-generator/internal/modifier"
)

func parseOneDecl(t *testing.T, src string) ParsedDecl {
	t.Helper()

	decls, fileDiags := ParseFile(src)
	require.True(t, fileDiags.IsValid(), "unexpected: %v", fileDiags.Error())
	require.Len(t, decls, 1)
	require.True(t, decls[0].Diags.IsValid(), "unexpected: %v", decls[0].Diags.Error())

	return decls[0]
}

func TestParseFile_CapabilityInvocation(t *testing.T) {
	pd := parseOneDecl(t, `
		#[impl(Clone, ignore(b, c))]
		#[impl(autoimpl.Debug)]
		struct S { a: int, b: int, c: int }
	`)

	require.Len(t, pd.Invocations, 2)

	clone := pd.Invocations[0]
	assert.Equal(t, InvokeCapability, clone.Kind)
	assert.Equal(t, "Clone", clone.Capability)
	require.Len(t, clone.Modifiers.Ignored, 2)
	assert.Equal(t, "b", clone.Modifiers.Ignored[0].Name)
	assert.Equal(t, "c", clone.Modifiers.Ignored[1].Name)

	debug := pd.Invocations[1]
	assert.Equal(t, "autoimpl.Debug", debug.Capability)
	assert.True(t, debug.Modifiers.IsEmpty())
}

func TestParseFile_PositionalIgnoreIndexes(t *testing.T) {
	pd := parseOneDecl(t, `
		#[impl(Debug, ignore(0, 2))]
		struct P(int, int, int);
	`)

	refs := pd.Invocations[0].Modifiers.Ignored
	require.Len(t, refs, 2)
	assert.Equal(t, modifier.FieldRef{Index: 0, Span: refs[0].Span}, refs[0])
	assert.Equal(t, modifier.FieldRef{Index: 2, Span: refs[1].Span}, refs[1])
}

func TestParseFile_UsingDirective(t *testing.T) {
	pd := parseOneDecl(t, `
		#[impl(Clone, using(inner))]
		struct W { inner: int }
	`)

	using := pd.Invocations[0].Modifiers.Using
	require.NotNil(t, using)
	assert.Equal(t, "inner", using.Name)
}

func TestParseFile_DefaultInvocations(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		expr  string
		where string
	}{
		{"bare", `#[default] struct S;`, "", ""},
		{"expression", `#[default(S{n: 7})] struct S { n: int }`, "S{n: 7}", ""},
		{
			"expression with where",
			`#[default(newS() where T: Default)] struct S;`,
			"newS()", "T: Default",
		},
		{"where only", `#[default(where T: Default)] struct S;`, "", "T: Default"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pd := parseOneDecl(t, tt.src)

			require.Len(t, pd.Invocations, 1)
			inv := pd.Invocations[0]

			assert.Equal(t, InvokeDefault, inv.Kind)
			assert.Equal(t, tt.expr, inv.Expr)
			assert.Equal(t, tt.where, inv.Where)
		})
	}
}

func TestParseFile_MultipleDecls(t *testing.T) {
	decls, fileDiags := ParseFile(`
		#[impl(Clone)]
		struct A { x: int }

		struct B(int);

		#[default]
		struct C;
	`)
	require.True(t, fileDiags.IsValid())
	require.Len(t, decls, 3)

	assert.Equal(t, "A", decls[0].Desc.Name)
	assert.Empty(t, decls[1].Invocations)
	assert.Equal(t, "C", decls[2].Desc.Name)
}

func TestParseFile_MalformedInvocationDropsOnlyItself(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"unknown attribute", "#[derive(Clone)]\n#[impl(Debug)]\nstruct S { a: int }"},
		{"unknown directive", "#[impl(Clone, skip(a))]\n#[impl(Debug)]\nstruct S { a: int }"},
		{"using twice", "#[impl(Clone, using(a), using(b))]\n#[impl(Debug)]\nstruct S { a: int, b: int }"},
		{"using with two fields", "#[impl(Clone, using(a, b))]\n#[impl(Debug)]\nstruct S { a: int, b: int }"},
		{"using overlaps ignore", "#[impl(Clone, ignore(a), using(a))]\n#[impl(Debug)]\nstruct S { a: int }"},
		{"empty ref list", "#[impl(Clone, ignore())]\n#[impl(Debug)]\nstruct S { a: int }"},
		{"dangling comma in refs", "#[impl(Clone, ignore(b,))]\n#[impl(Debug)]\nstruct S { a: int, b: int }"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decls, fileDiags := ParseFile(tt.src)
			require.True(t, fileDiags.IsValid())
			require.Len(t, decls, 1)

			pd := decls[0]
			require.Len(t, pd.Diags.Errors, 1)
			assert.Equal(t, "syntax-error", pd.Diags.Errors[0].Code)

			// The healthy sibling invocation and the declaration survive.
			require.Len(t, pd.Invocations, 1)
			assert.Equal(t, "Debug", pd.Invocations[0].Capability)
			assert.Equal(t, "S", pd.Desc.Name)
		})
	}
}

func TestParseFile_BrokenDeclDropsOnlyItself(t *testing.T) {
	decls, fileDiags := ParseFile(`
		struct Bad { a int }

		#[impl(Clone)]
		struct Good { a: int }
	`)

	require.Len(t, fileDiags.Errors, 1)
	assert.Equal(t, "syntax-error", fileDiags.Errors[0].Code)

	require.Len(t, decls, 1)
	assert.Equal(t, "Good", decls[0].Desc.Name)
	require.Len(t, decls[0].Invocations, 1)
}

func TestParseFile_AttrWithoutDecl(t *testing.T) {
	decls, fileDiags := ParseFile(`#[impl(Clone)]`)

	assert.Empty(t, decls)
	require.Len(t, fileDiags.Errors, 1)
	assert.Equal(t, "syntax-error", fileDiags.Errors[0].Code)
}

func TestParseFile_LexerFailure(t *testing.T) {
	decls, fileDiags := ParseFile(`struct S { a: string = "oops }`)

	assert.Empty(t, decls)
	assert.True(t, fileDiags.HasErrors())
}
