package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autoimpl-generator/internal/decl"
)

func TestParseRecord_Named(t *testing.T) {
	desc, err := ParseRecord(`struct Config {
		name: string = "app",
		retries: int = 3,
		conn: *sql.DB,
	}`)
	require.NoError(t, err)

	assert.Equal(t, "Config", desc.Name)
	assert.Equal(t, decl.ShapeNamed, desc.Shape)
	require.Len(t, desc.Fields, 3)

	assert.Equal(t, "name", desc.Fields[0].Ident)
	assert.Equal(t, "string", desc.Fields[0].Type)
	assert.Equal(t, `"app"`, desc.Fields[0].Default)

	assert.Equal(t, "retries", desc.Fields[1].Ident)
	assert.Equal(t, "3", desc.Fields[1].Default)

	assert.Equal(t, "conn", desc.Fields[2].Ident)
	assert.Equal(t, "*sql.DB", desc.Fields[2].Type)
	assert.Empty(t, desc.Fields[2].Default)
}

func TestParseRecord_Positional(t *testing.T) {
	desc, err := ParseRecord(`struct Pair(int = 1, map[string]int);`)
	require.NoError(t, err)

	assert.Equal(t, decl.ShapePositional, desc.Shape)
	require.Len(t, desc.Fields, 2)

	assert.Empty(t, desc.Fields[0].Ident)
	assert.Equal(t, 0, desc.Fields[0].Index)
	assert.Equal(t, "int", desc.Fields[0].Type)
	assert.Equal(t, "1", desc.Fields[0].Default)

	assert.Equal(t, 1, desc.Fields[1].Index)
	assert.Equal(t, "map[string]int", desc.Fields[1].Type)
}

func TestParseRecord_Unit(t *testing.T) {
	desc, err := ParseRecord(`struct Marker;`)
	require.NoError(t, err)

	assert.Equal(t, decl.ShapeUnit, desc.Shape)
	assert.Empty(t, desc.Fields)
}

func TestParseRecord_Generics(t *testing.T) {
	desc, err := ParseRecord(`struct Pair[T any, U comparable] {
		first: T,
		second: U,
	}`)
	require.NoError(t, err)

	require.Len(t, desc.Generics, 2)
	assert.Equal(t, decl.GenericParam{Name: "T", Constraint: "any"}, desc.Generics[0])
	assert.Equal(t, decl.GenericParam{Name: "U", Constraint: "comparable"}, desc.Generics[1])
	assert.Equal(t, "Pair[T, U]", desc.TypeName())
	assert.Equal(t, "[T any, U comparable]", desc.GenericDecl())
}

func TestParseRecord_WhereClauses(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		shape decl.ShapeKind
		where string
	}{
		{
			name:  "leading where on named",
			src:   `struct Box[T any] where T: fmt.Stringer { value: T }`,
			shape: decl.ShapeNamed,
			where: "T: fmt.Stringer",
		},
		{
			name:  "trailing where on positional",
			src:   `struct Box[T any](T) where T: fmt.Stringer;`,
			shape: decl.ShapePositional,
			where: "T: fmt.Stringer",
		},
		{
			name:  "leading where on unit",
			src:   `struct Marker where sky: blue;`,
			shape: decl.ShapeUnit,
			where: "sky: blue",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc, err := ParseRecord(tt.src)
			require.NoError(t, err)

			assert.Equal(t, tt.shape, desc.Shape)
			assert.Equal(t, tt.where, desc.Where)
		})
	}
}

func TestParseRecord_FieldExtras(t *testing.T) {
	desc, err := ParseRecord(`struct Mixed {
		#[serde(skip)]
		pub inner: bytes.Buffer,
		_: struct{},
	}`)
	require.NoError(t, err)

	require.Len(t, desc.Fields, 2)
	assert.Equal(t, []string{"serde(skip)"}, desc.Fields[0].Attrs)
	assert.Equal(t, "pub", desc.Fields[0].Vis)
	assert.Equal(t, "bytes.Buffer", desc.Fields[0].Type)
	assert.Equal(t, "_", desc.Fields[1].Ident)
	assert.Equal(t, "struct{}", desc.Fields[1].Type)
}

func TestParseRecord_DefaultSpanCoversAssignment(t *testing.T) {
	src := `struct S { a: int = compute(1, 2) }`

	desc, err := ParseRecord(src)
	require.NoError(t, err)

	span := desc.Fields[0].DefaultSpan
	require.Positive(t, span.Len)
	assert.Equal(t, "= compute(1, 2)", src[span.Offset:span.Offset+span.Len])
}

func TestParseRecord_SyntaxErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"missing terminator on positional", `struct P(int)`},
		{"missing terminator on unit", `struct U`},
		{"missing colon", `struct S { a int }`},
		{"missing type", `struct S { a: }`},
		{"missing field list", `struct S = 3;`},
		{"unbalanced braces", `struct S { a: fn( }`},
		{"trailing garbage", `struct U; extra`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRecord(tt.src)
			require.Error(t, err)

			diag := AsDiagnostic(err)
			assert.Equal(t, "syntax-error", diag.Code)
		})
	}
}

func TestParseRecord_ErrorSpanPointsAtOffender(t *testing.T) {
	_, err := ParseRecord("struct S {\n\ta int\n}")
	require.Error(t, err)

	diag := AsDiagnostic(err)
	assert.Equal(t, 2, diag.Span.Line)
}
