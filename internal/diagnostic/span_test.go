package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpanExtend(t *testing.T) {
	a := Span{Offset: 4, Line: 1, Col: 5, Len: 3}
	b := Span{Offset: 10, Line: 2, Col: 1, Len: 5}

	joined := a.Extend(b)
	assert.Equal(t, 4, joined.Offset)
	assert.Equal(t, 11, joined.Len)

	// Order does not matter.
	assert.Equal(t, joined, b.Extend(a))

	// Zero operands are identity.
	assert.Equal(t, a, a.Extend(Span{}))
	assert.Equal(t, a, Span{}.Extend(a))
}

func TestDiagnosticString(t *testing.T) {
	d := Diagnostic{
		Severity: SeverityError,
		Code:     CodeDanglingDefault,
		Message:  "default value on field in output",
		Span:     Span{Offset: 12, Line: 3, Col: 7, Len: 4},
		Field:    "a",
	}

	assert.Equal(t, "3:7 a: [dangling-default-expr] default value on field in output", d.String())
	assert.Equal(t, "error", SeverityError.String())
}

func TestDiagnosticsErrorAggregation(t *testing.T) {
	var d Diagnostics

	assert.True(t, d.IsValid())
	assert.NoError(t, d.Error())

	d.AddInfo(CodeShadowedDefault, "shadowed", Span{})
	d.AddWarning(CodeDroppedAttr, "dropped", Span{})
	assert.True(t, d.IsValid())

	d.AddErrorf(CodeSyntax, Span{}, "unexpected %q", "}")
	assert.True(t, d.HasErrors())
	assert.ErrorContains(t, d.Error(), "unexpected")

	// Errors sort first regardless of insertion order.
	all := d.All()
	require.Len(t, all, 3)
	assert.Equal(t, SeverityError, all[0].Severity)
}
