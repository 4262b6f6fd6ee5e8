package decl

import (
	"fmt"
	"strings"

	"autoimpl-generator/internal/diagnostic"
)

// RenderDecl renders the declaration as a Go type definition for the
// aggregating scope to emit alongside the generated fragments.
//
// defaultsConsumed reports whether a default-construction pass has
// claimed the per-field `= expression` extensions. Rendering a field
// that still carries one is an error: the expression is reported as
// dangling and dropped from the output, never passed through.
func RenderDecl(d *TypeDescriptor, defaultsConsumed bool, diags *diagnostic.Diagnostics) string {
	var sb strings.Builder

	sb.WriteString("type ")
	sb.WriteString(d.Name)
	sb.WriteString(d.GenericDecl())
	sb.WriteString(" struct {")

	body := RenderFields(d, defaultsConsumed, diags)
	if body == "" {
		sb.WriteString("}\n")

		return sb.String()
	}

	sb.WriteByte('\n')
	sb.WriteString(body)
	sb.WriteString("}\n")

	return sb.String()
}

// RenderFields renders the field list as Go struct-body lines.
// Unit records render as an empty body. Field attributes have no
// representation in the output; dropping them is a warning.
func RenderFields(d *TypeDescriptor, defaultsConsumed bool, diags *diagnostic.Diagnostics) string {
	var sb strings.Builder

	for _, f := range d.Fields {
		if len(f.Attrs) > 0 {
			diags.AddWarning(diagnostic.CodeDroppedAttr,
				fmt.Sprintf("attributes on field %s do not appear in output", f.Label()),
				f.Span)
		}

		if f.Default != "" && !defaultsConsumed {
			diags.Add(diagnostic.Diagnostic{
				Severity:    diagnostic.SeverityError,
				Code:        diagnostic.CodeDanglingDefault,
				Message:     "default value on field in output",
				Span:        f.DefaultSpan,
				Field:       f.Label(),
				Suggestions: []string{"did you mean to use the #[default] attribute?"},
			})
		}

		sb.WriteByte('\t')
		sb.WriteString(f.GoName())
		sb.WriteByte(' ')
		sb.WriteString(f.Type)
		sb.WriteByte('\n')
	}

	return sb.String()
}
