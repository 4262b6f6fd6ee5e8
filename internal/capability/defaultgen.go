package capability

import (
	"fmt"
	"strings"

	"autoimpl-generator/internal/decl"
	"autoimpl-generator/internal/emit"
	"autoimpl-generator/internal/modifier"
)

// generateDefault emits the per-field default constructor: every field
// renders its attached default-value expression if one was parsed, or
// the type's default-value primitive otherwise. The modifier resolution
// is unused; the capability supports neither ignore nor using.
func generateDefault(desc *decl.TypeDescriptor, _ *modifier.Resolution) *emit.Fragment {
	var lit string

	switch desc.Shape {
	case decl.ShapeNamed:
		var sb strings.Builder

		sb.WriteString(desc.TypeName() + "{\n")

		for _, f := range desc.Fields {
			fmt.Fprintf(&sb, "\t\t%s: %s,\n", f.GoName(), fieldDefault(f))
		}

		sb.WriteString("\t}")
		lit = sb.String()

	case decl.ShapePositional:
		var sb strings.Builder

		sb.WriteString(desc.TypeName() + "{\n")

		for _, f := range desc.Fields {
			fmt.Fprintf(&sb, "\t\t%s,\n", fieldDefault(f))
		}

		sb.WriteString("\t}")
		lit = sb.String()

	case decl.ShapeUnit:
		lit = desc.TypeName() + "{}"
	}

	return defaultFragment(desc, lit)
}

// generateDefaultExpr emits the whole-type default constructor from an
// explicit expression, used verbatim as the return value. Per-field
// logic is bypassed entirely.
func generateDefaultExpr(desc *decl.TypeDescriptor, expr string) *emit.Fragment {
	return defaultFragment(desc, expr)
}

func fieldDefault(f decl.Field) string {
	if f.Default != "" {
		return f.Default
	}

	return zeroExpr(f.Type)
}

func defaultFragment(desc *decl.TypeDescriptor, value string) *emit.Fragment {
	source := fmt.Sprintf(
		"// Default%s returns the default value of %s.\nfunc Default%s%s() %s {\n\treturn %s\n}\n",
		desc.Name, desc.Name, desc.Name, desc.GenericDecl(), desc.TypeName(), value)

	return &emit.Fragment{
		Capability: DefaultPath,
		TypeName:   desc.Name,
		Source:     source,
	}
}
