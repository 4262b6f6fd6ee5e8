package capability

import (
	"fmt"
	"strings"

	"autoimpl-generator/internal/decl"
	"autoimpl-generator/internal/emit"
	"autoimpl-generator/internal/modifier"
)

// generateClone emits a value-copying constructor: every field is
// copied from the receiver, except ignored fields, which are set to
// their type's default value.
func generateClone(desc *decl.TypeDescriptor, res *modifier.Resolution) *emit.Fragment {
	recv := desc.TypeName()

	var lit string

	switch desc.Shape {
	case decl.ShapeNamed:
		var sb strings.Builder

		sb.WriteString(recv + "{\n")

		for i, f := range desc.Fields {
			if res.State(i) == modifier.Ignored {
				fmt.Fprintf(&sb, "\t\t%s: %s,\n", f.GoName(), zeroExpr(f.Type))
			} else {
				fmt.Fprintf(&sb, "\t\t%s: v.%s,\n", f.GoName(), f.GoName())
			}
		}

		sb.WriteString("\t}")
		lit = sb.String()

	case decl.ShapePositional:
		var sb strings.Builder

		sb.WriteString(recv + "{\n")

		for i, f := range desc.Fields {
			if res.State(i) == modifier.Ignored {
				fmt.Fprintf(&sb, "\t\t%s,\n", zeroExpr(f.Type))
			} else {
				fmt.Fprintf(&sb, "\t\tv.%s,\n", f.GoName())
			}
		}

		sb.WriteString("\t}")
		lit = sb.String()

	case decl.ShapeUnit:
		lit = recv + "{}"
	}

	source := fmt.Sprintf(
		"// Clone returns a copy of the receiver.\nfunc (v %s) Clone() %s {\n\treturn %s\n}\n",
		recv, recv, lit)

	return &emit.Fragment{
		Capability: ClonePath,
		TypeName:   desc.Name,
		Source:     source,
	}
}

// zeroExpr is the generic default-value primitive for an opaque type
// expression.
func zeroExpr(typeExpr string) string {
	return fmt.Sprintf("*new(%s)", typeExpr)
}
