package capability

import (
	"fmt"
	"strconv"
	"strings"

	"autoimpl-generator/internal/decl"
	"autoimpl-generator/internal/emit"
	"autoimpl-generator/internal/modifier"
)

// generateDebug emits a String method describing the record's state.
//
// Named records list each included field as `name: value`; if any field
// was ignored the literal closes non-exhaustively with `..`, signalling
// hidden state. Positional records always preserve declared arity,
// substituting a `_` placeholder for ignored slots. Unit records print
// the bare type name.
func generateDebug(desc *decl.TypeDescriptor, res *modifier.Resolution) *emit.Fragment {
	var (
		format string
		args   []string
	)

	switch desc.Shape {
	case decl.ShapeNamed:
		var parts []string

		for i, f := range desc.Fields {
			if res.State(i) == modifier.Ignored {
				continue
			}

			parts = append(parts, f.GoName()+": %v")
			args = append(args, "v."+f.GoName())
		}

		// Whether one field or all of them were ignored, the finish is
		// the same: any hidden state makes the listing non-exhaustive.
		if res.AnyIgnored {
			parts = append(parts, "..")
		}

		format = desc.Name + "{" + strings.Join(parts, ", ") + "}"

	case decl.ShapePositional:
		parts := make([]string, 0, len(desc.Fields))

		for i, f := range desc.Fields {
			if res.State(i) == modifier.Ignored {
				parts = append(parts, "_")

				continue
			}

			parts = append(parts, "%v")
			args = append(args, "v."+f.GoName())
		}

		format = desc.Name + "(" + strings.Join(parts, ", ") + ")"

	case decl.ShapeUnit:
		format = desc.Name
	}

	recv := desc.TypeName()

	var (
		body    string
		imports []string
	)

	if len(args) == 0 {
		body = fmt.Sprintf("return %s", strconv.Quote(format))
	} else {
		body = fmt.Sprintf("return fmt.Sprintf(%s, %s)",
			strconv.Quote(format), strings.Join(args, ", "))
		imports = []string{"fmt"}
	}

	source := fmt.Sprintf(
		"// String describes the %s for debugging.\nfunc (v %s) String() string {\n\t%s\n}\n",
		desc.Name, recv, body)

	return &emit.Fragment{
		Capability: DebugPath,
		TypeName:   desc.Name,
		Imports:    imports,
		Source:     source,
	}
}
