package emit

import (
	"bytes"
	"fmt"
	"sort"
	"text/template"

	"mvdan.cc/gofumpt/format"
)

// File accumulates the declaration and fragments of one output file as
// an ordered sequence of source blocks.
type File struct {
	// Package is the name of the generated package.
	Package string

	blocks  []string
	imports map[string]struct{}
}

// NewFile creates an empty output file for the given package.
func NewFile(pkg string) *File {
	return &File{
		Package: pkg,
		imports: make(map[string]struct{}),
	}
}

// AddBlock appends a raw top-level source block.
func (f *File) AddBlock(src string) {
	if src != "" {
		f.blocks = append(f.blocks, src)
	}
}

// AddFragment appends a generated fragment and records its imports.
func (f *File) AddFragment(frag *Fragment) {
	f.AddBlock(frag.Source)

	for _, imp := range frag.Imports {
		f.imports[imp] = struct{}{}
	}
}

// IsEmpty returns true if no blocks were added.
func (f *File) IsEmpty() bool {
	return len(f.blocks) == 0
}

// templateData holds all data needed for the file template.
type templateData struct {
	Package string
	Imports []string
	Blocks  []string
}

var fileTemplate = template.Must(template.New("file").Parse(
	`// Code generated by autoimpl; DO NOT EDIT.

package {{.Package}}
{{if .Imports}}
import (
{{- range .Imports}}
	{{printf "%q" .}}
{{- end}}
)
{{end}}
{{- range .Blocks}}
{{.}}
{{- end}}`))

// Render executes the file template and formats the result in-memory.
// On formatting failure the unformatted source is returned along with
// the error, so callers can persist it for inspection.
func (f *File) Render() ([]byte, error) {
	data := templateData{
		Package: f.Package,
		Blocks:  f.blocks,
	}

	for imp := range f.imports {
		data.Imports = append(data.Imports, imp)
	}

	// Sorted iteration to ensure deterministic output.
	sort.Strings(data.Imports)

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing file template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes(), format.Options{})
	if err != nil {
		return buf.Bytes(), fmt.Errorf("formatting generated code: %w", err)
	}

	return formatted, nil
}
