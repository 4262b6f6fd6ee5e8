package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"autoimpl-generator/internal/common"
)

// Diagnostic codes emitted by the generator.
const (
	// CodeSyntax marks malformed field-list or invocation-argument syntax.
	CodeSyntax = "syntax-error"
	// CodeUnsupportedModifier marks ignore/using applied to a capability
	// that does not support it.
	CodeUnsupportedModifier = "unsupported-modifier"
	// CodeDanglingDefault marks a per-field default expression that reached
	// a rendering path that does not consume it.
	CodeDanglingDefault = "dangling-default-expr"
	// CodeMissingContext marks a bare default invocation used outside a
	// declaration context.
	CodeMissingContext = "missing-context"
	// CodeUnsupportedItem marks a default invocation applied to an item
	// kind that cannot carry one.
	CodeUnsupportedItem = "unsupported-item-kind"
	// CodeShadowedDefault marks per-field defaults shadowed by an explicit
	// whole-type default expression. Advisory only.
	CodeShadowedDefault = "shadowed-field-default"
	// CodeDroppedAttr marks opaque field attributes that cannot be carried
	// into rendered output. Warning only.
	CodeDroppedAttr = "dropped-field-attribute"
)

// Diagnostics holds all diagnostic information from one expansion pass.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Span locates the offending source region (if any).
	Span Span
	// Field identifies which field this relates to (if any).
	Field string
	// Suggestions are potential fixes or alternatives.
	Suggestions []string
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message string, span Span) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity: SeverityError,
		Code:     code,
		Message:  message,
		Span:     span,
	})
}

// AddErrorf adds an error diagnostic with a formatted message.
func (d *Diagnostics) AddErrorf(code string, span Span, format string, args ...any) {
	d.AddError(code, fmt.Sprintf(format, args...), span)
}

// Add appends a fully-built diagnostic under its own severity.
func (d *Diagnostics) Add(diag Diagnostic) {
	switch diag.Severity {
	case SeverityError:
		d.Errors = append(d.Errors, diag)
	case SeverityWarning:
		d.Warnings = append(d.Warnings, diag)
	default:
		d.Infos = append(d.Infos, diag)
	}
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message string, span Span) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: SeverityWarning,
		Code:     code,
		Message:  message,
		Span:     span,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message string, span Span) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity: SeverityInfo,
		Code:     code,
		Message:  message,
		Span:     span,
	})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// All returns every diagnostic ordered by severity (errors first).
func (d *Diagnostics) All() []Diagnostic {
	out := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings)+len(d.Infos))
	out = append(out, d.Errors...)
	out = append(out, d.Warnings...)
	out = append(out, d.Infos...)

	return out
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if !d.Span.IsZero() {
		prefix = append(prefix, d.Span.String())
	}

	if d.Field != "" {
		prefix = append(prefix, d.Field)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
