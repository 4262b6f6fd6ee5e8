// Package main provides the CLI entrypoint for autoimpl.
//
// autoimpl is a derive-style Go codegen tool that:
//   - Parses record declaration files (named, positional, or unit
//     fields, with optional per-field `= expr` defaults)
//   - Applies capability invocation attributes (Clone, Debug, Default)
//   - Emits one Go file per declaration with the rendered type and its
//     generated implementations
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"autoimpl-generator/internal/parse"
	"autoimpl-generator/internal/scope"
)

var (
	outDir  string
	pkgName string
)

var rootCmd = &cobra.Command{
	Use:   "autoimpl",
	Short: "autoimpl generates Clone, Debug, and Default implementations for record declarations",
}

var genCmd = &cobra.Command{
	Use:   "gen [files...]",
	Short: "Generate implementations from declaration files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		failed := 0

		for _, path := range args {
			if err := genFile(path); err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
				failed++
			}
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d files had errors", failed, len(args))
		}

		return nil
	},
}

func init() {
	genCmd.Flags().StringVarP(&outDir, "out", "o", ".", `output directory ("-" for stdout)`)
	genCmd.Flags().StringVarP(&pkgName, "package", "p", "generated", "package name for generated files")
	rootCmd.AddCommand(genCmd)
}

// genFile expands one declaration file. Invocation failures are
// fail-soft: they are reported but every emittable declaration is
// still written.
func genFile(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	decls, fileDiags := parse.ParseFile(string(src))

	for _, diag := range fileDiags.All() {
		fmt.Fprintf(os.Stderr, "%s: %s: %s\n", path, diag.Severity, diag)
	}

	hadErrors := fileDiags.HasErrors()

	for _, pd := range decls {
		sc := scope.New(pd)
		sc.Expand()

		out, renderErr := sc.File(pkgName).Render()

		for _, diag := range sc.Diags.All() {
			fmt.Fprintf(os.Stderr, "%s: %s: %s\n", path, diag.Severity, diag)
		}

		if renderErr != nil {
			fmt.Fprintf(os.Stderr, "%s: %s: %v\n", path, pd.Desc.Name, renderErr)
		}

		if sc.Diags.HasErrors() || renderErr != nil {
			hadErrors = true
		}

		if err := writeOutput(pd.Desc.Name, out); err != nil {
			return err
		}
	}

	if hadErrors {
		return fmt.Errorf("declarations had errors")
	}

	return nil
}

func writeOutput(typeName string, content []byte) error {
	if outDir == "-" {
		_, err := os.Stdout.Write(content)

		return err
	}

	name := strings.ToLower(typeName) + "_autoimpl.go"
	dest := filepath.Join(outDir, name)

	if err := os.WriteFile(dest, content, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", dest, err)
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
