// Copyright 2026 The gVisor Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package gofixedlayout implements the go_fixedlayout code generator.
//
// For every type declaration marked with "// +fixedlayout", the generator
// emits a hidden function holding one compile-time obligation per field,
// followed by the fixedlayout.FixedLayout capability grant. The Go compiler
// type-checks the obligations when it compiles the generated file, so the
// grant can never take effect in a successful build unless every field type
// carries the capability itself.
package gofixedlayout

import (
	"bytes"
	"context"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"os"
	"runtime"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gvisor.dev/fixedlayout/tools/go_fixedlayout/attest"
)

const (
	fixedlayoutImport = "gvisor.dev/fixedlayout/pkg/fixedlayout"
	analysisImport    = "gvisor.dev/fixedlayout/tools/go_fixedlayout/analysis"

	// generatedHeader follows the convention recognised by go vet and
	// gofmt for generated files.
	generatedHeader = "// Code generated by go_fixedlayout. DO NOT EDIT.\n\n"
)

// Options configures a Generator.
type Options struct {
	// Inputs are paths to Go source files, all from the same package.
	Inputs []string

	// Output is the file to write generated code to.
	Output string

	// OutputTest is the file to write generated tests to. Optional.
	OutputTest string

	// Package is the package name for the generated file. If empty, the
	// package name of the inputs is used.
	Package string

	// DeclarationPackage is the import path of the package declaring the
	// types. If set, generated tests are placed in the external test package
	// and only cover exported types.
	DeclarationPackage string

	// Imports are extra packages to import in the generated file.
	Imports []string
}

// Generator drives code generation for a single invocation of the
// go_fixedlayout utility.
//
// See Generator.Run for the entry point.
type Generator struct {
	opts Options

	// imports holds all imports available to generated code, from the
	// inputs and the extra imports.
	imports *importTable

	log *logrus.Entry
}

// inputFile is a parsed input.
type inputFile struct {
	path string
	fset *token.FileSet
	file *ast.File
}

// NewGenerator creates a new code Generator.
func NewGenerator(opts Options) (*Generator, error) {
	if len(opts.Inputs) == 0 {
		return nil, fmt.Errorf("no input files")
	}
	g := &Generator{
		opts:    opts,
		imports: newImportTable(),
		log:     logrus.WithField("tool", "go_fixedlayout"),
	}
	for _, i := range opts.Imports {
		// All imports on the extra imports list are unconditionally marked as
		// used, so they're always added to the generated code.
		g.imports.add(i).markUsed()
	}
	g.imports.add(fixedlayoutImport).markUsed()
	return g, nil
}

// parse parses all inputs, concurrently. The result is in input order.
func (g *Generator) parse(ctx context.Context) ([]*inputFile, error) {
	g.log.Debugf("invoked with %d input files", len(g.opts.Inputs))

	files := make([]*inputFile, len(g.opts.Inputs))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range g.opts.Inputs {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			fset := token.NewFileSet()
			f, err := parser.ParseFile(fset, path, nil, parser.ParseComments)
			if err != nil {
				// Not a valid input file.
				return &attest.Diagnostic{
					Kind:     attest.MalformedDeclaration,
					Position: token.Position{Filename: path},
					Message:  fmt.Sprintf("input %q can't be parsed: %v", path, err),
				}
			}
			g.log.WithField("file", path).Debug("parsed input")
			files[i] = &inputFile{path: path, fset: fset, file: f}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return files, nil
}

// collectImports adds all imports of an input file to the import table. Some
// of these are copied to the generated output, if field types reference them.
//
// The table already holds the fixedlayout package, so an input importing
// something else under that name is rejected here.
func (g *Generator) collectImports(in *inputFile) error {
	for _, spec := range in.file.Imports {
		i, err := g.imports.addFromSpec(spec, in.fset)
		if err != nil {
			return err
		}
		g.log.WithFields(logrus.Fields{"file": in.path, "path": i.path, "name": i.name}).Debug("collected import")
	}
	return nil
}

// declaredPackage returns the package name declared by the inputs, which
// must all agree.
func declaredPackage(files []*inputFile) (string, error) {
	name := ""
	for _, in := range files {
		switch n := in.file.Name.Name; {
		case name == "":
			name = n
		case n != name:
			return "", fmt.Errorf("inputs belong to different packages: %q and %q", name, n)
		}
	}
	return name, nil
}

// Generate runs the pipeline over all inputs and returns the generated source
// and generated test source. The test source is nil unless OutputTest is set.
//
// If any declaration is rejected, Generate returns the diagnostics as an
// attest.Diagnostics error and no source at all.
func (g *Generator) Generate(ctx context.Context) ([]byte, []byte, error) {
	files, err := g.parse(ctx)
	if err != nil {
		return nil, nil, err
	}
	declared, err := declaredPackage(files)
	if err != nil {
		return nil, nil, err
	}
	pkg := declared
	if g.opts.Package != "" {
		pkg = g.opts.Package
	}

	// Collect all imports before generating anything, since a field type in
	// one file may refer to any import of that file.
	for _, in := range files {
		if err := g.collectImports(in); err != nil {
			return nil, nil, err
		}
	}

	var (
		impls []*attestationGenerator
		tests []*testGenerator
		diags attest.Diagnostics
	)
	for _, in := range files {
		as, ds := attest.File(in.fset, in.file)
		diags = append(diags, ds...)
		for _, a := range as {
			g.log.WithFields(logrus.Fields{
				"file":        in.path,
				"type":        a.TypeName(),
				"obligations": len(a.Obligations),
			}).Debug("attested type")
			impl := newAttestationGenerator(a)
			impl.emitAttestation()
			// Collect imports referenced by the generated code.
			for name := range impl.is {
				if !g.imports.markUsed(name) {
					diags = append(diags, &attest.Diagnostic{
						Kind:     attest.MalformedDeclaration,
						Position: a.Decl.Pos,
						Type:     a.TypeName(),
						Message:  fmt.Sprintf("a field type of %s refers to package %q, which is not imported; if the package name differs from its import path, import it with an explicit name", a.TypeName(), name),
					})
				}
			}
			impls = append(impls, impl)
			if tg := newTestGenerator(a, g.opts.DeclarationPackage, declared); tg.covered() {
				tests = append(tests, tg)
			}
		}
	}
	if err := diags.Err(); err != nil {
		return nil, nil, err
	}

	// Tool was invoked with input files with no data structures marked for code
	// generation. This is probably not what the user intended.
	if len(impls) == 0 {
		var buf bytes.Buffer
		fmt.Fprintf(&buf, "go_fixedlayout invoked on these files, but they don't contain any types requiring code generation. Mark some with \"// %s\":\n", attest.Directive)
		for _, i := range g.opts.Inputs {
			fmt.Fprintf(&buf, "  %s\n", i)
		}
		return nil, nil, fmt.Errorf("%s", buf.String())
	}

	var out bytes.Buffer
	out.WriteString(generatedHeader)
	fmt.Fprintf(&out, "package %s\n\n", pkg)
	if err := g.imports.write(&out); err != nil {
		return nil, nil, err
	}
	for _, impl := range impls {
		if err := impl.write(&out); err != nil {
			return nil, nil, err
		}
	}
	src, err := format.Source(out.Bytes())
	if err != nil {
		return nil, nil, fmt.Errorf("formatting generated code: %w\n%s", err, out.Bytes())
	}

	if g.opts.OutputTest == "" {
		return src, nil, nil
	}
	testPkg := pkg
	if g.opts.DeclarationPackage != "" {
		testPkg = declared + "_test"
	}
	testSrc, err := g.generateTests(testPkg, tests)
	if err != nil {
		return nil, nil, err
	}
	return src, testSrc, nil
}

// generateTests renders the test suites for all attested types.
func (g *Generator) generateTests(pkg string, ts []*testGenerator) ([]byte, error) {
	var out bytes.Buffer
	out.WriteString(generatedHeader)
	fmt.Fprintf(&out, "package %s\n\n", pkg)

	imports := newImportTable()
	for _, t := range ts {
		imports.merge(t.imports)
	}
	if err := imports.write(&out); err != nil {
		return nil, err
	}
	for _, t := range ts {
		if err := t.write(&out); err != nil {
			return nil, err
		}
	}
	src, err := format.Source(out.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated tests: %w\n%s", err, out.Bytes())
	}
	return src, nil
}

// Run is the entry point to code generation using g.
//
// Run parses all input source files and writes the generated code. Nothing is
// written unless every marked declaration is attested.
func (g *Generator) Run(ctx context.Context) error {
	if g.opts.Output == "" {
		return fmt.Errorf("no output file")
	}
	src, testSrc, err := g.Generate(ctx)
	if err != nil {
		return err
	}
	if err := os.WriteFile(g.opts.Output, src, 0644); err != nil {
		return fmt.Errorf("couldn't write output file %q: %w", g.opts.Output, err)
	}
	if testSrc != nil {
		if err := os.WriteFile(g.opts.OutputTest, testSrc, 0644); err != nil {
			return fmt.Errorf("couldn't write test output file %q: %w", g.opts.OutputTest, err)
		}
	}
	g.log.WithField("output", g.opts.Output).Debug("wrote generated code")
	return nil
}
