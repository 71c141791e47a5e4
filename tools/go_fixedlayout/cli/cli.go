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

// Package cli implements the go_fixedlayout command line interface.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"go/parser"
	"go/token"
	"io"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
	"gvisor.dev/fixedlayout/tools/go_fixedlayout/attest"
	"gvisor.dev/fixedlayout/tools/go_fixedlayout/config"
	"gvisor.dev/fixedlayout/tools/go_fixedlayout/gofixedlayout"
)

// stringList is a flag that may be repeated.
type stringList []string

// String implements flag.Value.String.
func (s *stringList) String() string {
	return strings.Join(*s, ",")
}

// Set implements flag.Value.Set.
func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

// failure exits with the given failure message.
func failure(fmtStr string, v ...any) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, fmtStr+"\n", v...)
	return subcommands.ExitFailure
}

// isTerminal return true if the file is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	_, err := unix.IoctlGetTermios(int(f.Fd()), unix.TCGETS)
	return err == nil
}

// reportDiagnostics writes diagnostics, either as text or as JSON.
func reportDiagnostics(w io.Writer, diags attest.Diagnostics, asJSON bool) error {
	if asJSON {
		if diags == nil {
			diags = attest.Diagnostics{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(diags)
	}
	for _, d := range diags {
		if _, err := fmt.Fprintf(w, "%s\n", d.Error()); err != nil {
			return err
		}
	}
	return nil
}

// diagnosticsOf returns the diagnostics carried by err, if any.
func diagnosticsOf(err error) (attest.Diagnostics, bool) {
	var (
		diags attest.Diagnostics
		diag  *attest.Diagnostic
	)
	switch {
	case errors.As(err, &diags):
		return diags, true
	case errors.As(err, &diag):
		return attest.Diagnostics{diag}, true
	default:
		return nil, false
	}
}

// setupLogging configures the global logger.
func setupLogging(debug bool) {
	logrus.SetOutput(os.Stderr)
	if debug {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.WarnLevel)
	}
}

// Generate implements subcommands.Command for the "generate" command.
type Generate struct {
	Configs            stringList
	Package            string
	Output             string
	OutputTest         string
	Imports            string
	DeclarationPackage string
	Debug              bool
}

// Name implements subcommands.Command.Name.
func (*Generate) Name() string {
	return "generate"
}

// Synopsis implements subcommands.Command.Synopsis.
func (*Generate) Synopsis() string {
	return "Generate fixed layout attestations for marked types."
}

// Usage implements subcommands.Command.Usage.
func (*Generate) Usage() string {
	return `generate [flags] <input go src files>

	Generates obligations and capability grants for every type declaration
	marked with "// +fixedlayout" in the given files, which must belong to a
	single package. Nothing is written if any declaration is rejected.

`
}

// SetFlags implements subcommands.Command.SetFlags.
func (g *Generate) SetFlags(fs *flag.FlagSet) {
	fs.Var(&g.Configs, "config", "configuration file (YAML, or TOML if the name ends in .toml); may be repeated, later files override earlier ones")
	fs.StringVar(&g.Package, "pkg", "", "output package (default: package of the inputs)")
	fs.StringVar(&g.Output, "output", "", "output file")
	fs.StringVar(&g.OutputTest, "output_test", "", "output file for tests (optional)")
	fs.StringVar(&g.Imports, "imports", "", "comma-separated list of extra packages to import in generated code")
	fs.StringVar(&g.DeclarationPackage, "declarationPkg", "", "import path of the package declaring the types, for external tests")
	fs.BoolVar(&g.Debug, "debug", false, "enables debugging output")
}

// options merges configuration files and flags.
func (g *Generate) options(inputs []string) (gofixedlayout.Options, error) {
	c, err := config.LoadAll(g.Configs)
	if err != nil {
		return gofixedlayout.Options{}, err
	}
	flags := &config.Config{
		Package:            g.Package,
		Output:             g.Output,
		OutputTest:         g.OutputTest,
		DeclarationPackage: g.DeclarationPackage,
	}
	if len(g.Imports) > 0 {
		// Note: strings.Split(s, sep) returns s if sep doesn't exist in s.
		// Thus we check for an empty imports list to avoid emitting an empty
		// string as an import.
		flags.Imports = strings.Split(g.Imports, ",")
	}
	c.Merge(flags)
	if err := c.Compile(); err != nil {
		return gofixedlayout.Options{}, err
	}
	return gofixedlayout.Options{
		Inputs:             c.Filter(inputs),
		Output:             c.Output,
		OutputTest:         c.OutputTest,
		Package:            c.Package,
		DeclarationPackage: c.DeclarationPackage,
		Imports:            c.Imports,
	}, nil
}

// Execute implements subcommands.Command.Execute.
func (g *Generate) Execute(ctx context.Context, fs *flag.FlagSet, args ...any) subcommands.ExitStatus {
	setupLogging(g.Debug)
	if fs.NArg() == 0 {
		return subcommands.ExitUsageError
	}
	opts, err := g.options(fs.Args())
	if err != nil {
		return failure("%v", err)
	}
	if opts.Output == "" {
		return failure("flag -output or config output must be provided")
	}
	gen, err := gofixedlayout.NewGenerator(opts)
	if err != nil {
		return failure("%v", err)
	}
	if err := gen.Run(ctx); err != nil {
		diags, ok := diagnosticsOf(err)
		if !ok {
			return failure("%v", err)
		}
		if err := reportDiagnostics(os.Stderr, diags, false /* json */); err != nil {
			return failure("writing diagnostics: %v", err)
		}
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// Check implements subcommands.Command for the "check" command.
type Check struct {
	JSON bool
	Text bool
}

// Name implements subcommands.Command.Name.
func (*Check) Name() string {
	return "check"
}

// Synopsis implements subcommands.Command.Synopsis.
func (*Check) Synopsis() string {
	return "Report declarations that cannot be attested, without generating code."
}

// Usage implements subcommands.Command.Usage.
func (*Check) Usage() string {
	return `check [flags] <input go src files>

	Runs intake, eligibility and obligation synthesis for every marked type
	declaration and prints all diagnostics. Obligations on named field types
	are not discharged: that requires the compiler, or checkfixedlayout.

`
}

// SetFlags implements subcommands.Command.SetFlags.
func (c *Check) SetFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.JSON, "json", false, "force JSON output")
	fs.BoolVar(&c.Text, "text", false, "force text output (by default, only if output is a terminal)")
}

// CheckFiles runs the pipeline over the given files and returns all
// diagnostics. Files are processed independently; a file that does not parse
// is reported and the remaining files are still checked.
func CheckFiles(filenames []string) attest.Diagnostics {
	var diags attest.Diagnostics
	for _, filename := range filenames {
		fset := token.NewFileSet()
		f, err := parser.ParseFile(fset, filename, nil, parser.ParseComments)
		if err != nil {
			diags = append(diags, &attest.Diagnostic{
				Kind:     attest.MalformedDeclaration,
				Position: token.Position{Filename: filename},
				Message:  fmt.Sprintf("input %q can't be parsed: %v", filename, err),
			})
			continue
		}
		_, ds := attest.File(fset, f)
		diags = append(diags, ds...)
	}
	return diags
}

// Execute implements subcommands.Command.Execute.
func (c *Check) Execute(ctx context.Context, fs *flag.FlagSet, args ...any) subcommands.ExitStatus {
	if fs.NArg() == 0 {
		return subcommands.ExitUsageError
	}
	diags := CheckFiles(fs.Args())
	asJSON := c.JSON || (!c.Text && !isTerminal(os.Stdout))
	if err := reportDiagnostics(os.Stdout, diags, asJSON); err != nil {
		return failure("writing diagnostics: %v", err)
	}
	if len(diags) > 0 {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// Main is the main entrypoint.
func Main() {
	subcommands.Register(&Generate{}, "")
	subcommands.Register(&Check{}, "")
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	flag.Parse()
	os.Exit(int(subcommands.Execute(context.Background())))
}
