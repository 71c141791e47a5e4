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

package gofixedlayout

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/token"
	"io"
	"path"
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// emit generates a line of code in the output file.
//
// emit is a wrapper around writing a formatted string to the output
// buffer. emit can be invoked in one of two ways:
//
// (1) emit("some string")
//     When emit is called with a single string argument, it is simply copied to
//     the output buffer without any further formatting.
// (2) emit(fmtString, args...)
//     emit can also be invoked in a similar fashion to *Printf() functions,
//     where the first argument is a format string.
//
// Calling emit with a single argument that is not a string will result in a
// panic, as the caller's intent is ambiguous.
func emit(out io.Writer, indent int, a ...any) {
	if len(a) < 1 {
		panic("emit() called with no arguments")
	}

	if indent > 0 {
		if _, err := fmt.Fprint(out, strings.Repeat("\t", indent)); err != nil {
			// Writing to the emit output should not fail. Typically the output
			// is a byte.Buffer; writes to these never fail.
			panic(err)
		}
	}

	first, ok := a[0].(string)
	if !ok {
		// First argument must be either the string to emit (case 1 from
		// function-level comment), or a format string (case 2).
		panic(fmt.Sprintf("First argument to emit() is not a string: %+v", a[0]))
	}

	if len(a) == 1 {
		if _, err := fmt.Fprint(out, first); err != nil {
			panic(err)
		}
		return
	}

	if _, err := fmt.Fprintf(out, first, a[1:]...); err != nil {
		panic(err)
	}
}

// sourceBuffer represents fragments of generated go source code.
//
// May be safely zero-value initialized. Not thread-safe.
type sourceBuffer struct {
	// Current indentation level.
	indent int

	// Memory buffer containing contents while they're being generated.
	b bytes.Buffer
}

func (b *sourceBuffer) incIndent() {
	b.indent++
}

func (b *sourceBuffer) decIndent() {
	if b.indent <= 0 {
		panic("decIndent() without matching incIndent()")
	}
	b.indent--
}

func (b *sourceBuffer) emit(a ...any) {
	emit(&b.b, b.indent, a...)
}

func (b *sourceBuffer) inIndent(body func()) {
	b.incIndent()
	body()
	b.decIndent()
}

func (b *sourceBuffer) write(out io.Writer) error {
	_, err := out.Write(b.b.Bytes())
	return err
}

// importStmt represents a single import statement.
type importStmt struct {
	// Local name of the imported package.
	name string
	// Import path.
	path string
	// Indicates whether the local name is an alias, or simply the final
	// component of the path.
	aliased bool
	// Indicates whether this import was referenced by generated code.
	used bool
}

// assumedName returns the package name an import path most likely has: the
// last path element, skipping a major version element such as "v2", without
// a "go-" prefix and cut at the first character that cannot appear in an
// identifier. "gopkg.in/yaml.v2" is assumed to be package yaml.
//
// The name can only be known for sure by loading the package. Imports whose
// package name differs from the assumed one need an explicit name.
func assumedName(importPath string) string {
	base := path.Base(importPath)
	if len(base) > 1 && base[0] == 'v' {
		if _, err := strconv.Atoi(base[1:]); err == nil {
			if dir := path.Dir(importPath); dir != "." {
				base = path.Base(dir)
			}
		}
	}
	base = strings.TrimPrefix(base, "go-")
	if i := strings.IndexFunc(base, notIdentifier); i >= 0 {
		base = base[:i]
	}
	return base
}

func notIdentifier(ch rune) bool {
	return !('a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' ||
		'0' <= ch && ch <= '9' ||
		ch == '_' ||
		ch >= utf8.RuneSelf && (unicode.IsLetter(ch) || unicode.IsDigit(ch)))
}

func newImport(p string) *importStmt {
	return &importStmt{
		name: assumedName(p),
		path: p,
	}
}

// newNamedImport returns an import of p under the given local name. The name
// is only spelled out when it differs from the assumed one.
func newNamedImport(name, p string) *importStmt {
	return &importStmt{
		name:    name,
		path:    p,
		aliased: name != assumedName(p),
	}
}

func newImportFromSpec(spec *ast.ImportSpec, f *token.FileSet) (*importStmt, error) {
	p, err := strconv.Unquote(spec.Path.Value)
	if err != nil {
		return nil, fmt.Errorf("%s: bad import path %s: %w", f.Position(spec.Path.Pos()), spec.Path.Value, err)
	}
	name := assumedName(p)
	if name == "" {
		return nil, fmt.Errorf("%s: couldn't process local package name for import %q", f.Position(spec.Path.Pos()), p)
	}
	if spec.Name != nil {
		name = spec.Name.Name
	}
	return &importStmt{
		name:    name,
		path:    p,
		aliased: spec.Name != nil,
	}, nil
}

// String implements fmt.Stringer.String.
func (i *importStmt) String() string {
	if i.aliased {
		return fmt.Sprintf("%s %q", i.name, i.path)
	}
	return strconv.Quote(i.path)
}

func (i *importStmt) markUsed() {
	i.used = true
}

// importTable represents a collection of importStmts, keyed by local name.
type importTable struct {
	is map[string]*importStmt
}

func newImportTable() *importTable {
	return &importTable{
		is: make(map[string]*importStmt),
	}
}

// add adds an import by path, under its assumed package name.
func (i *importTable) add(s string) *importStmt {
	n := newImport(s)
	i.is[n.name] = n
	return n
}

// addNamed adds an import by path, under the given local name.
func (i *importTable) addNamed(name, p string) *importStmt {
	n := newNamedImport(name, p)
	i.is[n.name] = n
	return n
}

// addFromSpec adds an import from a source file. Two imports with the same
// local name but different paths cannot both be copied to the generated file,
// and are reported as an error.
func (i *importTable) addFromSpec(spec *ast.ImportSpec, f *token.FileSet) (*importStmt, error) {
	n, err := newImportFromSpec(spec, f)
	if err != nil {
		return nil, err
	}
	if n.name == "_" || n.name == "." {
		return n, nil // Never referenced by name.
	}
	if dup, ok := i.is[n.name]; ok {
		if dup.path != n.path {
			return nil, fmt.Errorf("%s: import %q uses local name %q, which is already used by %q", f.Position(spec.Pos()), n.path, n.name, dup.path)
		}
		return dup, nil
	}
	i.is[n.name] = n
	return n, nil
}

// markUsed marks the import named n as used. If no such import is in the
// table, returns false.
func (i *importTable) markUsed(n string) bool {
	if n, ok := i.is[n]; ok {
		n.markUsed()
		return true
	}
	return false
}

// merge merges the used imports of other into i.
func (i *importTable) merge(other *importTable) {
	for name, im := range other.is {
		if !im.used {
			continue
		}
		if dup, ok := i.is[name]; ok && dup.path != im.path {
			panic(fmt.Sprintf("Found colliding import statements: ours: %+v, other's: %+v", dup, im))
		}
		i.is[name] = im
	}
}

func (i *importTable) write(out io.Writer) error {
	imports := make([]string, 0, len(i.is))
	for _, i := range i.is {
		if i.used {
			imports = append(imports, i.String())
		}
	}
	if len(imports) == 0 {
		// Nothing to import, we're done.
		return nil
	}
	sort.Strings(imports)

	var b sourceBuffer
	b.emit("import (\n")
	b.inIndent(func() {
		for _, i := range imports {
			b.emit("%s\n", i)
		}
	})
	b.emit(")\n\n")

	return b.write(out)
}

// packageRefs returns the local package names referenced by e.
func packageRefs(e ast.Expr) []string {
	var names []string
	ast.Inspect(e, func(n ast.Node) bool {
		sel, ok := n.(*ast.SelectorExpr)
		if !ok {
			return true
		}
		if x, ok := sel.X.(*ast.Ident); ok {
			names = append(names, x.Name)
		}
		return true
	})
	return names
}
