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
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"path/filepath"
	"strings"
	"testing"
)

const primitiveImport = "gvisor.dev/fixedlayout/pkg/fixedlayout/primitive"

// sourceImporter type-checks the fixedlayout packages from source.
type sourceImporter struct {
	fset *token.FileSet
	dirs map[string]string
	pkgs map[string]*types.Package
}

func newSourceImporter(fset *token.FileSet) *sourceImporter {
	return &sourceImporter{
		fset: fset,
		dirs: map[string]string{
			fixedlayoutImport: filepath.Join("..", "..", "..", "pkg", "fixedlayout"),
			primitiveImport:   filepath.Join("..", "..", "..", "pkg", "fixedlayout", "primitive"),
		},
		pkgs: make(map[string]*types.Package),
	}
}

// Import implements types.Importer.Import.
func (si *sourceImporter) Import(path string) (*types.Package, error) {
	if pkg, ok := si.pkgs[path]; ok {
		return pkg, nil
	}
	dir, ok := si.dirs[path]
	if !ok {
		return nil, fmt.Errorf("unexpected import %q", path)
	}
	names, err := filepath.Glob(filepath.Join(dir, "*.go"))
	if err != nil {
		return nil, err
	}
	var files []*ast.File
	for _, name := range names {
		if strings.HasSuffix(name, "_test.go") {
			continue
		}
		f, err := parser.ParseFile(si.fset, name, nil, 0)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	conf := types.Config{Importer: si}
	pkg, err := conf.Check(path, si.fset, files, nil)
	if err != nil {
		return nil, err
	}
	si.pkgs[path] = pkg
	return pkg, nil
}

// compile generates code for src and type-checks src together with the
// generated code, as the compiler would. It returns all type errors.
func compile(t *testing.T, src string) error {
	t.Helper()
	inputs := writeInputs(t, src)
	gen, _, err := generate(t, Options{Inputs: inputs})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	fset := token.NewFileSet()
	var files []*ast.File
	for name, b := range map[string][]byte{inputs[0]: []byte(src), "generated.go": gen} {
		f, err := parser.ParseFile(fset, name, b, 0)
		if err != nil {
			t.Fatalf("ParseFile(%q) failed: %v", name, err)
		}
		files = append(files, f)
	}
	var errs []error
	conf := types.Config{
		Importer: newSourceImporter(fset),
		Error:    func(err error) { errs = append(errs, err) },
	}
	conf.Check("example.com/abi", fset, files, nil)
	return errors.Join(errs...)
}

func TestCompileGrants(t *testing.T) {
	err := compile(t, `package abi

import (
	"gvisor.dev/fixedlayout/pkg/fixedlayout"
	"gvisor.dev/fixedlayout/pkg/fixedlayout/primitive"
)

// +fixedlayout
// +repr:C
type Header struct {
	Magic   uint32
	Version primitive.Uint16
	Inner   [2]Inner
}

// +fixedlayout
// +repr:C
type Inner struct {
	A int64
	B [4]byte
}

// +fixedlayout
type Marker struct{}

// +fixedlayout
// +repr:transparent
type Handle primitive.Uint64

func use() {
	fixedlayout.EnsureFixedLayout[Header]()
	fixedlayout.EnsureFixedLayout[Marker]()
	fixedlayout.EnsureFixedLayout[Handle]()
}
`)
	if err != nil {
		t.Errorf("generated code does not type-check: %v", err)
	}
}

func TestCompileRejectsUnsatisfiedObligations(t *testing.T) {
	for _, tc := range []struct {
		name string
		src  string
		want string
	}{
		{
			name: "unattested field type",
			src: `package abi

type SomeUnattestedType struct {
	x uint32
}

// +fixedlayout
// +repr:C
type Bad struct {
	a uint32
	b SomeUnattestedType
}
`,
			want: "SomeUnattestedType does not satisfy",
		},
		{
			name: "grant promoted from embedded field",
			src: `package abi

import "gvisor.dev/fixedlayout/pkg/fixedlayout/primitive"

type Bad struct {
	primitive.Int32
	P *int
}

// +fixedlayout
// +repr:C
type Outer struct {
	B Bad
}
`,
			want: "Bad does not satisfy",
		},
		{
			name: "pointer alias",
			src: `package abi

import "gvisor.dev/fixedlayout/pkg/fixedlayout/primitive"

type HP = *primitive.Int64

// +fixedlayout
// +repr:C
type Header struct {
	P HP
}
`,
			want: "does not satisfy",
		},
		{
			name: "interface field",
			src: `package abi

import (
	"gvisor.dev/fixedlayout/pkg/fixedlayout"
	"gvisor.dev/fixedlayout/pkg/fixedlayout/primitive"
)

// +fixedlayout
// +repr:C
type Header struct {
	X fixedlayout.FixedLayout[primitive.Int8]
}
`,
			want: "does not satisfy",
		},
		{
			name: "pointer to attested type through alias",
			src: `package abi

// +fixedlayout
// +repr:C
type Inner struct {
	A uint8
}

type InnerPtr = *Inner

// +fixedlayout
// +repr:C
type Outer struct {
	I InnerPtr
}
`,
			want: "does not satisfy",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := compile(t, tc.src)
			if err == nil {
				t.Fatalf("generated code type-checks, want an error containing %q", tc.want)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("type errors = %v, want one containing %q", err, tc.want)
			}
		})
	}
}
