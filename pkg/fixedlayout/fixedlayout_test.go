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

package fixedlayout_test

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"strings"
	"testing"

	"gvisor.dev/fixedlayout/pkg/fixedlayout"
	"gvisor.dev/fixedlayout/pkg/fixedlayout/primitive"
)

type granted struct {
	A primitive.Uint32
}

func (granted) UnsafeFixedLayout(granted) {}

var (
	_ fixedlayout.FixedLayout[granted]         = granted{}
	_ fixedlayout.FixedLayout[primitive.Int64] = primitive.Int64(0)
)

func TestEnsure(t *testing.T) {
	// These are compile-time checks; calling them has no effect.
	fixedlayout.EnsureFixedLayout[granted]()
	fixedlayout.EnsureFixedLayout[primitive.Bool]()
	fixedlayout.EnsureScalar[int8]()
	fixedlayout.EnsureScalar[byte]()
	fixedlayout.EnsureScalar[rune]()
	fixedlayout.EnsureScalar[complex128]()
	fixedlayout.EnsureScalar[bool]()
}

const importPath = "gvisor.dev/fixedlayout/pkg/fixedlayout"

type importerFunc func(path string) (*types.Package, error)

func (f importerFunc) Import(path string) (*types.Package, error) { return f(path) }

// typeCheck type-checks src against this package, built from source, and
// returns the first error.
func typeCheck(t *testing.T, src string) error {
	t.Helper()
	fset := token.NewFileSet()
	lib, err := parser.ParseFile(fset, "fixedlayout.go", nil, 0)
	if err != nil {
		t.Fatalf("ParseFile(fixedlayout.go) failed: %v", err)
	}
	libPkg, err := (&types.Config{}).Check(importPath, fset, []*ast.File{lib}, nil)
	if err != nil {
		t.Fatalf("type-checking fixedlayout.go failed: %v", err)
	}
	f, err := parser.ParseFile(fset, "src.go", src, 0)
	if err != nil {
		t.Fatalf("ParseFile(src) failed: %v\n%s", err, src)
	}
	conf := types.Config{
		Importer: importerFunc(func(path string) (*types.Package, error) {
			if path == importPath {
				return libPkg, nil
			}
			return nil, fmt.Errorf("unexpected import %q", path)
		}),
	}
	_, err = conf.Check("example.com/p", fset, []*ast.File{f}, nil)
	return err
}

func TestEnsureFixedLayoutRejects(t *testing.T) {
	const decls = `package p

import "gvisor.dev/fixedlayout/pkg/fixedlayout"

type Granted struct{ A int32 }

func (Granted) UnsafeFixedLayout(Granted) {}

type Promoted struct {
	Granted
	P *int
}

type PtrAlias = *Granted

type Tag = fixedlayout.FixedLayout[Granted]

type Old struct{}

func (Old) UnsafeFixedLayout() {}

func check() {
	%s
}
`
	// Sanity check: the declarations themselves are fine.
	if err := typeCheck(t, fmt.Sprintf(decls, "fixedlayout.EnsureFixedLayout[Granted]()")); err != nil {
		t.Fatalf("type-checking a granted type failed: %v", err)
	}

	for _, tc := range []struct {
		name string
		typ  string
	}{
		{"pointer", "*Granted"},
		{"pointer alias", "PtrAlias"},
		{"promoted grant", "Promoted"},
		{"interface", "Tag"},
		{"grant without parameter", "Old"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := typeCheck(t, fmt.Sprintf(decls, "fixedlayout.EnsureFixedLayout["+tc.typ+"]()"))
			if err == nil {
				t.Fatalf("EnsureFixedLayout[%s] type-checks, want an error", tc.typ)
			}
			if !strings.Contains(err.Error(), "does not satisfy") {
				t.Errorf("EnsureFixedLayout[%s] error = %v, want a constraint error", tc.typ, err)
			}
		})
	}
}

func TestEnsureScalarRejects(t *testing.T) {
	for _, typ := range []string{"int", "uint", "uintptr", "string", "*int8"} {
		t.Run(typ, func(t *testing.T) {
			src := fmt.Sprintf(`package p

import "gvisor.dev/fixedlayout/pkg/fixedlayout"

func check() {
	fixedlayout.EnsureScalar[%s]()
}
`, typ)
			if err := typeCheck(t, src); err == nil {
				t.Errorf("EnsureScalar[%s] type-checks, want an error", typ)
			}
		})
	}
}
