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

// This file contains the bits of the code generator that emit tests for the
// generated code.

package gofixedlayout

import (
	"go/ast"

	"gvisor.dev/fixedlayout/tools/go_fixedlayout/attest"
)

// testGenerator emits a test suite for one attested type.
type testGenerator struct {
	sourceBuffer

	a *attest.Attestation

	// declaration is the import path of the package declaring the type, or
	// empty if the tests live in that package.
	declaration string

	// declarationName is the name of the package declaring the type.
	declarationName string

	// imports used by the tests.
	imports *importTable
}

func newTestGenerator(a *attest.Attestation, declaration, declarationName string) *testGenerator {
	g := &testGenerator{
		a:               a,
		declaration:     declaration,
		declarationName: declarationName,
		imports:         newImportTable(),
	}
	if !g.covered() {
		return g
	}
	g.imports.add("reflect").markUsed()
	g.imports.add("testing").markUsed()
	g.imports.add(analysisImport).markUsed()
	if declaration != "" {
		g.imports.addNamed(declarationName, declaration).markUsed()
	}
	g.emitTests()
	return g
}

// covered returns true if the type can be referenced from the tests. An
// external test package can only see exported types.
func (g *testGenerator) covered() bool {
	return g.declaration == "" || ast.IsExported(g.a.TypeName())
}

// typeRef returns the type as referenced from the tests.
func (g *testGenerator) typeRef() string {
	if g.declaration == "" {
		return g.a.TypeName()
	}
	return g.declarationName + "." + g.a.TypeName()
}

func (g *testGenerator) emitTests() {
	g.emit("func TestFixedLayout%s(t *testing.T) {\n", g.a.TypeName())
	g.inIndent(func() {
		g.emit("analysis.AssertFixedLayout(t, reflect.TypeFor[%s]())\n", g.typeRef())
	})
	g.emit("}\n\n")
}
