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

// This file contains the bits of the code generator that emit the obligations
// and the capability grant for a single type.

package gofixedlayout

import (
	"path"

	"gvisor.dev/fixedlayout/tools/go_fixedlayout/attest"
)

// attestationGenerator emits the code for one attested type.
type attestationGenerator struct {
	sourceBuffer

	a *attest.Attestation

	// is is the set of local package names referenced by the generated code,
	// apart from the fixedlayout package.
	is map[string]struct{}
}

func newAttestationGenerator(a *attest.Attestation) *attestationGenerator {
	return &attestationGenerator{
		a:  a,
		is: make(map[string]struct{}),
	}
}

func (g *attestationGenerator) recordUsedImport(name string) {
	g.is[name] = struct{}{}
}

// emitAttestation emits the obligations followed by the grant. The two always land in
// the same file, so a failing obligation fails the compilation unit holding
// the grant.
func (g *attestationGenerator) emitAttestation() {
	pkg := path.Base(fixedlayoutImport)
	name := g.a.TypeName()

	if g.a.NeedsObligationFunc() {
		fn := g.a.ObligationFunc()
		g.emit("// %s is type-checked but never called. Each statement compiles\n", fn)
		g.emit("// only if the corresponding field type of %s has a fixed layout.\n", name)
		g.emit("func %s() {\n", fn)
		g.inIndent(func() {
			for _, o := range g.a.Obligations {
				for _, ref := range packageRefs(o.Expr) {
					g.recordUsedImport(ref)
				}
				if g.a.Decl.Shape == attest.PositionalFields {
					g.emit("%s\n", o.Call(pkg))
					continue
				}
				g.emit("%s // %s\n", o.Call(pkg), o.Field)
			}
		})
		g.emit("}\n\n")
	}

	g.emit("// UnsafeFixedLayout implements %s.FixedLayout.UnsafeFixedLayout.\n", pkg)
	g.emit("func (%s) UnsafeFixedLayout(%s) {}\n\n", name, name)
}
