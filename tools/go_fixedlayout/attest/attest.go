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

package attest

import (
	"go/ast"
	"go/token"
)

// obligationFuncPrefix prefixes the name of the hidden function holding a
// type's obligations. The leading underscores keep it out of the way of
// user-declared identifiers.
const obligationFuncPrefix = "__fixedLayoutObligationsFor"

// Attestation is an approved declaration together with its obligations. It is
// emitted as one unit: the obligations, then the capability grant.
type Attestation struct {
	Decl        *TypeDeclaration
	Obligations []Obligation
}

// TypeName returns the name of the attested type.
func (a *Attestation) TypeName() string {
	return a.Decl.Name
}

// ObligationFunc returns the name of the function holding the obligations.
// It is derived from the type name only, so diagnostics from the compiler
// can be traced back to the attested type.
func (a *Attestation) ObligationFunc() string {
	return obligationFuncPrefix + a.Decl.Name
}

// NeedsObligationFunc returns true if there is anything to check. Types
// without fields get only the grant.
func (a *Attestation) NeedsObligationFunc() bool {
	return len(a.Obligations) > 0
}

// Attest runs eligibility and obligation synthesis for td.
func Attest(td *TypeDeclaration) (*Attestation, *Diagnostic) {
	if diag := CheckEligibility(td); diag != nil {
		return nil, diag
	}
	obs, diag := Synthesize(td)
	if diag != nil {
		return nil, diag
	}
	return &Attestation{
		Decl:        td,
		Obligations: obs,
	}, nil
}

// Process runs the full pipeline for a single request.
func Process(fset *token.FileSet, f *ast.File, req Request) (*Attestation, *Diagnostic) {
	td, diag := Intake(fset, f, req)
	if diag != nil {
		return nil, diag
	}
	return Attest(td)
}

// File runs the pipeline for every request in f. Each declaration is
// processed independently; a failure in one does not affect the others.
func File(fset *token.FileSet, f *ast.File) ([]*Attestation, Diagnostics) {
	reqs, diags := Collect(fset, f)
	var as []*Attestation
	for _, req := range reqs {
		a, diag := Process(fset, f, req)
		if diag != nil {
			diags = append(diags, diag)
			continue
		}
		as = append(as, a)
	}
	return as, diags
}
