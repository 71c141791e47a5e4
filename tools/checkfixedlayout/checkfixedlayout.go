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

// Package checkfixedlayout verifies fixed layout attestations.
//
// It runs the same pipeline as go_fixedlayout over type-checked packages,
// discharging each field obligation with go/types instead of leaving it to
// the compiler. Attested types are exported as facts, so importing packages
// can rely on them.
package checkfixedlayout

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"gvisor.dev/fixedlayout/tools/go_fixedlayout/attest"
)

// Analyzer defines the entrypoint.
var Analyzer = &analysis.Analyzer{
	Name:      "checkfixedlayout",
	Doc:       "verifies that types marked +fixedlayout have a fixed memory layout",
	Run:       run,
	FactTypes: []analysis.Fact{(*fixedLayout)(nil)},
}

// grantMethod is the method carrying the capability tag.
const grantMethod = "UnsafeFixedLayout"

// state is the state of an attestation within a single pass.
type state int

const (
	pending state = iota
	inProgress
	granted
	rejected
)

// passContext is the state of a single analysis pass.
type passContext struct {
	pass *analysis.Pass

	// requests are the declarations in this package requesting attestation.
	requests map[*types.TypeName]*request

	// states tracks evaluation of requests.
	states map[*types.TypeName]state
}

// request is a single attestation request, with its file.
type request struct {
	file *ast.File
	req  attest.Request
}

func run(pass *analysis.Pass) (any, error) {
	pc := &passContext{
		pass:     pass,
		requests: make(map[*types.TypeName]*request),
		states:   make(map[*types.TypeName]state),
	}

	// Gather all requests first: a field may refer to a type declared later
	// in the package, or in another file.
	var order []*types.TypeName
	for _, f := range pass.Files {
		reqs, diags := attest.Collect(pass.Fset, f)
		for _, d := range diags {
			pc.report(f.Pos(), d)
		}
		for _, req := range reqs {
			obj, ok := pass.TypesInfo.Defs[req.Spec.Name].(*types.TypeName)
			if !ok {
				continue
			}
			if _, dup := pc.requests[obj]; dup {
				continue
			}
			pc.requests[obj] = &request{file: f, req: req}
			order = append(order, obj)
		}
	}

	for _, obj := range order {
		pc.evaluate(obj)
	}
	return nil, nil
}

// report reports a diagnostic. The diagnostic position is preferred; pos is
// used if the diagnostic has none that maps back into the file set.
func (pc *passContext) report(pos token.Pos, d *attest.Diagnostic) {
	if p := pc.findPos(d.Position); p.IsValid() {
		pos = p
	}
	pc.pass.Report(analysis.Diagnostic{
		Pos:      pos,
		Category: d.Kind.String(),
		Message:  d.Message,
	})
}

// findPos maps a token.Position back to a token.Pos in the pass.
func (pc *passContext) findPos(p token.Position) token.Pos {
	var pos token.Pos
	pc.pass.Fset.Iterate(func(f *token.File) bool {
		if f.Name() != p.Filename || p.Line < 1 || p.Line > f.LineCount() {
			return true
		}
		pos = f.LineStart(p.Line)
		if p.Column > 1 {
			pos += token.Pos(p.Column - 1)
		}
		return false
	})
	return pos
}

// evaluate runs the pipeline for a requested type, at most once, and returns
// true if the type was granted the capability.
func (pc *passContext) evaluate(obj *types.TypeName) bool {
	switch pc.states[obj] {
	case granted:
		return true
	case rejected:
		return false
	case inProgress:
		// Only a type containing itself can get here, which the type
		// checker already rejects.
		return false
	}
	pc.states[obj] = inProgress

	r := pc.requests[obj]
	a, diag := attest.Process(pc.pass.Fset, r.file, r.req)
	if diag != nil {
		pc.states[obj] = rejected
		pc.report(r.req.Spec.Pos(), diag)
		return false
	}

	ok := true
	for _, o := range a.Obligations {
		typ := pc.pass.TypesInfo.TypeOf(o.Expr)
		if typ == nil {
			continue // Type errors are reported by the type checker.
		}
		if !pc.hasCapability(typ) {
			ok = false
			pc.pass.Report(analysis.Diagnostic{
				Pos:      o.Expr.Pos(),
				Category: attest.UnsatisfiedFieldObligation.String(),
				Message:  fmt.Sprintf("field %s of %s: %s does not have a fixed layout", o.Field, a.TypeName(), types.TypeString(typ, types.RelativeTo(pc.pass.Pkg))),
			})
		}
	}
	if !ok {
		pc.states[obj] = rejected
		return false
	}
	pc.states[obj] = granted
	pc.pass.ExportObjectFact(obj, &fixedLayout{
		Evidence: attest.FindEvidence(a.Decl.Annotations).String(),
	})
	return true
}

// hasCapability discharges a single obligation.
func (pc *passContext) hasCapability(typ types.Type) bool {
	switch t := types.Unalias(typ).(type) {
	case *types.Basic:
		return fixedBasic(t)
	case *types.Array:
		return pc.hasCapability(t.Elem())
	case *types.Named:
		obj := t.Obj()
		if t.TypeArgs().Len() == 0 {
			if _, ok := pc.requests[obj]; ok {
				return pc.evaluate(obj)
			}
			var fact fixedLayout
			if obj.Pkg() != nil && pc.pass.ImportObjectFact(obj, &fact) {
				return true
			}
		}
		return hasGrant(t)
	default:
		return false
	}
}

// fixedBasic returns true for basic types of the same size everywhere.
func fixedBasic(t *types.Basic) bool {
	switch t.Kind() {
	case types.Bool,
		types.Int8, types.Int16, types.Int32, types.Int64,
		types.Uint8, types.Uint16, types.Uint32, types.Uint64,
		types.Float32, types.Float64,
		types.Complex64, types.Complex128:
		return true
	default:
		return false
	}
}

// hasGrant returns true if the type implements fixedlayout.FixedLayout of
// itself: it declares UnsafeFixedLayout with a value receiver and a single
// parameter of the type, e.g. in generated code or a hand-written grant.
//
// A method promoted from an embedded field takes the embedded type, and an
// interface type is never granted, even if its method set has the tag.
func hasGrant(t *types.Named) bool {
	if types.IsInterface(t) {
		return false
	}
	obj, index, _ := types.LookupFieldOrMethod(t, false, nil, grantMethod)
	fn, ok := obj.(*types.Func)
	if !ok || len(index) != 1 {
		return false
	}
	sig := fn.Type().(*types.Signature)
	return sig.Params().Len() == 1 &&
		types.Identical(sig.Params().At(0).Type(), t) &&
		sig.Results().Len() == 0
}
