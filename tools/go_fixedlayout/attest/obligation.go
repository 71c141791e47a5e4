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
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
)

// Check names the compile-time check an obligation calls.
type Check int

// Checks.
const (
	// CheckCapability requires the type to carry the FixedLayout capability.
	CheckCapability Check = iota + 1

	// CheckScalar requires the type to be a fixed-size predeclared scalar.
	CheckScalar
)

// Func returns the name of the check function in package fixedlayout.
func (c Check) Func() string {
	switch c {
	case CheckCapability:
		return "EnsureFixedLayout"
	case CheckScalar:
		return "EnsureScalar"
	default:
		panic(fmt.Sprintf("unknown check %d", int(c)))
	}
}

// Obligation is a compile-time requirement that one field type carries the
// fixed layout capability. Obligations never refer to one another.
type Obligation struct {
	Check Check

	// Expr is the type being checked. For arrays, this is the element type.
	Expr ast.Expr

	// Field is the name of the field this obligation came from.
	Field string
	Pos   token.Position
}

// Type returns the checked type as Go source.
func (o Obligation) Type() string {
	return types.ExprString(o.Expr)
}

// Call returns the obligation as a Go call expression, where pkg is the local
// name of the fixedlayout package.
func (o Obligation) Call(pkg string) string {
	return fmt.Sprintf("%s.%s[%s]()", pkg, o.Check.Func(), o.Type())
}

// scalars are the predeclared types with a fixed size on every platform.
var scalars = map[string]struct{}{
	"bool":       {},
	"byte":       {},
	"rune":       {},
	"int8":       {},
	"int16":      {},
	"int32":      {},
	"int64":      {},
	"uint8":      {},
	"uint16":     {},
	"uint32":     {},
	"uint64":     {},
	"float32":    {},
	"float64":    {},
	"complex64":  {},
	"complex128": {},
}

// unfixed are predeclared types that can never carry the capability, with
// the reason.
var unfixed = map[string]string{
	"int":     "its size depends on the target architecture",
	"uint":    "its size depends on the target architecture",
	"uintptr": "its size depends on the target architecture",
	"string":  "it contains a pointer",
	"error":   "it is an interface",
	"any":     "it is an interface",
}

// Synthesize produces the obligations for an approved declaration, one per
// field and in field order. A field whose type can never carry the capability
// (pointers, slices, maps, platform-sized integers, ...) ends synthesis with
// UnsatisfiedFieldObligation.
func Synthesize(td *TypeDeclaration) ([]Obligation, *Diagnostic) {
	obs := make([]Obligation, 0, len(td.Fields))
	for _, f := range td.Fields {
		o, diag := obligationFor(td, f, f.Expr)
		if diag != nil {
			return nil, diag
		}
		obs = append(obs, o)
	}
	return obs, nil
}

func obligationFor(td *TypeDeclaration, f FieldTypeReference, e ast.Expr) (Obligation, *Diagnostic) {
	e = unparen(e)
	switch v := e.(type) {
	case *ast.Ident:
		if _, ok := scalars[v.Name]; ok {
			return Obligation{Check: CheckScalar, Expr: v, Field: f.Name, Pos: f.Pos}, nil
		}
		if why, ok := unfixed[v.Name]; ok {
			return Obligation{}, unsatisfied(td, f, "%s does not have a fixed layout: %s", v.Name, why)
		}
		return Obligation{Check: CheckCapability, Expr: v, Field: f.Name, Pos: f.Pos}, nil
	case *ast.SelectorExpr, *ast.IndexExpr, *ast.IndexListExpr:
		return Obligation{Check: CheckCapability, Expr: v, Field: f.Name, Pos: f.Pos}, nil
	case *ast.ArrayType:
		if v.Len == nil {
			return Obligation{}, unsatisfied(td, f, "slice %s does not have a fixed layout", types.ExprString(v))
		}
		if _, ok := v.Len.(*ast.Ellipsis); ok {
			return Obligation{}, unsatisfied(td, f, "array %s has no declared length", types.ExprString(v))
		}
		// An array has a fixed layout exactly when its elements do.
		return obligationFor(td, f, v.Elt)
	default:
		return Obligation{}, unsatisfied(td, f, "%s fields never have a fixed layout", kindString(e))
	}
}

func unsatisfied(td *TypeDeclaration, f FieldTypeReference, format string, v ...any) *Diagnostic {
	return newDiagnostic(UnsatisfiedFieldObligation, f.Pos, td.Name,
		"field %s of %s: %s", f.Name, td.Name, fmt.Sprintf(format, v...))
}
