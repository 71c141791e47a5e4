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

// Package attest implements the fixed layout attestation pipeline.
//
// The pipeline runs once per type declaration carrying the +fixedlayout
// directive:
//
//  1. Intake parses the declaration into a TypeDeclaration.
//  2. CheckEligibility decides whether the declaration may be attested at all.
//  3. Synthesize produces one Obligation per field type.
//  4. The caller emits the obligations and the capability grant together.
//
// Declarations are independent: no state is shared between them, and a
// failure at any stage ends processing of that declaration only.
package attest

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"path"
	"strconv"
	"strings"
)

const (
	// Directive requests attestation for a type declaration.
	Directive = "+fixedlayout"

	reprAnnotation  = "repr"
	reprC           = "C"
	reprTransparent = "transparent"

	hostLayoutPackage = "structs"
	hostLayoutName    = "HostLayout"
)

// Shape is the syntactic shape of a type declaration.
type Shape int

// Shapes.
const (
	// NamedFields is a struct type with at least one field.
	NamedFields Shape = iota + 1

	// PositionalFields is a defined newtype, e.g. "type Flags uint32". Its
	// single field is the underlying type.
	PositionalFields

	// Unit is a struct type with no fields.
	Unit

	// NonRecord is any other type: interfaces, pointers, maps, etc.
	NonRecord
)

// String implements fmt.Stringer.String.
func (s Shape) String() string {
	switch s {
	case NamedFields:
		return "record with named fields"
	case PositionalFields:
		return "record with positional fields"
	case Unit:
		return "unit"
	case NonRecord:
		return "non-record"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// Annotation is a single "// +name" or "// +name:value" line attached to a
// declaration.
type Annotation struct {
	Name  string
	Value string
	Pos   token.Position

	// FromField is set when the annotation was derived from a
	// structs.HostLayout field rather than a comment.
	FromField bool
}

// String implements fmt.Stringer.String.
func (a Annotation) String() string {
	if a.FromField {
		return hostLayoutPackage + "." + hostLayoutName
	}
	if a.Value == "" {
		return "+" + a.Name
	}
	return "+" + a.Name + ":" + a.Value
}

// FieldTypeReference refers to the declared type of one field. The type is
// never inspected beyond its syntax.
type FieldTypeReference struct {
	// Name is the field name. Embedded fields use their type name, and the
	// positional field of a newtype is "0".
	Name string
	Expr ast.Expr
	Pos  token.Position
}

// TypeString returns the field type as Go source.
func (f FieldTypeReference) TypeString() string {
	return types.ExprString(f.Expr)
}

// TypeDeclaration is a declaration requesting attestation, after intake.
type TypeDeclaration struct {
	Name        string
	Pos         token.Position
	Annotations []Annotation
	Shape       Shape
	Fields      []FieldTypeReference
	Spec        *ast.TypeSpec
}

// Request is a type spec marked with the directive, before intake.
type Request struct {
	Decl *ast.GenDecl
	Spec *ast.TypeSpec
}

// hasDirective returns true if the comment group contains the directive on a
// line of its own.
func hasDirective(cg *ast.CommentGroup) bool {
	if cg == nil {
		return false
	}
	for _, c := range cg.List {
		if directiveLine(c.Text) == Directive {
			return true
		}
	}
	return false
}

// directiveLine returns the trimmed "+..." content of a line comment, or ""
// if the comment is not a directive.
func directiveLine(text string) string {
	if !strings.HasPrefix(text, "//") {
		return "" // Block comments never carry directives.
	}
	s := strings.TrimSpace(text[2:])
	if !strings.HasPrefix(s, "+") {
		return ""
	}
	return s
}

// Collect returns all declarations in f that request attestation, in source
// order. The directive on anything other than a type declaration is reported
// as MalformedDeclaration.
func Collect(fset *token.FileSet, f *ast.File) ([]Request, Diagnostics) {
	var (
		reqs  []Request
		diags Diagnostics
	)
	for _, decl := range f.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			if hasDirective(d.Doc) {
				diags = append(diags, newDiagnostic(MalformedDeclaration, fset.Position(d.Pos()), d.Name.Name,
					"the %s directive applies only to type declarations, found on func %s", Directive, d.Name.Name))
			}
		case *ast.GenDecl:
			groupMarked := hasDirective(d.Doc)
			if d.Tok != token.TYPE {
				marked := groupMarked
				for _, spec := range d.Specs {
					if vs, ok := spec.(*ast.ValueSpec); ok && hasDirective(vs.Doc) {
						marked = true
					}
				}
				if marked {
					diags = append(diags, newDiagnostic(MalformedDeclaration, fset.Position(d.Pos()), "",
						"the %s directive applies only to type declarations, found on %s declaration", Directive, d.Tok))
				}
				continue
			}
			for _, spec := range d.Specs {
				ts := spec.(*ast.TypeSpec)
				if groupMarked || hasDirective(ts.Doc) {
					reqs = append(reqs, Request{Decl: d, Spec: ts})
				}
			}
		}
	}
	return reqs, diags
}

// parseAnnotations appends all annotations found in cg to as.
func parseAnnotations(fset *token.FileSet, typeName string, cg *ast.CommentGroup, as []Annotation) ([]Annotation, *Diagnostic) {
	if cg == nil {
		return as, nil
	}
	for _, c := range cg.List {
		s := directiveLine(c.Text)
		if s == "" {
			continue
		}
		name, value, hasValue := strings.Cut(s[1:], ":")
		name = strings.TrimSpace(name)
		value = strings.TrimSpace(value)
		if name == "" || (hasValue && value == "") {
			return nil, newDiagnostic(MalformedDeclaration, fset.Position(c.Pos()), typeName,
				"malformed annotation %q on %s", c.Text, typeName)
		}
		as = append(as, Annotation{
			Name:  name,
			Value: value,
			Pos:   fset.Position(c.Pos()),
		})
	}
	return as, nil
}

// importName returns the local name and path of an import.
func importName(spec *ast.ImportSpec) (string, string) {
	p, err := strconv.Unquote(spec.Path.Value)
	if err != nil {
		p = strings.Trim(spec.Path.Value, "\"`")
	}
	if spec.Name != nil {
		return spec.Name.Name, p
	}
	return path.Base(p), p
}

// isHostLayout returns true if e refers to structs.HostLayout through one of
// the file's imports.
func isHostLayout(f *ast.File, e ast.Expr) bool {
	sel, ok := e.(*ast.SelectorExpr)
	if !ok || sel.Sel.Name != hostLayoutName {
		return false
	}
	x, ok := sel.X.(*ast.Ident)
	if !ok {
		return false
	}
	for _, spec := range f.Imports {
		if name, p := importName(spec); name == x.Name && p == hostLayoutPackage {
			return true
		}
	}
	return false
}

// embeddedName returns the implicit field name of an embedded field.
func embeddedName(e ast.Expr) string {
	switch v := e.(type) {
	case *ast.Ident:
		return v.Name
	case *ast.SelectorExpr:
		return v.Sel.Name
	case *ast.StarExpr:
		return embeddedName(v.X)
	case *ast.IndexExpr:
		return embeddedName(v.X)
	case *ast.IndexListExpr:
		return embeddedName(v.X)
	case *ast.ParenExpr:
		return embeddedName(v.X)
	default:
		return types.ExprString(e)
	}
}

// kindString returns a user-friendly representation of a type expression.
func kindString(e ast.Expr) string {
	switch v := e.(type) {
	case *ast.Ident, *ast.SelectorExpr:
		return "named"
	case *ast.ArrayType:
		if v.Len == nil {
			return "slice"
		}
		return "array"
	case *ast.StructType:
		return "struct"
	case *ast.StarExpr:
		return "pointer"
	case *ast.FuncType:
		return "function"
	case *ast.InterfaceType:
		return "interface"
	case *ast.MapType:
		return "map"
	case *ast.ChanType:
		return "channel"
	case *ast.IndexExpr, *ast.IndexListExpr:
		return "instantiated generic"
	default:
		return fmt.Sprintf("%T", e)
	}
}

func unparen(e ast.Expr) ast.Expr {
	for {
		p, ok := e.(*ast.ParenExpr)
		if !ok {
			return e
		}
		e = p.X
	}
}

// Intake parses a request into a TypeDeclaration.
//
// Only record shapes are accepted. Aliases, generic declarations and
// non-record types fail with UnsupportedShape.
func Intake(fset *token.FileSet, f *ast.File, req Request) (*TypeDeclaration, *Diagnostic) {
	ts := req.Spec
	if ts == nil || ts.Name == nil || ts.Type == nil {
		var pos token.Pos
		if req.Decl != nil {
			pos = req.Decl.Pos()
		}
		return nil, newDiagnostic(MalformedDeclaration, fset.Position(pos), "", "%s requested on an incomplete type declaration", Directive)
	}
	name := ts.Name.Name
	pos := fset.Position(ts.Pos())

	// Group annotations come first, followed by the spec's own. An ungrouped
	// declaration only has the former.
	var (
		as   []Annotation
		diag *Diagnostic
	)
	if req.Decl != nil {
		if as, diag = parseAnnotations(fset, name, req.Decl.Doc, as); diag != nil {
			return nil, diag
		}
	}
	if as, diag = parseAnnotations(fset, name, ts.Doc, as); diag != nil {
		return nil, diag
	}

	if ts.Assign.IsValid() {
		return nil, newDiagnostic(UnsupportedShape, pos, name,
			"%s is a type alias; attest the aliased type instead", name)
	}
	if ts.TypeParams != nil && len(ts.TypeParams.List) > 0 {
		return nil, newDiagnostic(UnsupportedShape, pos, name,
			"%s is a generic type; fixed layout can only be attested for concrete types", name)
	}

	td := &TypeDeclaration{
		Name: name,
		Pos:  pos,
		Spec: ts,
	}
	switch t := unparen(ts.Type).(type) {
	case *ast.StructType:
		for _, field := range t.Fields.List {
			if isHostLayout(f, field.Type) {
				as = append(as, Annotation{
					Name:      reprAnnotation,
					Value:     reprC,
					Pos:       fset.Position(field.Pos()),
					FromField: true,
				})
				continue
			}
			if len(field.Names) == 0 {
				td.Fields = append(td.Fields, FieldTypeReference{
					Name: embeddedName(field.Type),
					Expr: field.Type,
					Pos:  fset.Position(field.Pos()),
				})
				continue
			}
			// "x, y int64" declares two fields.
			for _, n := range field.Names {
				td.Fields = append(td.Fields, FieldTypeReference{
					Name: n.Name,
					Expr: field.Type,
					Pos:  fset.Position(n.Pos()),
				})
			}
		}
		td.Shape = NamedFields
		if len(td.Fields) == 0 {
			td.Shape = Unit
		}
	case *ast.Ident, *ast.SelectorExpr, *ast.IndexExpr, *ast.IndexListExpr:
		td.Shape = PositionalFields
	case *ast.ArrayType:
		if t.Len == nil {
			return nil, unsupported(pos, name, t)
		}
		td.Shape = PositionalFields
	case *ast.InterfaceType, *ast.StarExpr, *ast.MapType, *ast.ChanType, *ast.FuncType:
		return nil, unsupported(pos, name, t)
	default:
		return nil, newDiagnostic(MalformedDeclaration, pos, name,
			"unable to interpret the declaration of %s (%s)", name, kindString(t))
	}
	if td.Shape == PositionalFields {
		td.Fields = []FieldTypeReference{{
			Name: "0",
			Expr: ts.Type,
			Pos:  fset.Position(ts.Type.Pos()),
		}}
	}
	td.Annotations = as
	return td, nil
}

func unsupported(pos token.Position, name string, t ast.Expr) *Diagnostic {
	return newDiagnostic(UnsupportedShape, pos, name,
		"%s: %s types cannot be attested; only struct types and newtypes of named, scalar or array types can", name, kindString(t))
}
