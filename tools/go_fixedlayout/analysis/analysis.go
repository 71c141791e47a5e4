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

// Package analysis implements common functionality used by generated
// go_fixedlayout tests.
//
// Never use outside of tests.
package analysis

import (
	"fmt"
	"reflect"
	"testing"
)

// grantMethod is the method of fixedlayout.FixedLayout.
const grantMethod = "UnsafeFixedLayout"

// HasGrant returns true if typ implements fixedlayout.FixedLayout[typ]: it
// has a method UnsafeFixedLayout taking typ itself. A method promoted from an
// embedded field takes the embedded type, so it does not count. Neither do
// interface types.
func HasGrant(typ reflect.Type) bool {
	if typ.Kind() == reflect.Interface {
		return false
	}
	m, ok := typ.MethodByName(grantMethod)
	if !ok {
		return false
	}
	// Method types of non-interface types include the receiver.
	mt := m.Type
	return mt.NumIn() == 2 && mt.In(1) == typ && mt.NumOut() == 0
}

// Violations walks typ and returns a description of every part of it that
// does not have a fixed layout. The walk follows struct fields and array
// elements; it never follows pointers, since any pointer is a violation.
//
// This duplicates, at test time, what the compiler already checks through the
// generated obligations. It also catches grants written by hand.
func Violations(typ reflect.Type) []string {
	var vs []string
	walk(typ, typ.String(), &vs)
	return vs
}

func walk(typ reflect.Type, where string, vs *[]string) {
	switch typ.Kind() {
	case reflect.Bool,
		reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return
	case reflect.Int, reflect.Uint, reflect.Uintptr:
		*vs = append(*vs, fmt.Sprintf("%s: %v is platform-sized", where, typ))
	case reflect.Array:
		walk(typ.Elem(), fmt.Sprintf("%s[]", where), vs)
	case reflect.Struct:
		for i := 0; i < typ.NumField(); i++ {
			f := typ.Field(i)
			walk(f.Type, fmt.Sprintf("%s.%s", where, f.Name), vs)
		}
	default:
		*vs = append(*vs, fmt.Sprintf("%s: %v fields never have a fixed layout", where, typ.Kind()))
	}
}

// AssertFixedLayout fails the test unless typ carries the FixedLayout
// capability and every part of it has a fixed layout.
func AssertFixedLayout(t testing.TB, typ reflect.Type) {
	t.Helper()
	if !HasGrant(typ) {
		t.Errorf("%v does not implement fixedlayout.FixedLayout[%v]", typ, typ)
	}
	for _, v := range Violations(typ) {
		t.Errorf("%v is attested as fixed layout, but %s", typ, v)
	}
}
