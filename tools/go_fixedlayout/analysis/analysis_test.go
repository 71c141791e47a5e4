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

package analysis

import (
	"reflect"
	"structs"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type inner struct {
	a uint16
	b [3]int8
}

type withHostLayout struct {
	_ structs.HostLayout
	x float64
}

type withPointer struct {
	a uint32
	p *uint32
}

type nested struct {
	in  inner
	arr [2]struct {
		n int
		s string
	}
}

func TestViolations(t *testing.T) {
	for _, test := range []struct {
		typ  reflect.Type
		want []string
	}{
		{typ: reflect.TypeFor[uint64]()},
		{typ: reflect.TypeFor[inner]()},
		{typ: reflect.TypeFor[withHostLayout]()},
		{typ: reflect.TypeFor[[4]complex64]()},
		{typ: reflect.TypeFor[struct{}]()},
		{
			typ:  reflect.TypeFor[withPointer](),
			want: []string{"analysis.withPointer.p: ptr fields never have a fixed layout"},
		},
		{
			typ: reflect.TypeFor[nested](),
			want: []string{
				"analysis.nested.arr[].n: int is platform-sized",
				"analysis.nested.arr[].s: string fields never have a fixed layout",
			},
		},
		{
			typ:  reflect.TypeFor[[]byte](),
			want: []string{"[]uint8: slice fields never have a fixed layout"},
		},
	} {
		t.Run(test.typ.String(), func(t *testing.T) {
			if diff := cmp.Diff(test.want, Violations(test.typ)); diff != "" {
				t.Errorf("Violations(%v) mismatch (-want +got):\n%s", test.typ, diff)
			}
		})
	}
}

// granted carries the capability.
type granted struct {
	a uint32
}

func (granted) UnsafeFixedLayout(granted) {}

// promoted only has the grant of its embedded field.
type promoted struct {
	granted
	p *int32
}

// noParameter has a grant of the wrong shape.
type noParameter struct {
	a uint32
}

func (noParameter) UnsafeFixedLayout() {}

func TestHasGrant(t *testing.T) {
	for _, test := range []struct {
		typ  reflect.Type
		want bool
	}{
		{typ: reflect.TypeFor[granted](), want: true},
		{typ: reflect.TypeFor[*granted]()},
		{typ: reflect.TypeFor[promoted]()},
		{typ: reflect.TypeFor[noParameter]()},
		{typ: reflect.TypeFor[inner]()},
		{typ: reflect.TypeFor[interface{ UnsafeFixedLayout(granted) }]()},
	} {
		t.Run(test.typ.String(), func(t *testing.T) {
			if got := HasGrant(test.typ); got != test.want {
				t.Errorf("HasGrant(%v) = %v, want %v", test.typ, got, test.want)
			}
		})
	}
}

// recorder records failures instead of failing the test.
type recorder struct {
	testing.TB
	errors int
}

func (r *recorder) Helper() {}

func (r *recorder) Errorf(string, ...any) {
	r.errors++
}

func TestAssertFixedLayout(t *testing.T) {
	for _, test := range []struct {
		name string
		typ  reflect.Type
		want int
	}{
		{name: "granted", typ: reflect.TypeFor[granted]()},
		{name: "ungranted", typ: reflect.TypeFor[inner](), want: 1},
		{name: "pointer", typ: reflect.TypeFor[withPointer](), want: 2},
		{name: "pointer to granted", typ: reflect.TypeFor[*granted](), want: 2},
		{name: "promoted", typ: reflect.TypeFor[promoted](), want: 2},
	} {
		t.Run(test.name, func(t *testing.T) {
			r := &recorder{TB: t}
			AssertFixedLayout(r, test.typ)
			if r.errors != test.want {
				t.Errorf("AssertFixedLayout(%v) reported %d errors, want %d", test.typ, r.errors, test.want)
			}
		})
	}
}
