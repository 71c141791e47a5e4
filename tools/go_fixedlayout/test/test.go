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

// Package test contains data structures for testing the go_fixedlayout tool.
package test

import (
	"structs"

	"gvisor.dev/fixedlayout/pkg/fixedlayout/primitive"
	// We're intentionally using a package name alias here even though it's not
	// necessary to test the code generator's ability to handle package aliases.
	ex "gvisor.dev/fixedlayout/tools/go_fixedlayout/test/external"
)

//go:generate go run gvisor.dev/fixedlayout/tools/go_fixedlayout generate -output=test_fixedlayout_autogen.go -output_test=test_fixedlayout_autogen_test.go test.go

// Type1 is a test data type.
//
// +fixedlayout
// +repr:C
type Type1 struct {
	a    Type2
	x, y int64 // Multiple field names.
	b    byte
	_    uint32  // Unnamed scalar field.
	_    [6]byte // Unnamed vector field, typical padding.
	xs   [8]int32
	as   [10]Type2 // Array of attested types.
	ss   Type3
}

// Type2 is a test data type.
//
// +fixedlayout
// +repr:C
type Type2 struct {
	n int64
	c byte
	_ [7]byte
	m primitive.Int64
}

// Type3 is a test data type.
//
// +fixedlayout
// +repr:C
type Type3 struct {
	s int64
	x ex.External // Type defined in another package.
	f ex.Flags
}

// Marker has no fields and needs no annotation.
//
// +fixedlayout
type Marker struct{}

// Host uses the host layout directive instead of an annotation.
//
// +fixedlayout
type Host struct {
	_   structs.HostLayout
	len uint64
	ok  primitive.Bool
}

// Handles are test data types wrapping a single value.
//
// +fixedlayout
// +repr:transparent
type (
	// Handle wraps a type from another package.
	Handle ex.Flags

	// Buffer wraps an array.
	Buffer [16]uint8

	// Embedded has a single embedded field.
	Embedded struct {
		Type2
	}
)
