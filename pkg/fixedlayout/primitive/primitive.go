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

// Package primitive defines named scalar types that carry the fixed layout
// capability.
//
// Predeclared types cannot have methods, so int32 itself never satisfies
// fixedlayout.FixedLayout[int32]. These newtypes can be used wherever a type
// argument must carry the capability.
package primitive

//go:generate go run gvisor.dev/fixedlayout/tools/go_fixedlayout generate -output=primitive_fixedlayout_autogen.go -output_test=primitive_fixedlayout_autogen_test.go primitive.go

// +fixedlayout
// +repr:transparent
type (
	// Int8 is a fixed layout int8.
	Int8 int8

	// Int16 is a fixed layout int16.
	Int16 int16

	// Int32 is a fixed layout int32.
	Int32 int32

	// Int64 is a fixed layout int64.
	Int64 int64

	// Uint8 is a fixed layout uint8.
	Uint8 uint8

	// Uint16 is a fixed layout uint16.
	Uint16 uint16

	// Uint32 is a fixed layout uint32.
	Uint32 uint32

	// Uint64 is a fixed layout uint64.
	Uint64 uint64

	// Float32 is a fixed layout float32.
	Float32 float32

	// Float64 is a fixed layout float64.
	Float64 float64

	// Bool is a fixed layout bool.
	Bool bool
)
