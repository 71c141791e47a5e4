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

// Package fixedlayout defines the fixed layout capability.
//
// A type carries the capability when its memory representation is stable
// across compilations and toolchains: field order is fixed and every
// constituent is itself of fixed layout. Such types may safely cross FFI
// boundaries, be reinterpreted from raw bytes, or be copied directly to disk
// or the network.
//
// The capability is normally granted by go_fixedlayout, which refuses to emit
// a grant unless the compiler can prove every field carries the capability.
// See tools/go_fixedlayout.
package fixedlayout

// FixedLayout is the capability tag. A type T carries the capability when it
// implements FixedLayout[T], i.e. declares
//
//	func (T) UnsafeFixedLayout(T) {}
//
// The parameter ties the tag to the declaring type. A method promoted from an
// embedded field takes the embedded type, and a pointer *T only has the
// method for T, so neither satisfies FixedLayout of the outer type.
//
// Implementing this interface by hand is an unchecked claim: nothing verifies
// the layout of the implementing type. Prefer the +fixedlayout directive.
type FixedLayout[T any] interface {
	// UnsafeFixedLayout is a marker. It is never called.
	UnsafeFixedLayout(T)
}

// Scalar is the set of predeclared types with a fixed size on every platform.
//
// int, uint and uintptr are absent: their size depends on the
// target architecture.
type Scalar interface {
	int8 | int16 | int32 | int64 |
		uint8 | uint16 | uint32 | uint64 |
		float32 | float64 |
		complex64 | complex128 |
		bool
}

// EnsureFixedLayout compiles only if T carries the FixedLayout capability.
//
// It does nothing when called; generated code calls it purely so that the
// compiler type-checks the instantiation.
//
//go:nosplit
func EnsureFixedLayout[T FixedLayout[T]]() {}

// EnsureScalar compiles only if T is a fixed-size predeclared scalar.
//
//go:nosplit
func EnsureScalar[T Scalar]() {}
