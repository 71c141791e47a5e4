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

// Package external defines types used from another package by the
// go_fixedlayout tests.
package external

//go:generate go run gvisor.dev/fixedlayout/tools/go_fixedlayout generate -output=external_fixedlayout_autogen.go -output_test=external_fixedlayout_autogen_test.go -declarationPkg=gvisor.dev/fixedlayout/tools/go_fixedlayout/test/external external.go

// External is a test data type.
//
// +fixedlayout
// +repr:C
type External struct {
	A int64
	B [4]byte
}

// Flags is a test data type, a newtype over a scalar.
//
// +fixedlayout
// +repr:transparent
type Flags uint32
