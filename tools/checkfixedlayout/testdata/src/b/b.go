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

// Package b exercises facts imported from package a.
package b

import "a"

// +fixedlayout
// +repr:C
type Wrapper struct { // want Wrapper:"fixedlayout"
	h a.Header
	g a.Granted
	f [2]a.Flags
}

// +fixedlayout
// +repr:C
type WrapsBad struct {
	b a.Bad // want `a.Bad does not have a fixed layout`
}

// +fixedlayout
// +repr:C
type WrapsUnattested struct {
	u a.SomeUnattestedType // want `a.SomeUnattestedType does not have a fixed layout`
}
