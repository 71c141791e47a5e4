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

package checkfixedlayout

// fixedLayout is exported for every type granted the capability.
type fixedLayout struct {
	// Evidence is the stable-representation evidence the type was attested
	// with. Types without fields need none.
	Evidence string
}

// AFact implements analysis.Fact.AFact.
func (*fixedLayout) AFact() {}

// String implements fmt.Stringer.String.
func (*fixedLayout) String() string {
	return "fixedlayout"
}
