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

// Evidence is the stable-representation evidence carried by a declaration.
type Evidence int

// Evidence values.
const (
	// NoEvidence means no recognised annotation was found.
	NoEvidence Evidence = iota

	// CCompatible means "+repr:C" or a structs.HostLayout field.
	CCompatible

	// Transparent means "+repr:transparent".
	Transparent
)

// String implements fmt.Stringer.String.
func (e Evidence) String() string {
	switch e {
	case CCompatible:
		return "C-compatible"
	case Transparent:
		return "transparent"
	default:
		return "none"
	}
}

// FindEvidence scans annotations for a stable-representation marker. The
// repr value must be a single entry: "+repr:C,packed" is not evidence.
// C-compatible evidence wins over transparent when both are present.
func FindEvidence(as []Annotation) Evidence {
	ev := NoEvidence
	for _, a := range as {
		if a.Name != reprAnnotation {
			continue
		}
		switch a.Value {
		case reprC:
			return CCompatible
		case reprTransparent:
			ev = Transparent
		}
	}
	return ev
}

// CheckEligibility decides whether td may be attested.
//
// A declaration without fields is always approved. Otherwise it must carry
// stable-representation evidence, and transparent evidence additionally
// requires exactly one field.
func CheckEligibility(td *TypeDeclaration) *Diagnostic {
	if len(td.Fields) == 0 {
		return nil
	}
	switch FindEvidence(td.Annotations) {
	case CCompatible:
		return nil
	case Transparent:
		if len(td.Fields) != 1 {
			return newDiagnostic(MissingStabilityAnnotation, td.Pos, td.Name,
				"+%s:%s requires exactly one field, but %s has %d", reprAnnotation, reprTransparent, td.Name, len(td.Fields))
		}
		return nil
	default:
		return newDiagnostic(MissingStabilityAnnotation, td.Pos, td.Name,
			"fixed-layout attestation requires a stable-representation annotation (C-compatible or transparent) when the type has fields; "+
				"annotate %s with // +%s:%s, // +%s:%s or add a %s.%s field",
			td.Name, reprAnnotation, reprC, reprAnnotation, reprTransparent, hostLayoutPackage, hostLayoutName)
	}
}
