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

import (
	"encoding/json"
	"fmt"
	"go/token"
	"strings"
)

// Kind classifies a diagnostic.
type Kind int

// Diagnostic kinds. Every kind is fatal to the build.
const (
	// MalformedDeclaration indicates the input is not a usable type
	// declaration.
	MalformedDeclaration Kind = iota + 1

	// UnsupportedShape indicates a type declaration that is not a record.
	UnsupportedShape

	// MissingStabilityAnnotation indicates a type with fields but no
	// stable-representation annotation.
	MissingStabilityAnnotation

	// UnsatisfiedFieldObligation indicates a field type lacking the fixed
	// layout capability.
	UnsatisfiedFieldObligation
)

var kindNames = map[Kind]string{
	MalformedDeclaration:       "MalformedDeclaration",
	UnsupportedShape:           "UnsupportedShape",
	MissingStabilityAnnotation: "MissingStabilityAnnotation",
	UnsatisfiedFieldObligation: "UnsatisfiedFieldObligation",
}

// String implements fmt.Stringer.String.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// MarshalJSON implements json.Marshaler.MarshalJSON.
func (k Kind) MarshalJSON() ([]byte, error) {
	if _, ok := kindNames[k]; !ok {
		return nil, fmt.Errorf("unknown kind %d", int(k))
	}
	return json.Marshal(k.String())
}

// UnmarshalJSON implements json.Unmarshaler.UnmarshalJSON.
func (k *Kind) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	for kind, name := range kindNames {
		if name == s {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown kind %q", s)
}

// Diagnostic is a single compile-time failure, attributed to a source
// position.
type Diagnostic struct {
	Kind     Kind
	Position token.Position
	// Type is the name of the declaration being processed, if known.
	Type    string `json:",omitempty"`
	Message string
}

// Error implements error.Error.
func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s: %s: %s", d.Kind, d.Position, d.Message)
}

func newDiagnostic(k Kind, pos token.Position, typeName string, format string, v ...any) *Diagnostic {
	return &Diagnostic{
		Kind:     k,
		Position: pos,
		Type:     typeName,
		Message:  fmt.Sprintf(format, v...),
	}
}

// Diagnostics is a list of diagnostics, in the order they were found.
type Diagnostics []*Diagnostic

// Error implements error.Error.
func (ds Diagnostics) Error() string {
	var b strings.Builder
	for i, d := range ds {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(d.Error())
	}
	return b.String()
}

// Err returns ds as an error, or nil if ds is empty.
func (ds Diagnostics) Err() error {
	if len(ds) == 0 {
		return nil
	}
	return ds
}

// Has returns true if any diagnostic is of kind k.
func (ds Diagnostics) Has(k Kind) bool {
	for _, d := range ds {
		if d.Kind == k {
			return true
		}
	}
	return false
}
