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

// Package a exercises attestation within a single package.
package a

import "structs"

// +fixedlayout
// +repr:C
type Header struct { // want Header:"fixedlayout"
	a uint32
	b uint32
}

// +fixedlayout
type NoRepr struct { // want `requires a stable-representation annotation`
	a uint32
}

// Outer refers to a type declared after it.
//
// +fixedlayout
// +repr:C
type Outer struct { // want Outer:"fixedlayout"
	h     Header
	later Later
	arr   [4]Header
	raw   [8]byte
}

// +fixedlayout
// +repr:C
type Later struct { // want Later:"fixedlayout"
	x int64
}

type SomeUnattestedType struct {
	x uint32
}

// +fixedlayout
// +repr:C
type Bad struct {
	a uint32
	b SomeUnattestedType // want `field b of Bad: SomeUnattestedType does not have a fixed layout`
}

// +fixedlayout
// +repr:C
type UsesBad struct {
	b Bad // want `field b of UsesBad: Bad does not have a fixed layout`
}

// +fixedlayout
type Marker struct{} // want Marker:"fixedlayout"

// +fixedlayout
type Host struct { // want Host:"fixedlayout"
	_ structs.HostLayout
	v float32
}

// +fixedlayout
// +repr:transparent
type Flags uint16 // want Flags:"fixedlayout"

// Granted is granted by hand.
type Granted struct {
	v uint8
}

func (Granted) UnsafeFixedLayout(Granted) {}

// +fixedlayout
// +repr:C
type UsesGranted struct { // want UsesGranted:"fixedlayout"
	g Granted
}

// Promoted is not attested, but embeds a type that is.
type Promoted struct {
	Granted
	p *int
}

// +fixedlayout
// +repr:C
type UsesPromoted struct {
	p Promoted // want `field p of UsesPromoted: Promoted does not have a fixed layout`
}

// GrantedPtr refers to a granted type through a pointer.
type GrantedPtr = *Granted

// +fixedlayout
// +repr:C
type UsesPointerAlias struct {
	p GrantedPtr // want `field p of UsesPointerAlias: .* does not have a fixed layout`
}

// SelfTagged is an interface whose method set has the tag of itself.
type SelfTagged interface {
	UnsafeFixedLayout(SelfTagged)
}

// +fixedlayout
// +repr:C
type UsesSelfTagged struct {
	s SelfTagged // want `field s of UsesSelfTagged: SelfTagged does not have a fixed layout`
}

// OldGrant has a tag method without the type parameter.
type OldGrant struct {
	v uint8
}

func (OldGrant) UnsafeFixedLayout() {}

// +fixedlayout
// +repr:C
type UsesOldGrant struct {
	o OldGrant // want `field o of UsesOldGrant: OldGrant does not have a fixed layout`
}

// +fixedlayout
// +repr:C
type Node struct {
	next *Node // want `pointer fields never have a fixed layout`
}

// +fixedlayout
// +repr:C
type Sized struct {
	n int // want `int does not have a fixed layout`
}

// +fixedlayout
type Sum interface { // want `interface types cannot be attested`
	isSum()
}

// +fixedlayout
func F() {} // want `applies only to type declarations`
