// Copyright 2025 go-highway Authors
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

package hwy

import "fmt"

// Register is the identity of a native vector register type.
//
// The intrinsic spelling alone is not an identity: on x86 every integer
// vector is an __m128i, but an int32 and a uint32 register are still
// different registers because operations dispatch on signedness.
type Register struct {
	// Name is the intrinsic type spelling, e.g. "int32x4_t" or "__m256i".
	Name string

	// Elem is the lane type the register is used for.
	Elem ElementType

	// Lanes is the native lane capacity.
	Lanes int
}

// Bits returns the register width in bits.
func (r Register) Bits() int {
	return r.Lanes * r.Elem.Bits()
}

// String returns the intrinsic spelling, qualified with the lane shape when
// the spelling does not carry it ("__m128i<int32x4>").
func (r Register) String() string {
	if len(r.Name) > 3 && r.Name[:3] == "__m" {
		return fmt.Sprintf("%s<%sx%d>", r.Name, r.Elem, r.Lanes)
	}
	return r.Name
}

// RegisterKind is the result of register resolution: either a native
// register or the Emulated marker, never both.
//
// RegisterKind values are comparable with ==.
type RegisterKind struct {
	reg    Register
	native bool
}

// Emulated is the register kind of shapes with no native register. Values
// of such shapes are stored as a plain sequence of lanes (see Wide).
var Emulated = RegisterKind{}

// Native returns the register kind for a native register.
func Native(r Register) RegisterKind {
	return RegisterKind{reg: r, native: true}
}

// IsNative reports whether k is a native register.
func (k RegisterKind) IsNative() bool {
	return k.native
}

// IsEmulated reports whether k is the Emulated marker.
func (k RegisterKind) IsEmulated() bool {
	return !k.native
}

// Register returns the native register and true, or false if k is Emulated.
func (k RegisterKind) Register() (Register, bool) {
	return k.reg, k.native
}

// Capacity returns the native lane capacity, or 0 if k is Emulated.
func (k RegisterKind) Capacity() int {
	if !k.native {
		return 0
	}
	return k.reg.Lanes
}

// String returns the register spelling or "emulated".
func (k RegisterKind) String() string {
	if !k.native {
		return "emulated"
	}
	return k.reg.String()
}
