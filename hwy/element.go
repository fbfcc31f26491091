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

import (
	"fmt"
	"strings"
	"unsafe"
)

//go:generate go tool stringer -type=Kind -trimprefix=Kind

// Kind is the numeric category of an element type.
type Kind uint8

const (
	// KindSigned is a two's complement signed integer.
	KindSigned Kind = iota

	// KindUnsigned is an unsigned integer.
	KindUnsigned

	// KindFloat is an IEEE 754 binary floating-point number.
	KindFloat
)

// KindSet is a set of element kinds.
type KindSet uint8

// Kinds builds a KindSet.
func Kinds(kinds ...Kind) KindSet {
	var s KindSet
	for _, k := range kinds {
		s |= 1 << k
	}
	return s
}

// AllKinds contains every element kind.
var AllKinds = Kinds(KindSigned, KindUnsigned, KindFloat)

// Has reports whether k is in the set.
func (s KindSet) Has(k Kind) bool {
	return s&(1<<k) != 0
}

// ElementType is a scalar numeric lane type: a kind and a width in bytes.
//
// Valid widths are 1, 2, 4 and 8 for integers, and 2 (half precision),
// 4 and 8 for floats.
type ElementType struct {
	Kind  Kind
	Width int
}

// Predefined element types.
var (
	Int8    = ElementType{KindSigned, 1}
	Int16   = ElementType{KindSigned, 2}
	Int32   = ElementType{KindSigned, 4}
	Int64   = ElementType{KindSigned, 8}
	Uint8   = ElementType{KindUnsigned, 1}
	Uint16  = ElementType{KindUnsigned, 2}
	Uint32  = ElementType{KindUnsigned, 4}
	Uint64  = ElementType{KindUnsigned, 8}
	Float16 = ElementType{KindFloat, 2}
	Float32 = ElementType{KindFloat, 4}
	Float64 = ElementType{KindFloat, 8}
)

// ElementTypes lists every valid element type, integers first, in ascending width.
var ElementTypes = []ElementType{
	Int8, Int16, Int32, Int64,
	Uint8, Uint16, Uint32, Uint64,
	Float16, Float32, Float64,
}

// Valid reports whether e is one of the supported element types.
func (e ElementType) Valid() bool {
	switch e.Kind {
	case KindSigned, KindUnsigned:
		return e.Width == 1 || e.Width == 2 || e.Width == 4 || e.Width == 8
	case KindFloat:
		return e.Width == 2 || e.Width == 4 || e.Width == 8
	default:
		return false
	}
}

// Bits returns the width of e in bits.
func (e ElementType) Bits() int {
	return e.Width * 8
}

// IsFloat reports whether e is a floating-point type.
func (e ElementType) IsFloat() bool { return e.Kind == KindFloat }

// IsInteger reports whether e is a signed or unsigned integer type.
func (e ElementType) IsInteger() bool { return e.Kind == KindSigned || e.Kind == KindUnsigned }

// IsSigned reports whether e can hold negative values.
func (e ElementType) IsSigned() bool { return e.Kind == KindSigned || e.Kind == KindFloat }

// String returns the Go spelling of e ("int32", "float64", "float16").
func (e ElementType) String() string {
	switch e.Kind {
	case KindSigned:
		return fmt.Sprintf("int%d", e.Bits())
	case KindUnsigned:
		return fmt.Sprintf("uint%d", e.Bits())
	case KindFloat:
		return fmt.Sprintf("float%d", e.Bits())
	default:
		return fmt.Sprintf("invalid(%d,%d)", e.Kind, e.Width)
	}
}

// ParseElementType parses the Go spelling of an element type.
func ParseElementType(s string) (ElementType, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, e := range ElementTypes {
		if e.String() == name {
			return e, nil
		}
	}
	return ElementType{}, fmt.Errorf("unknown element type: %q", s)
}

// UnsignedOfSameWidth returns the unsigned integer type with the same width as e.
func UnsignedOfSameWidth(e ElementType) ElementType {
	return ElementType{Kind: KindUnsigned, Width: e.Width}
}

// SignedOfSameWidth returns the signed integer type with the same width as e.
func SignedOfSameWidth(e ElementType) ElementType {
	return ElementType{Kind: KindSigned, Width: e.Width}
}

// ElementOf returns the element type of the Go type T.
// Named types (~int32 and friends) map to their underlying type.
func ElementOf[T Lanes]() ElementType {
	var zero T
	width := int(unsafe.Sizeof(zero))
	half := 0.5
	if T(half) != zero {
		return ElementType{Kind: KindFloat, Width: width}
	}
	var one T = 1
	if zero-one < zero {
		return ElementType{Kind: KindSigned, Width: width}
	}
	return ElementType{Kind: KindUnsigned, Width: width}
}

// Promote returns the common element type of a and b.
//
// Floats win over integers; mixing a float with an integer yields a float at
// least as wide as both, and never narrower than float32. Among integers
// the widest wins, and at equal width mixed signedness yields unsigned.
func Promote(a, b ElementType) ElementType {
	if a == b {
		return a
	}
	switch {
	case a.IsFloat() && b.IsFloat():
		return ElementType{Kind: KindFloat, Width: max(a.Width, b.Width)}
	case a.IsFloat():
		return promoteFloatInt(a, b)
	case b.IsFloat():
		return promoteFloatInt(b, a)
	}
	if a.Width != b.Width {
		if a.Width > b.Width {
			return a
		}
		return b
	}
	return ElementType{Kind: KindUnsigned, Width: a.Width}
}

func promoteFloatInt(f, i ElementType) ElementType {
	return ElementType{Kind: KindFloat, Width: max(f.Width, i.Width, 4)}
}
