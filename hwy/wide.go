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
	"math"
	"strings"
)

// Type is the static type of a value: an element type, a lane count
// (0 for a scalar) and whether the value is logical (a mask).
type Type struct {
	Elem    ElementType
	Lanes   int
	Logical bool
}

// ScalarOf returns the scalar type of elem.
func ScalarOf(elem ElementType) Type {
	return Type{Elem: elem}
}

// VectorOf returns the vector type of lanes elements of type elem.
func VectorOf(elem ElementType, lanes int) Type {
	return Type{Elem: elem, Lanes: lanes}
}

// LogicalOf returns the logical counterpart of t.
func LogicalOf(t Type) Type {
	t.Logical = true
	return t
}

// IsScalar reports whether t has no lanes.
func (t Type) IsScalar() bool {
	return t.Lanes == 0
}

// Value returns t without the logical marker.
func (t Type) Value() Type {
	t.Logical = false
	return t
}

// Register returns the register kind holding a value of type t on target.
// Scalars are resolved as a single lane.
func (t Type) Register(target Target) RegisterKind {
	lanes := max(t.Lanes, 1)
	if t.Logical {
		return ResolveLogical(t.Elem, lanes, target)
	}
	return Resolve(t.Elem, lanes, target)
}

// String returns "int32", "float32x4" or "logical<uint8x16>".
func (t Type) String() string {
	s := t.Elem.String()
	if t.Lanes > 0 {
		s = fmt.Sprintf("%sx%d", s, t.Lanes)
	}
	if t.Logical {
		s = "logical<" + s + ">"
	}
	return s
}

// Wide is a value in the emulated representation: a Type and the raw bit
// pattern of every lane, zero-extended to 64 bits. Signed lanes are stored
// in two's complement, float lanes as their IEEE encoding, logical lanes as
// all-ones (true) or zero (false) of the element width.
//
// A type tag (see As) carries a type and no lanes. It selects the result
// type of operations such as constants.
//
// Wide values are immutable; every operation returns a new value.
type Wide struct {
	typ  Type
	tag  bool
	bits []uint64
}

// As returns the type tag of t.
func As(t Type) Wide {
	return Wide{typ: t, tag: true}
}

// NewWide returns a value of type t with the given lane bits. A scalar takes
// exactly one pattern. Bits above the element width are cleared.
func NewWide(t Type, bits []uint64) (Wide, error) {
	n := max(t.Lanes, 1)
	if len(bits) != n {
		return Wide{}, fmt.Errorf("hwy: %s needs %d lanes, got %d", t, n, len(bits))
	}
	out := make([]uint64, n)
	m := laneMask(t.Elem)
	for i, b := range bits {
		out[i] = b & m
	}
	return Wide{typ: t, bits: out}, nil
}

// Build returns a value of type t whose lane i holds f(i).
func Build(t Type, f func(i int) uint64) Wide {
	n := max(t.Lanes, 1)
	out := make([]uint64, n)
	m := laneMask(t.Elem)
	for i := range out {
		out[i] = f(i) & m
	}
	return Wide{typ: t, bits: out}
}

// Type returns the static type of w.
func (w Wide) Type() Type {
	return w.typ
}

// IsTag reports whether w is a type tag.
func (w Wide) IsTag() bool {
	return w.tag
}

// NumLanes returns the lane count (1 for a scalar, 0 for a type tag).
func (w Wide) NumLanes() int {
	return len(w.bits)
}

// Bits returns lane i's raw pattern. Scalars answer for every i.
func (w Wide) Bits(i int) uint64 {
	if w.typ.Lanes == 0 {
		return w.bits[0]
	}
	return w.bits[i]
}

// Float returns lane i as a float64. Integer lanes are converted exactly or
// rounded to nearest; logical lanes are 1 or 0.
func (w Wide) Float(i int) float64 {
	if w.typ.Logical {
		return boolFloat(w.Bits(i) != 0)
	}
	return decodeFloat(w.typ.Elem, w.Bits(i))
}

// Int returns lane i as an int64 (sign-extended for signed elements).
func (w Wide) Int(i int) int64 {
	return signExtend(w.typ.Elem, w.Bits(i))
}

// Bool returns lane i as a logical value: a true lane for logical values,
// a non-zero lane otherwise.
func (w Wide) Bool(i int) bool {
	if w.typ.Logical || !w.typ.Elem.IsFloat() {
		return w.Bits(i) != 0
	}
	return w.Float(i) != 0
}

// Broadcast returns w repeated to lanes lanes. Only scalars broadcast.
func (w Wide) Broadcast(lanes int) (Wide, error) {
	if w.tag {
		return Wide{}, fmt.Errorf("hwy: cannot broadcast type tag %s", w.typ)
	}
	if w.typ.Lanes == lanes {
		return w, nil
	}
	if w.typ.Lanes != 0 {
		return Wide{}, fmt.Errorf("hwy: cannot broadcast %s to %d lanes", w.typ, lanes)
	}
	t := w.typ
	t.Lanes = lanes
	return Build(t, func(int) uint64 { return w.bits[0] }), nil
}

// Equal reports whether a and b have the same type and lane bits.
func (w Wide) Equal(o Wide) bool {
	if w.typ != o.typ || w.tag != o.tag || len(w.bits) != len(o.bits) {
		return false
	}
	for i := range w.bits {
		if w.bits[i] != o.bits[i] {
			return false
		}
	}
	return true
}

// String formats the lanes in the element's natural notation.
func (w Wide) String() string {
	if w.tag {
		return "as<" + w.typ.String() + ">"
	}
	parts := make([]string, len(w.bits))
	for i := range w.bits {
		switch {
		case w.typ.Logical:
			parts[i] = fmt.Sprint(w.bits[i] != 0)
		case w.typ.Elem.IsFloat():
			parts[i] = fmt.Sprint(w.Float(i))
		case w.typ.Elem.Kind == KindSigned:
			parts[i] = fmt.Sprint(w.Int(i))
		default:
			parts[i] = fmt.Sprint(w.bits[i])
		}
	}
	if w.typ.Lanes == 0 {
		return w.typ.String() + "(" + parts[0] + ")"
	}
	return w.typ.String() + "{" + strings.Join(parts, ", ") + "}"
}

// Select returns a value whose lane i is a's lane i where mask lane i is
// true and b's otherwise. a and b must have the same type; a scalar mask
// applies to every lane.
func Select(mask, a, b Wide) (Wide, error) {
	if a.typ != b.typ || a.tag || b.tag {
		return Wide{}, fmt.Errorf("hwy: select between %s and %s", a, b)
	}
	if mask.typ.Lanes != 0 && mask.typ.Lanes != a.typ.Lanes {
		return Wide{}, fmt.Errorf("hwy: select of %s with %s", a.typ, mask.typ)
	}
	return Build(a.typ, func(i int) uint64 {
		if mask.Bool(i) {
			return a.Bits(i)
		}
		return b.Bits(i)
	}), nil
}

// WideOf returns v in the emulated representation.
func WideOf[T Lanes](v Vec[T]) Wide {
	e := ElementOf[T]()
	return Build(VectorOf(e, len(v.data)), func(i int) uint64 {
		return encodeLane(e, v.data[i])
	})
}

// ScalarWide returns x as a scalar value.
func ScalarWide[T Lanes](x T) Wide {
	e := ElementOf[T]()
	return Wide{typ: ScalarOf(e), bits: []uint64{encodeLane(e, x) & laneMask(e)}}
}

// MaskWide returns m as a logical value guarding elements of type T.
func MaskWide[T Lanes](m Mask[T]) Wide {
	e := ElementOf[T]()
	return Build(LogicalOf(VectorOf(e, len(m.bits))), func(i int) uint64 {
		if m.bits[i] {
			return math.MaxUint64
		}
		return 0
	})
}

// VecFrom returns w as a typed vector. It fails when w is not a vector of T.
func VecFrom[T Lanes](w Wide) (Vec[T], error) {
	e := ElementOf[T]()
	if w.tag || w.typ.Logical || w.typ.Elem != e || w.typ.Lanes == 0 {
		return Vec[T]{}, fmt.Errorf("hwy: %s is not a vector of %s", w.typ, e)
	}
	data := make([]T, len(w.bits))
	for i, b := range w.bits {
		data[i] = decodeLane[T](e, b)
	}
	return Vec[T]{data: data}, nil
}

// MaskFrom returns w as a typed mask. It fails when w is not logical.
func MaskFrom[T Lanes](w Wide) (Mask[T], error) {
	if w.tag || !w.typ.Logical || w.typ.Lanes == 0 {
		return Mask[T]{}, fmt.Errorf("hwy: %s is not a logical vector", w.typ)
	}
	bits := make([]bool, len(w.bits))
	for i, b := range w.bits {
		bits[i] = b != 0
	}
	return Mask[T]{bits: bits}, nil
}

func boolFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
