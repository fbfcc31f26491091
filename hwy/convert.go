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
)

// Convert returns w converted to type to.
//
//   - A type tag converts to all-zero lanes (false for logical types).
//   - A scalar broadcasts to the lane count of a vector type; otherwise
//     the lane counts must agree.
//   - Converting to a logical type yields x != 0 per lane (NaN is true).
//   - Converting a logical value to a numeric type yields 1 or 0.
//   - Numeric lanes convert as described by ConvertBits.
func Convert(w Wide, to Type) (Wide, error) {
	if w.tag {
		return Build(to, func(int) uint64 { return 0 }), nil
	}
	if w.typ.Lanes != to.Lanes && w.typ.Lanes != 0 {
		return Wide{}, fmt.Errorf("hwy: cannot convert %s to %s", w.typ, to)
	}
	switch {
	case to.Logical:
		return Build(to, func(i int) uint64 {
			if w.Bool(i) {
				return math.MaxUint64
			}
			return 0
		}), nil
	case w.typ.Logical:
		one := ConvertBits(Uint8, to.Elem, 1)
		return Build(to, func(i int) uint64 {
			if w.Bits(i) != 0 {
				return one
			}
			return 0
		}), nil
	}
	return Build(to, func(i int) uint64 {
		return ConvertBits(w.typ.Elem, to.Elem, w.Bits(i))
	}), nil
}

// ConvertBits converts one lane's bit pattern between element types.
//
// Integer to integer conversion wraps like a Go conversion. Conversion to a
// float rounds to nearest even. Float to integer conversion truncates
// toward zero and saturates at the target range; NaN becomes zero.
func ConvertBits(from, to ElementType, b uint64) uint64 {
	switch {
	case from == to:
		return b & laneMask(to)
	case to.IsFloat():
		return FloatBits(to, decodeFloat(from, b))
	case from.IsFloat():
		return floatToInt(to, decodeFloat(from, b)) & laneMask(to)
	}
	return uint64(signExtend(from, b)) & laneMask(to)
}

// FloatBits returns the lane pattern of f in element type e. Integer
// element types follow the float to integer rule of ConvertBits.
func FloatBits(e ElementType, f float64) uint64 {
	if !e.IsFloat() {
		return floatToInt(e, f) & laneMask(e)
	}
	switch e.Width {
	case 2:
		return uint64(halfFromFloat64(f))
	case 4:
		return uint64(math.Float32bits(float32(f)))
	}
	return math.Float64bits(f)
}

// laneMask returns the bits occupied by one lane of e.
func laneMask(e ElementType) uint64 {
	if e.Width >= 8 {
		return math.MaxUint64
	}
	return 1<<uint(e.Bits()) - 1
}

// signExtend interprets b as a lane of e. Signed lanes are sign-extended;
// every other lane is returned unchanged.
func signExtend(e ElementType, b uint64) int64 {
	if e.Kind != KindSigned {
		return int64(b)
	}
	shift := uint(64 - e.Bits())
	return int64(b<<shift) >> shift
}

// decodeFloat returns the numeric value of a lane of e as a float64.
func decodeFloat(e ElementType, b uint64) float64 {
	switch e.Kind {
	case KindSigned:
		return float64(signExtend(e, b))
	case KindUnsigned:
		return float64(b)
	}
	switch e.Width {
	case 2:
		return halfToFloat64(uint16(b))
	case 4:
		return float64(math.Float32frombits(uint32(b)))
	}
	return math.Float64frombits(b)
}

func floatToInt(e ElementType, f float64) uint64 {
	if math.IsNaN(f) {
		return 0
	}
	limit := math.Ldexp(1, e.Bits()-1)
	if e.Kind == KindSigned {
		switch {
		case f >= limit:
			return uint64(1)<<uint(e.Bits()-1) - 1
		case f <= -limit:
			return uint64(1) << uint(e.Bits()-1)
		}
		return uint64(int64(f))
	}
	switch {
	case f <= 0:
		return 0
	case f >= 2*limit:
		return laneMask(e)
	}
	return uint64(f)
}

// encodeLane returns the lane pattern of x, an element of type e.
func encodeLane[T Lanes](e ElementType, x T) uint64 {
	if e.IsFloat() {
		return FloatBits(e, float64(x))
	}
	if e.Kind == KindSigned {
		return uint64(int64(x)) & laneMask(e)
	}
	return uint64(x)
}

// decodeLane is the inverse of encodeLane.
func decodeLane[T Lanes](e ElementType, b uint64) T {
	switch e.Kind {
	case KindFloat:
		return T(decodeFloat(e, b))
	case KindSigned:
		return T(signExtend(e, b))
	}
	return T(b)
}

// Reinterpret returns w with its lane bits read as type to.
//
//   - Lanes of equal width keep their bits.
//   - A logical lane becomes all-ones or zero at the width of to.
//   - A narrower integer lane is sign- or zero-extended by its own kind;
//     a wider one is truncated.
//   - A float lane of another width is first rounded to the float of the
//     width of to, so the sign bit stays in place.
//   - Reinterpreting to a logical type yields x != 0 per lane.
//
// Scalars broadcast as in Convert. A type tag cannot be reinterpreted.
func Reinterpret(w Wide, to Type) (Wide, error) {
	if w.tag {
		return Wide{}, fmt.Errorf("hwy: cannot reinterpret type tag %s", w.typ)
	}
	if to.Logical {
		return Convert(w, to)
	}
	if w.typ.Lanes != to.Lanes && w.typ.Lanes != 0 {
		return Wide{}, fmt.Errorf("hwy: cannot reinterpret %s as %s", w.typ, to)
	}
	from := w.typ.Elem
	lane := func(b uint64) uint64 { return b }
	switch {
	case w.typ.Logical:
		lane = func(b uint64) uint64 {
			if b != 0 {
				return math.MaxUint64
			}
			return 0
		}
	case from.Width == to.Elem.Width:
	case from.Kind != KindFloat:
		lane = func(b uint64) uint64 { return uint64(signExtend(from, b)) }
	default:
		if f, ok := floatOfWidth(to.Elem.Width); ok {
			lane = func(b uint64) uint64 { return ConvertBits(from, f, b) }
		} else {
			lane = func(b uint64) uint64 { return ConvertBits(from, to.Elem, b) }
		}
	}
	return Build(to, func(i int) uint64 { return lane(w.Bits(i)) }), nil
}

// floatOfWidth returns the float element type occupying width bytes.
func floatOfWidth(width int) (ElementType, bool) {
	for _, e := range ElementTypes {
		if e.Kind == KindFloat && e.Width == width {
			return e, true
		}
	}
	return ElementType{}, false
}

// BitCast reinterprets the lanes of v as type To of the same width.
func BitCast[To, From Lanes](v Vec[From]) (Vec[To], error) {
	from, to := ElementOf[From](), ElementOf[To]()
	if from.Width != to.Width {
		return Vec[To]{}, fmt.Errorf("hwy: cannot bit-cast %s to %s", from, to)
	}
	if len(v.data) == 0 {
		return Vec[To]{}, nil
	}
	w, err := Reinterpret(WideOf(v), VectorOf(to, len(v.data)))
	if err != nil {
		return Vec[To]{}, err
	}
	return VecFrom[To](w)
}
