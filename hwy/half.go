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

import "math"

// Half-precision (IEEE 754 binary16) lanes are stored as raw bits:
// sign (1 bit) | exponent (5 bits, bias 15) | mantissa (10 bits).
const (
	halfSignMask = 0x8000
	halfExpMask  = 0x7C00
	halfManMask  = 0x03FF
	halfInf      = 0x7C00
	halfQuietNaN = 0x7E00
)

// halfToFloat64 widens a binary16 value. The conversion is exact.
func halfToFloat64(h uint16) float64 {
	sign := 1.0
	if h&halfSignMask != 0 {
		sign = -1.0
	}
	exp := int(h&halfExpMask) >> 10
	mant := int(h & halfManMask)
	switch exp {
	case 0:
		// Zero or denormal: mant * 2^-24.
		return sign * math.Ldexp(float64(mant), -24)
	case 0x1F:
		if mant != 0 {
			return math.NaN()
		}
		return math.Inf(int(sign))
	}
	return sign * math.Ldexp(float64(mant|0x400), exp-25)
}

// halfFromFloat64 narrows f to binary16 with round-to-nearest-even.
// Values beyond the half range become infinities; values below half the
// smallest denormal become signed zero.
func halfFromFloat64(f float64) uint16 {
	b := math.Float64bits(f)
	sign := uint16(b>>48) & halfSignMask
	exp := int(b>>52) & 0x7FF
	mant := b & (1<<52 - 1)

	if exp == 0x7FF {
		if mant != 0 {
			return sign | halfQuietNaN | uint16(mant>>42)&halfManMask
		}
		return sign | halfInf
	}

	e := exp - 1023 + 15
	if e >= 31 {
		return sign | halfInf
	}
	if e <= 0 {
		if e < -10 {
			return sign
		}
		// Denormal result. Rounding up may carry into the smallest normal,
		// which is the correct encoding.
		return sign | uint16(roundShift(mant|1<<52, uint(43-e)))
	}
	// The carry of a rounded-up mantissa moves into the exponent and turns
	// the largest finite value into infinity.
	h := uint64(e)<<10 | mant>>42
	rest := mant & (1<<42 - 1)
	if rest > 1<<41 || (rest == 1<<41 && h&1 == 1) {
		h++
	}
	return sign | uint16(h)
}

// roundShift returns m >> shift rounded to nearest, ties to even.
func roundShift(m uint64, shift uint) uint64 {
	r := m >> shift
	rest := m & (1<<shift - 1)
	halfway := uint64(1) << (shift - 1)
	if rest > halfway || (rest == halfway && r&1 == 1) {
		r++
	}
	return r
}
