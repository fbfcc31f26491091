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

// ARM register tables.
//
// NEON registers are spelled <kind><bits>x<lanes>_t. The 64-bit tier
// (int8x8_t, float32x2_t, float64x1_t, ...) also serves narrower requests;
// the 128-bit tier (int8x16_t, ..., float64x2_t) serves full-width requests
// only. Double-precision registers need CapFloat64 (AArch64 Advanced SIMD);
// half-precision registers need CapFloat16.
//
// SVE tables model a fixed vector length. Every SVE register is predicated,
// so a single tier serves any lane count up to the vector length.

func armKindName(e ElementType) string {
	switch e.Kind {
	case KindSigned:
		return "int"
	case KindUnsigned:
		return "uint"
	default:
		return "float"
	}
}

func neonTier(bits int, bound BoundKind) tier {
	return tier{
		bits:  bits,
		bound: bound,
		entry: func(e ElementType, lanes int) (string, Capability, bool) {
			var req Capability
			switch e {
			case Float64:
				req = CapFloat64
			case Float16:
				req = CapFloat16
			}
			return fmt.Sprintf("%s%dx%d_t", armKindName(e), e.Bits(), lanes), req, true
		},
	}
}

func sveTier(bits int) tier {
	return tier{
		bits:  bits,
		bound: AtMost,
		entry: func(e ElementType, _ int) (string, Capability, bool) {
			return fmt.Sprintf("sv%s%d_t", armKindName(e), e.Bits()), 0, true
		},
	}
}
