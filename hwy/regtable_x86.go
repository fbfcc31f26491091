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

// x86 register tables.
//
// x86 has no 64-bit vector registers: SSE2 serves requests of up to 64 bits
// with the low half of an XMM register. Integer registers share one
// spelling per width (__m128i, __m256i, __m512i); the Register identity
// still carries the element type.
//
// Half-precision registers (__m128h and wider) need CapFloat16 and only
// exist on AVX-512. Byte and word lanes in 512-bit registers need
// CapAVX512BW.

// x86Tier returns a tier of the given width whose registers are regBits
// wide. allowed lists the capabilities this tier's entries may require.
func x86Tier(bits, regBits int, bound BoundKind, allowed Capability) tier {
	return tier{
		bits:    bits,
		regBits: regBits,
		bound:   bound,
		entry: func(e ElementType, _ int) (string, Capability, bool) {
			var req Capability
			suffix := "i"
			switch {
			case e == Float16:
				if allowed&CapFloat16 == 0 {
					return "", 0, false
				}
				suffix, req = "h", CapFloat16
			case e == Float32:
				suffix = ""
			case e == Float64:
				suffix = "d"
			case e.Width <= 2 && regBits == 512:
				req = CapAVX512BW
			}
			if req&^allowed != 0 {
				return "", 0, false
			}
			return fmt.Sprintf("__m%d%s", regBits, suffix), req, true
		},
	}
}
