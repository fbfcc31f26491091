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

package bitops

import (
	"github.com/go-highway/simdabi/hwy"
	"github.com/go-highway/simdabi/hwy/dispatch"
)

// x86 bindings. SSE2 and AVX2 bitwise instructions (PAND, POR, PXOR, PANDN
// and their VEX forms) operate on whole registers regardless of lane type.
// AVX-512 targets reach the AVX2 kernels through the fallback chain.

func init() {
	dispatch.MustRegister(registerBindings(hwy.ABISSE2)...)
	dispatch.MustRegister(registerBindings(hwy.ABIAVX2)...)
}
