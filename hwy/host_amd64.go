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

//go:build amd64

package hwy

import "golang.org/x/sys/cpu"

// hostSupports reports whether the running CPU can execute code built for t.
// x/sys/cpu does not report AVX-512 FP16, so targets enabling CapFloat16
// are never reported as supported.
func hostSupports(t Target) bool {
	switch t.ABI.Info().Family {
	case FamilyNone:
		return true
	case FamilyARM:
		return false
	}
	if t.Has(CapFloat16) {
		return false
	}
	switch t.ABI {
	case ABISSE2:
		return cpu.X86.HasSSE2
	case ABIAVX2:
		return cpu.X86.HasAVX2
	case ABIAVX512:
		if t.Has(CapAVX512BW) && !cpu.X86.HasAVX512BW {
			return false
		}
		return cpu.X86.HasAVX512F
	}
	return false
}
