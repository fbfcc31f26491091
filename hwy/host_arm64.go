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

//go:build arm64

package hwy

import "golang.org/x/sys/cpu"

// hostSupports reports whether the running CPU can execute code built for t.
// The SVE vector length is not visible through x/sys/cpu, so every SVE
// width is reported as supported when SVE is present.
func hostSupports(t Target) bool {
	switch t.ABI.Info().Family {
	case FamilyNone:
		return true
	case FamilyX86:
		return false
	}
	if !cpu.ARM64.HasASIMD {
		return false
	}
	if t.Has(CapFloat16) && !(cpu.ARM64.HasFPHP && cpu.ARM64.HasASIMDHP) {
		return false
	}
	switch t.ABI {
	case ABISVE128, ABISVE256, ABISVE512:
		return cpu.ARM64.HasSVE
	}
	return true
}
