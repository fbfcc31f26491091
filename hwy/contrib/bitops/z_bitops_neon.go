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

// NEON bindings. Bitwise instructions (AND, ORR, EOR, BIC, ORN, MVN) exist
// for every lane type, so no capability is required. Masked BitNotOr maps
// to ORN followed by BSL and has its own kernel.

func init() {
	dispatch.MustRegister(registerBindings(hwy.ABINEON64)...)
	dispatch.MustRegister(registerBindings(hwy.ABINEON128)...)
	dispatch.MustRegister(dispatch.Binding{
		Op:      BitNotOr,
		ABI:     hwy.ABINEON128,
		Pattern: dispatch.Pattern{Masked: true},
		Args:    valueArgs,
		Name:    "neon128-bsl",
		Kernel:  maskedNotOr(hwy.ABINEON128),
	})
}

// maskedNotOr computes select(m, ^a | b, a) one register at a time with a
// bit-select on the packed words: (m & (^a | b)) | (^m & a). Inactive lanes
// hold a converted to the result type.
func maskedNotOr(abi hwy.ABI) dispatch.Kernel {
	notOr := wordOps[BitNotOr]
	return func(f dispatch.Frame) (hwy.Wide, error) {
		mask, _ := f.Options.Mask()
		if err := dispatch.CheckMask(f.Result, mask); err != nil {
			return hwy.Wide{}, err
		}
		args, err := operands(f)
		if err != nil {
			return hwy.Wide{}, err
		}
		keep, err := hwy.Convert(f.Args[0], f.Result)
		if err != nil {
			return hwy.Wide{}, err
		}
		// Expand the mask to all-ones lanes of the result width.
		m := hwy.Build(f.Result, func(i int) uint64 {
			if mask.Bool(i) {
				return ^uint64(0)
			}
			return 0
		})
		ws := make([]uint64, len(args))
		return registerLoop(abi, f.Result, len(args)+2, func(regs [][]uint64, start, n, laneBits int) {
			mr, kr := regs[len(args)], regs[len(args)+1]
			pack(mr, m, start, n, laneBits)
			pack(kr, keep, start, n, laneBits)
			for j, a := range args {
				pack(regs[j], a, start, n, laneBits)
			}
			for k := range mr {
				for j := range args {
					ws[j] = regs[j][k]
				}
				regs[0][k] = mr[k]&notOr.eval(ws) | ^mr[k]&kr[k]
			}
		})
	}
}
