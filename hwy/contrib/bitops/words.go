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
	"fmt"

	"github.com/go-highway/simdabi/hwy"
	"github.com/go-highway/simdabi/hwy/dispatch"
)

// Register-width kernels.
//
// A vector is processed one register at a time. The lanes of a register are
// packed little-endian into 64-bit words, the operation runs on whole words
// as the hardware would on a register, and the words are unpacked again.
// Lanes past the end of the vector pad the last register with zeros.

// pack writes lanes [start, start+n) of w into words.
func pack(words []uint64, w hwy.Wide, start, n, laneBits int) {
	clear(words)
	perWord := 64 / laneBits
	for i := 0; i < n; i++ {
		words[i/perWord] |= w.Bits(start+i) << (uint(i%perWord) * uint(laneBits))
	}
}

// unpack returns lane i of a packed register.
func unpack(words []uint64, i, laneBits int) uint64 {
	perWord := 64 / laneBits
	return words[i/perWord] >> (uint(i%perWord) * uint(laneBits))
}

// registerLanes returns the lanes of elem held by one register of abi.
func registerLanes(abi hwy.ABI, elem hwy.ElementType) int {
	return abi.Info().Bits / elem.Bits()
}

// registerKernel returns the kernel of op for registers of abi.
func registerKernel(abi hwy.ABI, op wordOp) dispatch.Kernel {
	return func(f dispatch.Frame) (hwy.Wide, error) {
		args, err := operands(f)
		if err != nil {
			return hwy.Wide{}, err
		}
		ws := make([]uint64, len(args))
		return registerLoop(abi, f.Result, len(args), func(regs [][]uint64, start, n, laneBits int) {
			for j, a := range args {
				pack(regs[j], a, start, n, laneBits)
			}
			for k := range regs[0] {
				for j := range args {
					ws[j] = regs[j][k]
				}
				regs[0][k] = op.eval(ws)
			}
		})
	}
}

// registerNot is the register kernel of BitNot.
func registerNot(abi hwy.ABI) dispatch.Kernel {
	return func(f dispatch.Frame) (hwy.Wide, error) {
		x, err := hwy.Reinterpret(f.Args[0], f.Result)
		if err != nil {
			return hwy.Wide{}, err
		}
		return registerLoop(abi, f.Result, 1, func(regs [][]uint64, start, n, laneBits int) {
			pack(regs[0], x, start, n, laneBits)
			for k := range regs[0] {
				regs[0][k] = ^regs[0][k]
			}
		})
	}
}

// registerLoop runs body once per register of the result and collects
// lane results from regs[0]. body packs, computes and leaves the result
// register in regs[0].
func registerLoop(abi hwy.ABI, result hwy.Type, nregs int, body func(regs [][]uint64, start, n, laneBits int)) (hwy.Wide, error) {
	laneBits := result.Elem.Bits()
	per := registerLanes(abi, result.Elem)
	if per == 0 {
		return hwy.Wide{}, fmt.Errorf("bitops: %s has no %s lanes", abi, result.Elem)
	}
	total := max(result.Lanes, 1)
	regs := make([][]uint64, nregs)
	for j := range regs {
		regs[j] = make([]uint64, (per*laneBits+63)/64)
	}
	out := make([]uint64, total)
	for start := 0; start < total; start += per {
		n := min(per, total-start)
		body(regs, start, n, laneBits)
		for i := 0; i < n; i++ {
			out[start+i] = unpack(regs[0], i, laneBits)
		}
	}
	return hwy.NewWide(result, out)
}

// registerBindings returns the register-width bindings of every operation
// for abi.
func registerBindings(abi hwy.ABI) []dispatch.Binding {
	name := abi.String() + "-words"
	bindings := []dispatch.Binding{{
		Op: BitNot, ABI: abi, Args: valueArgs, Name: name, Kernel: registerNot(abi),
	}}
	for desc, op := range wordOps {
		bindings = append(bindings, dispatch.Binding{
			Op: desc, ABI: abi, Args: valueArgs, Name: name, Kernel: registerKernel(abi, op),
		})
	}
	return bindings
}
