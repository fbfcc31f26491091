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

// Operation descriptors.
var (
	BitAnd    = dispatch.Declare("bit_and", dispatch.AtLeast(2), dispatch.CommonValue)
	BitOr     = dispatch.Declare("bit_or", dispatch.AtLeast(2), dispatch.CommonValue)
	BitXor    = dispatch.Declare("bit_xor", dispatch.AtLeast(2), dispatch.CommonValue)
	BitNotAnd = dispatch.Declare("bit_notand", dispatch.AtLeast(2), dispatch.CommonValue)
	BitNotOr  = dispatch.Declare("bit_notor", dispatch.AtLeast(2), dispatch.CommonValue)
	BitAndNot = dispatch.Declare("bit_andnot", dispatch.AtLeast(2), dispatch.CommonValue)
	BitOrNot  = dispatch.Declare("bit_ornot", dispatch.AtLeast(2), dispatch.CommonValue)
	BitNot    = dispatch.Declare("bit_not", dispatch.Exactly(1), dispatch.CommonValue)
)

// Word-level definition of each operation. fold combines the trailing
// arguments; head applies the operation to the first argument and the
// folded rest.
type wordOp struct {
	fold func(x, y uint64) uint64
	head func(a, rest uint64) uint64
}

func and(x, y uint64) uint64 { return x & y }
func or(x, y uint64) uint64  { return x | y }
func xor(x, y uint64) uint64 { return x ^ y }

var wordOps = map[*dispatch.Descriptor]wordOp{
	BitAnd:    {fold: and, head: and},
	BitOr:     {fold: or, head: or},
	BitXor:    {fold: xor, head: xor},
	BitNotAnd: {fold: and, head: func(a, r uint64) uint64 { return ^a & r }},
	BitNotOr:  {fold: or, head: func(a, r uint64) uint64 { return ^a | r }},
	BitAndNot: {fold: or, head: func(a, r uint64) uint64 { return a &^ r }},
	BitOrNot:  {fold: and, head: func(a, r uint64) uint64 { return a | ^r }},
}

// eval applies op to one word (or lane) of every argument.
func (op wordOp) eval(words []uint64) uint64 {
	rest := words[1]
	for _, w := range words[2:] {
		rest = op.fold(rest, w)
	}
	return op.head(words[0], rest)
}

// operands reinterprets the lane bits of every argument at the result type.
func operands(f dispatch.Frame) ([]hwy.Wide, error) {
	out := make([]hwy.Wide, len(f.Args))
	for i, a := range f.Args {
		c, err := hwy.Reinterpret(a, f.Result)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}

// lanewise returns the generic kernel of op: one lane at a time.
func lanewise(op wordOp) dispatch.Kernel {
	return func(f dispatch.Frame) (hwy.Wide, error) {
		args, err := operands(f)
		if err != nil {
			return hwy.Wide{}, err
		}
		lane := make([]uint64, len(args))
		return hwy.Build(f.Result, func(i int) uint64 {
			for j, a := range args {
				lane[j] = a.Bits(i)
			}
			return op.eval(lane)
		}), nil
	}
}

func notLanes(f dispatch.Frame) (hwy.Wide, error) {
	x, err := hwy.Reinterpret(f.Args[0], f.Result)
	if err != nil {
		return hwy.Wide{}, err
	}
	return hwy.Build(f.Result, func(i int) uint64 { return ^x.Bits(i) }), nil
}

// valueArgs accepts values and logical values, never type tags.
var valueArgs = dispatch.ArgPattern{Forms: dispatch.ValueForms | dispatch.LogicalForms}

func init() {
	for desc, op := range wordOps {
		dispatch.MustRegister(dispatch.Binding{
			Op: desc, ABI: hwy.ABIGeneric, Args: valueArgs, Name: "lanes", Kernel: lanewise(op),
		})
	}
	dispatch.MustRegister(dispatch.Binding{
		Op: BitNot, ABI: hwy.ABIGeneric, Args: valueArgs, Name: "lanes", Kernel: notLanes,
	})
}
