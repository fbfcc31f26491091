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

package predicate

import (
	stdmath "math"

	"github.com/go-highway/simdabi/hwy"
	"github.com/go-highway/simdabi/hwy/dispatch"
)

// IsEqualWithEqualNaNs is the descriptor of the NaN-aware equality.
var IsEqualWithEqualNaNs = dispatch.Declare("is_equal_with_equal_nans", dispatch.Exactly(2), dispatch.CommonLogical)

var compareArgs = dispatch.ArgPattern{Forms: dispatch.ValueForms | dispatch.LogicalForms}

func init() {
	dispatch.MustRegister(dispatch.Binding{
		Op: IsEqualWithEqualNaNs, ABI: hwy.ABIGeneric, Args: compareArgs, Name: "lanes", Kernel: equalNaNLanes,
	})
}

func equalNaNLanes(f dispatch.Frame) (hwy.Wide, error) {
	value := f.Result.Value()
	a, err := hwy.Convert(f.Args[0], value)
	if err != nil {
		return hwy.Wide{}, err
	}
	b, err := hwy.Convert(f.Args[1], value)
	if err != nil {
		return hwy.Wide{}, err
	}
	isFloat := value.Elem.IsFloat()
	return hwy.Build(f.Result, func(i int) uint64 {
		if equalNaN(a, b, i, isFloat) {
			return stdmath.MaxUint64
		}
		return 0
	}), nil
}

func equalNaN(a, b hwy.Wide, i int, isFloat bool) bool {
	if !isFloat {
		return a.Bits(i) == b.Bits(i)
	}
	x, y := a.Float(i), b.Float(i)
	return x == y || (x != x && y != y)
}

// EqualNaN returns the lanes where a and b are equal or both NaN, using the
// default target.
func EqualNaN[T hwy.Lanes](a, b hwy.Vec[T]) hwy.Mask[T] {
	w := dispatch.Op(IsEqualWithEqualNaNs).MustCall(hwy.WideOf(a), hwy.WideOf(b))
	m, err := hwy.MaskFrom[T](w)
	if err != nil {
		panic(err)
	}
	return m
}
