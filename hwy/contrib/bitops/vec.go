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

// Typed forms over hwy.Vec. They dispatch on the default target and panic
// if the vectors have different lane counts.

// And returns a & b & ...
func And[T hwy.Lanes](a, b hwy.Vec[T], more ...hwy.Vec[T]) hwy.Vec[T] {
	return call(dispatch.Op(BitAnd), a, b, more)
}

// Or returns a | b | ...
func Or[T hwy.Lanes](a, b hwy.Vec[T], more ...hwy.Vec[T]) hwy.Vec[T] {
	return call(dispatch.Op(BitOr), a, b, more)
}

// Xor returns a ^ b ^ ...
func Xor[T hwy.Lanes](a, b hwy.Vec[T], more ...hwy.Vec[T]) hwy.Vec[T] {
	return call(dispatch.Op(BitXor), a, b, more)
}

// NotAnd returns ^a & (b & ...).
func NotAnd[T hwy.Lanes](a, b hwy.Vec[T], more ...hwy.Vec[T]) hwy.Vec[T] {
	return call(dispatch.Op(BitNotAnd), a, b, more)
}

// NotOr returns ^a | (b | ...).
func NotOr[T hwy.Lanes](a, b hwy.Vec[T], more ...hwy.Vec[T]) hwy.Vec[T] {
	return call(dispatch.Op(BitNotOr), a, b, more)
}

// NotOrMasked returns ^a | (b | ...) in the lanes selected by m and a
// elsewhere.
func NotOrMasked[T hwy.Lanes](m hwy.Mask[T], a, b hwy.Vec[T], more ...hwy.Vec[T]) hwy.Vec[T] {
	return call(dispatch.Op(BitNotOr).With(dispatch.Mask(hwy.MaskWide(m))), a, b, more)
}

// AndNot returns a & ^(b | ...).
func AndNot[T hwy.Lanes](a, b hwy.Vec[T], more ...hwy.Vec[T]) hwy.Vec[T] {
	return call(dispatch.Op(BitAndNot), a, b, more)
}

// OrNot returns a | ^(b & ...).
func OrNot[T hwy.Lanes](a, b hwy.Vec[T], more ...hwy.Vec[T]) hwy.Vec[T] {
	return call(dispatch.Op(BitOrNot), a, b, more)
}

// Not returns ^a.
func Not[T hwy.Lanes](a hwy.Vec[T]) hwy.Vec[T] {
	return mustVec[T](dispatch.Op(BitNot).MustCall(hwy.WideOf(a)))
}

func call[T hwy.Lanes](c dispatch.Callable, a, b hwy.Vec[T], more []hwy.Vec[T]) hwy.Vec[T] {
	args := make([]hwy.Wide, 0, 2+len(more))
	args = append(args, hwy.WideOf(a), hwy.WideOf(b))
	for _, v := range more {
		args = append(args, hwy.WideOf(v))
	}
	return mustVec[T](c.MustCall(args...))
}

func mustVec[T hwy.Lanes](w hwy.Wide) hwy.Vec[T] {
	v, err := hwy.VecFrom[T](w)
	if err != nil {
		panic(err)
	}
	return v
}
