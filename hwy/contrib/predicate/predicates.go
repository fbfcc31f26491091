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

import "github.com/go-highway/simdabi/hwy"

// Predicate defines an operation that can test individual values or vectors.
type Predicate[T hwy.Lanes] interface {
	// Test returns true if the scalar value satisfies the predicate.
	Test(value T) bool

	// Apply returns a mask indicating which lanes satisfy the predicate.
	Apply(v hwy.Vec[T]) hwy.Mask[T]
}

// Preparable is an optional interface for predicates that can pre-compute
// comparison vectors for loops.
type Preparable[T hwy.Lanes] interface {
	Predicate[T]
	// Prepare returns a version of this predicate bound to vectors of
	// the given lane count.
	Prepare(lanes int) Predicate[T]
}

// EqualWithEqualNaNs is true for values equal to Value, or NaN when Value
// is NaN.
type EqualWithEqualNaNs[T hwy.Lanes] struct {
	Value T
}

func (p EqualWithEqualNaNs[T]) Test(value T) bool {
	return value == p.Value || (value != value && p.Value != p.Value)
}

func (p EqualWithEqualNaNs[T]) Apply(v hwy.Vec[T]) hwy.Mask[T] {
	return EqualNaN(v, hwy.SetN(p.Value, v.NumLanes()))
}

func (p EqualWithEqualNaNs[T]) Prepare(lanes int) Predicate[T] {
	return preparedEqual[T]{value: p.Value, valueVec: hwy.SetN(p.Value, lanes)}
}

type preparedEqual[T hwy.Lanes] struct {
	value    T
	valueVec hwy.Vec[T]
}

func (p preparedEqual[T]) Test(value T) bool {
	return value == p.value || (value != value && p.value != p.value)
}

func (p preparedEqual[T]) Apply(v hwy.Vec[T]) hwy.Mask[T] {
	if v.NumLanes() != p.valueVec.NumLanes() {
		return EqualNaN(v, hwy.SetN(p.value, v.NumLanes()))
	}
	return EqualNaN(v, p.valueVec)
}

// CountTrue returns how many elements of data satisfy p, applying it to
// vectors of lanes elements and to the tail one value at a time.
func CountTrue[T hwy.Lanes](data []T, lanes int, p Predicate[T]) int {
	if pp, ok := p.(Preparable[T]); ok {
		p = pp.Prepare(lanes)
	}
	n := 0
	hwy.ProcessWithTail(len(data), lanes,
		func(offset int) {
			n += p.Apply(hwy.LoadN(data[offset:], lanes)).CountTrue()
		},
		func(offset, count int) {
			for _, x := range data[offset : offset+count] {
				if p.Test(x) {
					n++
				}
			}
		},
	)
	return n
}
