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

// This file provides pure Go implementations of the typed vector operations.
// They operate on the emulated representation; dispatch to register-specific
// kernels happens in package dispatch.

// Load creates a vector by loading data from a slice.
// The lane count is the number of T that fit the default target's widest
// register, or len(src) if that is smaller.
func Load[T Lanes](src []T) Vec[T] {
	n := min(len(src), MaxLanes[T]())
	data := make([]T, n)
	copy(data, src[:n])
	return Vec[T]{data: data}
}

// LoadN creates a vector of exactly lanes lanes from src. Lanes beyond
// len(src) are zero.
func LoadN[T Lanes](src []T, lanes int) Vec[T] {
	data := make([]T, lanes)
	copy(data, src)
	return Vec[T]{data: data}
}

// Store writes a vector's data to a slice.
func Store[T Lanes](v Vec[T], dst []T) {
	n := min(len(dst), len(v.data))
	copy(dst[:n], v.data[:n])
}

// SetN creates a vector of lanes lanes all set to value.
func SetN[T Lanes](value T, lanes int) Vec[T] {
	data := make([]T, lanes)
	for i := range data {
		data[i] = value
	}
	return Vec[T]{data: data}
}

// FirstN returns a mask of lanes lanes whose first n lanes are true.
func FirstN[T Lanes](lanes, n int) Mask[T] {
	bits := make([]bool, lanes)
	for i := 0; i < min(n, lanes); i++ {
		bits[i] = true
	}
	return Mask[T]{bits: bits}
}

// MaskOf returns a mask with the given lane values.
func MaskOf[T Lanes](bits ...bool) Mask[T] {
	return Mask[T]{bits: append([]bool(nil), bits...)}
}

// Equal performs element-wise equality comparison.
func Equal[T Lanes](a, b Vec[T]) Mask[T] {
	n := min(len(a.data), len(b.data))
	bits := make([]bool, n)
	for i := 0; i < n; i++ {
		bits[i] = a.data[i] == b.data[i]
	}
	return Mask[T]{bits: bits}
}
