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

import (
	"strconv"
	"unsafe"
)

// Tag represents a vector size tag that determines how many lanes
// are used in SIMD operations. Target is a Tag.
type Tag interface {
	// Width returns the width in bytes (16 for 128-bit, 32 for 256-bit, etc.)
	Width() int

	// Name returns a human-readable name for this tag ("sse2", "avx2", etc.)
	Name() string
}

// ScalableTag adapts to the widest register of the default target.
//
// Usage:
//
//	tag := hwy.ScalableTag[float32]{}
//	maxLanes := tag.MaxLanes()
type ScalableTag[T Lanes] struct{}

// Width returns the default target's register width in bytes.
func (ScalableTag[T]) Width() int {
	return CurrentWidth()
}

// Name returns the default target's ABI name.
func (ScalableTag[T]) Name() string {
	return CurrentName()
}

// MaxLanes returns the maximum number of lanes for type T
// with the current SIMD width.
func (t ScalableTag[T]) MaxLanes() int {
	return MaxLanes[T]()
}

// Register returns the register holding MaxLanes lanes of T on the
// default target.
func (t ScalableTag[T]) Register() RegisterKind {
	return RegisterFor[T](t.MaxLanes(), DefaultTarget())
}

// FixedTag pins vectors of T to a register width in bits (128, 256 or
// 512) instead of the default target's.
//
//	tag := hwy.FixedTag[int32]{Bits: 128}
//	kind := tag.Register(hwy.MustParseTarget("avx2")) // __m128i
type FixedTag[T Lanes] struct {
	Bits int
}

// Width returns the width in bytes.
func (t FixedTag[T]) Width() int {
	return t.Bits / 8
}

// Name returns the width as "<bits>bit".
func (t FixedTag[T]) Name() string {
	return strconv.Itoa(t.Bits) + "bit"
}

// MaxLanes returns the number of T values that fit the width.
func (t FixedTag[T]) MaxLanes() int {
	var zero T
	return t.Width() / int(unsafe.Sizeof(zero))
}

// Register returns the register holding a full-width vector of T on
// target. A width the target cannot hold resolves to Emulated.
func (t FixedTag[T]) Register(target Target) RegisterKind {
	return RegisterFor[T](t.MaxLanes(), target)
}
