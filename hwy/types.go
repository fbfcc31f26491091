// Package hwy resolves portable SIMD operations to target registers.
//
// A vector shape is an element type and a lane count. For every shape and
// target ABI, Resolve deterministically picks the native register that holds
// it, or Emulated when the target has none. Masks (logical vectors) use the
// register of the unsigned integer of the same width.
//
// Basic usage:
//
//	import "github.com/go-highway/simdabi/hwy"
//
//	t := hwy.MustParseTarget("neon128+f64")
//	kind := hwy.Resolve(hwy.Int32, 4, t) // int32x4_t
//	mask := hwy.ResolveLogical(hwy.Int32, 4, t) // uint32x4_t
//
// Values that flow through the dispatch layer (package dispatch) use the
// emulated representation, Wide: one raw bit pattern per lane.
package hwy

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in SIMD lanes.
type Lanes interface {
	Floats | Integers
}

// Vec is a typed vector handle in the emulated representation: a fixed
// number of lanes stored as a plain slice.
//
// Vec instances should not be created directly; use Load, LoadN, Set or Zero.
type Vec[T Lanes] struct {
	data []T
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Data returns the underlying slice representation of the vector.
// This is primarily for testing and should not be used in performance-critical code.
func (v Vec[T]) Data() []T {
	return v.data
}

// Type returns the static type of the vector.
func (v Vec[T]) Type() Type {
	return VectorOf(ElementOf[T](), len(v.data))
}

// Register returns the register kind that holds this vector on target t.
func (v Vec[T]) Register(t Target) RegisterKind {
	return Resolve(ElementOf[T](), len(v.data), t)
}

// Store writes the vector's data to a slice.
// This is the method form of the hwy.Store function.
func (v Vec[T]) Store(dst []T) {
	n := min(len(dst), len(v.data))
	copy(dst[:n], v.data[:n])
}

// Mask represents the result of a comparison operation on Vec[T].
//
// Mask instances should not be created directly; use comparison operations
// like Equal, or FirstN.
type Mask[T Lanes] struct {
	bits []bool
}

// NumLanes returns the number of lanes in this mask.
func (m Mask[T]) NumLanes() int {
	return len(m.bits)
}

// AllTrue returns true if all lanes in the mask are active.
func (m Mask[T]) AllTrue() bool {
	for _, bit := range m.bits {
		if !bit {
			return false
		}
	}
	return true
}

// AnyTrue returns true if at least one lane in the mask is active.
func (m Mask[T]) AnyTrue() bool {
	for _, bit := range m.bits {
		if bit {
			return true
		}
	}
	return false
}

// CountTrue returns the number of active lanes in the mask.
func (m Mask[T]) CountTrue() int {
	count := 0
	for _, bit := range m.bits {
		if bit {
			count++
		}
	}
	return count
}

// GetBit returns whether lane i is active.
func (m Mask[T]) GetBit(i int) bool {
	if i < 0 || i >= len(m.bits) {
		return false
	}
	return m.bits[i]
}

// Register returns the logical register kind that holds this mask on target t.
func (m Mask[T]) Register(t Target) RegisterKind {
	return ResolveLogical(ElementOf[T](), len(m.bits), t)
}
