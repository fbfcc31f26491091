// Package math provides transcendental operations on top of the dispatch
// layer.
//
// # Operations
//
//   - Sinh1: the constant sinh(1) in the element type named by a type tag.
//     It accepts a rounding option: Upward and Downward return the closest
//     representable values above and below the exact constant, ToNearest
//     (or no option) the nearest one. TowardZero equals Downward.
//   - Sinh: sinh(x) lane by lane on float values. It accepts a mask only.
//
// Both are registered as generic bindings; every target resolves to them
// through its fallback chain.
//
// # Typed Forms
//
//	v := math.SinhVec(hwy.Load([]float32{0, 1, 2, 3}))
//	hi := math.Sinh1Of[float32](dispatch.Upward)
package math
