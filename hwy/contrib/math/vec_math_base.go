package math

import (
	"github.com/go-highway/simdabi/hwy"
	"github.com/go-highway/simdabi/hwy/dispatch"
)

// SinhVec computes sinh(x) for each lane of v on the default target.
func SinhVec[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	return mustVec[T](dispatch.Op(Sinh).MustCall(hwy.WideOf(v)))
}

// SinhMasked computes sinh(x) in the lanes selected by m and keeps v
// elsewhere.
func SinhMasked[T hwy.Floats](m hwy.Mask[T], v hwy.Vec[T]) hwy.Vec[T] {
	return mustVec[T](dispatch.Op(Sinh).With(dispatch.Mask(hwy.MaskWide(m))).MustCall(hwy.WideOf(v)))
}

// Sinh1Of returns sinh(1) as a T. With no rounding option the value is
// rounded to nearest.
func Sinh1Of[T hwy.Floats](opts ...dispatch.Option) T {
	e := hwy.ElementOf[T]()
	w := dispatch.Op(Sinh1).With(opts...).MustCall(hwy.As(hwy.ScalarOf(e)))
	return T(w.Float(0))
}

func mustVec[T hwy.Lanes](w hwy.Wide) hwy.Vec[T] {
	v, err := hwy.VecFrom[T](w)
	if err != nil {
		panic(err)
	}
	return v
}
