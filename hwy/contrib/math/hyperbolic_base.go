package math

import (
	"fmt"
	stdmath "math"
	"math/big"

	"github.com/go-highway/simdabi/hwy"
	"github.com/go-highway/simdabi/hwy/dispatch"
)

// Operation descriptors.
var (
	Sinh1 = dispatch.Declare("sinh1", dispatch.Exactly(1), dispatch.TypeTag, dispatch.CategoryRounding)
	Sinh  = dispatch.Declare("sinh", dispatch.Exactly(1), dispatch.CommonValue)
)

var (
	floatTag    = dispatch.ArgPattern{Elems: dispatch.FloatElems, Forms: dispatch.FormTag}
	floatValues = dispatch.ArgPattern{Elems: dispatch.FloatElems, Forms: dispatch.ValueForms}
)

func init() {
	dispatch.MustRegister(dispatch.Binding{
		Op: Sinh1, ABI: hwy.ABIGeneric, Args: floatTag, Name: "const", Kernel: sinh1Kernel,
	})
	for _, r := range []dispatch.Rounding{dispatch.ToNearest, dispatch.Upward, dispatch.Downward, dispatch.TowardZero} {
		dispatch.MustRegister(dispatch.Binding{
			Op:      Sinh1,
			ABI:     hwy.ABIGeneric,
			Pattern: dispatch.Pattern{Rounding: r},
			Args:    floatTag,
			Name:    "const-" + r.String(),
			Kernel:  sinh1Kernel,
		})
	}
	dispatch.MustRegister(dispatch.Binding{
		Op: Sinh, ABI: hwy.ABIGeneric, Args: floatValues, Name: "lanes", Kernel: sinhLanes,
	})
}

// sinh1Kernel fills every lane of the result with sinh(1) rounded as the
// frame's rounding option asks.
func sinh1Kernel(f dispatch.Frame) (hwy.Wide, error) {
	if f.Result.Logical {
		return hwy.Wide{}, fmt.Errorf("math: sinh1 of logical type %s", f.Result)
	}
	bits := RoundConstant(f.Result.Elem, sinh1Exact, f.Options.Rounding())
	return hwy.Build(f.Result, func(int) uint64 { return bits }), nil
}

// RoundConstant returns the bit pattern of the positive constant c in the
// float element type e under rounding r. The zero rounding and ToNearest
// give the nearest value; Upward and Downward step one ulp when the nearest
// value lies on the wrong side of c.
func RoundConstant(e hwy.ElementType, c *big.Float, r dispatch.Rounding) uint64 {
	nearest, _ := c.Float64()
	bits := hwy.FloatBits(e, nearest)
	decoded, err := hwy.NewWide(hwy.ScalarOf(e), []uint64{bits})
	if err != nil {
		panic(err)
	}
	cmp := new(big.Float).SetFloat64(decoded.Float(0)).Cmp(c)
	switch r {
	case dispatch.Upward:
		if cmp < 0 {
			bits++
		}
	case dispatch.Downward, dispatch.TowardZero:
		if cmp > 0 {
			bits--
		}
	}
	return bits
}

func sinhLanes(f dispatch.Frame) (hwy.Wide, error) {
	x, err := hwy.Convert(f.Args[0], f.Result)
	if err != nil {
		return hwy.Wide{}, err
	}
	e := f.Result.Elem
	return hwy.Build(f.Result, func(i int) uint64 {
		return hwy.FloatBits(e, stdmath.Sinh(x.Float(i)))
	}), nil
}
