package predicate

import (
	"fmt"
	stdmath "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-highway/simdabi/hwy"
	"github.com/go-highway/simdabi/hwy/dispatch"
)

func TestEqualNaNLaneCounts(t *testing.T) {
	nan := stdmath.NaN()
	for lanes := 1; lanes <= 64; lanes *= 2 {
		t.Run(fmt.Sprintf("lanes=%d", lanes), func(t *testing.T) {
			a := make([]float64, lanes)
			b := make([]float64, lanes)
			want := make([]bool, lanes)
			for i := range a {
				switch i % 4 {
				case 0:
					a[i], b[i], want[i] = float64(i), float64(i), true
				case 1:
					a[i], b[i], want[i] = nan, nan, true
				case 2:
					a[i], b[i], want[i] = nan, float64(i), false
				case 3:
					a[i], b[i], want[i] = float64(i), -float64(i), false
				}
			}
			m := EqualNaN(hwy.LoadN(a, lanes), hwy.LoadN(b, lanes))
			require.Equal(t, lanes, m.NumLanes())
			for i := range want {
				assert.Equal(t, want[i], m.GetBit(i), "lane %d", i)
			}
		})
	}
}

func TestEqualNaNSelf(t *testing.T) {
	v := hwy.LoadN([]float32{float32(stdmath.NaN()), 0, float32(stdmath.Inf(-1)), 1}, 4)
	assert.True(t, EqualNaN(v, v).AllTrue())
	assert.False(t, hwy.Equal(v, v).AllTrue(), "plain equality is false on NaN")
}

func TestEqualNaNSignedZero(t *testing.T) {
	a := hwy.LoadN([]float64{0}, 1)
	b := hwy.LoadN([]float64{stdmath.Copysign(0, -1)}, 1)
	assert.True(t, EqualNaN(a, b).GetBit(0))
}

func TestEqualNaNIntegers(t *testing.T) {
	a := hwy.LoadN([]int32{1, -2, 3, 4}, 4)
	b := hwy.LoadN([]int32{1, 2, 3, -4}, 4)
	m := EqualNaN(a, b)
	assert.Equal(t, []bool{true, false, true, false}, []bool{m.GetBit(0), m.GetBit(1), m.GetBit(2), m.GetBit(3)})
}

func TestResultType(t *testing.T) {
	a := hwy.WideOf(hwy.LoadN([]int16{1, 2, 3, 4}, 4))
	b := hwy.ScalarWide[float32](2)
	got, err := dispatch.Op(IsEqualWithEqualNaNs).Call(a, b)
	require.NoError(t, err)
	assert.Equal(t, hwy.LogicalOf(hwy.VectorOf(hwy.Float32, 4)), got.Type())
	assert.Equal(t, "logical<float32x4>{false, true, false, false}", got.String())

	reg := got.Type().Register(hwy.MustParseTarget("neon128"))
	assert.Equal(t, hwy.ResolveLogical(hwy.Float32, 4, hwy.MustParseTarget("neon128")), reg)
}

func TestMaskedCompare(t *testing.T) {
	nan := float32(stdmath.NaN())
	a := hwy.WideOf(hwy.LoadN([]float32{nan, 1, 2, 0}, 4))
	b := hwy.WideOf(hwy.LoadN([]float32{nan, 1, 5, 0}, 4))
	mask := hwy.MaskWide(hwy.MaskOf[float32](true, false, true, false))
	got, err := dispatch.Op(IsEqualWithEqualNaNs).With(dispatch.Mask(mask)).Call(a, b)
	require.NoError(t, err)
	// Inactive lanes hold the first argument converted to logical: non-zero is true.
	assert.Equal(t, "logical<float32x4>{true, true, false, false}", got.String())

	_, err = dispatch.Op(IsEqualWithEqualNaNs).With(dispatch.ToNearest).Call(a, b)
	assert.ErrorIs(t, err, dispatch.ErrUnsupportedOption)
	_, err = dispatch.Op(IsEqualWithEqualNaNs).Call(a)
	assert.ErrorIs(t, err, dispatch.ErrArity)
}

func TestPredicate(t *testing.T) {
	nan := stdmath.NaN()
	data := []float64{1, nan, 2, nan, nan, 3, 1, 1, nan}

	p := EqualWithEqualNaNs[float64]{Value: nan}
	assert.True(t, p.Test(nan))
	assert.False(t, p.Test(1))
	assert.Equal(t, 4, CountTrue[float64](data, 4, p))

	one := EqualWithEqualNaNs[float64]{Value: 1}
	assert.Equal(t, 3, CountTrue[float64](data, 2, one))
	assert.Equal(t, 3, CountTrue[float64](data, 16, one))

	ints := EqualWithEqualNaNs[uint8]{Value: 7}
	assert.Equal(t, 2, CountTrue[uint8]([]uint8{7, 0, 7, 1, 2}, 4, ints))
}
