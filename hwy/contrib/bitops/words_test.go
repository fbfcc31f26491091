package bitops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-highway/simdabi/hwy"
	"github.com/go-highway/simdabi/hwy/dispatch"
)

// The register kernels reuse their scratch words, so allocations per call
// do not grow with the number of registers a vector spans.
func TestRegisterKernelAllocs(t *testing.T) {
	allocs := func(k dispatch.Kernel, masked bool, lanes int) float64 {
		var opts dispatch.Options
		if masked {
			var err error
			opts, err = dispatch.With(dispatch.Mask(hwy.MaskWide(hwy.FirstN[uint8](lanes, lanes/2))))
			require.NoError(t, err)
		}
		f := dispatch.Frame{
			Result:  hwy.VectorOf(hwy.Uint8, lanes),
			Options: opts,
			Args: []hwy.Wide{
				hwy.WideOf(hwy.SetN(uint8(0xF0), lanes)),
				hwy.WideOf(hwy.SetN(uint8(0x0F), lanes)),
				hwy.ScalarWide[uint8](0x11),
			},
		}
		_, err := k(f)
		require.NoError(t, err)
		return testing.AllocsPerRun(20, func() { _, _ = k(f) })
	}

	kernels := []struct {
		name   string
		kernel dispatch.Kernel
		masked bool
	}{
		{"neon128-words", registerKernel(hwy.ABINEON128, wordOps[BitNotOr]), false},
		{"sse2-words", registerKernel(hwy.ABISSE2, wordOps[BitXor]), false},
		{"neon128-bsl", maskedNotOr(hwy.ABINEON128), true},
	}
	for _, k := range kernels {
		oneReg := allocs(k.kernel, k.masked, 16)
		manyRegs := allocs(k.kernel, k.masked, 16*32)
		assert.Equal(t, oneReg, manyRegs, "%s: allocations grow with register count", k.name)
	}
}
