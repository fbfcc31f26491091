package hwy

import (
	"math"
	"testing"
)

func TestLoad(t *testing.T) {
	data := []float32{1, 2, 3, 4, 5, 6, 7, 8}
	v := Load(data)

	if v.NumLanes() == 0 {
		t.Error("Load created empty vector")
	}

	for i := 0; i < v.NumLanes() && i < len(data); i++ {
		if v.data[i] != data[i] {
			t.Errorf("Load: lane %d: got %v, want %v", i, v.data[i], data[i])
		}
	}
}

func TestLoadN(t *testing.T) {
	v := LoadN([]int32{7, 8}, 4)
	if v.NumLanes() != 4 {
		t.Fatalf("LoadN: got %d lanes, want 4", v.NumLanes())
	}
	want := []int32{7, 8, 0, 0}
	for i := range want {
		if v.data[i] != want[i] {
			t.Errorf("LoadN: lane %d: got %v, want %v", i, v.data[i], want[i])
		}
	}
	if got := v.Type(); got != VectorOf(Int32, 4) {
		t.Errorf("Type: got %s, want int32x4", got)
	}
	if got := regName(v.Register(MustParseTarget("neon128"))); got != "int32x4_t" {
		t.Errorf("Register: got %s, want int32x4_t", got)
	}
}

func TestStore(t *testing.T) {
	v := LoadN([]uint16{0, 1, 2, 3, 4, 5, 6, 7}, 8)
	dst := make([]uint16, 5)
	Store(v, dst)
	for i := range dst {
		if dst[i] != uint16(i) {
			t.Errorf("Store: lane %d: got %v, want %v", i, dst[i], i)
		}
	}
}

func TestMaskOps(t *testing.T) {
	a := LoadN([]float64{1, math.NaN(), 3, 4}, 4)
	b := LoadN([]float64{1, 2, 0, 4}, 4)

	eq := Equal(a, b)
	if eq.CountTrue() != 2 || !eq.GetBit(0) || eq.GetBit(1) || !eq.GetBit(3) {
		t.Errorf("Equal: got %v", eq.bits)
	}

	first := FirstN[float64](4, 3)
	if first.CountTrue() != 3 || first.GetBit(3) || first.AllTrue() || !first.AnyTrue() {
		t.Errorf("FirstN(4, 3): got %v", first.bits)
	}
	if got := regName(first.Register(MustParseTarget("avx2"))); got != "__m256i" {
		t.Errorf("Mask.Register: got %s, want __m256i", got)
	}
}
