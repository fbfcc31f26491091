package hwy

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTypeString(t *testing.T) {
	tests := []struct {
		typ  Type
		want string
	}{
		{ScalarOf(Int32), "int32"},
		{VectorOf(Float32, 4), "float32x4"},
		{LogicalOf(VectorOf(Uint8, 16)), "logical<uint8x16>"},
		{LogicalOf(ScalarOf(Float64)), "logical<float64>"},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("String: got %q, want %q", got, tt.want)
		}
	}
	if LogicalOf(VectorOf(Int8, 4)).Value() != VectorOf(Int8, 4) {
		t.Error("Value did not drop the logical marker")
	}
}

func TestTypeRegister(t *testing.T) {
	target := MustParseTarget("neon128+f64")
	if got := regName(VectorOf(Float64, 2).Register(target)); got != "float64x2_t" {
		t.Errorf("float64x2: got %s", got)
	}
	if got := regName(LogicalOf(VectorOf(Float64, 2)).Register(target)); got != "uint64x2_t" {
		t.Errorf("logical<float64x2>: got %s", got)
	}
	if got := regName(ScalarOf(Int16).Register(target)); got != "int16x4_t" {
		t.Errorf("int16 scalar: got %s", got)
	}
}

func TestWideRoundTrip(t *testing.T) {
	v := LoadN([]int8{-128, -1, 0, 127}, 4)
	w := WideOf(v)
	if got := w.String(); got != "int8x4{-128, -1, 0, 127}" {
		t.Errorf("String: got %q", got)
	}
	if w.Bits(0) != 0x80 || w.Bits(1) != 0xFF {
		t.Errorf("lane bits: got %#x %#x", w.Bits(0), w.Bits(1))
	}
	back, err := VecFrom[int8](w)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(v.Data(), back.Data()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
	if _, err := VecFrom[uint8](w); err == nil {
		t.Error("VecFrom with the wrong element type should fail")
	}

	m := MaskWide(MaskOf[uint16](true, false))
	if m.Bits(0) != 0xFFFF || m.Bits(1) != 0 {
		t.Errorf("mask bits: got %#x %#x", m.Bits(0), m.Bits(1))
	}
	if _, err := MaskFrom[uint16](w); err == nil {
		t.Error("MaskFrom of a value should fail")
	}
}

func TestNewWide(t *testing.T) {
	w, err := NewWide(VectorOf(Uint8, 2), []uint64{0x1FF, 2})
	if err != nil {
		t.Fatal(err)
	}
	if w.Bits(0) != 0xFF {
		t.Errorf("NewWide did not clear high bits: %#x", w.Bits(0))
	}
	if _, err := NewWide(VectorOf(Uint8, 2), []uint64{1}); err == nil {
		t.Error("NewWide accepted the wrong lane count")
	}
	s, err := NewWide(ScalarOf(Float32), []uint64{0x3F800000})
	if err != nil {
		t.Fatal(err)
	}
	if s.Float(5) != 1 {
		t.Errorf("scalar lane: got %v", s.Float(5))
	}
}

func TestBroadcastAndSelect(t *testing.T) {
	s := ScalarWide[int32](-5)
	v, err := s.Broadcast(4)
	if err != nil {
		t.Fatal(err)
	}
	if v.Type() != VectorOf(Int32, 4) || v.Int(3) != -5 {
		t.Errorf("Broadcast: got %s", v)
	}
	if _, err := v.Broadcast(8); err == nil {
		t.Error("vectors must not broadcast to another lane count")
	}
	if _, err := As(ScalarOf(Int32)).Broadcast(4); err == nil {
		t.Error("type tags must not broadcast")
	}

	other := WideOf(LoadN([]int32{0, 1, 2, 3}, 4))
	mask := MaskWide(MaskOf[int32](true, false, true, false))
	sel, err := Select(mask, v, other)
	if err != nil {
		t.Fatal(err)
	}
	want, _ := NewWide(VectorOf(Int32, 4), []uint64{0xFFFFFFFB, 1, 0xFFFFFFFB, 3})
	if !sel.Equal(want) {
		t.Errorf("Select: got %s, want %s", sel, want)
	}

	all, err := Select(MaskWide(MaskOf[int32](true)).lane0(), v, other)
	if err != nil {
		t.Fatal(err)
	}
	if !all.Equal(v) {
		t.Errorf("Select with a scalar mask: got %s", all)
	}

	if _, err := Select(mask, v, WideOf(LoadN([]int64{0, 1, 2, 3}, 4))); err == nil {
		t.Error("Select across types should fail")
	}
}

// lane0 returns lane 0 of w as a scalar.
func (w Wide) lane0() Wide {
	t := w.typ
	t.Lanes = 0
	return Wide{typ: t, bits: w.bits[:1]}
}

func TestWideTag(t *testing.T) {
	tag := As(VectorOf(Float32, 8))
	if !tag.IsTag() || tag.NumLanes() != 0 {
		t.Errorf("As: got tag=%v lanes=%d", tag.IsTag(), tag.NumLanes())
	}
	if got := tag.String(); got != "as<float32x8>" {
		t.Errorf("String: got %q", got)
	}
}
