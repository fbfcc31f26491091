package hwy

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestElementOf(t *testing.T) {
	type meters float64
	tests := []struct {
		got, want ElementType
	}{
		{ElementOf[int8](), Int8},
		{ElementOf[int16](), Int16},
		{ElementOf[int32](), Int32},
		{ElementOf[int64](), Int64},
		{ElementOf[uint8](), Uint8},
		{ElementOf[uint16](), Uint16},
		{ElementOf[uint32](), Uint32},
		{ElementOf[uint64](), Uint64},
		{ElementOf[float32](), Float32},
		{ElementOf[float64](), Float64},
		{ElementOf[meters](), Float64},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("ElementOf: got %s, want %s", tt.got, tt.want)
		}
	}
}

func TestElementTypeStrings(t *testing.T) {
	var names []string
	for _, e := range ElementTypes {
		names = append(names, e.String())
		parsed, err := ParseElementType(e.String())
		if err != nil || parsed != e {
			t.Errorf("ParseElementType(%q): got %v, %v", e, parsed, err)
		}
	}
	want := []string{
		"int8", "int16", "int32", "int64",
		"uint8", "uint16", "uint32", "uint64",
		"float16", "float32", "float64",
	}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("element names mismatch (-want +got):\n%s", diff)
	}
	if _, err := ParseElementType("float8"); err == nil {
		t.Error("ParseElementType(float8) should fail")
	}
	if got := KindUnsigned.String(); got != "Unsigned" {
		t.Errorf("KindUnsigned.String(): got %q", got)
	}
}

func TestUnsignedOfSameWidth(t *testing.T) {
	for _, e := range ElementTypes {
		u := UnsignedOfSameWidth(e)
		if u.Kind != KindUnsigned || u.Width != e.Width || !u.Valid() {
			t.Errorf("UnsignedOfSameWidth(%s): got %s", e, u)
		}
		if s := SignedOfSameWidth(e); s.Kind != KindSigned || s.Width != e.Width {
			t.Errorf("SignedOfSameWidth(%s): got %s", e, s)
		}
	}
}

func TestPromote(t *testing.T) {
	tests := []struct {
		a, b, want ElementType
	}{
		{Int32, Int32, Int32},
		{Int8, Int32, Int32},
		{Uint64, Int16, Uint64},
		{Int32, Uint32, Uint32},
		{Uint8, Int8, Uint8},
		{Float32, Float64, Float64},
		{Float16, Float32, Float32},
		{Float32, Int64, Float64},
		{Float32, Int32, Float32},
		{Float16, Int8, Float32},
		{Float16, Uint16, Float32},
		{Float64, Uint8, Float64},
	}
	for _, tt := range tests {
		got := Promote(tt.a, tt.b)
		if got != tt.want {
			t.Errorf("Promote(%s, %s): got %s, want %s", tt.a, tt.b, got, tt.want)
		}
		if rev := Promote(tt.b, tt.a); rev != got {
			t.Errorf("Promote(%s, %s): got %s, not symmetric with %s", tt.b, tt.a, rev, got)
		}
	}
}
