package hwy

import "testing"

func TestFixedTag(t *testing.T) {
	tests := []struct {
		name   string
		tag    interface{ Register(Target) RegisterKind }
		target string
		want   string
	}{
		{"int32 128 on avx2", FixedTag[int32]{Bits: 128}, "avx2", "__m128i"},
		{"uint8 128 on neon128", FixedTag[uint8]{Bits: 128}, "neon128", "uint8x16_t"},
		{"float32 256 on neon128", FixedTag[float32]{Bits: 256}, "neon128", "emulated"},
		{"float32 512 on avx512", FixedTag[float32]{Bits: 512}, "avx512", "__m512"},
		{"float32 512 on avx2", FixedTag[float32]{Bits: 512}, "avx2", "emulated"},
	}
	for _, tt := range tests {
		if got := regName(tt.tag.Register(MustParseTarget(tt.target))); got != tt.want {
			t.Errorf("%s: got %s, want %s", tt.name, got, tt.want)
		}
	}

	var tag Tag = FixedTag[uint16]{Bits: 256}
	if tag.Width() != 32 || tag.Name() != "256bit" {
		t.Errorf("FixedTag: got width %d name %q", tag.Width(), tag.Name())
	}
	if got := (FixedTag[uint16]{Bits: 256}).MaxLanes(); got != 16 {
		t.Errorf("MaxLanes: got %d, want 16", got)
	}
}
