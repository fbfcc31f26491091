package hwy

import (
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseTarget(t *testing.T) {
	tests := []struct {
		in   string
		want Target
	}{
		{"scalar", Target{ABI: ABIScalar}},
		{"neon128+f64", Target{ABI: ABINEON128, Caps: CapFloat64}},
		{" NEON64+F64 ", Target{ABI: ABINEON64, Caps: CapFloat64}},
		{"avx512+bw+fp16", Target{ABI: ABIAVX512, Caps: CapAVX512BW | CapFloat16}},
		{"sve256", Target{ABI: ABISVE256}},
	}
	for _, tt := range tests {
		got, err := ParseTarget(tt.in)
		if err != nil {
			t.Errorf("ParseTarget(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseTarget(%q): got %v, want %v", tt.in, got, tt.want)
		}
	}

	for _, bad := range []string{"", "neon256", "generic", "sse2+f64", "avx2+bw", "neon128+sve"} {
		if _, err := ParseTarget(bad); err == nil {
			t.Errorf("ParseTarget(%q): expected an error", bad)
		}
	}
}

func TestTargetString(t *testing.T) {
	for _, target := range Targets() {
		back, err := ParseTarget(target.String())
		if err != nil {
			t.Errorf("ParseTarget(%q): %v", target, err)
			continue
		}
		if back != target {
			t.Errorf("round trip of %q: got %v", target, back)
		}
	}
	if got := NewTarget(ABINEON128, CapFloat64, CapAVX512BW); got.String() != "neon128+f64" {
		t.Errorf("NewTarget dropped caps: got %s", got)
	}
}

func TestTargetCaps(t *testing.T) {
	target := NewTarget(ABINEON64)
	if target.Has(CapFloat64) {
		t.Error("neon64 should not enable f64 by default")
	}
	target = target.With(CapFloat64)
	if !target.Has(CapFloat64) {
		t.Error("With(f64) did not enable f64")
	}
	if target.Without(CapFloat64).Has(CapFloat64) {
		t.Error("Without(f64) did not disable f64")
	}
	if got := target.Width(); got != 8 {
		t.Errorf("neon64 Width: got %d, want 8", got)
	}
	var tag Tag = target
	if tag.Name() != "neon64" {
		t.Errorf("Tag name: got %q", tag.Name())
	}
}

func TestABIChain(t *testing.T) {
	tests := []struct {
		abi  ABI
		want []ABI
	}{
		{ABIAVX512, []ABI{ABIAVX512, ABIAVX2, ABISSE2}},
		{ABISVE512, []ABI{ABISVE512, ABISVE256, ABISVE128, ABINEON128, ABINEON64}},
		{ABINEON128, []ABI{ABINEON128, ABINEON64}},
		{ABIScalar, []ABI{ABIScalar}},
		{ABIGeneric, nil},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, tt.abi.Chain()); diff != "" {
			t.Errorf("%s.Chain() mismatch (-want +got):\n%s", tt.abi, diff)
		}
	}
}

func TestABIStrings(t *testing.T) {
	for a := ABIScalar; a <= ABIGeneric; a++ {
		back, err := ParseABI(a.String())
		if err != nil || back != a {
			t.Errorf("ParseABI(%q): got %v, %v", a, back, err)
		}
	}
	if got := ABI(42).String(); got != "ABI(42)" {
		t.Errorf("ABI(42).String(): got %q", got)
	}
}

func TestDefaultTarget(t *testing.T) {
	target := DefaultTarget()
	if os.Getenv("HWY_TARGET") == "" && !NoSimdEnv() && target != BuildTarget() {
		t.Errorf("DefaultTarget: got %s, want build target %s", target, BuildTarget())
	}
	if CurrentWidth() != target.Width() || CurrentName() != target.ABI.String() {
		t.Errorf("CurrentWidth/CurrentName disagree with %s", target)
	}
	if !HostSupports(Target{ABI: ABIScalar}) {
		t.Error("HostSupports(scalar) should always be true")
	}
	if MaxLanes[float32]() != CurrentWidth()/4 {
		t.Errorf("MaxLanes[float32]: got %d", MaxLanes[float32]())
	}
}

func TestNoSimdEnv(t *testing.T) {
	for _, tt := range []struct {
		val  string
		want bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"yes", true},
		{"0", false},
		{"false", false},
		{"off", false},
	} {
		t.Setenv("HWY_NO_SIMD", tt.val)
		if got := NoSimdEnv(); got != tt.want {
			t.Errorf("HWY_NO_SIMD=%q: NoSimdEnv() = %v, want %v", tt.val, got, tt.want)
		}
	}
}
