package hwy

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func regName(k RegisterKind) string {
	r, ok := k.Register()
	if !ok {
		return "emulated"
	}
	return r.Name
}

func TestResolveScenarios(t *testing.T) {
	tests := []struct {
		name    string
		elem    ElementType
		lanes   int
		target  string
		want    string
		logical string
	}{
		{"int32x4 neon128", Int32, 4, "neon128", "int32x4_t", "uint32x4_t"},
		{"float64x1 neon64", Float64, 1, "neon64", "emulated", "uint64x1_t"},
		{"float64x1 neon64+f64", Float64, 1, "neon64+f64", "float64x1_t", "uint64x1_t"},
		{"uint8x32 neon128", Uint8, 32, "neon128", "emulated", "emulated"},
		{"float64x2 neon128+f64", Float64, 2, "neon128+f64", "float64x2_t", "uint64x2_t"},
		{"float64x2 neon128", Float64, 2, "neon128", "emulated", "uint64x2_t"},
		{"int8x8 neon128", Int8, 8, "neon128", "int8x8_t", "uint8x8_t"},
		{"int8x4 neon128", Int8, 4, "neon128", "int8x8_t", "uint8x8_t"},
		{"float16x8 neon128", Float16, 8, "neon128", "emulated", "uint16x8_t"},
		{"float16x8 neon128+fp16", Float16, 8, "neon128+fp16", "float16x8_t", "uint16x8_t"},
		{"float32x4 sse2", Float32, 4, "sse2", "__m128", "__m128i"},
		{"float32x2 sse2", Float32, 2, "sse2", "__m128", "__m128i"},
		{"float64x2 sse2", Float64, 2, "sse2", "__m128d", "__m128i"},
		{"float16x8 sse2", Float16, 8, "sse2", "emulated", "__m128i"},
		{"int32x8 avx2", Int32, 8, "avx2", "__m256i", "__m256i"},
		{"int32x4 avx2", Int32, 4, "avx2", "__m128i", "__m128i"},
		{"float64x8 avx2", Float64, 8, "avx2", "emulated", "emulated"},
		{"int8x64 avx512", Int8, 64, "avx512", "emulated", "emulated"},
		{"int8x64 avx512+bw", Int8, 64, "avx512+bw", "__m512i", "__m512i"},
		{"int8x32 avx512", Int8, 32, "avx512", "__m256i", "__m256i"},
		{"float32x16 avx512", Float32, 16, "avx512", "__m512", "__m512i"},
		{"float16x32 avx512+fp16", Float16, 32, "avx512+fp16+bw", "__m512h", "__m512i"},
		{"float16x32 avx512 no bw", Float16, 32, "avx512+fp16", "__m512h", "emulated"},
		{"int32x4 sve256", Int32, 4, "sve256", "svint32_t", "svuint32_t"},
		{"int32x8 sve256", Int32, 8, "sve256", "svint32_t", "svuint32_t"},
		{"int32x16 sve256", Int32, 16, "sve256", "emulated", "emulated"},
		{"float64x4 scalar", Float64, 4, "scalar", "emulated", "emulated"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := MustParseTarget(tt.target)
			if got := regName(Resolve(tt.elem, tt.lanes, target)); got != tt.want {
				t.Errorf("Resolve(%s, %d, %s): got %s, want %s", tt.elem, tt.lanes, target, got, tt.want)
			}
			if got := regName(ResolveLogical(tt.elem, tt.lanes, target)); got != tt.logical {
				t.Errorf("ResolveLogical(%s, %d, %s): got %s, want %s", tt.elem, tt.lanes, target, got, tt.logical)
			}
		})
	}
}

func TestResolveRegisterIdentity(t *testing.T) {
	target := MustParseTarget("avx2")
	s := Resolve(Int32, 8, target)
	u := Resolve(Uint32, 8, target)
	if regName(s) != regName(u) {
		t.Fatalf("spelling: got %s and %s, want the same", regName(s), regName(u))
	}
	if s == u {
		t.Errorf("int32x8 and uint32x8 share identity %v", s)
	}
	r, _ := s.Register()
	if r.Bits() != 256 || r.Lanes != 8 {
		t.Errorf("int32x8 register: got %d bits, %d lanes, want 256 bits, 8 lanes", r.Bits(), r.Lanes)
	}
	if got, want := s.String(), "__m256i<int32x8>"; got != want {
		t.Errorf("String: got %q, want %q", got, want)
	}
}

func TestResolveEmulatedInputs(t *testing.T) {
	target := MustParseTarget("neon128+f64")
	for _, lanes := range []int{-4, 0, 5, 12, 1 << 20} {
		if k := Resolve(Int32, lanes, target); !k.IsEmulated() {
			t.Errorf("Resolve(int32, %d): got %s, want emulated", lanes, k)
		}
	}
	if k := Resolve(ElementType{Kind: KindFloat, Width: 1}, 4, target); !k.IsEmulated() {
		t.Errorf("Resolve(invalid): got %s, want emulated", k)
	}
	if k := Resolve(Int32, 4, Target{ABI: ABIGeneric}); !k.IsEmulated() {
		t.Errorf("Resolve(generic): got %s, want emulated", k)
	}
	if k := Resolve(Int32, 4, Target{ABI: ABI(200)}); !k.IsEmulated() {
		t.Errorf("Resolve(unknown ABI): got %s, want emulated", k)
	}
	if Emulated.Capacity() != 0 || Emulated.IsNative() {
		t.Errorf("Emulated: got capacity %d native %v", Emulated.Capacity(), Emulated.IsNative())
	}
}

func TestResolveTotalAndDeterministic(t *testing.T) {
	for _, q := range Queries(MaxAuditLanes) {
		a, b := q.Resolve(), q.Resolve()
		if a != b {
			t.Fatalf("%s: got %s then %s", q, a, b)
		}
		if a.IsNative() {
			if a.Capacity() < q.Lanes {
				t.Errorf("%s: register %s holds only %d lanes", q, a, a.Capacity())
			}
			r, _ := a.Register()
			if r.Elem != q.Elem {
				t.Errorf("%s: register %s is for %s", q, a, r.Elem)
			}
			if r.Bits() > q.Target.ABI.Info().Bits {
				t.Errorf("%s: register %s wider than the ABI", q, a)
			}
		}
	}
}

func TestResolveMonotone(t *testing.T) {
	if findings := Audit(); len(findings) != 0 {
		for _, f := range findings {
			t.Error(f)
		}
	}

	// Every narrower request of a native shape stays native.
	for _, target := range Targets() {
		for _, e := range ElementTypes {
			for n := 1; n <= 64; n++ {
				if Resolve(e, n, target).IsEmulated() {
					continue
				}
				for m := 1; m < n; m++ {
					if k := Resolve(e, m, target); k.IsEmulated() {
						t.Errorf("%sx%d on %s: emulated, but %d lanes resolve to %s", e, m, target, n, Resolve(e, n, target))
					}
				}
			}
		}
	}
}

func TestResolveOddLaneCounts(t *testing.T) {
	tests := []struct {
		elem   ElementType
		lanes  int
		target string
		want   string
	}{
		{Int8, 7, "neon64", "int8x8_t"},
		{Int8, 5, "neon64", "int8x8_t"},
		{Int8, 3, "neon64", "int8x8_t"},
		{Int32, 3, "neon128", "int32x4_t"},
		{Int8, 9, "neon128", "int8x16_t"},
		{Int8, 12, "neon128", "int8x16_t"},
		{Int8, 17, "neon128", "emulated"},
		{Float32, 3, "sve256", "svfloat32_t"},
		{Float32, 7, "sve256", "svfloat32_t"},
		{Int32, 5, "avx2", "__m256i"},
		{Int32, 3, "avx2", "__m128i"},
		{Int8, 33, "avx512", "emulated"},
		{Int8, 33, "avx512+bw", "__m512i"},
		{Float64, 3, "neon128+f64", "emulated"},
	}
	for _, tt := range tests {
		target := MustParseTarget(tt.target)
		if got := regName(Resolve(tt.elem, tt.lanes, target)); got != tt.want {
			t.Errorf("Resolve(%s, %d, %s): got %s, want %s", tt.elem, tt.lanes, target, got, tt.want)
		}
	}
}

func TestResolveLogicalIsUnsigned(t *testing.T) {
	for _, q := range Queries(32) {
		got := ResolveLogical(q.Elem, q.Lanes, q.Target)
		want := Resolve(UnsignedOfSameWidth(q.Elem), q.Lanes, q.Target)
		if got != want {
			t.Errorf("ResolveLogical(%s): got %s, want %s", q, got, want)
		}
	}
}

func TestRegisterForGeneric(t *testing.T) {
	target := MustParseTarget("neon128")
	if got := regName(RegisterFor[int32](4, target)); got != "int32x4_t" {
		t.Errorf("RegisterFor[int32]: got %s, want int32x4_t", got)
	}
	if got := regName(LogicalRegisterFor[float32](4, target)); got != "uint32x4_t" {
		t.Errorf("LogicalRegisterFor[float32]: got %s, want uint32x4_t", got)
	}
	type celsius float32
	if got := regName(RegisterFor[celsius](2, target)); got != "float32x2_t" {
		t.Errorf("RegisterFor[celsius]: got %s, want float32x2_t", got)
	}
}

func TestTableNEON128(t *testing.T) {
	table := TableFor(ABINEON128)
	var got []string
	for _, e := range table.Entries() {
		if e.Elem == Int16 || e.Elem == Float64 {
			got = append(got, e.Bound.String()+" "+e.Register.Name+" "+e.Requires.String())
		}
	}
	want := []string{
		"<=4 int16x4_t ",
		"==8 int16x8_t ",
		"<=1 float64x1_t f64",
		"==2 float64x2_t f64",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("neon128 table mismatch (-want +got):\n%s", diff)
	}
}

func TestTablesValid(t *testing.T) {
	tables := Tables()
	if len(tables) != int(ABIGeneric) {
		t.Fatalf("Tables: got %d, want %d", len(tables), ABIGeneric)
	}
	for _, table := range tables {
		if err := table.validate(); err != nil {
			t.Errorf("%s: %v", table.ABI(), err)
		}
		if table.ABI() == ABIScalar {
			if table.Len() != 0 {
				t.Errorf("scalar table has %d entries", table.Len())
			}
			continue
		}
		for _, e := range table.Entries() {
			if e.Register.Bits()%64 != 0 {
				t.Errorf("%s: register %s is %d bits", table.ABI(), e.Register, e.Register.Bits())
			}
		}
	}
	if TableFor(ABIGeneric) != nil {
		t.Error("TableFor(generic) should be nil")
	}
}

func TestTableValidateRejects(t *testing.T) {
	bad := &Table{
		abi: ABISSE2,
		entries: []Entry{
			{Elem: Int32, Bound: Bound{Kind: AtMost, Lanes: 4}, Register: Register{Name: "__m128i", Elem: Int32, Lanes: 4}},
		},
		index: map[ElementType][2]int{Int32: {0, 1}},
	}
	if err := bad.validate(); err == nil {
		t.Error("validate accepted an upper bound at full width")
	}

	defer func() {
		if recover() == nil {
			t.Error("buildTable did not panic on overlapping tiers")
		}
	}()
	buildTable(ABINEON64, neonTier(64, AtMost), neonTier(64, AtMost))
}

func TestBoundAdmits(t *testing.T) {
	admitted := func(b Bound) []int {
		var got []int
		for n := -2; n <= 20; n++ {
			if b.Admits(n) {
				got = append(got, n)
			}
		}
		return got
	}
	if diff := cmp.Diff([]int{1, 2, 3, 4}, admitted(Bound{Kind: AtMost, Lanes: 4})); diff != "" {
		t.Errorf("<=4 mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{9, 10, 11, 12, 13, 14, 15, 16}, admitted(Bound{Kind: Exactly, Lanes: 16})); diff != "" {
		t.Errorf("==16 mismatch (-want +got):\n%s", diff)
	}
}
