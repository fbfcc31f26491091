package hwy

import (
	"testing"

	"github.com/go-highway/simdabi/hwy/contrib/workerpool"
)

func TestVerifyDeterminism(t *testing.T) {
	pool := workerpool.New(8)
	defer pool.Close()

	queries := Queries(MaxAuditLanes)
	if want := len(Targets()) * len(ElementTypes) * MaxAuditLanes; len(queries) != want {
		t.Fatalf("Queries: got %d, want %d", len(queries), want)
	}
	if err := VerifyDeterminism(pool, queries); err != nil {
		t.Error(err)
	}
}

func TestAuditFindingString(t *testing.T) {
	f := Finding{
		Kind:   NarrowingEmulated,
		Query:  Query{Elem: Int8, Lanes: 32, Target: MustParseTarget("avx512")},
		Detail: "64 lanes resolve to __m512i<int8x64>",
	}
	want := "narrowing-emulated: int8x32 on avx512: 64 lanes resolve to __m512i<int8x64>"
	if got := f.String(); got != want {
		t.Errorf("String: got %q, want %q", got, want)
	}
}
