// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"fmt"
	"runtime"
	"sync/atomic"
	"testing"
)

func TestNumWorkers(t *testing.T) {
	for _, tt := range []struct{ requested, want int }{
		{4, 4},
		{1, 1},
		{0, runtime.GOMAXPROCS(0)},
		{-3, runtime.GOMAXPROCS(0)},
	} {
		pool := New(tt.requested)
		if got := pool.NumWorkers(); got != tt.want {
			t.Errorf("New(%d).NumWorkers() = %d, want %d", tt.requested, got, tt.want)
		}
		pool.Close()
	}
}

func TestParallelForAtomicVisitsEachIndexOnce(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	for _, n := range []int{-1, 0, 1, 3, 4, 1000} {
		visits := make([]atomic.Int32, max(n, 0))
		pool.ParallelForAtomic(n, func(i int) { visits[i].Add(1) })
		for i := range visits {
			if got := visits[i].Load(); got != 1 {
				t.Errorf("n=%d: index %d visited %d times", n, i, got)
			}
		}
	}
}

func TestClosedPoolRunsInline(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close()

	var order []int
	pool.ParallelForAtomic(5, func(i int) { order = append(order, i) })
	for i, got := range order {
		if got != i {
			t.Fatalf("closed pool order = %v, want 0..4", order)
		}
	}
	if len(order) != 5 {
		t.Errorf("closed pool ran %d calls, want 5", len(order))
	}
}

func TestCollect(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	got := Collect(pool, 257, func(i int) string {
		return fmt.Sprintf("lane%d", i)
	})
	if len(got) != 257 {
		t.Fatalf("len(Collect) = %d, want 257", len(got))
	}
	for i, s := range got {
		if want := fmt.Sprintf("lane%d", i); s != want {
			t.Errorf("Collect[%d] = %q, want %q", i, s, want)
		}
	}
}

func TestCollectMatchesSequential(t *testing.T) {
	pool := New(8)
	defer pool.Close()

	fn := func(i int) int { return (i * 7919) % 113 }
	got := Collect(pool, 1000, fn)
	for i := range 1000 {
		if got[i] != fn(i) {
			t.Fatalf("Collect[%d] = %d, want %d", i, got[i], fn(i))
		}
	}
}

func TestCollectClosedPool(t *testing.T) {
	pool := New(4)
	pool.Close()

	got := Collect(pool, 10, func(i int) int { return i + 1 })
	for i, v := range got {
		if v != i+1 {
			t.Errorf("Collect[%d] = %d, want %d", i, v, i+1)
		}
	}
	if n := len(Collect(pool, 0, func(i int) int { return i })); n != 0 {
		t.Errorf("len(Collect(0)) = %d, want 0", n)
	}
}
