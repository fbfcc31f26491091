// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package hwy

import (
	"fmt"

	"github.com/go-highway/simdabi/hwy/contrib/workerpool"
)

// MaxAuditLanes is the largest lane count covered by Queries.
const MaxAuditLanes = 128

// Query is one register resolution request.
type Query struct {
	Elem   ElementType
	Lanes  int
	Target Target
}

// Resolve answers q.
func (q Query) Resolve() RegisterKind {
	return Resolve(q.Elem, q.Lanes, q.Target)
}

func (q Query) String() string {
	return fmt.Sprintf("%sx%d on %s", q.Elem, q.Lanes, q.Target)
}

// Queries returns every element type with every lane count 1..maxLanes
// (including counts that are not powers of two) on every target.
func Queries(maxLanes int) []Query {
	targets := Targets()
	out := make([]Query, 0, len(ElementTypes)*maxLanes*len(targets))
	for _, t := range targets {
		for _, e := range ElementTypes {
			for n := 1; n <= maxLanes; n++ {
				out = append(out, Query{Elem: e, Lanes: n, Target: t})
			}
		}
	}
	return out
}

// FindingKind classifies an audit finding.
type FindingKind uint8

const (
	// NarrowingEmulated: a request is Emulated although a request for more
	// lanes of the same element is native.
	NarrowingEmulated FindingKind = iota

	// LogicalMismatch: the logical register differs from the register of
	// the unsigned integer of the same width.
	LogicalMismatch
)

func (k FindingKind) String() string {
	if k == LogicalMismatch {
		return "logical-mismatch"
	}
	return "narrowing-emulated"
}

// Finding is one audit result.
type Finding struct {
	Kind   FindingKind
	Query  Query
	Detail string
}

func (f Finding) String() string {
	return fmt.Sprintf("%s: %s: %s", f.Kind, f.Query, f.Detail)
}

// Audit checks the register tables of every target for lane counts
// 1..MaxAuditLanes and returns the findings in a stable order. The shipped
// tables produce none; Audit exists to keep it that way as tables change.
func Audit() []Finding {
	var findings []Finding
	for _, t := range Targets() {
		for _, e := range ElementTypes {
			widest := 0
			for n := MaxAuditLanes; n >= 1; n-- {
				if Resolve(e, n, t).IsNative() {
					widest = n
					break
				}
			}
			for n := 1; n < widest; n++ {
				if Resolve(e, n, t).IsEmulated() {
					findings = append(findings, Finding{
						Kind:   NarrowingEmulated,
						Query:  Query{Elem: e, Lanes: n, Target: t},
						Detail: fmt.Sprintf("%d lanes resolve to %s", widest, Resolve(e, widest, t)),
					})
				}
			}
			for n := 1; n <= MaxAuditLanes; n++ {
				got, want := ResolveLogical(e, n, t), Resolve(UnsignedOfSameWidth(e), n, t)
				if got != want {
					findings = append(findings, Finding{
						Kind:   LogicalMismatch,
						Query:  Query{Elem: e, Lanes: n, Target: t},
						Detail: fmt.Sprintf("got %s, want %s", got, want),
					})
				}
			}
		}
	}
	return findings
}

// VerifyDeterminism resolves every query twice, once sequentially and once
// concurrently on pool, and reports the first disagreement.
func VerifyDeterminism(pool *workerpool.Pool, queries []Query) error {
	want := make([]RegisterKind, len(queries))
	for i, q := range queries {
		want[i] = q.Resolve()
	}
	got := workerpool.Collect(pool, len(queries), func(i int) RegisterKind {
		return queries[i].Resolve()
	})
	for i := range queries {
		if got[i] != want[i] {
			return fmt.Errorf("hwy: %s resolved to %s and %s", queries[i], want[i], got[i])
		}
	}
	return nil
}
