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
	"cmp"
	"fmt"
	"slices"
)

// BoundKind selects how a table entry compares a requested lane count with
// its lane bound.
type BoundKind uint8

const (
	// AtMost entries serve any request up to the bound.
	AtMost BoundKind = iota

	// Exactly entries serve only requests that need the full register:
	// more than half the bound and at most the bound. A request rounded up
	// to a power of two must equal the bound.
	Exactly
)

// Bound is the lane-count condition of a register table entry.
type Bound struct {
	Kind  BoundKind
	Lanes int
}

// Admits reports whether a request for n lanes satisfies the bound.
func (b Bound) Admits(n int) bool {
	if b.Kind == Exactly {
		return n > b.Lanes/2 && n <= b.Lanes
	}
	return n > 0 && n <= b.Lanes
}

// String returns "<=N" or "==N".
func (b Bound) String() string {
	if b.Kind == Exactly {
		return fmt.Sprintf("==%d", b.Lanes)
	}
	return fmt.Sprintf("<=%d", b.Lanes)
}

// Entry is one row of a register table.
type Entry struct {
	Elem     ElementType
	Bound    Bound
	Requires Capability
	Register Register
}

// Table is the register table of one ABI.
//
// Entries live in a single slice sorted by element type and then by bound;
// the index maps each element type to its run of entries. Lookups walk that
// run in order and the first admitting entry wins.
type Table struct {
	abi     ABI
	entries []Entry
	index   map[ElementType][2]int
}

// ABI returns the ABI this table belongs to.
func (t *Table) ABI() ABI {
	return t.abi
}

// Entries returns a copy of the table rows in lookup order.
func (t *Table) Entries() []Entry {
	return slices.Clone(t.entries)
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.entries)
}

// Lookup returns the first entry for elem that admits lanes. The entry is
// returned even when caps lacks its required capability; the caller decides
// what that means.
func (t *Table) Lookup(elem ElementType, lanes int) (Entry, bool) {
	span, ok := t.index[elem]
	if !ok {
		return Entry{}, false
	}
	for _, e := range t.entries[span[0]:span[1]] {
		if e.Bound.Admits(lanes) {
			return e, true
		}
	}
	return Entry{}, false
}

func (t *Table) resolve(elem ElementType, lanes int, caps Capability) RegisterKind {
	e, ok := t.Lookup(elem, lanes)
	if !ok || !caps.Has(e.Requires) {
		return Emulated
	}
	return Native(e.Register)
}

// tier describes one register width of an ABI. entry names the register for
// an element type, or reports false when the tier has none for it.
type tier struct {
	bits    int
	regBits int
	bound   BoundKind
	entry   func(e ElementType, lanes int) (name string, requires Capability, ok bool)
}

func buildTable(abi ABI, tiers ...tier) *Table {
	t := &Table{abi: abi, index: make(map[ElementType][2]int)}
	for _, tr := range tiers {
		regBits := tr.regBits
		if regBits == 0 {
			regBits = tr.bits
		}
		for _, e := range ElementTypes {
			name, req, ok := tr.entry(e, tr.bits/e.Bits())
			if !ok {
				continue
			}
			t.entries = append(t.entries, Entry{
				Elem:     e,
				Bound:    Bound{Kind: tr.bound, Lanes: tr.bits / e.Bits()},
				Requires: req,
				Register: Register{Name: name, Elem: e, Lanes: regBits / e.Bits()},
			})
		}
	}
	slices.SortStableFunc(t.entries, func(a, b Entry) int {
		if c := cmp.Compare(elementOrder(a.Elem), elementOrder(b.Elem)); c != 0 {
			return c
		}
		return cmp.Compare(a.Bound.Lanes, b.Bound.Lanes)
	})
	for i, e := range t.entries {
		span, ok := t.index[e.Elem]
		if !ok {
			span[0] = i
		}
		span[1] = i + 1
		t.index[e.Elem] = span
	}
	if err := t.validate(); err != nil {
		panic(err)
	}
	return t
}

func elementOrder(e ElementType) int {
	return slices.Index(ElementTypes, e)
}

// validate checks the structural rules every table must follow:
//   - bounds strictly increase within an element's run;
//   - the widest tier of a fixed-width ABI is exact and every other tier is
//     an upper bound (narrow and scalable ABIs use upper bounds throughout);
//   - a register can hold at least as many lanes as its bound admits.
func (t *Table) validate() error {
	info := t.abi.Info()
	for elem, span := range t.index {
		run := t.entries[span[0]:span[1]]
		for i, e := range run {
			if i > 0 && run[i-1].Bound.Lanes >= e.Bound.Lanes {
				return fmt.Errorf("hwy: %s table: %s entries not strictly increasing at %s", t.abi, elem, e.Bound)
			}
			bits := e.Bound.Lanes * elem.Bits()
			if bits > info.Bits {
				return fmt.Errorf("hwy: %s table: %s entry %s exceeds %d bits", t.abi, elem, e.Bound, info.Bits)
			}
			want := AtMost
			if bits == info.Bits && !info.Narrow && !info.Scalable {
				want = Exactly
			}
			if e.Bound.Kind != want {
				return fmt.Errorf("hwy: %s table: %s entry %s has the wrong bound kind", t.abi, elem, e.Bound)
			}
			if e.Register.Lanes < e.Bound.Lanes {
				return fmt.Errorf("hwy: %s table: register %s cannot hold %s", t.abi, e.Register, e.Bound)
			}
			if e.Requires&^info.Caps != 0 {
				return fmt.Errorf("hwy: %s table: %s entry requires unknown capability %s", t.abi, elem, e.Requires)
			}
		}
	}
	return nil
}

// tables holds the register table of every concrete ABI. The tables are
// built once during package initialisation and never modified.
var tables = [ABIGeneric]*Table{
	ABIScalar:  buildTable(ABIScalar),
	ABINEON64:  buildTable(ABINEON64, neonTier(64, AtMost)),
	ABINEON128: buildTable(ABINEON128, neonTier(64, AtMost), neonTier(128, Exactly)),
	ABISVE128:  buildTable(ABISVE128, sveTier(128)),
	ABISVE256:  buildTable(ABISVE256, sveTier(256)),
	ABISVE512:  buildTable(ABISVE512, sveTier(512)),
	ABISSE2:    buildTable(ABISSE2, x86Tier(64, 128, AtMost, 0), x86Tier(128, 128, Exactly, 0)),
	ABIAVX2:    buildTable(ABIAVX2, x86Tier(128, 128, AtMost, 0), x86Tier(256, 256, Exactly, 0)),
	ABIAVX512: buildTable(ABIAVX512,
		x86Tier(128, 128, AtMost, CapFloat16),
		x86Tier(256, 256, AtMost, CapFloat16),
		x86Tier(512, 512, Exactly, CapFloat16|CapAVX512BW)),
}

// TableFor returns the register table of a concrete ABI, or nil.
func TableFor(abi ABI) *Table {
	if abi >= ABIGeneric {
		return nil
	}
	return tables[abi]
}

// Tables returns the register tables of every concrete ABI.
func Tables() []*Table {
	return slices.Clone(tables[:])
}

// Resolve returns the register kind that holds lanes elements of type elem
// on target t.
//
// Resolution is total and pure: it never fails, consults nothing but its
// arguments, and answers Emulated when
//   - elem is invalid or lanes is not positive,
//   - the ABI has no registers for elem's kind,
//   - no table entry admits the lane count, or
//   - the admitting entry needs a capability t does not enable.
//
// Register pairing beyond the widest native register is not supported; such
// requests are Emulated.
func Resolve(elem ElementType, lanes int, t Target) RegisterKind {
	if !elem.Valid() || lanes < 1 || t.ABI >= ABIGeneric {
		return Emulated
	}
	if !t.ABI.Info().Kinds.Has(elem.Kind) {
		return Emulated
	}
	return tables[t.ABI].resolve(elem, lanes, t.Caps)
}

// RegisterFor is Resolve for the element type of T.
func RegisterFor[T Lanes](lanes int, t Target) RegisterKind {
	return Resolve(ElementOf[T](), lanes, t)
}
