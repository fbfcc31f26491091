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
	"strings"
)

//go:generate go tool stringer -type=ABI -linecomment

// ABI identifies one target vector extension together with the width class
// of its registers. The set is closed: tables exist for exactly these tags.
type ABI uint8

const (
	// ABIScalar has no SIMD registers; every shape is emulated.
	ABIScalar ABI = iota // scalar

	// ABINEON64 is the 64-bit register class of ARM Advanced SIMD.
	ABINEON64 // neon64

	// ABINEON128 is ARM Advanced SIMD with 64-bit and 128-bit registers.
	ABINEON128 // neon128

	// ABISVE128 is ARM SVE with a fixed 128-bit vector length.
	ABISVE128 // sve128

	// ABISVE256 is ARM SVE with a fixed 256-bit vector length.
	ABISVE256 // sve256

	// ABISVE512 is ARM SVE with a fixed 512-bit vector length.
	ABISVE512 // sve512

	// ABISSE2 is x86-64 SSE2 (128-bit registers).
	ABISSE2 // sse2

	// ABIAVX2 is x86-64 AVX2 (128-bit and 256-bit registers).
	ABIAVX2 // avx2

	// ABIAVX512 is x86-64 AVX-512 (128-bit to 512-bit registers).
	ABIAVX512 // avx512

	// ABIGeneric is not a target: dispatch bindings keyed to it are the
	// portable implementations usable on every target.
	ABIGeneric // generic
)

// Family groups ABIs that share an instruction set family.
type Family uint8

const (
	FamilyNone Family = iota
	FamilyARM
	FamilyX86
)

// String returns the family name.
func (f Family) String() string {
	switch f {
	case FamilyARM:
		return "arm"
	case FamilyX86:
		return "x86"
	default:
		return "none"
	}
}

// Capability is a set of optional instruction set extensions within an ABI.
// Registers whose table entry requires a capability are only native when
// the target enables it.
type Capability uint8

const (
	// CapFloat64 enables double-precision vector registers on ARM.
	CapFloat64 Capability = 1 << iota

	// CapFloat16 enables half-precision vector arithmetic.
	CapFloat16

	// CapAVX512BW enables 8-bit and 16-bit integer lanes in 512-bit registers.
	CapAVX512BW
)

var capabilityNames = []struct {
	c    Capability
	name string
}{
	{CapFloat64, "f64"},
	{CapFloat16, "fp16"},
	{CapAVX512BW, "bw"},
}

// Has reports whether every flag of f is set in c.
func (c Capability) Has(f Capability) bool {
	return c&f == f
}

// String joins the capability names with "+" ("f64+fp16").
func (c Capability) String() string {
	var parts []string
	for _, cn := range capabilityNames {
		if c&cn.c != 0 {
			parts = append(parts, cn.name)
		}
	}
	return strings.Join(parts, "+")
}

// ParseCapability parses a single capability name.
func ParseCapability(s string) (Capability, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, cn := range capabilityNames {
		if cn.name == name {
			return cn.c, nil
		}
	}
	return 0, fmt.Errorf("unknown capability: %q", s)
}

// ABIInfo describes the static properties of an ABI.
type ABIInfo struct {
	ABI    ABI
	Family Family

	// Bits is the width of the widest native register. The scalar ABI
	// reports 128 so lane counts stay consistent with SIMD targets.
	Bits int

	// Scalable ABIs use predicated registers: every tier serves any lane
	// count up to its capacity.
	Scalable bool

	// Narrow ABIs have a single register tier that serves every lane count
	// up to its capacity.
	Narrow bool

	// Kinds lists the element kinds that have at least one native register.
	Kinds KindSet

	// Caps lists the capability flags that affect this ABI's table.
	Caps Capability

	// Fallback is the next less specific ABI whose implementations can run
	// on this one, or ABIGeneric.
	Fallback ABI
}

var abiInfos = [...]ABIInfo{
	ABIScalar:  {ABI: ABIScalar, Family: FamilyNone, Bits: 128, Fallback: ABIGeneric},
	ABINEON64:  {ABI: ABINEON64, Family: FamilyARM, Bits: 64, Narrow: true, Kinds: AllKinds, Caps: CapFloat64 | CapFloat16, Fallback: ABIGeneric},
	ABINEON128: {ABI: ABINEON128, Family: FamilyARM, Bits: 128, Kinds: AllKinds, Caps: CapFloat64 | CapFloat16, Fallback: ABINEON64},
	ABISVE128:  {ABI: ABISVE128, Family: FamilyARM, Bits: 128, Scalable: true, Kinds: AllKinds, Fallback: ABINEON128},
	ABISVE256:  {ABI: ABISVE256, Family: FamilyARM, Bits: 256, Scalable: true, Kinds: AllKinds, Fallback: ABISVE128},
	ABISVE512:  {ABI: ABISVE512, Family: FamilyARM, Bits: 512, Scalable: true, Kinds: AllKinds, Fallback: ABISVE256},
	ABISSE2:    {ABI: ABISSE2, Family: FamilyX86, Bits: 128, Kinds: AllKinds, Fallback: ABIGeneric},
	ABIAVX2:    {ABI: ABIAVX2, Family: FamilyX86, Bits: 256, Kinds: AllKinds, Fallback: ABISSE2},
	ABIAVX512:  {ABI: ABIAVX512, Family: FamilyX86, Bits: 512, Kinds: AllKinds, Caps: CapFloat16 | CapAVX512BW, Fallback: ABIAVX2},
	ABIGeneric: {ABI: ABIGeneric, Family: FamilyNone, Bits: 128, Fallback: ABIGeneric},
}

// Valid reports whether a is a known ABI tag (including ABIGeneric).
func (a ABI) Valid() bool {
	return int(a) < len(abiInfos)
}

// Info returns the static description of a.
func (a ABI) Info() ABIInfo {
	if !a.Valid() {
		return ABIInfo{ABI: a, Bits: 128, Fallback: ABIGeneric}
	}
	return abiInfos[a]
}

// Chain returns a followed by its fallbacks, most specific first.
// ABIGeneric is not included.
func (a ABI) Chain() []ABI {
	var chain []ABI
	for cur := a; cur.Valid() && cur != ABIGeneric; cur = cur.Info().Fallback {
		chain = append(chain, cur)
	}
	return chain
}

// ABIs returns every concrete target ABI in declaration order.
func ABIs() []ABI {
	abis := make([]ABI, 0, ABIGeneric)
	for a := ABIScalar; a < ABIGeneric; a++ {
		abis = append(abis, a)
	}
	return abis
}

// ParseABI parses an ABI name such as "neon128" or "avx2".
func ParseABI(s string) (ABI, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for a := ABIScalar; a <= ABIGeneric; a++ {
		if a.String() == name {
			return a, nil
		}
	}
	return ABIScalar, fmt.Errorf("unknown ABI: %q (valid: %s)", s, strings.Join(abiNames(), ", "))
}

func abiNames() []string {
	names := make([]string, 0, ABIGeneric)
	for _, a := range ABIs() {
		names = append(names, a.String())
	}
	return names
}

// Target is the complete static description of a compilation target: an ABI
// and the optional extensions enabled for it. Register resolution is a pure
// function of a Target; nothing else is consulted.
type Target struct {
	ABI  ABI
	Caps Capability
}

// NewTarget returns a target for abi with the given capabilities. Flags that
// do not affect abi are dropped so equal targets compare equal.
func NewTarget(abi ABI, caps ...Capability) Target {
	var c Capability
	for _, f := range caps {
		c |= f
	}
	return Target{ABI: abi, Caps: c & abi.Info().Caps}
}

// Has reports whether the target enables capability c.
func (t Target) Has(c Capability) bool {
	return t.Caps.Has(c)
}

// With returns t with capability c enabled.
func (t Target) With(c Capability) Target {
	return NewTarget(t.ABI, t.Caps, c)
}

// Without returns t with capability c disabled.
func (t Target) Without(c Capability) Target {
	return Target{ABI: t.ABI, Caps: t.Caps &^ c}
}

// Width returns the widest register width in bytes.
func (t Target) Width() int {
	return t.ABI.Info().Bits / 8
}

// Name returns the ABI name.
func (t Target) Name() string {
	return t.ABI.String()
}

// String returns the ABI name followed by the enabled capabilities,
// e.g. "neon128+f64". ParseTarget accepts this format.
func (t Target) String() string {
	if t.Caps == 0 {
		return t.ABI.String()
	}
	return t.ABI.String() + "+" + t.Caps.String()
}

// ParseTarget parses "abi[+cap...]", e.g. "neon64+f64" or "avx512+bw+fp16".
// Capabilities that do not apply to the ABI are rejected.
func ParseTarget(s string) (Target, error) {
	parts := strings.Split(strings.TrimSpace(s), "+")
	abi, err := ParseABI(parts[0])
	if err != nil {
		return Target{}, err
	}
	if abi == ABIGeneric {
		return Target{}, fmt.Errorf("%q is not a compilation target", s)
	}
	t := Target{ABI: abi}
	for _, p := range parts[1:] {
		c, err := ParseCapability(p)
		if err != nil {
			return Target{}, err
		}
		if abi.Info().Caps&c == 0 {
			return Target{}, fmt.Errorf("capability %s does not apply to %s", c, abi)
		}
		t.Caps |= c
	}
	return t, nil
}

// MustParseTarget is like ParseTarget but panics on error.
func MustParseTarget(s string) Target {
	t, err := ParseTarget(s)
	if err != nil {
		panic(err)
	}
	return t
}

// Targets returns every ABI with each combination of its capability flags,
// in a stable order. It is the domain used by audits and exhaustive tests.
func Targets() []Target {
	var out []Target
	for _, a := range ABIs() {
		caps := a.Info().Caps
		for c := Capability(0); c <= caps; c++ {
			if c&^caps != 0 {
				continue
			}
			out = append(out, Target{ABI: a, Caps: c})
		}
	}
	return out
}
