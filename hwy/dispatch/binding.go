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

package dispatch

import (
	"fmt"
	"slices"
	"strings"

	"github.com/go-highway/simdabi/hwy"
)

// Frame is everything a kernel sees for one call.
type Frame struct {
	// Result is the resolved result type.
	Result hwy.Type

	// Options holds the active options. A kernel reached through the
	// generic mask wrapper sees them without the mask.
	Options Options

	// Target is the target the call was resolved for.
	Target hwy.Target

	// Args are the call arguments.
	Args []hwy.Wide
}

// Kernel is one implementation of an operation.
type Kernel func(f Frame) (hwy.Wide, error)

// ElemSet is a set of element types. The zero value means every type.
type ElemSet uint16

// Elems returns the set of the given element types.
func Elems(elems ...hwy.ElementType) ElemSet {
	var s ElemSet
	for _, e := range elems {
		if i := slices.Index(hwy.ElementTypes, e); i >= 0 {
			s |= 1 << i
		}
	}
	return s
}

// Predefined element sets.
var (
	AllElems     = ElemSet(1<<len(hwy.ElementTypes) - 1)
	IntegerElems = Elems(hwy.Int8, hwy.Int16, hwy.Int32, hwy.Int64, hwy.Uint8, hwy.Uint16, hwy.Uint32, hwy.Uint64)
	FloatElems   = Elems(hwy.Float16, hwy.Float32, hwy.Float64)
)

func (s ElemSet) norm() ElemSet {
	if s == 0 {
		return AllElems
	}
	return s
}

// Has reports whether e is in s.
func (s ElemSet) Has(e hwy.ElementType) bool {
	i := slices.Index(hwy.ElementTypes, e)
	return i >= 0 && s.norm()&(1<<i) != 0
}

func (s ElemSet) String() string {
	if s.norm() == AllElems {
		return "any"
	}
	var names []string
	for i, e := range hwy.ElementTypes {
		if s&(1<<i) != 0 {
			names = append(names, e.String())
		}
	}
	return strings.Join(names, "|")
}

// Form is the shape of an argument.
type Form uint8

const (
	FormScalar Form = 1 << iota
	FormVector
	FormLogicalScalar
	FormLogicalVector
	FormTag
)

// FormSet is a set of forms. The zero value means every form.
type FormSet = Form

// Predefined form sets.
const (
	AllForms     = FormScalar | FormVector | FormLogicalScalar | FormLogicalVector | FormTag
	ValueForms   = FormScalar | FormVector
	LogicalForms = FormLogicalScalar | FormLogicalVector
)

// FormOf returns the form of an argument type.
func FormOf(a ArgType) Form {
	switch {
	case a.Tag:
		return FormTag
	case a.Type.Logical && a.Type.IsScalar():
		return FormLogicalScalar
	case a.Type.Logical:
		return FormLogicalVector
	case a.Type.IsScalar():
		return FormScalar
	}
	return FormVector
}

func (f Form) norm() Form {
	if f == 0 {
		return AllForms
	}
	return f
}

func (f Form) String() string {
	if f.norm() == AllForms {
		return "any"
	}
	var names []string
	for _, n := range []struct {
		f    Form
		name string
	}{
		{FormScalar, "scalar"},
		{FormVector, "vector"},
		{FormLogicalScalar, "logical-scalar"},
		{FormLogicalVector, "logical-vector"},
		{FormTag, "tag"},
	} {
		if f&n.f != 0 {
			names = append(names, n.name)
		}
	}
	return strings.Join(names, "|")
}

// ArgPattern constrains the arguments a binding accepts: every argument's
// element type must be in Elems and its form in Forms. The zero value
// accepts any arguments.
type ArgPattern struct {
	Elems ElemSet
	Forms FormSet
}

// AnyArgs accepts every argument list.
var AnyArgs = ArgPattern{}

// Matches reports whether every argument type matches p.
func (p ArgPattern) Matches(args []ArgType) bool {
	for _, a := range args {
		if !p.Elems.Has(a.Type.Elem) || p.Forms.norm()&FormOf(a) == 0 {
			return false
		}
	}
	return true
}

// SubsetOf reports whether every argument p accepts is accepted by q.
func (p ArgPattern) SubsetOf(q ArgPattern) bool {
	pe, qe := p.Elems.norm(), q.Elems.norm()
	pf, qf := p.Forms.norm(), q.Forms.norm()
	return pe&^qe == 0 && pf&^qf == 0
}

func (p ArgPattern) key() ArgPattern {
	return ArgPattern{Elems: p.Elems.norm(), Forms: p.Forms.norm()}
}

func (p ArgPattern) String() string {
	return fmt.Sprintf("elems=%s forms=%s", p.Elems, p.Forms)
}

// Binding associates an implementation with an operation, an ABI (or
// hwy.ABIGeneric), an option pattern and an argument pattern.
type Binding struct {
	Op      *Descriptor
	ABI     hwy.ABI
	Pattern Pattern
	Args    ArgPattern

	// Requires lists target capabilities the kernel relies on. Targets
	// without them skip the binding.
	Requires hwy.Capability

	// Name labels the binding in traces and listings.
	Name string

	Kernel Kernel
}

func (b *Binding) String() string {
	name := b.Name
	if name == "" {
		name = "<unnamed>"
	}
	s := fmt.Sprintf("%s[%s] on %s: %s (%s)", b.Op, b.Pattern, b.ABI, name, b.Args)
	if b.Requires != 0 {
		s += " requires " + b.Requires.String()
	}
	return s
}
