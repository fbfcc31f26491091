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
	"strings"

	"github.com/go-highway/simdabi/hwy"
)

// Arity is the accepted argument count of an operation. Max < 0 means no
// upper bound.
type Arity struct {
	Min, Max int
}

// Exactly returns the arity of an operation taking n arguments.
func Exactly(n int) Arity { return Arity{Min: n, Max: n} }

// AtLeast returns the arity of a variadic operation taking n or more arguments.
func AtLeast(n int) Arity { return Arity{Min: n, Max: -1} }

// Between returns the arity of an operation taking lo to hi arguments.
func Between(lo, hi int) Arity { return Arity{Min: lo, Max: hi} }

// Admits reports whether n arguments are accepted.
func (a Arity) Admits(n int) bool {
	return n >= a.Min && (a.Max < 0 || n <= a.Max)
}

func (a Arity) String() string {
	switch {
	case a.Max < 0:
		return fmt.Sprintf("%d+", a.Min)
	case a.Min == a.Max:
		return fmt.Sprint(a.Min)
	}
	return fmt.Sprintf("%d..%d", a.Min, a.Max)
}

// Descriptor is the static description of an operation: its name, arity,
// result rule and the option categories it accepts. Descriptors are created
// by Declare and never change.
type Descriptor struct {
	name    string
	arity   Arity
	rule    ResultRule
	accepts [numCategories]bool
}

func newDescriptor(name string, arity Arity, rule ResultRule, categories ...Category) (*Descriptor, error) {
	if name == "" {
		return nil, fmt.Errorf("dispatch: empty operation name")
	}
	if arity.Min < 0 || (arity.Max >= 0 && arity.Max < arity.Min) {
		return nil, fmt.Errorf("dispatch: %s: invalid arity %d..%d", name, arity.Min, arity.Max)
	}
	d := &Descriptor{name: name, arity: arity, rule: rule}
	d.accepts[CategoryMask] = true
	for _, c := range categories {
		if c >= numCategories {
			return nil, fmt.Errorf("dispatch: %s: unknown option category %s", name, c)
		}
		d.accepts[c] = true
	}
	return d, nil
}

// Name returns the operation name.
func (d *Descriptor) Name() string { return d.name }

// Arity returns the accepted argument count.
func (d *Descriptor) Arity() Arity { return d.arity }

// Rule returns the result type rule.
func (d *Descriptor) Rule() ResultRule { return d.rule }

// Accepts reports whether options of category c may be applied.
func (d *Descriptor) Accepts(c Category) bool {
	return c < numCategories && d.accepts[c]
}

// Categories lists the accepted option categories.
func (d *Descriptor) Categories() []Category {
	var cats []Category
	for c := range numCategories {
		if d.accepts[c] {
			cats = append(cats, c)
		}
	}
	return cats
}

// CheckPattern fails with ErrUnsupportedOption if p uses a category d does
// not accept.
func (d *Descriptor) CheckPattern(p Pattern) error {
	for _, c := range p.Categories() {
		if !d.Accepts(c) {
			return fmt.Errorf("%w: %s does not accept %s options", ErrUnsupportedOption, d.name, c)
		}
	}
	return nil
}

// ResultType returns the result type of d applied to arguments of the
// given types.
func (d *Descriptor) ResultType(args []ArgType) (hwy.Type, error) {
	if !d.arity.Admits(len(args)) {
		return hwy.Type{}, fmt.Errorf("%w: %s takes %s, got %d", ErrArity, d.name, d.arity, len(args))
	}
	t, err := d.rule.Result(args)
	if err != nil {
		return hwy.Type{}, fmt.Errorf("%s%s: %w", d.name, formatArgs(args), err)
	}
	return t, nil
}

// String returns the operation name.
func (d *Descriptor) String() string {
	return d.name
}

func formatArgs(args []ArgType) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
