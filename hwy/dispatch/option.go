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

// Category is an orthogonal dimension of operation options. At most one
// option per category may be active.
type Category uint8

const (
	// CategoryMask restricts an operation to the lanes selected by a mask.
	// Every operation accepts it.
	CategoryMask Category = iota

	// CategoryRounding selects a directional rounding mode.
	CategoryRounding

	// CategoryAccuracy trades accuracy for speed.
	CategoryAccuracy

	numCategories
)

func (c Category) String() string {
	switch c {
	case CategoryMask:
		return "mask"
	case CategoryRounding:
		return "rounding"
	case CategoryAccuracy:
		return "accuracy"
	default:
		return fmt.Sprintf("Category(%d)", uint8(c))
	}
}

// Option is a single decorator applied to an operation.
type Option interface {
	Category() Category
	apply(o *Options)
}

// Rounding is a directional rounding mode. The zero value means no
// rounding option.
type Rounding uint8

const (
	// ToNearest rounds to nearest, ties to even.
	ToNearest Rounding = iota + 1

	// Upward rounds toward positive infinity.
	Upward

	// Downward rounds toward negative infinity.
	Downward

	// TowardZero truncates.
	TowardZero
)

// Category implements Option.
func (Rounding) Category() Category { return CategoryRounding }

func (r Rounding) apply(o *Options) { o.rounding = r }

func (r Rounding) String() string {
	switch r {
	case 0:
		return ""
	case ToNearest:
		return "to_nearest"
	case Upward:
		return "upward"
	case Downward:
		return "downward"
	case TowardZero:
		return "toward_zero"
	default:
		return fmt.Sprintf("Rounding(%d)", uint8(r))
	}
}

// Accuracy selects between a fast and a fully conforming implementation.
// The zero value means no accuracy option.
type Accuracy uint8

const (
	// Raw allows reduced accuracy and skips special-value handling.
	Raw Accuracy = iota + 1

	// Pedantic conforms to IEEE 754 for every input.
	Pedantic
)

// Category implements Option.
func (Accuracy) Category() Category { return CategoryAccuracy }

func (a Accuracy) apply(o *Options) { o.accuracy = a }

func (a Accuracy) String() string {
	switch a {
	case 0:
		return ""
	case Raw:
		return "raw"
	case Pedantic:
		return "pedantic"
	default:
		return fmt.Sprintf("Accuracy(%d)", uint8(a))
	}
}

type maskOption struct {
	m hwy.Wide
}

// Mask returns the option restricting an operation to the true lanes of m.
// Inactive lanes take the first argument converted to the result type.
func Mask(m hwy.Wide) Option {
	return maskOption{m: m}
}

func (maskOption) Category() Category { return CategoryMask }

func (o maskOption) apply(opts *Options) {
	opts.mask = o.m
	opts.masked = true
}

// Options is a set of options with at most one per category. The zero
// value has no options.
type Options struct {
	masked   bool
	mask     hwy.Wide
	rounding Rounding
	accuracy Accuracy
}

// With composes opts into an option set. Two options of the same category
// fail with ErrConflictingOptions.
func With(opts ...Option) (Options, error) {
	return Options{}.With(opts...)
}

// With returns o extended by opts.
func (o Options) With(opts ...Option) (Options, error) {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if o.has(opt.Category()) {
			return o, fmt.Errorf("%w: two %s options", ErrConflictingOptions, opt.Category())
		}
		opt.apply(&o)
	}
	return o, nil
}

func (o Options) has(c Category) bool {
	switch c {
	case CategoryMask:
		return o.masked
	case CategoryRounding:
		return o.rounding != 0
	case CategoryAccuracy:
		return o.accuracy != 0
	}
	return false
}

// Mask returns the active mask, if any.
func (o Options) Mask() (hwy.Wide, bool) {
	return o.mask, o.masked
}

// Rounding returns the active rounding mode, or 0.
func (o Options) Rounding() Rounding {
	return o.rounding
}

// Accuracy returns the active accuracy option, or 0.
func (o Options) Accuracy() Accuracy {
	return o.accuracy
}

// WithoutMask returns o with the mask removed.
func (o Options) WithoutMask() Options {
	o.masked = false
	o.mask = hwy.Wide{}
	return o
}

// Pattern returns the static part of o: which options are active, without
// the mask value.
func (o Options) Pattern() Pattern {
	return Pattern{Masked: o.masked, Rounding: o.rounding, Accuracy: o.accuracy}
}

// Pattern is the static shape of an option set. Bindings are keyed by it.
// Pattern values are comparable with ==.
type Pattern struct {
	Masked   bool
	Rounding Rounding
	Accuracy Accuracy
}

// Categories lists the active categories in declaration order.
func (p Pattern) Categories() []Category {
	var cats []Category
	if p.Masked {
		cats = append(cats, CategoryMask)
	}
	if p.Rounding != 0 {
		cats = append(cats, CategoryRounding)
	}
	if p.Accuracy != 0 {
		cats = append(cats, CategoryAccuracy)
	}
	return cats
}

// WithoutMask returns p with the mask category cleared.
func (p Pattern) WithoutMask() Pattern {
	p.Masked = false
	return p
}

// String returns "plain" or the active options joined by "+",
// e.g. "mask+upward".
func (p Pattern) String() string {
	var parts []string
	if p.Masked {
		parts = append(parts, "mask")
	}
	if p.Rounding != 0 {
		parts = append(parts, p.Rounding.String())
	}
	if p.Accuracy != 0 {
		parts = append(parts, p.Accuracy.String())
	}
	if len(parts) == 0 {
		return "plain"
	}
	return strings.Join(parts, "+")
}
