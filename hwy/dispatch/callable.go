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

	"github.com/go-highway/simdabi/hwy"
)

// Callable is an operation with a target and options attached. Callables
// are values: With and On return modified copies.
//
//	v, err := dispatch.Op(bitops.NotOr).With(dispatch.Mask(m)).Call(a, b, c)
type Callable struct {
	reg    *Registry
	op     *Descriptor
	target hwy.Target
	opts   Options
	err    error
}

// Op returns a callable for op in the Default registry on the default target.
func Op(op *Descriptor) Callable {
	return Default.Op(op)
}

// Op returns a callable for op in r on the default target.
func (r *Registry) Op(op *Descriptor) Callable {
	return Callable{reg: r, op: op, target: hwy.DefaultTarget()}
}

// With returns c with opts added. Conflicting options and options the
// operation does not accept are reported by Bind and Call.
func (c Callable) With(opts ...Option) Callable {
	if c.err != nil {
		return c
	}
	for _, opt := range opts {
		if opt != nil && !c.op.Accepts(opt.Category()) {
			c.err = fmt.Errorf("%w: %s does not accept %s options", ErrUnsupportedOption, c.op, opt.Category())
			return c
		}
	}
	c.opts, c.err = c.opts.With(opts...)
	return c
}

// On returns c resolving for target t.
func (c Callable) On(t hwy.Target) Callable {
	c.target = t
	return c
}

// Options returns the accumulated options.
func (c Callable) Options() Options {
	return c.opts
}

// Err returns the first error recorded by With.
func (c Callable) Err() error {
	return c.err
}

// Bind resolves c for arguments of the given types.
func (c Callable) Bind(args ...ArgType) (*Resolved, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.reg.Bind(c.op, c.target, c.opts.Pattern(), args)
}

// Call resolves c for the argument types and runs the implementation.
func (c Callable) Call(args ...hwy.Wide) (hwy.Wide, error) {
	res, err := c.Bind(TypesOf(args...)...)
	if err != nil {
		return hwy.Wide{}, err
	}
	return res.Call(c.opts, args...)
}

// MustCall is like Call but panics on error.
func (c Callable) MustCall(args ...hwy.Wide) hwy.Wide {
	v, err := c.Call(args...)
	if err != nil {
		panic(err)
	}
	return v
}
