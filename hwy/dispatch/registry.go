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
	"cmp"
	"fmt"
	"log"
	"os"
	"slices"
	"sync"

	"github.com/samber/lo"
	"github.com/xyproto/env/v2"

	"github.com/go-highway/simdabi/hwy"
)

// Registry holds operation descriptors and their bindings.
//
// Registration happens during package initialisation. The first resolution
// seals the registry: later Declare and Register calls fail with ErrSealed,
// so every resolution observes the same set of bindings.
type Registry struct {
	mu       sync.RWMutex
	sealed   bool
	ops      map[string]*Descriptor
	bindings map[bindingKey][]*Binding
	memo     map[memoKey]*Resolved
	logger   *log.Logger
}

type bindingKey struct {
	op      *Descriptor
	abi     hwy.ABI
	pattern Pattern
}

// Default is the registry used by the package-level functions and by the
// kernel packages under hwy/contrib.
var Default = NewRegistry()

// NewRegistry returns an empty registry. Resolution decisions are logged to
// stderr when HWY_TRACE_DISPATCH is set.
func NewRegistry() *Registry {
	r := &Registry{
		ops:      make(map[string]*Descriptor),
		bindings: make(map[bindingKey][]*Binding),
		memo:     make(map[memoKey]*Resolved),
	}
	if env.Bool("HWY_TRACE_DISPATCH") {
		r.logger = log.New(os.Stderr, "hwy/dispatch: ", log.Lmsgprefix)
	}
	return r
}

// SetLogger sets the logger for resolution traces. nil disables tracing.
func (r *Registry) SetLogger(l *log.Logger) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logger = l
}

func (r *Registry) tracef(format string, args ...any) {
	if r.logger != nil {
		r.logger.Printf(format, args...)
	}
}

// Declare declares an operation. Masking is always accepted; categories
// lists the other option categories the operation supports.
func (r *Registry) Declare(name string, arity Arity, rule ResultRule, categories ...Category) (*Descriptor, error) {
	d, err := newDescriptor(name, arity, rule, categories...)
	if err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sealed {
		return nil, fmt.Errorf("%w: declare %s", ErrSealed, name)
	}
	if _, ok := r.ops[name]; ok {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateOperation, name)
	}
	r.ops[name] = d
	return d, nil
}

// MustDeclare is like Declare but panics on error. Use it from init().
func (r *Registry) MustDeclare(name string, arity Arity, rule ResultRule, categories ...Category) *Descriptor {
	d, err := r.Declare(name, arity, rule, categories...)
	if err != nil {
		panic(err)
	}
	return d
}

// Declare declares an operation in the Default registry and panics on error.
func Declare(name string, arity Arity, rule ResultRule, categories ...Category) *Descriptor {
	return Default.MustDeclare(name, arity, rule, categories...)
}

// Lookup returns the operation declared under name.
func (r *Registry) Lookup(name string) (*Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.ops[name]
	return d, ok
}

// Operations returns the declared operations sorted by name.
func (r *Registry) Operations() []*Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ops := lo.Values(r.ops)
	slices.SortFunc(ops, func(a, b *Descriptor) int { return cmp.Compare(a.name, b.name) })
	return ops
}

// Register adds a binding.
//
// It fails when the operation was not declared in r, the pattern uses an
// option category the operation does not accept (ErrUnsupportedOption), an
// identical binding exists (ErrDuplicateBinding), or r is sealed.
func (r *Registry) Register(b Binding) error {
	switch {
	case b.Op == nil:
		return fmt.Errorf("dispatch: binding %q has no operation", b.Name)
	case b.Kernel == nil:
		return fmt.Errorf("dispatch: %s: binding %q has no kernel", b.Op, b.Name)
	case !b.ABI.Valid():
		return fmt.Errorf("dispatch: %s: binding %q has unknown ABI %s", b.Op, b.Name, b.ABI)
	}
	if err := b.Op.CheckPattern(b.Pattern); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sealed {
		return fmt.Errorf("%w: register %s", ErrSealed, &b)
	}
	if r.ops[b.Op.name] != b.Op {
		return fmt.Errorf("%w: %s", ErrUnknownOperation, b.Op)
	}
	key := bindingKey{op: b.Op, abi: b.ABI, pattern: b.Pattern}
	for _, old := range r.bindings[key] {
		if old.Args.key() == b.Args.key() {
			return fmt.Errorf("%w: %s conflicts with %s", ErrDuplicateBinding, &b, old)
		}
	}
	r.bindings[key] = append(r.bindings[key], &b)
	return nil
}

// MustRegister registers every binding and panics on the first error.
// Use it from init().
func (r *Registry) MustRegister(bindings ...Binding) {
	for _, b := range bindings {
		if err := r.Register(b); err != nil {
			panic(err)
		}
	}
}

// MustRegister registers bindings in the Default registry.
func MustRegister(bindings ...Binding) {
	Default.MustRegister(bindings...)
}

// Bindings returns the bindings of op ordered by ABI, pattern and name.
func (r *Registry) Bindings(op *Descriptor) []Binding {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Binding
	for key, bs := range r.bindings {
		if key.op != op {
			continue
		}
		out = append(out, lo.Map(bs, func(b *Binding, _ int) Binding { return *b })...)
	}
	slices.SortFunc(out, func(a, b Binding) int {
		if c := cmp.Compare(a.ABI, b.ABI); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Pattern.String(), b.Pattern.String()); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return out
}

// Sealed reports whether r has resolved a call.
func (r *Registry) Sealed() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sealed
}
