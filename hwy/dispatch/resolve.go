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

type memoKey struct {
	op      *Descriptor
	target  hwy.Target
	pattern Pattern
	args    string
}

func argsKey(args []ArgType) string {
	var sb strings.Builder
	for _, a := range args {
		sb.WriteString(a.String())
		sb.WriteByte(';')
	}
	return sb.String()
}

// Resolved is an operation bound to one implementation for a fixed target,
// option pattern and list of argument types. Calling it performs no lookup.
type Resolved struct {
	op      *Descriptor
	binding *Binding
	abi     hwy.ABI
	wrapped bool
	target  hwy.Target
	pattern Pattern
	args    []ArgType
	result  hwy.Type
}

// Op returns the bound operation.
func (r *Resolved) Op() *Descriptor { return r.op }

// Binding returns the selected binding.
func (r *Resolved) Binding() Binding { return *r.binding }

// ABI returns the tier the binding was found at, possibly hwy.ABIGeneric.
func (r *Resolved) ABI() hwy.ABI { return r.abi }

// MaskWrapped reports whether the mask is applied by the generic wrapper
// around an unmasked binding.
func (r *Resolved) MaskWrapped() bool { return r.wrapped }

// Target returns the target the call was resolved for.
func (r *Resolved) Target() hwy.Target { return r.target }

// Pattern returns the option pattern the call was resolved for.
func (r *Resolved) Pattern() Pattern { return r.pattern }

// Result returns the result type.
func (r *Resolved) Result() hwy.Type { return r.result }

// Register returns the register kind holding the result on the target.
func (r *Resolved) Register() hwy.RegisterKind {
	return r.result.Register(r.target)
}

func (r *Resolved) String() string {
	s := fmt.Sprintf("%s[%s]%s on %s -> %s via %s", r.op, r.pattern, formatArgs(r.args), r.target, r.result, r.abi)
	if r.binding.Name != "" {
		s += " " + r.binding.Name
	}
	if r.wrapped {
		s += " (mask wrapper)"
	}
	return s
}

// Call runs the bound implementation. opts must have the pattern and args
// the types r was resolved for.
func (r *Resolved) Call(opts Options, args ...hwy.Wide) (hwy.Wide, error) {
	if p := opts.Pattern(); p != r.pattern {
		return hwy.Wide{}, fmt.Errorf("dispatch: %s resolved for %s options, called with %s", r.op, r.pattern, p)
	}
	if len(args) != len(r.args) {
		return hwy.Wide{}, fmt.Errorf("%w: %s resolved for %d arguments, called with %d", ErrArity, r.op, len(r.args), len(args))
	}
	for i, a := range args {
		if TypeOf(a) != r.args[i] {
			return hwy.Wide{}, fmt.Errorf("dispatch: %s argument %d: resolved for %s, called with %s", r.op, i, r.args[i], TypeOf(a))
		}
	}
	frame := Frame{Result: r.result, Options: opts, Target: r.target, Args: args}
	if !r.wrapped {
		return r.binding.Kernel(frame)
	}
	mask, _ := opts.Mask()
	frame.Options = opts.WithoutMask()
	return applyMask(r.result, mask, args[0], func() (hwy.Wide, error) {
		return r.binding.Kernel(frame)
	})
}

// Bind resolves op for target, option pattern and argument types, and seals
// the registry. Results are memoised; resolution is deterministic, so the
// memo never changes an answer.
//
// Candidate tiers are the target ABI, its fallback chain, then
// hwy.ABIGeneric. Within a tier, bindings for the exact pattern are tried
// first; when a mask is active, bindings for the pattern without the mask
// are tried next and wrapped by the generic mask wrapper. Among matching
// bindings of one kind, the one whose argument pattern is contained in all
// others wins.
func (r *Registry) Bind(op *Descriptor, target hwy.Target, pattern Pattern, args []ArgType) (*Resolved, error) {
	key := memoKey{op: op, target: target, pattern: pattern, args: argsKey(args)}

	r.mu.RLock()
	res, ok := r.memo[key]
	r.mu.RUnlock()
	if ok {
		return res, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sealed = true
	if res, ok := r.memo[key]; ok {
		return res, nil
	}
	res, err := r.resolve(op, target, pattern, args)
	if err != nil {
		r.tracef("%s[%s]%s on %s: %v", op, pattern, formatArgs(args), target, err)
		return nil, err
	}
	r.tracef("%s", res)
	r.memo[key] = res
	return res, nil
}

// resolve performs the lookup. r.mu must be held.
func (r *Registry) resolve(op *Descriptor, target hwy.Target, pattern Pattern, args []ArgType) (*Resolved, error) {
	if op == nil {
		return nil, fmt.Errorf("%w: nil operation", ErrUnknownOperation)
	}
	if r.ops[op.name] != op {
		return nil, fmt.Errorf("%w: %s", ErrUnknownOperation, op)
	}
	if err := op.CheckPattern(pattern); err != nil {
		return nil, err
	}
	result, err := op.ResultType(args)
	if err != nil {
		return nil, err
	}

	args = append([]ArgType(nil), args...)
	res := &Resolved{op: op, target: target, pattern: pattern, args: args, result: result}
	for _, abi := range append(target.ABI.Chain(), hwy.ABIGeneric) {
		b, err := r.pick(op, abi, pattern, target, args)
		if err != nil {
			return nil, err
		}
		if b == nil && pattern.Masked {
			if b, err = r.pick(op, abi, pattern.WithoutMask(), target, args); err != nil {
				return nil, err
			}
			res.wrapped = b != nil
		}
		if b != nil {
			res.binding, res.abi = b, abi
			return res, nil
		}
	}
	return nil, fmt.Errorf("%w: %s[%s]%s on %s", ErrNoBinding, op, pattern, formatArgs(args), target)
}

// pick returns the most specific binding in one tier, nil if none matches,
// or ErrAmbiguous.
func (r *Registry) pick(op *Descriptor, abi hwy.ABI, pattern Pattern, target hwy.Target, args []ArgType) (*Binding, error) {
	var matches []*Binding
	for _, b := range r.bindings[bindingKey{op: op, abi: abi, pattern: pattern}] {
		if target.Has(b.Requires) && b.Args.Matches(args) {
			matches = append(matches, b)
		}
	}
	if len(matches) <= 1 {
		if len(matches) == 0 {
			return nil, nil
		}
		return matches[0], nil
	}
	for _, c := range matches {
		best := true
		for _, o := range matches {
			if !c.Args.SubsetOf(o.Args) {
				best = false
				break
			}
		}
		if best {
			return c, nil
		}
	}
	names := make([]string, len(matches))
	for i, b := range matches {
		names[i] = b.String()
	}
	return nil, fmt.Errorf("%w: %s[%s]%s on %s: %s", ErrAmbiguous, op, pattern, formatArgs(args), abi, strings.Join(names, "; "))
}
