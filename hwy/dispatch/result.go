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

// ArgType is the static type of one argument: a value type, or the type
// carried by a type tag.
type ArgType struct {
	Type hwy.Type
	Tag  bool
}

// TypeOf returns the static type of w.
func TypeOf(w hwy.Wide) ArgType {
	return ArgType{Type: w.Type(), Tag: w.IsTag()}
}

// TypesOf returns the static types of args.
func TypesOf(args ...hwy.Wide) []ArgType {
	types := make([]ArgType, len(args))
	for i, a := range args {
		types[i] = TypeOf(a)
	}
	return types
}

// Value returns the argument type of a value of type t.
func Value(t hwy.Type) ArgType {
	return ArgType{Type: t}
}

// TagOf returns the argument type of the type tag of t.
func TagOf(t hwy.Type) ArgType {
	return ArgType{Type: t, Tag: true}
}

func (a ArgType) String() string {
	if a.Tag {
		return "as<" + a.Type.String() + ">"
	}
	return a.Type.String()
}

// ResultRule computes an operation's result type from its argument types.
type ResultRule uint8

const (
	// CommonValue: the pairwise promotion of the argument element types,
	// with scalars broadcast to the common lane count. The result is logical
	// only when every argument is.
	CommonValue ResultRule = iota

	// CommonLogical: the logical type of the common value type.
	CommonLogical

	// TypeTag: a single type tag argument names the result type.
	TypeTag
)

func (r ResultRule) String() string {
	switch r {
	case CommonValue:
		return "common"
	case CommonLogical:
		return "common-logical"
	case TypeTag:
		return "type-tag"
	default:
		return fmt.Sprintf("ResultRule(%d)", uint8(r))
	}
}

// Result applies the rule to args.
func (r ResultRule) Result(args []ArgType) (hwy.Type, error) {
	switch r {
	case CommonValue:
		return commonType(args)
	case CommonLogical:
		t, err := commonType(args)
		if err != nil {
			return hwy.Type{}, err
		}
		return hwy.LogicalOf(t), nil
	case TypeTag:
		if len(args) != 1 || !args[0].Tag {
			return hwy.Type{}, fmt.Errorf("%w: want a single type tag", ErrNoCommonType)
		}
		return args[0].Type, nil
	}
	return hwy.Type{}, fmt.Errorf("dispatch: unknown result rule %s", r)
}

// CommonType returns the common value type of args under CommonValue.
func CommonType(args ...ArgType) (hwy.Type, error) {
	return commonType(args)
}

func commonType(args []ArgType) (hwy.Type, error) {
	if len(args) == 0 {
		return hwy.Type{}, fmt.Errorf("%w: no arguments", ErrNoCommonType)
	}
	var out hwy.Type
	logical := true
	for i, a := range args {
		if a.Tag {
			return hwy.Type{}, fmt.Errorf("%w: type tag %s as a value", ErrNoCommonType, a)
		}
		if !a.Type.Elem.Valid() {
			return hwy.Type{}, fmt.Errorf("%w: invalid element type in %s", ErrNoCommonType, a)
		}
		logical = logical && a.Type.Logical
		if i == 0 {
			out.Elem = a.Type.Elem
		} else {
			out.Elem = hwy.Promote(out.Elem, a.Type.Elem)
		}
		switch {
		case a.Type.Lanes == 0:
		case out.Lanes == 0:
			out.Lanes = a.Type.Lanes
		case out.Lanes != a.Type.Lanes:
			return hwy.Type{}, fmt.Errorf("%w: %d and %d lanes", ErrNoCommonType, out.Lanes, a.Type.Lanes)
		}
	}
	out.Logical = logical
	return out, nil
}
