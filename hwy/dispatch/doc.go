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

// Package dispatch selects the implementation of a portable operation.
//
// An operation is declared once with a Descriptor (name, arity, result rule,
// accepted option categories). Implementations are registered as Bindings
// keyed by ABI, option pattern and argument pattern, normally from init().
// A call is resolved once per (operation, target, option pattern, argument
// types): the most specific binding of the most architecture-specific tier
// wins, generic bindings come last, and a masked call without a masked
// binding is served by the unmasked binding plus a generic select.
//
// Basic usage:
//
//	var NotOr = dispatch.Declare("bit_notor", dispatch.AtLeast(2), dispatch.CommonValue)
//
//	func init() {
//		dispatch.MustRegister(dispatch.Binding{
//			Op: NotOr, ABI: hwy.ABIGeneric, Name: "lanes", Kernel: notOrLanes,
//		})
//	}
//
//	v, err := dispatch.Op(NotOr).With(dispatch.Mask(m)).Call(a, b)
package dispatch
