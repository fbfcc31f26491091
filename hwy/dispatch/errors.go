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

import "errors"

// Sentinel errors. Returned errors wrap one of these with context; test
// with errors.Is.
var (
	// ErrUnsupportedOption: an option category the operation does not accept.
	ErrUnsupportedOption = errors.New("unsupported option")

	// ErrConflictingOptions: two options of the same category.
	ErrConflictingOptions = errors.New("conflicting options")

	// ErrNoBinding: no implementation at any ABI tier, generic included.
	ErrNoBinding = errors.New("no binding")

	// ErrAmbiguous: several equally specific implementations in one tier.
	ErrAmbiguous = errors.New("ambiguous binding")

	// ErrDuplicateBinding: a binding with the same operation, ABI, option
	// pattern and argument pattern is already registered.
	ErrDuplicateBinding = errors.New("duplicate binding")

	// ErrDuplicateOperation: an operation name is declared twice.
	ErrDuplicateOperation = errors.New("duplicate operation")

	// ErrUnknownOperation: the operation was not declared in the registry.
	ErrUnknownOperation = errors.New("unknown operation")

	// ErrNoCommonType: the argument types have no common result type.
	ErrNoCommonType = errors.New("no common type")

	// ErrArity: the argument count is outside the operation's arity.
	ErrArity = errors.New("wrong number of arguments")

	// ErrSealed: registration after the registry resolved its first call.
	ErrSealed = errors.New("registry sealed")

	// ErrMaskShape: the mask is not a logical value of the result's shape.
	ErrMaskShape = errors.New("mask shape mismatch")
)
