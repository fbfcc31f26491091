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

// ResolveLogical returns the register kind that holds a mask guarding lanes
// elements of type elem on target t.
//
// A mask lane is an all-ones or all-zeros pattern as wide as the guarded
// element, so a mask is stored exactly like an unsigned integer vector of
// that width. There is no separate table: the answer is always
// Resolve(UnsignedOfSameWidth(elem), lanes, t).
func ResolveLogical(elem ElementType, lanes int, t Target) RegisterKind {
	return Resolve(UnsignedOfSameWidth(elem), lanes, t)
}

// LogicalRegisterFor is ResolveLogical for the element type of T.
func LogicalRegisterFor[T Lanes](lanes int, t Target) RegisterKind {
	return ResolveLogical(ElementOf[T](), lanes, t)
}
