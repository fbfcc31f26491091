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

// Package predicate provides lane-wise comparisons that produce logical
// values.
//
// IsEqualWithEqualNaNs compares two values lane by lane. A lane is true
// when the lanes are equal or when both are NaN, so a vector always compares
// equal to itself. Integer lanes compare by value after promotion to the
// common type.
//
// Predicates wrap the comparisons for use in scalar and vector loops:
//
//	p := predicate.EqualWithEqualNaNs[float32]{Value: float32(math.NaN())}
//	m := p.Apply(v) // true where v is NaN
package predicate
