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

// Package bitops provides bitwise operations on the raw bit patterns of
// vector lanes, dispatched through package dispatch.
//
// Every binary operation is variadic with a common-value result: arguments
// are converted to the promoted element type (scalars broadcast) and then
// combined bit by bit. For more than two arguments the trailing arguments
// fold first:
//
//	BitNotOr(a, b, c, ...)  == BitNotOr(a, BitOr(b, c, ...))
//	BitNotAnd(a, b, c, ...) == BitNotAnd(a, BitAnd(b, c, ...))
//	BitAndNot(a, b, c, ...) == BitAndNot(a, BitOr(b, c, ...))
//	BitOrNot(a, b, c, ...)  == BitOrNot(a, BitAnd(b, c, ...))
//
// Every operation accepts a mask; inactive lanes keep the first argument.
//
// Implementations: a lane loop at the generic tier, register-width word
// kernels for neon64, neon128, sse2 and avx2, and a fused bit-select kernel
// for masked BitNotOr on neon128.
package bitops
