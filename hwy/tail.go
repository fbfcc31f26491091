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

// ProcessWithTail is a helper for processing arrays in vectors of lanes
// elements that handles both full vectors and the tail (remainder).
//
// It calls:
//   - fullFn(offset) for each full vector (offset is the starting index)
//   - tailFn(offset, count) once for the tail if size is not a multiple of lanes
//
// Example:
//
//	lanes := hwy.MaxLanes[uint8]()
//	hwy.ProcessWithTail(len(data), lanes,
//	    func(offset int) {
//	        v := hwy.LoadN(data[offset:], lanes)
//	        hwy.Store(bitops.Not(v), output[offset:])
//	    },
//	    func(offset, count int) {
//	        v := hwy.LoadN(data[offset:offset+count], count)
//	        hwy.Store(bitops.Not(v), output[offset:])
//	    },
//	)
func ProcessWithTail(size, lanes int, fullFn func(offset int), tailFn func(offset, count int)) {
	if lanes <= 0 {
		if size > 0 {
			tailFn(0, size)
		}
		return
	}
	fullVectors := size / lanes
	for i := range fullVectors {
		fullFn(i * lanes)
	}
	if remaining := size % lanes; remaining > 0 {
		tailFn(fullVectors*lanes, remaining)
	}
}
