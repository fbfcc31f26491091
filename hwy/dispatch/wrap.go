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

// applyMask is the generic mask wrapper:
//
//	f[mask m](x, ...) == select(m, f(x, ...), convert(x, result))
//
// The mask must be logical with the result's lane count, or a logical
// scalar that applies to every lane.
func applyMask(result hwy.Type, mask, first hwy.Wide, compute func() (hwy.Wide, error)) (hwy.Wide, error) {
	if err := CheckMask(result, mask); err != nil {
		return hwy.Wide{}, err
	}
	active, err := compute()
	if err != nil {
		return hwy.Wide{}, err
	}
	inactive, err := hwy.Convert(first, result)
	if err != nil {
		return hwy.Wide{}, err
	}
	return hwy.Select(mask, active, inactive)
}

// CheckMask fails with ErrMaskShape unless mask can guard a value of type
// result. Kernels bound to masked patterns use it to validate their mask.
func CheckMask(result hwy.Type, mask hwy.Wide) error {
	mt := mask.Type()
	switch {
	case mask.IsTag():
		return fmt.Errorf("%w: type tag %s as a mask", ErrMaskShape, mask)
	case !mt.Logical:
		return fmt.Errorf("%w: %s is not logical", ErrMaskShape, mt)
	case mt.Lanes != 0 && mt.Lanes != result.Lanes:
		return fmt.Errorf("%w: %s guarding %s", ErrMaskShape, mt, result)
	}
	return nil
}
