// Copyright 2024 Fantom Foundation
// This file is part of Aida Testing Infrastructure for Sonic
//
// Aida is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Aida is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Aida. If not, see <http://www.gnu.org/licenses/>.

package statistics

import (
	"fmt"
	"math"
)

// Quartile computes index = fraction*n over the sorted sample. An integral
// index selects the element at that 0-based position. Otherwise the index
// is floored and the element there is averaged with its successor.
//
// For [1,2,3,4], Quartile(0.5) is 3 and Quartile(0.3) is 2.5.
func (e *Engine) Quartile(fraction float64) (float64, error) {
	return e.memoized(queryKey{quartileQuery, fraction}, func() (float64, error) {
		if !(fraction > 0 && fraction < 1) {
			return 0, fmt.Errorf("%w; fraction %v is not in (0,1)", ErrIndexOutOfRange, fraction)
		}
		whole, frac := math.Modf(fraction * float64(e.n))
		i := int(whole)
		if frac == 0 {
			if i >= e.n {
				return 0, fmt.Errorf("%w; index %d, sample size %d", ErrIndexOutOfRange, i, e.n)
			}
			return e.sample[i], nil
		}
		if i+1 >= e.n {
			return 0, fmt.Errorf("%w; index %d+1, sample size %d", ErrIndexOutOfRange, i, e.n)
		}
		return (e.sample[i] + e.sample[i+1]) / 2, nil
	})
}
