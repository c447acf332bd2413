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

	"gonum.org/v1/gonum/floats"
)

// TrimmedMean removes round(percent/100*n) values from both ends of the
// sorted sample and returns the mean of the remainder.
func (e *Engine) TrimmedMean(percent float64) (float64, error) {
	return e.memoized(queryKey{trimmedMeanQuery, percent}, func() (float64, error) {
		if math.IsNaN(percent) || percent < 0 || percent >= 100 {
			return 0, fmt.Errorf("%w; %v is not in [0,100)", ErrInvalidTrim, percent)
		}
		k := int(math.Round(percent / 100 * float64(e.n)))
		if e.n-2*k < 1 {
			return 0, fmt.Errorf("%w; trimming %d values from each end of %d leaves none", ErrInvalidTrim, k, e.n)
		}
		kept := e.sample[k : e.n-k]
		return floats.Sum(kept) / float64(len(kept)), nil
	})
}
