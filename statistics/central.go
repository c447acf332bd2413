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

import "sort"

// Mean returns the arithmetic mean of the sample.
func (e *Engine) Mean() float64 {
	return e.mean
}

// Median returns the middle element of the sample for odd sizes and the
// average of the two middle elements for even sizes.
func (e *Engine) Median() float64 {
	mid := e.n / 2
	if e.n%2 == 1 {
		return e.sample[mid]
	}
	return (e.sample[mid-1] + e.sample[mid]) / 2
}

// Mode returns every value sharing the highest number of occurrences,
// in ascending order. If all values are distinct, all of them are returned.
func (e *Engine) Mode() []float64 {
	counts := NewCounting[float64]()
	for _, x := range e.sample {
		counts.Place(x)
	}
	if counts.MaxFrequency() == 1 {
		return e.Sample()
	}
	modes := counts.MostFrequent()
	sort.Float64s(modes)
	return modes
}
