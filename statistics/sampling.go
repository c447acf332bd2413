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
	"math/rand"
	"time"

	"gonum.org/v1/gonum/stat"
)

// RandomSample draws count values uniformly with replacement from the
// sample and returns their mean and population variance. A nil generator
// is replaced by a time-seeded one; pass a seeded generator for
// reproducible draws.
func (e *Engine) RandomSample(rg *rand.Rand, count int) (float64, float64, error) {
	if count < 1 {
		return 0, 0, fmt.Errorf("%w; need at least one draw, got %d", ErrInvalidSampleSize, count)
	}
	if rg == nil {
		rg = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	draws := make([]float64, count)
	for i := range draws {
		draws[i] = e.sample[rg.Intn(e.n)]
	}
	mean, variance := stat.PopMeanVariance(draws, nil)
	return mean, variance, nil
}
