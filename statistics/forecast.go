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
	"math"

	xmath "github.com/Fantom-foundation/tempstats/utils/math"
	"gonum.org/v1/gonum/stat"
)

// forecastDays is the length of the forecast window.
const forecastDays = 7

// Forecast summarises a one-week window of the sample.
type Forecast struct {
	Week    []float64 // values in the window
	Average float64   // mean of the window
	StdDev  float64   // population standard deviation of the window
}

// PredictTemps takes the first seven values of the sorted sample (all of
// them for shorter samples) and returns their mean and standard deviation.
// The window is taken in sorted order, i.e. it holds the lowest values and
// not the chronologically first ones.
func (e *Engine) PredictTemps() Forecast {
	week := append([]float64(nil), e.sample[:xmath.Min(forecastDays, e.n)]...)
	mean, variance := stat.PopMeanVariance(week, nil)
	return Forecast{
		Week:    week,
		Average: mean,
		StdDev:  math.Sqrt(variance),
	}
}
