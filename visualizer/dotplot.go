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

package visualizer

import (
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	xmath "github.com/Fantom-foundation/tempstats/utils/math"
)

// ComputeDots rounds every value to the given number of decimal places and
// stacks equal values. Each point is (rounded value, height in the stack).
func ComputeDots(sample []float64, precision int) [][2]float64 {
	heights := map[float64]int{}
	dots := make([][2]float64, 0, len(sample))
	for _, x := range sample {
		r := xmath.Round(x, precision)
		heights[r]++
		dots = append(dots, [2]float64{r, float64(heights[r])})
	}
	return dots
}

// convertDotData produces the scatter data of a dot plot.
func convertDotData(dots [][2]float64) []opts.ScatterData {
	items := make([]opts.ScatterData, 0, len(dots))
	for _, d := range dots {
		items = append(items, opts.ScatterData{Value: d, SymbolSize: 10})
	}
	return items
}

// newDotPlot creates a dot plot of the rounded sample.
func newDotPlot(sample []float64, o Options) *charts.Scatter {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(append(globalOptions("Dot Plot", o),
		charts.WithXAxisOpts(opts.XAxis{Name: o.XLabel, Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: countLabel(o)}),
	)...)
	scatter.AddSeries("Values", convertDotData(ComputeDots(sample, o.Precision)))
	return scatter
}
