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
	"gonum.org/v1/gonum/stat"
)

// FiveNumbers is the summary drawn by a box plot.
type FiveNumbers struct {
	Min, Q1, Median, Q3, Max float64
}

// Slice returns the summary in the order expected by a box plot series.
func (f FiveNumbers) Slice() []float64 {
	return []float64{f.Min, f.Q1, f.Median, f.Q3, f.Max}
}

// ComputeFiveNumbers summarises a sorted, non-empty sample using the
// empirical quantile function. Its quartiles can differ from the engine's
// fraction*n convention; set Options.Summary to draw the engine's values.
func ComputeFiveNumbers(sample []float64) FiveNumbers {
	return FiveNumbers{
		Min:    sample[0],
		Q1:     stat.Quantile(0.25, stat.Empirical, sample, nil),
		Median: stat.Quantile(0.5, stat.Empirical, sample, nil),
		Q3:     stat.Quantile(0.75, stat.Empirical, sample, nil),
		Max:    sample[len(sample)-1],
	}
}

// boxSummary returns the summary from the options, or computes it from the
// sample when none is given.
func boxSummary(sample []float64, o Options) FiveNumbers {
	if o.Summary != nil {
		return *o.Summary
	}
	return ComputeFiveNumbers(sample)
}

// newBoxPlot creates a box plot of the sample.
func newBoxPlot(sample []float64, o Options) *charts.BoxPlot {
	box := charts.NewBoxPlot()
	box.SetGlobalOptions(append(globalOptions("Box Plot", o),
		charts.WithYAxisOpts(opts.YAxis{Name: o.XLabel}),
	)...)
	box.SetXAxis([]string{o.Title}).
		AddSeries("Sample", []opts.BoxPlotData{{Value: boxSummary(sample, o).Slice()}})
	return box
}
