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
	"fmt"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// defaultBins matches the bin count of the original exploratory plots.
const defaultBins = 4

// Bin is a half-open histogram interval [Lower, Upper) with its count.
type Bin struct {
	Lower float64
	Upper float64
	Count float64
}

// ComputeBins splits a sorted, non-empty sample into equally wide bins.
// The upper bound of the last bin lies just above the sample maximum so
// that the maximum is counted.
func ComputeBins(sample []float64, bins int) []Bin {
	if bins < 1 {
		bins = defaultBins
	}
	lo, hi := sample[0], sample[len(sample)-1]
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	} else {
		hi = math.Nextafter(hi, math.Inf(1))
	}

	dividers := make([]float64, bins+1)
	floats.Span(dividers, lo, hi)
	counts := stat.Histogram(nil, dividers, sample, nil)

	result := make([]Bin, bins)
	for i := range result {
		result[i] = Bin{Lower: dividers[i], Upper: dividers[i+1], Count: counts[i]}
	}
	return result
}

// newHistogram creates a bar chart of the binned sample.
func newHistogram(sample []float64, o Options) *charts.Bar {
	bins := ComputeBins(sample, o.Bins)
	labels := make([]string, 0, len(bins))
	items := make([]opts.BarData, 0, len(bins))
	for _, b := range bins {
		labels = append(labels, fmt.Sprintf("%.1f-%.1f", b.Lower, b.Upper))
		items = append(items, opts.BarData{Value: b.Count})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(append(globalOptions("Histogram", o),
		charts.WithXAxisOpts(opts.XAxis{Name: o.XLabel}),
		charts.WithYAxisOpts(opts.YAxis{Name: countLabel(o)}),
	)...)
	bar.SetXAxis(labels).AddSeries("Frequency", items)
	return bar
}

// countLabel returns the label of the frequency axis.
func countLabel(o Options) string {
	if o.YLabel == "" {
		return "Frequency"
	}
	return o.YLabel
}
