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

// Package visualizer renders exploratory charts of a sorted sample.
package visualizer

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

var (
	// ErrUnknownChart is returned for chart kinds which are not supported.
	ErrUnknownChart = errors.New("unknown chart")
	// ErrEmptySample is returned when there is nothing to draw.
	ErrEmptySample = errors.New("empty sample")
)

// Kind selects a chart.
type Kind string

const (
	Histogram Kind = "histogram"
	BoxPlot   Kind = "boxplot"
	DotPlot   Kind = "dotplot"
	All       Kind = "all" // page with every chart
)

// Kinds lists the single-chart kinds in display order.
var Kinds = []Kind{Histogram, BoxPlot, DotPlot}

// ParseKind converts a chart name into a Kind.
func ParseKind(name string) (Kind, error) {
	kind := Kind(strings.ToLower(strings.TrimSpace(name)))
	switch kind {
	case Histogram, BoxPlot, DotPlot, All:
		return kind, nil
	}
	return "", fmt.Errorf("%w %q", ErrUnknownChart, name)
}

// Options are the display parameters of a chart.
type Options struct {
	Title     string // chart title
	Subtitle  string // chart subtitle, e.g. the data source
	XLabel    string // label of the value axis
	YLabel    string // label of the count axis
	Bins      int    // number of histogram bins
	Precision int    // decimal places of dot plot values

	Summary *FiveNumbers // box plot summary, computed from the sample if nil
}

// globalOptions are shared by all charts.
func globalOptions(title string, o Options) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			Theme:     types.ThemeChalk,
			PageTitle: o.Title,
		}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: true,
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{
					Show:  true,
					Title: "Save",
				},
				DataZoom: &opts.ToolBoxFeatureDataZoom{
					Show: true,
				},
			},
		}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: o.Subtitle,
		}),
	}
}

// newChart creates the chart of the given kind.
func newChart(kind Kind, sample []float64, o Options) (chart, error) {
	switch kind {
	case Histogram:
		return newHistogram(sample, o), nil
	case BoxPlot:
		return newBoxPlot(sample, o), nil
	case DotPlot:
		return newDotPlot(sample, o), nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownChart, kind)
}

// Render writes an HTML page with the requested chart of a sorted sample.
// The sample is only read for the duration of the call.
func Render(w io.Writer, kind Kind, sample []float64, o Options) error {
	if len(sample) == 0 {
		return ErrEmptySample
	}
	if kind == All {
		return RenderAll(w, sample, o)
	}
	c, err := newChart(kind, sample, o)
	if err != nil {
		return err
	}
	return c.Render(w)
}

// RenderAll writes an HTML page with every chart of a sorted sample.
func RenderAll(w io.Writer, sample []float64, o Options) error {
	if len(sample) == 0 {
		return ErrEmptySample
	}
	page := components.NewPage()
	for _, kind := range Kinds {
		c, err := newChart(kind, sample, o)
		if err != nil {
			return err
		}
		page.AddCharts(c)
	}
	return page.Render(w)
}

// chart is implemented by every go-echarts chart.
type chart interface {
	components.Charter
	Render(w io.Writer) error
}
