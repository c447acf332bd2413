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

// Package report summarises a statistics engine for display.
package report

import (
	"fmt"
	"math/rand"

	"github.com/Fantom-foundation/tempstats/statistics"
)

// DefaultTrims are the trim percentages reported when none are given.
var DefaultTrims = []float64{5, 10, 20}

// Options configures which derived statistics are computed.
type Options struct {
	Source     string     // description of the data source
	Trims      []float64  // trim percentages, DefaultTrims if empty
	SampleSize int        // random sample draws, the dataset size if zero
	Rand       *rand.Rand // random generator for the sample, clock-seeded if nil
}

// TrimmedMean is a trimmed mean with its trim percentage.
type TrimmedMean struct {
	Percent float64 `json:"percent"`
	Mean    float64 `json:"mean"`
}

// RandomSample is the outcome of a random sample.
type RandomSample struct {
	Size     int     `json:"size"`
	Mean     float64 `json:"mean"`
	Variance float64 `json:"variance"`
}

// Report holds every statistic in the order they are displayed.
type Report struct {
	Source            string        `json:"source,omitempty"`
	Count             int           `json:"count"`
	Mean              float64       `json:"mean"`
	Median            float64       `json:"median"`
	Modes             []float64     `json:"modes"`
	Variance          float64       `json:"variance"`
	StandardDeviation float64       `json:"standardDeviation"`
	RandomSample      RandomSample  `json:"randomSample"`
	TrimmedMeans      []TrimmedMean `json:"trimmedMeans"`
	FirstQuartile     float64       `json:"firstQuartile"`
	ThirdQuartile     float64       `json:"thirdQuartile"`
	Forecast          Forecast      `json:"forecast"`
}

// NewReport computes all statistics of a report. Any failing statistic
// fails the whole report.
func NewReport(e *statistics.Engine, o Options) (*Report, error) {
	r := &Report{
		Source:            o.Source,
		Count:             e.Len(),
		Mean:              e.Mean(),
		Median:            e.Median(),
		Modes:             e.Mode(),
		Variance:          e.Variance(),
		StandardDeviation: e.StandardDeviation(),
	}

	size := o.SampleSize
	if size == 0 {
		size = e.Len()
	}
	mean, variance, err := e.RandomSample(o.Rand, size)
	if err != nil {
		return nil, fmt.Errorf("cannot draw random sample; %w", err)
	}
	r.RandomSample = RandomSample{Size: size, Mean: mean, Variance: variance}

	trims := o.Trims
	if len(trims) == 0 {
		trims = DefaultTrims
	}
	for _, percent := range trims {
		m, err := e.TrimmedMean(percent)
		if err != nil {
			return nil, fmt.Errorf("cannot compute trimmed mean; %w", err)
		}
		r.TrimmedMeans = append(r.TrimmedMeans, TrimmedMean{Percent: percent, Mean: m})
	}

	if r.FirstQuartile, err = e.Quartile(0.25); err != nil {
		return nil, fmt.Errorf("cannot compute first quartile; %w", err)
	}
	if r.ThirdQuartile, err = e.Quartile(0.75); err != nil {
		return nil, fmt.Errorf("cannot compute third quartile; %w", err)
	}

	r.Forecast = NewForecast(e.PredictTemps())
	return r, nil
}
