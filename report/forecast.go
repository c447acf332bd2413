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

package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Fantom-foundation/tempstats/statistics"
	"github.com/goccy/go-json"
)

// Forecast is the one-week window of the sample.
type Forecast struct {
	Week    []float64 `json:"week"`
	Average float64   `json:"average"`
	StdDev  float64   `json:"stdDev"`
}

// NewForecast converts an engine forecast for display.
func NewForecast(f statistics.Forecast) Forecast {
	return Forecast{Week: f.Week, Average: f.Average, StdDev: f.StdDev}
}

// Text lists one value per day followed by the window average and spread.
func (f Forecast) Text(unit string) string {
	var b strings.Builder
	for i, v := range f.Week {
		fmt.Fprintf(&b, "Day %d : %s\n", i+1, formatValue(v, unit))
	}
	fmt.Fprintf(&b, "Average : %s°%s\n", strconv.FormatFloat(f.Average, 'f', 2, 64), unit)
	fmt.Fprintf(&b, "Standard Deviation : %s°%s\n", strconv.FormatFloat(f.StdDev, 'f', 2, 64), unit)
	return b.String()
}

// WriteJSON writes the forecast as an indented JSON document.
func (f Forecast) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(f)
}

// JSON returns the forecast as an indented JSON document.
func (f Forecast) JSON() (string, error) {
	var b strings.Builder
	if err := f.WriteJSON(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}
