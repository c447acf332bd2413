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
	"strings"

	"github.com/fatih/color"
	"github.com/goccy/go-json"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// WriteText writes the report as labelled lines with two decimals.
func (r *Report) WriteText(w io.Writer) error {
	_, err := io.WriteString(w, r.Text())
	return err
}

// Text formats the report as labelled lines with two decimals.
func (r *Report) Text() string {
	bold := color.New(color.Bold).SprintFunc()
	p := message.NewPrinter(language.English)
	num := func(v float64) string {
		return p.Sprintf("%.2f", v)
	}
	list := func(vs []float64) string {
		items := make([]string, 0, len(vs))
		for _, v := range vs {
			items = append(items, num(v))
		}
		return strings.Join(items, ", ")
	}

	var b strings.Builder
	line := func(label string, value string) {
		fmt.Fprintf(&b, "%s %s\n", bold(label+":"), value)
	}

	if r.Source != "" {
		line("Dataset", r.Source)
	}
	line("Sample Mean", num(r.Mean))
	line("Sample Median", num(r.Median))
	line("Sample Mode(s)", list(r.Modes))
	line("Sample Variance", num(r.Variance))
	line("Sample Standard Deviation", num(r.StandardDeviation))
	line(fmt.Sprintf("Random Sample (n=%d)", r.RandomSample.Size),
		fmt.Sprintf("mean %s, variance %s", num(r.RandomSample.Mean), num(r.RandomSample.Variance)))
	for _, t := range r.TrimmedMeans {
		line(fmt.Sprintf("Trimmed Mean (%v%%)", t.Percent), num(t.Mean))
	}
	line("First Quartile", num(r.FirstQuartile))
	line("Third Quartile", num(r.ThirdQuartile))
	line("Week Forecast", fmt.Sprintf("%s (average %s, standard deviation %s)",
		list(r.Forecast.Week), num(r.Forecast.Average), num(r.Forecast.StdDev)))
	return b.String()
}

// WriteJSON writes the report as an indented JSON document.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// JSON returns the report as an indented JSON document.
func (r *Report) JSON() (string, error) {
	var b strings.Builder
	if err := r.WriteJSON(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}
