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

	"github.com/Fantom-foundation/tempstats/dataset"
	"github.com/olekukonko/tablewriter"
)

// formatValue renders a value with its unit, e.g. 41.5°F.
func formatValue(v float64, unit string) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "°" + unit
}

// WriteRecords lists every record as "<key> : <value>°<unit>" in insertion order.
func WriteRecords(w io.Writer, records *dataset.Records, unit string) error {
	if _, err := fmt.Fprintf(w, "\nKey : Value(%s)\n", unit); err != nil {
		return err
	}
	for _, rec := range records.All() {
		if _, err := fmt.Fprintf(w, "%s : %s\n", rec.Key, formatValue(rec.Value, unit)); err != nil {
			return err
		}
	}
	return nil
}

// WriteRecordTable renders the records as a bordered table.
func WriteRecordTable(w io.Writer, records *dataset.Records, unit string) {
	tbl := tablewriter.NewWriter(w)
	tbl.SetAutoFormatHeaders(false)
	tbl.SetHeader([]string{"Key", "Value"})
	tbl.SetBorder(true)
	tbl.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	for _, rec := range records.All() {
		tbl.Append([]string{rec.Key, formatValue(rec.Value, unit)})
	}

	tbl.Render()
}
