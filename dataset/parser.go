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

package dataset

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// separator divides the key from the value on each input line.
const separator = ","

// Parse reads records in the form "<key>,<value>", one per line and without
// a header row. Blank lines are skipped.
func Parse(r io.Reader) (*Records, error) {
	records := NewRecords()
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimRight(scanner.Text(), "\r\n")
		if strings.TrimSpace(text) == "" {
			continue
		}
		rec, err := parseLine(line, text)
		if err != nil {
			return nil, err
		}
		if !records.Append(rec) {
			return nil, &DataFormatError{Line: line, Text: text, Reason: "duplicate key"}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read records; %w", err)
	}
	return records, nil
}

// parseLine converts a single input line into a record.
func parseLine(line int, text string) (Record, error) {
	fields := strings.Split(text, separator)
	if len(fields) != 2 {
		return Record{}, &DataFormatError{
			Line:   line,
			Text:   text,
			Reason: fmt.Sprintf("expected 2 fields, found %d", len(fields)),
		}
	}
	key := strings.TrimSpace(fields[0])
	if key == "" {
		return Record{}, &DataFormatError{Line: line, Text: text, Reason: "empty key"}
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
	if err != nil {
		return Record{}, &DataFormatError{Line: line, Text: text, Reason: "value is not a number"}
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Record{}, &DataFormatError{Line: line, Text: text, Reason: "value is not finite"}
	}
	return Record{Key: key, Value: value}, nil
}
