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
	"errors"
	"fmt"
)

var (
	// ErrDataFormat is the cause of every DataFormatError.
	ErrDataFormat = errors.New("malformed input")
	// ErrInputTooLarge is returned when the input exceeds the configured size limit.
	ErrInputTooLarge = errors.New("input too large")
)

// DataFormatError reports a line of the input which is not a valid record.
type DataFormatError struct {
	Line   int    // 1-based line number
	Text   string // offending line
	Reason string // what is wrong with it
}

func (e *DataFormatError) Error() string {
	return fmt.Sprintf("%v at line %d: %s (%q)", ErrDataFormat, e.Line, e.Reason, e.Text)
}

func (e *DataFormatError) Unwrap() error {
	return ErrDataFormat
}
