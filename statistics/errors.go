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

package statistics

import "errors"

var (
	// ErrEmptyDataset is returned when an engine is built from no records.
	ErrEmptyDataset = errors.New("empty dataset")
	// ErrInvalidTrim is returned when a trimmed mean would discard the whole sample.
	ErrInvalidTrim = errors.New("invalid trim percentage")
	// ErrIndexOutOfRange is returned when a quartile index falls outside the sample.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrInvalidSampleSize is returned for random samples with less than one draw.
	ErrInvalidSampleSize = errors.New("invalid sample size")
)
