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

// Counting for counting frequencies of data items.
type Counting[T comparable] struct {
	freq map[T]uint64 // frequency counts per item
	max  uint64       // highest frequency seen so far
}

// NewCounting creates a new counting statistics.
func NewCounting[T comparable]() Counting[T] {
	return Counting[T]{freq: map[T]uint64{}}
}

// Place increments the frequency of a data item by one.
func (s *Counting[T]) Place(data T) {
	s.freq[data]++
	if f := s.freq[data]; f > s.max {
		s.max = f
	}
}

// MaxFrequency returns the highest frequency of any data item.
func (s *Counting[T]) MaxFrequency() uint64 {
	return s.max
}

// MostFrequent returns all data items sharing the highest frequency
// in no particular order.
func (s *Counting[T]) MostFrequent() []T {
	items := []T{}
	for data, freq := range s.freq {
		if freq == s.max {
			items = append(items, data)
		}
	}
	return items
}
