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

// Record is a single keyed observation, e.g. a date and its average temperature.
type Record struct {
	Key   string
	Value float64
}

// Records is an insertion-ordered collection of records with unique keys.
// The order is kept for display only and carries no statistical meaning.
// Records is always handled through a pointer; use Clone for an
// independent copy.
type Records struct {
	order []Record
	index map[string]int
}

// NewRecords creates an empty record collection.
func NewRecords() *Records {
	return &Records{index: map[string]int{}}
}

// Append adds a record at the end of the collection. It returns false
// and leaves the collection unchanged if the key already exists.
func (r *Records) Append(rec Record) bool {
	if r.index == nil {
		r.index = map[string]int{}
	}
	if _, ok := r.index[rec.Key]; ok {
		return false
	}
	r.index[rec.Key] = len(r.order)
	r.order = append(r.order, rec)
	return true
}

// Len returns the number of records. A nil collection is empty.
func (r *Records) Len() int {
	if r == nil {
		return 0
	}
	return len(r.order)
}

// All returns a copy of the records in insertion order.
func (r *Records) All() []Record {
	if r == nil {
		return nil
	}
	return append([]Record(nil), r.order...)
}

// Keys returns the keys in insertion order.
func (r *Records) Keys() []string {
	keys := make([]string, 0, r.Len())
	for _, rec := range r.All() {
		keys = append(keys, rec.Key)
	}
	return keys
}

// Values returns the values in insertion order.
func (r *Records) Values() []float64 {
	values := make([]float64, 0, r.Len())
	for _, rec := range r.All() {
		values = append(values, rec.Value)
	}
	return values
}

// Clone returns a deep copy which shares no state with r.
func (r *Records) Clone() *Records {
	c := NewRecords()
	for _, rec := range r.All() {
		c.Append(rec)
	}
	return c
}
