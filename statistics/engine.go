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

// Package statistics implements descriptive statistics over a sorted,
// immutable numeric sample.
package statistics

import (
	"fmt"
	"sort"

	"github.com/Fantom-foundation/tempstats/dataset"
	lru "github.com/hashicorp/golang-lru"
	"gonum.org/v1/gonum/floats"
)

// memoSize bounds the number of memoised quartile and trimmed-mean results.
const memoSize = 64

// Engine answers statistical queries over a sample. It is built once
// from loaded records and never changes afterwards.
type Engine struct {
	records *dataset.Records // records in insertion order, for display
	sample  []float64        // record values in ascending order
	n       int              // sample size
	mean    float64          // cached sample mean
	memo    *lru.Cache       // memoised query results
}

// NewEngine builds an engine from a non-empty record collection.
func NewEngine(records *dataset.Records) (*Engine, error) {
	n := records.Len()
	if n == 0 {
		return nil, ErrEmptyDataset
	}

	sample := records.Values()
	sort.Float64s(sample)

	memo, err := lru.New(memoSize)
	if err != nil {
		return nil, fmt.Errorf("cannot create query cache; %w", err)
	}

	return &Engine{
		records: records.Clone(),
		sample:  sample,
		n:       n,
		mean:    floats.Sum(sample) / float64(n),
		memo:    memo,
	}, nil
}

// Len returns the sample size.
func (e *Engine) Len() int {
	return e.n
}

// Sample returns a copy of the sorted sample.
func (e *Engine) Sample() []float64 {
	return append([]float64(nil), e.sample...)
}

// Records returns a copy of the records the engine was built from.
func (e *Engine) Records() *dataset.Records {
	return e.records.Clone()
}

// Min returns the smallest value of the sample.
func (e *Engine) Min() float64 {
	return e.sample[0]
}

// Max returns the largest value of the sample.
func (e *Engine) Max() float64 {
	return e.sample[e.n-1]
}

// queryKind distinguishes memoised queries.
type queryKind int

const (
	quartileQuery queryKind = iota
	trimmedMeanQuery
)

type queryKey struct {
	kind queryKind
	arg  float64
}

// memoized returns a cached result for key or computes and caches it.
// Failed computations are not cached.
func (e *Engine) memoized(key queryKey, compute func() (float64, error)) (float64, error) {
	if v, ok := e.memo.Get(key); ok {
		return v.(float64), nil
	}
	v, err := compute()
	if err != nil {
		return 0, err
	}
	e.memo.Add(key, v)
	return v, nil
}
