package statistics

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"testing"

	"github.com/Fantom-foundation/tempstats/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

const tolerance = 1e-9

// newTestEngine builds an engine over values keyed d1, d2, ...
func newTestEngine(t *testing.T, values ...float64) *Engine {
	t.Helper()
	records := dataset.NewRecords()
	for i, v := range values {
		records.Append(dataset.Record{Key: fmt.Sprintf("d%d", i+1), Value: v})
	}
	e, err := NewEngine(records)
	require.NoError(t, err)
	return e
}

// temperatures is a month of average temperatures in Fahrenheit.
var temperatures = []float64{
	41.5, 39.0, 44.25, 39.0, 47.1, 52.3, 50.0, 38.2, 36.9, 40.4,
	45.5, 48.8, 51.2, 39.0, 42.7, 43.3, 46.0, 49.9, 53.4, 37.5,
	35.8, 40.0, 44.1, 47.6, 50.5, 52.0, 41.1, 38.8, 42.2, 45.0,
}

func TestEngine_EmptyDatasetFails(t *testing.T) {
	_, err := NewEngine(dataset.NewRecords())
	assert.True(t, errors.Is(err, ErrEmptyDataset))
}

func TestEngine_SampleIsSortedCopy(t *testing.T) {
	e := newTestEngine(t, 30, 10, 20)
	assert.Equal(t, 3, e.Len())
	assert.Equal(t, []float64{10, 20, 30}, e.Sample())

	s := e.Sample()
	s[0] = 99
	assert.Equal(t, 10.0, e.Sample()[0])
	assert.Equal(t, 10.0, e.Min())
	assert.Equal(t, 30.0, e.Max())
}

func TestEngine_RecordsKeepInsertionOrder(t *testing.T) {
	e := newTestEngine(t, 30, 10, 20)
	assert.Equal(t, []string{"d1", "d2", "d3"}, e.Records().Keys())
	assert.Equal(t, []float64{30, 10, 20}, e.Records().Values())
}

func TestEngine_SampleMatchesInputMultiset(t *testing.T) {
	e := newTestEngine(t, temperatures...)
	want := append([]float64(nil), temperatures...)
	sort.Float64s(want)
	assert.Equal(t, len(temperatures), e.Len())
	assert.Equal(t, want, e.Sample())
}

func TestEngine_EndToEndThreeRecords(t *testing.T) {
	e := newTestEngine(t, 10, 20, 30)
	assert.Equal(t, 20.0, e.Mean())
	assert.InDelta(t, 66.66666666666667, e.Variance(), tolerance)
	assert.InDelta(t, 8.16496580927726, e.StandardDeviation(), tolerance)
}

func TestEngine_MeanMatchesIndependentAverage(t *testing.T) {
	e := newTestEngine(t, temperatures...)
	sum := 0.0
	for _, x := range temperatures {
		sum += x
	}
	assert.InDelta(t, sum/float64(len(temperatures)), e.Mean(), tolerance)
	assert.InDelta(t, stat.Mean(temperatures, nil), e.Mean(), tolerance)
}

func TestEngine_Median(t *testing.T) {
	tests := []struct {
		values []float64
		want   float64
	}{
		{[]float64{5}, 5},
		{[]float64{3, 1, 2}, 2},
		{[]float64{4, 1, 3, 2}, 2.5},
		{[]float64{7, 1, 3, 9, 5}, 5},
		{[]float64{10, 20, 30, 40, 50, 60}, 35},
	}
	for _, test := range tests {
		e := newTestEngine(t, test.values...)
		assert.Equal(t, test.want, e.Median(), "median of %v", test.values)
	}
}

func TestEngine_Mode(t *testing.T) {
	tests := []struct {
		values []float64
		want   []float64
	}{
		{[]float64{1, 1, 2, 3}, []float64{1}},
		{[]float64{1, 2, 3}, []float64{1, 2, 3}},
		{[]float64{7, 5, 2, 5, 2}, []float64{2, 5}},
		{[]float64{4}, []float64{4}},
	}
	for _, test := range tests {
		e := newTestEngine(t, test.values...)
		assert.Equal(t, test.want, e.Mode(), "mode of %v", test.values)
	}
	assert.Equal(t, []float64{39.0}, newTestEngine(t, temperatures...).Mode())
}

func TestEngine_VarianceIsNonNegative(t *testing.T) {
	assert.GreaterOrEqual(t, newTestEngine(t, temperatures...).Variance(), 0.0)
	assert.Greater(t, newTestEngine(t, 1, 2).Variance(), 0.0)
}

func TestEngine_VarianceOfIdenticalValuesIsZero(t *testing.T) {
	e := newTestEngine(t, 21.5, 21.5, 21.5, 21.5)
	assert.Equal(t, 0.0, e.Variance())
	assert.Equal(t, 0.0, e.StandardDeviation())
}

func TestEngine_VarianceUsesPopulationDivisor(t *testing.T) {
	e := newTestEngine(t, temperatures...)
	ss := 0.0
	for _, x := range temperatures {
		ss += (x - e.Mean()) * (x - e.Mean())
	}
	assert.InDelta(t, ss/float64(len(temperatures)), e.Variance(), tolerance)
	assert.InDelta(t, math.Sqrt(e.Variance()), e.StandardDeviation(), tolerance)
}

func TestEngine_Quartile(t *testing.T) {
	e := newTestEngine(t, 4, 3, 2, 1)
	tests := []struct {
		fraction float64
		want     float64
	}{
		{0.5, 3},
		{0.25, 2},
		{0.75, 4},
		{0.3, 2.5},
	}
	for _, test := range tests {
		got, err := e.Quartile(test.fraction)
		require.NoError(t, err)
		assert.Equal(t, test.want, got, "quartile %v", test.fraction)
	}

	got, err := newTestEngine(t, 1, 2, 3).Quartile(0.5)
	require.NoError(t, err)
	assert.Equal(t, 2.5, got)
}

func TestEngine_QuartileOutOfRange(t *testing.T) {
	e := newTestEngine(t, 5)
	for _, fraction := range []float64{0.5, 0.75} {
		_, err := e.Quartile(fraction)
		assert.True(t, errors.Is(err, ErrIndexOutOfRange), "fraction %v", fraction)
	}

	e = newTestEngine(t, 1, 2, 3, 4)
	for _, fraction := range []float64{0, 1, -0.25, 1.5, math.NaN()} {
		_, err := e.Quartile(fraction)
		assert.True(t, errors.Is(err, ErrIndexOutOfRange), "fraction %v", fraction)
	}
}

func TestEngine_TrimmedMean(t *testing.T) {
	e := newTestEngine(t, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
	got, err := e.TrimmedMean(10)
	require.NoError(t, err)
	assert.Equal(t, 5.5, got)

	e = newTestEngine(t, 100, 1, 2, 3, 4)
	got, err = e.TrimmedMean(20)
	require.NoError(t, err)
	assert.Equal(t, 3.0, got)
}

func TestEngine_TrimmedMeanZeroEqualsMean(t *testing.T) {
	for _, values := range [][]float64{{10, 20, 30}, {42}, temperatures} {
		e := newTestEngine(t, values...)
		got, err := e.TrimmedMean(0)
		require.NoError(t, err)
		assert.Equal(t, e.Mean(), got)
	}
}

func TestEngine_TrimmedMeanRejectsInvalidPercentages(t *testing.T) {
	e := newTestEngine(t, 1, 2, 3, 4)
	for _, percent := range []float64{100, 150, -1, 50, 45, math.NaN()} {
		_, err := e.TrimmedMean(percent)
		assert.True(t, errors.Is(err, ErrInvalidTrim), "percent %v", percent)
	}
}

func TestEngine_TrimmedMeanIsMemoized(t *testing.T) {
	e := newTestEngine(t, temperatures...)
	first, err := e.TrimmedMean(5)
	require.NoError(t, err)
	assert.True(t, e.memo.Contains(queryKey{trimmedMeanQuery, 5}))

	second, err := e.TrimmedMean(5)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	_, err = e.TrimmedMean(100)
	require.Error(t, err)
	assert.False(t, e.memo.Contains(queryKey{trimmedMeanQuery, 100}))
}

func TestEngine_QuartileIsMemoized(t *testing.T) {
	e := newTestEngine(t, 4, 3, 2, 1)
	got, err := e.Quartile(0.25)
	require.NoError(t, err)
	assert.Equal(t, 2.0, got)
	assert.True(t, e.memo.Contains(queryKey{quartileQuery, 0.25}))

	// a cached entry is returned without recomputation
	e.memo.Add(queryKey{quartileQuery, 0.25}, 42.0)
	got, err = e.Quartile(0.25)
	require.NoError(t, err)
	assert.Equal(t, 42.0, got)
	assert.False(t, e.memo.Contains(queryKey{trimmedMeanQuery, 0.25}))
}

func TestEngine_FailedQuartileIsNotMemoized(t *testing.T) {
	e := newTestEngine(t, 5)
	for _, fraction := range []float64{0.75, 1.5} {
		_, err := e.Quartile(fraction)
		require.True(t, errors.Is(err, ErrIndexOutOfRange))
		assert.False(t, e.memo.Contains(queryKey{quartileQuery, fraction}), "fraction %v", fraction)
	}
	assert.Equal(t, 0, e.memo.Len())
}

func TestEngine_IsolatedFromRecordChanges(t *testing.T) {
	records := dataset.NewRecords()
	records.Append(dataset.Record{Key: "d1", Value: 1})
	e, err := NewEngine(records)
	require.NoError(t, err)

	records.Append(dataset.Record{Key: "d2", Value: 2})
	e.Records().Append(dataset.Record{Key: "d3", Value: 3})

	assert.Equal(t, 1, e.Len())
	assert.Equal(t, []string{"d1"}, e.Records().Keys())
}
