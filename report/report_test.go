package report

import (
	"bytes"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/Fantom-foundation/tempstats/dataset"
	"github.com/Fantom-foundation/tempstats/statistics"
	"github.com/fatih/color"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

func makeRecords(t *testing.T, values ...float64) *dataset.Records {
	t.Helper()
	records := dataset.NewRecords()
	for i, v := range values {
		require.True(t, records.Append(dataset.Record{Key: fmt.Sprintf("2023-01-%02d", i+1), Value: v}))
	}
	return records
}

func makeEngine(t *testing.T, values ...float64) *statistics.Engine {
	t.Helper()
	e, err := statistics.NewEngine(makeRecords(t, values...))
	require.NoError(t, err)
	return e
}

func oneToTen(t *testing.T) *statistics.Engine {
	return makeEngine(t, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1)
}

func TestNewReport_ComputesAllStatistics(t *testing.T) {
	r, err := NewReport(oneToTen(t), Options{Source: "test.csv", Rand: rand.New(rand.NewSource(7))})
	require.NoError(t, err)

	assert.Equal(t, "test.csv", r.Source)
	assert.Equal(t, 10, r.Count)
	assert.Equal(t, 5.5, r.Mean)
	assert.Equal(t, 5.5, r.Median)
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, r.Modes)
	assert.InDelta(t, 8.25, r.Variance, 1e-9)
	assert.InDelta(t, 2.8722813232690143, r.StandardDeviation, 1e-9)
	assert.Equal(t, 10, r.RandomSample.Size)
	assert.Equal(t, []TrimmedMean{{5, 5.5}, {10, 5.5}, {20, 5.5}}, r.TrimmedMeans)
	assert.Equal(t, 3.5, r.FirstQuartile)
	assert.Equal(t, 8.5, r.ThirdQuartile)
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6, 7}, r.Forecast.Week)
	assert.Equal(t, 4.0, r.Forecast.Average)
	assert.InDelta(t, 2.0, r.Forecast.StdDev, 1e-9)
}

func TestNewReport_SeededSampleIsReproducible(t *testing.T) {
	e := oneToTen(t)
	a, err := NewReport(e, Options{SampleSize: 25, Rand: rand.New(rand.NewSource(42))})
	require.NoError(t, err)
	b, err := NewReport(e, Options{SampleSize: 25, Rand: rand.New(rand.NewSource(42))})
	require.NoError(t, err)

	assert.Equal(t, 25, a.RandomSample.Size)
	assert.Equal(t, a.RandomSample, b.RandomSample)
	assert.GreaterOrEqual(t, a.RandomSample.Mean, 1.0)
	assert.LessOrEqual(t, a.RandomSample.Mean, 10.0)
}

func TestNewReport_CustomTrims(t *testing.T) {
	r, err := NewReport(makeEngine(t, 100, 1, 2, 3, 4), Options{Trims: []float64{0, 20}})
	require.NoError(t, err)
	assert.Equal(t, []TrimmedMean{{0, 22}, {20, 3}}, r.TrimmedMeans)
}

func TestNewReport_FailsWhenStatisticFails(t *testing.T) {
	_, err := NewReport(makeEngine(t, 5), Options{})
	assert.True(t, errors.Is(err, statistics.ErrIndexOutOfRange), "unexpected error %v", err)

	_, err = NewReport(oneToTen(t), Options{Trims: []float64{50}})
	assert.True(t, errors.Is(err, statistics.ErrInvalidTrim), "unexpected error %v", err)

	_, err = NewReport(oneToTen(t), Options{SampleSize: -1})
	assert.True(t, errors.Is(err, statistics.ErrInvalidSampleSize), "unexpected error %v", err)
}

func TestReport_TextListsStatisticsInOrder(t *testing.T) {
	r, err := NewReport(makeEngine(t, 10, 20, 30, 40), Options{Source: "archive.csv", Rand: rand.New(rand.NewSource(1))})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.WriteText(&buf))
	text := buf.String()

	labels := []string{
		"Dataset: archive.csv",
		"Sample Mean: 25.00",
		"Sample Median: 25.00",
		"Sample Mode(s): 10.00, 20.00, 30.00, 40.00",
		"Sample Variance: 125.00",
		"Sample Standard Deviation: 11.18",
		"Random Sample (n=4): mean ",
		"Trimmed Mean (5%): 25.00",
		"Trimmed Mean (10%): 25.00",
		"Trimmed Mean (20%): 25.00",
		"First Quartile: 20.00",
		"Third Quartile: 40.00",
		"Week Forecast: 10.00, 20.00, 30.00, 40.00 (average 25.00, standard deviation 11.18)",
	}
	last := -1
	for _, label := range labels {
		pos := strings.Index(text, label)
		require.GreaterOrEqual(t, pos, 0, "missing %q in\n%s", label, text)
		assert.Greater(t, pos, last, "%q out of order", label)
		last = pos
	}
}

func TestReport_TextGroupsThousands(t *testing.T) {
	r, err := NewReport(makeEngine(t, 1000, 2000, 3000, 4000), Options{})
	require.NoError(t, err)
	assert.Contains(t, r.Text(), "Sample Mean: 2,500.00")
}

func TestReport_JSONRoundTrip(t *testing.T) {
	r, err := NewReport(oneToTen(t), Options{Rand: rand.New(rand.NewSource(3))})
	require.NoError(t, err)

	doc, err := r.JSON()
	require.NoError(t, err)
	assert.Contains(t, doc, `"firstQuartile": 3.5`)

	var back Report
	require.NoError(t, json.Unmarshal([]byte(doc), &back))
	assert.Equal(t, *r, back)
}
