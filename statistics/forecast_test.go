package statistics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPredictTemps_UsesLowestSevenValues(t *testing.T) {
	e := newTestEngine(t, 9, 1, 8, 2, 7, 3, 6, 4, 5, 10)
	f := e.PredictTemps()

	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6, 7}, f.Week)
	assert.Equal(t, 4.0, f.Average)
	assert.InDelta(t, 2.0, f.StdDev, tolerance)
}

func TestPredictTemps_ShortSample(t *testing.T) {
	e := newTestEngine(t, 30, 10, 20)
	f := e.PredictTemps()

	assert.Equal(t, []float64{10, 20, 30}, f.Week)
	assert.Equal(t, 20.0, f.Average)
	assert.InDelta(t, math.Sqrt(200.0/3.0), f.StdDev, tolerance)
}
