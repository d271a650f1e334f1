package figures

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var unit = window{x0: 0, x1: 10, y0: 0, y1: 10}

func TestClipPolyline_CrossesBothEdges(t *testing.T) {
	runs, outside := unit.clipPolyline([]float64{-5, 5, 15}, []float64{5, 5, 5})
	require.Len(t, runs, 1)
	assert.Equal(t, 2, outside)
	assert.InDeltaSlice(t, []float64{0, 5, 10}, runs[0].xs, 1e-12)
	assert.InDeltaSlice(t, []float64{5, 5, 5}, runs[0].ys, 1e-12)
}

func TestClipPolyline_LeavesAndReenters(t *testing.T) {
	runs, outside := unit.clipPolyline([]float64{1, 20, 2}, []float64{1, 1, 1})
	require.Len(t, runs, 2)
	assert.Equal(t, 1, outside)
	assert.InDeltaSlice(t, []float64{1, 10}, runs[0].xs, 1e-9)
	assert.InDeltaSlice(t, []float64{10, 2}, runs[1].xs, 1e-9)
}

func TestClipPolyline_InsideUnchanged(t *testing.T) {
	xs := []float64{1, 2, 3, 4}
	ys := []float64{4, 3, 2, 1}
	runs, outside := unit.clipPolyline(xs, ys)
	require.Len(t, runs, 1)
	assert.Zero(t, outside)
	assert.Equal(t, xs, runs[0].xs)
	assert.Equal(t, ys, runs[0].ys)
}

func TestClipPolyline_DiagonalEntersThroughCorner(t *testing.T) {
	runs, _ := unit.clipPolyline([]float64{-2, 12}, []float64{-2, 12})
	require.Len(t, runs, 1)
	assert.InDeltaSlice(t, []float64{0, 10}, runs[0].xs, 1e-12)
	assert.InDeltaSlice(t, []float64{0, 10}, runs[0].ys, 1e-12)
}

func TestClipPolyline_NonFiniteBreaksRun(t *testing.T) {
	runs, outside := unit.clipPolyline([]float64{1, 2, 3, 4}, []float64{1, math.NaN(), 3, 4})
	require.Len(t, runs, 1)
	assert.Equal(t, 1, outside)
	assert.Equal(t, []float64{3, 4}, runs[0].xs)
}

func TestClipPolyline_FullyOutside(t *testing.T) {
	runs, outside := unit.clipPolyline([]float64{-3, -1}, []float64{20, 30})
	assert.Empty(t, runs)
	assert.Equal(t, 2, outside)
}
