package figures

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	chart "github.com/wcharczuk/go-chart/v2"
)

func tickLabels(ts []chart.Tick) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.Label
	}
	return out
}

func TestFormatTick(t *testing.T) {
	cases := map[float64]string{
		0:     "0",
		1500:  "1500",
		100:   "100",
		14.5:  "14.5",
		10:    "10",
		2.5:   "2.5",
		0.5:   "0.5",
		0.25:  "0.25",
		0.05:  "0.05",
		0.001: "0.001",
		-600:  "-600",
		-1.5:  "-1.5",
	}
	for v, want := range cases {
		assert.Equal(t, want, formatTick(v), "formatTick(%g)", v)
	}
}

func TestAxisTicks_LinearCoversWindow(t *testing.T) {
	ts := Axis{Min: 0, Max: 700}.ticks()
	require.NotEmpty(t, ts)
	assert.Equal(t, 0.0, ts[0].Value)
	assert.Equal(t, 700.0, ts[len(ts)-1].Value)
	assert.Equal(t, []string{"0", "100", "200", "300", "400", "500", "600", "700"}, tickLabels(ts))
}

func TestAxisTicks_EdgeLabels(t *testing.T) {
	// 12.5 sits within 6% of 13, so the edge tick stays unlabelled
	crowded := Axis{Min: 0, Max: 13}.ticks()
	last := crowded[len(crowded)-1]
	assert.Equal(t, 13.0, last.Value)
	assert.Empty(t, last.Label)

	roomy := Axis{Min: 0, Max: 14}.ticks()
	last = roomy[len(roomy)-1]
	assert.Equal(t, 14.0, last.Value)
	assert.Equal(t, "14", last.Label)
}

func TestAxisTicks_LogShortRangeAddsSubdecades(t *testing.T) {
	ts := Axis{Min: 0.5, Max: 20, Scale: Log}.ticks()
	assert.Equal(t, []string{"0.5", "1", "2", "5", "10", "20"}, tickLabels(ts))
	assert.InDelta(t, math.Log10(0.5), ts[0].Value, 1e-9)
	assert.InDelta(t, math.Log10(20), ts[len(ts)-1].Value, 1e-9)
}

func TestAxisTicks_LogDecades(t *testing.T) {
	ts := Axis{Min: 1, Max: 100, Scale: Log}.ticks()
	assert.Equal(t, []string{"1", "10", "100"}, tickLabels(ts))

	ts = Axis{Min: 5, Max: 2000, Scale: Log}.ticks()
	assert.InDelta(t, math.Log10(5), ts[0].Value, 1e-12)
	assert.InDelta(t, math.Log10(2000), ts[len(ts)-1].Value, 1e-12)
	assert.Contains(t, tickLabels(ts), "1000")
}

func TestAxisTicks_CategoriesHaveBlankEdges(t *testing.T) {
	a := Axis{Min: -0.6, Max: 4.6}
	for i, s := range []string{"He", "Ne", "Ar", "Kr", "Xe"} {
		a.Categories = append(a.Categories, Category{Value: float64(i), Label: s})
	}
	ts := a.ticks()
	assert.Equal(t, []string{"", "He", "Ne", "Ar", "Kr", "Xe", ""}, tickLabels(ts))
	assert.Equal(t, -0.6, ts[0].Value)
	assert.Equal(t, 4.6, ts[6].Value)
}

func TestAxisValidate(t *testing.T) {
	assert.NoError(t, Axis{Min: 0, Max: 1}.validate())
	assert.Error(t, Axis{Min: 1, Max: 1}.validate())
	assert.Error(t, Axis{Min: 0, Max: 10, Scale: Log}.validate())
	assert.NoError(t, Axis{Min: 0.1, Max: 10, Scale: Log}.validate())
}

func TestAxisProject(t *testing.T) {
	log := Axis{Min: 1, Max: 100, Scale: Log}
	assert.InDelta(t, 2.0, log.project(100), 1e-12)
	assert.True(t, math.IsInf(log.project(0), -1))
	assert.Equal(t, -3.0, Axis{Min: -5, Max: 5}.project(-3))
}

func TestNiceAxisBounds(t *testing.T) {
	lo, hi := niceAxisBounds(10, 50)
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 60.0, hi)

	lo, hi = niceAxisBounds(3, 3)
	assert.Less(t, lo, 3.0)
	assert.Greater(t, hi, 3.0)
}
