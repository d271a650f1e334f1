package figures

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
)

// Scale selects how an axis maps data values onto the panel.
type Scale int

const (
	Linear Scale = iota
	Log
)

// Category is an explicitly labelled tick position, in data units.
type Category struct {
	Value float64
	Label string
}

// Axis describes one panel axis. Min and Max are in data units and must be > 0 on a Log axis.
type Axis struct {
	Label      string
	Min, Max   float64
	Scale      Scale
	Categories []Category
}

// project maps a data value into plotting space (log10 on Log axes).
func (a Axis) project(v float64) float64 {
	if a.Scale == Log {
		if v <= 0 {
			return math.Inf(-1)
		}
		return math.Log10(v)
	}
	return v
}

// window returns the axis extent in plotting space.
func (a Axis) window() (float64, float64) {
	return a.project(a.Min), a.project(a.Max)
}

func (a Axis) validate() error {
	if !(a.Max > a.Min) {
		return fmt.Errorf("axis %q: max %g must exceed min %g", a.Label, a.Max, a.Min)
	}
	if a.Scale == Log && !(a.Min > 0) {
		return fmt.Errorf("axis %q: log scale needs min > 0, got %g", a.Label, a.Min)
	}
	return nil
}

// ticks returns tick marks in plotting space. The first and last tick always sit on the
// window edges since go-chart derives the axis range from the tick extent.
func (a Axis) ticks() []chart.Tick {
	lo, hi := a.window()
	switch {
	case len(a.Categories) > 0:
		var ts []chart.Tick
		for _, c := range a.Categories {
			v := a.project(c.Value)
			if v >= lo && v <= hi {
				ts = append(ts, chart.Tick{Value: v, Label: c.Label})
			}
		}
		return withEdges(ts, lo, hi, nil)
	case a.Scale == Log:
		return withEdges(logTicks(lo, hi), lo, hi, func(v float64) string { return formatTick(math.Pow(10, v)) })
	default:
		return withEdges(niceTicks(lo, hi, 6), lo, hi, formatTick)
	}
}

// niceTicks generates up to n tick marks inside [min, max] using 1, 2, 2.5, 5 steps.
func niceTicks(min, max float64, n int) []chart.Tick {
	if n < 2 || math.IsNaN(min) || math.IsNaN(max) {
		return nil
	}
	if max <= min {
		max = min + 1
	}
	span := max - min
	mag := math.Pow(10, math.Floor(math.Log10(span/float64(n-1))))
	candidates := []float64{1, 2, 2.5, 5, 10}
	bestStep := mag
	bestScore := math.MaxFloat64
	for _, c := range candidates {
		step := c * mag
		count := math.Floor(span/step) + 1
		score := math.Abs(count - float64(n))
		if score < bestScore {
			bestScore = score
			bestStep = step
		}
	}
	eps := bestStep * 1e-9
	start := math.Ceil((min-eps)/bestStep) * bestStep
	ticks := []chart.Tick{}
	for i := 0; ; i++ {
		v := start + float64(i)*bestStep
		if v > max+eps || i > n+2 {
			break
		}
		if math.Abs(v) < eps {
			v = 0
		}
		ticks = append(ticks, chart.Tick{Value: v, Label: formatTick(v)})
	}
	return ticks
}

// logTicks returns decade ticks (plus 2x and 5x when the window spans less than two
// decades) for a window given in log10 units.
func logTicks(lo, hi float64) []chart.Tick {
	mults := []float64{1}
	if hi-lo < 2 {
		mults = []float64{1, 2, 5}
	}
	var ticks []chart.Tick
	for d := math.Floor(lo); d <= math.Ceil(hi); d++ {
		for _, m := range mults {
			v := d + math.Log10(m)
			if v < lo-1e-9 || v > hi+1e-9 {
				continue
			}
			ticks = append(ticks, chart.Tick{Value: v, Label: formatTick(math.Pow(10, v))})
		}
	}
	return ticks
}

// withEdges adds ticks at lo and hi when missing. Edge ticks are unlabelled when label is
// nil or when they crowd a neighbouring tick.
func withEdges(ts []chart.Tick, lo, hi float64, label func(float64) string) []chart.Tick {
	span := hi - lo
	near := func(v float64) (bool, bool) {
		same, crowded := false, false
		for _, t := range ts {
			d := math.Abs(t.Value - v)
			if d < span*1e-9 {
				same = true
			} else if d < span*0.06 {
				crowded = true
			}
		}
		return same, crowded
	}
	out := make([]chart.Tick, 0, len(ts)+2)
	if same, crowded := near(lo); !same {
		t := chart.Tick{Value: lo}
		if !crowded && label != nil {
			t.Label = label(lo)
		}
		out = append(out, t)
	}
	out = append(out, ts...)
	if same, crowded := near(hi); !same {
		t := chart.Tick{Value: hi}
		if !crowded && label != nil {
			t.Label = label(hi)
		}
		out = append(out, t)
	}
	return out
}

func formatTick(v float64) string {
	if v == 0 {
		return "0"
	}
	av := math.Abs(v)
	var s string
	switch {
	case av >= 100:
		s = fmt.Sprintf("%.0f", v)
	case av >= 10:
		s = fmt.Sprintf("%.1f", v)
	case av >= 0.1:
		s = fmt.Sprintf("%.2f", v)
	default:
		s = strconv.FormatFloat(v, 'g', 2, 64)
	}
	if strings.Contains(s, ".") && !strings.ContainsAny(s, "eE") {
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	}
	return s
}

// niceAxisBounds expands [min,max] by a small margin and rounds to "nice" numbers for readability.
func niceAxisBounds(min, max float64) (float64, float64) {
	if math.IsNaN(min) || math.IsNaN(max) {
		return min, max
	}
	if max <= min {
		max = min + 1
	}
	span := max - min
	// 5% margin on both sides
	pad := span * 0.05
	a := min - pad
	b := max + pad
	mag := math.Pow(10, math.Floor(math.Log10(span)))
	if !math.IsInf(mag, 0) && mag > 0 {
		a = math.Floor(a/mag) * mag
		b = math.Ceil(b/mag) * mag
	}
	return a, b
}
