package figures

import (
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/iafilius/AttosecondDelays/src/physics"
	"github.com/iafilius/AttosecondDelays/src/sweep"
)

// Corrections breaks the cutoff down by applied correction and plots each factor.
func Corrections(eng *physics.Engine) (*Figure, error) {
	rows, err := sweep.Breakdown(eng)
	if err != nil {
		return nil, err
	}

	cats := make([]Category, len(rows))
	for i, r := range rows {
		cats[i] = Category{Value: float64(i), Label: r.Symbol}
	}

	stages := []struct {
		name  string
		color drawing.Color
		value func(sweep.BreakdownRow) float64
	}{
		{"Bare Z^2", fade(drawing.ColorFromHex("e74c3c"), 0.7), func(r sweep.BreakdownRow) float64 { return r.EcZ }},
		{"After Zeff", fade(drawing.ColorFromHex("3498db"), 0.8), func(r sweep.BreakdownRow) float64 { return r.EcZeff }},
		{"+ Multi-e", fade(drawing.ColorFromHex("2ecc71"), 0.8), func(r sweep.BreakdownRow) float64 { return r.EcMulti }},
		{"+ All corrections", fade(drawing.ColorFromHex("9b59b6"), 0.9), func(r sweep.BreakdownRow) float64 { return r.EcFinal }},
	}
	cascade := &Panel{
		Title:  "(a) Cumulative correction impact",
		X:      Axis{Label: "Element", Min: -0.6, Max: float64(len(rows)) - 0.4, Categories: cats},
		Y:      Axis{Label: "Cutoff energy (eV)", Min: 5, Max: 30000, Scale: Log},
		Legend: UpperLeft,
		Grid:   true,
	}
	// stages share one slot per element, each drawn over the previous; only the final one is edged
	for s, st := range stages {
		var edge drawing.Color
		if s == len(stages)-1 {
			edge = black
		}
		for i, r := range rows {
			cascade.Bars = append(cascade.Bars, Bar{
				Name:   st.name,
				X:      float64(i),
				Width:  0.6,
				Value:  st.value(r),
				Color:  st.color,
				Edge:   edge,
				Legend: i == 0,
			})
		}
	}

	n := len(rows)
	idx := make([]float64, n)
	multi := make([]float64, n)
	rel := make([]float64, n)
	pol := make([]float64, n)
	for i, r := range rows {
		idx[i] = float64(i)
		multi[i] = r.Factors.Multi
		rel[i] = r.Factors.Rel
		pol[i] = r.Factors.Pol
	}
	factors := &Panel{
		Title: "(b) Individual correction factors",
		X:     Axis{Label: "Element", Min: -0.3, Max: float64(n) - 0.7, Categories: cats},
		Y:     Axis{Label: "Correction factor", Min: 0.5, Max: 1.1},
		Lines: []Line{
			{Name: "Multi-electron", X: idx, Y: multi, Color: drawing.ColorFromHex("2ecc71"), Width: 2.5, Marker: 5},
			{Name: "Relativistic", X: idx, Y: rel, Color: orange, Width: 2.5, Marker: 5},
			{Name: "Polarization", X: idx, Y: pol, Color: drawing.ColorFromHex("3498db"), Width: 2.5, Marker: 5},
		},
		HLines: []Guide{{Name: "No correction", At: 1, Color: fade(red, 0.5), Width: 1.5, Dash: Dashed}},
		Legend: LowerLeft,
		Grid:   true,
	}

	return &Figure{
		Stem:   "fig6_corrections",
		Title:  "Breakdown of cutoff corrections",
		Rows:   1,
		Cols:   2,
		Panels: []*Panel{cascade, factors},
		Tables: map[string]interface{}{"breakdown": rows},
	}, nil
}
