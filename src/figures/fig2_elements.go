package figures

import (
	"fmt"

	"github.com/iafilius/AttosecondDelays/src/physics"
	"github.com/iafilius/AttosecondDelays/src/sweep"
)

// AllElements plots the v2.0 delay of every element, absolute and scaled by the cutoff.
func AllElements(eng *physics.Engine) (*Figure, error) {
	energies, err := sweep.LogSpace(-1, 2, 150)
	if err != nil {
		return nil, err
	}
	curves, err := sweep.AllElements(eng, energies, physics.ModelV2)
	if err != nil {
		return nil, err
	}

	absolute := &Panel{
		Title:  "(a) Multi-element time delays",
		X:      Axis{Label: "Energy (eV)", Min: 0.1, Max: 100, Scale: Log},
		Y:      Axis{Label: "Time delay (as)", Min: 5, Max: 1000, Scale: Log},
		Legend: UpperRight,
		Grid:   true,
	}
	scaled := &Panel{
		Title: "(b) Universal scaling",
		X:     Axis{Label: "E / Ec", Min: 0.01, Max: 100, Scale: Log},
		Y:     Axis{Label: "tau / tau_plateau", Min: 0.5, Max: 20, Scale: Log},
		VLines: []Guide{
			{Name: "E/Ec = 1", At: 1, Color: fade(black, 0.5), Width: 2, Dash: Dashed},
		},
		HLines: []Guide{
			{At: 1, Color: fade(gray, 0.5), Width: 1.5, Dash: Dotted},
		},
		Legend: UpperRight,
		Grid:   true,
	}
	cutoffs := map[string]float64{}
	for _, c := range curves {
		sym := c.Element.Symbol
		col := elementColor(sym)
		cutoffs[sym] = c.Cutoff
		absolute.Lines = append(absolute.Lines, Line{
			Name:  fmt.Sprintf("%s (Ec=%.1f eV)", sym, c.Cutoff),
			X:     energies,
			Y:     c.Delay,
			Color: fade(col, 0.85),
			Width: 2.5,
		})
		absolute.VLines = append(absolute.VLines, Guide{At: c.Cutoff, Color: fade(col, 0.4), Width: 1, Dash: Dotted})

		scaled.Lines = append(scaled.Lines, Line{
			Name:  sym,
			X:     energies.Scaled(1 / c.Cutoff),
			Y:     sweep.Scale(c.Delay, 1/c.Plateau),
			Color: fade(col, 0.85),
			Width: 2,
		})
	}

	ref, err := sweep.Coulomb(eng, 2, energies)
	if err != nil {
		return nil, err
	}
	absolute.Lines = append(absolute.Lines, Line{
		Name:  "Coulomb (Z=2)",
		X:     energies,
		Y:     ref,
		Color: fade(black, 0.5),
		Width: 2,
		Dash:  Dashed,
	})

	return &Figure{
		Stem:       "fig2_all_elements",
		Title:      "Noble gas time delays (v2.0)",
		Rows:       1,
		Cols:       2,
		Panels:     []*Panel{absolute, scaled},
		ColWeights: []float64{1.2, 1},
		Tables:     map[string]interface{}{"cutoff_ev": cutoffs},
	}, nil
}
