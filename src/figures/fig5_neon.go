package figures

import (
	"fmt"

	"github.com/iafilius/AttosecondDelays/src/physics"
	"github.com/iafilius/AttosecondDelays/src/sweep"
)

// NeonDetail shows the neon delay with its plateau, crossover and Coulomb regimes and the
// local power-law exponent d ln(tau) / d ln(E).
func NeonDetail(eng *physics.Engine) (*Figure, error) {
	ne, err := eng.Table().Lookup("Ne")
	if err != nil {
		return nil, err
	}
	energies, err := sweep.LogSpace(-1, 2, 200)
	if err != nil {
		return nil, err
	}
	delay, err := sweep.QGU(eng, ne, ne.Zeff, energies, physics.ModelV2)
	if err != nil {
		return nil, err
	}
	ec, err := eng.ModelCutoff(ne.Symbol, ne.Z, ne.Zeff, physics.ModelV2)
	if err != nil {
		return nil, err
	}

	coulomb, err := sweep.Coulomb(eng, ne.Zeff, energies)
	if err != nil {
		return nil, err
	}
	ref, err := sweep.LogSpace(0, 2, 50)
	if err != nil {
		return nil, err
	}
	crossoverRef := ref.Below(ec)
	ecMarker := Guide{At: ec, Color: fade(blue, 0.7), Width: 2, Dash: Dotted}

	regimes := &Panel{
		Title: "(a) Neon: Three-regime behavior",
		X:     Axis{Label: "Energy (eV)", Min: 0.1, Max: 100, Scale: Log},
		Y:     Axis{Label: "Time delay (as)", Min: 5, Max: 500, Scale: Log},
		Spans: []Region{
			{Name: "Plateau", From: 0.1, To: 0.5 * ec, Color: fade(green, 0.2)},
			{Name: "Crossover", From: 0.5 * ec, To: 2 * ec, Color: fade(yellow, 0.2)},
			{Name: "Coulomb", From: 2 * ec, To: 100, Color: fade(red, 0.2)},
		},
		Lines: []Line{
			{Name: "Coulomb E^-3/2", X: energies, Y: coulomb, Color: fade(red, 0.7), Width: 2.5, Dash: Dashed},
			{Name: "QGU regularized", X: energies, Y: delay, Color: blue, Width: 3},
			{Name: "E^-3/2 reference", X: ref, Y: sweep.PowerLaw(ref, 100, -1.5), Color: fade(black, 0.5), Width: 1.5, Dash: Dotted},
			{Name: "E^-1.2 crossover", X: crossoverRef, Y: sweep.PowerLaw(crossoverRef, 30, -1.2), Color: fade(magenta, 0.5), Width: 1.5, Dash: Dotted},
		},
		VLines: []Guide{ecMarker},
		Labels: []Label{{Text: fmt.Sprintf("Ec=%.1f eV", ec), X: ec * 1.2, Y: 6, Color: blue, Size: 10}},
		Legend: UpperRight,
		Grid:   true,
	}

	slope, err := sweep.LogDerivative(energies, delay)
	if err != nil {
		return nil, err
	}
	exponent := &Panel{
		Title: "(b) Power law evolution",
		X:     Axis{Label: "Energy (eV)", Min: 0.1, Max: 100, Scale: Log},
		Y:     Axis{Label: "Effective power law exponent", Min: -2, Max: 0.5},
		Lines: []Line{
			{Name: "d ln(tau)/d ln(E)", X: energies, Y: slope, Color: blue, Width: 2.5},
		},
		HLines: []Guide{
			{Name: "Coulomb (-3/2)", At: -1.5, Color: fade(red, 0.6), Width: 2, Dash: Dashed},
			{Name: "Plateau (0)", At: 0, Color: fade(green, 0.6), Width: 2, Dash: Dashed},
		},
		VLines: []Guide{ecMarker},
		Spans:  []Region{{From: 0.5 * ec, To: 2 * ec, Color: fade(yellow, 0.2)}},
		Legend: LowerRight,
		Grid:   true,
	}

	return &Figure{
		Stem:   "fig5_neon_detail",
		Title:  "Neon: crossover from plateau to Coulomb scaling",
		Rows:   1,
		Cols:   2,
		Panels: []*Panel{regimes, exponent},
		Tables: map[string]interface{}{
			"cutoff_ev":  ec,
			"plateau_as": eng.PlateauDelay(ec),
		},
	}, nil
}
