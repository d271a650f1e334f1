package figures

import (
	"fmt"
	"math"

	"github.com/iafilius/AttosecondDelays/src/physics"
	"github.com/iafilius/AttosecondDelays/src/sweep"
)

// HeliumDelays compares the Coulomb, v1.0 and v2.0 delays of helium.
func HeliumDelays(eng *physics.Engine) (*Figure, error) {
	he, err := eng.Table().Lookup("He")
	if err != nil {
		return nil, err
	}
	energies, err := sweep.LogSpace(-0.3, 1.7, 200)
	if err != nil {
		return nil, err
	}
	zBare := float64(he.Z)

	coulomb, err := sweep.Coulomb(eng, he.Zeff, energies)
	if err != nil {
		return nil, err
	}
	v10, err := sweep.QGU(eng, he, zBare, energies, physics.ModelV1)
	if err != nil {
		return nil, err
	}
	v20, err := sweep.QGU(eng, he, he.Zeff, energies, physics.ModelV2)
	if err != nil {
		return nil, err
	}
	ecV10, err := eng.ModelCutoff(he.Symbol, he.Z, zBare, physics.ModelV1)
	if err != nil {
		return nil, err
	}
	ecV20, err := eng.ModelCutoff(he.Symbol, he.Z, he.Zeff, physics.ModelV2)
	if err != nil {
		return nil, err
	}
	plateau := eng.PlateauDelay(ecV20)

	eLo, eHi := math.Pow(10, -0.3), math.Pow(10, 1.7)
	energyAxis := Axis{Label: "Energy (eV)", Min: eLo, Max: eHi, Scale: Log}

	loglog := &Panel{
		Title: "(a) Helium: Log-log comparison",
		X:     energyAxis,
		Y:     Axis{Label: "Time delay (as)", Min: 5, Max: 2000, Scale: Log},
		Lines: []Line{
			{Name: "Coulomb divergence", X: energies, Y: coulomb, Color: fade(red, 0.7), Width: 2.5, Dash: Dashed},
			{Name: fmt.Sprintf("v1.0 (Z=%d)", he.Z), X: energies, Y: v10, Color: fade(blue, 0.8), Width: 2},
			{Name: fmt.Sprintf("v2.0 (Zeff=%.2f)", he.Zeff), X: energies, Y: v20, Color: green, Width: 2.5},
		},
		VLines: []Guide{
			{At: ecV10, Color: fade(blue, 0.6), Width: 1.5, Dash: Dotted},
			{At: ecV20, Color: fade(green, 0.6), Width: 1.5, Dash: Dotted},
		},
		Labels: []Label{
			{Text: fmt.Sprintf("%.1f eV", ecV10), X: ecV10 * 1.1, Y: 15, Color: blue},
			{Text: fmt.Sprintf("%.1f eV", ecV20), X: ecV20 * 0.6, Y: 15, Color: green},
		},
		Legend: UpperRight,
		Grid:   true,
	}

	thresh, err := sweep.LinSpace(0.5, 10, 100)
	if err != nil {
		return nil, err
	}
	coulombT, err := sweep.Coulomb(eng, he.Zeff, thresh)
	if err != nil {
		return nil, err
	}
	v10T, err := sweep.QGU(eng, he, zBare, thresh, physics.ModelV1)
	if err != nil {
		return nil, err
	}
	v20T, err := sweep.QGU(eng, he, he.Zeff, thresh, physics.ModelV2)
	if err != nil {
		return nil, err
	}
	// the plateau span runs to Ec, past the sampled energies
	threshold := &Panel{
		Title: "(b) Near-threshold detail",
		X:     Axis{Label: "Energy (eV)", Min: 0, Max: math.Ceil(ecV20 + 0.5)},
		Y:     Axis{Label: "Time delay (as)", Min: 0, Max: 700},
		Lines: []Line{
			{Name: "Coulomb", X: thresh, Y: coulombT, Color: fade(red, 0.7), Width: 2.5, Dash: Dashed},
			{Name: "v1.0", X: thresh, Y: v10T, Color: blue, Width: 2},
			{Name: "v2.0", X: thresh, Y: v20T, Color: green, Width: 2.5},
		},
		Spans:  []Region{{Name: "Plateau region", From: 0, To: ecV20, Color: fade(green, 0.15)}},
		HLines: []Guide{{At: plateau, Color: fade(green, 0.5), Width: 1, Dash: Dashed}},
		Legend: UpperRight,
		Grid:   true,
	}

	ratioV10, err := sweep.Ratio(v10, coulomb)
	if err != nil {
		return nil, err
	}
	ratioV20, err := sweep.Ratio(v20, coulomb)
	if err != nil {
		return nil, err
	}
	suppression := &Panel{
		Title: "(c) Suppression factor",
		X:     energyAxis,
		Y:     Axis{Label: "Delay ratio", Min: 0, Max: 1.2},
		Lines: []Line{
			{Name: "v1.0 / Coulomb", X: energies, Y: ratioV10, Color: blue, Width: 2},
			{Name: "v2.0 / Coulomb", X: energies, Y: ratioV20, Color: green, Width: 2.5},
		},
		HLines: []Guide{{Name: "No suppression", At: 1, Color: fade(red, 0.5), Width: 1.5, Dash: Dashed}},
		VLines: []Guide{{At: ecV20, Color: fade(green, 0.6), Width: 1.5, Dash: Dotted}},
		Legend: LowerRight,
		Grid:   true,
	}

	residual, err := sweep.Difference(v20, coulomb)
	if err != nil {
		return nil, err
	}
	deviation := &Panel{
		Title: "(d) Deviation from Coulomb",
		X:     energyAxis,
		Y:     Axis{Label: "Residual (as)", Min: -600, Max: 50},
		Lines: []Line{
			{Name: "v2.0 - Coulomb", X: energies, Y: residual, Color: green, Width: 2.5},
		},
		HLines: []Guide{{At: 0, Color: fade(red, 0.5), Width: 1.5, Dash: Dashed}},
		VLines: []Guide{{At: ecV20, Color: fade(green, 0.6), Width: 1.5, Dash: Dotted}},
		Bands:  []Region{{Name: "Numerical uncertainty", From: -2.5, To: 2.5, Color: fade(gray, 0.2)}},
		Legend: LowerRight,
		Grid:   true,
	}

	return &Figure{
		Stem:   "fig1_helium_delays",
		Title:  "Helium photoionization time delays",
		Rows:   2,
		Cols:   2,
		Panels: []*Panel{loglog, threshold, suppression, deviation},
		Tables: map[string]interface{}{
			"ec_v1_ev":      ecV10,
			"ec_v2_ev":      ecV20,
			"plateau_v2_as": plateau,
		},
	}, nil
}
