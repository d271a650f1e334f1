package figures

import (
	"fmt"
	"math"

	"github.com/iafilius/AttosecondDelays/src/physics"
	"github.com/iafilius/AttosecondDelays/src/sweep"
)

// Scaling compares Z^2, Zeff^2 and fully corrected cutoff scaling.
func Scaling(eng *physics.Engine) (*Figure, error) {
	rows, err := sweep.Scaling(eng)
	if err != nil {
		return nil, err
	}
	n := len(rows)
	z := make([]float64, n)
	ecZ := make([]float64, n)
	ecZeff := make([]float64, n)
	ecFull := make([]float64, n)
	reduction := make([]float64, n)
	for i, r := range rows {
		z[i] = float64(r.Z)
		ecZ[i] = r.EcZ
		ecZeff[i] = r.EcZeff
		ecFull[i] = r.EcFull
		reduction[i] = r.Reduction
	}

	fitZ, err := sweep.PowerLawFit(z, ecZ)
	if err != nil {
		return nil, fmt.Errorf("Z^2 fit: %w", err)
	}
	fitFull, err := sweep.PowerLawFit(z, ecFull)
	if err != nil {
		return nil, fmt.Errorf("corrected fit: %w", err)
	}
	zFit, err := sweep.LogSpace(math.Log10(2), math.Log10(60), 50)
	if err != nil {
		return nil, err
	}

	power := &Panel{
		Title: "(a) Scaling: Z^2 vs Zeff^2",
		X:     Axis{Label: "Nuclear charge Z", Min: 1.5, Max: 80, Scale: Log},
		Y:     Axis{Label: "Cutoff energy (eV)", Min: 10, Max: 30000, Scale: Log},
		Lines: []Line{
			{Name: "Ec ~ Z^2", X: z, Y: ecZ, Color: fade(red, 0.7), Width: 2.5, Marker: 5},
			{Name: "Ec ~ Zeff^2", X: z, Y: ecZeff, Color: blue, Width: 2.5, Marker: 5},
			{Name: "Full corrections", X: z, Y: ecFull, Color: green, Width: 3, Marker: 5.5},
			{Name: fmt.Sprintf("Fit: Z^%.2f", fitZ.Exponent), X: zFit, Y: fitZ.At(zFit), Color: fade(red, 0.5), Width: 2, Dash: Dotted},
			{Name: fmt.Sprintf("Fit: Z^%.2f", fitFull.Exponent), X: zFit, Y: fitFull.At(zFit), Color: fade(green, 0.5), Width: 2, Dash: Dotted},
		},
		Legend: UpperLeft,
		Grid:   true,
	}
	for _, r := range rows {
		power.Labels = append(power.Labels, Label{Text: r.Symbol, X: float64(r.Z) * 1.15, Y: r.EcFull, Size: 10})
	}

	enhancement := &Panel{
		Title: "(b) Multi-electron enhancement",
		X:     Axis{Label: "Nuclear charge Z", Min: 0, Max: 58},
		Y:     Axis{Label: "Reduction factor", Min: 0.8, Max: 300, Scale: Log},
		Lines: []Line{
			{Name: "Total reduction", X: z, Y: reduction, Color: green, Width: 3, Marker: 6},
		},
		HLines: []Guide{{Name: "No reduction", At: 1, Color: fade(red, 0.5), Width: 2, Dash: Dashed}},
		Legend: UpperLeft,
		Grid:   true,
	}
	for _, r := range rows {
		enhancement.X.Categories = append(enhancement.X.Categories, Category{Value: float64(r.Z), Label: r.Symbol})
		enhancement.Labels = append(enhancement.Labels, Label{
			Text:   fmt.Sprintf("%.1f×", r.Reduction),
			X:      float64(r.Z),
			Y:      r.Reduction * 1.3,
			Size:   10,
			Center: true,
		})
	}

	return &Figure{
		Stem:   "fig3_scaling",
		Title:  "Cutoff energy scaling with nuclear charge",
		Rows:   1,
		Cols:   2,
		Panels: []*Panel{power, enhancement},
		Tables: map[string]interface{}{
			"rows":          rows,
			"fit_bare_z":    fitZ,
			"fit_corrected": fitFull,
		},
	}, nil
}
