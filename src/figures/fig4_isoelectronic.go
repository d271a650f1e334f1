package figures

import (
	"fmt"

	"github.com/wcharczuk/go-chart/v2/drawing"
	"gonum.org/v1/gonum/floats"

	"github.com/iafilius/AttosecondDelays/src/physics"
	"github.com/iafilius/AttosecondDelays/src/sweep"
)

// Isoelectronic plots ion cutoffs of the Ne-like and Ar-like sequences against (Z-sigma)^2.
func Isoelectronic(eng *physics.Engine) (*Figure, error) {
	seqs := []struct {
		tag string
		seq physics.Sequence
		col drawing.Color
	}{
		{"(a)", physics.NeonLike(), blue},
		{"(b)", physics.ArgonLike(), green},
	}
	var panels []*Panel
	results := map[string]sweep.IsoResult{}
	for _, s := range seqs {
		res, err := sweep.Isoelectronic(eng, s.seq)
		if err != nil {
			return nil, err
		}
		results[s.seq.Name] = res
		p, err := isoPanel(s.tag, res, s.col)
		if err != nil {
			return nil, err
		}
		panels = append(panels, p)
	}
	return &Figure{
		Stem:   "fig4_isoelectronic",
		Title:  "Isoelectronic sequences: cutoff vs (Z - sigma)^2",
		Rows:   1,
		Cols:   2,
		Panels: panels,
		Tables: map[string]interface{}{"sequences": results},
	}, nil
}

func isoPanel(tag string, res sweep.IsoResult, col drawing.Color) (*Panel, error) {
	x, y := res.X(), res.Y()
	fitX, err := sweep.LinSpace(floats.Min(x)*0.9, floats.Max(x)*1.1, 50)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", res.Sequence, err)
	}
	fitY := res.Fit.At(fitX)

	xlo, xhi := niceAxisBounds(fitX[0], fitX[len(fitX)-1])
	all := make([]float64, 0, len(fitY)+len(y))
	all = append(append(all, fitY...), y...)
	ylo, yhi := niceAxisBounds(floats.Min(all), floats.Max(all))

	p := &Panel{
		Title: fmt.Sprintf("%s %s", tag, res.Sequence),
		X:     Axis{Label: "(Z - sigma)^2", Min: xlo, Max: xhi},
		Y:     Axis{Label: "Cutoff energy (eV)", Min: ylo, Max: yhi},
		Lines: []Line{
			{Name: "Predicted", X: x, Y: y, Color: col, Width: 2.5, Marker: 5},
			{Name: fmt.Sprintf("Fit: slope=%.2f/Q0", res.SlopeQ0), X: fitX, Y: fitY, Color: fade(col, 0.6), Width: 2, Dash: Dashed},
		},
		Legend: UpperLeft,
		Grid:   true,
	}
	for _, pt := range res.Points {
		p.Labels = append(p.Labels, Label{
			Text:   pt.Label,
			X:      pt.ZeffSquared,
			Y:      pt.CutoffEnergy * 1.08,
			Size:   9,
			Center: true,
		})
	}
	return p, nil
}
