package sweep

import (
	"fmt"

	"github.com/iafilius/AttosecondDelays/src/physics"
)

// ScalingRow compares the cutoff under three screening assumptions for one element.
type ScalingRow struct {
	Symbol    string  `yaml:"symbol"`
	Z         int     `yaml:"z"`
	EcZ       float64 `yaml:"ec_bare_z"`    // BareCutoff(Z)
	EcZeff    float64 `yaml:"ec_zeff"`      // BareCutoff(Zeff)
	EcFull    float64 `yaml:"ec_corrected"` // CutoffEnergy(..., true)
	Reduction float64 `yaml:"reduction"`    // EcZ / EcFull
}

// Scaling builds one ScalingRow per table element, in table order.
func Scaling(eng *physics.Engine) ([]ScalingRow, error) {
	els := eng.Table().Elements()
	rows := make([]ScalingRow, 0, len(els))
	for _, el := range els {
		full, err := eng.CutoffEnergy(el.Symbol, el.Z, el.Zeff, true)
		if err != nil {
			return nil, fmt.Errorf("scaling %s: %w", el.Symbol, err)
		}
		ecz := eng.BareCutoff(float64(el.Z))
		rows = append(rows, ScalingRow{
			Symbol:    el.Symbol,
			Z:         el.Z,
			EcZ:       ecz,
			EcZeff:    eng.BareCutoff(el.Zeff),
			EcFull:    full,
			Reduction: ecz / full,
		})
	}
	return rows, nil
}

// BreakdownRow applies the correction factors one at a time.
type BreakdownRow struct {
	Symbol  string                    `yaml:"symbol"`
	EcZ     float64                   `yaml:"ec_bare_z"`
	EcZeff  float64                   `yaml:"ec_zeff"`
	EcMulti float64                   `yaml:"ec_multi"`
	EcRel   float64                   `yaml:"ec_rel"`
	EcFinal float64                   `yaml:"ec_final"`
	Factors physics.CorrectionFactors `yaml:"factors"`
}

// Breakdown builds one BreakdownRow per table element, in table order.
func Breakdown(eng *physics.Engine) ([]BreakdownRow, error) {
	els := eng.Table().Elements()
	rows := make([]BreakdownRow, 0, len(els))
	for _, el := range els {
		cf, err := eng.CorrectionsFor(el, el.Zeff)
		if err != nil {
			return nil, fmt.Errorf("breakdown %s: %w", el.Symbol, err)
		}
		zeff := eng.BareCutoff(el.Zeff)
		multi := zeff * cf.Multi
		rel := multi * cf.Rel
		rows = append(rows, BreakdownRow{
			Symbol:  el.Symbol,
			EcZ:     eng.BareCutoff(float64(el.Z)),
			EcZeff:  zeff,
			EcMulti: multi,
			EcRel:   rel,
			EcFinal: rel * cf.Pol,
			Factors: cf,
		})
	}
	return rows, nil
}

// IsoPoint is one ion of an isoelectronic sequence.
type IsoPoint struct {
	Label        string  `yaml:"label"`
	ZeffSquared  float64 `yaml:"zeff_squared"` // (Z - sigma)^2
	CutoffEnergy float64 `yaml:"cutoff_ev"`
}

// IsoResult is a sequence's points plus the straight-line fit of cutoff against (Z-sigma)^2.
type IsoResult struct {
	Sequence string     `yaml:"sequence"`
	Points   []IsoPoint `yaml:"points"`
	Fit      Line       `yaml:"fit"`
	// SlopeQ0 is the fitted slope in units of Hartree/Q0; 0.9 when the flat ion correction holds.
	SlopeQ0 float64 `yaml:"slope_q0"`
}

// X returns the (Z-sigma)^2 values.
func (r IsoResult) X() []float64 {
	out := make([]float64, len(r.Points))
	for i, p := range r.Points {
		out[i] = p.ZeffSquared
	}
	return out
}

// Y returns the cutoff energies.
func (r IsoResult) Y() []float64 {
	out := make([]float64, len(r.Points))
	for i, p := range r.Points {
		out[i] = p.CutoffEnergy
	}
	return out
}

// Isoelectronic evaluates IonCutoff over seq and fits it against (Z-sigma)^2.
func Isoelectronic(eng *physics.Engine, seq physics.Sequence) (IsoResult, error) {
	res := IsoResult{Sequence: seq.Name}
	for _, ion := range seq.Ions {
		zeff := ion.Zeff()
		res.Points = append(res.Points, IsoPoint{
			Label:        ion.Label,
			ZeffSquared:  zeff * zeff,
			CutoffEnergy: eng.IonCutoff(ion),
		})
	}
	fit, err := LinearFit(res.X(), res.Y())
	if err != nil {
		return IsoResult{}, fmt.Errorf("isoelectronic %s: %w", seq.Name, err)
	}
	res.Fit = fit
	c := eng.Constants()
	res.SlopeQ0 = fit.Slope * c.Q0 / c.HartreeToEV
	return res, nil
}
