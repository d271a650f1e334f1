package physics

import (
	"fmt"
	"math"
)

// CorrectionFactors scale the bare cutoff energy of one element.
// Each factor is <= 1 for the tabulated elements.
type CorrectionFactors struct {
	Multi float64 `yaml:"multi_electron"`
	Rel   float64 `yaml:"relativistic"`
	Pol   float64 `yaml:"polarization"`
}

// Total returns Multi*Rel*Pol.
func (c CorrectionFactors) Total() float64 {
	return c.Multi * c.Rel * c.Pol
}

// MultiElectronFactor returns 1/(1+alpha*r)^2 with r = Ncore/Ntotal and alpha = 0.15 + 0.30*r.
func MultiElectronFactor(ncore, ntotal int) float64 {
	r := float64(ncore) / float64(ntotal)
	alpha := 0.15 + 0.30*r
	d := 1 + alpha*r
	return 1 / (d * d)
}

// PolarizationFactor returns 1 - 0.15*(1 + 0.5*Ncore/10)/10.
func PolarizationFactor(ncore int) float64 {
	alphaPol := 1 + 0.5*(float64(ncore)/10)
	return 1 - 0.15*(alphaPol/10)
}

// RelativisticFactor returns 1/gamma^2 with gamma = 1/sqrt(1 - (alphaFS*zeff)^2).
// The factor is only defined for alphaFS*zeff < 1.
func (c Constants) RelativisticFactor(zeff float64) (float64, error) {
	az := c.AlphaFS * zeff
	if math.IsNaN(az) || math.Abs(az) >= 1 {
		return 0, fmt.Errorf("%w: alpha*Zeff=%.4f", ErrRelativisticDomain, az)
	}
	gamma := 1 / math.Sqrt(1-az*az)
	return 1 / (gamma * gamma), nil
}

// CorrectionsFor computes the three correction factors of el evaluated at zeff.
func (e *Engine) CorrectionsFor(el Element, zeff float64) (CorrectionFactors, error) {
	rel, err := e.c.RelativisticFactor(zeff)
	if err != nil {
		return CorrectionFactors{}, fmt.Errorf("%s: %w", el.Symbol, err)
	}
	return CorrectionFactors{
		Multi: MultiElectronFactor(el.Ncore, el.Ntotal),
		Rel:   rel,
		Pol:   PolarizationFactor(el.Ncore),
	}, nil
}

// Corrections looks up symbol and computes its correction factors at zeff.
func (e *Engine) Corrections(symbol string, zeff float64) (CorrectionFactors, error) {
	el, err := e.t.Lookup(symbol)
	if err != nil {
		return CorrectionFactors{}, err
	}
	return e.CorrectionsFor(el, zeff)
}
