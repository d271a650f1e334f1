package physics

import (
	"fmt"
	"math"
)

// Model selects how the QGU delay obtains its cutoff energy.
type Model string

const (
	// ModelV1 uses the bare nuclear charge Z with no corrections.
	ModelV1 Model = "v1.0"
	// ModelV2 uses Zeff with multi-electron, relativistic and polarization corrections.
	ModelV2 Model = "v2.0"
)

// Engine evaluates the formulas against one constant set and one element table.
// It holds no mutable state and is safe to share.
type Engine struct {
	c Constants
	t *Table
}

// NewEngine binds constants and an element table.
func NewEngine(c Constants, t *Table) *Engine {
	return &Engine{c: c, t: t}
}

// Default returns an engine over the noble gases with DefaultConstants.
func Default() *Engine {
	return NewEngine(DefaultConstants(), NobleGases())
}

// Constants returns the engine's constants.
func (e *Engine) Constants() Constants { return e.c }

// Table returns the engine's element table.
func (e *Engine) Table() *Table { return e.t }

// CoulombDelay returns the unscreened Coulomb delay AUTimeToAS*zeff/E^1.5 in as.
func (e *Engine) CoulombDelay(zeff, energy float64) (float64, error) {
	if !(energy > 0) {
		return 0, fmt.Errorf("%w: E=%g eV", ErrNonPositiveEnergy, energy)
	}
	return e.c.AUTimeToAS * zeff / math.Pow(energy, 1.5), nil
}

// BareCutoff returns (zeff^2/Q0)*HartreeToEV in eV.
func (e *Engine) BareCutoff(zeff float64) float64 {
	return (zeff * zeff / e.c.Q0) * e.c.HartreeToEV
}

// CutoffEnergy returns the cutoff energy in eV. Uncorrected it depends on zeff only.
// Corrected, the core/total electron counts come from the table entry for symbol.
func (e *Engine) CutoffEnergy(symbol string, z int, zeff float64, corrected bool) (float64, error) {
	base := e.BareCutoff(zeff)
	if !corrected {
		return base, nil
	}
	cf, err := e.Corrections(symbol, zeff)
	if err != nil {
		return 0, fmt.Errorf("cutoff energy (Z=%d): %w", z, err)
	}
	return base * cf.Total(), nil
}

// PlateauDelay returns the low-energy plateau AUTimeToAS/Ec*PlateauFactor in as.
func (e *Engine) PlateauDelay(ec float64) float64 {
	return e.c.AUTimeToAS / ec * e.c.PlateauFactor
}

// ModelCutoff returns the cutoff energy the given QGU model uses.
func (e *Engine) ModelCutoff(symbol string, z int, zeff float64, model Model) (float64, error) {
	switch model {
	case ModelV1:
		return e.BareCutoff(float64(z)), nil
	case ModelV2:
		return e.CutoffEnergy(symbol, z, zeff, true)
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownModel, model)
	}
}

// CrossoverWeight returns the plateau weight 1/(1+(E/(CrossoverScale*Ec))^4).
func (e *Engine) CrossoverWeight(energy, ec float64) float64 {
	x := energy / (e.c.CrossoverScale * ec)
	x2 := x * x
	return 1 / (1 + x2*x2)
}

// QGUDelay returns the regularized delay in as. It blends the plateau and the Coulomb
// delay with a smooth weight: w*plateau + (1-w)*coulomb. The crossover is
// phenomenological; it is not derived from first principles.
func (e *Engine) QGUDelay(symbol string, z int, zeff, energy float64, model Model) (float64, error) {
	ec, err := e.ModelCutoff(symbol, z, zeff, model)
	if err != nil {
		return 0, err
	}
	coulomb, err := e.CoulombDelay(zeff, energy)
	if err != nil {
		return 0, err
	}
	w := e.CrossoverWeight(energy, ec)
	return w*e.PlateauDelay(ec) + (1-w)*coulomb, nil
}
