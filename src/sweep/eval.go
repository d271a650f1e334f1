package sweep

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/iafilius/AttosecondDelays/src/physics"
)

// Evaluate applies fn at every grid point and stops at the first error.
func Evaluate(g Grid, fn func(e float64) (float64, error)) (Curve, error) {
	out := make(Curve, len(g))
	for i, e := range g {
		v, err := fn(e)
		if err != nil {
			return nil, fmt.Errorf("at E=%g eV: %w", e, err)
		}
		out[i] = v
	}
	return out, nil
}

// Coulomb evaluates the Coulomb delay for zeff over g.
func Coulomb(eng *physics.Engine, zeff float64, g Grid) (Curve, error) {
	return Evaluate(g, func(e float64) (float64, error) {
		return eng.CoulombDelay(zeff, e)
	})
}

// QGU evaluates the regularized delay of el over g. zeff is passed separately so the
// v1.0 figures can run with Zeff = Z.
func QGU(eng *physics.Engine, el physics.Element, zeff float64, g Grid, model physics.Model) (Curve, error) {
	return Evaluate(g, func(e float64) (float64, error) {
		return eng.QGUDelay(el.Symbol, el.Z, zeff, e, model)
	})
}

// ElementCurve is one element's delay curve together with its cutoff and plateau.
type ElementCurve struct {
	Element physics.Element
	Cutoff  float64 // eV
	Plateau float64 // as
	Delay   Curve
}

// AllElements evaluates the QGU delay (at each element's tabulated Zeff) for every
// element of the engine's table, in table order.
func AllElements(eng *physics.Engine, g Grid, model physics.Model) ([]ElementCurve, error) {
	els := eng.Table().Elements()
	out := make([]ElementCurve, 0, len(els))
	for _, el := range els {
		ec, err := eng.ModelCutoff(el.Symbol, el.Z, el.Zeff, model)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", el.Symbol, err)
		}
		d, err := QGU(eng, el, el.Zeff, g, model)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", el.Symbol, err)
		}
		out = append(out, ElementCurve{Element: el, Cutoff: ec, Plateau: eng.PlateauDelay(ec), Delay: d})
	}
	return out, nil
}

// Ratio returns a[i]/b[i].
func Ratio(a, b []float64) (Curve, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(a), len(b))
	}
	out := make(Curve, len(a))
	floats.DivTo(out, a, b)
	return out, nil
}

// Difference returns a[i]-b[i].
func Difference(a, b []float64) (Curve, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(a), len(b))
	}
	out := make(Curve, len(a))
	floats.SubTo(out, a, b)
	return out, nil
}

// Scale returns x multiplied by k.
func Scale(x []float64, k float64) Curve {
	out := make(Curve, len(x))
	copy(out, x)
	floats.Scale(k, out)
	return out
}

// PowerLaw evaluates prefactor*x^exponent at every x.
func PowerLaw(x []float64, prefactor, exponent float64) Curve {
	out := make(Curve, len(x))
	for i, v := range x {
		out[i] = prefactor * math.Pow(v, exponent)
	}
	return out
}
