// Package sweep generates energy grids and evaluates the physics formulas across them.
// Nothing is cached: each figure builds its own grids.
package sweep

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

var (
	// ErrInvalidGrid indicates too few points or unusable bounds.
	ErrInvalidGrid = errors.New("invalid grid")
	// ErrLengthMismatch indicates two parallel slices of different length.
	ErrLengthMismatch = errors.New("length mismatch")
)

// Grid is an ordered set of energies in eV.
type Grid []float64

// Curve holds values parallel to a Grid.
type Curve []float64

// LogSpace returns n points from 10^startExp to 10^stopExp, evenly spaced in log10.
func LogSpace(startExp, stopExp float64, n int) (Grid, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: n=%d (need >= 2)", ErrInvalidGrid, n)
	}
	if !finite(startExp) || !finite(stopExp) || startExp == stopExp {
		return nil, fmt.Errorf("%w: exponents [%g, %g]", ErrInvalidGrid, startExp, stopExp)
	}
	g := make(Grid, n)
	floats.LogSpan(g, math.Pow(10, startExp), math.Pow(10, stopExp))
	return g, nil
}

// LinSpace returns n evenly spaced points from lo to hi inclusive.
func LinSpace(lo, hi float64, n int) (Grid, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: n=%d (need >= 2)", ErrInvalidGrid, n)
	}
	if !finite(lo) || !finite(hi) || lo == hi {
		return nil, fmt.Errorf("%w: bounds [%g, %g]", ErrInvalidGrid, lo, hi)
	}
	g := make(Grid, n)
	floats.Span(g, lo, hi)
	return g, nil
}

// Below returns the points strictly less than limit, in order.
func (g Grid) Below(limit float64) Grid {
	var out Grid
	for _, v := range g {
		if v < limit {
			out = append(out, v)
		}
	}
	return out
}

// Scaled returns g multiplied by k.
func (g Grid) Scaled(k float64) Grid {
	out := make(Grid, len(g))
	copy(out, g)
	floats.Scale(k, out)
	return out
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
