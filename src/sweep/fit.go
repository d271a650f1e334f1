package sweep

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// Line is the least-squares line y = Slope*x + Intercept.
type Line struct {
	Slope     float64 `yaml:"slope"`
	Intercept float64 `yaml:"intercept"`
	RSquared  float64 `yaml:"r_squared"`
}

// At evaluates the fitted line at every x.
func (f Line) At(x []float64) Curve {
	out := make(Curve, len(x))
	for i, v := range x {
		out[i] = f.Slope*v + f.Intercept
	}
	return out
}

// LinearFit fits y = Slope*x + Intercept by ordinary least squares.
func LinearFit(x, y []float64) (Line, error) {
	if len(x) != len(y) {
		return Line{}, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(x), len(y))
	}
	if len(x) < 2 {
		return Line{}, fmt.Errorf("need at least 2 points, got %d", len(x))
	}
	alpha, beta := stat.LinearRegression(x, y, nil, false)
	if math.IsNaN(alpha) || math.IsNaN(beta) {
		return Line{}, fmt.Errorf("degenerate fit: all x equal")
	}
	return Line{Slope: beta, Intercept: alpha, RSquared: stat.RSquared(x, y, nil, alpha, beta)}, nil
}

// PowerFit is y = Prefactor * x^Exponent, fitted on ln x / ln y.
type PowerFit struct {
	Exponent  float64 `yaml:"exponent"`
	Prefactor float64 `yaml:"prefactor"`
}

// At evaluates the power law at every x.
func (f PowerFit) At(x []float64) Curve {
	return PowerLaw(x, f.Prefactor, f.Exponent)
}

// PowerLawFit fits ln y = Exponent*ln x + ln Prefactor. All values must be positive.
func PowerLawFit(x, y []float64) (PowerFit, error) {
	if len(x) != len(y) {
		return PowerFit{}, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(x), len(y))
	}
	lx := make([]float64, len(x))
	ly := make([]float64, len(y))
	for i := range x {
		if !(x[i] > 0) || !(y[i] > 0) {
			return PowerFit{}, fmt.Errorf("power-law fit needs positive values, got (%g, %g) at %d", x[i], y[i], i)
		}
		lx[i] = math.Log(x[i])
		ly[i] = math.Log(y[i])
	}
	lf, err := LinearFit(lx, ly)
	if err != nil {
		return PowerFit{}, err
	}
	return PowerFit{Exponent: lf.Slope, Prefactor: math.Exp(lf.Intercept)}, nil
}

// LogDerivative returns d ln y / d ln x at every point. Interior points use the
// second-order scheme for non-uniform spacing, end points one-sided differences.
func LogDerivative(x, y []float64) (Curve, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(x), len(y))
	}
	n := len(x)
	if n < 2 {
		return nil, fmt.Errorf("%w: need at least 2 points, got %d", ErrInvalidGrid, n)
	}
	lx := make([]float64, n)
	ly := make([]float64, n)
	for i := range x {
		if !(x[i] > 0) || !(y[i] > 0) {
			return nil, fmt.Errorf("log derivative needs positive values, got (%g, %g) at %d", x[i], y[i], i)
		}
		lx[i] = math.Log(x[i])
		ly[i] = math.Log(y[i])
	}
	return gradient(ly, lx), nil
}

// gradient mirrors numpy.gradient(f, x) with edge_order=1.
func gradient(f, x []float64) Curve {
	n := len(f)
	out := make(Curve, n)
	out[0] = (f[1] - f[0]) / (x[1] - x[0])
	out[n-1] = (f[n-1] - f[n-2]) / (x[n-1] - x[n-2])
	for i := 1; i < n-1; i++ {
		hs := x[i] - x[i-1]
		hd := x[i+1] - x[i]
		a := -hd / (hs * (hd + hs))
		b := (hd - hs) / (hd * hs)
		c := hs / (hd * (hd + hs))
		out[i] = a*f[i-1] + b*f[i] + c*f[i+1]
	}
	return out
}
