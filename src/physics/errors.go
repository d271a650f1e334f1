package physics

import "errors"

// Domain errors returned by the formula engine. Callers wrap them with context and
// test with errors.Is.
var (
	// ErrNonPositiveEnergy indicates E <= 0 (or NaN) where the Coulomb delay diverges.
	ErrNonPositiveEnergy = errors.New("energy must be positive")

	// ErrRelativisticDomain indicates AlphaFS*Zeff >= 1, where the Lorentz factor is undefined.
	ErrRelativisticDomain = errors.New("relativistic factor undefined for alpha*Zeff >= 1")

	// ErrUnknownElement indicates a symbol missing from the element table.
	ErrUnknownElement = errors.New("unknown element")

	// ErrInvalidElement indicates an element record violating the table invariants.
	ErrInvalidElement = errors.New("invalid element record")

	// ErrUnknownModel indicates a QGU model version other than v1.0 / v2.0.
	ErrUnknownModel = errors.New("unknown model version")
)
