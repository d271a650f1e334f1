// Package physics holds the element constants and the closed-form delay formulas:
// Coulomb time delay, cutoff energy with its correction factors, and the regularized
// quantum-geometric (QGU) delay.
//
// All quantities use eV for energy and attoseconds (as) for time.
package physics

// Constants are the physical and model constants used by every formula.
// A Constants value is built once and never mutated.
type Constants struct {
	HartreeToEV    float64 // 1 Hartree in eV
	AUTimeToAS     float64 // 1 atomic unit of time in attoseconds
	Q0             float64 // C_LIG * K, denominator of the cutoff energy
	AlphaFS        float64 // fine-structure constant
	PlateauFactor  float64 // plateau delay = AUTimeToAS / Ec * PlateauFactor
	CrossoverScale float64 // crossover weight turns over at E = CrossoverScale * Ec
	IonCorrection  float64 // flat correction applied to isoelectronic ion cutoffs
}

// DefaultConstants returns the constants every figure is computed with.
func DefaultConstants() Constants {
	return Constants{
		HartreeToEV:    27.2114,
		AUTimeToAS:     24.18884326509,
		Q0:             5.369,
		AlphaFS:        1 / 137.036,
		PlateauFactor:  1.7,
		CrossoverScale: 0.7,
		IonCorrection:  0.9,
	}
}
