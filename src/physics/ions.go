package physics

// Ion is one member of an isoelectronic sequence.
type Ion struct {
	Label string  `yaml:"label"`
	Z     int     `yaml:"z"`
	Sigma float64 `yaml:"sigma"` // screening constant, Zeff = Z - Sigma
}

// Zeff returns Z - Sigma.
func (i Ion) Zeff() float64 { return float64(i.Z) - i.Sigma }

// Sequence is a set of ions sharing one electron count.
type Sequence struct {
	Name      string
	Electrons int
	Ions      []Ion
}

// NeonLike returns the 10-electron sequence Ne, Na+, Mg2+, Al3+.
func NeonLike() Sequence {
	return Sequence{Name: "10-electron (Ne-like)", Electrons: 10, Ions: []Ion{
		{Label: "Ne", Z: 10, Sigma: 6.15},
		{Label: "Na+", Z: 11, Sigma: 6.15},
		{Label: "Mg2+", Z: 12, Sigma: 6.15},
		{Label: "Al3+", Z: 13, Sigma: 6.15},
	}}
}

// ArgonLike returns the 18-electron sequence Ar, K+, Ca2+, Sc3+.
func ArgonLike() Sequence {
	return Sequence{Name: "18-electron (Ar-like)", Electrons: 18, Ions: []Ion{
		{Label: "Ar", Z: 18, Sigma: 12.95},
		{Label: "K+", Z: 19, Sigma: 12.95},
		{Label: "Ca2+", Z: 20, Sigma: 12.95},
		{Label: "Sc3+", Z: 21, Sigma: 12.95},
	}}
}

// IonCutoff returns the approximate ion cutoff BareCutoff(Z-Sigma)*IonCorrection.
// Ions get the flat correction instead of the per-element factors.
func (e *Engine) IonCutoff(ion Ion) float64 {
	return e.BareCutoff(ion.Zeff()) * e.c.IonCorrection
}
