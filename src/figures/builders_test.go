package figures

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iafilius/AttosecondDelays/src/physics"
)

func TestBuild_EveryFigureIsWellFormed(t *testing.T) {
	eng := physics.Default()
	for i, stem := range Stems() {
		fig, err := Build(eng, i+1)
		require.NoError(t, err, "figure %d", i+1)
		assert.Equal(t, stem, fig.Stem)
		require.NoError(t, fig.validate())
		assert.NotEmpty(t, fig.Title)
		for _, p := range fig.Panels {
			_, err := p.build(400, 320)
			assert.NoError(t, err, "%s panel %q", stem, p.Title)
		}
	}
}

func TestHeliumDelays(t *testing.T) {
	fig, err := HeliumDelays(physics.Default())
	require.NoError(t, err)
	require.Len(t, fig.Panels, 4)
	ecV1 := fig.Tables["ec_v1_ev"].(float64)
	ecV2 := fig.Tables["ec_v2_ev"].(float64)
	assert.Greater(t, ecV1, ecV2, "screening lowers the cutoff")
	assert.Equal(t, []string{"Coulomb divergence", "v1.0 (Z=2)", "v2.0 (Zeff=1.70)"},
		lineNames(fig.Panels[0]))
	// both models suppress the near-threshold Coulomb divergence
	for _, l := range fig.Panels[2].Lines {
		assert.Less(t, l.Y[0], 0.1, l.Name)
		assert.Greater(t, l.Y[0], 0.0, l.Name)
	}
}

func TestAllElements(t *testing.T) {
	fig, err := AllElements(physics.Default())
	require.NoError(t, err)
	abs, scaled := fig.Panels[0], fig.Panels[1]
	assert.Len(t, abs.Lines, 6)
	assert.Equal(t, "Coulomb (Z=2)", abs.Lines[5].Name)
	assert.Equal(t, []string{"He", "Ne", "Ar", "Kr", "Xe"}, lineNames(scaled))
	// the scaled curves sit on the plateau far below the cutoff
	for _, l := range scaled.Lines {
		assert.InDelta(t, 1.0, l.Y[0], 0.05, l.Name)
	}
}

func TestScaling(t *testing.T) {
	fig, err := Scaling(physics.Default())
	require.NoError(t, err)
	names := lineNames(fig.Panels[0])
	assert.Contains(t, names, "Fit: Z^2.00")
	assert.Contains(t, names, "Fit: Z^0.59")
	require.Len(t, fig.Panels[1].Labels, 5)
	var labels []string
	for _, l := range fig.Panels[1].Labels {
		labels = append(labels, l.Text)
	}
	assert.Equal(t, []string{"1.4×", "7.5×", "18.0×", "79.3×", "138.0×"}, labels)
}

func TestIsoelectronic(t *testing.T) {
	fig, err := Isoelectronic(physics.Default())
	require.NoError(t, err)
	require.Len(t, fig.Panels, 2)
	assert.Equal(t, "(a) 10-electron (Ne-like)", fig.Panels[0].Title)
	assert.Equal(t, "(b) 18-electron (Ar-like)", fig.Panels[1].Title)
	// each fit line is drawn dashed in its sequence's colour
	assert.Equal(t, fade(fig.Panels[0].Lines[0].Color, 0.6), fig.Panels[0].Lines[1].Color)
	assert.Equal(t, fade(fig.Panels[1].Lines[0].Color, 0.6), fig.Panels[1].Lines[1].Color)
	assert.NotEqual(t, fig.Panels[0].Lines[1].Color, fig.Panels[1].Lines[1].Color)
	for _, p := range fig.Panels {
		assert.Equal(t, "Fit: slope=0.90/Q0", p.Lines[1].Name)
		assert.Equal(t, Dashed, p.Lines[1].Dash)
		for _, l := range p.Lines {
			for i := range l.X {
				assert.GreaterOrEqual(t, l.X[i], p.X.Min)
				assert.LessOrEqual(t, l.X[i], p.X.Max)
				assert.GreaterOrEqual(t, l.Y[i], p.Y.Min)
				assert.LessOrEqual(t, l.Y[i], p.Y.Max)
			}
		}
	}
}

func TestNeonDetail(t *testing.T) {
	fig, err := NeonDetail(physics.Default())
	require.NoError(t, err)
	regimes, exponent := fig.Panels[0], fig.Panels[1]
	assert.Equal(t, "(a) Neon: Three-regime behavior", regimes.Title)
	assert.Equal(t, "(b) Power law evolution", exponent.Title)

	ec := fig.Tables["cutoff_ev"].(float64)
	require.Len(t, regimes.Spans, 3)
	assert.Equal(t, 0.1, regimes.Spans[0].From)
	assert.Equal(t, 0.5*ec, regimes.Spans[0].To)
	assert.Equal(t, 0.5*ec, regimes.Spans[1].From)
	assert.Equal(t, 2*ec, regimes.Spans[1].To)
	assert.Equal(t, 2*ec, regimes.Spans[2].From)
	assert.Equal(t, 100.0, regimes.Spans[2].To)
	require.Len(t, exponent.Spans, 1)
	assert.Equal(t, 0.5*ec, exponent.Spans[0].From)
	assert.Equal(t, 2*ec, exponent.Spans[0].To)

	assert.Equal(t, []string{"Coulomb E^-3/2", "QGU regularized", "E^-3/2 reference", "E^-1.2 crossover"},
		lineNames(regimes))
	coulomb, qgu, crossover := regimes.Lines[0], regimes.Lines[1], regimes.Lines[3]
	// the Coulomb curve diverges above the regularized delay near threshold and meets it far above Ec
	assert.Greater(t, coulomb.Y[0], 100*qgu.Y[0])
	ratio := qgu.Y[len(qgu.Y)-1] / coulomb.Y[len(coulomb.Y)-1]
	assert.Greater(t, ratio, 1.0)
	assert.Less(t, ratio, 1.3)
	require.NotEmpty(t, crossover.X)
	assert.GreaterOrEqual(t, crossover.X[0], 1.0)
	assert.Less(t, crossover.X[len(crossover.X)-1], ec)

	for _, p := range fig.Panels {
		require.Len(t, p.VLines, 1)
		assert.Equal(t, ec, p.VLines[0].At)
		assert.Equal(t, Dotted, p.VLines[0].Dash)
		assert.Equal(t, fade(blue, 0.7), p.VLines[0].Color)
	}

	// the local exponent runs from the plateau towards the Coulomb slope
	slope := exponent.Lines[0].Y
	assert.InDelta(t, 0, slope[0], 0.1)
	assert.Less(t, slope[len(slope)-1], -1.0)
}

func TestCorrections(t *testing.T) {
	fig, err := Corrections(physics.Default())
	require.NoError(t, err)
	cascade, factors := fig.Panels[0], fig.Panels[1]
	assert.Equal(t, "(a) Cumulative correction impact", cascade.Title)
	assert.Len(t, cascade.Bars, 20)
	legend := 0
	for _, b := range cascade.Bars {
		if b.Legend {
			legend++
		}
		assert.Equal(t, 0.6, b.Width, b.Name)
		if b.Name == "+ All corrections" {
			assert.Equal(t, black, b.Edge, b.Name)
		} else {
			assert.True(t, b.Edge.IsZero(), "%s bar must not be edged", b.Name)
		}
	}
	assert.Equal(t, 4, legend)
	assert.Equal(t, []string{"Multi-electron", "Relativistic", "Polarization"}, lineNames(factors))
	for _, l := range factors.Lines {
		for _, v := range l.Y {
			assert.GreaterOrEqual(t, v, factors.Y.Min, l.Name)
			assert.LessOrEqual(t, v, factors.Y.Max, l.Name)
		}
	}
}

func lineNames(p *Panel) []string {
	var out []string
	for _, l := range p.Lines {
		out = append(out, l.Name)
	}
	return out
}
