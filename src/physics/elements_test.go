package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNobleGases_Order(t *testing.T) {
	tbl := NobleGases()
	assert.Equal(t, []string{"He", "Ne", "Ar", "Kr", "Xe"}, tbl.Symbols())
	assert.Equal(t, 5, tbl.Len())
	for _, el := range tbl.Elements() {
		assert.LessOrEqual(t, el.Ncore, el.Ntotal, el.Symbol)
		assert.Equal(t, el.Z, el.Ntotal, "neutral atoms: %s", el.Symbol)
	}
}

func TestTable_Lookup(t *testing.T) {
	tbl := NobleGases()
	ar, err := tbl.Lookup("Ar")
	require.NoError(t, err)
	assert.Equal(t, 18, ar.Z)
	assert.Equal(t, 5.05, ar.Zeff)
	assert.Equal(t, 10, ar.Ncore)

	_, err = tbl.Lookup("ar")
	assert.ErrorIs(t, err, ErrUnknownElement, "symbols are case sensitive")
}

func TestTable_ElementsIsACopy(t *testing.T) {
	tbl := NobleGases()
	els := tbl.Elements()
	els[0].Zeff = 99
	he, err := tbl.Lookup("He")
	require.NoError(t, err)
	assert.Equal(t, 1.70, he.Zeff)
}

func TestNewTable_Invalid(t *testing.T) {
	ok := Element{Symbol: "X", Z: 2, Zeff: 1, Ncore: 0, Ntotal: 2, Ip: 10}
	cases := []struct {
		name string
		mut  func(e *Element)
	}{
		{"empty symbol", func(e *Element) { e.Symbol = "" }},
		{"zero Z", func(e *Element) { e.Z = 0 }},
		{"negative Zeff", func(e *Element) { e.Zeff = -1 }},
		{"zero Ntotal", func(e *Element) { e.Ntotal = 0 }},
		{"Ncore above Ntotal", func(e *Element) { e.Ncore = 3 }},
		{"negative Ncore", func(e *Element) { e.Ncore = -1 }},
		{"zero Ip", func(e *Element) { e.Ip = 0 }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e := ok
			c.mut(&e)
			_, err := NewTable(e)
			assert.ErrorIs(t, err, ErrInvalidElement)
		})
	}

	_, err := NewTable(ok, ok)
	assert.ErrorIs(t, err, ErrInvalidElement, "duplicate symbol")
}

func TestIonCutoff(t *testing.T) {
	eng := Default()
	ne := NeonLike()
	require.Len(t, ne.Ions, 4)
	assert.InDelta(t, 3.85, ne.Ions[0].Zeff(), 1e-12, "neutral Ne matches the table Zeff")
	for _, ion := range append(ne.Ions, ArgonLike().Ions...) {
		zeff := ion.Zeff()
		want := zeff * zeff / 5.369 * 27.2114 * 0.9
		assert.InDelta(t, want, eng.IonCutoff(ion), 1e-9, ion.Label)
	}
	ar := ArgonLike()
	assert.Equal(t, 18, ar.Electrons)
	assert.InDelta(t, 5.05, ar.Ions[0].Zeff(), 1e-12)
}
