package physics

import (
	"fmt"
	"math"
)

// Element is one row of the constant table.
type Element struct {
	Symbol string  `yaml:"symbol"`
	Z      int     `yaml:"z"`
	Zeff   float64 `yaml:"zeff"`
	Ncore  int     `yaml:"ncore"`
	Ntotal int     `yaml:"ntotal"`
	Ip     float64 `yaml:"ip_ev"`
}

// CoreFraction returns Ncore/Ntotal.
func (e Element) CoreFraction() float64 {
	return float64(e.Ncore) / float64(e.Ntotal)
}

func (e Element) validate() error {
	switch {
	case e.Symbol == "":
		return fmt.Errorf("%w: empty symbol", ErrInvalidElement)
	case e.Z <= 0:
		return fmt.Errorf("%w: %s: Z=%d must be positive", ErrInvalidElement, e.Symbol, e.Z)
	case !(e.Zeff > 0) || math.IsInf(e.Zeff, 0):
		return fmt.Errorf("%w: %s: Zeff=%g must be positive", ErrInvalidElement, e.Symbol, e.Zeff)
	case e.Ntotal <= 0:
		return fmt.Errorf("%w: %s: Ntotal=%d must be positive", ErrInvalidElement, e.Symbol, e.Ntotal)
	case e.Ncore < 0 || e.Ncore > e.Ntotal:
		return fmt.Errorf("%w: %s: Ncore=%d outside [0,%d]", ErrInvalidElement, e.Symbol, e.Ncore, e.Ntotal)
	case !(e.Ip > 0):
		return fmt.Errorf("%w: %s: Ip=%g must be positive", ErrInvalidElement, e.Symbol, e.Ip)
	}
	return nil
}

// Table is an ordered, read-only set of elements keyed by symbol.
type Table struct {
	elems    []Element
	bySymbol map[string]int
}

// NewTable validates the records and indexes them by symbol, keeping the given order.
func NewTable(elems ...Element) (*Table, error) {
	t := &Table{
		elems:    make([]Element, 0, len(elems)),
		bySymbol: make(map[string]int, len(elems)),
	}
	for _, e := range elems {
		if err := e.validate(); err != nil {
			return nil, err
		}
		if _, dup := t.bySymbol[e.Symbol]; dup {
			return nil, fmt.Errorf("%w: duplicate symbol %s", ErrInvalidElement, e.Symbol)
		}
		t.bySymbol[e.Symbol] = len(t.elems)
		t.elems = append(t.elems, e)
	}
	return t, nil
}

// NobleGases returns the five tabulated noble gases in order He, Ne, Ar, Kr, Xe.
func NobleGases() *Table {
	t, err := NewTable(
		Element{Symbol: "He", Z: 2, Zeff: 1.70, Ncore: 0, Ntotal: 2, Ip: 24.59},
		Element{Symbol: "Ne", Z: 10, Zeff: 3.85, Ncore: 2, Ntotal: 10, Ip: 21.56},
		Element{Symbol: "Ar", Z: 18, Zeff: 5.05, Ncore: 10, Ntotal: 18, Ip: 15.76},
		Element{Symbol: "Kr", Z: 36, Zeff: 5.35, Ncore: 28, Ntotal: 36, Ip: 14.00},
		Element{Symbol: "Xe", Z: 54, Zeff: 6.35, Ncore: 46, Ntotal: 54, Ip: 12.13},
	)
	if err != nil {
		// static data; only a broken edit above can get here
		panic(err)
	}
	return t
}

// Lookup returns the element for symbol.
func (t *Table) Lookup(symbol string) (Element, error) {
	i, ok := t.bySymbol[symbol]
	if !ok {
		return Element{}, fmt.Errorf("%w: %q", ErrUnknownElement, symbol)
	}
	return t.elems[i], nil
}

// Elements returns a copy of the records in table order.
func (t *Table) Elements() []Element {
	out := make([]Element, len(t.elems))
	copy(out, t.elems)
	return out
}

// Symbols returns the symbols in table order.
func (t *Table) Symbols() []string {
	out := make([]string, len(t.elems))
	for i, e := range t.elems {
		out[i] = e.Symbol
	}
	return out
}

// Len returns the number of elements.
func (t *Table) Len() int { return len(t.elems) }
