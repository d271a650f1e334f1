package figures

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Dash is a stroke pattern.
type Dash int

const (
	Solid Dash = iota
	Dashed
	Dotted
)

func (d Dash) array() []float64 {
	switch d {
	case Dashed:
		return []float64{8, 5}
	case Dotted:
		return []float64{2, 4}
	}
	return nil
}

// Line is a curve in data units.
type Line struct {
	Name   string
	X, Y   []float64
	Color  drawing.Color
	Width  float64
	Dash   Dash
	Marker float64 // marker radius in pixels; 0 draws none
}

// Guide is a full-width or full-height reference line at one data value.
type Guide struct {
	Name  string
	At    float64
	Color drawing.Color
	Width float64
	Dash  Dash
}

// Region shades the interval [From, To] across the whole panel.
type Region struct {
	Name     string
	From, To float64
	Color    drawing.Color
}

// Bar is a filled rectangle from the bottom of the panel up to Value.
type Bar struct {
	Name   string
	X      float64
	Width  float64
	Value  float64
	Color  drawing.Color
	Edge   drawing.Color
	Legend bool // only one bar per group needs a legend entry
}

// Label is free text anchored at a data coordinate (its baseline start, or centre with Center).
type Label struct {
	Text   string
	X, Y   float64
	Color  drawing.Color
	Size   float64
	Center bool
}

type placedLabel struct {
	Label
	x, y float64
}

// Panel is one chart of a figure.
type Panel struct {
	Title  string
	X, Y   Axis
	Lines  []Line
	VLines []Guide
	HLines []Guide
	Spans  []Region // x intervals
	Bands  []Region // y intervals
	Bars   []Bar
	Labels []Label
	Legend Corner
	Grid   bool
}

var gridStyle = chart.Style{StrokeColor: drawing.ColorFromHex("dddddd"), StrokeWidth: 1}

// pointStyle returns a style that renders points only (no connecting line).
func pointStyle(col drawing.Color, radius float64) chart.Style {
	return chart.Style{
		StrokeColor: chart.ColorTransparent,
		StrokeWidth: 1,
		DotWidth:    radius,
		DotColor:    col,
	}
}

// fillStyle fills a closed polygon. go-chart only fills when it also strokes, hence the
// transparent stroke when edge is unset.
func fillStyle(fill, edge drawing.Color) chart.Style {
	st := chart.Style{StrokeColor: chart.ColorTransparent, StrokeWidth: 1, FillColor: fill}
	if !edge.IsZero() {
		st.StrokeColor = edge
		st.StrokeWidth = 2
	}
	return st
}

func rect(x0, x1, y0, y1 float64, st chart.Style) chart.ContinuousSeries {
	return chart.ContinuousSeries{
		XValues: []float64{x0, x0, x1, x1, x0},
		YValues: []float64{y0, y1, y1, y0, y0},
		Style:   st,
	}
}

// swatch makes a legend entry for a filled area.
func swatch(c drawing.Color) chart.Style {
	if c.A < 90 {
		c = c.WithAlpha(90)
	}
	return chart.Style{StrokeColor: c, StrokeWidth: 8}
}

func lineWidth(w float64) float64 {
	if w <= 0 {
		return 2
	}
	return w
}

// build translates the panel into a go-chart chart in plotting space.
func (p *Panel) build(w, h int) (chart.Chart, error) {
	if err := p.X.validate(); err != nil {
		return chart.Chart{}, fmt.Errorf("panel %q: %w", p.Title, err)
	}
	if err := p.Y.validate(); err != nil {
		return chart.Chart{}, fmt.Errorf("panel %q: %w", p.Title, err)
	}
	xlo, xhi := p.X.window()
	ylo, yhi := p.Y.window()
	win := window{x0: xlo, x1: xhi, y0: ylo, y1: yhi}

	var series []chart.Series
	var entries []legendEntry

	for _, s := range p.Spans {
		a, b := win.clampX(p.X.project(s.From)), win.clampX(p.X.project(s.To))
		if a < b {
			series = append(series, rect(a, b, ylo, yhi, fillStyle(s.Color, drawing.Color{})))
		}
	}
	for _, s := range p.Bands {
		a, b := win.clampY(p.Y.project(s.From)), win.clampY(p.Y.project(s.To))
		if a < b {
			series = append(series, rect(xlo, xhi, a, b, fillStyle(s.Color, drawing.Color{})))
		}
	}
	for _, b := range p.Bars {
		x0 := win.clampX(p.X.project(b.X - b.Width/2))
		x1 := win.clampX(p.X.project(b.X + b.Width/2))
		top := win.clampY(p.Y.project(b.Value))
		if x0 < x1 && top > ylo {
			series = append(series, rect(x0, x1, ylo, top, fillStyle(b.Color, b.Edge)))
		}
	}
	for _, g := range p.VLines {
		v := p.X.project(g.At)
		if v >= xlo && v <= xhi {
			series = append(series, chart.ContinuousSeries{
				XValues: []float64{v, v}, YValues: []float64{ylo, yhi},
				Style: chart.Style{StrokeColor: g.Color, StrokeWidth: lineWidth(g.Width), StrokeDashArray: g.Dash.array()},
			})
		}
	}
	for _, g := range p.HLines {
		v := p.Y.project(g.At)
		if v >= ylo && v <= yhi {
			series = append(series, chart.ContinuousSeries{
				XValues: []float64{xlo, xhi}, YValues: []float64{v, v},
				Style: chart.Style{StrokeColor: g.Color, StrokeWidth: lineWidth(g.Width), StrokeDashArray: g.Dash.array()},
			})
		}
	}
	for _, l := range p.Lines {
		if len(l.X) != len(l.Y) {
			return chart.Chart{}, fmt.Errorf("panel %q line %q: %d x values vs %d y values", p.Title, l.Name, len(l.X), len(l.Y))
		}
		xs := make([]float64, len(l.X))
		ys := make([]float64, len(l.Y))
		for i := range l.X {
			xs[i] = p.X.project(l.X[i])
			ys[i] = p.Y.project(l.Y[i])
		}
		st := chart.Style{StrokeColor: l.Color, StrokeWidth: lineWidth(l.Width), StrokeDashArray: l.Dash.array()}
		runs, outside := win.clipPolyline(xs, ys)
		if outside > 0 {
			Debugf("panel %q: %d of %d points of %q outside the window", p.Title, outside, len(xs), l.Name)
		}
		for _, r := range runs {
			series = append(series, chart.ContinuousSeries{XValues: r.xs, YValues: r.ys, Style: st})
		}
		var mx, my []float64
		if l.Marker > 0 {
			for i := range xs {
				if win.contains(xs[i], ys[i]) {
					mx = append(mx, xs[i])
					my = append(my, ys[i])
				}
			}
			if len(mx) > 0 {
				series = append(series, chart.ContinuousSeries{XValues: mx, YValues: my, Style: pointStyle(l.Color, l.Marker)})
			}
		}
		if len(xs) > 0 && len(runs) == 0 && len(mx) == 0 {
			Infof("panel %q: line %q has no point inside the window", p.Title, l.Name)
		}
	}
	if len(series) == 0 {
		// go-chart refuses to render without a series
		series = append(series, chart.ContinuousSeries{
			XValues: []float64{xlo, xhi}, YValues: []float64{ylo, yhi},
			Style: chart.Style{StrokeColor: chart.ColorTransparent, StrokeWidth: 1},
		})
	}

	for _, l := range p.Lines {
		if l.Name == "" {
			continue
		}
		st := chart.Style{StrokeColor: l.Color, StrokeWidth: lineWidth(l.Width), StrokeDashArray: l.Dash.array()}
		if l.Marker > 0 {
			st.DotColor = l.Color
			st.DotWidth = l.Marker
		}
		entries = append(entries, legendEntry{label: l.Name, style: st})
	}
	for _, g := range append(append([]Guide{}, p.HLines...), p.VLines...) {
		if g.Name != "" {
			entries = append(entries, legendEntry{label: g.Name, style: chart.Style{StrokeColor: g.Color, StrokeWidth: lineWidth(g.Width), StrokeDashArray: g.Dash.array()}})
		}
	}
	for _, s := range append(append([]Region{}, p.Spans...), p.Bands...) {
		if s.Name != "" {
			entries = append(entries, legendEntry{label: s.Name, style: swatch(s.Color)})
		}
	}
	for _, b := range p.Bars {
		if b.Legend && b.Name != "" {
			entries = append(entries, legendEntry{label: b.Name, style: swatch(b.Color)})
		}
	}

	labels := make([]placedLabel, 0, len(p.Labels))
	for _, l := range p.Labels {
		labels = append(labels, placedLabel{Label: l, x: p.X.project(l.X), y: p.Y.project(l.Y)})
	}

	grid := chart.Style{Hidden: true}
	if p.Grid {
		grid = gridStyle
	}
	ch := chart.Chart{
		Title:      p.Title,
		TitleStyle: chart.Style{FontSize: 12, Padding: chart.Box{Top: 8}},
		Width:      w,
		Height:     h,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 12, Bottom: 16}},
		XAxis: chart.XAxis{
			Name:           p.X.Label,
			Range:          &chart.ContinuousRange{Min: xlo, Max: xhi},
			Ticks:          p.X.ticks(),
			GridMajorStyle: grid,
			GridMinorStyle: grid,
		},
		YAxis: chart.YAxis{
			Name:           p.Y.Label,
			Range:          &chart.ContinuousRange{Min: ylo, Max: yhi},
			Ticks:          p.Y.ticks(),
			GridMajorStyle: grid,
			GridMinorStyle: grid,
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{textLayer(labels, win)}
	if p.Legend != LegendOff {
		ch.Elements = append(ch.Elements, legendBox(entries, p.Legend))
	}
	return ch, nil
}

// Render draws the panel at w x h pixels.
func (p *Panel) Render(w, h int) (image.Image, error) {
	ch, err := p.build(w, h)
	if err != nil {
		return nil, err
	}
	Debugf("panel %q: %dx%d, %d series", p.Title, w, h, len(ch.Series))
	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render panel %q: %w", p.Title, err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode panel %q: %w", p.Title, err)
	}
	return img, nil
}
