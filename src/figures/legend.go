package figures

import (
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Corner places a panel's legend. LegendOff hides it.
type Corner int

const (
	LegendOff Corner = iota
	UpperLeft
	UpperRight
	LowerLeft
	LowerRight
)

type legendEntry struct {
	label string
	style chart.Style // stroke colour, width and dash of the swatch
}

// legendBox draws entries inside the canvas box at the given corner: swatch first, then label.
// It follows chart.Legend but can sit in any corner.
func legendBox(entries []legendEntry, corner Corner) chart.Renderable {
	return func(r chart.Renderer, cb chart.Box, defaults chart.Style) {
		if len(entries) == 0 {
			return
		}
		boxStyle := chart.Style{
			FillColor:   drawing.ColorWhite.WithAlpha(220),
			FontColor:   chart.DefaultTextColor,
			FontSize:    8.0,
			StrokeColor: chart.DefaultAxisColor,
			StrokeWidth: chart.DefaultAxisLineWidth,
		}.InheritFrom(defaults)

		const (
			margin   = 8
			pad      = 5
			swatch   = 22
			gap      = 5
			rowSpace = 4
		)
		boxStyle.GetTextOptions().WriteToRenderer(r)
		textW, textH := 0, 0
		heights := make([]int, len(entries))
		for i, e := range entries {
			tb := r.MeasureText(e.label)
			heights[i] = tb.Height()
			textW = chart.MaxInt(textW, tb.Width())
			textH += tb.Height()
			if i > 0 {
				textH += rowSpace
			}
		}
		w := pad + swatch + gap + textW + pad
		h := pad + textH + pad

		var b chart.Box
		switch corner {
		case UpperLeft:
			b = chart.Box{Left: cb.Left + margin, Top: cb.Top + margin}
		case UpperRight:
			b = chart.Box{Left: cb.Right - margin - w, Top: cb.Top + margin}
		case LowerLeft:
			b = chart.Box{Left: cb.Left + margin, Top: cb.Bottom - margin - h}
		default:
			b = chart.Box{Left: cb.Right - margin - w, Top: cb.Bottom - margin - h}
		}
		b.Right = b.Left + w
		b.Bottom = b.Top + h
		chart.Draw.Box(r, b, boxStyle)

		y := b.Top + pad
		for i, e := range entries {
			if i > 0 {
				y += rowSpace
			}
			ty := y + heights[i]
			ly := ty - heights[i]/2
			r.SetStrokeColor(e.style.StrokeColor)
			r.SetStrokeWidth(e.style.StrokeWidth)
			r.SetStrokeDashArray(e.style.StrokeDashArray)
			r.MoveTo(b.Left+pad, ly)
			r.LineTo(b.Left+pad+swatch, ly)
			r.Stroke()
			if !e.style.DotColor.IsZero() {
				r.SetFillColor(e.style.DotColor)
				r.SetStrokeColor(e.style.DotColor)
				r.Circle(e.style.DotWidth, b.Left+pad+swatch/2, ly)
				r.FillStroke()
			}
			boxStyle.GetTextOptions().WriteToRenderer(r)
			r.Text(e.label, b.Left+pad+swatch+gap, ty)
			y = ty
		}
		r.ResetStyle()
	}
}

// textLayer draws free text at data coordinates. The translation mirrors
// chart.ContinuousRange so labels line up with the series.
func textLayer(labels []placedLabel, win window) chart.Renderable {
	return func(r chart.Renderer, cb chart.Box, defaults chart.Style) {
		for _, l := range labels {
			x, y := l.x, l.y
			if !win.contains(x, y) {
				continue
			}
			size := l.Size
			if size == 0 {
				size = 9
			}
			col := l.Color
			if col.IsZero() {
				col = chart.ColorBlack
			}
			st := chart.Style{FontSize: size, FontColor: col}.InheritFrom(defaults)
			st.GetTextOptions().WriteToRenderer(r)
			tb := r.MeasureText(l.Text)
			px := cb.Left + int((x-win.x0)/(win.x1-win.x0)*float64(cb.Width()))
			py := cb.Bottom - int((y-win.y0)/(win.y1-win.y0)*float64(cb.Height()))
			if l.Center {
				px -= tb.Width() / 2
			}
			r.Text(l.Text, px, py)
			r.ResetStyle()
		}
	}
}
