package figures

import (
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var (
	red     = drawing.Color{R: 255, A: 255}
	blue    = drawing.Color{B: 255, A: 255}
	green   = drawing.Color{G: 128, A: 255}
	black   = drawing.Color{A: 255}
	gray    = drawing.Color{R: 128, G: 128, B: 128, A: 255}
	yellow  = drawing.Color{R: 255, G: 255, A: 255}
	magenta = drawing.Color{R: 191, B: 191, A: 255}
	orange  = drawing.ColorFromHex("e67e22")
)

// elementColors keys the per-element palette by symbol.
var elementColors = map[string]drawing.Color{
	"He": drawing.ColorFromHex("e74c3c"),
	"Ne": drawing.ColorFromHex("3498db"),
	"Ar": drawing.ColorFromHex("2ecc71"),
	"Kr": drawing.ColorFromHex("f39c12"),
	"Xe": drawing.ColorFromHex("9b59b6"),
}

func elementColor(symbol string) drawing.Color {
	if c, ok := elementColors[symbol]; ok {
		return c
	}
	return gray
}

// fade applies an opacity in [0,1].
func fade(c drawing.Color, a float64) drawing.Color {
	return c.WithAlpha(uint8(a*255 + 0.5))
}
