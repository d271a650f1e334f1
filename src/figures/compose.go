package figures

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strings"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Figure is a grid of panels written under one file stem.
type Figure struct {
	Stem   string
	Title  string
	Rows   int
	Cols   int
	Panels []*Panel // row-major, len == Rows*Cols
	// ColWeights scales panel widths per column; nil means equal widths.
	ColWeights []float64
	// Tables holds derived numbers (fits, cutoffs) for the data export.
	Tables map[string]interface{}
}

const titleScale = 2

func (f *Figure) validate() error {
	if f.Rows < 1 || f.Cols < 1 {
		return fmt.Errorf("figure %s: invalid grid %dx%d", f.Stem, f.Rows, f.Cols)
	}
	if len(f.Panels) != f.Rows*f.Cols {
		return fmt.Errorf("figure %s: %d panels for a %dx%d grid", f.Stem, len(f.Panels), f.Rows, f.Cols)
	}
	if f.ColWeights != nil && len(f.ColWeights) != f.Cols {
		return fmt.Errorf("figure %s: %d column weights for %d columns", f.Stem, len(f.ColWeights), f.Cols)
	}
	return nil
}

// columnWidths splits Cols*panelW pixels by ColWeights.
func (f *Figure) columnWidths(panelW int) []int {
	out := make([]int, f.Cols)
	if f.ColWeights == nil {
		for i := range out {
			out[i] = panelW
		}
		return out
	}
	sum := 0.0
	for _, w := range f.ColWeights {
		sum += w
	}
	total := float64(panelW * f.Cols)
	for i, w := range f.ColWeights {
		out[i] = int(total * w / sum)
	}
	return out
}

// Compose renders every panel and lays them out under the figure title.
func (f *Figure) Compose(panelW, panelH int) (*image.RGBA, error) {
	if err := f.validate(); err != nil {
		return nil, err
	}
	widths := f.columnWidths(panelW)
	totalW := 0
	for _, w := range widths {
		totalW += w
	}
	titleH := 0
	if strings.TrimSpace(f.Title) != "" {
		titleH = basicfont.Face7x13.Metrics().Height.Ceil()*titleScale + 16
	}
	canvas := image.NewRGBA(image.Rect(0, 0, totalW, titleH+f.Rows*panelH))
	draw.Draw(canvas, canvas.Bounds(), image.White, image.Point{}, draw.Src)

	for r := 0; r < f.Rows; r++ {
		x := 0
		for c := 0; c < f.Cols; c++ {
			p := f.Panels[r*f.Cols+c]
			img, err := p.Render(widths[c], panelH)
			if err != nil {
				return nil, fmt.Errorf("figure %s: %w", f.Stem, err)
			}
			at := image.Pt(x, titleH+r*panelH)
			draw.Draw(canvas, img.Bounds().Sub(img.Bounds().Min).Add(at), img, img.Bounds().Min, draw.Over)
			x += widths[c]
		}
	}
	if titleH > 0 {
		drawTitle(canvas, f.Title, titleH)
	}
	return canvas, nil
}

// drawTitle stamps text centred in the top band of dst, upscaled from the 7x13 bitmap face.
func drawTitle(dst *image.RGBA, text string, bandH int) {
	face := basicfont.Face7x13
	dr := &font.Drawer{Face: face}
	tw := dr.MeasureString(text).Ceil()
	th := face.Metrics().Height.Ceil()
	small := image.NewRGBA(image.Rect(0, 0, tw+2, th))
	dr.Dst = small
	dr.Src = image.NewUniform(color.RGBA{R: 30, G: 30, B: 30, A: 255})
	dr.Dot = fixed.Point26_6{X: fixed.I(1), Y: face.Metrics().Ascent}
	dr.DrawString(text)

	w := small.Bounds().Dx() * titleScale
	h := small.Bounds().Dy() * titleScale
	x := (dst.Bounds().Dx() - w) / 2
	if x < 0 {
		x = 0
	}
	y := (bandH - h) / 2
	xdraw.NearestNeighbor.Scale(dst, image.Rect(x, y, x+w, y+h), small, small.Bounds(), xdraw.Over, nil)
}
