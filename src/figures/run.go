// Package figures renders the delay figures: go-chart panels composed into one raster per
// figure and written as PNG and single page PDF.
package figures

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/iafilius/AttosecondDelays/src/physics"
)

// ErrUnknownFigure is returned for figure numbers outside 1..6.
var ErrUnknownFigure = errors.New("unknown figure")

// Builder assembles one figure from the engine.
type Builder func(eng *physics.Engine) (*Figure, error)

type entry struct {
	num   int
	stem  string
	build Builder
}

var registry = []entry{
	{1, "fig1_helium_delays", HeliumDelays},
	{2, "fig2_all_elements", AllElements},
	{3, "fig3_scaling", Scaling},
	{4, "fig4_isoelectronic", Isoelectronic},
	{5, "fig5_neon_detail", NeonDetail},
	{6, "fig6_corrections", Corrections},
}

// Stems returns the file stems of all figures in run order.
func Stems() []string {
	out := make([]string, len(registry))
	for i, e := range registry {
		out[i] = e.stem
	}
	return out
}

func lookup(n int) (entry, error) {
	for _, e := range registry {
		if e.num == n {
			return e, nil
		}
	}
	return entry{}, fmt.Errorf("%w: %d (want 1-%d)", ErrUnknownFigure, n, len(registry))
}

// Build assembles figure n without writing anything.
func Build(eng *physics.Engine, n int) (*Figure, error) {
	e, err := lookup(n)
	if err != nil {
		return nil, err
	}
	fig, err := e.build(eng)
	if err != nil {
		return nil, fmt.Errorf("figure %d: %w", n, err)
	}
	return fig, nil
}

// ParseFigureList parses "1,3,5" into sorted, de-duplicated figure numbers.
// An empty string selects every figure.
func ParseFigureList(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	seen := map[int]bool{}
	var out []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownFigure, part)
		}
		if _, err := lookup(n); err != nil {
			return nil, err
		}
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	sort.Ints(out)
	return out, nil
}

const (
	DefaultPanelWidth = 640
	minPanelWidth     = 320
	minPanelHeight    = 240
	maxPanelHeight    = 1600
)

// PanelDimensions applies the width/height clamp rules used for panels. A zero height
// follows the width at a 0.8 aspect ratio.
func PanelDimensions(rawW, rawH int) (int, int) {
	w := rawW
	if w <= 0 {
		w = DefaultPanelWidth
	}
	if w < minPanelWidth {
		Warnf("panel width %d raised to %d", w, minPanelWidth)
		w = minPanelWidth
	}
	h := rawH
	if h <= 0 {
		h = int(float32(w) * 0.8)
	}
	if h < minPanelHeight {
		Warnf("panel height %d raised to %d", h, minPanelHeight)
		h = minPanelHeight
	}
	if h > maxPanelHeight {
		Warnf("panel height %d lowered to %d", h, maxPanelHeight)
		h = maxPanelHeight
	}
	return w, h
}

// Options controls a run.
type Options struct {
	OutDir      string
	Figures     []int    // nil runs all figures
	Formats     []Format // nil means DefaultFormats
	PanelWidth  int
	PanelHeight int
	DataDir     string    // when set, a YAML data file is written per figure
	Console     io.Writer // confirmation lines; nil discards them
}

// Run builds and writes the selected figures in order and returns every file written.
// It stops at the first error; files already written stay on disk.
func Run(eng *physics.Engine, opts Options) ([]string, error) {
	outDir := opts.OutDir
	if outDir == "" {
		outDir = "."
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("create out dir: %w", err)
	}
	if opts.DataDir != "" {
		if err := os.MkdirAll(opts.DataDir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}
	formats := opts.Formats
	if len(formats) == 0 {
		formats = DefaultFormats
	}
	console := opts.Console
	if console == nil {
		console = io.Discard
	}
	nums := opts.Figures
	if len(nums) == 0 {
		for _, e := range registry {
			nums = append(nums, e.num)
		}
	}
	pw, ph := PanelDimensions(opts.PanelWidth, opts.PanelHeight)
	Debugf("panel size %dx%d, formats %v, out dir %s", pw, ph, formats, outDir)

	var written []string
	for _, n := range nums {
		paths, err := writeFigure(eng, n, outDir, opts.DataDir, formats, pw, ph)
		written = append(written, paths...)
		if err != nil {
			Errorf("figure %d failed after %d files: %v", n, len(paths), err)
			return written, err
		}
		e, _ := lookup(n)
		fmt.Fprintf(console, "✓ Figure %d saved: %s\n", n, savedName(e.stem, formats))
	}
	Infof("%d figures, %d files written to %s", len(nums), len(written), outDir)
	return written, nil
}

// writeFigure builds figure n and writes its image files and, with dataDir set, its data file.
func writeFigure(eng *physics.Engine, n int, outDir, dataDir string, formats []Format, pw, ph int) ([]string, error) {
	e, err := lookup(n)
	if err != nil {
		return nil, err
	}
	fig, err := Build(eng, n)
	if err != nil {
		return nil, err
	}
	if fig.Stem != e.stem {
		return nil, fmt.Errorf("figure %d: stem %q, want %q", n, fig.Stem, e.stem)
	}
	written, err := Save(fig, outDir, formats, pw, ph)
	if err != nil {
		return written, fmt.Errorf("figure %d: %w", n, err)
	}
	if dataDir != "" {
		p, err := WriteData(fig.Data(), dataDir)
		if err != nil {
			return written, fmt.Errorf("figure %d: %w", n, err)
		}
		written = append(written, p)
	}
	Debugf("figure %d written (%s)", n, e.stem)
	return written, nil
}

// savedName renders "stem.pdf/.png" style names.
func savedName(stem string, formats []Format) string {
	parts := make([]string, len(formats))
	for i, f := range formats {
		parts[i] = "." + string(f)
	}
	return stem + strings.Join(parts, "/")
}
