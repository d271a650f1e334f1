package figures

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"
)

// SeriesData is one plotted curve in data units.
type SeriesData struct {
	Name string    `yaml:"name"`
	X    []float64 `yaml:"x,flow"`
	Y    []float64 `yaml:"y,flow"`
}

// PanelData is the numeric content of one panel.
type PanelData struct {
	Title  string             `yaml:"title"`
	Series []SeriesData       `yaml:"series,omitempty"`
	Marks  map[string]float64 `yaml:"marks,omitempty"`
}

// FigureData is what a figure's YAML export holds.
type FigureData struct {
	Stem   string      `yaml:"figure"`
	Title  string      `yaml:"title"`
	Panels []PanelData `yaml:"panels"`
	// Extra carries per-figure tables (fits, cutoffs, factors).
	Extra map[string]interface{} `yaml:"extra,omitempty"`
}

// Data collects the numbers placed on the panel: named curves, guide positions, shaded
// intervals and bar heights.
func (p *Panel) Data() PanelData {
	d := PanelData{Title: p.Title}
	for i, l := range p.Lines {
		name := l.Name
		if name == "" {
			name = fmt.Sprintf("line%d", i+1)
		}
		d.Series = append(d.Series, SeriesData{Name: name, X: l.X, Y: l.Y})
	}
	marks := map[string]float64{}
	for i, g := range p.VLines {
		marks[markName("x", g.Name, i)] = g.At
	}
	for i, g := range p.HLines {
		marks[markName("y", g.Name, i)] = g.At
	}
	for i, s := range p.Spans {
		marks[markName("span", s.Name, i)+".from"] = s.From
		marks[markName("span", s.Name, i)+".to"] = s.To
	}
	for i, s := range p.Bands {
		marks[markName("band", s.Name, i)+".from"] = s.From
		marks[markName("band", s.Name, i)+".to"] = s.To
	}
	for i, b := range p.Bars {
		marks[fmt.Sprintf("bar%d.%s", i+1, b.Name)] = b.Value
	}
	if len(marks) > 0 {
		d.Marks = marks
	}
	return d
}

func markName(kind, name string, i int) string {
	if name == "" {
		return fmt.Sprintf("%s%d", kind, i+1)
	}
	return kind + ":" + name
}

// Data collects the numbers of every panel plus the figure's tables.
func (f *Figure) Data() FigureData {
	d := FigureData{Stem: f.Stem, Title: f.Title, Extra: f.Tables}
	for _, p := range f.Panels {
		d.Panels = append(d.Panels, p.Data())
	}
	return d
}

// WriteData writes d as <dir>/<stem>.yaml.
func WriteData(d FigureData, dir string) (string, error) {
	b, err := yaml.Marshal(d)
	if err != nil {
		return "", fmt.Errorf("yaml encode %s: %w", d.Stem, err)
	}
	path := filepath.Join(dir, d.Stem+".yaml")
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	Debugf("wrote %s (%s)", path, humanize.Bytes(uint64(len(b))))
	return path, nil
}
