package figures

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/go-pdf/fpdf"
)

// Format is an output file format.
type Format string

const (
	PNG Format = "png"
	PDF Format = "pdf"
)

// DefaultFormats is the order in which figure files are written.
var DefaultFormats = []Format{PDF, PNG}

// ParseFormats parses a comma separated list such as "pdf,png".
func ParseFormats(s string) ([]Format, error) {
	var out []Format
	seen := map[Format]bool{}
	for _, part := range strings.Split(s, ",") {
		f := Format(strings.ToLower(strings.TrimSpace(part)))
		if f == "" {
			continue
		}
		if f != PNG && f != PDF {
			return nil, fmt.Errorf("unknown format %q (want pdf or png)", part)
		}
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no output formats in %q", s)
	}
	return out, nil
}

// pdfEpoch is stamped as creation and modification date so reruns produce identical bytes.
var pdfEpoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// pxToPt converts 96 dpi pixels to PDF points.
const pxToPt = 72.0 / 96.0

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WritePNG encodes img to path.
func WritePNG(img image.Image, path string) error {
	b, err := encodePNG(img)
	if err != nil {
		return fmt.Errorf("png encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	Debugf("wrote %s (%s)", path, humanize.Bytes(uint64(len(b))))
	return nil
}

// PDFMeta is the document information written into a PDF.
type PDFMeta struct {
	Title   string
	Subject string
	Creator string
}

// RenderPDF returns a single page PDF holding img at 96 dpi.
func RenderPDF(img image.Image, meta PDFMeta) ([]byte, error) {
	raster, err := encodePNG(img)
	if err != nil {
		return nil, fmt.Errorf("png encode: %w", err)
	}
	b := img.Bounds()
	w := float64(b.Dx()) * pxToPt
	h := float64(b.Dy()) * pxToPt
	pdf := fpdf.NewCustom(&fpdf.InitType{
		UnitStr: "pt",
		Size:    fpdf.SizeType{Wd: w, Ht: h},
	})
	pdf.SetCreationDate(pdfEpoch)
	pdf.SetModificationDate(pdfEpoch)
	pdf.SetCatalogSort(true)
	pdf.SetCompression(true)
	pdf.SetTitle(meta.Title, true)
	pdf.SetSubject(meta.Subject, true)
	pdf.SetCreator(meta.Creator, true)
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("figure", opts, bytes.NewReader(raster))
	pdf.ImageOptions("figure", 0, 0, w, h, false, opts, 0, "")
	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, fmt.Errorf("pdf output: %w", err)
	}
	return out.Bytes(), nil
}

// WritePDF writes img as a single page PDF to path.
func WritePDF(img image.Image, path string, meta PDFMeta) error {
	b, err := RenderPDF(img, meta)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	Debugf("wrote %s (%s)", path, humanize.Bytes(uint64(len(b))))
	return nil
}

// Save composes fig and writes one file per format into dir. It returns the paths in
// format order.
func Save(fig *Figure, dir string, formats []Format, panelW, panelH int) ([]string, error) {
	start := time.Now()
	defer TimeTrack(start, "figure "+fig.Stem)
	img, err := fig.Compose(panelW, panelH)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, f := range formats {
		path := filepath.Join(dir, fig.Stem+"."+string(f))
		switch f {
		case PNG:
			err = WritePNG(img, path)
		case PDF:
			err = WritePDF(img, path, PDFMeta{Title: fig.Title, Subject: fig.Stem, Creator: "qgufigures"})
		default:
			err = fmt.Errorf("unknown format %q", f)
		}
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
