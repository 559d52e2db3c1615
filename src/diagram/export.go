package diagram

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgeps"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
)

// Figure geometry: roughly A3 landscape, rendered at print resolution.
const (
	figWidth  = 15.5 * vg.Inch
	figHeight = 10.5 * vg.Inch
	figDPI    = 400

	// BaseName is the stem of every output file.
	BaseName = "ellingham"
)

// Formats lists the supported export formats in default order.
var Formats = []string{"eps", "png", "pdf"}

// draw lays both panels side by side on dc.
func (f *Figure) draw(dc draw.Canvas) {
	tiles := draw.Tiles{
		Rows: 1,
		Cols: 2,
		PadX: vg.Points(20),
		PadY: vg.Points(10),
	}
	canvases := plot.Align([][]*plot.Plot{{f.Oxides, f.Other}}, tiles, dc)
	f.Oxides.Draw(canvases[0][0])
	f.Other.Draw(canvases[0][1])
}

// WriteEPS renders the figure as Encapsulated PostScript.
func (f *Figure) WriteEPS(w io.Writer) error {
	c := vgeps.NewTitle(figWidth, figHeight, BaseName)
	f.draw(draw.New(c))
	_, err := c.WriteTo(w)
	return err
}

// WritePNG renders the figure as a raster preview.
func (f *Figure) WritePNG(w io.Writer) error {
	c := vgimg.NewWith(vgimg.UseWH(figWidth, figHeight), vgimg.UseDPI(figDPI))
	f.draw(draw.New(c))
	_, err := vgimg.PngCanvas{Canvas: c}.WriteTo(w)
	return err
}

// WritePDF renders the figure as print-ready PDF.
func (f *Figure) WritePDF(w io.Writer) error {
	c := vgpdf.New(figWidth, figHeight)
	f.draw(draw.New(c))
	_, err := c.WriteTo(w)
	return err
}

// Export writes the figure to dir, one file per requested format
// (ellingham.eps, ellingham.png, ellingham.pdf). The first failure aborts the
// run; there is no partial-output or retry concept in a one-shot batch tool.
func Export(f *Figure, dir string, formats []string) error {
	defer TimeTrack(time.Now(), "export")
	if len(formats) == 0 {
		formats = Formats
	}
	for _, format := range formats {
		format = strings.ToLower(strings.TrimSpace(format))
		var write func(io.Writer) error
		switch format {
		case "eps":
			write = f.WriteEPS
		case "png":
			write = f.WritePNG
		case "pdf":
			write = f.WritePDF
		default:
			return fmt.Errorf("unknown output format %q (want eps, png or pdf)", format)
		}
		path := filepath.Join(dir, BaseName+"."+format)
		if err := writeFile(path, write); err != nil {
			return err
		}
		Infof("wrote %s", path)
	}
	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(out); err != nil {
		out.Close()
		return fmt.Errorf("render %s: %w", path, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
