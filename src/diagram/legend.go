package diagram

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/ltegg/ellingham/src/reaction"
)

// legendRect is a hand-placed box in data coordinates. All content inside a
// box is positioned relative to its corners, so moving the box (or changing
// the axis ranges) moves the whole template with it.
type legendRect struct {
	X0, X1 float64
	Y0, Y1 float64
}

// defaultLegendRect places the legend boxes in the empty lower-right region
// of both panels, clear of the reaction curves.
var defaultLegendRect = legendRect{X0: 900, X1: 1970, Y0: -1290, Y1: -1060}

func (r legendRect) width() float64 { return r.X1 - r.X0 }

// box returns the white backing rectangle with a black border.
func (r legendRect) box() (*plotter.Polygon, error) {
	poly, err := plotter.NewPolygon(plotter.XYs{
		{X: r.X0, Y: r.Y0}, {X: r.X1, Y: r.Y0},
		{X: r.X1, Y: r.Y1}, {X: r.X0, Y: r.Y1},
	})
	if err != nil {
		return nil, fmt.Errorf("legend box: %w", err)
	}
	poly.Color = color.White
	poly.LineStyle = draw.LineStyle{Color: color.Black, Width: vg.Points(1)}
	return poly, nil
}

// legendText is one positioned text row inside a legend box.
type legendText struct {
	x, y   float64
	s      string
	size   vg.Length
	xAlign text.XAlignment
	yAlign text.YAlignment
	bold   bool
	italic bool
	rotate bool // rotate 90 degrees for the vertical "Compound" header
}

func addLegendTexts(p *plot.Plot, items []legendText) error {
	xyl := plotter.XYLabels{
		XYs:    make(plotter.XYs, len(items)),
		Labels: make([]string, len(items)),
	}
	for i, it := range items {
		xyl.XYs[i] = plotter.XY{X: it.x, Y: it.y}
		xyl.Labels[i] = it.s
	}
	lbls, err := plotter.NewLabels(xyl)
	if err != nil {
		return fmt.Errorf("legend text: %w", err)
	}
	for i, it := range items {
		st := &lbls.TextStyle[i]
		st.Font.Size = it.size
		st.XAlign = it.xAlign
		st.YAlign = it.yAlign
		if it.bold {
			embolden(st)
		}
		if it.italic {
			italicize(st)
		}
		if it.rotate {
			st.Rotation = math.Pi / 2
		}
	}
	p.Add(lbls)
	return nil
}

// addPhaseLegend draws the phase-state key: a 3x3 grid of sample segments,
// columns by metal phase and rows by compound phase, under Metal/Compound
// headers. The samples reuse segmentStyle so the key can never drift from the
// styles actually drawn.
func addPhaseLegend(p *plot.Plot, r legendRect, base color.NRGBA) error {
	box, err := r.box()
	if err != nil {
		return err
	}
	p.Add(box)

	w := r.width()
	texts := []legendText{
		{r.X0 + w/2 + 155, r.Y1 - 30, "Metal", 9, text.XCenter, text.YBottom, true, false, false},
		{r.X0 + w/4 + 170, r.Y1 - 65, "Solid", 9, text.XCenter, text.YBottom, false, false, false},
		{r.X0 + w/2 + 155, r.Y1 - 65, "Liquid", 9, text.XCenter, text.YBottom, false, false, false},
		{r.X0 + 3*w/4 + 140, r.Y1 - 65, "Gas", 9, text.XCenter, text.YBottom, false, false, false},
		{r.X0 + 70, r.Y1 - 110, "Compound", 9, text.XCenter, text.YBottom, true, false, true},
		{r.X0 + 290, r.Y1 - 110, "Solid", 9, text.XRight, text.YBottom, false, false, false},
		{r.X0 + 290, r.Y1 - 155, "Liquid", 9, text.XRight, text.YBottom, false, false, false},
		{r.X0 + 290, r.Y1 - 200, "Gas", 9, text.XRight, text.YBottom, false, false, false},
	}
	if err := addLegendTexts(p, texts); err != nil {
		return err
	}

	// Sample segments: columns left-to-right are metal solid/liquid/gas,
	// rows top-to-bottom are compound solid/liquid/gas.
	colX := []float64{r.X0 + 360, r.X0 + 620, r.X0 + 880}
	rowY := []float64{r.Y1 - 100, r.Y1 - 148, r.Y1 - 195}
	const sampleLen = 140.0
	phases := []reaction.Phase{reaction.Solid, reaction.Liquid, reaction.Gas}
	for ri, compound := range phases {
		for ci, metal := range phases {
			pp := reaction.PhasePair{Metal: metal, Compound: compound}
			ln, err := plotter.NewLine(plotter.XYs{
				{X: colX[ci], Y: rowY[ri]},
				{X: colX[ci] + sampleLen, Y: rowY[ri]},
			})
			if err != nil {
				return fmt.Errorf("legend sample %s: %w", pp, err)
			}
			ln.LineStyle = segmentStyle(base, pp)
			p.Add(ln)
		}
	}
	return nil
}

// addSourcesLegend draws the citation box for the second panel.
func addSourcesLegend(p *plot.Plot, r legendRect) error {
	box, err := r.box()
	if err != nil {
		return err
	}
	p.Add(box)

	texts := []legendText{
		{r.X0 + 30, r.Y1 - 25, "Sources", 9, text.XLeft, text.YTop, true, false, false},
		{r.X0 + 30, r.Y1 - 55, "O₂, N₂, F₂ and Cl₂ data from:", 9, text.XLeft, text.YTop, false, false, false},
		{r.X0 + 30, r.Y1 - 80,
			"Reed, T.B., 1971. Free energy of\nformation of binary compounds.\nMIT Press, Cambridge, Mass.",
			8, text.XLeft, text.YTop, false, true, false},
		{r.X0 + 30, r.Y1 - 150, "C data from:", 9, text.XLeft, text.YTop, false, false, false},
		{r.X0 + 30, r.Y1 - 175,
			"Coltters, R.G., 1985. Thermodynamics\nof binary metallic carbides: A review.\nMaterials Science and Engineering\n76, 1–50.",
			8, text.XLeft, text.YTop, false, true, false},
	}
	return addLegendTexts(p, texts)
}
