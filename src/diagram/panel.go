package diagram

import (
	"fmt"
	"image/color"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/ltegg/ellingham/src/reaction"
)

// Fixed axis ranges of both panels, in degrees Celsius and kJ/mol.
const (
	xMin, xMax = -800.0, 2000.0
	yMin, yMax = -1300.0, 50.0

	// horizontal shift of a reaction label from its segment's start point
	labelXOffset = -25.0

	labelFontSize = vg.Length(8)
)

// xTicks returns the major temperature ticks: 0, 200, ..., 2000.
func xTicks() []float64 {
	ts := make([]float64, 11)
	return floats.Span(ts, 0, 2000)
}

// yTicks returns the free energy ticks: -1300, -1200, ..., 0.
func yTicks() []float64 {
	ts := make([]float64, 14)
	return floats.Span(ts, -1300, 0)
}

func constantTicks(vals []float64) plot.ConstantTicks {
	ticks := make([]plot.Tick, len(vals))
	for i, v := range vals {
		ticks[i] = plot.Tick{Value: v, Label: fmt.Sprintf("%g", v)}
	}
	return plot.ConstantTicks(ticks)
}

// newPanel builds one diagram panel with the shared axis cosmetics: tick
// positions, vertical gridlines at each major temperature tick, and
// emphasized zero-temperature and zero-energy reference lines. Gridlines are
// added here so they sit under everything drawn later. Axis ranges are fixed
// by clampAxes once all plotters are in place, because plot.Add widens the
// ranges to cover each plotter's data and several segments run past 2000 °C.
func newPanel(title, yLabel string) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	embolden(&p.Title.TextStyle)
	p.X.Label.Text = "Temperature (°C)"
	p.Y.Label.Text = yLabel

	p.X.Tick.Marker = constantTicks(xTicks())
	p.Y.Tick.Marker = constantTicks(yTicks())

	gridStyle := draw.LineStyle{
		// 50% gray at half strength, pre-blended against white
		Color: color.NRGBA{R: 191, G: 191, B: 191, A: 255},
		Width: vg.Points(0.8),
	}
	for _, x := range xTicks() {
		g, err := vline(x, gridStyle)
		if err != nil {
			return nil, err
		}
		p.Add(g)
	}

	axisStyle := draw.LineStyle{Color: color.Black, Width: vg.Points(1)}
	zx, err := vline(0, axisStyle)
	if err != nil {
		return nil, err
	}
	zy, err := hline(0, axisStyle)
	if err != nil {
		return nil, err
	}
	p.Add(zx, zy)
	return p, nil
}

// clampAxes pins the panel to the diagram's fixed viewport. Must run after
// the last plotter is added; everything outside is clipped, not discarded
// from the data.
func clampAxes(p *plot.Plot) {
	p.X.Min, p.X.Max = xMin, xMax
	p.Y.Min, p.Y.Max = yMin, yMax
}

func vline(x float64, style draw.LineStyle) (*plotter.Line, error) {
	l, err := plotter.NewLine(plotter.XYs{{X: x, Y: yMin}, {X: x, Y: yMax}})
	if err != nil {
		return nil, fmt.Errorf("vertical line at %g: %w", x, err)
	}
	l.LineStyle = style
	return l, nil
}

func hline(y float64, style draw.LineStyle) (*plotter.Line, error) {
	l, err := plotter.NewLine(plotter.XYs{{X: xMin, Y: y}, {X: xMax, Y: y}})
	if err != nil {
		return nil, fmt.Errorf("horizontal line at %g: %w", y, err)
	}
	l.LineStyle = style
	return l, nil
}

// addFamily draws every segment of f onto p, one line plus endpoint dots per
// row, iterating phase pairs in the fixed draw order. Labels are rendered for
// the all-solid group only, so each reaction is annotated exactly once, next
// to its lowest-temperature segment.
func addFamily(p *plot.Plot, f *reaction.Family) error {
	base, ok := familyColors[f.Name]
	if !ok {
		return fmt.Errorf("no color assigned to family %q", f.Name)
	}
	for _, pp := range reaction.PairOrder {
		g := f.Group(pp)
		if len(g) == 0 {
			continue
		}
		lineStyle := segmentStyle(base, pp)
		dotStyle := glyphStyle(base, pp)
		for i, s := range g {
			xys := plotter.XYs{{X: s.T0, Y: s.G0}, {X: s.T1, Y: s.G1}}
			ln, err := plotter.NewLine(xys)
			if err != nil {
				return fmt.Errorf("%s %s row %d: %w", f.Name, pp, i, err)
			}
			ln.LineStyle = lineStyle
			sc, err := plotter.NewScatter(xys)
			if err != nil {
				return fmt.Errorf("%s %s row %d: %w", f.Name, pp, i, err)
			}
			sc.GlyphStyle = dotStyle
			p.Add(ln, sc)
		}
	}
	return addFamilyLabels(p, f)
}

func addFamilyLabels(p *plot.Plot, f *reaction.Family) error {
	g := f.Group(reaction.PhasePair{Metal: reaction.Solid, Compound: reaction.Solid})
	if len(g) == 0 {
		return nil
	}
	xyl := plotter.XYLabels{
		XYs:    make(plotter.XYs, len(g)),
		Labels: make([]string, len(g)),
	}
	for i, s := range g {
		xyl.XYs[i] = plotter.XY{X: s.T0 + labelXOffset, Y: s.G0 + s.LabelOffset}
		xyl.Labels[i] = s.Label
	}
	lbls, err := plotter.NewLabels(xyl)
	if err != nil {
		return fmt.Errorf("%s labels: %w", f.Name, err)
	}
	for i := range lbls.TextStyle {
		st := &lbls.TextStyle[i]
		st.Font.Size = labelFontSize
		st.XAlign = text.XRight
		st.YAlign = text.YCenter
	}
	p.Add(lbls)
	return nil
}
