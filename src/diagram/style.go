package diagram

import (
	"image/color"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/ltegg/ellingham/src/reaction"
)

// Base colors per family, matched to the reference rendering: oxides red,
// carbides 40% gray, nitrides blue, fluorides bright green, chlorides green.
var familyColors = map[string]color.NRGBA{
	reaction.Oxides:    {R: 255, A: 255},
	reaction.Carbides:  {R: 102, G: 102, B: 102, A: 255},
	reaction.Nitrides:  {B: 255, A: 255},
	reaction.Fluorides: {G: 255, A: 255},
	reaction.Chlorides: {G: 128, A: 255},
}

// dashesFor encodes the metal phase: solid line for solid metal, dashed for
// liquid, dotted for gas.
func dashesFor(metal reaction.Phase) []vg.Length {
	switch metal {
	case reaction.Liquid:
		return []vg.Length{vg.Points(6), vg.Points(3)}
	case reaction.Gas:
		return []vg.Length{vg.Points(1), vg.Points(2)}
	}
	return nil
}

// opacityFor encodes the compound phase: full strength for solid compound,
// faded for liquid, faintest for gas.
func opacityFor(compound reaction.Phase) float64 {
	switch compound {
	case reaction.Liquid:
		return 0.6
	case reaction.Gas:
		return 0.3
	}
	return 1.0
}

// fade pre-blends c toward the white page background at the given opacity.
// EPS has no alpha channel, so blending up front keeps the three output
// formats identical instead of leaving compositing to the backend.
func fade(c color.NRGBA, opacity float64) color.NRGBA {
	blend := func(v uint8) uint8 {
		return uint8(255 - opacity*float64(255-int(v)) + 0.5)
	}
	return color.NRGBA{R: blend(c.R), G: blend(c.G), B: blend(c.B), A: 255}
}

// segmentStyle maps a (family color, phase pair) to the line style drawn for
// that group's segments. This single routine replaces per-pair draw branches:
// adding a family or a phase pair needs no new rendering code.
func segmentStyle(base color.NRGBA, pp reaction.PhasePair) draw.LineStyle {
	return draw.LineStyle{
		Color:  fade(base, opacityFor(pp.Compound)),
		Width:  vg.Points(1.5),
		Dashes: dashesFor(pp.Metal),
	}
}

// glyphStyle is the small endpoint dot drawn on every segment, matching the
// marker of the reference rendering. A degenerate single-point segment shows
// up as just this dot.
func glyphStyle(base color.NRGBA, pp reaction.PhasePair) draw.GlyphStyle {
	return draw.GlyphStyle{
		Color:  fade(base, opacityFor(pp.Compound)),
		Radius: vg.Points(1.1),
		Shape:  draw.CircleGlyph{},
	}
}
