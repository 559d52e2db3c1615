package diagram

import (
	"image/color"
	"testing"

	"github.com/ltegg/ellingham/src/reaction"
)

func TestFamilyColorsCoverAllFamilies(t *testing.T) {
	for _, f := range reaction.Load().Families {
		if _, ok := familyColors[f.Name]; !ok {
			t.Errorf("no color for family %s", f.Name)
		}
	}
}

func TestSegmentStyleEncodesMetalPhase(t *testing.T) {
	base := familyColors[reaction.Oxides]
	solid := segmentStyle(base, reaction.PhasePair{Metal: reaction.Solid, Compound: reaction.Solid})
	if solid.Dashes != nil {
		t.Fatalf("solid metal should draw an unbroken line, got dashes %v", solid.Dashes)
	}
	liquid := segmentStyle(base, reaction.PhasePair{Metal: reaction.Liquid, Compound: reaction.Solid})
	if len(liquid.Dashes) != 2 {
		t.Fatalf("liquid metal should draw dashed, got %v", liquid.Dashes)
	}
	gas := segmentStyle(base, reaction.PhasePair{Metal: reaction.Gas, Compound: reaction.Solid})
	if len(gas.Dashes) != 2 || gas.Dashes[0] >= liquid.Dashes[0] {
		t.Fatalf("gas metal should draw dotted (shorter on-length than dashed), got %v", gas.Dashes)
	}
}

func TestSegmentStyleEncodesCompoundPhase(t *testing.T) {
	red := color.NRGBA{R: 255, A: 255}
	cases := []struct {
		compound reaction.Phase
		want     color.NRGBA
	}{
		{reaction.Solid, color.NRGBA{R: 255, G: 0, B: 0, A: 255}},
		{reaction.Liquid, color.NRGBA{R: 255, G: 102, B: 102, A: 255}},
		{reaction.Gas, color.NRGBA{R: 255, G: 179, B: 179, A: 255}},
	}
	for _, c := range cases {
		st := segmentStyle(red, reaction.PhasePair{Metal: reaction.Solid, Compound: c.compound})
		if st.Color != c.want {
			t.Errorf("compound %s: color %v, want %v", c.compound, st.Color, c.want)
		}
		if st.Color.(color.NRGBA).A != 255 {
			t.Errorf("compound %s: styles must be pre-blended opaque for EPS", c.compound)
		}
	}
}

func TestFadeFullOpacityIsIdentity(t *testing.T) {
	c := color.NRGBA{R: 12, G: 34, B: 56, A: 255}
	if fade(c, 1.0) != c {
		t.Fatalf("fade(c, 1) = %v, want %v", fade(c, 1.0), c)
	}
	if fade(c, 0) != (color.NRGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Fatalf("fade(c, 0) should reach white, got %v", fade(c, 0))
	}
}

func TestGlyphStyleMatchesLineColor(t *testing.T) {
	base := familyColors[reaction.Chlorides]
	pp := reaction.PhasePair{Metal: reaction.Liquid, Compound: reaction.Gas}
	if glyphStyle(base, pp).Color != segmentStyle(base, pp).Color {
		t.Fatal("endpoint dots must use the same faded color as their line")
	}
}
