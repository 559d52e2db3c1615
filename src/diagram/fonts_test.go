package diagram

import (
	"testing"

	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/text"
)

func TestEmphasisFacesInCache(t *testing.T) {
	for _, tf := range []font.Typeface{boldTypeface, italicTypeface} {
		fnt := font.Font{Typeface: tf, Variant: emphasisVariant}
		if !emphasisCache.Has(fnt) {
			t.Errorf("no face registered for typeface %q", tf)
		}
	}
}

// Backends derive their font selection style from the weight and style
// fields, so the emphasis helpers must never set bold or italic there.
func TestEmphasisStylesReportRegularWeightAndStyle(t *testing.T) {
	var bold, italic text.Style
	embolden(&bold)
	italicize(&italic)

	if bold.Font.Typeface != boldTypeface {
		t.Errorf("bold typeface = %q, want %q", bold.Font.Typeface, boldTypeface)
	}
	if italic.Font.Typeface != italicTypeface {
		t.Errorf("italic typeface = %q, want %q", italic.Font.Typeface, italicTypeface)
	}
	for name, st := range map[string]text.Style{"bold": bold, "italic": italic} {
		if st.Font.Weight != xfont.WeightNormal {
			t.Errorf("%s style weight = %v, want normal", name, st.Font.Weight)
		}
		if st.Font.Style != xfont.StyleNormal {
			t.Errorf("%s style slant = %v, want normal", name, st.Font.Style)
		}
		if st.Handler == nil {
			t.Errorf("%s style has no text handler", name)
		}
	}
}
