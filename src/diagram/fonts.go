package diagram

import (
	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/font/liberation"
	"gonum.org/v1/plot/text"
)

// The PDF backend registers every face under an fpdf style of "" but selects
// bold or italic faces with style "B"/"I", which fpdf then reports as an
// undefined font. The emphasis typefaces below carry the Liberation bold and
// italic glyph data under their own family names with a regular weight and
// style, so every backend registers and selects them by one consistent name.
const (
	boldTypeface   font.Typeface = "LiberationBold"
	italicTypeface font.Typeface = "LiberationItalic"
)

const emphasisVariant font.Variant = "Serif"

var emphasisCache = newEmphasisCache()

// newEmphasisCache returns the default Liberation collection extended with
// the renamed emphasis faces.
func newEmphasisCache() *font.Cache {
	coll := liberation.Collection()
	var extra font.Collection
	for _, face := range coll {
		if face.Font.Variant != emphasisVariant {
			continue
		}
		bold := face.Font.Weight == xfont.WeightBold
		italic := face.Font.Style == xfont.StyleItalic
		switch {
		case bold && !italic:
			face.Font.Typeface = boldTypeface
		case italic && !bold:
			face.Font.Typeface = italicTypeface
		default:
			continue
		}
		face.Font.Weight = xfont.WeightNormal
		face.Font.Style = xfont.StyleNormal
		extra = append(extra, face)
	}
	cache := font.NewCache(coll)
	cache.Add(extra)
	return cache
}

// embolden switches st to the bold glyph face. The style keeps a normal
// weight on purpose; the emphasis typeface is what selects the heavy glyphs.
func embolden(st *text.Style) {
	st.Font.Typeface = boldTypeface
	st.Font.Variant = emphasisVariant
	st.Font.Weight = xfont.WeightNormal
	st.Handler = text.Plain{Fonts: emphasisCache}
}

// italicize switches st to the italic glyph face.
func italicize(st *text.Style) {
	st.Font.Typeface = italicTypeface
	st.Font.Variant = emphasisVariant
	st.Font.Style = xfont.StyleNormal
	st.Handler = text.Plain{Fonts: emphasisCache}
}
