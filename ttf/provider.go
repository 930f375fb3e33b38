package ttf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/kofi-q/scribe-pdf/pdf"
)

// FontAdapter makes one FontSet entry satisfy pdf.Font, so the emitter
// and richtext packages can run end-to-end against a real glyph-metrics
// provider instead of a mock.
type FontAdapter struct {
	set *FontSet
	id  Id

	resourceName string
}

// NewFontAdapter wraps the font registered at id in set.
func NewFontAdapter(set *FontSet, id Id) *FontAdapter {
	return &FontAdapter{set: set, id: id}
}

// StringMetrics measures text in this font's own design-unit space (where
// 1.0 is one em), matching the contract that callers scale the result by
// point size via FontMetrics.Scale.
func (a *FontAdapter) StringMetrics(text string, letterSpacing float32) pdf.FontMetrics {
	info := a.set.Get(a.id)
	font := info.Font()

	var advance float32
	runeCount := 0
	for _, r := range text {
		advance += info.GlyphWidthOnly(r) + letterSpacing
		runeCount++
	}
	if runeCount > 0 {
		advance -= letterSpacing // no trailing spacing after the final glyph
	}

	return pdf.FontMetrics{
		Left:         0,
		Top:          font.Ascent,
		Right:        advance,
		Bottom:       font.Descent,
		Ascent:       font.Ascent,
		Descent:      font.Descent,
		Width:        advance,
		Height:       font.Ascent - font.Descent,
		AdvanceWidth: advance,
		MaxHeight:    font.Ascent - font.Descent,
	}
}

// GetFont assigns (once, lazily) a resource name derived from the font's
// registry key and returns it as a PdfFontHandle.
func (a *FontAdapter) GetFont(ctx any) pdf.PdfFontHandle {
	if a.resourceName == "" {
		key := a.set.Key(a.id)
		a.resourceName = fmt.Sprintf("F%d_%s", int(a.id), sanitizeResourceName(key.String()))
	}
	return pdf.PdfFontHandle{ResourceName: a.resourceName}
}

// Descent returns the font's descent as a fraction of its em size; Parse
// already normalizes Ascent/Descent to em units via Scaled, so no further
// conversion is needed here.
func (a *FontAdapter) Descent() float32 {
	return a.set.Get(a.id).Font().Descent
}

// Name returns the font registry key (family + style suffix).
func (a *FontAdapter) Name() string {
	return a.set.Get(a.id).String()
}

// PutText writes text as a PDF literal string, escaping '(', ')' and '\'.
// Embedded-font byte encoding (subsetting, cmap remap) is a
// document-assembly concern out of this package's scope; this adapter
// exists to exercise pdf.Font end-to-end, not to produce a spec-complete
// embedded font stream.
func (a *FontAdapter) PutText(buf *bytes.Buffer, text string) {
	for _, r := range text {
		switch r {
		case '(', ')', '\\':
			buf.WriteByte('\\')
			buf.WriteRune(r)
		default:
			buf.WriteRune(r)
		}
	}
}

func sanitizeResourceName(s string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' {
			return '_'
		}
		return r
	}, s)
}
