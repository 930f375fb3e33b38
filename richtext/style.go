// Package richtext implements the inline-text layout engine: it breaks a
// tree of styled spans into positioned glyph runs and decoration runs
// within a bounded box, then paints them through a pdf.Emitter.
package richtext

import "github.com/kofi-q/scribe-pdf/pdf"

// Decoration is a bitset of {underline, overline, lineThrough}.
type Decoration uint8

const DecorationNone Decoration = 0

const (
	Underline Decoration = 1 << iota
	Overline
	LineThrough
)

// Has reports whether d includes flag.
func (d Decoration) Has(flag Decoration) bool { return d&flag != 0 }

// DecorationStyle selects single or double-line decoration rendering.
type DecorationStyle int

const (
	DecorationStyleSingle DecorationStyle = iota
	DecorationStyleDouble
)

// FontStyle selects upright or italic glyph variants.
type FontStyle int

const (
	FontStyleNormal FontStyle = iota
	FontStyleItalic
)

// FontWeight is an opaque numeric weight (100-900 in the CSS scale, but
// this package never interprets the value beyond carrying it to Font).
type FontWeight int

const (
	FontWeightNormal FontWeight = 400
	FontWeightBold   FontWeight = 700
)

// TextStyle is an immutable, mergeable bundle of text-rendering parameters.
// A zero-value field means "inherit from parent" during Merge, except
// where noted (FontSize/LineSpacing/DecorationThickness default to 0,
// which callers must override at the tree root).
type TextStyle struct {
	Font       pdf.Font
	FontSize   float32
	Color      pdf.ColorRGB
	Background BackgroundDecoration

	Decoration          Decoration
	DecorationStyle     DecorationStyle
	DecorationColor     *pdf.ColorRGB
	DecorationThickness float32

	LetterSpacing float32
	WordSpacing   float32
	LineSpacing   float32

	RenderingMode pdf.RenderingMode
	FontStyle     FontStyle
	FontWeight    FontWeight
}

// Merge returns child with every zero-valued field replaced by the
// corresponding value from parent: a right-biased override, applied
// top-down as the span tree is visited.
func (parent TextStyle) Merge(child TextStyle) TextStyle {
	out := child

	if out.Font == nil {
		out.Font = parent.Font
	}
	if out.FontSize == 0 {
		out.FontSize = parent.FontSize
	}
	if out.Color == (pdf.ColorRGB{}) {
		out.Color = parent.Color
	}
	if out.Background == nil {
		out.Background = parent.Background
	}
	if out.Decoration == DecorationNone {
		out.Decoration = parent.Decoration
	}
	if out.DecorationStyle == DecorationStyleSingle {
		out.DecorationStyle = parent.DecorationStyle
	}
	if out.DecorationColor == nil {
		out.DecorationColor = parent.DecorationColor
	}
	if out.DecorationThickness == 0 {
		out.DecorationThickness = parent.DecorationThickness
	}
	if out.LetterSpacing == 0 {
		out.LetterSpacing = parent.LetterSpacing
	}
	if out.WordSpacing == 0 {
		out.WordSpacing = parent.WordSpacing
	}
	if out.LineSpacing == 0 {
		out.LineSpacing = parent.LineSpacing
	}
	if out.RenderingMode == pdf.RenderFill {
		out.RenderingMode = parent.RenderingMode
	}
	if out.FontStyle == FontStyleNormal {
		out.FontStyle = parent.FontStyle
	}
	if out.FontWeight == 0 {
		out.FontWeight = parent.FontWeight
	}

	return out
}

// sameDecoration reports whether two styles carry equal decoration-
// relevant fields. Adjacent decoration runs merge only when this holds
// and their annotations match.
func sameDecoration(a, b TextStyle) bool {
	if a.Decoration != b.Decoration || a.DecorationStyle != b.DecorationStyle {
		return false
	}
	if (a.DecorationColor == nil) != (b.DecorationColor == nil) {
		return false
	}
	if a.DecorationColor != nil && *a.DecorationColor != *b.DecorationColor {
		return false
	}
	return a.DecorationThickness == b.DecorationThickness
}
