package richtext

import "github.com/kofi-q/scribe-pdf/pdf"

// BoxConstraints bounds a layout pass: width/height may each range between
// a min and a max, with max may be +Inf for "unbounded".
type BoxConstraints struct {
	MinWidth, MaxWidth   float32
	MinHeight, MaxHeight float32
}

// Widget is an embedded-widget leaf's own layout/paint contract. Only the
// InlineLayoutEngine's flow around it is in scope; the widget's internals
// are an external collaborator.
type Widget interface {
	Layout(ctx any, constraints BoxConstraints)
	Paint(ctx any)
	Box() pdf.Rect
	SetBox(pdf.Rect)
}

// AnnotationBuilder constructs a PDF annotation (e.g. a link) at rect, in
// page-absolute coordinates.
type AnnotationBuilder interface {
	Build(ctx any, rect pdf.Rect)
}

// BackgroundDecoration paints a span or decoration run's background at
// rect, in page-absolute coordinates.
type BackgroundDecoration interface {
	Paint(ctx any, rect pdf.Rect)
}

// ArabicShaper maps logical code points to their visually shaped form for
// an RTL run. The default implementation (bidi.go) does run-direction
// resolution and presentation-form mirroring; full contextual glyph
// shaping stays the font layer's job.
type ArabicShaper interface {
	Convert(text string) string
}
