package richtext

import "github.com/kofi-q/scribe-pdf/pdf"

// TextDirection selects left-to-right or right-to-left flow for a line.
type TextDirection int

const (
	DirectionLTR TextDirection = iota
	DirectionRTL
)

// TextAlign selects the realignment rule applied to each finished line.
type TextAlign int

const (
	AlignLeft TextAlign = iota
	AlignRight
	AlignCenter
	AlignJustify
)

// PositionedSpan is the common shape of Word and EmbeddedWidget: a span
// placed at offset (baseline anchor for Word, the box's bottom-left corner
// for EmbeddedWidget)
// in layout-local coordinates, with a flow width used by line-breaking and
// realignment.
type PositionedSpan interface {
	SpanStyle() TextStyle
	FlowWidth() float32
	Offset() pdf.Point
	SetOffsetX(x float32)
	Translate(dx, dy float32)
	Paint(ctx any, origin pdf.Point, scale float32, e *pdf.Emitter)
	// Bounds returns the span's layout-local bounding rectangle. A
	// decoration run's rectangle is the union of its spans' Bounds.
	Bounds() pdf.Rect
}

// Word is a run of shaped text placed at a baseline anchor.
type Word struct {
	Text    string
	Style   TextStyle
	Metrics pdf.FontMetrics
	Off     pdf.Point
}

func (w *Word) SpanStyle() TextStyle { return w.Style }
func (w *Word) FlowWidth() float32   { return w.Metrics.AdvanceWidth }
func (w *Word) Offset() pdf.Point    { return w.Off }
func (w *Word) SetOffsetX(x float32) { w.Off.X = x }
func (w *Word) Translate(dx, dy float32) {
	w.Off.X += dx
	w.Off.Y += dy
}

// Paint shows the word's text at origin + offset, using the word's font
// at its style size times scale. The rendering mode is set only when it
// differs from the default fill; Tr is omitted for plain filled text.
func (w *Word) Paint(ctx any, origin pdf.Point, scale float32, e *pdf.Emitter) {
	if w.Style.Font == nil {
		return
	}
	if w.Style.LetterSpacing != 0 {
		e.SetCharSpacing(w.Style.LetterSpacing)
	}
	if w.Style.WordSpacing != 0 {
		e.SetWordSpacing(w.Style.WordSpacing)
	}
	if w.Style.RenderingMode != pdf.RenderFill {
		e.SetRenderMode(w.Style.RenderingMode)
	}
	e.DrawString(w.Style.Font, w.Style.FontSize*scale, origin.X+w.Off.X, origin.Y+w.Off.Y, w.Text)
}

// Bounds uses the word's tight glyph-ink extents, anchored at the baseline.
func (w *Word) Bounds() pdf.Rect {
	return pdf.Rect{
		X: w.Off.X,
		Y: w.Off.Y + w.Metrics.Bottom,
		W: w.Metrics.Width,
		H: w.Metrics.Top - w.Metrics.Bottom,
	}
}

// EmbeddedWidget places a Widget's own box at layout-local offset (its
// bottom-left corner, the box's X/Y in Y-up PDF space).
type EmbeddedWidget struct {
	Widget  Widget
	Style   TextStyle
	Off     pdf.Point
	Width_  float32
	Height_ float32
}

func (ew *EmbeddedWidget) SpanStyle() TextStyle { return ew.Style }
func (ew *EmbeddedWidget) FlowWidth() float32   { return ew.Width_ }
func (ew *EmbeddedWidget) Offset() pdf.Point    { return ew.Off }
func (ew *EmbeddedWidget) SetOffsetX(x float32) { ew.Off.X = x }
func (ew *EmbeddedWidget) Translate(dx, dy float32) {
	ew.Off.X += dx
	ew.Off.Y += dy
}

// Paint translates the embedded widget's own box by origin+offset and
// paints it; the widget draws at its laid-out size, so scale is unused.
func (ew *EmbeddedWidget) Paint(ctx any, origin pdf.Point, _ float32, e *pdf.Emitter) {
	if ew.Widget == nil {
		return
	}
	box := ew.Widget.Box()
	box.X = origin.X + ew.Off.X
	box.Y = origin.Y + ew.Off.Y
	ew.Widget.SetBox(box)
	ew.Widget.Paint(ctx)
}

// Bounds uses the widget's tight layout box.
func (ew *EmbeddedWidget) Bounds() pdf.Rect {
	return pdf.Rect{X: ew.Off.X, Y: ew.Off.Y, W: ew.Width_, H: ew.Height_}
}

// DecorationRun covers a contiguous, inclusive span-index range sharing
// one decoration style and annotation.
type DecorationRun struct {
	Style          TextStyle
	Annotation     AnnotationBuilder
	StartSpanIndex int
	EndSpanIndex   int
}

// LineDescriptor records one finished line's span range and layout
// summary, used by realignment.
type LineDescriptor struct {
	FirstSpanIndex int
	SpanCount      int
	BaselineDrop   float32
	WordsWidth     float32
	TextDirection  TextDirection
	TextAlign      TextAlign
	IsLast         bool
}
