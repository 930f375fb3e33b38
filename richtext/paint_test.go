package richtext

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kofi-q/scribe-pdf/pdf"
)

func emitterLines(em *pdf.Emitter) []string {
	s := strings.TrimRight(string(em.Bytes()), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func countOp(em *pdf.Emitter, op string) int {
	count := 0
	for _, l := range emitterLines(em) {
		fields := strings.Fields(l)
		if len(fields) > 0 && fields[len(fields)-1] == op {
			count++
		}
	}
	return count
}

type recordingAnnotation struct {
	rects []pdf.Rect
}

func (a *recordingAnnotation) Build(ctx any, rect pdf.Rect) {
	a.rects = append(a.rects, rect)
}

type recordingBackground struct {
	rects []pdf.Rect
}

func (b *recordingBackground) Paint(ctx any, rect pdf.Rect) {
	b.rects = append(b.rects, rect)
}

func TestPaintEmitsFillColorOncePerColorRun(t *testing.T) {
	e := NewEngine(Options{Constraints: unbounded()})
	e.Layout(TextSpan{Style: testStyle(), Text: "aa bb"})

	em := pdf.NewEmitter(nil, nil)
	e.Paint(nil, pdf.Point{}, em)

	require.NoError(t, em.Err())
	require.Equal(t, 1, countOp(em, "rg"), "same color across spans is set once")
	require.Equal(t, 2, countOp(em, "BT"))
	require.Equal(t, 2, countOp(em, "ET"))
}

func TestPaintEmitsFillColorChangeBetweenSpans(t *testing.T) {
	style := testStyle()
	root := TextSpan{
		Style: style,
		Children: []InlineSpan{
			TextSpan{Text: "aa", Style: TextStyle{Color: pdf.ColorRGB{R: 1}}},
			TextSpan{Text: "bb", Style: TextStyle{Color: pdf.ColorRGB{B: 1}}},
		},
	}

	e := NewEngine(Options{Constraints: unbounded()})
	e.Layout(root)

	em := pdf.NewEmitter(nil, nil)
	e.Paint(nil, pdf.Point{}, em)

	require.Equal(t, 2, countOp(em, "rg"))
}

func TestPaintAnnotationReceivesPageAbsoluteRect(t *testing.T) {
	ann := &recordingAnnotation{}
	e := NewEngine(Options{Constraints: unbounded()})
	e.Layout(TextSpan{Style: testStyle(), Text: "aa", Annotation: ann})

	em := pdf.NewEmitter(nil, nil)
	e.Paint(nil, pdf.Point{X: 100, Y: 200}, em)

	require.Len(t, ann.rects, 1)
	r := ann.rects[0]
	assert.Equal(t, float32(100), r.X)
	assert.Equal(t, float32(190), r.Y, "word box hangs one ink height below the origin")
	assert.Equal(t, float32(10), r.W)
	assert.Equal(t, float32(10), r.H)
}

func TestPaintBackgroundThenRestoresFillColor(t *testing.T) {
	bg := &recordingBackground{}
	style := testStyle()
	style.Color = pdf.ColorRGB{R: 1}
	style.Background = bg

	e := NewEngine(Options{Constraints: unbounded()})
	e.Layout(TextSpan{Style: style, Text: "aa"})

	em := pdf.NewEmitter(nil, nil)
	e.Paint(nil, pdf.Point{}, em)

	require.Len(t, bg.rects, 1)
	ls := emitterLines(em)
	require.Equal(t, "1 0 0 rg", ls[0], "fill color returns to the span color right after the background")
}

func TestPaintUnderlineStrokesAtBaselineOffset(t *testing.T) {
	style := testStyle()
	style.Decoration = Underline
	style.DecorationThickness = 1

	e := NewEngine(Options{Constraints: unbounded()})
	e.Layout(TextSpan{Style: style, Text: "aa"})

	em := pdf.NewEmitter(nil, nil)
	e.Paint(nil, pdf.Point{}, em)

	ls := emitterLines(em)
	require.Contains(t, ls, "0 0 0 RG")
	require.Contains(t, ls, "0.5 w", "thickness * size * 0.05")
	// base = -descent * size / 2 = 1 above the box bottom at -10.
	require.Contains(t, ls, "0 -9 m")
	require.Contains(t, ls, "10 -9 l")
	require.Equal(t, 1, countOp(em, "S"))
}

func TestPaintDoubleUnderlineStrokesTwice(t *testing.T) {
	style := testStyle()
	style.Decoration = Underline
	style.DecorationStyle = DecorationStyleDouble
	style.DecorationThickness = 1

	e := NewEngine(Options{Constraints: unbounded()})
	e.Layout(TextSpan{Style: style, Text: "aa"})

	em := pdf.NewEmitter(nil, nil)
	e.Paint(nil, pdf.Point{}, em)

	require.Equal(t, 2, countOp(em, "S"))
	// Second stroke sits 0.15 * size * thickness below the first.
	require.Contains(t, emitterLines(em), "0 -10.5 m")
}

func TestPaintOmitsTrForDefaultFillMode(t *testing.T) {
	e := NewEngine(Options{Constraints: unbounded()})
	e.Layout(TextSpan{Style: testStyle(), Text: "aa"})

	em := pdf.NewEmitter(nil, nil)
	e.Paint(nil, pdf.Point{}, em)

	require.Equal(t, 0, countOp(em, "Tr"))
}

func TestPaintEmitsTrForNonFillRenderingMode(t *testing.T) {
	style := testStyle()
	style.RenderingMode = pdf.RenderStroke

	e := NewEngine(Options{Constraints: unbounded()})
	e.Layout(TextSpan{Style: style, Text: "aa"})

	em := pdf.NewEmitter(nil, nil)
	e.Paint(nil, pdf.Point{}, em)

	require.Contains(t, emitterLines(em), "1 Tr")
}

func TestPaintTextScaleScalesDrawSizeAndDecorations(t *testing.T) {
	style := testStyle()
	style.Decoration = Underline
	style.DecorationThickness = 1

	e := NewEngine(Options{Constraints: unbounded(), TextScale: 2})
	e.Layout(TextSpan{Style: style, Text: "aa"})

	em := pdf.NewEmitter(nil, nil)
	e.Paint(nil, pdf.Point{}, em)

	ls := emitterLines(em)
	require.Contains(t, ls, "/F1 20 Tf", "text draws at size * scale")
	require.Contains(t, ls, "1 w", "stroke width scales with the text")
	// base = -descent * size * scale / 2 = 2 above the box bottom at -20.
	require.Contains(t, ls, "0 -18 m")
}

func TestPaintDecorationColorOverridesTextColor(t *testing.T) {
	red := pdf.ColorRGB{R: 1}
	style := testStyle()
	style.Decoration = LineThrough
	style.DecorationThickness = 1
	style.DecorationColor = &red

	e := NewEngine(Options{Constraints: unbounded()})
	e.Layout(TextSpan{Style: style, Text: "aa"})

	em := pdf.NewEmitter(nil, nil)
	e.Paint(nil, pdf.Point{}, em)

	require.Contains(t, emitterLines(em), "1 0 0 RG")
}

func TestPaintLeavesGraphicsStackBalanced(t *testing.T) {
	style := testStyle()
	style.Decoration = Underline | Overline | LineThrough
	style.DecorationThickness = 1

	e := NewEngine(Options{Constraints: bounded(26)})
	e.Layout(TextSpan{Style: style, Text: "aa bb cc"})

	em := pdf.NewEmitter(nil, nil)
	e.Paint(nil, pdf.Point{}, em)

	require.NoError(t, em.Err())
	require.Equal(t, 0, em.StackDepth())
}

func TestDebugPaintRespectsEmitterDebugFlag(t *testing.T) {
	e := NewEngine(Options{Constraints: unbounded()})
	e.Layout(TextSpan{Style: testStyle(), Text: "aa"})

	em := pdf.NewEmitter(nil, nil)
	e.DebugPaint(nil, pdf.Point{}, em)
	require.Empty(t, emitterLines(em))

	em.Debug = true
	e.DebugPaint(nil, pdf.Point{}, em)
	require.Equal(t, 2, countOp(em, "re"), "one outline for the box, one per span")
	require.Equal(t, 0, em.StackDepth())
}

func TestPaintTranslatesEmbeddedWidgetBox(t *testing.T) {
	w := &fakeWidget{width: 20}
	root := TextSpan{
		Style: testStyle(),
		Children: []InlineSpan{
			TextSpan{Text: "aa"},
			WidgetSpan{Child: w},
		},
	}

	e := NewEngine(Options{Constraints: unbounded()})
	e.Layout(root)

	em := pdf.NewEmitter(nil, nil)
	e.Paint(nil, pdf.Point{X: 50, Y: 60}, em)

	require.True(t, w.painted)
	ew := e.Spans[1].(*EmbeddedWidget)
	require.Equal(t, 50+ew.Off.X, w.box.X)
	require.Equal(t, 60+ew.Off.Y, w.box.Y)
}
