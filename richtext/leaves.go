package richtext

import (
	"strings"

	"github.com/kofi-q/scribe-pdf/pdf"
)

// layoutTextLeaf shapes (for RTL), splits and measures one text leaf's
// tokens, placing a Word per non-empty token and wrapping greedily.
func (e *Engine) layoutTextLeaf(
	s TextSpan,
	style TextStyle,
	annotation AnnotationBuilder,
	line *lineState,
	c BoxConstraints,
	terminated *bool,
	startNewLine func(lineHeight, lineSpacing, trailingAdjust float32, isOverflow bool),
	appendDecoration func(style TextStyle, annotation AnnotationBuilder, spanIndex int),
	expandLineExtrema func(mt, mb float32),
) {
	text := s.Text
	if e.opts.TextDirection == DirectionRTL {
		text = e.opts.Shaper.Convert(text)
	}

	scale := e.opts.TextScale
	space := measureSpace(style, scale)
	gap := space.AdvanceWidth*style.WordSpacing + style.LetterSpacing
	logicalLines := strings.Split(text, "\n")

	for li, logical := range logicalLines {
		if *terminated {
			return
		}

		// Explicit logical-line boundary, honored only under soft wrap.
		if li > 0 && e.opts.SoftWrap {
			if line.hasSpan {
				lineHeight := line.lineBottomMax - line.lineTopMin
				startNewLine(lineHeight, style.LineSpacing, gap, false)
			} else {
				fallback := space.Ascent + space.Descent
				startNewLine(fallback, style.LineSpacing, 0, false)
			}
			if *terminated {
				return
			}
		}

		for _, tok := range splitWhitespace(logical) {
			if *terminated {
				return
			}

			if tok == "" {
				// Run of whitespace: a single separating space between two
				// words is already folded into the preceding word's advance;
				// this branch fires for a second (or later) consecutive
				// whitespace character, for leading or trailing whitespace,
				// and for an empty logical line.
				line.offsetX += space.AdvanceWidth*style.WordSpacing + style.LetterSpacing
				continue
			}

			letterSpacingUnits := float32(0)
			if style.FontSize != 0 {
				letterSpacingUnits = style.LetterSpacing / (style.FontSize * scale)
			}

			var metrics pdf.FontMetrics
			if style.Font != nil {
				metrics = style.Font.StringMetrics(tok, letterSpacingUnits).Scale(style.FontSize * scale)
			}

			// Greedy width-overflow wrap: the cursor still carries the
			// previous word's trailing gap, which belongs to no line.
			if line.offsetX+metrics.Width > c.MaxWidth && line.spanCount > 0 {
				lineHeight := line.lineBottomMax - line.lineTopMin
				startNewLine(lineHeight, style.LineSpacing, gap, true)
				if *terminated {
					return
				}
			}

			word := &Word{
				Text:    tok,
				Style:   style,
				Metrics: metrics,
				Off:     pdf.Point{X: line.offsetX, Y: -line.offsetY + s.Baseline*scale},
			}
			e.Spans = append(e.Spans, word)
			spanIndex := len(e.Spans) - 1
			appendDecoration(style, annotation, spanIndex)

			var mt, mb float32
			if e.opts.TightBounds {
				mt, mb = metrics.Top, metrics.Bottom
			} else {
				mt, mb = metrics.Descent, metrics.Ascent
			}
			expandLineExtrema(mt+s.Baseline*scale, mb+s.Baseline*scale)

			line.offsetX += metrics.AdvanceWidth + space.AdvanceWidth*style.WordSpacing + style.LetterSpacing
			line.spanCount++
		}
	}

	// Retract the trailing word-space advance added past the last token of
	// this leaf. The subtraction backs out the word gap and adds the letter
	// spacing a second time; the asymmetry with the per-word advance is
	// intentional.
	line.offsetX -= space.AdvanceWidth*style.WordSpacing - style.LetterSpacing
}

// layoutWidgetLeaf lays out an embedded widget under a tight height
// constraint and flows it inline like a word.
func (e *Engine) layoutWidgetLeaf(
	s WidgetSpan,
	style TextStyle,
	annotation AnnotationBuilder,
	line *lineState,
	c BoxConstraints,
	terminated *bool,
	startNewLine func(lineHeight, lineSpacing, trailingAdjust float32, isOverflow bool),
	appendDecoration func(style TextStyle, annotation AnnotationBuilder, spanIndex int),
	expandLineExtrema func(mt, mb float32),
) {
	if s.Child == nil {
		return
	}

	scale := e.opts.TextScale
	tightHeight := style.FontSize * scale
	s.Child.Layout(nil, BoxConstraints{
		MinWidth: 0, MaxWidth: float32(maxFloat32),
		MinHeight: tightHeight, MaxHeight: tightHeight,
	})
	box := s.Child.Box()

	if line.offsetX+box.W > c.MaxWidth && line.spanCount > 0 {
		lineHeight := line.lineBottomMax - line.lineTopMin
		startNewLine(lineHeight, style.LineSpacing, 0, true)
		if *terminated {
			return
		}
	}

	widget := &EmbeddedWidget{
		Widget:  s.Child,
		Style:   style,
		Off:     pdf.Point{X: line.offsetX, Y: -line.offsetY + s.Baseline*scale},
		Width_:  box.W,
		Height_: box.H,
	}
	e.Spans = append(e.Spans, widget)
	spanIndex := len(e.Spans) - 1
	appendDecoration(style, annotation, spanIndex)

	expandLineExtrema(s.Baseline*scale, box.H+s.Baseline*scale)

	line.offsetX += box.X + box.W
	line.spanCount++
}

const maxFloat32 = 3.4028235e38
