package richtext

import (
	"math"
	"strings"
	"unicode"

	"golang.org/x/text/width"

	"github.com/kofi-q/scribe-pdf/pdf"
)

// Options configures one Engine.
type Options struct {
	Constraints   BoxConstraints
	TextDirection TextDirection
	TextAlign     TextAlign
	TightBounds   bool
	SoftWrap      bool
	MaxLines      int     // 0 means unlimited
	TextScale     float32 // 0 means 1: no scaling
	Shaper        ArabicShaper
}

// Engine is the inline layout engine: it consumes an InlineSpan tree plus
// BoxConstraints and produces positioned spans, decoration runs and a
// final box, then exposes a paint pass. It is not reentrant: Layout
// clears and rebuilds Spans/Decorations on every call.
type Engine struct {
	opts Options

	Spans       []PositionedSpan
	Decorations []DecorationRun
	Box         pdf.Rect
	Overflow    bool

	lines []LineDescriptor

	err error
}

// NewEngine returns an Engine configured by opts. A nil opts.Shaper
// defaults to NewDefaultArabicShaper(); a zero opts.TextScale means 1.
func NewEngine(opts Options) *Engine {
	if opts.Shaper == nil {
		opts.Shaper = NewDefaultArabicShaper()
	}
	if opts.TextScale == 0 {
		opts.TextScale = 1
	}
	return &Engine{opts: opts}
}

// Err returns the first error recorded during Layout, if any.
func (e *Engine) Err() error { return e.err }

func (e *Engine) fail(kind pdf.ErrorKind, format string, args ...any) {
	if e.err == nil {
		e.err = pdf.NewError(kind, format, args...)
	}
}

// lineState accumulates the running layout cursor for the line currently
// being built by the greedy single-pass break loop.
type lineState struct {
	offsetX, offsetY          float32
	spanStart, spanCount      int
	lineTopMin, lineBottomMax float32
	hasSpan                   bool
}

func (l *lineState) resetExtrema() {
	l.lineTopMin = 0
	l.lineBottomMax = 0
	l.hasSpan = false
}

// measureSpace returns the metrics of a single space glyph in the given
// style at the given text scale, used for whitespace-advance and
// line-height fallback.
func measureSpace(style TextStyle, scale float32) pdf.FontMetrics {
	if style.Font == nil {
		return pdf.FontMetrics{}
	}
	return style.Font.StringMetrics(" ", 0).Scale(style.FontSize * scale)
}

// Layout runs the greedy single-pass line-breaking algorithm over root,
// populating Spans, Decorations, Box and Overflow.
func (e *Engine) Layout(root InlineSpan) {
	e.Spans = nil
	e.Decorations = nil
	e.lines = nil
	e.Overflow = false
	e.err = nil

	c := e.opts.Constraints
	if !isFinite32(c.MinWidth) || !isFinite32(c.MinHeight) {
		e.fail(pdf.InvalidArgument, "layout: non-finite minimum constraint")
		return
	}

	var line lineState
	maxWordsWidth := float32(0)

	// trailingAdjust backs out the word-gap advance added after the last
	// token when a line is cut mid-leaf: the leaf-end retract hasn't run
	// yet, so the raw cursor still includes one trailing gap.
	flushLine := func(trailingAdjust float32, isLast bool) {
		wordsWidth := line.offsetX - trailingAdjust
		if wordsWidth < 0 {
			wordsWidth = 0
		}
		desc := LineDescriptor{
			FirstSpanIndex: line.spanStart,
			SpanCount:      line.spanCount,
			BaselineDrop:   line.lineBottomMax,
			WordsWidth:     wordsWidth,
			TextDirection:  e.opts.TextDirection,
			TextAlign:      e.opts.TextAlign,
			IsLast:         isLast,
		}
		if desc.WordsWidth > maxWordsWidth {
			maxWordsWidth = desc.WordsWidth
		}
		e.lines = append(e.lines, desc)
	}

	terminated := false

	startNewLine := func(lineHeight, lineSpacing, trailingAdjust float32, isOverflow bool) {
		flushLine(trailingAdjust, false)
		line.spanStart = len(e.Spans)
		line.spanCount = 0
		line.offsetX = 0
		line.offsetY += lineHeight + lineSpacing
		line.resetExtrema()
		if isOverflow {
			e.Overflow = true
		}

		if e.opts.MaxLines > 0 && len(e.lines) >= e.opts.MaxLines {
			terminated = true
		}
		if line.offsetY > c.MaxHeight {
			terminated = true
		}
	}

	appendDecoration := func(style TextStyle, annotation AnnotationBuilder, spanIndex int) {
		// Runs never merge across a line break: only a span that is not the
		// first on its line may extend the previous run.
		if len(e.Decorations) > 0 && spanIndex > line.spanStart {
			last := &e.Decorations[len(e.Decorations)-1]
			if last.EndSpanIndex == spanIndex-1 && sameDecoration(last.Style, style) && last.Annotation == annotation {
				last.EndSpanIndex = spanIndex
				return
			}
		}
		e.Decorations = append(e.Decorations, DecorationRun{
			Style:          style,
			Annotation:     annotation,
			StartSpanIndex: spanIndex,
			EndSpanIndex:   spanIndex,
		})
	}

	expandLineExtrema := func(mt, mb float32) {
		if !line.hasSpan {
			line.lineTopMin, line.lineBottomMax = mt, mb
			line.hasSpan = true
			return
		}
		line.lineTopMin = min(line.lineTopMin, mt)
		line.lineBottomMax = max(line.lineBottomMax, mb)
	}

	Visit(root, TextStyle{}, nil, func(leaf InlineSpan, style TextStyle, annotation AnnotationBuilder) bool {
		if terminated {
			return false
		}

		switch s := leaf.(type) {
		case TextSpan:
			e.layoutTextLeaf(s, style, annotation, &line, c, &terminated, startNewLine, appendDecoration, expandLineExtrema)
		case WidgetSpan:
			e.layoutWidgetLeaf(s, style, annotation, &line, c, &terminated, startNewLine, appendDecoration, expandLineExtrema)
		}
		return !terminated
	})

	if line.spanCount > 0 {
		flushLine(0, true)
	}
	if len(e.lines) > 0 {
		e.lines[len(e.lines)-1].IsLast = true
	}

	finalWidth := c.MaxWidth
	if !e.Overflow {
		finalWidth = maxF(c.MinWidth, maxWordsWidth)
	}
	if !isFinite32(finalWidth) {
		e.fail(pdf.InvalidArgument, "layout: overflow with non-finite maxWidth")
		return
	}

	totalHeight := line.offsetY
	if line.hasSpan || line.spanCount > 0 {
		totalHeight += line.lineBottomMax - line.lineTopMin
	}
	e.Box = pdf.Rect{X: 0, Y: 0, W: finalWidth, H: totalHeight}

	for _, desc := range e.lines {
		e.realignLine(desc, finalWidth)
	}
}

// isFinite32 reports whether v is neither NaN nor +-Inf.
func isFinite32(v float32) bool {
	return !math.IsNaN(float64(v)) && !math.IsInf(float64(v), 0)
}

func maxF(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// splitWhitespace splits text at every whitespace character; the
// character itself is consumed, not kept in either neighboring token.
// A single space between two words therefore yields no token of its own:
// its width is carried by the per-word advance formula. Only a second (or
// later) consecutive whitespace character produces its own empty token,
// handled by the run-of-whitespace branch. Leading/trailing whitespace
// likewise produces a leading/trailing empty token. Fullwidth-variant
// folding via golang.org/x/text/width happens first, so fullwidth spaces
// participate.
func splitWhitespace(text string) []string {
	folded := width.Fold.String(text)

	var tokens []string
	var b strings.Builder

	for _, r := range folded {
		if unicode.IsSpace(r) {
			tokens = append(tokens, b.String())
			b.Reset()
			continue
		}
		b.WriteRune(r)
	}
	tokens = append(tokens, b.String())

	return tokens
}
