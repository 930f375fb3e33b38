package richtext

import "github.com/kofi-q/scribe-pdf/pdf"

// decorationRect returns the union of the bounds of every span the
// decoration run covers, in layout-local coordinates.
func (e *Engine) decorationRect(d DecorationRun) pdf.Rect {
	rect := e.Spans[d.StartSpanIndex].Bounds()
	for i := d.StartSpanIndex + 1; i <= d.EndSpanIndex; i++ {
		rect = rect.Union(e.Spans[i].Bounds())
	}
	return rect
}

func translateRect(r pdf.Rect, origin pdf.Point) pdf.Rect {
	return pdf.Rect{X: r.X + origin.X, Y: r.Y + origin.Y, W: r.W, H: r.H}
}

// Paint drives the emitter through three passes: background decorations,
// then spans, then foreground decorations. origin is the page-absolute
// point corresponding to this layout's local (0, 0), i.e. the owning
// widget's box top-left.
func (e *Engine) Paint(ctx any, origin pdf.Point, em *pdf.Emitter) {
	e.paintBackgrounds(ctx, origin, em)
	e.paintSpans(ctx, origin, em)
	e.paintForegroundDecorations(ctx, origin, em)
}

// DebugPaint outlines the layout box and every span's bounds. It does
// nothing unless the emitter's Debug flag is set.
func (e *Engine) DebugPaint(ctx any, origin pdf.Point, em *pdf.Emitter) {
	if !em.Debug {
		return
	}

	em.SaveContext()
	em.SetStrokeColorRGB(pdf.ColorRGB{B: 1})
	em.SetLineWidth(0.5)

	// Layout-local content spans y in [-H, 0]; the box outline hangs below
	// the origin accordingly.
	em.DrawRect(origin.X, origin.Y-e.Box.H, e.Box.W, e.Box.H)
	for _, sp := range e.Spans {
		r := translateRect(sp.Bounds(), origin)
		em.DrawRect(r.X, r.Y, r.W, r.H)
	}
	em.StrokePath(false)
	em.RestoreContext()
}

func (e *Engine) paintBackgrounds(ctx any, origin pdf.Point, em *pdf.Emitter) {
	for _, d := range e.Decorations {
		rect := translateRect(e.decorationRect(d), origin)

		if d.Annotation != nil {
			d.Annotation.Build(ctx, rect)
		}
		if d.Style.Background != nil {
			d.Style.Background.Paint(ctx, rect)
			em.SetFillColorRGB(d.Style.Color)
		}
	}
}

func (e *Engine) paintSpans(ctx any, origin pdf.Point, em *pdf.Emitter) {
	var runningColor pdf.ColorRGB
	haveColor := false

	for _, sp := range e.Spans {
		style := sp.SpanStyle()
		if !haveColor || style.Color != runningColor {
			em.SetFillColorRGB(style.Color)
			runningColor = style.Color
			haveColor = true
		}
		sp.Paint(ctx, origin, e.opts.TextScale, em)
	}
}

func (e *Engine) paintForegroundDecorations(ctx any, origin pdf.Point, em *pdf.Emitter) {
	for _, d := range e.Decorations {
		if d.Style.Decoration == DecorationNone {
			continue
		}

		rect := translateRect(e.decorationRect(d), origin)
		strokeColor := d.Style.Color
		if d.Style.DecorationColor != nil {
			strokeColor = *d.Style.DecorationColor
		}
		em.SetStrokeColorRGB(strokeColor)
		em.SetLineWidth(d.Style.DecorationThickness * d.Style.FontSize * e.opts.TextScale * 0.05)

		descent := float32(0)
		if d.Style.Font != nil {
			descent = d.Style.Font.Descent()
		}

		paintLine := func(y float32) {
			em.MoveTo(rect.Left(), y)
			em.LineTo(rect.Right(), y)
			em.StrokePath(false)
		}

		scaledSize := d.Style.FontSize * e.opts.TextScale
		double := d.Style.DecorationStyle == DecorationStyleDouble
		s := -0.15 * scaledSize * d.Style.DecorationThickness

		if d.Style.Decoration.Has(Underline) {
			base := -descent * scaledSize / 2
			paintLine(rect.Bottom() + base)
			if double {
				paintLine(rect.Bottom() + base + s)
			}
		}
		if d.Style.Decoration.Has(Overline) {
			base := scaledSize
			paintLine(rect.Bottom() + base)
			if double {
				paintLine(rect.Bottom() + base - s)
			}
		}
		if d.Style.Decoration.Has(LineThrough) {
			base := (1 - descent) * scaledSize / 2
			paintLine(rect.Bottom() + base)
			if double {
				paintLine(rect.Bottom() + base + s)
			}
		}
	}
}
