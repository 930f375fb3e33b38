package pdf

// MoveTo appends `x y m`.
func (e *Emitter) MoveTo(x, y float32) {
	e.outf("%s %s m", e.num(x), e.num(y))
}

// LineTo appends `x y l`.
func (e *Emitter) LineTo(x, y float32) {
	e.outf("%s %s l", e.num(x), e.num(y))
}

// CurveTo appends a cubic Bézier `x1 y1 x2 y2 x3 y3 c`.
func (e *Emitter) CurveTo(x1, y1, x2, y2, x3, y3 float32) {
	e.outf("%s %s %s %s %s %s c",
		e.num(x1), e.num(y1), e.num(x2), e.num(y2), e.num(x3), e.num(y3))
}

// ClosePath appends `h`.
func (e *Emitter) ClosePath() {
	e.out("h")
}

// DrawRect appends `x y w h re`.
func (e *Emitter) DrawRect(x, y, w, h float32) {
	e.outf("%s %s %s %s re", e.num(x), e.num(y), e.num(w), e.num(h))
}

// FillPath appends `f` (nonzero winding) or `f*` (even-odd).
func (e *Emitter) FillPath(evenOdd bool) {
	if evenOdd {
		e.out("f*")
	} else {
		e.out("f")
	}
}

// StrokePath appends `S`, or `s` if close is set (close-and-stroke).
func (e *Emitter) StrokePath(close bool) {
	if close {
		e.out("s")
	} else {
		e.out("S")
	}
}

// FillAndStrokePath appends one of `B`, `B*`, `b`, `b*` depending on the
// fill rule and whether the path should be closed first.
func (e *Emitter) FillAndStrokePath(evenOdd, close bool) {
	op := "B"
	if close {
		op = "b"
	}
	if evenOdd {
		op += "*"
	}
	e.out(op)
}

// ClipPath appends `W` (nonzero) or `W*` (even-odd), optionally followed by
// a path-painting no-op operator `n` when end is set, ending the path
// object without painting it.
func (e *Emitter) ClipPath(evenOdd, end bool) {
	s := "W"
	if evenOdd {
		s = "W*"
	}
	if end {
		s += " n"
	}
	e.out(s)
}
