package pdf

// LineCap is the PDF line cap style: 0 butt, 1 round, 2 square.
type LineCap int

const (
	LineCapButt LineCap = iota
	LineCapRound
	LineCapSquare
)

// LineJoin is the PDF line join style: 0 miter, 1 round, 2 bevel.
type LineJoin int

const (
	LineJoinMiter LineJoin = iota
	LineJoinRound
	LineJoinBevel
)

// SetLineWidth appends `w w`.
func (e *Emitter) SetLineWidth(width float32) {
	e.outf("%s w", e.num(width))
}

// SetLineCap appends `cap J`.
func (e *Emitter) SetLineCap(cap LineCap) {
	e.outf("%d J", int(cap))
}

// SetLineJoin appends `join j`.
func (e *Emitter) SetLineJoin(join LineJoin) {
	e.outf("%d j", int(join))
}

// SetMiterLimit appends `limit M`. A negative limit is an InvalidArgument.
func (e *Emitter) SetMiterLimit(limit float32) {
	if limit < 0 {
		e.fail(InvalidArgument, "negative miter limit: %v", limit)
		return
	}
	e.outf("%s M", e.num(limit))
}

// SetDashPattern appends `[d1 d2 ...] phase d`. An empty pattern produces a
// solid line (`[] 0 d`).
func (e *Emitter) SetDashPattern(pattern []float32, phase float32) {
	s := "["
	for i, d := range pattern {
		if i > 0 {
			s += " "
		}
		s += e.num(d)
	}
	s += "] " + e.num(phase) + " d"
	e.out(s)
}

// SetGraphicState appends `/Name gs` with stateName written as given; it
// does not consult Page.StateName.
func (e *Emitter) SetGraphicState(stateName string) {
	e.outf("/%s gs", stateName)
	if e.registry != nil {
		e.registry.MarkGraphicStateUsed(stateName)
	}
}
