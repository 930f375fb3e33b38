package pdf

import "math"

// BoundingBoxSink is a PathSink that tracks the tight bounding box of the
// path it's fed, without emitting any operators. It can consume the same
// SvgPathParser events an emitterSink would, in parallel or standalone.
type BoundingBoxSink struct {
	x, y       float32
	started    bool
	xMin, yMin float32
	xMax, yMax float32
}

func (b *BoundingBoxSink) expandX(v float32) {
	if !b.started {
		b.xMin, b.xMax = v, v
	} else {
		b.xMin = min(b.xMin, v)
		b.xMax = max(b.xMax, v)
	}
}

func (b *BoundingBoxSink) expandY(v float32) {
	if !b.started {
		b.yMin, b.yMax = v, v
	} else {
		b.yMin = min(b.yMin, v)
		b.yMax = max(b.yMax, v)
	}
}

func (b *BoundingBoxSink) visit(x, y float32) {
	if !b.started {
		b.expandX(x)
		b.expandY(y)
		b.started = true
		return
	}
	b.expandX(x)
	b.expandY(y)
}

func (b *BoundingBoxSink) MoveTo(x, y float32) {
	b.visit(x, y)
	b.x, b.y = x, y
}

func (b *BoundingBoxSink) LineTo(x, y float32) {
	b.visit(x, y)
	b.x, b.y = x, y
}

// CubicTo extends the box to cover the curve's endpoints and its interior
// extrema, found per axis by solving the derivative of the cubic Bézier
// 3at^2+bt+c=0 with a=-P0+3P1-3P2+P3, b=6P0-12P1+6P2, c=-3P0+3P1, accepting
// roots strictly inside (0, 1) and evaluating the cubic there.
func (b *BoundingBoxSink) CubicTo(x1, y1, x2, y2, x3, y3 float32) {
	b.visit(b.x, b.y) // ensure started before expand-only extrema below
	for _, t := range cubicExtremaRoots(b.x, x1, x2, x3) {
		b.expandX(cubicEval(b.x, x1, x2, x3, t))
	}
	for _, t := range cubicExtremaRoots(b.y, y1, y2, y3) {
		b.expandY(cubicEval(b.y, y1, y2, y3, t))
	}
	b.visit(x3, y3)
	b.x, b.y = x3, y3
}

func (b *BoundingBoxSink) Close() {}

// Rect returns the tight bounding box of every point visited, or Rect{} if
// the sink never received an event.
func (b *BoundingBoxSink) Rect() Rect {
	if !b.started {
		return RectZero
	}
	return Rect{X: b.xMin, Y: b.yMin, W: b.xMax - b.xMin, H: b.yMax - b.yMin}
}

func cubicEval(p0, p1, p2, p3, t float32) float32 {
	u := 1 - t
	return u*u*u*p0 + 3*u*u*t*p1 + 3*u*t*t*p2 + t*t*t*p3
}

func cubicExtremaRoots(p0, p1, p2, p3 float32) []float32 {
	a := -p0 + 3*p1 - 3*p2 + p3
	bb := 6*p0 - 12*p1 + 6*p2
	c := -3*p0 + 3*p1

	roots := quadraticRoots(3*a, bb, c)
	out := roots[:0]
	for _, t := range roots {
		if t > 0 && t < 1 {
			out = append(out, t)
		}
	}
	return out
}

func quadraticRoots(a, b, c float32) []float32 {
	if a == 0 {
		if b == 0 {
			return nil
		}
		return []float32{-c / b}
	}
	disc := float64(b*b - 4*a*c)
	if disc < 0 {
		return nil
	}
	sq := float32(math.Sqrt(disc))
	return []float32{(-b + sq) / (2 * a), (-b - sq) / (2 * a)}
}
