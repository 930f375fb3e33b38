// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pdf

// Point is a 2D coordinate in content-stream space.
type Point struct {
	X, Y float32
}

// Transform moves a point by the given X, Y offset.
func (p Point) Transform(dx, dy float32) Point {
	return Point{p.X + dx, p.Y + dy}
}

// Size holds a width/height extent.
type Size struct {
	W, H float32
}

// ScaleBy expands a size by a certain factor.
func (s Size) ScaleBy(factor float32) Size {
	return Size{s.W * factor, s.H * factor}
}

// Rect is an axis-aligned rectangle, anchored at its bottom-left corner in
// PDF user space (Y grows upward).
type Rect struct {
	X, Y, W, H float32
}

// RectZero is the empty rectangle at the origin.
var RectZero = Rect{}

func (r Rect) Left() float32   { return r.X }
func (r Rect) Bottom() float32 { return r.Y }
func (r Rect) Right() float32  { return r.X + r.W }
func (r Rect) Top() float32    { return r.Y + r.H }

// Translate returns r shifted by (dx, dy).
func (r Rect) Translate(dx, dy float32) Rect {
	return Rect{r.X + dx, r.Y + dy, r.W, r.H}
}

// Union returns the smallest rectangle containing both r and o. It is a
// plain geometric union: a zero-sized rectangle still contributes its
// position.
func (r Rect) Union(o Rect) Rect {
	minX := min(r.Left(), o.Left())
	minY := min(r.Bottom(), o.Bottom())
	maxX := max(r.Right(), o.Right())
	maxY := max(r.Top(), o.Top())
	return Rect{minX, minY, maxX - minX, maxY - minY}
}

// min/max rely on the language builtins (Go 1.21+); no local helpers needed.

// Matrix is a 2D affine transform, stored as the six PDF `cm` coefficients
// [a b c d e f], representing the 3x3 matrix:
//
//	| a b 0 |
//	| c d 0 |
//	| e f 1 |
//
// Only these six coefficients are stored; there is no 4x4 form of the
// matrix.
type Matrix struct {
	A, B, C, D, E, F float32
}

// Identity2D is the identity transform.
func Identity2D() Matrix {
	return Matrix{A: 1, D: 1}
}

// Translate2D returns a pure-translation matrix.
func Translate2D(tx, ty float32) Matrix {
	return Matrix{A: 1, D: 1, E: tx, F: ty}
}

// Scale2D returns a pure-scale matrix about the origin.
func Scale2D(sx, sy float32) Matrix {
	return Matrix{A: sx, D: sy}
}

// Mul composes m and n as m then n: a point transformed by the result is
// equivalent to transforming it by m, then by n.
func (m Matrix) Mul(n Matrix) Matrix {
	return Matrix{
		A: m.A*n.A + m.B*n.C,
		B: m.A*n.B + m.B*n.D,
		C: m.C*n.A + m.D*n.C,
		D: m.C*n.B + m.D*n.D,
		E: m.E*n.A + m.F*n.C + n.E,
		F: m.E*n.B + m.F*n.D + n.F,
	}
}

// Apply transforms the point p by m.
func (m Matrix) Apply(p Point) Point {
	return Point{
		X: m.A*p.X + m.C*p.Y + m.E,
		Y: m.B*p.X + m.D*p.Y + m.F,
	}
}

// FontMetrics holds glyph-run measurements in font design units already
// scaled by point size. All fields scale together as a unit (see Scale).
type FontMetrics struct {
	Left, Top, Right, Bottom float32
	Ascent, Descent          float32
	Width, Height            float32
	AdvanceWidth             float32
	MaxHeight                float32
}

// Scale multiplies every field of m by s, the way a font's design-unit
// metrics are scaled to a concrete point size.
func (m FontMetrics) Scale(s float32) FontMetrics {
	return FontMetrics{
		Left:         m.Left * s,
		Top:          m.Top * s,
		Right:        m.Right * s,
		Bottom:       m.Bottom * s,
		Ascent:       m.Ascent * s,
		Descent:      m.Descent * s,
		Width:        m.Width * s,
		Height:       m.Height * s,
		AdvanceWidth: m.AdvanceWidth * s,
		MaxHeight:    m.MaxHeight * s,
	}
}
