package pdf

// bezierEllipseK is the magic constant for approximating a quarter-circle
// arc with a single cubic Bézier. It sits slightly below 4(√2−1)/3
// (≈ 0.552285), the value that puts each quarter's midpoint exactly on
// the circle.
const bezierEllipseK = 0.551784

// Ellipse draws a full ellipse centered at (cx, cy) with radii rx, ry as
// four cubic Béziers, starting and ending at the rightmost point. Emits
// exactly one `m` and four `c` tokens.
func (e *Emitter) Ellipse(cx, cy, rx, ry float32) {
	kx := rx * bezierEllipseK
	ky := ry * bezierEllipseK

	e.MoveTo(cx+rx, cy)
	e.CurveTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	e.CurveTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	e.CurveTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	e.CurveTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
}

// RoundedRect draws a rectangle (x, y, w, h) with corner radii (rh, rv),
// as four corner cubics joined by straight edges.
func (e *Emitter) RoundedRect(x, y, w, h, rh, rv float32) {
	kx := rh * bezierEllipseK
	ky := rv * bezierEllipseK

	e.MoveTo(x, y+rv)
	e.CurveTo(x, y+rv-ky, x+rh-kx, y, x+rh, y)
	e.LineTo(x+w-rh, y)
	e.CurveTo(x+w-rh+kx, y, x+w, y+rv-ky, x+w, y+rv)
	e.LineTo(x+w, y+h-rv)
	e.CurveTo(x+w, y+h-rv+ky, x+w-rh+kx, y+h, x+w-rh, y+h)
	e.LineTo(x+rh, y+h)
	e.CurveTo(x+rh-kx, y+h, x, y+h-rv+ky, x, y+h-rv)
	e.ClosePath()
}
