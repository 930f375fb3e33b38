package pdf

import "math"

// BezierArc draws an elliptical arc from (x0, y0) to (x1, y1) using the SVG
// 1.1 Appendix F.6.5 endpoint-to-center parameterization, converted to a
// sequence of cubic Béziers. phiDeg is the ellipse's rotation in degrees;
// largeArc and sweep are the SVG arc flags.
//
// Shortcuts: if the endpoints coincide, nothing is emitted. If either radius
// is smaller than 1e-10, a single straight line is emitted instead.
func (e *Emitter) BezierArc(x0, y0, rx, ry, phiDeg float32, largeArc, sweep bool, x1, y1 float32) {
	if x0 == x1 && y0 == y1 {
		return
	}
	if abs32(rx) < 1e-10 || abs32(ry) < 1e-10 {
		e.LineTo(x1, y1)
		return
	}

	rx, ry = abs32(rx), abs32(ry)
	phi := float64(phiDeg) * math.Pi / 180

	cosPhi := math.Cos(phi)
	sinPhi := math.Sin(phi)

	// Step 1: compute (x1', y1'), the start point translated to the origin
	// and rotated by -phi.
	dx2 := float64(x0-x1) / 2
	dy2 := float64(y0-y1) / 2
	x1p := cosPhi*dx2 + sinPhi*dy2
	y1p := -sinPhi*dx2 + cosPhi*dy2

	rxf, ryf := float64(rx), float64(ry)

	// Step 2: correct out-of-range radii.
	lambda := (x1p*x1p)/(rxf*rxf) + (y1p*y1p)/(ryf*ryf)
	if lambda > 1 {
		s := math.Sqrt(lambda)
		rxf *= s
		ryf *= s
	}

	// Step 3: compute (cx', cy'), the arc center in the translated/rotated
	// frame.
	sign := 1.0
	if largeArc == sweep {
		sign = -1.0
	}
	num := rxf*rxf*ryf*ryf - rxf*rxf*y1p*y1p - ryf*ryf*x1p*x1p
	den := rxf*rxf*y1p*y1p + ryf*ryf*x1p*x1p
	co := 0.0
	if den != 0 {
		co = sign * math.Sqrt(math.Max(0, num/den))
	}
	cxp := co * (rxf * y1p / ryf)
	cyp := co * -(ryf * x1p / rxf)

	// Step 4: recover (cx, cy) from (cx', cy').
	cx := cosPhi*cxp - sinPhi*cyp + float64(x0+x1)/2
	cy := sinPhi*cxp + cosPhi*cyp + float64(y0+y1)/2

	angle := func(ux, uy, vx, vy float64) float64 {
		dot := ux*vx + uy*vy
		lenProd := math.Hypot(ux, uy) * math.Hypot(vx, vy)
		a := math.Acos(clamp(dot/lenProd, -1, 1))
		if ux*vy-uy*vx < 0 {
			a = -a
		}
		return a
	}

	theta0 := angle(1, 0, (x1p-cxp)/rxf, (y1p-cyp)/ryf)
	dTheta := angle((x1p-cxp)/rxf, (y1p-cyp)/ryf, (-x1p-cxp)/rxf, (-y1p-cyp)/ryf)

	if !sweep && dTheta > 0 {
		dTheta -= 2 * math.Pi
	} else if sweep && dTheta < 0 {
		dTheta += 2 * math.Pi
	}

	// Split into fragments of at most pi/2 so a single cubic approximates
	// each well.
	segCount := int(math.Ceil(math.Abs(dTheta) / (math.Pi / 2)))
	if segCount < 1 {
		segCount = 1
	}
	delta := dTheta / float64(segCount)

	t := theta0
	for i := 0; i < segCount; i++ {
		t2 := t + delta

		kappa := 4.0 / 3.0 * math.Tan(delta/4)

		sinT, cosT := math.Sin(t), math.Cos(t)
		sinT2, cosT2 := math.Sin(t2), math.Cos(t2)

		// Points and tangents in the unrotated ellipse frame.
		ex0, ey0 := rxf*cosT, ryf*sinT
		ex1, ey1 := rxf*cosT2, ryf*sinT2
		dex0, dey0 := -rxf*sinT, ryf*cosT
		dex1, dey1 := -rxf*sinT2, ryf*cosT2

		cp1x, cp1y := ex0+kappa*dex0, ey0+kappa*dey0
		cp2x, cp2y := ex1-kappa*dex1, ey1-kappa*dey1

		toAbs := func(px, py float64) (float32, float32) {
			rx := cosPhi*px - sinPhi*py + cx
			ry := sinPhi*px + cosPhi*py + cy
			return float32(rx), float32(ry)
		}

		c1x, c1y := toAbs(cp1x, cp1y)
		c2x, c2y := toAbs(cp2x, cp2y)
		ex, ey := toAbs(ex1, ey1)

		e.CurveTo(c1x, c1y, c2x, c2y, ex, ey)

		t = t2
	}
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
