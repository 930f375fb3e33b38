// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pdf

import (
	"fmt"
	"strconv"
	"strings"
)

// PathSink receives path-construction events as they are parsed, so a
// path can be replayed directly into an Emitter without an intermediate
// segment slice.
type PathSink interface {
	MoveTo(x, y float32)
	LineTo(x, y float32)
	CubicTo(x1, y1, x2, y2, x3, y3 float32)
	Close()
}

// SvgPathParser tokenizes an SVG path `d` attribute value into PathSink
// events. It is an external collaborator per the design: the core only
// consumes it, but DefaultSVGPathParser below is a concrete, real
// implementation so the emitter is exercisable without a caller-supplied
// tokenizer.
type SvgPathParser interface {
	Parse(d string, sink PathSink) error
}

// emitterSink adapts an *Emitter to PathSink so drawShape can replay parsed
// events directly as emitter operator calls.
type emitterSink struct{ e *Emitter }

func (s emitterSink) MoveTo(x, y float32)                   { s.e.MoveTo(x, y) }
func (s emitterSink) LineTo(x, y float32)                   { s.e.LineTo(x, y) }
func (s emitterSink) CubicTo(x1, y1, x2, y2, x3, y3 float32) { s.e.CurveTo(x1, y1, x2, y2, x3, y3) }
func (s emitterSink) Close()                                 { s.e.ClosePath() }

// DrawShape feeds the SVG path string d into parser, emitting the
// corresponding moveTo/lineTo/curveTo/closePath operators.
func (e *Emitter) DrawShape(d string, parser SvgPathParser) {
	if parser == nil {
		parser = DefaultSVGPathParser{}
	}
	if err := parser.Parse(d, emitterSink{e}); err != nil {
		e.fail(InvalidArgument, "drawShape: %w", err)
	}
}

// DefaultSVGPathParser implements SvgPathParser for the basic SVG path
// grammar (M/m, L/l, C/c, H/h, V/v, Q/q, Z/z). Quadratic segments are
// elevated to cubics so every curve reaches the sink as a cubic,
// matching PathSink.CubicTo.
type DefaultSVGPathParser struct{}

var pathCmdSub = strings.NewReplacer(
	",", " ",
	"L", " L ", "l", " l ",
	"C", " C ", "c", " c ",
	"M", " M ", "m", " m ",
	"H", " H ", "h", " h ",
	"V", " V ", "v", " v ",
	"Q", " Q ", "q", " q ",
	"Z", " Z ", "z", " z ",
)

func (DefaultSVGPathParser) Parse(d string, sink PathSink) error {
	var x, y float64     // current absolute position
	var startX, startY float64

	fields := strings.Fields(pathCmdSub.Replace(d))
	i := 0
	n := len(fields)

	readFloat := func() (float64, error) {
		if i >= n {
			return 0, fmt.Errorf("svgpath: unexpected end of path data")
		}
		v, err := strconv.ParseFloat(fields[i], 64)
		i++
		return v, err
	}

	var cmd byte
	for i < n {
		c := fields[i][0]
		if c == '-' || (c >= '0' && c <= '9') || c == '.' {
			// Argument continuation: repeat the previous command (with
			// implicit moveto-becomes-lineto per the SVG grammar).
			if cmd == 0 {
				return fmt.Errorf("svgpath: expecting command, got %q", fields[i])
			}
			if cmd == 'M' {
				cmd = 'L'
			} else if cmd == 'm' {
				cmd = 'l'
			}
		} else {
			cmd = fields[i][0]
			i++
		}

		switch cmd {
		case 'M', 'm':
			px, err := readFloat()
			if err != nil {
				return err
			}
			py, err := readFloat()
			if err != nil {
				return err
			}
			if cmd == 'm' {
				px += x
				py += y
			}
			x, y = px, py
			startX, startY = x, y
			sink.MoveTo(float32(x), float32(y))

		case 'L', 'l':
			px, err := readFloat()
			if err != nil {
				return err
			}
			py, err := readFloat()
			if err != nil {
				return err
			}
			if cmd == 'l' {
				px += x
				py += y
			}
			x, y = px, py
			sink.LineTo(float32(x), float32(y))

		case 'H', 'h':
			px, err := readFloat()
			if err != nil {
				return err
			}
			if cmd == 'h' {
				px += x
			}
			x = px
			sink.LineTo(float32(x), float32(y))

		case 'V', 'v':
			py, err := readFloat()
			if err != nil {
				return err
			}
			if cmd == 'v' {
				py += y
			}
			y = py
			sink.LineTo(float32(x), float32(y))

		case 'C', 'c':
			args := make([]float64, 6)
			for j := range args {
				v, err := readFloat()
				if err != nil {
					return err
				}
				args[j] = v
			}
			if cmd == 'c' {
				args[0] += x
				args[1] += y
				args[2] += x
				args[3] += y
				args[4] += x
				args[5] += y
			}
			sink.CubicTo(
				float32(args[0]), float32(args[1]),
				float32(args[2]), float32(args[3]),
				float32(args[4]), float32(args[5]),
			)
			x, y = args[4], args[5]

		case 'Q', 'q':
			args := make([]float64, 4)
			for j := range args {
				v, err := readFloat()
				if err != nil {
					return err
				}
				args[j] = v
			}
			if cmd == 'q' {
				args[0] += x
				args[1] += y
				args[2] += x
				args[3] += y
			}
			// Quadratic-to-cubic elevation: cp = p0 + 2/3*(pq-p0).
			c1x := x + 2.0/3.0*(args[0]-x)
			c1y := y + 2.0/3.0*(args[1]-y)
			c2x := args[2] + 2.0/3.0*(args[0]-args[2])
			c2y := args[3] + 2.0/3.0*(args[1]-args[3])
			sink.CubicTo(
				float32(c1x), float32(c1y),
				float32(c2x), float32(c2y),
				float32(args[2]), float32(args[3]),
			)
			x, y = args[2], args[3]

		case 'Z', 'z':
			sink.Close()
			x, y = startX, startY

		default:
			return fmt.Errorf("svgpath: unsupported command %q", string(cmd))
		}
	}

	return nil
}
