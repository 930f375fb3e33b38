package pdf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	events []string
}

func (r *recordingSink) MoveTo(x, y float32) {
	r.events = append(r.events, "M")
}
func (r *recordingSink) LineTo(x, y float32) {
	r.events = append(r.events, "L")
}
func (r *recordingSink) CubicTo(x1, y1, x2, y2, x3, y3 float32) {
	r.events = append(r.events, "C")
}
func (r *recordingSink) Close() {
	r.events = append(r.events, "Z")
}

func TestDefaultSVGPathParserBasicCommands(t *testing.T) {
	sink := &recordingSink{}
	err := DefaultSVGPathParser{}.Parse("M0 0 L10 0 L10 10 Z", sink)
	require.NoError(t, err)
	require.Equal(t, []string{"M", "L", "L", "Z"}, sink.events)
}

func TestDefaultSVGPathParserImplicitLineto(t *testing.T) {
	sink := &recordingSink{}
	// Implicit lineto: extra coordinate pairs after an M continue as L.
	err := DefaultSVGPathParser{}.Parse("M0,0 10,0 10,10", sink)
	require.NoError(t, err)
	require.Equal(t, []string{"M", "L", "L"}, sink.events)
}

func TestDefaultSVGPathParserCubicAndQuadratic(t *testing.T) {
	sink := &recordingSink{}
	err := DefaultSVGPathParser{}.Parse("M0 0 C1 1 2 2 3 3 Q4 4 5 5", sink)
	require.NoError(t, err)
	require.Equal(t, []string{"M", "C", "C"}, sink.events)
}

func TestDrawShapeReplaysOntoEmitter(t *testing.T) {
	e := NewEmitter(nil, nil)
	e.DrawShape("M0 0 L10 0", nil)

	require.Equal(t, []string{"0 0 m", "10 0 l"}, lines(e))
}

func TestDefaultSVGPathParserUnsupportedCommand(t *testing.T) {
	sink := &recordingSink{}
	err := DefaultSVGPathParser{}.Parse("M0 0 A1 1 0 0 0 1 1", sink)
	require.Error(t, err)
}
