package pdf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBezierArcCoincidentEndpointsEmitNothing(t *testing.T) {
	e := NewEmitter(nil, nil)
	e.BezierArc(5, 5, 3, 3, 0, false, true, 5, 5)

	require.Empty(t, lines(e))
}

func TestBezierArcTinyRadiusEmitsLine(t *testing.T) {
	e := NewEmitter(nil, nil)
	e.BezierArc(0, 0, 1e-12, 1e-12, 0, false, true, 10, 10)

	require.Equal(t, []string{"10 10 l"}, lines(e))
}

func TestBezierArcQuarterCircleEmitsOneCurve(t *testing.T) {
	e := NewEmitter(nil, nil)
	// A 90-degree arc from (10,0) to (0,10) on a radius-10 circle.
	e.BezierArc(10, 0, 10, 10, 0, false, true, 0, 10)

	ls := lines(e)
	require.Len(t, ls, 1)
	require.Contains(t, ls[0], " c")
}

func TestBezierArcHalfCircleEmitsTwoCurves(t *testing.T) {
	e := NewEmitter(nil, nil)
	// A 180-degree arc needs to be split into two <= pi/2 fragments.
	e.BezierArc(10, 0, 10, 10, 0, true, true, -10, 0)

	require.Equal(t, 2, countTokens(e, "c"))
}
