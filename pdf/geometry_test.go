package pdf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRectDerivedEdges(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 30, H: 40}
	require.Equal(t, float32(10), r.Left())
	require.Equal(t, float32(20), r.Bottom())
	require.Equal(t, float32(40), r.Right())
	require.Equal(t, float32(60), r.Top())
}

func TestRectUnion(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	b := Rect{X: 5, Y: -5, W: 10, H: 10}

	got := a.Union(b)
	require.Equal(t, Rect{X: 0, Y: -5, W: 15, H: 15}, got)
}

func TestMatrixIdentityApply(t *testing.T) {
	m := Identity2D()
	p := m.Apply(Point{X: 3, Y: 4})
	require.Equal(t, Point{X: 3, Y: 4}, p)
}

func TestMatrixTranslateScale(t *testing.T) {
	translate := Translate2D(5, 7)
	p := translate.Apply(Point{X: 1, Y: 1})
	require.Equal(t, Point{X: 6, Y: 8}, p)

	scale := Scale2D(2, 3)
	p = scale.Apply(Point{X: 1, Y: 1})
	require.Equal(t, Point{X: 2, Y: 3}, p)
}

func TestMatrixMulComposesInOrder(t *testing.T) {
	translate := Translate2D(10, 0)
	scale := Scale2D(2, 2)

	// Translate then scale: a point translated first, then scaled.
	combined := translate.Mul(scale)
	p := combined.Apply(Point{X: 1, Y: 1})
	require.Equal(t, Point{X: 22, Y: 2}, p)
}

func TestFontMetricsScale(t *testing.T) {
	m := FontMetrics{
		Left: 1, Top: 2, Right: 3, Bottom: 4,
		Ascent: 5, Descent: -6,
		Width: 7, Height: 8,
		AdvanceWidth: 9, MaxHeight: 10,
	}
	scaled := m.Scale(2)
	require.Equal(t, FontMetrics{
		Left: 2, Top: 4, Right: 6, Bottom: 8,
		Ascent: 10, Descent: -12,
		Width: 14, Height: 16,
		AdvanceWidth: 18, MaxHeight: 20,
	}, scaled)
}
