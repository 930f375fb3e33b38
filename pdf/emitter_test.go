package pdf

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func lines(e *Emitter) []string {
	s := strings.TrimRight(string(e.Bytes()), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func TestMoveLineCurveRect(t *testing.T) {
	e := NewEmitter(nil, nil)
	e.MoveTo(1, 2)
	e.LineTo(3, 4)
	e.CurveTo(1, 2, 3, 4, 5, 6)
	e.DrawRect(0, 0, 10, 20)

	require.Equal(t, []string{
		"1 2 m",
		"3 4 l",
		"1 2 3 4 5 6 c",
		"0 0 10 20 re",
	}, lines(e))
}

func TestFillStrokeClipVariants(t *testing.T) {
	e := NewEmitter(nil, nil)
	e.FillPath(false)
	e.FillPath(true)
	e.StrokePath(false)
	e.StrokePath(true)
	e.FillAndStrokePath(false, false)
	e.FillAndStrokePath(true, false)
	e.FillAndStrokePath(false, true)
	e.FillAndStrokePath(true, true)
	e.ClipPath(false, false)
	e.ClipPath(true, true)
	e.ClosePath()

	require.Equal(t, []string{
		"f", "f*", "S", "s",
		"B", "B*", "b", "b*",
		"W", "W* n",
		"h",
	}, lines(e))
}

func TestSaveRestoreContextBalance(t *testing.T) {
	e := NewEmitter(nil, nil)
	require.Equal(t, 0, e.StackDepth())

	e.SaveContext()
	e.SaveContext()
	require.Equal(t, 2, e.StackDepth())

	e.RestoreContext()
	require.Equal(t, 1, e.StackDepth())

	e.RestoreContext()
	require.Equal(t, 0, e.StackDepth())

	// StackUnderflow silently no-ops per contract, not surfaced as an error.
	e.RestoreContext()
	require.Equal(t, 0, e.StackDepth())
	require.NoError(t, e.Err())

	require.Equal(t, []string{"q", "q", "Q", "Q"}, lines(e))
}

func TestSetTransformComposesCTM(t *testing.T) {
	e := NewEmitter(nil, nil)
	require.Equal(t, Identity2D(), e.CTM())

	e.SetTransform(Translate2D(5, 5))
	e.SetTransform(Scale2D(2, 2))

	p := e.CTM().Apply(Point{X: 1, Y: 1})
	require.Equal(t, Point{X: 12, Y: 12}, p)

	require.Equal(t, []string{
		"1 0 0 1 5 5 cm",
		"2 0 0 2 0 0 cm",
	}, lines(e))
}

func TestSaveRestoreRestoresCTM(t *testing.T) {
	e := NewEmitter(nil, nil)
	e.SetTransform(Translate2D(5, 5))
	e.SaveContext()
	e.SetTransform(Scale2D(2, 2))
	require.NotEqual(t, Translate2D(5, 5), e.CTM())

	e.RestoreContext()
	require.Equal(t, Translate2D(5, 5), e.CTM())
}

func TestLineStateOperators(t *testing.T) {
	e := NewEmitter(nil, nil)
	e.SetLineWidth(2.5)
	e.SetLineCap(LineCapRound)
	e.SetLineJoin(LineJoinBevel)
	e.SetMiterLimit(4)
	e.SetDashPattern([]float32{3, 1}, 0)
	e.SetDashPattern(nil, 0)

	require.Equal(t, []string{
		"2.5 w",
		"1 J",
		"2 j",
		"4 M",
		"[3 1] 0 d",
		"[] 0 d",
	}, lines(e))
}

func TestSetMiterLimitRejectsNegative(t *testing.T) {
	e := NewEmitter(nil, nil)
	e.SetMiterLimit(-1)
	require.Error(t, e.Err())
	var perr *Error
	require.ErrorAs(t, e.Err(), &perr)
	require.Equal(t, InvalidArgument, perr.Kind)
}

func TestColorOperators(t *testing.T) {
	e := NewEmitter(nil, nil)
	e.SetFillColorRGB(ColorRGB{R: 1, G: 0.5, B: 0})
	e.SetStrokeColorRGB(ColorRGB{R: 0, G: 0, B: 1})
	e.SetFillColorCMYK(ColorCMYK{C: 1, M: 0, Y: 0, K: 0})
	e.SetStrokeColorCMYK(ColorCMYK{C: 0, M: 1, Y: 0, K: 0})

	require.Equal(t, []string{
		"1 0.5 0 rg",
		"0 0 1 RG",
		"1 0 0 0 k",
		"0 1 0 0 K",
	}, lines(e))
}

func TestPatternAndShaderOperators(t *testing.T) {
	reg := NewResourceRegistry()
	e := NewEmitter(nil, reg)
	e.ApplyShader("Sh1")
	e.SetFillPattern("P1")
	e.SetStrokePattern("P2")
	e.SetGraphicState("GS1")

	require.Equal(t, []string{
		"/Sh1 sh",
		"/Pattern cs",
		"/P1 scn",
		"/Pattern CS",
		"/P2 SCN",
		"/GS1 gs",
	}, lines(e))

	require.Equal(t, []string{"Sh1"}, reg.ShaderNames())
	require.Equal(t, []string{"P1", "P2"}, reg.PatternNames())
}

func TestNonFiniteCoordinateRecordsError(t *testing.T) {
	e := NewEmitter(nil, nil)
	var nan float32
	nan = nan / nan // compile-safe NaN via runtime division
	e.MoveTo(nan, 0)

	require.Error(t, e.Err())
	var perr *Error
	require.ErrorAs(t, e.Err(), &perr)
	require.Equal(t, InvalidArgument, perr.Kind)
}

func TestClearErrorAllowsReuse(t *testing.T) {
	e := NewEmitter(nil, nil)
	e.SetMiterLimit(-1)
	require.Error(t, e.Err())

	e.ClearError()
	require.NoError(t, e.Err())
}
