package pdf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegisterFontIdempotent(t *testing.T) {
	reg := NewResourceRegistry()
	h1 := reg.RegisterFont("F1", PdfFontHandle{ResourceName: "F1", ObjectNumber: 7})
	h2 := reg.RegisterFont("F1", PdfFontHandle{ResourceName: "F1", ObjectNumber: 99})

	require.Equal(t, uint32(7), h1.ObjectNumber)
	require.Equal(t, h1, h2)
	require.Equal(t, []string{"F1"}, reg.FontNames())
}

func TestMarkRuneUsedTracksDistinctCodepoints(t *testing.T) {
	reg := NewResourceRegistry()
	reg.RegisterFont("F1", PdfFontHandle{ResourceName: "F1"})

	reg.MarkRuneUsed("F1", 'a')
	reg.MarkRuneUsed("F1", 'b')
	reg.MarkRuneUsed("F1", 'a')

	require.EqualValues(t, 2, reg.UsedRuneCount("F1"))
}

func TestMarkRuneUsedUnknownFontIsNoop(t *testing.T) {
	reg := NewResourceRegistry()
	reg.MarkRuneUsed("Ghost", 'a')
	require.EqualValues(t, 0, reg.UsedRuneCount("Ghost"))
}

func TestRegisterImageDedupesByContent(t *testing.T) {
	reg := NewResourceRegistry()
	data := []byte("same bytes")

	name1 := reg.RegisterImage("Im1", data)
	name2 := reg.RegisterImage("Im2", data)

	require.Equal(t, "Im1", name1)
	require.Equal(t, "Im1", name2, "second registration of identical bytes should resolve to the first name")
	require.Equal(t, []string{"Im1"}, reg.ImageNames())
}

func TestRegisterImageDistinctContentGetsDistinctNames(t *testing.T) {
	reg := NewResourceRegistry()
	n1 := reg.RegisterImage("Im1", []byte("one"))
	n2 := reg.RegisterImage("Im2", []byte("two"))

	require.Equal(t, "Im1", n1)
	require.Equal(t, "Im2", n2)
	require.Equal(t, []string{"Im1", "Im2"}, reg.ImageNames())
}

func TestMarkImageUsedRegistersUnknownName(t *testing.T) {
	reg := NewResourceRegistry()
	reg.MarkImageUsed("Im1")
	require.Equal(t, []string{"Im1"}, reg.ImageNames())
}

func TestMarkShaderAndPatternUsedAreIdempotent(t *testing.T) {
	reg := NewResourceRegistry()
	reg.MarkShaderUsed("Sh1")
	reg.MarkShaderUsed("Sh1")
	reg.MarkPatternUsed("P1")

	require.Equal(t, []string{"Sh1"}, reg.ShaderNames())
	require.Equal(t, []string{"P1"}, reg.PatternNames())
}
