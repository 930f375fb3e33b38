package richtext

import (
	"testing"

	"github.com/kofi-q/scribe-pdf/pdf"
	"github.com/stretchr/testify/require"
)

func TestMergeFillsZeroFieldsFromParent(t *testing.T) {
	parent := TextStyle{
		FontSize:      12,
		Color:         pdf.ColorRGB{R: 1},
		LetterSpacing: 2,
		WordSpacing:   1,
		LineSpacing:   1.2,
	}
	child := TextStyle{FontSize: 20}

	out := parent.Merge(child)

	require.Equal(t, float32(20), out.FontSize, "child's explicit value wins")
	require.Equal(t, pdf.ColorRGB{R: 1}, out.Color, "unset child field inherits parent's")
	require.Equal(t, float32(2), out.LetterSpacing)
	require.Equal(t, float32(1), out.WordSpacing)
	require.Equal(t, float32(1.2), out.LineSpacing)
}

func TestMergeChildNonZeroFieldsOverrideParent(t *testing.T) {
	parent := TextStyle{Decoration: Underline, FontStyle: FontStyleItalic}
	child := TextStyle{Decoration: LineThrough, FontStyle: FontStyleNormal}

	out := parent.Merge(child)

	require.Equal(t, LineThrough, out.Decoration)
	// FontStyleNormal is the zero value, so it can't be distinguished from
	// "unset" and inherits the parent's italic, matching Merge's doc comment.
	require.Equal(t, FontStyleItalic, out.FontStyle)
}

func TestMergeDecorationColorPointerInheritance(t *testing.T) {
	red := pdf.ColorRGB{R: 1}
	parent := TextStyle{DecorationColor: &red}
	child := TextStyle{}

	out := parent.Merge(child)
	require.Same(t, &red, out.DecorationColor)
}

func TestSameDecorationComparesRelevantFieldsOnly(t *testing.T) {
	a := TextStyle{Decoration: Underline, DecorationThickness: 1}
	b := TextStyle{Decoration: Underline, DecorationThickness: 1, FontSize: 99}

	require.True(t, sameDecoration(a, b), "unrelated fields like FontSize must not affect the comparison")

	c := TextStyle{Decoration: Underline, DecorationThickness: 2}
	require.False(t, sameDecoration(a, c))
}

func TestSameDecorationColorPointerNilVsSet(t *testing.T) {
	red := pdf.ColorRGB{R: 1}
	a := TextStyle{DecorationColor: &red}
	b := TextStyle{DecorationColor: nil}

	require.False(t, sameDecoration(a, b))
}
