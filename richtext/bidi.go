package richtext

import (
	"strings"

	"golang.org/x/text/unicode/bidi"
)

// BidiRun is one maximal run of a single embedding direction within a
// logical line, so mixed LTR/RTL paragraphs resolve per run rather than
// per paragraph. Level is odd for RTL runs, even for LTR, mirroring the
// Unicode bidi algorithm's embedding-level parity rule.
type BidiRun struct {
	Start, End int // byte offsets into the source string, End exclusive
	Level      int
}

// mirrorPairs holds the presentation-form mirror table for the bracket and
// quote characters an RTL run commonly needs flipped. Full contextual
// Arabic letter-joining is the font layer's job, which this package only
// consumes; the shaper here swaps the handful of strongly-mirrored
// punctuation code points and applies x/text/unicode/bidi's run
// reordering, nothing more.
var mirrorPairs = map[rune]rune{
	'(': ')', ')': '(',
	'[': ']', ']': '[',
	'{': '}', '}': '{',
	'<': '>', '>': '<',
	'«': '»', '»': '«',
}

// defaultArabicShaper is the Font-independent ArabicShaper used when a
// caller doesn't supply one: it resolves bidi runs via
// golang.org/x/text/unicode/bidi, reverses each RTL run's rune order, and
// mirrors paired punctuation within it.
type defaultArabicShaper struct{}

// NewDefaultArabicShaper returns the package's built-in ArabicShaper,
// backed by golang.org/x/text/unicode/bidi for run resolution.
func NewDefaultArabicShaper() ArabicShaper { return defaultArabicShaper{} }

func (defaultArabicShaper) Convert(text string) string {
	runs := resolveBidiRuns(text)

	var b strings.Builder
	b.Grow(len(text))
	for _, run := range runs {
		segment := text[run.Start:run.End]
		if run.Level%2 == 0 {
			b.WriteString(segment)
			continue
		}
		b.WriteString(mirrorAndReverse(segment))
	}
	return b.String()
}

func mirrorAndReverse(s string) string {
	runes := []rune(s)
	out := make([]rune, len(runes))
	for i, r := range runes {
		mirrored := r
		if m, ok := mirrorPairs[r]; ok {
			mirrored = m
		}
		out[len(runes)-1-i] = mirrored
	}
	return string(out)
}

// resolveBidiRuns partitions text into maximal same-level runs using
// golang.org/x/text/unicode/bidi's paragraph algorithm. Byte offsets are
// into text (UTF-8).
func resolveBidiRuns(text string) []BidiRun {
	if text == "" {
		return nil
	}

	var p bidi.Paragraph
	if _, err := p.SetString(text); err != nil {
		return []BidiRun{{Start: 0, End: len(text), Level: 0}}
	}

	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return []BidiRun{{Start: 0, End: len(text), Level: 0}}
	}

	runs := make([]BidiRun, 0, ordering.NumRuns())
	offset := 0
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		s := run.String()

		level := 0
		if run.Direction() == bidi.RightToLeft {
			level = 1
		}

		runs = append(runs, BidiRun{
			Start: offset,
			End:   offset + len(s),
			Level: level,
		})
		offset += len(s)
	}
	return runs
}
