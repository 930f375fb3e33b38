package richtext

// realignLine normalizes every span in desc onto the line's baseline and
// applies the alignment rule. RTL lines mirror each span against the line
// width instead of shifting, with the alignment delta folded into the
// mirror; justified lines that are not the last line and hold more than
// one span distribute their delta per inter-span slot and are never
// mirrored.
func (e *Engine) realignLine(desc LineDescriptor, totalWidth float32) {
	spans := e.Spans[desc.FirstSpanIndex : desc.FirstSpanIndex+desc.SpanCount]
	delta := e.lineDelta(desc, totalWidth)

	if desc.TextAlign == AlignJustify && !desc.IsLast && desc.SpanCount > 1 {
		for i, sp := range spans {
			sp.Translate(delta*float32(i), -desc.BaselineDrop)
		}
		return
	}

	if desc.TextDirection == DirectionRTL {
		for _, sp := range spans {
			off := sp.Offset()
			sp.SetOffsetX(totalWidth - (off.X + sp.FlowWidth()) - delta)
			sp.Translate(0, -desc.BaselineDrop)
		}
		return
	}

	for _, sp := range spans {
		sp.Translate(delta, -desc.BaselineDrop)
	}
}

// lineDelta computes the single shift used by right/center, or the
// per-slot increment used by justify. A justified last line, or one with a
// single span, falls through to left.
func (e *Engine) lineDelta(desc LineDescriptor, totalWidth float32) float32 {
	switch desc.TextAlign {
	case AlignRight:
		return totalWidth - desc.WordsWidth
	case AlignCenter:
		return (totalWidth - desc.WordsWidth) / 2
	case AlignJustify:
		if desc.IsLast || desc.SpanCount <= 1 {
			return 0
		}
		return (totalWidth - desc.WordsWidth) / float32(desc.SpanCount-1)
	default:
		return 0
	}
}
