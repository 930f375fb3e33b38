package pdf

import (
	"bytes"
	"strings"
)

// RenderingMode is the PDF text-rendering-mode operand to Tr (fill, stroke,
// fill+stroke, invisible, plus their clipping variants).
type RenderingMode int

const (
	RenderFill RenderingMode = iota
	RenderStroke
	RenderFillStroke
	RenderInvisible
	RenderFillClip
	RenderStrokeClip
	RenderFillStrokeClip
	RenderClip
)

// TextState is the subset of text-positioning parameters the emitter
// tracks between calls. It is a record only: every setter emits its
// operator whether or not the value changed.
type TextState struct {
	Font          Font
	Size          float32
	CharSpacing   float32
	WordSpacing   float32
	HorizScale    float32 // percent, 100 = unscaled
	Rise          float32
	Render        RenderingMode
}

// SetFont selects font at size, emitting `/Fn size Tf`, registering the
// font with the emitter's resource registry (idempotent) and recording
// the font and size in the emitter's TextState. It emits only Tf; the
// Tc/Tw/Tz/Ts/Tr operators come from their own setters.
func (e *Emitter) SetFont(font Font, size float32) {
	if font == nil {
		e.fail(InvalidArgument, "setFont: font is nil")
		return
	}
	if !isFinite(size) || size <= 0 {
		e.fail(InvalidArgument, "setFont: invalid size %v", size)
		return
	}

	handle := font.GetFont(e.page)
	if e.registry != nil {
		handle = e.registry.RegisterFont(handle.ResourceName, handle)
	}

	e.text.Font = font
	e.text.Size = size
	e.outf("/%s %s Tf", handle.ResourceName, e.num(size))
}

// SetCharSpacing emits `Tc` (extra space added after each glyph, in
// unscaled text-space units; may be negative to tighten).
func (e *Emitter) SetCharSpacing(cs float32) {
	e.text.CharSpacing = cs
	e.outf("%s Tc", e.num(cs))
}

// SetWordSpacing emits `Tw` (extra space added after each ASCII space
// glyph only; multi-byte encodings ignore it, so the caller decides when
// it is meaningful).
func (e *Emitter) SetWordSpacing(ws float32) {
	e.text.WordSpacing = ws
	e.outf("%s Tw", e.num(ws))
}

// SetHorizScale emits `Tz` (horizontal scaling, percent; 100 is unscaled).
func (e *Emitter) SetHorizScale(percent float32) {
	e.text.HorizScale = percent
	e.outf("%s Tz", e.num(percent))
}

// SetTextRise emits `Ts` (baseline shift, for super/subscript).
func (e *Emitter) SetTextRise(rise float32) {
	e.text.Rise = rise
	e.outf("%s Ts", e.num(rise))
}

// SetRenderMode emits `Tr`.
func (e *Emitter) SetRenderMode(mode RenderingMode) {
	e.text.Render = mode
	e.outf("%d Tr", int(mode))
}

// DrawString begins a text object at (x, y), selects font at size and shows
// text, emitting `BT x y Td` + setFont's `/Fn size Tf` + `[ (text) ] TJ ET`,
// per the drawString contract. Font selection happens inside the text
// object, the way the array form lets a caller later interleave per-glyph
// position adjustments into the same TJ array.
func (e *Emitter) DrawString(font Font, size, x, y float32, text string) {
	e.out("BT")
	e.outf("%s %s Td", e.num(x), e.num(y))
	e.SetFont(font, size)

	if e.text.Font == nil {
		e.fail(InvalidArgument, "drawString: no font selected")
		e.out("ET")
		return
	}

	if e.registry != nil {
		// The registry keys fonts by the resource name SetFont registered.
		name := e.text.Font.GetFont(e.page).ResourceName
		for _, r := range text {
			e.registry.MarkRuneUsed(name, r)
		}
	}

	var buf bytes.Buffer
	e.text.Font.PutText(&buf, text)
	e.put("[(")
	e.put(buf.String())
	e.out(")] TJ")

	e.out("ET")
}

// utf8ToUTF16BE converts s to UTF-16BE, optionally with a leading
// byte-order mark, for Font implementations that need a two-byte encoded
// PDF string literal rather than single-byte.
func utf8ToUTF16BE(s string, withBOM bool) []byte {
	out := make([]byte, 0, len(s)*2+2)
	if withBOM {
		out = append(out, 0xFE, 0xFF)
	}
	for _, r := range s {
		if r <= 0xFFFF {
			out = append(out, byte(r>>8), byte(r))
			continue
		}
		r -= 0x10000
		hi := 0xD800 + (r >> 10)
		lo := 0xDC00 + (r & 0x3FF)
		out = append(out, byte(hi>>8), byte(hi), byte(lo>>8), byte(lo))
	}
	return out
}

// escapePDFString escapes '(', ')' and '\' for use inside a PDF literal
// string. Only literal (never hex) string operands are emitted.
func escapePDFString(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '(', ')', '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// fontResourceEscape replaces spaces with their PDF-name escape sequence,
// for font family names used directly as resource-dictionary keys.
func fontResourceEscape(name string) string {
	return strings.Replace(name, " ", "#20", -1)
}
