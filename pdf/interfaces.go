package pdf

import "bytes"

// PdfFontHandle is the opaque per-page handle a Font hands back when asked
// to register itself; it carries whatever the Page implementation needs to
// emit a `/Fn` resource reference.
type PdfFontHandle struct {
	ResourceName string
	ObjectNumber uint32
}

// Font is the external glyph-metrics/encoding collaborator consumed by both
// the emitter (drawString, setFont) and the layout engine (line-breaking
// measurement). Font file parsing, glyph lookup and character encoding all
// live on the implementation; the core only calls through this interface.
type Font interface {
	// StringMetrics measures text in em units (1.0 is one em); callers
	// scale the result to a point size with FontMetrics.Scale. The extra
	// per-character spacing is in the same units, i.e. pre-divided by
	// size*scale by the caller.
	StringMetrics(text string, letterSpacing float32) FontMetrics

	// GetFont registers the font with the given page-ish context and
	// returns a handle usable in content-stream resource references.
	GetFont(ctx any) PdfFontHandle

	// Descent returns the font's descent as a fraction of its em size,
	// negative below the baseline (e.g. ~-0.2 for a typical Latin face);
	// callers multiply by the point
	// size they're rendering at, per the decoration-offset formulas that
	// consume it.
	Descent() float32

	// Name is the font's resource-visible family/style name.
	Name() string

	// PutText writes the PDF string literal encoding of text (handling the
	// font's encoding and any necessary escaping) to buf.
	PutText(buf *bytes.Buffer, text string)
}

// Page is the document-level collaborator that owns named resource
// dictionaries. Registration must be idempotent and must occur before the
// referencing operator is emitted.
type Page interface {
	AddFont(f Font) PdfFontHandle
	AddXObject(name string, data []byte) string
	AddShader(name string) string
	AddPattern(name string) string
	StateName(state string) string
	GetDefaultFont() Font
}
