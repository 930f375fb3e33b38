// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pdf

import (
	"bytes"
	"fmt"
)

// graphicsContext is the emitter's view of the PDF graphics state that
// can be saved/restored with q/Q. It is a plain value type, cloned on
// save.
type graphicsContext struct {
	ctm Matrix
}

// Emitter owns a byte buffer and a stack of graphics contexts and appends
// PDF content-stream operators to it. It corresponds to ContentStreamEmitter
// in the design: every exported method appends operator tokens and mirrors
// its effect (if any) onto the top graphicsContext.
//
// An Emitter is not reentrant: layout/paint callers must not interleave
// operations from two Emitters writing to the same underlying page buffer.
type Emitter struct {
	buf   bytes.Buffer
	stack []graphicsContext
	ctm   Matrix

	page     Page
	registry *ResourceRegistry

	// text tracks the parameters set by SetFont/SetCharSpacing/etc. so
	// DrawString can validate a font is selected before showing text.
	text TextState

	layers layerState

	// Debug toggles debug-paint annotations (e.g. outline rectangles around
	// positioned spans). It is a per-emitter field, not process-wide state.
	Debug bool

	err error
}

// NewEmitter creates an Emitter that writes to an in-memory buffer and
// registers resources (fonts, images, shaders, patterns, graphic states)
// against page.
func NewEmitter(page Page, registry *ResourceRegistry) *Emitter {
	return &Emitter{
		page:     page,
		registry: registry,
		ctm:      Identity2D(),
		layers:   newLayerState(),
	}
}

// Bytes returns the content stream built so far.
func (e *Emitter) Bytes() []byte { return e.buf.Bytes() }

// Err returns the first error recorded on this emitter, if any.
func (e *Emitter) Err() error { return e.err }

// SetError records err on the emitter if no error is already recorded.
func (e *Emitter) SetError(err error) {
	if e.err == nil {
		e.err = err
	}
}

// ClearError clears any recorded error, allowing the emitter to be reused.
func (e *Emitter) ClearError() { e.err = nil }

func (e *Emitter) fail(kind ErrorKind, format string, args ...any) {
	e.SetError(newError(kind, format, args...))
}

// out appends s as a newline-terminated operator token: one full
// content-stream line.
func (e *Emitter) out(s string) {
	e.buf.WriteString(s)
	e.buf.WriteByte('\n')
}

// outf is the formatted counterpart of out.
func (e *Emitter) outf(format string, args ...any) {
	e.out(fmt.Sprintf(format, args...))
}

// put appends s with no trailing newline, used to build up a single
// operator token from multiple pieces (numbers, then operator mnemonic).
func (e *Emitter) put(s string) {
	e.buf.WriteString(s)
}

// num appends the canonical decimal form of v, recording an InvalidArgument
// error instead of emitting anything if v is not finite.
func (e *Emitter) num(v float32) string {
	if !isFinite(v) {
		e.fail(InvalidArgument, "non-finite coordinate: %v", v)
		return "0"
	}
	return formatNumber(v)
}

func (e *Emitter) nums(vs ...float32) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = e.num(v)
	}
	out := parts[0]
	for _, p := range parts[1:] {
		out += " " + p
	}
	return out
}

// SaveContext pushes a clone of the current graphics context and emits `q`.
func (e *Emitter) SaveContext() {
	e.stack = append(e.stack, graphicsContext{ctm: e.ctm})
	e.out("q")
}

// RestoreContext pops the current graphics context and emits `Q`. Per
// contract, calling RestoreContext with an empty stack silently no-ops
// (StackUnderflow is not surfaced as an error).
func (e *Emitter) RestoreContext() {
	if len(e.stack) == 0 {
		return
	}
	top := e.stack[len(e.stack)-1]
	e.stack = e.stack[:len(e.stack)-1]
	e.ctm = top.ctm
	e.out("Q")
}

// StackDepth reports the number of currently-open saveContext scopes. A
// balanced paint pass returns this to 0.
func (e *Emitter) StackDepth() int { return len(e.stack) }

// SetTransform appends `a b c d e f cm` and composes m into the running CTM.
func (e *Emitter) SetTransform(m Matrix) {
	e.outf("%s %s %s %s %s %s cm",
		e.num(m.A), e.num(m.B), e.num(m.C), e.num(m.D), e.num(m.E), e.num(m.F))
	e.ctm = e.ctm.Mul(m)
}

// CTM returns the current transformation matrix.
func (e *Emitter) CTM() Matrix { return e.ctm }
