package pdf

// ApplyShader appends `/Name sh`, registering the shader resource with the
// page.
func (e *Emitter) ApplyShader(name string) {
	e.outf("/%s sh", name)
	if e.registry != nil {
		e.registry.MarkShaderUsed(name)
	}
}

// SetFillPattern appends `/Pattern cs /Name scn`.
func (e *Emitter) SetFillPattern(name string) {
	e.out("/Pattern cs")
	e.outf("/%s scn", name)
	if e.registry != nil {
		e.registry.MarkPatternUsed(name)
	}
}

// SetStrokePattern appends `/Pattern CS /Name SCN` (uppercase for stroke).
func (e *Emitter) SetStrokePattern(name string) {
	e.out("/Pattern CS")
	e.outf("/%s SCN", name)
	if e.registry != nil {
		e.registry.MarkPatternUsed(name)
	}
}
