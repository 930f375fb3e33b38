package pdf

// ColorRGB is a device-RGB color with components in [0, 1].
type ColorRGB struct {
	R, G, B float32
}

// ColorCMYK is a device-CMYK color with components in [0, 1].
type ColorCMYK struct {
	C, M, Y, K float32
}

// SetFillColorRGB appends `r g b rg`.
func (e *Emitter) SetFillColorRGB(c ColorRGB) {
	e.outf("%s %s %s rg", e.num(c.R), e.num(c.G), e.num(c.B))
}

// SetStrokeColorRGB appends `r g b RG`.
func (e *Emitter) SetStrokeColorRGB(c ColorRGB) {
	e.outf("%s %s %s RG", e.num(c.R), e.num(c.G), e.num(c.B))
}

// SetFillColorCMYK appends `c m y k k`.
func (e *Emitter) SetFillColorCMYK(c ColorCMYK) {
	e.outf("%s %s %s %s k", e.num(c.C), e.num(c.M), e.num(c.Y), e.num(c.K))
}

// SetStrokeColorCMYK appends `c m y k K`.
func (e *Emitter) SetStrokeColorCMYK(c ColorCMYK) {
	e.outf("%s %s %s %s K", e.num(c.C), e.num(c.M), e.num(c.Y), e.num(c.K))
}
