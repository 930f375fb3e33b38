// Package ttf reads the metrics tables of a TrueType font: per-glyph
// advance widths, the character-to-glyph mapping, and the vertical
// metrics, all normalized to em units. Glyph outlines, hinting programs
// and subset generation are not read; text measurement and encoding is
// the only concern served here.
package ttf

import (
	"encoding/binary"
	"fmt"
)

type tag uint32

func (t tag) String() string {
	buf := [4]byte{}
	binary.BigEndian.PutUint32(buf[:], uint32(t))
	return string(buf[:])
}

const (
	tableCmap tag = 0x636d6170 // 'cmap'
	tableHead tag = 0x68656164 // 'head'
	tableHhea tag = 0x68686561 // 'hhea'
	tableHmtx tag = 0x686d7478 // 'hmtx'
	tableMaxp tag = 0x6d617870 // 'maxp'
)

const (
	platformUnicode   = 0
	platformMicrosoft = 3

	codeMsUnicodeBmp = 1
	codeMsUnicodeExt = 10
	codeUnicodeExt   = 4

	cmapFormat4  = 4
	cmapFormat12 = 12
)

// Font is one parsed face. Ascent and Descent are in em units, ascent
// positive and descent negative, matching the hhea sign convention.
type Font struct {
	Ascent  float32
	Descent float32
	LineGap float32

	unitsPerEm uint16
	numGlyphs  uint16

	// advances is indexed by glyph id; glyphs past numberOfHMetrics
	// repeat the final advance, so the slice is never shorter than one
	// entry for a non-empty font.
	advances []uint16

	cmap map[rune]uint16
}

// GlyphId returns the glyph index for char, or 0 (.notdef) when the font
// has no mapping for it.
func (f *Font) GlyphId(char rune) uint16 {
	return f.cmap[char]
}

// Scaled converts a value in font design units to em units.
func (f *Font) Scaled(v int16) float32 {
	return float32(v) / float32(f.unitsPerEm)
}

// Width returns the advance width of glyph gid in em units.
func (f *Font) Width(gid uint16) float32 {
	if len(f.advances) == 0 {
		return 0
	}
	if int(gid) >= len(f.advances) {
		gid = uint16(len(f.advances) - 1)
	}
	return float32(f.advances[gid]) / float32(f.unitsPerEm)
}

// reader is a bounds-checked big-endian cursor over the font file.
type reader struct {
	data []byte
	pos  int
	err  error
}

func (r *reader) seek(pos uint32) {
	if int(pos) > len(r.data) {
		r.fail("seek past end: %d", pos)
		return
	}
	r.pos = int(pos)
}

func (r *reader) skip(n int) {
	if r.pos+n > len(r.data) {
		r.fail("truncated table")
		return
	}
	r.pos += n
}

func (r *reader) u16() uint16 {
	if r.pos+2 > len(r.data) {
		r.fail("truncated table")
		return 0
	}
	v := binary.BigEndian.Uint16(r.data[r.pos:])
	r.pos += 2
	return v
}

func (r *reader) i16() int16 {
	return int16(r.u16())
}

func (r *reader) u32() uint32 {
	if r.pos+4 > len(r.data) {
		r.fail("truncated table")
		return 0
	}
	v := binary.BigEndian.Uint32(r.data[r.pos:])
	r.pos += 4
	return v
}

func (r *reader) fail(format string, args ...any) {
	if r.err == nil {
		r.err = fmt.Errorf(format, args...)
	}
}

// Parse reads the metrics tables of the font file in data into out.
func Parse(data []byte, out *Font) error {
	r := &reader{data: data}

	version := r.u32()
	if version != 0x00010000 && version != 0x74727565 { // 1.0 or 'true'
		return fmt.Errorf("not a truetype font: version %#08x", version)
	}

	numTables := r.u16()
	r.skip(6) // searchRange, entrySelector, rangeShift

	tables := map[tag]uint32{}
	for i := 0; i < int(numTables); i++ {
		t := tag(r.u32())
		r.skip(4) // checksum
		offset := r.u32()
		r.skip(4) // length
		tables[t] = offset
	}
	if r.err != nil {
		return r.err
	}

	for _, t := range []tag{tableHead, tableHhea, tableMaxp, tableHmtx, tableCmap} {
		if _, ok := tables[t]; !ok {
			return fmt.Errorf("missing required table %q", t)
		}
	}

	// head: unitsPerEm at offset 18.
	r.seek(tables[tableHead] + 18)
	out.unitsPerEm = r.u16()
	if r.err == nil && out.unitsPerEm == 0 {
		return fmt.Errorf("head: unitsPerEm is zero")
	}

	// hhea: ascender, descender, lineGap at offset 4; numberOfHMetrics at 34.
	r.seek(tables[tableHhea] + 4)
	ascender := r.i16()
	descender := r.i16()
	lineGap := r.i16()
	r.seek(tables[tableHhea] + 34)
	metricCount := r.u16()

	// maxp: numGlyphs at offset 4.
	r.seek(tables[tableMaxp] + 4)
	out.numGlyphs = r.u16()

	if r.err != nil {
		return r.err
	}

	out.Ascent = out.Scaled(ascender)
	out.Descent = out.Scaled(descender)
	out.LineGap = out.Scaled(lineGap)

	if err := parseHmtx(r, tables[tableHmtx], metricCount, out); err != nil {
		return err
	}
	return parseCmap(r, tables[tableCmap], out)
}

func parseHmtx(r *reader, offset uint32, metricCount uint16, out *Font) error {
	if metricCount == 0 || metricCount > out.numGlyphs {
		return fmt.Errorf("hmtx: bad metric count %d for %d glyphs", metricCount, out.numGlyphs)
	}

	r.seek(offset)
	out.advances = make([]uint16, out.numGlyphs)
	for i := 0; i < int(metricCount); i++ {
		out.advances[i] = r.u16()
		r.skip(2) // leftSideBearing
	}
	// Glyphs past numberOfHMetrics all share the final advance.
	for i := int(metricCount); i < int(out.numGlyphs); i++ {
		out.advances[i] = out.advances[metricCount-1]
	}
	return r.err
}

func parseCmap(r *reader, offset uint32, out *Font) error {
	r.seek(offset + 2) // version
	subtableCount := r.u16()

	// Prefer a full-repertoire format 12 subtable; fall back to the BMP
	// format 4 one.
	var best uint32
	bestFormat := 0
	for i := 0; i < int(subtableCount); i++ {
		platform := r.u16()
		encoding := r.u16()
		subOffset := r.u32()

		switch {
		case platform == platformMicrosoft && encoding == codeMsUnicodeExt,
			platform == platformUnicode && encoding == codeUnicodeExt:
			best = offset + subOffset
			bestFormat = cmapFormat12
		case bestFormat == 0 && platform == platformMicrosoft && encoding == codeMsUnicodeBmp:
			best = offset + subOffset
			bestFormat = cmapFormat4
		}
	}
	if r.err != nil {
		return r.err
	}
	if bestFormat == 0 {
		return fmt.Errorf("cmap: no unicode subtable")
	}

	out.cmap = map[rune]uint16{}
	if bestFormat == cmapFormat12 {
		return parseCmap12(r, best, out)
	}
	return parseCmap4(r, best, out)
}

func parseCmap4(r *reader, offset uint32, out *Font) error {
	r.seek(offset)
	if format := r.u16(); format != cmapFormat4 {
		return fmt.Errorf("cmap: expected format 4, got %d", format)
	}
	r.skip(4) // length, language
	segCount := int(r.u16() / 2)

	r.skip(6) // searchRange, entrySelector, rangeShift

	endCodes := make([]uint16, segCount)
	for i := range endCodes {
		endCodes[i] = r.u16()
	}
	r.skip(2) // reservedPad
	startCodes := make([]uint16, segCount)
	for i := range startCodes {
		startCodes[i] = r.u16()
	}
	idDeltas := make([]uint16, segCount)
	for i := range idDeltas {
		idDeltas[i] = r.u16()
	}
	idRangeBase := r.pos
	idRangeOffsets := make([]uint16, segCount)
	for i := range idRangeOffsets {
		idRangeOffsets[i] = r.u16()
	}
	if r.err != nil {
		return r.err
	}

	for seg := 0; seg < segCount; seg++ {
		start, end := startCodes[seg], endCodes[seg]
		if start == 0xFFFF {
			continue
		}
		for c := uint32(start); c <= uint32(end); c++ {
			var gid uint16
			if idRangeOffsets[seg] == 0 {
				gid = uint16(c) + idDeltas[seg]
			} else {
				// The offset is relative to its own position in the
				// idRangeOffset array.
				pos := idRangeBase + seg*2 + int(idRangeOffsets[seg]) + int(c-uint32(start))*2
				if pos+2 > len(r.data) {
					continue
				}
				gid = binary.BigEndian.Uint16(r.data[pos:])
				if gid != 0 {
					gid += idDeltas[seg]
				}
			}
			if gid != 0 {
				out.cmap[rune(c)] = gid
			}
		}
	}
	return nil
}

func parseCmap12(r *reader, offset uint32, out *Font) error {
	r.seek(offset)
	if format := r.u16(); format != cmapFormat12 {
		return fmt.Errorf("cmap: expected format 12, got %d", format)
	}
	r.skip(10) // reserved, length, language
	groupCount := r.u32()

	for i := uint32(0); i < groupCount && r.err == nil; i++ {
		start := r.u32()
		end := r.u32()
		gid := r.u32()
		for c := start; c <= end; c++ {
			out.cmap[rune(c)] = uint16(gid + (c - start))
		}
	}
	return r.err
}
