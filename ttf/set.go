package ttf

import (
	"fmt"
	"log"
	"strings"
)

// Key identifies one face in a set: a lowercased family name plus a style
// bit combination.
type Key struct {
	Family string
	Style  Style
}

func (k Key) String() string {
	return strings.ToLower(k.Family) + k.Style.String()
}

// Style is a bitset of face variations. Bold and italic select a distinct
// face file; strike and underline are decorations applied at render time
// and do not participate in face naming.
type Style uint8

const StyleNone Style = 0

const (
	StyleB Style = 1 << iota
	StyleI
	StyleS
	StyleU
)

func (s Style) Strike() bool {
	return s&StyleS != 0
}

func (s Style) Underline() bool {
	return s&StyleU != 0
}

func (s Style) String() string {
	switch s & (StyleB | StyleI) {
	case StyleB:
		return "b"
	case StyleI:
		return "i"
	case StyleB | StyleI:
		return "bi"
	}
	return ""
}

// FontInfo is one registered face and its key.
type FontInfo struct {
	font Font
	key  Key
}

func (i *FontInfo) Font() *Font {
	return &i.font
}

func (i *FontInfo) Key() Key {
	return i.key
}

func (i *FontInfo) String() string {
	return i.key.String()
}

// GlyphWidth returns char's glyph id and advance width in em units.
func (i *FontInfo) GlyphWidth(char rune) (gid uint16, width float32) {
	gid = i.font.GlyphId(char)
	width = i.font.Width(gid)
	return
}

func (i *FontInfo) GlyphWidthOnly(char rune) float32 {
	_, width := i.GlyphWidth(char)
	return width
}

// Id indexes a face within its FontSet.
type Id uint8

// FontSet holds the parsed faces of a document, addressable by Id or by
// family/style key.
type FontSet struct {
	fonts []FontInfo
	byKey map[Key]Id
}

func NewFontSet(capacity uint8) FontSet {
	return FontSet{
		fonts: make([]FontInfo, 0, capacity),
		byKey: make(map[Key]Id, capacity),
	}
}

func (f *FontSet) Get(id Id) *FontInfo {
	return &f.fonts[id]
}

func (f *FontSet) Key(id Id) Key {
	return f.fonts[id].key
}

func (f *FontSet) Len() int {
	return len(f.fonts)
}

// Lookup finds the face registered for family/style, falling back to the
// family's plain face when the styled one was never added.
func (f *FontSet) Lookup(family string, style Style) (Id, bool) {
	key := Key{Family: strings.ToLower(family), Style: style & (StyleB | StyleI)}
	if id, ok := f.byKey[key]; ok {
		return id, true
	}
	id, ok := f.byKey[Key{Family: key.Family}]
	return id, ok
}

// AddTtf parses the font file in bytes and registers it under
// family/style. The face is registered even on parse failure so Ids stay
// stable; callers should treat the returned error as fatal for that face.
func (f *FontSet) AddTtf(family string, style Style, bytes []byte) (Id, error) {
	if f.byKey == nil {
		f.byKey = map[Key]Id{}
	}

	key := Key{Family: strings.ToLower(family), Style: style & (StyleB | StyleI)}
	id := Id(len(f.fonts))
	f.fonts = append(f.fonts, FontInfo{key: key})
	f.byKey[key] = id

	if err := Parse(bytes, &f.fonts[id].font); err != nil {
		return id, fmt.Errorf("unable to parse font file: %w", err)
	}
	return id, nil
}

func (f *FontSet) MustAddTtf(family string, style Style, bytes []byte) Id {
	id, err := f.AddTtf(family, style, bytes)
	if err != nil {
		log.Panicf(
			"unable to add font family(%s), style(%s): %v",
			family,
			style,
			err,
		)
	}
	return id
}
