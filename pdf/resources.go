package pdf

import (
	"crypto/sha1"
	"fmt"
	"sort"

	"github.com/bits-and-blooms/bitset"
)

// imageRecord content-addresses registered image data: two RegisterImage
// calls with byte-identical content hash to the same resource name
// instead of emitting the resource twice.
type imageRecord struct {
	name string
	hash string
}

func imageHash(data []byte) string {
	sha := sha1.New()
	sha.Write(data)
	return fmt.Sprintf("%x", sha.Sum(nil))
}

// fontRecord tracks which runes of a registered font have actually been
// used, so a caller can later subset the embedded font program to the
// glyphs the page references.
type fontRecord struct {
	handle    PdfFontHandle
	usedRunes bitset.BitSet
}

// ResourceRegistry is the idempotent resource dictionary behind a Page:
// fonts, images, shaders, patterns and extended-graphics-state dictionaries
// are each registered at most once, with repeat registrations of the same
// name/content becoming no-ops.
type ResourceRegistry struct {
	fonts  map[string]*fontRecord
	images map[string]imageRecord
	// imagesByHash lets repeated RegisterImage calls with the same bytes
	// resolve to the resource name already assigned.
	imagesByHash  map[string]string
	shaders       map[string]bool
	patterns      map[string]bool
	graphicStates map[string]bool
}

// NewResourceRegistry returns an empty registry ready to back a Page.
func NewResourceRegistry() *ResourceRegistry {
	return &ResourceRegistry{
		fonts:         map[string]*fontRecord{},
		images:        map[string]imageRecord{},
		imagesByHash:  map[string]string{},
		shaders:       map[string]bool{},
		patterns:      map[string]bool{},
		graphicStates: map[string]bool{},
	}
}

// RegisterFont idempotently adds f's resource name to the font dictionary
// and returns its handle. A second registration of the same name is a
// no-op returning the original handle.
func (r *ResourceRegistry) RegisterFont(name string, handle PdfFontHandle) PdfFontHandle {
	if rec, ok := r.fonts[name]; ok {
		return rec.handle
	}
	r.fonts[name] = &fontRecord{handle: handle}
	return handle
}

// MarkRuneUsed records that codepoint ch of font name was referenced by a
// drawString/PutText call, for later font subsetting.
func (r *ResourceRegistry) MarkRuneUsed(name string, ch rune) {
	rec, ok := r.fonts[name]
	if !ok {
		return
	}
	if ch < 0 {
		return
	}
	rec.usedRunes.Set(uint(ch))
}

// UsedRuneCount reports how many distinct runes of font name have been
// marked used, for diagnostics and tests.
func (r *ResourceRegistry) UsedRuneCount(name string) uint {
	rec, ok := r.fonts[name]
	if !ok {
		return 0
	}
	return rec.usedRunes.Count()
}

// RegisterImage deduplicates image data content-addressed by its SHA-1
// digest: if data has already been registered under any name, the existing
// name is returned; otherwise name is recorded as the canonical name for
// that digest.
func (r *ResourceRegistry) RegisterImage(name string, data []byte) string {
	hash := imageHash(data)
	if existing, ok := r.imagesByHash[hash]; ok {
		return existing
	}
	r.images[name] = imageRecord{name: name, hash: hash}
	r.imagesByHash[hash] = name
	return name
}

// MarkImageUsed records that the image resource name was referenced by a
// DrawImage call. A name never registered via RegisterImage is added with
// no content hash; a name already present is left as it is.
func (r *ResourceRegistry) MarkImageUsed(name string) {
	if _, ok := r.images[name]; !ok {
		r.images[name] = imageRecord{name: name}
	}
}

// MarkShaderUsed idempotently records that shader resource name has been
// referenced by an `sh` operator.
func (r *ResourceRegistry) MarkShaderUsed(name string) {
	r.shaders[name] = true
}

// MarkPatternUsed idempotently records that pattern resource name has been
// referenced by `scn`/`SCN`.
func (r *ResourceRegistry) MarkPatternUsed(name string) {
	r.patterns[name] = true
}

// MarkGraphicStateUsed idempotently records that extended graphics state
// name has been referenced by a `gs` operator.
func (r *ResourceRegistry) MarkGraphicStateUsed(name string) {
	r.graphicStates[name] = true
}

// FontNames, ImageNames, ShaderNames and PatternNames return the registered
// resource names in deterministic (sorted) order, for resource-dictionary
// emission and for tests.
func (r *ResourceRegistry) FontNames() []string    { return sortedKeysFont(r.fonts) }
func (r *ResourceRegistry) ImageNames() []string   { return sortedKeysImage(r.images) }
func (r *ResourceRegistry) ShaderNames() []string  { return sortedKeysBool(r.shaders) }
func (r *ResourceRegistry) PatternNames() []string { return sortedKeysBool(r.patterns) }

func sortedKeysFont(m map[string]*fontRecord) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func sortedKeysImage(m map[string]imageRecord) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func sortedKeysBool(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
