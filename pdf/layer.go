// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pdf

// Optional-content layers here cover only the marked-content BDC/EMC
// wrapping, which belongs to the content stream itself. Writing the OCG
// dictionary objects and catalog entries is the document assembler's job;
// Layers exposes what it needs.

type layer struct {
	name    string
	visible bool
}

// LayerID identifies an optional-content layer registered with an Emitter.
type LayerID int

// layerState tracks registered layers and which one (if any) content is
// currently being emitted into.
type layerState struct {
	list    []layer
	current LayerID
}

func newLayerState() layerState {
	return layerState{current: -1}
}

// AddLayer defines an optional-content layer with the given display name
// and initial visibility, returning an ID for use with BeginLayer.
func (e *Emitter) AddLayer(name string, visible bool) LayerID {
	id := LayerID(len(e.layers.list))
	e.layers.list = append(e.layers.list, layer{name: name, visible: visible})
	return id
}

// BeginLayer starts wrapping subsequently emitted operators in the marked
// content sequence for layer id, ending any layer already open. Invalid ids
// are ignored (any layer left open is still closed).
func (e *Emitter) BeginLayer(id LayerID) {
	e.EndLayer()
	if id < 0 || int(id) >= len(e.layers.list) {
		return
	}
	e.outf("/OC /OC%d BDC", int(id))
	e.layers.current = id
}

// EndLayer closes the marked content sequence opened by BeginLayer, if any.
func (e *Emitter) EndLayer() {
	if e.layers.current >= 0 {
		e.out("EMC")
		e.layers.current = -1
	}
}

// Layers returns the registered layers' names and visibility, in
// registration order, for callers assembling the document-level OCG
// dictionary and catalog entries outside this package.
func (e *Emitter) Layers() []struct {
	Name    string
	Visible bool
} {
	out := make([]struct {
		Name    string
		Visible bool
	}, len(e.layers.list))
	for i, l := range e.layers.list {
		out[i].Name = l.name
		out[i].Visible = l.visible
	}
	return out
}
