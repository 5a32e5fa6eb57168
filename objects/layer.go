package objects

import (
	"sort"

	"github.com/fonttools/ufoLib2/core"
	"github.com/fonttools/ufoLib2/geom"
	"github.com/fonttools/ufoLib2/pens"
)

// Layer maps glyph names to glyphs. In a lazily opened font a layer
// starts out with all glyph slots pending; slots are parsed from the
// glyph set on first access and stay materialized afterwards.
type Layer struct {
	name string

	// Color is the layer's display color, empty if unset.
	Color string

	Lib     Lib
	TempLib Lib

	glyphs  map[string]*Glyph
	pending map[string]bool
	reader  GlyphSetReader
}

// NewLayer creates an empty, eager layer.
func NewLayer(name string) *Layer {
	return &Layer{
		name:   name,
		Lib:    Lib{},
		glyphs: make(map[string]*Glyph),
	}
}

// LoadLayer binds a layer to a glyph set. With lazy set, only the glyph
// name list is read up front and each glyph is parsed on first access;
// otherwise all glyphs are parsed immediately.
func LoadLayer(name string, reader GlyphSetReader, lazy bool) (*Layer, error) {
	layer := NewLayer(name)
	if err := reader.ReadLayerInfo(layer); err != nil {
		return nil, err
	}
	names, err := reader.Contents()
	if err != nil {
		return nil, err
	}
	if lazy {
		layer.reader = reader
		layer.pending = make(map[string]bool, len(names))
		for _, n := range names {
			layer.pending[n] = true
		}
		return layer, nil
	}
	for _, n := range names {
		glyph, err := reader.ReadGlyph(n)
		if err != nil {
			return nil, err
		}
		glyph.setName(n)
		layer.glyphs[n] = glyph
	}
	return layer, nil
}

// Name returns the layer's name. Renaming happens through the owning
// LayerSet.
func (l *Layer) Name() string { return l.name }

func (l *Layer) setName(name string) { l.name = name }

// Len returns the number of glyphs, loaded or not.
func (l *Layer) Len() int {
	return len(l.glyphs) + len(l.pending)
}

// Contains reports whether the layer has a glyph of that name, without
// loading it.
func (l *Layer) Contains(name string) bool {
	_, ok := l.glyphs[name]
	return ok || l.pending[name]
}

// Keys returns all glyph names, sorted, without loading anything.
func (l *Layer) Keys() []string {
	names := make([]string, 0, l.Len())
	for n := range l.glyphs {
		names = append(names, n)
	}
	for n := range l.pending {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Glyph returns the named glyph, parsing it from the glyph set if it is
// still pending. Missing names are an EMISSING error.
func (l *Layer) Glyph(name string) (*Glyph, error) {
	if g, ok := l.glyphs[name]; ok {
		return g, nil
	}
	if !l.pending[name] {
		return nil, core.Error(core.EMISSING, "no glyph named %q in layer %q", name, l.name)
	}
	tracer().Debugf("loading glyph %q of layer %q", name, l.name)
	g, err := l.reader.ReadGlyph(name)
	if err != nil {
		return nil, err
	}
	g.setName(name)
	l.glyphs[name] = g
	delete(l.pending, name)
	return g, nil
}

// DrawableGlyph resolves a glyph name for bounds computation.
func (l *Layer) DrawableGlyph(name string) (pens.Drawable, error) {
	g, err := l.Glyph(name)
	if err != nil {
		return nil, err
	}
	return g, nil
}

var _ pens.GlyphSet = (*Layer)(nil)

// AddGlyph inserts the glyph under its own name. The glyph must be named
// and the name must be free.
func (l *Layer) AddGlyph(g *Glyph) error {
	if g.Name() == "" {
		return core.Error(core.EINVALID, "glyph has no name")
	}
	if l.Contains(g.Name()) {
		return core.Error(core.ECONSISTENCY, "glyph %q already exists in layer %q", g.Name(), l.name)
	}
	l.glyphs[g.Name()] = g
	return nil
}

// InsertGlyph stores a deep copy of the glyph under name, replacing any
// glyph of that name.
func (l *Layer) InsertGlyph(g *Glyph, name string) {
	cp := g.Copy()
	cp.setName(name)
	delete(l.pending, name)
	l.glyphs[name] = cp
}

// NewGlyph creates an empty glyph under name. The name must be free.
func (l *Layer) NewGlyph(name string) (*Glyph, error) {
	if l.Contains(name) {
		return nil, core.Error(core.ECONSISTENCY, "glyph %q already exists in layer %q", name, l.name)
	}
	g := NewGlyph(name)
	l.glyphs[name] = g
	return g, nil
}

// DeleteGlyph removes the named glyph, loaded or pending.
func (l *Layer) DeleteGlyph(name string) error {
	if !l.Contains(name) {
		return core.Error(core.EMISSING, "no glyph named %q in layer %q", name, l.name)
	}
	delete(l.glyphs, name)
	delete(l.pending, name)
	return nil
}

// PopGlyph removes and returns the named glyph, materializing it first.
func (l *Layer) PopGlyph(name string) (*Glyph, error) {
	g, err := l.Glyph(name)
	if err != nil {
		return nil, err
	}
	delete(l.glyphs, name)
	return g, nil
}

// RenameGlyph changes a glyph's name. Without overwrite, an existing
// glyph under the new name is an ECONSISTENCY error; with overwrite it
// is replaced. Renaming to the same name is a no-op.
func (l *Layer) RenameGlyph(name, newName string, overwrite bool) error {
	if name == newName {
		return nil
	}
	if !overwrite && l.Contains(newName) {
		return core.Error(core.ECONSISTENCY, "target glyph %q already exists in layer %q", newName, l.name)
	}
	g, err := l.PopGlyph(name)
	if err != nil {
		return err
	}
	g.setName(newName)
	delete(l.pending, newName)
	l.glyphs[newName] = g
	return nil
}

// Unlazify loads every pending glyph. Idempotent.
func (l *Layer) Unlazify() error {
	for name := range l.pending {
		if _, err := l.Glyph(name); err != nil {
			return err
		}
	}
	return nil
}

// Lazy reports whether any glyph slots are still pending.
func (l *Layer) Lazy() bool {
	return len(l.pending) > 0
}

// Bounds returns the union of the exact bounding boxes of all glyphs,
// nil if the layer draws nothing.
func (l *Layer) Bounds() (*geom.BoundingBox, error) {
	return l.bounds((*Glyph).Bounds)
}

// ControlBounds is Bounds over control points only.
func (l *Layer) ControlBounds() (*geom.BoundingBox, error) {
	return l.bounds((*Glyph).ControlBounds)
}

func (l *Layer) bounds(of func(*Glyph, *Layer) (*geom.BoundingBox, error)) (*geom.BoundingBox, error) {
	var box *geom.BoundingBox
	for _, name := range l.Keys() {
		g, err := l.Glyph(name)
		if err != nil {
			return nil, err
		}
		b, err := of(g, l)
		if err != nil {
			return nil, err
		}
		box = geom.Union(box, b)
	}
	return box, nil
}

// Copy returns a fully independent deep copy. Pending glyphs are loaded
// first, so the copy never shares a reader with the original.
func (l *Layer) Copy() (*Layer, error) {
	if err := l.Unlazify(); err != nil {
		return nil, err
	}
	out := &Layer{
		name:    l.name,
		Color:   l.Color,
		Lib:     l.Lib.Copy(),
		TempLib: l.TempLib.Copy(),
		glyphs:  make(map[string]*Glyph, len(l.glyphs)),
	}
	for name, g := range l.glyphs {
		out.glyphs[name] = g.Copy()
	}
	return out, nil
}

// Write persists the layer into a glyph set, loading pending glyphs as
// needed. Unused object-lib entries are pruned from each glyph before it
// is written.
func (l *Layer) Write(writer GlyphSetWriter) error {
	for _, name := range l.Keys() {
		g, err := l.Glyph(name)
		if err != nil {
			return err
		}
		if g.Lib != nil {
			pruneObjectLibs(g.Lib, g.identifiersInUse())
		}
		if err := writer.WriteGlyph(g); err != nil {
			return err
		}
	}
	if err := writer.WriteLayerInfo(l); err != nil {
		return err
	}
	return writer.WriteContents()
}
