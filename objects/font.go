package objects

import (
	"reflect"

	"github.com/fonttools/ufoLib2/core"
	"github.com/fonttools/ufoLib2/geom"
)

// Font is the root of the object graph of one UFO package. The small
// top-level documents (info, features, groups, kerning, lib) are read
// up front even in lazy mode; glyphs, data files and images are the
// expensive parts and stay pending until first access.
type Font struct {
	Layers   *LayerSet
	Info     *Info
	Features Features
	Groups   Groups
	Kerning  Kerning
	Lib      Lib
	TempLib  Lib
	Data     *DataSet
	Images   *ImageSet

	path   string
	reader UFOReader
}

// NewFont creates an empty font with a single default layer named
// "public.default".
func NewFont() *Font {
	font := &Font{
		Layers:  NewLayerSet(),
		Info:    &Info{},
		Groups:  Groups{},
		Kerning: Kerning{},
		Lib:     Lib{},
		Data:    NewDataSet(),
		Images:  NewImageSet(),
	}
	if _, err := font.Layers.NewLayer(DefaultLayerName); err != nil {
		panic(err) // fresh set, cannot collide
	}
	return font
}

// ReadFont assembles a font from reader. With lazy set, glyphs, data
// files and images are read on first access and the font holds on to
// the reader until Unlazify or Close; otherwise everything is read
// immediately and the reader is released.
func ReadFont(reader UFOReader, lazy bool) (*Font, error) {
	tracer().Infof("reading UFO package (lazy=%v)", lazy)
	font := &Font{Info: &Info{}}
	if err := reader.ReadInfo(font.Info); err != nil {
		return nil, err
	}
	text, err := reader.ReadFeatures()
	if err != nil {
		return nil, err
	}
	font.Features = Features{Text: text}
	if font.Groups, err = reader.ReadGroups(); err != nil {
		return nil, err
	}
	if font.Kerning, err = reader.ReadKerning(); err != nil {
		return nil, err
	}
	if font.Lib, err = reader.ReadLib(); err != nil {
		return nil, err
	}
	if font.Layers, err = LoadLayerSet(reader, lazy); err != nil {
		return nil, err
	}
	dataNames, err := reader.ListData()
	if err != nil {
		return nil, err
	}
	font.Data = NewDataSet()
	if font.Data.dataStore, err = loadDataStore(dataNames, reader.ReadData, lazy); err != nil {
		return nil, err
	}
	imageNames, err := reader.ListImages()
	if err != nil {
		return nil, err
	}
	font.Images = NewImageSet()
	if font.Images.dataStore, err = loadDataStore(imageNames, reader.ReadImage, lazy); err != nil {
		return nil, err
	}
	if lazy {
		font.reader = reader
	} else if err := reader.Close(); err != nil {
		return nil, err
	}
	return font, nil
}

// Path returns where the font was last read from or saved to, "" for an
// in-memory font.
func (f *Font) Path() string { return f.path }

// SetPath records the font's package location.
func (f *Font) SetPath(path string) { f.path = path }

// --- Default-layer shortcuts -------------------------------------------------

// DefaultLayer returns the font's default layer.
func (f *Font) DefaultLayer() (*Layer, error) {
	return f.Layers.DefaultLayer()
}

// Glyph returns the named glyph of the default layer.
func (f *Font) Glyph(name string) (*Glyph, error) {
	layer, err := f.DefaultLayer()
	if err != nil {
		return nil, err
	}
	return layer.Glyph(name)
}

// Contains reports whether the default layer has the named glyph.
func (f *Font) Contains(name string) bool {
	layer, err := f.DefaultLayer()
	return err == nil && layer.Contains(name)
}

// Keys returns the glyph names of the default layer, sorted.
func (f *Font) Keys() []string {
	layer, err := f.DefaultLayer()
	if err != nil {
		return nil
	}
	return layer.Keys()
}

// NewGlyph creates an empty glyph in the default layer.
func (f *Font) NewGlyph(name string) (*Glyph, error) {
	layer, err := f.DefaultLayer()
	if err != nil {
		return nil, err
	}
	return layer.NewGlyph(name)
}

// AddGlyph inserts the glyph into the default layer under its own name.
func (f *Font) AddGlyph(g *Glyph) error {
	layer, err := f.DefaultLayer()
	if err != nil {
		return err
	}
	return layer.AddGlyph(g)
}

// DeleteGlyph removes the named glyph from the default layer.
func (f *Font) DeleteGlyph(name string) error {
	layer, err := f.DefaultLayer()
	if err != nil {
		return err
	}
	return layer.DeleteGlyph(name)
}

// RenameGlyph renames a glyph in every layer that has it.
func (f *Font) RenameGlyph(name, newName string, overwrite bool) error {
	return f.Layers.RenameGlyph(name, newName, overwrite)
}

// NewLayer creates an empty layer under name.
func (f *Font) NewLayer(name string) (*Layer, error) {
	return f.Layers.NewLayer(name)
}

// RenameLayer changes a layer's name.
func (f *Font) RenameLayer(name, newName string, overwrite bool) error {
	return f.Layers.RenameLayer(name, newName, overwrite)
}

// --- Info and lib conveniences ------------------------------------------------

func (f *Font) ensureInfo() *Info {
	if f.Info == nil {
		f.Info = &Info{}
	}
	return f.Info
}

func (f *Font) ensureLib() Lib {
	if f.Lib == nil {
		f.Lib = Lib{}
	}
	return f.Lib
}

// Guidelines returns the font-global guidelines.
func (f *Font) Guidelines() []*Guideline {
	if f.Info == nil {
		return nil
	}
	return f.Info.Guidelines
}

// AppendGuideline adds a font-global guideline.
func (f *Font) AppendGuideline(g *Guideline) {
	info := f.ensureInfo()
	info.Guidelines = append(info.Guidelines, g)
}

// GlyphOrder returns the glyph order stored in the lib, nil if unset.
func (f *Font) GlyphOrder() []string {
	if f.Lib == nil {
		return nil
	}
	switch v := f.Lib[GlyphOrderKey].(type) {
	case []string:
		return append([]string(nil), v...)
	case []interface{}:
		order := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				order = append(order, s)
			}
		}
		return order
	}
	return nil
}

// SetGlyphOrder stores a glyph order in the lib; nil removes it.
func (f *Font) SetGlyphOrder(order []string) {
	if order == nil {
		delete(f.Lib, GlyphOrderKey)
		return
	}
	f.ensureLib()[GlyphOrderKey] = append([]string(nil), order...)
}

// ObjectLib returns the lib of a font-global sub-object, currently a
// guideline of Info. The lib lives in the font's lib under
// public.objectLibs; see Glyph.ObjectLib for the aliasing contract.
func (f *Font) ObjectLib(obj HasIdentifier) Lib {
	return objectLib(f.ensureLib(), obj, f.identifiersInUse())
}

func (f *Font) identifiersInUse() map[string]bool {
	used := make(map[string]bool)
	for _, g := range f.Guidelines() {
		if g.identifier != "" {
			used[g.identifier] = true
		}
	}
	return used
}

// --- Laziness and lifecycle ----------------------------------------------------

// Unlazify loads everything still pending: all layers, glyphs, data
// files and images. The reader stays open; use Close to release it.
// Idempotent.
func (f *Font) Unlazify() error {
	if err := f.Layers.Unlazify(); err != nil {
		return err
	}
	if err := f.Data.Unlazify(); err != nil {
		return err
	}
	return f.Images.Unlazify()
}

// Lazy reports whether any part of the font is still pending.
func (f *Font) Lazy() bool {
	return f.Layers.Lazy() || f.Data.Lazy() || f.Images.Lazy()
}

// Close releases the underlying reader. Pending slots become
// unreachable, so callers wanting a fully in-memory font call Unlazify
// first. Safe to call on in-memory fonts and more than once.
func (f *Font) Close() error {
	if f.reader == nil {
		return nil
	}
	err := f.reader.Close()
	f.reader = nil
	return err
}

// --- Bounds ---------------------------------------------------------------------

// Bounds returns the union of the exact bounding boxes of all glyphs of
// the default layer, nil if nothing draws.
func (f *Font) Bounds() (*geom.BoundingBox, error) {
	layer, err := f.DefaultLayer()
	if err != nil {
		if core.Code(err) == core.EMISSING {
			return nil, nil // empty layer set draws nothing
		}
		return nil, err
	}
	return layer.Bounds()
}

// ControlBounds is Bounds over control points only.
func (f *Font) ControlBounds() (*geom.BoundingBox, error) {
	layer, err := f.DefaultLayer()
	if err != nil {
		if core.Code(err) == core.EMISSING {
			return nil, nil
		}
		return nil, err
	}
	return layer.ControlBounds()
}

// --- Copying and comparing -------------------------------------------------------

// Copy returns a fully independent deep copy, materializing the font
// first. The copy has no path and no reader.
func (f *Font) Copy() (*Font, error) {
	layers, err := f.Layers.Copy()
	if err != nil {
		return nil, err
	}
	data, err := f.Data.Copy()
	if err != nil {
		return nil, err
	}
	images, err := f.Images.Copy()
	if err != nil {
		return nil, err
	}
	return &Font{
		Layers:   layers,
		Info:     f.Info.Copy(),
		Features: f.Features,
		Groups:   f.Groups.Copy(),
		Kerning:  f.Kerning.Copy(),
		Lib:      f.Lib.Copy(),
		TempLib:  f.TempLib.Copy(),
		Data:     data,
		Images:   images,
	}, nil
}

// Equal reports deep equality of two fonts, ignoring paths, readers and
// temp libs. Both fonts are materialized first.
func (f *Font) Equal(other *Font) (bool, error) {
	if err := f.Unlazify(); err != nil {
		return false, err
	}
	if err := other.Unlazify(); err != nil {
		return false, err
	}
	if !reflect.DeepEqual(f.Info, other.Info) ||
		f.Features != other.Features ||
		!reflect.DeepEqual(f.Groups, other.Groups) ||
		!reflect.DeepEqual(f.Kerning, other.Kerning) ||
		!reflect.DeepEqual(f.Lib, other.Lib) ||
		!reflect.DeepEqual(f.Data.data, other.Data.data) ||
		!reflect.DeepEqual(f.Images.data, other.Images.data) {
		return false, nil
	}
	return f.Layers.Equal(other.Layers)
}

// --- Saving ----------------------------------------------------------------------

// Write persists the font through writer, loading pending slots as
// needed. Unused object-lib entries are pruned from the font lib first.
func (f *Font) Write(writer UFOWriter) error {
	if f.Lib != nil {
		pruneObjectLibs(f.Lib, f.identifiersInUse())
	}
	if err := writer.WriteInfo(f.Info); err != nil {
		return err
	}
	if err := writer.WriteFeatures(f.Features.Text); err != nil {
		return err
	}
	if err := writer.WriteGroups(f.Groups); err != nil {
		return err
	}
	if err := writer.WriteKerning(f.Kerning); err != nil {
		return err
	}
	if err := writer.WriteLib(f.Lib); err != nil {
		return err
	}
	if err := f.Layers.Write(writer); err != nil {
		return err
	}
	if err := f.Data.writeTo(writer.WriteData); err != nil {
		return err
	}
	return f.Images.writeTo(writer.WriteImage)
}
