package objects

import (
	"reflect"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/fonttools/ufoLib2/core"
)

// layerNotLoaded marks a layer slot whose glyph set has not been opened
// yet.
type layerNotLoaded struct{}

var notLoaded = layerNotLoaded{}

// LayerSet is the ordered collection of a font's layers. Exactly one
// layer is the default layer as soon as the set is non-empty; an empty
// set is legal and the first layer inserted becomes the default.
//
// In a lazily opened font the default layer is bound immediately and all
// other layers stay unopened until first access.
type LayerSet struct {
	layers      *linkedhashmap.Map // layer name -> *Layer or layerNotLoaded
	defaultName string

	reader UFOReader
	lazy   bool
}

// NewLayerSet creates an empty layer set.
func NewLayerSet() *LayerSet {
	return &LayerSet{layers: linkedhashmap.New()}
}

// LoadLayerSet reads the layer table from reader. The default layer is
// opened right away; with lazy set, the remaining layers are opened on
// first access and every layer keeps its glyph slots pending.
func LoadLayerSet(reader UFOReader, lazy bool) (*LayerSet, error) {
	entries, err := reader.LayerContents()
	if err != nil {
		return nil, err
	}
	ls := NewLayerSet()
	ls.reader = reader
	ls.lazy = lazy
	for _, entry := range entries {
		if entry.Default {
			ls.defaultName = entry.Name
		}
		if entry.Default || !lazy {
			layer, err := ls.openLayer(entry.Name)
			if err != nil {
				return nil, err
			}
			ls.layers.Put(entry.Name, layer)
		} else {
			ls.layers.Put(entry.Name, notLoaded)
		}
	}
	if ls.defaultName == "" && !ls.layers.Empty() {
		return nil, core.Error(core.EFORMAT, "layer table names no default layer")
	}
	return ls, nil
}

func (ls *LayerSet) openLayer(name string) (*Layer, error) {
	tracer().Debugf("opening layer %q", name)
	gs, err := ls.reader.GlyphSet(name)
	if err != nil {
		return nil, err
	}
	return LoadLayer(name, gs, ls.lazy)
}

// Len returns the number of layers, opened or not.
func (ls *LayerSet) Len() int {
	return ls.layers.Size()
}

// Contains reports whether a layer of that name exists, without opening
// it.
func (ls *LayerSet) Contains(name string) bool {
	_, ok := ls.layers.Get(name)
	return ok
}

// Names returns the layer names in their defined order.
func (ls *LayerSet) Names() []string {
	keys := ls.layers.Keys()
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.(string)
	}
	return names
}

// Layer returns the named layer, opening its glyph set if necessary.
func (ls *LayerSet) Layer(name string) (*Layer, error) {
	v, ok := ls.layers.Get(name)
	if !ok {
		return nil, core.Error(core.EMISSING, "no layer named %q", name)
	}
	if layer, ok := v.(*Layer); ok {
		return layer, nil
	}
	layer, err := ls.openLayer(name)
	if err != nil {
		return nil, err
	}
	ls.layers.Put(name, layer)
	return layer, nil
}

// DefaultLayer returns the default layer. Only an empty set has none.
func (ls *LayerSet) DefaultLayer() (*Layer, error) {
	if ls.defaultName == "" {
		return nil, core.Error(core.EMISSING, "layer set is empty")
	}
	return ls.Layer(ls.defaultName)
}

// DefaultLayerName returns the name of the default layer, "" for an
// empty set.
func (ls *LayerSet) DefaultLayerName() string {
	return ls.defaultName
}

// SetDefaultLayer makes the named layer the default one.
func (ls *LayerSet) SetDefaultLayer(name string) error {
	if !ls.Contains(name) {
		return core.Error(core.EMISSING, "no layer named %q", name)
	}
	ls.defaultName = name
	return nil
}

// NewLayer creates an empty layer under name and appends it to the layer
// order. The first layer of the set becomes the default layer.
func (ls *LayerSet) NewLayer(name string) (*Layer, error) {
	layer := NewLayer(name)
	if err := ls.AddLayer(layer); err != nil {
		return nil, err
	}
	return layer, nil
}

// AddLayer appends an existing layer. Its name must be free.
func (ls *LayerSet) AddLayer(layer *Layer) error {
	if layer.Name() == "" {
		return core.Error(core.EINVALID, "layer has no name")
	}
	if ls.Contains(layer.Name()) {
		return core.Error(core.ECONSISTENCY, "layer %q already exists", layer.Name())
	}
	ls.layers.Put(layer.Name(), layer)
	if ls.defaultName == "" {
		ls.defaultName = layer.Name()
	}
	return nil
}

// RenameLayer changes a layer's name, moving it to the end of the layer
// order. Without overwrite, an existing layer under the new name is an
// ECONSISTENCY error; with overwrite it is replaced. Renaming the
// default layer keeps it default.
func (ls *LayerSet) RenameLayer(name, newName string, overwrite bool) error {
	if name == newName {
		return nil
	}
	if !overwrite && ls.Contains(newName) {
		return core.Error(core.ECONSISTENCY, "target layer %q already exists", newName)
	}
	layer, err := ls.Layer(name)
	if err != nil {
		return err
	}
	ls.layers.Remove(name)
	ls.layers.Remove(newName)
	layer.setName(newName)
	ls.layers.Put(newName, layer)
	if ls.defaultName == name {
		ls.defaultName = newName
	}
	return nil
}

// DeleteLayer removes the named layer. The default layer cannot be
// deleted this way; use DeleteLayerAndSetDefault to delete it and
// promote another in one step.
func (ls *LayerSet) DeleteLayer(name string) error {
	if !ls.Contains(name) {
		return core.Error(core.EMISSING, "no layer named %q", name)
	}
	if name == ls.defaultName {
		return core.Error(core.ECONSISTENCY, "cannot delete the default layer %q", name)
	}
	ls.layers.Remove(name)
	return nil
}

// DeleteLayerAndSetDefault deletes the named layer and makes newDefault
// the default layer, atomically. The set is unchanged on error.
func (ls *LayerSet) DeleteLayerAndSetDefault(name, newDefault string) error {
	if name == newDefault {
		return core.Error(core.EINVALID, "cannot promote the layer being deleted")
	}
	if !ls.Contains(name) {
		return core.Error(core.EMISSING, "no layer named %q", name)
	}
	if !ls.Contains(newDefault) {
		return core.Error(core.EMISSING, "no layer named %q", newDefault)
	}
	ls.defaultName = newDefault
	ls.layers.Remove(name)
	return nil
}

// LayerOrder returns the layer names in their defined order.
func (ls *LayerSet) LayerOrder() []string {
	return ls.Names()
}

// SetLayerOrder reorders the layers. order must be a permutation of the
// current layer names.
func (ls *LayerSet) SetLayerOrder(order []string) error {
	if len(order) != ls.Len() {
		return core.Error(core.ECONSISTENCY, "layer order names %d layers, have %d", len(order), ls.Len())
	}
	values := make([]interface{}, len(order))
	seen := make(map[string]bool, len(order))
	for i, name := range order {
		if seen[name] {
			return core.Error(core.ECONSISTENCY, "layer order names %q twice", name)
		}
		seen[name] = true
		v, ok := ls.layers.Get(name)
		if !ok {
			return core.Error(core.ECONSISTENCY, "layer order names unknown layer %q", name)
		}
		values[i] = v
	}
	ls.layers.Clear()
	for i, name := range order {
		ls.layers.Put(name, values[i])
	}
	return nil
}

// RenameGlyph renames a glyph in every layer that has it. Without
// overwrite, a glyph under the new name in any affected layer is an
// ECONSISTENCY error; all layers are checked before any is touched, so
// the set is unchanged on error.
func (ls *LayerSet) RenameGlyph(name, newName string, overwrite bool) error {
	if name == newName {
		return nil
	}
	var affected []*Layer
	for _, layerName := range ls.Names() {
		layer, err := ls.Layer(layerName)
		if err != nil {
			return err
		}
		if !layer.Contains(name) {
			continue
		}
		if !overwrite && layer.Contains(newName) {
			return core.Error(core.ECONSISTENCY,
				"glyph %q already exists in layer %q", newName, layer.Name())
		}
		affected = append(affected, layer)
	}
	if len(affected) == 0 {
		return core.Error(core.EMISSING, "no glyph named %q in any layer", name)
	}
	for _, layer := range affected {
		if err := layer.RenameGlyph(name, newName, true); err != nil {
			return err
		}
	}
	return nil
}

// Unlazify opens every layer and loads every glyph. Idempotent.
func (ls *LayerSet) Unlazify() error {
	for _, name := range ls.Names() {
		layer, err := ls.Layer(name)
		if err != nil {
			return err
		}
		if err := layer.Unlazify(); err != nil {
			return err
		}
	}
	ls.reader = nil
	return nil
}

// Lazy reports whether any layer or glyph slots are still pending.
func (ls *LayerSet) Lazy() bool {
	for _, name := range ls.Names() {
		v, _ := ls.layers.Get(name)
		layer, ok := v.(*Layer)
		if !ok || layer.Lazy() {
			return true
		}
	}
	return false
}

// Copy returns a fully independent deep copy, materializing the set
// first.
func (ls *LayerSet) Copy() (*LayerSet, error) {
	if err := ls.Unlazify(); err != nil {
		return nil, err
	}
	out := NewLayerSet()
	out.defaultName = ls.defaultName
	for _, name := range ls.Names() {
		layer, err := ls.Layer(name)
		if err != nil {
			return nil, err
		}
		cp, err := layer.Copy()
		if err != nil {
			return nil, err
		}
		out.layers.Put(name, cp)
	}
	return out, nil
}

// Equal reports deep equality of two layer sets, including layer order
// and default layer. Both sets are materialized first.
func (ls *LayerSet) Equal(other *LayerSet) (bool, error) {
	if err := ls.Unlazify(); err != nil {
		return false, err
	}
	if err := other.Unlazify(); err != nil {
		return false, err
	}
	if ls.defaultName != other.defaultName || ls.Len() != other.Len() {
		return false, nil
	}
	otherNames := other.Names()
	for i, name := range ls.Names() {
		if name != otherNames[i] {
			return false, nil
		}
		a, err := ls.Layer(name)
		if err != nil {
			return false, err
		}
		b, err := other.Layer(name)
		if err != nil {
			return false, err
		}
		if a.Color != b.Color ||
			!reflect.DeepEqual(a.Lib, b.Lib) ||
			!reflect.DeepEqual(a.glyphs, b.glyphs) {
			return false, nil
		}
	}
	return true, nil
}

// Write persists all layers and the layer table, loading pending slots
// as needed.
func (ls *LayerSet) Write(writer UFOWriter) error {
	entries := make([]LayerEntry, 0, ls.Len())
	for _, name := range ls.Names() {
		entries = append(entries, LayerEntry{Name: name, Default: name == ls.defaultName})
	}
	if err := writer.WriteLayerContents(entries); err != nil {
		return err
	}
	for _, entry := range entries {
		layer, err := ls.Layer(entry.Name)
		if err != nil {
			return err
		}
		gs, err := writer.GlyphSet(entry.Name, entry.Default)
		if err != nil {
			return err
		}
		if err := layer.Write(gs); err != nil {
			return err
		}
	}
	return nil
}
