package objects

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fonttools/ufoLib2/core"
	"github.com/fonttools/ufoLib2/geom"
)

// fakeGlyphSet serves glyphs from memory and counts parses.
type fakeGlyphSet struct {
	glyphs map[string]*Glyph
	color  string
	reads  map[string]int
}

func newFakeGlyphSet(glyphs ...*Glyph) *fakeGlyphSet {
	gs := &fakeGlyphSet{glyphs: map[string]*Glyph{}, reads: map[string]int{}}
	for _, g := range glyphs {
		gs.glyphs[g.Name()] = g
	}
	return gs
}

func (gs *fakeGlyphSet) Contents() ([]string, error) {
	names := make([]string, 0, len(gs.glyphs))
	for n := range gs.glyphs {
		names = append(names, n)
	}
	return names, nil
}

func (gs *fakeGlyphSet) ReadGlyph(name string) (*Glyph, error) {
	g, ok := gs.glyphs[name]
	if !ok {
		return nil, core.Error(core.EMISSING, "no glyph %q", name)
	}
	gs.reads[name]++
	return g.Copy(), nil
}

func (gs *fakeGlyphSet) ReadLayerInfo(layer *Layer) error {
	layer.Color = gs.color
	return nil
}

var _ GlyphSetReader = (*fakeGlyphSet)(nil)

func TestLayerLoadsGlyphsOnce(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ufo.objects")
	defer teardown()
	gs := newFakeGlyphSet(boxGlyph("A"), boxGlyph("B"))
	layer, err := LoadLayer("public.default", gs, true)
	require.NoError(t, err)

	assert.Equal(t, 2, layer.Len())
	assert.True(t, layer.Contains("A"))
	assert.Empty(t, gs.reads, "listing does not parse")

	a1, err := layer.Glyph("A")
	require.NoError(t, err)
	a2, err := layer.Glyph("A")
	require.NoError(t, err)
	assert.Same(t, a1, a2, "second access returns the materialized glyph")
	assert.Equal(t, 1, gs.reads["A"], "exactly one parse per glyph")
	assert.Equal(t, 0, gs.reads["B"])
}

func TestLayerEagerLoad(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ufo.objects")
	defer teardown()
	gs := newFakeGlyphSet(boxGlyph("A"), boxGlyph("B"))
	layer, err := LoadLayer("public.default", gs, false)
	require.NoError(t, err)
	assert.False(t, layer.Lazy())
	assert.Equal(t, 1, gs.reads["A"])
	assert.Equal(t, 1, gs.reads["B"])
}

func TestLayerUnlazifyIsIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ufo.objects")
	defer teardown()
	gs := newFakeGlyphSet(boxGlyph("A"))
	layer, err := LoadLayer("public.default", gs, true)
	require.NoError(t, err)
	require.NoError(t, layer.Unlazify())
	require.NoError(t, layer.Unlazify())
	assert.False(t, layer.Lazy())
	assert.Equal(t, 1, gs.reads["A"])
}

func TestLayerGlyphManagement(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ufo.objects")
	defer teardown()
	layer := NewLayer("public.default")
	_, err := layer.NewGlyph("A")
	require.NoError(t, err)
	_, err = layer.NewGlyph("A")
	assert.Equal(t, core.ECONSISTENCY, core.Code(err))

	err = layer.AddGlyph(NewGlyph(""))
	assert.Equal(t, core.EINVALID, core.Code(err))

	src := boxGlyph("ignored")
	layer.InsertGlyph(src, "B")
	b, err := layer.Glyph("B")
	require.NoError(t, err)
	assert.Equal(t, "B", b.Name())
	src.Width = 999
	assert.Equal(t, 120.0, b.Width, "insert stores a copy")

	require.NoError(t, layer.RenameGlyph("B", "C", false))
	assert.False(t, layer.Contains("B"))
	err = layer.RenameGlyph("C", "A", false)
	assert.Equal(t, core.ECONSISTENCY, core.Code(err))
	require.NoError(t, layer.RenameGlyph("C", "A", true))
	assert.Equal(t, []string{"A"}, layer.Keys())

	err = layer.DeleteGlyph("nope")
	assert.Equal(t, core.EMISSING, core.Code(err))
	require.NoError(t, layer.DeleteGlyph("A"))
	assert.Equal(t, 0, layer.Len())
}

func TestLayerCopyMaterializes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ufo.objects")
	defer teardown()
	gs := newFakeGlyphSet(boxGlyph("A"))
	layer, err := LoadLayer("public.default", gs, true)
	require.NoError(t, err)
	cp, err := layer.Copy()
	require.NoError(t, err)
	assert.False(t, cp.Lazy())

	orig, err := layer.Glyph("A")
	require.NoError(t, err)
	orig.Width = 1
	got, err := cp.Glyph("A")
	require.NoError(t, err)
	assert.Equal(t, 120.0, got.Width, "copies do not share glyphs")
}

func TestLayerBoundsWithComponents(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ufo.objects")
	defer teardown()
	layer := NewLayer("public.default")
	base, err := layer.NewGlyph("base")
	require.NoError(t, err)
	base.CopyDataFrom(boxGlyph("base"))
	comp, err := layer.NewGlyph("comp")
	require.NoError(t, err)
	comp.Components = append(comp.Components, NewComponent("base", geom.Identity.Translate(200, 0)))

	box, err := layer.Bounds()
	require.NoError(t, err)
	assert.Equal(t, &geom.BoundingBox{XMin: 0, YMin: 0, XMax: 300, YMax: 100}, box)
}

func TestLayerSetDefaultInvariant(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ufo.objects")
	defer teardown()
	ls := NewLayerSet()
	assert.Equal(t, 0, ls.Len())
	_, err := ls.DefaultLayer()
	assert.Equal(t, core.EMISSING, core.Code(err))

	_, err = ls.NewLayer("public.default")
	require.NoError(t, err)
	assert.Equal(t, "public.default", ls.DefaultLayerName(), "first layer becomes the default")

	_, err = ls.NewLayer("sketch")
	require.NoError(t, err)
	err = ls.DeleteLayer("public.default")
	assert.Equal(t, core.ECONSISTENCY, core.Code(err), "default layer is not deletable")

	require.NoError(t, ls.DeleteLayerAndSetDefault("public.default", "sketch"))
	assert.Equal(t, "sketch", ls.DefaultLayerName())
	assert.Equal(t, []string{"sketch"}, ls.Names())
}

func TestLayerSetFirstLayerBecomesDefault(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ufo.objects")
	defer teardown()
	ls := NewLayerSet()
	bg, err := ls.NewLayer("background")
	require.NoError(t, err)
	def, err := ls.DefaultLayer()
	require.NoError(t, err)
	assert.Same(t, bg, def)
}

func TestLayerSetDeleteAndSetDefaultIsAtomic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ufo.objects")
	defer teardown()
	ls := NewLayerSet()
	_, err := ls.NewLayer("public.default")
	require.NoError(t, err)

	err = ls.DeleteLayerAndSetDefault("public.default", "missing")
	assert.Equal(t, core.EMISSING, core.Code(err))
	assert.Equal(t, "public.default", ls.DefaultLayerName(), "set unchanged on error")
	assert.True(t, ls.Contains("public.default"))

	err = ls.DeleteLayerAndSetDefault("public.default", "public.default")
	assert.Equal(t, core.EINVALID, core.Code(err))
}

func TestLayerSetRename(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ufo.objects")
	defer teardown()
	ls := NewLayerSet()
	_, err := ls.NewLayer("public.default")
	require.NoError(t, err)
	_, err = ls.NewLayer("sketch")
	require.NoError(t, err)

	err = ls.RenameLayer("sketch", "public.default", false)
	assert.Equal(t, core.ECONSISTENCY, core.Code(err))

	require.NoError(t, ls.RenameLayer("public.default", "master", false))
	assert.Equal(t, "master", ls.DefaultLayerName(), "renaming the default keeps it default")
	layer, err := ls.Layer("master")
	require.NoError(t, err)
	assert.Equal(t, "master", layer.Name())
}

func TestLayerSetOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ufo.objects")
	defer teardown()
	ls := NewLayerSet()
	for _, name := range []string{"public.default", "a", "b"} {
		_, err := ls.NewLayer(name)
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"public.default", "a", "b"}, ls.LayerOrder())

	err := ls.SetLayerOrder([]string{"b", "a"})
	assert.Equal(t, core.ECONSISTENCY, core.Code(err))
	err = ls.SetLayerOrder([]string{"b", "a", "nope"})
	assert.Equal(t, core.ECONSISTENCY, core.Code(err))
	err = ls.SetLayerOrder([]string{"a", "a", "b"})
	assert.Equal(t, core.ECONSISTENCY, core.Code(err), "duplicate names rejected")
	assert.Equal(t, 3, ls.Len(), "set unchanged after rejected order")
	assert.True(t, ls.Contains("public.default"))

	require.NoError(t, ls.SetLayerOrder([]string{"b", "public.default", "a"}))
	assert.Equal(t, []string{"b", "public.default", "a"}, ls.Names())
	assert.Equal(t, "public.default", ls.DefaultLayerName())
}

func TestLayerSetRenameGlyphAcrossLayers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ufo.objects")
	defer teardown()
	ls := NewLayerSet()
	def, err := ls.NewLayer("public.default")
	require.NoError(t, err)
	bg, err := ls.NewLayer("background")
	require.NoError(t, err)
	_, err = def.NewGlyph("A")
	require.NoError(t, err)
	_, err = bg.NewGlyph("A")
	require.NoError(t, err)

	require.NoError(t, ls.RenameGlyph("A", "A.alt", false))
	assert.True(t, def.Contains("A.alt"))
	assert.True(t, bg.Contains("A.alt"))
	assert.False(t, def.Contains("A"))

	err = ls.RenameGlyph("nope", "whatever", false)
	assert.Equal(t, core.EMISSING, core.Code(err))
}

func TestLayerSetRenameGlyphChecksAllLayersFirst(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ufo.objects")
	defer teardown()
	ls := NewLayerSet()
	def, err := ls.NewLayer("public.default")
	require.NoError(t, err)
	bg, err := ls.NewLayer("background")
	require.NoError(t, err)
	_, err = def.NewGlyph("A")
	require.NoError(t, err)
	_, err = bg.NewGlyph("A")
	require.NoError(t, err)
	_, err = bg.NewGlyph("B")
	require.NoError(t, err)

	// The collision sits in the second layer only; the first layer must
	// not be touched.
	err = ls.RenameGlyph("A", "B", false)
	assert.Equal(t, core.ECONSISTENCY, core.Code(err))
	assert.True(t, def.Contains("A"), "first layer untouched on error")
	assert.False(t, def.Contains("B"))
	assert.True(t, bg.Contains("A"))

	require.NoError(t, ls.RenameGlyph("A", "B", true))
	assert.True(t, def.Contains("B"))
	assert.True(t, bg.Contains("B"))
	assert.False(t, bg.Contains("A"))
}
