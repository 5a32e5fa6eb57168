package objects

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fonttools/ufoLib2/core"
)

// fakeUFO serves a complete font from memory and records what was read.
type fakeUFO struct {
	info     Info
	features string
	groups   Groups
	kerning  Kerning
	lib      Lib
	layers   []LayerEntry
	sets     map[string]*fakeGlyphSet
	data     map[string][]byte
	images   map[string][]byte

	dataReads map[string]int
	closed    bool
}

func newFakeUFO() *fakeUFO {
	def := newFakeGlyphSet(boxGlyph("A"), boxGlyph("B"))
	bg := newFakeGlyphSet(boxGlyph("A"))
	return &fakeUFO{
		features: "feature kern {} kern;",
		groups:   Groups{"public.kern1.round": {"A"}},
		kerning:  Kerning{{"A", "B"}: -15},
		lib:      Lib{"com.example.tool": "fake"},
		layers: []LayerEntry{
			{Name: "public.default", Default: true},
			{Name: "background"},
		},
		sets:      map[string]*fakeGlyphSet{"public.default": def, "background": bg},
		data:      map[string][]byte{"com.example/settings.json": []byte(`{}`)},
		images:    map[string][]byte{"bg.png": append(append([]byte(nil), pngSignature...), 0)},
		dataReads: map[string]int{},
	}
}

func (u *fakeUFO) ReadInfo(info *Info) error { *info = u.info; return nil }
func (u *fakeUFO) ReadFeatures() (string, error) { return u.features, nil }
func (u *fakeUFO) ReadGroups() (Groups, error) { return u.groups.Copy(), nil }
func (u *fakeUFO) ReadKerning() (Kerning, error) { return u.kerning.Copy(), nil }
func (u *fakeUFO) ReadLib() (Lib, error) { return u.lib.Copy(), nil }
func (u *fakeUFO) LayerContents() ([]LayerEntry, error) { return u.layers, nil }

func (u *fakeUFO) GlyphSet(layerName string) (GlyphSetReader, error) {
	gs, ok := u.sets[layerName]
	if !ok {
		return nil, core.Error(core.EMISSING, "no layer %q", layerName)
	}
	return gs, nil
}

func (u *fakeUFO) ListData() ([]string, error) {
	names := make([]string, 0, len(u.data))
	for n := range u.data {
		names = append(names, n)
	}
	return names, nil
}

func (u *fakeUFO) ListImages() ([]string, error) {
	names := make([]string, 0, len(u.images))
	for n := range u.images {
		names = append(names, n)
	}
	return names, nil
}

func (u *fakeUFO) ReadData(fileName string) ([]byte, error) {
	u.dataReads[fileName]++
	data, ok := u.data[fileName]
	if !ok {
		return nil, core.Error(core.EMISSING, "no data file %q", fileName)
	}
	return data, nil
}

func (u *fakeUFO) ReadImage(fileName string) ([]byte, error) {
	data, ok := u.images[fileName]
	if !ok {
		return nil, core.Error(core.EMISSING, "no image %q", fileName)
	}
	return data, nil
}

func (u *fakeUFO) Close() error { u.closed = true; return nil }

var _ UFOReader = (*fakeUFO)(nil)

func TestReadFontLazy(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ufo.objects")
	defer teardown()
	ufo := newFakeUFO()
	font, err := ReadFont(ufo, true)
	require.NoError(t, err)

	assert.True(t, font.Lazy())
	assert.False(t, ufo.closed, "lazy font holds on to the reader")
	assert.Equal(t, "feature kern {} kern;", font.Features.Text)
	assert.Equal(t, 0, ufo.sets["public.default"].reads["A"], "no glyph parsed yet")
	assert.Empty(t, ufo.dataReads)

	g, err := font.Glyph("A")
	require.NoError(t, err)
	assert.Equal(t, "A", g.Name())
	assert.Equal(t, 1, ufo.sets["public.default"].reads["A"])
	assert.Equal(t, 0, ufo.sets["background"].reads["A"], "other layers untouched")

	data, err := font.Data.Get("com.example/settings.json")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{}`), data)
	_, err = font.Data.Get("com.example/settings.json")
	require.NoError(t, err)
	assert.Equal(t, 1, ufo.dataReads["com.example/settings.json"], "read once")

	require.NoError(t, font.Unlazify())
	assert.False(t, font.Lazy())
	require.NoError(t, font.Close())
	assert.True(t, ufo.closed)
	require.NoError(t, font.Close(), "closing twice is fine")
}

func TestReadFontEagerClosesReader(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ufo.objects")
	defer teardown()
	ufo := newFakeUFO()
	font, err := ReadFont(ufo, false)
	require.NoError(t, err)
	assert.False(t, font.Lazy())
	assert.True(t, ufo.closed, "eager read releases the reader")
	assert.Equal(t, 1, ufo.sets["background"].reads["A"])
	_, err = font.Glyph("B")
	require.NoError(t, err)
}

func TestNewFontSeedsDefaultLayer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ufo.objects")
	defer teardown()
	font := NewFont()
	assert.Equal(t, DefaultLayerName, font.Layers.DefaultLayerName())
	_, err := font.NewGlyph("A")
	require.NoError(t, err)
	assert.True(t, font.Contains("A"))
	assert.Equal(t, []string{"A"}, font.Keys())
}

func TestFontGlyphOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ufo.objects")
	defer teardown()
	font := NewFont()
	assert.Nil(t, font.GlyphOrder())
	font.SetGlyphOrder([]string{"B", "A"})
	assert.Equal(t, []string{"B", "A"}, font.GlyphOrder())

	// Orders read from a lib arrive as []interface{}.
	font.Lib[GlyphOrderKey] = []interface{}{"x", "y"}
	assert.Equal(t, []string{"x", "y"}, font.GlyphOrder())
	font.SetGlyphOrder(nil)
	assert.NotContains(t, font.Lib, GlyphOrderKey)
}

func TestFontObjectLibForGuideline(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ufo.objects")
	defer teardown()
	font := NewFont()
	guide := &Guideline{Y: 500, Angle: 0, Name: "xheight"}
	font.AppendGuideline(guide)
	lib := font.ObjectLib(guide)
	lib["com.example.locked"] = true
	assert.NotEmpty(t, guide.Identifier())
	assert.Equal(t, true, font.ObjectLib(guide)["com.example.locked"])
}

func TestFontCopyIsIndependent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ufo.objects")
	defer teardown()
	ufo := newFakeUFO()
	font, err := ReadFont(ufo, true)
	require.NoError(t, err)
	cp, err := font.Copy()
	require.NoError(t, err)
	assert.False(t, cp.Lazy(), "copying materializes")
	assert.Empty(t, cp.Path())

	g, err := font.Glyph("A")
	require.NoError(t, err)
	g.Width = 1
	font.Kerning.Set("A", "A", 10)
	got, err := cp.Glyph("A")
	require.NoError(t, err)
	assert.Equal(t, 120.0, got.Width)
	_, ok := cp.Kerning.Get("A", "A")
	assert.False(t, ok)
}

func TestFontEqual(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ufo.objects")
	defer teardown()
	a, err := ReadFont(newFakeUFO(), true)
	require.NoError(t, err)
	b, err := ReadFont(newFakeUFO(), true)
	require.NoError(t, err)

	eq, err := a.Equal(b)
	require.NoError(t, err)
	assert.True(t, eq)
	assert.False(t, a.Lazy(), "comparing materializes both sides")

	g, err := b.Glyph("A")
	require.NoError(t, err)
	g.Width++
	eq, err = a.Equal(b)
	require.NoError(t, err)
	assert.False(t, eq)
}

func TestDataSetValidation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ufo.objects")
	defer teardown()
	data := NewDataSet()
	assert.Equal(t, core.EINVALID, core.Code(data.Put("", nil)))
	assert.Equal(t, core.EINVALID, core.Code(data.Put("/abs", nil)))
	require.NoError(t, data.Put("org.example/a.bin", []byte{1}))
	assert.Equal(t, []string{"org.example/a.bin"}, data.Keys())
	assert.Equal(t, core.EMISSING, core.Code(data.Delete("nope")))
	require.NoError(t, data.Delete("org.example/a.bin"))
}

func TestImageSetValidation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ufo.objects")
	defer teardown()
	images := NewImageSet()
	err := images.Put("a/b.png", pngSignature)
	assert.Equal(t, core.EINVALID, core.Code(err))
	err = images.Put("notpng.png", []byte("GIF89a"))
	assert.Equal(t, core.EINVALID, core.Code(err))
	require.NoError(t, images.Put("ok.png", append(append([]byte(nil), pngSignature...), 1, 2, 3)))
}
