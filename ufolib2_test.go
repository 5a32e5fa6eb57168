package ufolib2

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fonttools/ufoLib2/core"
	"github.com/fonttools/ufoLib2/geom"
	"github.com/fonttools/ufoLib2/objects"
	"github.com/fonttools/ufoLib2/pens"
)

var pngStub = []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0, 0, 0, 0}

// buildFont assembles a small but complete font touching every part of
// the package format.
func buildFont(t *testing.T) *Font {
	t.Helper()
	font := New()
	upm := Number(1000)
	font.Info.FamilyName = "Round Trip Sans"
	font.Info.StyleName = "Regular"
	font.Info.UnitsPerEm = &upm
	font.AppendGuideline(&Guideline{Y: 500, Name: "xheight"})
	font.Features.Text = "feature liga {\n  sub f i by fi;\n} liga;\n"
	font.Groups["public.kern1.round"] = []string{"o", "e"}
	font.Kerning.Set("public.kern1.round", "T", -40)
	font.Lib["com.example.generator"] = "roundtrip-test"

	a, err := font.NewGlyph("A")
	require.NoError(t, err)
	a.Width = 520
	a.Unicodes = []rune{'A'}
	a.AppendContour(&Contour{Points: []*Point{
		{X: 20, Y: 0, Type: pens.Line},
		{X: 500, Y: 0, Type: pens.Line},
		{X: 260, Y: 700, Type: pens.Line},
	}})

	acute, err := font.NewGlyph("acute")
	require.NoError(t, err)
	acute.Width = 0
	acute.AppendContour(&Contour{Points: []*Point{
		{X: 0, Y: 600, Type: pens.Line},
		{X: 80, Y: 700, Type: pens.Line},
	}})

	aacute, err := font.NewGlyph("Aacute")
	require.NoError(t, err)
	aacute.Width = 520
	aacute.Components = append(aacute.Components,
		objects.NewComponent("A", geom.Identity),
		objects.NewComponent("acute", geom.Identity.Translate(220, 30)))

	bg, err := font.NewLayer("background")
	require.NoError(t, err)
	bg.Color = "0,0,1,0.5"
	sketch, err := bg.NewGlyph("A")
	require.NoError(t, err)
	sketch.Width = 520

	require.NoError(t, font.Data.Put("com.example/settings.json", []byte(`{"grid": 10}`)))
	require.NoError(t, font.Images.Put("sketch.png", pngStub))
	return font
}

func TestSaveAndReopenRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ufo.font")
	defer teardown()
	dir := t.TempDir()
	path := filepath.Join(dir, "Test.ufo")
	font := buildFont(t)
	require.NoError(t, Save(font, path))
	assert.Equal(t, path, font.Path())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()
	assert.True(t, reopened.Lazy())

	eq, err := font.Equal(reopened)
	require.NoError(t, err)
	assert.True(t, eq, "font survives a save/reopen round trip")

	// Spot checks on the reopened graph.
	assert.Equal(t, "Round Trip Sans", reopened.Info.FamilyName)
	v, ok := reopened.Kerning.Get("public.kern1.round", "T")
	require.True(t, ok)
	assert.Equal(t, -40.0, v)
	bg, err := reopened.Layers.Layer("background")
	require.NoError(t, err)
	assert.Equal(t, "0,0,1,0.5", bg.Color)
	aacute, err := reopened.Glyph("Aacute")
	require.NoError(t, err)
	require.Len(t, aacute.Components, 2)
	assert.Equal(t, 220.0, aacute.Components[1].Transform.DX)
}

func TestObjectLibSurvivesRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ufo.font")
	defer teardown()
	dir := t.TempDir()
	path := filepath.Join(dir, "Test.ufo")
	font := buildFont(t)

	a, err := font.Glyph("A")
	require.NoError(t, err)
	lib := a.ObjectLib(a.Contours[0])
	lib["com.example.locked"] = true
	id := a.Contours[0].Identifier()
	require.NotEmpty(t, id)

	// An unused entry must not survive the save.
	a.Lib[objects.ObjectLibsKey].(map[string]interface{})["dead-beef"] =
		map[string]interface{}{"com.example.junk": true}

	require.NoError(t, Save(font, path))
	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Glyph("A")
	require.NoError(t, err)
	require.Len(t, got.Contours, 1)
	assert.Equal(t, id, got.Contours[0].Identifier())
	assert.Equal(t, true, got.ObjectLib(got.Contours[0])["com.example.locked"])
	stored := got.Lib[objects.ObjectLibsKey].(map[string]interface{})
	assert.NotContains(t, stored, "dead-beef", "unused entries are pruned on save")
}

func TestSaveOverwriteSemantics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ufo.font")
	defer teardown()
	dir := t.TempDir()
	path := filepath.Join(dir, "Test.ufo")
	require.NoError(t, Save(buildFont(t), path))

	err := Save(New(), path, WithOverwrite(false))
	assert.Equal(t, core.ECONSISTENCY, core.Code(err))

	// Default behavior replaces the package wholesale.
	require.NoError(t, Save(buildFont(t), path))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "no staging or backup directories left behind")
}

func TestSaveInPlaceMaterializes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ufo.font")
	defer teardown()
	dir := t.TempDir()
	path := filepath.Join(dir, "Test.ufo")
	require.NoError(t, Save(buildFont(t), path))

	font, err := Open(path)
	require.NoError(t, err)
	defer font.Close()
	require.True(t, font.Lazy())

	require.NoError(t, Save(font, path))
	assert.False(t, font.Lazy(), "in-place save loads every pending slot")
	g, err := font.Glyph("A")
	require.NoError(t, err)
	assert.Equal(t, 520.0, g.Width)
}

func TestOpenMissingPackage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ufo.font")
	defer teardown()
	_, err := Open(filepath.Join(t.TempDir(), "nope.ufo"))
	assert.Equal(t, core.EMISSING, core.Code(err))
}

func TestOpenEagerReleasesPackage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ufo.font")
	defer teardown()
	dir := t.TempDir()
	path := filepath.Join(dir, "Test.ufo")
	require.NoError(t, Save(buildFont(t), path))

	font, err := Open(path, WithLazy(false))
	require.NoError(t, err)
	assert.False(t, font.Lazy())

	// The package can disappear; the font lives on in memory.
	require.NoError(t, os.RemoveAll(path))
	g, err := font.Glyph("Aacute")
	require.NoError(t, err)
	box, err := g.Bounds(mustDefaultLayer(t, font))
	require.NoError(t, err)
	assert.Equal(t, &geom.BoundingBox{XMin: 20, YMin: 0, XMax: 500, YMax: 730}, box)
}

func mustDefaultLayer(t *testing.T, font *Font) *Layer {
	t.Helper()
	layer, err := font.DefaultLayer()
	require.NoError(t, err)
	return layer
}
