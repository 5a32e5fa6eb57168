package pens

import (
	"testing"

	"github.com/fonttools/ufoLib2/core"
	"github.com/fonttools/ufoLib2/geom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGlyph func(PointPen) error

func (s stubGlyph) DrawPoints(pen PointPen) error { return s(pen) }

type stubSet map[string]stubGlyph

func (s stubSet) DrawableGlyph(name string) (Drawable, error) {
	g, ok := s[name]
	if !ok {
		return nil, core.Error(core.EMISSING, "glyph %q not in glyph set", name)
	}
	return g, nil
}

func drawCubicFixture(pen PointPen) error {
	// moveTo (0,0); curveTo (10,10) (10,20) (0,20); closePath
	if err := pen.BeginPath(""); err != nil {
		return err
	}
	for _, pt := range []Point{
		{X: 0, Y: 0, Type: Line},
		{X: 10, Y: 10},
		{X: 10, Y: 20},
		{X: 0, Y: 20, Type: Curve},
	} {
		if err := pen.AddPoint(pt); err != nil {
			return err
		}
	}
	return pen.EndPath()
}

func drawRect(x0, y0, x1, y1 float64) stubGlyph {
	return func(pen PointPen) error {
		if err := pen.BeginPath(""); err != nil {
			return err
		}
		for _, c := range [4][2]float64{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}} {
			if err := pen.AddPoint(Point{X: c[0], Y: c[1], Type: Line}); err != nil {
				return err
			}
		}
		return pen.EndPath()
	}
}

func TestBoundsCubicContour(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ufo.pens")
	defer teardown()
	//
	pen := NewBoundsPen(nil)
	require.NoError(t, drawCubicFixture(pen))
	require.NotNil(t, pen.Bounds())
	assert.Equal(t, geom.BoundingBox{XMin: 0, YMin: 0, XMax: 7.5, YMax: 20}, *pen.Bounds())

	ctrl := NewControlBoundsPen(nil)
	require.NoError(t, drawCubicFixture(ctrl))
	require.NotNil(t, ctrl.Bounds())
	assert.Equal(t, geom.BoundingBox{XMin: 0, YMin: 0, XMax: 10, YMax: 20}, *ctrl.Bounds())
}

func TestBoundsEmpty(t *testing.T) {
	pen := NewBoundsPen(nil)
	assert.Nil(t, pen.Bounds())
	require.NoError(t, pen.BeginPath(""))
	require.NoError(t, pen.EndPath())
	assert.Nil(t, pen.Bounds())
}

func TestBoundsComponentTranslated(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ufo.pens")
	defer teardown()
	//
	glyphs := stubSet{"a": stubGlyph(drawCubicFixture)}
	pen := NewBoundsPen(glyphs)
	require.NoError(t, pen.AddComponent("a", geom.Transform{XX: 1, XY: 0, YX: 0, YY: 1, DX: -50, DY: 100}, ""))
	require.NotNil(t, pen.Bounds())
	assert.Equal(t, geom.BoundingBox{XMin: -50, YMin: 100, XMax: -42.5, YMax: 120}, *pen.Bounds())
}

func TestBoundsMissingComponentFails(t *testing.T) {
	pen := NewBoundsPen(stubSet{})
	err := pen.AddComponent("nonexistent", geom.Identity, "")
	require.Error(t, err)
	assert.Equal(t, core.EMISSING, core.Code(err))
}

func TestBoundsComponentCycle(t *testing.T) {
	glyphs := stubSet{}
	glyphs["a"] = func(pen PointPen) error {
		return pen.AddComponent("b", geom.Identity, "")
	}
	glyphs["b"] = func(pen PointPen) error {
		return pen.AddComponent("a", geom.Identity, "")
	}
	pen := NewBoundsPen(glyphs)
	err := pen.AddComponent("a", geom.Identity, "")
	require.Error(t, err)
	assert.Equal(t, core.ECYCLE, core.Code(err))
}

func TestBoundsQuadRing(t *testing.T) {
	// four off-curve points, all on-curves implied
	pen := NewBoundsPen(nil)
	require.NoError(t, pen.BeginPath(""))
	for _, c := range [4][2]float64{{0, 0}, {100, 0}, {100, 100}, {0, 100}} {
		require.NoError(t, pen.AddPoint(Point{X: c[0], Y: c[1]}))
	}
	require.NoError(t, pen.EndPath())
	require.NotNil(t, pen.Bounds())
	// implied on-curve midpoints lie on the bounding edges
	assert.Equal(t, geom.BoundingBox{XMin: 0, YMin: 0, XMax: 100, YMax: 100}, *pen.Bounds())
}

func TestTransformPointPenComposes(t *testing.T) {
	inner := NewBoundsPen(stubSet{"sq": drawRect(0, 0, 10, 10)})
	outer := NewTransformPointPen(inner, geom.Transform{XX: 1, XY: 0, YX: 0, YY: 1, DX: 5, DY: 5})
	require.NoError(t, outer.AddComponent("sq", geom.Transform{XX: 2, XY: 0, YX: 0, YY: 2, DX: 0, DY: 0}, ""))
	require.NotNil(t, inner.Bounds())
	assert.Equal(t, geom.BoundingBox{XMin: 5, YMin: 5, XMax: 25, YMax: 25}, *inner.Bounds())
}
