package pens

import (
	"github.com/fonttools/ufoLib2/core"
	"github.com/fonttools/ufoLib2/geom"
)

// BoundsPen accumulates the bounding box of everything drawn into it.
// In exact mode curve segments contribute their true extrema; in
// control-point mode every point contributes directly, which is cheaper
// but overshoots for extruding curvatures.
//
// Component references are resolved against the glyph set supplied at
// construction time. A missing base glyph is an error (EMISSING), not a
// silent no-op; a reference cycle yields ECYCLE.
type BoundsPen struct {
	glyphs      GlyphSet
	controlOnly bool
	bounds      *geom.BoundingBox
	path        []Point
	visiting    map[string]bool
}

var _ PointPen = (*BoundsPen)(nil)

// NewBoundsPen returns a pen computing exact outline bounds.
// glyphs may be nil for glyphs without components.
func NewBoundsPen(glyphs GlyphSet) *BoundsPen {
	return &BoundsPen{glyphs: glyphs, visiting: make(map[string]bool)}
}

// NewControlBoundsPen returns a pen computing control-point bounds.
// glyphs may be nil for glyphs without components.
func NewControlBoundsPen(glyphs GlyphSet) *BoundsPen {
	return &BoundsPen{glyphs: glyphs, controlOnly: true, visiting: make(map[string]bool)}
}

// Bounds returns the accumulated box, or nil if nothing was drawn.
func (p *BoundsPen) Bounds() *geom.BoundingBox {
	return p.bounds
}

func (p *BoundsPen) BeginPath(identifier string) error {
	p.path = p.path[:0]
	return nil
}

func (p *BoundsPen) AddPoint(pt Point) error {
	p.path = append(p.path, pt)
	return nil
}

func (p *BoundsPen) EndPath() error {
	p.addPathBounds(p.path)
	p.path = p.path[:0]
	return nil
}

func (p *BoundsPen) AddComponent(baseGlyph string, transform geom.Transform, identifier string) error {
	if p.visiting[baseGlyph] {
		return core.Error(core.ECYCLE, "component reference cycle through glyph %q", baseGlyph)
	}
	if p.glyphs == nil {
		return core.Error(core.EMISSING, "no glyph set given to resolve component %q", baseGlyph)
	}
	base, err := p.glyphs.DrawableGlyph(baseGlyph)
	if err != nil {
		return err
	}
	p.visiting[baseGlyph] = true
	defer delete(p.visiting, baseGlyph)
	return base.DrawPoints(NewTransformPointPen(p, transform))
}

func (p *BoundsPen) extend(x, y float64) {
	if p.bounds == nil {
		b := geom.BoxAround(x, y)
		p.bounds = &b
		return
	}
	b := p.bounds.Extend(x, y)
	p.bounds = &b
}

func (p *BoundsPen) union(b geom.BoundingBox) {
	p.bounds = geom.Union(p.bounds, &b)
}

func (p *BoundsPen) addPathBounds(pts []Point) {
	if len(pts) == 0 {
		return
	}
	if p.controlOnly {
		for _, pt := range pts {
			p.extend(pt.X, pt.Y)
		}
		return
	}
	lastOn := -1
	for i, pt := range pts {
		if pt.Type != OffCurve {
			lastOn = i
		}
	}
	if lastOn < 0 {
		p.addQuadRing(pts)
		return
	}

	// Walk segments on-curve to on-curve. Closed contours wrap around,
	// starting after the final on-curve point.
	var seq []Point
	start := pts[lastOn]
	if pts[0].Type == Move { // open contour
		start = pts[0]
		seq = pts[1:]
	} else {
		seq = append(append(seq, pts[lastOn+1:]...), pts[:lastOn+1]...)
	}
	p.extend(start.X, start.Y)

	var offs []Point
	for _, pt := range seq {
		if pt.Type == OffCurve {
			offs = append(offs, pt)
			continue
		}
		p.addSegmentBounds(start, offs, pt)
		start = pt
		offs = offs[:0]
	}
}

func (p *BoundsPen) addSegmentBounds(start Point, offs []Point, end Point) {
	switch {
	case len(offs) == 0:
		p.extend(end.X, end.Y)
	case end.Type == QCurve:
		cur := start
		for i := 0; i < len(offs)-1; i++ {
			implied := Point{X: (offs[i].X + offs[i+1].X) / 2, Y: (offs[i].Y + offs[i+1].Y) / 2}
			p.union(geom.QuadBounds(cur.X, cur.Y, offs[i].X, offs[i].Y, implied.X, implied.Y))
			cur = implied
		}
		last := offs[len(offs)-1]
		p.union(geom.QuadBounds(cur.X, cur.Y, last.X, last.Y, end.X, end.Y))
	case len(offs) == 1:
		p.union(geom.QuadBounds(start.X, start.Y, offs[0].X, offs[0].Y, end.X, end.Y))
	case len(offs) == 2:
		p.union(geom.CubicBounds(start.X, start.Y, offs[0].X, offs[0].Y,
			offs[1].X, offs[1].Y, end.X, end.Y))
	default:
		// "super Bézier" with more than two controls: fall back to the
		// conservative hull of all points
		tracer().Infof("curve segment with %d off-curve points, using control hull", len(offs))
		p.extend(start.X, start.Y)
		for _, o := range offs {
			p.extend(o.X, o.Y)
		}
		p.extend(end.X, end.Y)
	}
}

// addQuadRing handles TrueType contours consisting solely of off-curve
// points, where every midpoint between neighbors is an implied on-curve.
func (p *BoundsPen) addQuadRing(offs []Point) {
	n := len(offs)
	if n == 1 {
		p.extend(offs[0].X, offs[0].Y)
		return
	}
	mid := func(a, b Point) Point {
		return Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
	}
	for i := 0; i < n; i++ {
		prev := offs[(i+n-1)%n]
		next := offs[(i+1)%n]
		m0 := mid(prev, offs[i])
		m1 := mid(offs[i], next)
		p.union(geom.QuadBounds(m0.X, m0.Y, offs[i].X, offs[i].Y, m1.X, m1.Y))
	}
}
