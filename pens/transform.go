package pens

import (
	"github.com/fonttools/ufoLib2/geom"
)

// TransformPointPen filters all point and component coordinates through
// an affine transformation before forwarding them to another pen.
type TransformPointPen struct {
	out PointPen
	t   geom.Transform
}

var _ PointPen = (*TransformPointPen)(nil)

// NewTransformPointPen wraps out so that everything drawn into the
// returned pen arrives at out transformed by t.
func NewTransformPointPen(out PointPen, t geom.Transform) *TransformPointPen {
	return &TransformPointPen{out: out, t: t}
}

func (p *TransformPointPen) BeginPath(identifier string) error {
	return p.out.BeginPath(identifier)
}

func (p *TransformPointPen) AddPoint(pt Point) error {
	pt.X, pt.Y = p.t.Apply(pt.X, pt.Y)
	return p.out.AddPoint(pt)
}

func (p *TransformPointPen) EndPath() error {
	return p.out.EndPath()
}

func (p *TransformPointPen) AddComponent(baseGlyph string, transform geom.Transform, identifier string) error {
	return p.out.AddComponent(baseGlyph, p.t.Concat(transform), identifier)
}
