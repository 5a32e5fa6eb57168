package objects

import (
	"github.com/fonttools/ufoLib2/core"
	"github.com/fonttools/ufoLib2/geom"
	"github.com/fonttools/ufoLib2/pens"
)

// glyphPointPen reconstructs a glyph's outline from point pen calls.
// It is the receiving end of Glyph.DrawPoints and what GLIF parsing
// draws into.
type glyphPointPen struct {
	glyph   *Glyph
	contour *Contour
}

var _ pens.PointPen = (*glyphPointPen)(nil)

func (p *glyphPointPen) BeginPath(identifier string) error {
	if p.contour != nil {
		return core.Error(core.EINVALID, "path already begun")
	}
	p.contour = &Contour{identifier: identifier}
	return nil
}

func (p *glyphPointPen) AddPoint(pt pens.Point) error {
	if p.contour == nil {
		return core.Error(core.EINVALID, "point added outside of a path")
	}
	p.contour.Points = append(p.contour.Points, &Point{
		X:          pt.X,
		Y:          pt.Y,
		Type:       pt.Type,
		Smooth:     pt.Smooth,
		Name:       pt.Name,
		identifier: pt.Identifier,
	})
	return nil
}

func (p *glyphPointPen) EndPath() error {
	if p.contour == nil {
		return core.Error(core.EINVALID, "path ended without being begun")
	}
	p.glyph.Contours = append(p.glyph.Contours, p.contour)
	p.contour = nil
	return nil
}

func (p *glyphPointPen) AddComponent(baseGlyph string, transform geom.Transform, identifier string) error {
	if p.contour != nil {
		return core.Error(core.EINVALID, "component added inside of a path")
	}
	p.glyph.Components = append(p.glyph.Components, &Component{
		BaseGlyph:  baseGlyph,
		Transform:  transform,
		identifier: identifier,
	})
	return nil
}
