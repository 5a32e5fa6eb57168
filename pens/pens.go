package pens

import (
	"github.com/fonttools/ufoLib2/geom"
)

// PointType classifies a point within a contour. The empty string denotes
// an off-curve control point.
//
// See https://unifiedfontobject.org/versions/ufo3/glyphs/glif/#point-types.
type PointType string

const (
	OffCurve PointType = ""
	Move     PointType = "move"
	Line     PointType = "line"
	Curve    PointType = "curve"
	QCurve   PointType = "qcurve"
)

// Point carries the full point event of the protocol.
type Point struct {
	X, Y       float64
	Type       PointType
	Smooth     bool
	Name       string
	Identifier string
}

// PointPen is the abstract point-pen protocol. Paths are bracketed by
// BeginPath/EndPath; components may occur outside of paths.
type PointPen interface {
	BeginPath(identifier string) error
	AddPoint(pt Point) error
	EndPath() error
	AddComponent(baseGlyph string, transform geom.Transform, identifier string) error
}

// Drawable is anything that can replay its outline into a point pen.
type Drawable interface {
	DrawPoints(pen PointPen) error
}

// GlyphSet resolves component base-glyph references by name. Implemented
// by objects.Layer; resolution may trigger a lazy glyph load.
type GlyphSet interface {
	DrawableGlyph(name string) (Drawable, error)
}
