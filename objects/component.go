package objects

import (
	"github.com/fonttools/ufoLib2/geom"
	"github.com/fonttools/ufoLib2/pens"
)

// Component is a reference to another glyph of the same layer, placed
// under an affine transformation. The base glyph is referenced by name
// only; resolution happens against a Layer supplied by the caller.
type Component struct {
	BaseGlyph string
	Transform geom.Transform

	identifier string
}

// NewComponent returns a component referencing baseGlyph under t.
func NewComponent(baseGlyph string, t geom.Transform) *Component {
	return &Component{BaseGlyph: baseGlyph, Transform: t}
}

func (c *Component) Identifier() string      { return c.identifier }
func (c *Component) SetIdentifier(id string) { c.identifier = id }

// Move shifts the component by (dx, dy) font units.
func (c *Component) Move(dx, dy float64) {
	c.Transform.DX += dx
	c.Transform.DY += dy
}

// DrawPoints replays the component reference into a point pen.
func (c *Component) DrawPoints(pen pens.PointPen) error {
	return pen.AddComponent(c.BaseGlyph, c.Transform, c.identifier)
}

// Bounds returns the exact bounding box of the component resolved
// against layer. A missing base glyph is an error.
func (c *Component) Bounds(layer *Layer) (*geom.BoundingBox, error) {
	pen := pens.NewBoundsPen(resolver(layer))
	if err := c.DrawPoints(pen); err != nil {
		return nil, err
	}
	return pen.Bounds(), nil
}

// ControlBounds is Bounds over control points only.
func (c *Component) ControlBounds(layer *Layer) (*geom.BoundingBox, error) {
	pen := pens.NewControlBoundsPen(resolver(layer))
	if err := c.DrawPoints(pen); err != nil {
		return nil, err
	}
	return pen.Bounds(), nil
}

// Copy returns an independent copy of the component.
func (c *Component) Copy() *Component {
	out := *c
	return &out
}
