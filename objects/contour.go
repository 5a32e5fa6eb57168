package objects

import (
	"github.com/fonttools/ufoLib2/geom"
	"github.com/fonttools/ufoLib2/pens"
)

// Contour is an ordered sequence of Points. A contour has no name; its
// identity within a glyph is purely positional.
type Contour struct {
	Points []*Point

	identifier string
}

func (c *Contour) Identifier() string      { return c.identifier }
func (c *Contour) SetIdentifier(id string) { c.identifier = id }

// Open reports whether the contour is an open path. A contour is open
// exactly if its first point is a move point.
func (c *Contour) Open() bool {
	if len(c.Points) == 0 {
		return true
	}
	return c.Points[0].Type == pens.Move
}

// Move shifts all points by (dx, dy) font units.
func (c *Contour) Move(dx, dy float64) {
	for _, p := range c.Points {
		p.Move(dx, dy)
	}
}

// DrawPoints replays the contour into a point pen.
func (c *Contour) DrawPoints(pen pens.PointPen) error {
	if err := pen.BeginPath(c.identifier); err != nil {
		return err
	}
	for _, p := range c.Points {
		pt := pens.Point{
			X:          p.X,
			Y:          p.Y,
			Type:       p.Type,
			Smooth:     p.Smooth,
			Name:       p.Name,
			Identifier: p.identifier,
		}
		if err := pen.AddPoint(pt); err != nil {
			return err
		}
	}
	return pen.EndPath()
}

// Bounds returns the exact bounding box of the contour, or nil for an
// empty contour.
func (c *Contour) Bounds() (*geom.BoundingBox, error) {
	pen := pens.NewBoundsPen(nil)
	if err := c.DrawPoints(pen); err != nil {
		return nil, err
	}
	return pen.Bounds(), nil
}

// ControlBounds returns the bounding box of all points of the contour,
// including off-curve controls, or nil for an empty contour.
func (c *Contour) ControlBounds() (*geom.BoundingBox, error) {
	pen := pens.NewControlBoundsPen(nil)
	if err := c.DrawPoints(pen); err != nil {
		return nil, err
	}
	return pen.Bounds(), nil
}

// Copy returns a deep copy of the contour.
func (c *Contour) Copy() *Contour {
	out := &Contour{identifier: c.identifier}
	if c.Points != nil {
		out.Points = make([]*Point, len(c.Points))
		for i, p := range c.Points {
			out.Points[i] = p.Copy()
		}
	}
	return out
}
