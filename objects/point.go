package objects

import "github.com/fonttools/ufoLib2/pens"

// Point is a single point of a contour. Off-curve control points have
// type pens.OffCurve and carry no on-curve semantics.
type Point struct {
	X, Y float64

	// Type is one of move, line, curve, qcurve or off-curve.
	Type pens.PointType

	// Smooth marks a smooth curvature through this point.
	Smooth bool

	// Name is a free-form label, no uniqueness required.
	Name string

	identifier string
}

func (p *Point) Identifier() string      { return p.identifier }
func (p *Point) SetIdentifier(id string) { p.identifier = id }

// Move shifts the point by (dx, dy) font units.
func (p *Point) Move(dx, dy float64) {
	p.X += dx
	p.Y += dy
}

// Copy returns an independent copy of the point.
func (p *Point) Copy() *Point {
	q := *p
	return &q
}
