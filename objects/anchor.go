package objects

// Anchor is a named attachment position on a glyph.
type Anchor struct {
	X, Y  float64
	Name  string
	Color string

	identifier string
}

func (a *Anchor) Identifier() string      { return a.identifier }
func (a *Anchor) SetIdentifier(id string) { a.identifier = id }

// Move shifts the anchor by (dx, dy) font units.
func (a *Anchor) Move(dx, dy float64) {
	a.X += dx
	a.Y += dy
}

// Copy returns an independent copy of the anchor.
func (a *Anchor) Copy() *Anchor {
	out := *a
	return &out
}
