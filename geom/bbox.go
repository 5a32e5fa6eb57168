package geom

// BoundingBox is a rectangle given by its extrema. The zero value is not
// a valid box; use BoxAround or Union to build one.
type BoundingBox struct {
	XMin, YMin, XMax, YMax float64
}

// BoxAround returns the degenerate box containing a single point.
func BoxAround(x, y float64) BoundingBox {
	return BoundingBox{x, y, x, y}
}

// Extend grows b to include the point (x, y).
func (b BoundingBox) Extend(x, y float64) BoundingBox {
	if x < b.XMin {
		b.XMin = x
	}
	if x > b.XMax {
		b.XMax = x
	}
	if y < b.YMin {
		b.YMin = y
	}
	if y > b.YMax {
		b.YMax = y
	}
	return b
}

// Union returns the smallest box containing both operands. Either operand
// may be nil, meaning "no box yet"; the result is nil only if both are.
func Union(b1, b2 *BoundingBox) *BoundingBox {
	if b1 == nil {
		return b2
	}
	if b2 == nil {
		return b1
	}
	u := b1.Extend(b2.XMin, b2.YMin).Extend(b2.XMax, b2.YMax)
	return &u
}

// TransformBox returns the bounding box of the four transformed corners of b.
func TransformBox(t Transform, b BoundingBox) BoundingBox {
	x0, y0 := t.Apply(b.XMin, b.YMin)
	out := BoxAround(x0, y0)
	for _, c := range [3][2]float64{{b.XMin, b.YMax}, {b.XMax, b.YMin}, {b.XMax, b.YMax}} {
		out = out.Extend(t.Apply(c[0], c[1]))
	}
	return out
}
