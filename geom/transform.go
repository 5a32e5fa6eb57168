/*
Package geom provides the small geometric value types used throughout the
UFO object model: 2×3 affine transformations, bounding boxes and Bézier
extrema computation.

Transformations follow the conventions of the GLIF component element,
i.e. a point (x, y) maps to

	x' = XX·x + YX·y + DX
	y' = XY·x + YY·y + DY

which corresponds to the attribute sextet
(xScale, xyScale, yxScale, yScale, xOffset, yOffset).
*/
package geom

// Transform is a 2×3 affine transformation matrix.
type Transform struct {
	XX, XY, YX, YY, DX, DY float64
}

// Identity is the do-nothing transformation.
var Identity = Transform{1, 0, 0, 1, 0, 0}

// IsIdentity returns true if t maps every point onto itself.
func (t Transform) IsIdentity() bool {
	return t == Identity
}

// Apply transforms a single point.
func (t Transform) Apply(x, y float64) (float64, float64) {
	return t.XX*x + t.YX*y + t.DX, t.XY*x + t.YY*y + t.DY
}

// Concat returns the transformation that first applies u, then t.
func (t Transform) Concat(u Transform) Transform {
	return Transform{
		XX: u.XX*t.XX + u.XY*t.YX,
		XY: u.XX*t.XY + u.XY*t.YY,
		YX: u.YX*t.XX + u.YY*t.YX,
		YY: u.YX*t.XY + u.YY*t.YY,
		DX: t.XX*u.DX + t.YX*u.DY + t.DX,
		DY: t.XY*u.DX + t.YY*u.DY + t.DY,
	}
}

// Translate returns t with an additional translation applied before t.
func (t Transform) Translate(dx, dy float64) Transform {
	return t.Concat(Transform{1, 0, 0, 1, dx, dy})
}

// Scale returns t with an additional scale applied before t.
func (t Transform) Scale(sx, sy float64) Transform {
	return t.Concat(Transform{sx, 0, 0, sy, 0, 0})
}

// Array returns the matrix as the GLIF attribute sextet
// (xScale, xyScale, yxScale, yScale, xOffset, yOffset).
func (t Transform) Array() [6]float64 {
	return [6]float64{t.XX, t.XY, t.YX, t.YY, t.DX, t.DY}
}

// FromArray builds a Transform from the GLIF attribute sextet.
func FromArray(a [6]float64) Transform {
	return Transform{a[0], a[1], a[2], a[3], a[4], a[5]}
}
