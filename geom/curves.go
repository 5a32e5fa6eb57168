package geom

import "math"

// CubicBounds returns the exact bounding box of a cubic Bézier segment
// with on-curve endpoints p0/p3 and control points p1/p2.
func CubicBounds(x0, y0, x1, y1, x2, y2, x3, y3 float64) BoundingBox {
	b := BoxAround(x0, y0).Extend(x3, y3)
	for _, t := range cubicExtrema(x0, x1, x2, x3) {
		b = b.Extend(evalCubic(t, x0, x1, x2, x3), evalCubic(t, y0, y1, y2, y3))
	}
	for _, t := range cubicExtrema(y0, y1, y2, y3) {
		b = b.Extend(evalCubic(t, x0, x1, x2, x3), evalCubic(t, y0, y1, y2, y3))
	}
	return b
}

// QuadBounds returns the exact bounding box of a quadratic Bézier segment
// with on-curve endpoints p0/p2 and control point p1.
func QuadBounds(x0, y0, x1, y1, x2, y2 float64) BoundingBox {
	b := BoxAround(x0, y0).Extend(x2, y2)
	if t, ok := quadExtremum(x0, x1, x2); ok {
		b = b.Extend(evalQuad(t, x0, x1, x2), evalQuad(t, y0, y1, y2))
	}
	if t, ok := quadExtremum(y0, y1, y2); ok {
		b = b.Extend(evalQuad(t, x0, x1, x2), evalQuad(t, y0, y1, y2))
	}
	return b
}

// cubicExtrema solves B'(t) = 0 for one coordinate axis and returns the
// roots that fall strictly inside (0, 1).
func cubicExtrema(p0, p1, p2, p3 float64) []float64 {
	// derivative coefficients of a·t² + b·t + c
	a := 3 * (-p0 + 3*p1 - 3*p2 + p3)
	b := 6 * (p0 - 2*p1 + p2)
	c := 3 * (p1 - p0)
	var roots []float64
	if math.Abs(a) < 1e-12 {
		if math.Abs(b) >= 1e-12 {
			roots = append(roots, -c/b)
		}
	} else {
		disc := b*b - 4*a*c
		if disc >= 0 {
			sq := math.Sqrt(disc)
			roots = append(roots, (-b+sq)/(2*a), (-b-sq)/(2*a))
		}
	}
	out := roots[:0]
	for _, t := range roots {
		if t > 0 && t < 1 {
			out = append(out, t)
		}
	}
	return out
}

func quadExtremum(p0, p1, p2 float64) (float64, bool) {
	denom := p0 - 2*p1 + p2
	if math.Abs(denom) < 1e-12 {
		return 0, false
	}
	t := (p0 - p1) / denom
	return t, t > 0 && t < 1
}

func evalCubic(t, p0, p1, p2, p3 float64) float64 {
	mt := 1 - t
	return mt*mt*mt*p0 + 3*mt*mt*t*p1 + 3*mt*t*t*p2 + t*t*t*p3
}

func evalQuad(t, p0, p1, p2 float64) float64 {
	mt := 1 - t
	return mt*mt*p0 + 2*mt*t*p1 + t*t*p2
}
