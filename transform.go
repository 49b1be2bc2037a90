package footlight

import "math"

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// multiplyAffine multiplies two 2D affine matrices: result = m * n, so n
// applies to points first.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(m, n [6]float64) [6]float64 {
	return [6]float64{
		m[0]*n[0] + m[2]*n[1],
		m[1]*n[0] + m[3]*n[1],
		m[0]*n[2] + m[2]*n[3],
		m[1]*n[2] + m[3]*n[3],
		m[0]*n[4] + m[2]*n[5] + m[4],
		m[1]*n[4] + m[3]*n[5] + m[5],
	}
}

// translateAffine appends a translation: points move by (tx, ty) before m
// applies. Equivalent to multiplyAffine with a pure translation, without
// the full multiply.
func translateAffine(m [6]float64, tx, ty float64) [6]float64 {
	return [6]float64{
		m[0], m[1], m[2], m[3],
		m[0]*tx + m[2]*ty + m[4],
		m[1]*tx + m[3]*ty + m[5],
	}
}

// scaleAffine appends a scale about the current origin.
func scaleAffine(m [6]float64, sx, sy float64) [6]float64 {
	return [6]float64{
		m[0] * sx, m[1] * sx,
		m[2] * sy, m[3] * sy,
		m[4], m[5],
	}
}

// rotateAffine appends a rotation about the current origin. The angle is in
// radians and turns clockwise on a y-down surface.
func rotateAffine(m [6]float64, radians float64) [6]float64 {
	sin, cos := math.Sincos(radians)
	return [6]float64{
		m[0]*cos + m[2]*sin,
		m[1]*cos + m[3]*sin,
		m[2]*cos - m[0]*sin,
		m[3]*cos - m[1]*sin,
		m[4], m[5],
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// transformedAABB computes the axis-aligned bounding box of a w x h
// rectangle anchored at the origin after the given transform. Zero
// allocations.
func transformedAABB(m [6]float64, w, h float64) Rect {
	a, b, c, d, tx, ty := m[0], m[2], m[1], m[3], m[4], m[5]

	// Transform four corners: (0,0), (w,0), (w,h), (0,h)
	x0, y0 := tx, ty
	x1, y1 := a*w+tx, c*w+ty
	x2, y2 := a*w+b*h+tx, c*w+d*h+ty
	x3, y3 := b*h+tx, d*h+ty

	minX := math.Min(math.Min(x0, x1), math.Min(x2, x3))
	minY := math.Min(math.Min(y0, y1), math.Min(y2, y3))
	maxX := math.Max(math.Max(x0, x1), math.Max(x2, x3))
	maxY := math.Max(math.Max(y0, y1), math.Max(y2, y3))

	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
