package arbor

import "github.com/chewxy/math32"

// Mat2D is a 2D affine matrix stored as [a, b, c, d, tx, ty]:
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
type Mat2D [6]float32

// IdentityMat is the identity affine matrix.
var IdentityMat = Mat2D{1, 0, 0, 1, 0, 0}

// TranslateMat returns a translation matrix.
func TranslateMat(x, y float32) Mat2D { return Mat2D{1, 0, 0, 1, x, y} }

// ScaleMat returns a scale matrix.
func ScaleMat(sx, sy float32) Mat2D { return Mat2D{sx, 0, 0, sy, 0, 0} }

// RotationMat returns a rotation matrix for angle radians.
func RotationMat(angle float32) Mat2D {
	sin, cos := math32.Sincos(angle)
	return Mat2D{cos, sin, -sin, cos, 0, 0}
}

// computeLocalTransform composes Scale -> Rotate -> Translate(x, y).
func computeLocalTransform(x, y, rotation, scaleX, scaleY float32) Mat2D {
	m := IdentityMat
	if rotation != 0 {
		m = RotationMat(rotation)
	}
	m[0] *= scaleX
	m[1] *= scaleX
	m[2] *= scaleY
	m[3] *= scaleY
	m[4] = x
	m[5] = y
	return m
}

// Multiply returns m * c (c applied first).
func (m Mat2D) Multiply(c Mat2D) Mat2D {
	return Mat2D{
		m[0]*c[0] + m[2]*c[1],
		m[1]*c[0] + m[3]*c[1],
		m[0]*c[2] + m[2]*c[3],
		m[1]*c[2] + m[3]*c[3],
		m[0]*c[4] + m[2]*c[5] + m[4],
		m[1]*c[4] + m[3]*c[5] + m[5],
	}
}

// Determinant returns ad - bc.
func (m Mat2D) Determinant() float32 { return m[0]*m[3] - m[1]*m[2] }

// Invert returns the inverse of m and false when m is singular.
func (m Mat2D) Invert() (Mat2D, bool) {
	det := m.Determinant()
	if det == 0 || math32.IsNaN(det) {
		return IdentityMat, false
	}
	inv := 1 / det
	return Mat2D{
		m[3] * inv,
		-m[1] * inv,
		-m[2] * inv,
		m[0] * inv,
		(m[2]*m[5] - m[3]*m[4]) * inv,
		(m[1]*m[4] - m[0]*m[5]) * inv,
	}, true
}

// Apply transforms the point p.
func (m Mat2D) Apply(p Vec2) Vec2 {
	return Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// Translation returns the (tx, ty) component.
func (m Mat2D) Translation() Vec2 { return Vec2{m[4], m[5]} }

// MaxScale returns the larger of the two axis scale factors, used to pick
// flattening tolerances and stroke widths in device space.
func (m Mat2D) MaxScale() float32 {
	sx := math32.Hypot(m[0], m[1])
	sy := math32.Hypot(m[2], m[3])
	return max(sx, sy)
}

// transformAABB returns the bounding box of b after transformation by m.
func transformAABB(m Mat2D, b AABB) AABB {
	if b.IsEmpty() {
		return b
	}
	out := emptyAABB
	out = out.Expand(m.Apply(Vec2{b.MinX, b.MinY}))
	out = out.Expand(m.Apply(Vec2{b.MaxX, b.MinY}))
	out = out.Expand(m.Apply(Vec2{b.MaxX, b.MaxY}))
	out = out.Expand(m.Apply(Vec2{b.MinX, b.MaxY}))
	return out
}
