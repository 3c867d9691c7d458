package geom

import "github.com/chewxy/math32"

// Mat3 is a 2D affine transformation, the top two rows of a 3x3 matrix in
// row-major order:
//
//	| a  b  c |
//	| d  e  f |
//	| 0  0  1 |
//
// so that x' = a*x + b*y + c and y' = d*x + e*y + f.
type Mat3 struct {
	A, B, C float32
	D, E, F float32
}

// Identity returns the identity transformation.
func Identity() Mat3 {
	return Mat3{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// Translate returns a translation by t.
func Translate(t Vec2) Mat3 {
	return Mat3{
		A: 1, B: 0, C: t.X,
		D: 0, E: 1, F: t.Y,
	}
}

// Scale returns a scaling by s around the origin.
func Scale(s Vec2) Mat3 {
	return Mat3{
		A: s.X, B: 0, C: 0,
		D: 0, E: s.Y, F: 0,
	}
}

// Rotate returns a rotation by angle radians around the origin. With y
// pointing down, positive angles turn clockwise on screen.
func Rotate(angle float32) Mat3 {
	sin, cos := math32.Sin(angle), math32.Cos(angle)
	return Mat3{
		A: cos, B: -sin, C: 0,
		D: sin, E: cos, F: 0,
	}
}

// Multiply returns m * o, the transform that applies o first and then m.
func (m Mat3) Multiply(o Mat3) Mat3 {
	return Mat3{
		A: m.A*o.A + m.B*o.D,
		B: m.A*o.B + m.B*o.E,
		C: m.A*o.C + m.B*o.F + m.C,
		D: m.D*o.A + m.E*o.D,
		E: m.D*o.B + m.E*o.E,
		F: m.D*o.C + m.E*o.F + m.F,
	}
}

// TransformPoint applies m to p.
func (m Mat3) TransformPoint(p Vec2) Vec2 {
	return Vec2{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// TransformVector applies m to v without translation.
func (m Mat3) TransformVector(v Vec2) Vec2 {
	return Vec2{
		X: m.A*v.X + m.B*v.Y,
		Y: m.D*v.X + m.E*v.Y,
	}
}

// Determinant returns the determinant of the linear part of m.
func (m Mat3) Determinant() float32 {
	return m.A*m.E - m.B*m.D
}

// Invert returns the inverse of m. It returns false when m is singular, which
// happens for transforms with a zero scale axis.
func (m Mat3) Invert() (Mat3, bool) {
	det := m.Determinant()
	if math32.Abs(det) < 1e-10 {
		return Mat3{}, false
	}

	inv := 1 / det
	return Mat3{
		A: m.E * inv,
		B: -m.B * inv,
		C: (m.B*m.F - m.C*m.E) * inv,
		D: -m.D * inv,
		E: m.A * inv,
		F: (m.C*m.D - m.A*m.F) * inv,
	}, true
}

// IsIdentity reports whether m is exactly the identity.
func (m Mat3) IsIdentity() bool {
	return m == Identity()
}
