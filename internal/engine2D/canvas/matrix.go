package canvas

import "math"

// Matrix is a 2D affine transform in canvas argument order:
//
//	x' = A*x + C*y + E
//	y' = B*x + D*y + F
//
// so Matrix{a, b, c, d, e, f} matches setTransform(a, b, c, d, e, f).
type Matrix struct {
	A, B, C, D, E, F float64
}

// Identity returns the identity transform.
func Identity() Matrix {
	return Matrix{A: 1, D: 1}
}

// Rotation returns a rotation by angle radians.
func Rotation(angle float64) Matrix {
	s, c := math.Sincos(angle)
	return Matrix{A: c, B: s, C: -s, D: c}
}

// Multiply returns m x n: n is applied first, then m.
func (m Matrix) Multiply(n Matrix) Matrix {
	return Matrix{
		A: m.A*n.A + m.C*n.B,
		B: m.B*n.A + m.D*n.B,
		C: m.A*n.C + m.C*n.D,
		D: m.B*n.C + m.D*n.D,
		E: m.A*n.E + m.C*n.F + m.E,
		F: m.B*n.E + m.D*n.F + m.F,
	}
}

// Rotate returns m followed by a rotation applied in user space, the way
// context.rotate composes.
func (m Matrix) Rotate(angle float64) Matrix {
	return m.Multiply(Rotation(angle))
}

// Apply transforms a point.
func (m Matrix) Apply(x, y float64) (float64, float64) {
	return m.A*x + m.C*y + m.E, m.B*x + m.D*y + m.F
}

// IsIdentity reports whether m is exactly the identity.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}
