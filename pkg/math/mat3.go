package math

import "math"

// Mat3 is a 3x3 matrix in column-major order. Columns of a rotation matrix
// are the images of the X, Y and Z axes.
type Mat3 [9]float64

// Mat3FromBasis builds a matrix whose columns are x, y and z.
func Mat3FromBasis(x, y, z Vec3) Mat3 {
	return Mat3{
		x.X, x.Y, x.Z,
		y.X, y.Y, y.Z,
		z.X, z.Y, z.Z,
	}
}

// At returns the element at row, col.
func (m Mat3) At(row, col int) float64 {
	return m[col*3+row]
}

// Col returns column i as a vector.
func (m Mat3) Col(i int) Vec3 {
	return Vec3{m[i*3], m[i*3+1], m[i*3+2]}
}

// MulVec3 returns m * v.
func (m Mat3) MulVec3(v Vec3) Vec3 {
	return m.Col(0).Scale(v.X).Add(m.Col(1).Scale(v.Y)).Add(m.Col(2).Scale(v.Z))
}

// Transpose returns the transposed matrix.
func (m Mat3) Transpose() Mat3 {
	return Mat3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Sanitize replaces NaN and infinite elements with zero.
func (m Mat3) Sanitize() Mat3 {
	var out Mat3
	for i, v := range m {
		out[i] = SafeComponent(v)
	}
	return out
}

// Quat converts a rotation matrix to a quaternion.
func (m Mat3) Quat() Quat {
	r00, r11, r22 := m.At(0, 0), m.At(1, 1), m.At(2, 2)
	trace := r00 + r11 + r22

	var q Quat
	switch {
	case trace > 0:
		s := 0.5 / math.Sqrt(trace+1)
		q = Quat{
			X: (m.At(2, 1) - m.At(1, 2)) * s,
			Y: (m.At(0, 2) - m.At(2, 0)) * s,
			Z: (m.At(1, 0) - m.At(0, 1)) * s,
			W: 0.25 / s,
		}
	case r00 > r11 && r00 > r22:
		s := 2 * math.Sqrt(1+r00-r11-r22)
		q = Quat{
			X: 0.25 * s,
			Y: (m.At(0, 1) + m.At(1, 0)) / s,
			Z: (m.At(0, 2) + m.At(2, 0)) / s,
			W: (m.At(2, 1) - m.At(1, 2)) / s,
		}
	case r11 > r22:
		s := 2 * math.Sqrt(1+r11-r00-r22)
		q = Quat{
			X: (m.At(0, 1) + m.At(1, 0)) / s,
			Y: 0.25 * s,
			Z: (m.At(1, 2) + m.At(2, 1)) / s,
			W: (m.At(0, 2) - m.At(2, 0)) / s,
		}
	default:
		s := 2 * math.Sqrt(1+r22-r00-r11)
		q = Quat{
			X: (m.At(0, 2) + m.At(2, 0)) / s,
			Y: (m.At(1, 2) + m.At(2, 1)) / s,
			Z: 0.25 * s,
			W: (m.At(1, 0) - m.At(0, 1)) / s,
		}
	}
	return q.Sanitize()
}

// Mat4 returns the matrix embedded in a 4x4 transform with no translation.
func (m Mat3) Mat4() Mat4 {
	return Mat4{
		m[0], m[1], m[2], 0,
		m[3], m[4], m[5], 0,
		m[6], m[7], m[8], 0,
		0, 0, 0, 1,
	}
}
