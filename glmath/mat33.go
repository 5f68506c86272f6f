package glmath

import "fmt"

// Mat33 is a 3x3 matrix stored row-major.
type Mat33[T Scalar] [9]T

// Mat33Identity returns the 3x3 identity matrix.
func Mat33Identity[T Scalar]() Mat33[T] {
	return Mat33[T]{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Mat33Translation returns the matrix translating 2D homogeneous
// coordinates by t.
func Mat33Translation[T Scalar](t Vec2[T]) Mat33[T] {
	return Mat33[T]{
		1, 0, t.X,
		0, 1, t.Y,
		0, 0, 1,
	}
}

// Mat33Scaling returns the matrix scaling by s per axis.
func Mat33Scaling[T Scalar](s Vec3[T]) Mat33[T] {
	return Mat33[T]{
		s.X, 0, 0,
		0, s.Y, 0,
		0, 0, s.Z,
	}
}

// Mat33Rotation returns the matrix rotating by angle radians around
// the normalized axis.
func Mat33Rotation[T Scalar](axis Vec3[T], angle T) Mat33[T] {
	return QuatFromAxisAngle(axis, angle).Mat33()
}

func (m Mat33[T]) String() string {
	return fmt.Sprintf("Mat33[%v %v %v; %v %v %v; %v %v %v]",
		m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8])
}

// At returns the element at row r, column c.
func (m Mat33[T]) At(r, c int) T {
	return m[r*3+c]
}

// Add returns m + a element-wise.
func (m Mat33[T]) Add(a Mat33[T]) Mat33[T] {
	var out Mat33[T]
	for i := range m {
		out[i] = m[i] + a[i]
	}
	return out
}

// Sub returns m - a element-wise.
func (m Mat33[T]) Sub(a Mat33[T]) Mat33[T] {
	var out Mat33[T]
	for i := range m {
		out[i] = m[i] - a[i]
	}
	return out
}

// Scale returns m with every element multiplied by s.
func (m Mat33[T]) Scale(s T) Mat33[T] {
	var out Mat33[T]
	for i := range m {
		out[i] = m[i] * s
	}
	return out
}

// Mul returns the matrix product m * a.
func (m Mat33[T]) Mul(a Mat33[T]) Mat33[T] {
	var out Mat33[T]
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[r*3+c] = m[r*3+0]*a[0*3+c] + m[r*3+1]*a[1*3+c] + m[r*3+2]*a[2*3+c]
		}
	}
	return out
}

// MulVec returns m * v.
func (m Mat33[T]) MulVec(v Vec3[T]) Vec3[T] {
	return Vec3[T]{
		m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		m[3]*v.X + m[4]*v.Y + m[5]*v.Z,
		m[6]*v.X + m[7]*v.Y + m[8]*v.Z,
	}
}

// Transpose returns the transpose of m.
func (m Mat33[T]) Transpose() Mat33[T] {
	return Mat33[T]{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Det returns the determinant of m.
func (m Mat33[T]) Det() T {
	return m[0]*(m[4]*m[8]-m[5]*m[7]) -
		m[1]*(m[3]*m[8]-m[5]*m[6]) +
		m[2]*(m[3]*m[7]-m[4]*m[6])
}

// Mat44 embeds m in the upper-left corner of a 4x4 identity matrix.
func (m Mat33[T]) Mat44() Mat44[T] {
	return Mat44[T]{
		m[0], m[1], m[2], 0,
		m[3], m[4], m[5], 0,
		m[6], m[7], m[8], 0,
		0, 0, 0, 1,
	}
}
