package glmath

import "fmt"

// Mat44 is a 4x4 matrix stored row-major.
type Mat44[T Scalar] [16]T

// Mat44Identity returns the 4x4 identity matrix.
func Mat44Identity[T Scalar]() Mat44[T] {
	return Mat44[T]{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mat44Translation returns the matrix translating 3D homogeneous
// coordinates by t.
func Mat44Translation[T Scalar](t Vec3[T]) Mat44[T] {
	return Mat44[T]{
		1, 0, 0, t.X,
		0, 1, 0, t.Y,
		0, 0, 1, t.Z,
		0, 0, 0, 1,
	}
}

// Mat44Scaling returns the matrix scaling by s per axis.
func Mat44Scaling[T Scalar](s Vec3[T]) Mat44[T] {
	return Mat44[T]{
		s.X, 0, 0, 0,
		0, s.Y, 0, 0,
		0, 0, s.Z, 0,
		0, 0, 0, 1,
	}
}

// Mat44Rotation returns the matrix rotating by angle radians around
// the normalized axis.
func Mat44Rotation[T Scalar](axis Vec3[T], angle T) Mat44[T] {
	return QuatFromAxisAngle(axis, angle).Mat33().Mat44()
}

func (m Mat44[T]) String() string {
	return fmt.Sprintf("Mat44[%v %v %v %v; %v %v %v %v; %v %v %v %v; %v %v %v %v]",
		m[0], m[1], m[2], m[3],
		m[4], m[5], m[6], m[7],
		m[8], m[9], m[10], m[11],
		m[12], m[13], m[14], m[15])
}

// At returns the element at row r, column c.
func (m Mat44[T]) At(r, c int) T {
	return m[r*4+c]
}

// Add returns m + a element-wise.
func (m Mat44[T]) Add(a Mat44[T]) Mat44[T] {
	var out Mat44[T]
	for i := range m {
		out[i] = m[i] + a[i]
	}
	return out
}

// Sub returns m - a element-wise.
func (m Mat44[T]) Sub(a Mat44[T]) Mat44[T] {
	var out Mat44[T]
	for i := range m {
		out[i] = m[i] - a[i]
	}
	return out
}

// Scale returns m with every element multiplied by s.
func (m Mat44[T]) Scale(s T) Mat44[T] {
	var out Mat44[T]
	for i := range m {
		out[i] = m[i] * s
	}
	return out
}

// Mul returns the matrix product m * a.
func (m Mat44[T]) Mul(a Mat44[T]) Mat44[T] {
	var out Mat44[T]
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			var sum T
			for k := 0; k < 4; k++ {
				sum += m[r*4+k] * a[k*4+c]
			}
			out[r*4+c] = sum
		}
	}
	return out
}

// MulVec returns m * v.
func (m Mat44[T]) MulVec(v Vec4[T]) Vec4[T] {
	return Vec4[T]{
		m[0]*v.X + m[1]*v.Y + m[2]*v.Z + m[3]*v.W,
		m[4]*v.X + m[5]*v.Y + m[6]*v.Z + m[7]*v.W,
		m[8]*v.X + m[9]*v.Y + m[10]*v.Z + m[11]*v.W,
		m[12]*v.X + m[13]*v.Y + m[14]*v.Z + m[15]*v.W,
	}
}

// Transpose returns the transpose of m.
func (m Mat44[T]) Transpose() Mat44[T] {
	var out Mat44[T]
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[c*4+r] = m[r*4+c]
		}
	}
	return out
}

// Det returns the determinant of m, expanded along the first row.
func (m Mat44[T]) Det() T {
	minor := func(r, c int) Mat33[T] {
		var out Mat33[T]
		i := 0
		for mr := 0; mr < 4; mr++ {
			if mr == r {
				continue
			}
			for mc := 0; mc < 4; mc++ {
				if mc == c {
					continue
				}
				out[i] = m[mr*4+mc]
				i++
			}
		}
		return out
	}
	return m[0]*minor(0, 0).Det() -
		m[1]*minor(0, 1).Det() +
		m[2]*minor(0, 2).Det() -
		m[3]*minor(0, 3).Det()
}

// Mat33 extracts the upper-left 3x3 corner of m.
func (m Mat44[T]) Mat33() Mat33[T] {
	return Mat33[T]{
		m[0], m[1], m[2],
		m[4], m[5], m[6],
		m[8], m[9], m[10],
	}
}
