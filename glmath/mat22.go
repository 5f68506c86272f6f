package glmath

import (
	"fmt"
	"math"
)

// Mat22 is a 2x2 matrix stored row-major.
type Mat22[T Scalar] [4]T

// Mat22Identity returns the 2x2 identity matrix.
func Mat22Identity[T Scalar]() Mat22[T] {
	return Mat22[T]{
		1, 0,
		0, 1,
	}
}

// Mat22Rotation returns the matrix rotating by angle radians
// counter-clockwise.
func Mat22Rotation[T Scalar](angle T) Mat22[T] {
	s := T(math.Sin(float64(angle)))
	c := T(math.Cos(float64(angle)))
	return Mat22[T]{
		c, -s,
		s, c,
	}
}

// Mat22Scaling returns the matrix scaling by s per axis.
func Mat22Scaling[T Scalar](s Vec2[T]) Mat22[T] {
	return Mat22[T]{
		s.X, 0,
		0, s.Y,
	}
}

func (m Mat22[T]) String() string {
	return fmt.Sprintf("Mat22[%v %v; %v %v]", m[0], m[1], m[2], m[3])
}

// At returns the element at row r, column c.
func (m Mat22[T]) At(r, c int) T {
	return m[r*2+c]
}

// Add returns m + a element-wise.
func (m Mat22[T]) Add(a Mat22[T]) Mat22[T] {
	var out Mat22[T]
	for i := range m {
		out[i] = m[i] + a[i]
	}
	return out
}

// Sub returns m - a element-wise.
func (m Mat22[T]) Sub(a Mat22[T]) Mat22[T] {
	var out Mat22[T]
	for i := range m {
		out[i] = m[i] - a[i]
	}
	return out
}

// Scale returns m with every element multiplied by s.
func (m Mat22[T]) Scale(s T) Mat22[T] {
	var out Mat22[T]
	for i := range m {
		out[i] = m[i] * s
	}
	return out
}

// Mul returns the matrix product m * a.
func (m Mat22[T]) Mul(a Mat22[T]) Mat22[T] {
	var out Mat22[T]
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			out[r*2+c] = m[r*2+0]*a[0*2+c] + m[r*2+1]*a[1*2+c]
		}
	}
	return out
}

// MulVec returns m * v.
func (m Mat22[T]) MulVec(v Vec2[T]) Vec2[T] {
	return Vec2[T]{
		m[0]*v.X + m[1]*v.Y,
		m[2]*v.X + m[3]*v.Y,
	}
}

// Transpose returns the transpose of m.
func (m Mat22[T]) Transpose() Mat22[T] {
	return Mat22[T]{
		m[0], m[2],
		m[1], m[3],
	}
}

// Det returns the determinant of m.
func (m Mat22[T]) Det() T {
	return m[0]*m[3] - m[1]*m[2]
}
