package glmath

import (
	"fmt"
	"math"
)

// Vec4 is a vector with 4 coordinates.
type Vec4[T Scalar] struct {
	X T `json:"x"`
	Y T `json:"y"`
	Z T `json:"z"`
	W T `json:"w"`
}

// NewVec4 builds a Vec4 from its coordinates.
func NewVec4[T Scalar](x, y, z, w T) Vec4[T] {
	return Vec4[T]{X: x, Y: y, Z: z, W: w}
}

func (v Vec4[T]) String() string {
	return fmt.Sprintf("Vec4(%v, %v, %v, %v)", v.X, v.Y, v.Z, v.W)
}

// Add returns v + u.
func (v Vec4[T]) Add(u Vec4[T]) Vec4[T] {
	return Vec4[T]{v.X + u.X, v.Y + u.Y, v.Z + u.Z, v.W + u.W}
}

// Sub returns v - u.
func (v Vec4[T]) Sub(u Vec4[T]) Vec4[T] {
	return Vec4[T]{v.X - u.X, v.Y - u.Y, v.Z - u.Z, v.W - u.W}
}

// Neg returns -v.
func (v Vec4[T]) Neg() Vec4[T] {
	return Vec4[T]{-v.X, -v.Y, -v.Z, -v.W}
}

// Scale returns v with every coordinate multiplied by s.
func (v Vec4[T]) Scale(s T) Vec4[T] {
	return Vec4[T]{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// Mul returns the component-wise product of v and u.
func (v Vec4[T]) Mul(u Vec4[T]) Vec4[T] {
	return Vec4[T]{v.X * u.X, v.Y * u.Y, v.Z * u.Z, v.W * u.W}
}

// Dot returns the dot product of v and u.
func (v Vec4[T]) Dot(u Vec4[T]) T {
	return v.X*u.X + v.Y*u.Y + v.Z*u.Z + v.W*u.W
}

// LengthSq returns the squared length of v.
func (v Vec4[T]) LengthSq() T {
	return v.Dot(v)
}

// Length returns the length of v. Integer element types truncate.
func (v Vec4[T]) Length() T {
	return T(math.Sqrt(float64(v.Dot(v))))
}

// Normalize returns v scaled to unit length. The zero vector is
// returned unchanged.
func (v Vec4[T]) Normalize() Vec4[T] {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// Lerp interpolates linearly between v and u by t.
func (v Vec4[T]) Lerp(u Vec4[T], t T) Vec4[T] {
	return v.Add(u.Sub(v).Scale(t))
}

// Truncate drops the w coordinate of v.
func (v Vec4[T]) Truncate() Vec3[T] {
	return Vec3[T]{v.X, v.Y, v.Z}
}

// XYZW returns the coordinates of v.
func (v Vec4[T]) XYZW() (x, y, z, w T) {
	return v.X, v.Y, v.Z, v.W
}
