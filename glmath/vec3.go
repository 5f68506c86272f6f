package glmath

import (
	"fmt"
	"math"
)

// Vec3 is a vector with 3 coordinates.
type Vec3[T Scalar] struct {
	X T `json:"x"`
	Y T `json:"y"`
	Z T `json:"z"`
}

// NewVec3 builds a Vec3 from its coordinates.
func NewVec3[T Scalar](x, y, z T) Vec3[T] {
	return Vec3[T]{X: x, Y: y, Z: z}
}

func (v Vec3[T]) String() string {
	return fmt.Sprintf("Vec3(%v, %v, %v)", v.X, v.Y, v.Z)
}

// Add returns v + u.
func (v Vec3[T]) Add(u Vec3[T]) Vec3[T] {
	return Vec3[T]{v.X + u.X, v.Y + u.Y, v.Z + u.Z}
}

// Sub returns v - u.
func (v Vec3[T]) Sub(u Vec3[T]) Vec3[T] {
	return Vec3[T]{v.X - u.X, v.Y - u.Y, v.Z - u.Z}
}

// Neg returns -v.
func (v Vec3[T]) Neg() Vec3[T] {
	return Vec3[T]{-v.X, -v.Y, -v.Z}
}

// Scale returns v with every coordinate multiplied by s.
func (v Vec3[T]) Scale(s T) Vec3[T] {
	return Vec3[T]{v.X * s, v.Y * s, v.Z * s}
}

// Mul returns the component-wise product of v and u.
func (v Vec3[T]) Mul(u Vec3[T]) Vec3[T] {
	return Vec3[T]{v.X * u.X, v.Y * u.Y, v.Z * u.Z}
}

// Dot returns the dot product of v and u.
func (v Vec3[T]) Dot(u Vec3[T]) T {
	return v.X*u.X + v.Y*u.Y + v.Z*u.Z
}

// Cross returns the cross product of v and u.
func (v Vec3[T]) Cross(u Vec3[T]) Vec3[T] {
	return Vec3[T]{
		v.Y*u.Z - v.Z*u.Y,
		v.Z*u.X - v.X*u.Z,
		v.X*u.Y - v.Y*u.X,
	}
}

// LengthSq returns the squared length of v.
func (v Vec3[T]) LengthSq() T {
	return v.Dot(v)
}

// Length returns the length of v. Integer element types truncate.
func (v Vec3[T]) Length() T {
	return T(math.Sqrt(float64(v.Dot(v))))
}

// Normalize returns v scaled to unit length. The zero vector is
// returned unchanged.
func (v Vec3[T]) Normalize() Vec3[T] {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// Lerp interpolates linearly between v and u by t.
func (v Vec3[T]) Lerp(u Vec3[T], t T) Vec3[T] {
	return v.Add(u.Sub(v).Scale(t))
}

// Extend appends a w coordinate to v.
func (v Vec3[T]) Extend(w T) Vec4[T] {
	return Vec4[T]{v.X, v.Y, v.Z, w}
}

// Truncate drops the z coordinate of v.
func (v Vec3[T]) Truncate() Vec2[T] {
	return Vec2[T]{v.X, v.Y}
}

// XYZ returns the coordinates of v.
func (v Vec3[T]) XYZ() (x, y, z T) {
	return v.X, v.Y, v.Z
}
