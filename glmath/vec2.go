package glmath

import (
	"fmt"
	"math"
)

// Vec2 is a vector with 2 coordinates.
type Vec2[T Scalar] struct {
	X T `json:"x"`
	Y T `json:"y"`
}

// NewVec2 builds a Vec2 from its coordinates.
func NewVec2[T Scalar](x, y T) Vec2[T] {
	return Vec2[T]{X: x, Y: y}
}

func (v Vec2[T]) String() string {
	return fmt.Sprintf("Vec2(%v, %v)", v.X, v.Y)
}

// Add returns v + u.
func (v Vec2[T]) Add(u Vec2[T]) Vec2[T] {
	return Vec2[T]{v.X + u.X, v.Y + u.Y}
}

// Sub returns v - u.
func (v Vec2[T]) Sub(u Vec2[T]) Vec2[T] {
	return Vec2[T]{v.X - u.X, v.Y - u.Y}
}

// Neg returns -v.
func (v Vec2[T]) Neg() Vec2[T] {
	return Vec2[T]{-v.X, -v.Y}
}

// Scale returns v with every coordinate multiplied by s.
func (v Vec2[T]) Scale(s T) Vec2[T] {
	return Vec2[T]{v.X * s, v.Y * s}
}

// Mul returns the component-wise product of v and u.
func (v Vec2[T]) Mul(u Vec2[T]) Vec2[T] {
	return Vec2[T]{v.X * u.X, v.Y * u.Y}
}

// Dot returns the dot product of v and u.
func (v Vec2[T]) Dot(u Vec2[T]) T {
	return v.X*u.X + v.Y*u.Y
}

// LengthSq returns the squared length of v.
func (v Vec2[T]) LengthSq() T {
	return v.Dot(v)
}

// Length returns the length of v. Integer element types truncate.
func (v Vec2[T]) Length() T {
	return T(math.Sqrt(float64(v.Dot(v))))
}

// Normalize returns v scaled to unit length. The zero vector is
// returned unchanged.
func (v Vec2[T]) Normalize() Vec2[T] {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// Lerp interpolates linearly between v and u by t.
func (v Vec2[T]) Lerp(u Vec2[T], t T) Vec2[T] {
	return v.Add(u.Sub(v).Scale(t))
}

// Extend appends a z coordinate to v.
func (v Vec2[T]) Extend(z T) Vec3[T] {
	return Vec3[T]{v.X, v.Y, z}
}

// XY returns the coordinates of v.
func (v Vec2[T]) XY() (x, y T) {
	return v.X, v.Y
}
