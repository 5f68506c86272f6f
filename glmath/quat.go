package glmath

import (
	"fmt"
	"math"
)

// Quat is a rotation quaternion. W is the scalar part.
type Quat[T Scalar] struct {
	X T `json:"x"`
	Y T `json:"y"`
	Z T `json:"z"`
	W T `json:"w"`
}

// NewQuat builds a Quat from its components.
func NewQuat[T Scalar](x, y, z, w T) Quat[T] {
	return Quat[T]{X: x, Y: y, Z: z, W: w}
}

// QuatIdentity returns the identity rotation.
func QuatIdentity[T Scalar]() Quat[T] {
	return Quat[T]{W: 1}
}

// QuatFromAxisAngle builds the rotation of angle radians around axis.
// The axis is normalized first.
func QuatFromAxisAngle[T Scalar](axis Vec3[T], angle T) Quat[T] {
	a := axis.Normalize()
	s := T(math.Sin(float64(angle) / 2))
	c := T(math.Cos(float64(angle) / 2))
	return Quat[T]{X: a.X * s, Y: a.Y * s, Z: a.Z * s, W: c}
}

func (q Quat[T]) String() string {
	return fmt.Sprintf("Quat(%v, %v, %v, %v)", q.X, q.Y, q.Z, q.W)
}

// Conjugate returns q with its vector part negated.
func (q Quat[T]) Conjugate() Quat[T] {
	return Quat[T]{-q.X, -q.Y, -q.Z, q.W}
}

// Dot returns the 4-component dot product of q and p.
func (q Quat[T]) Dot(p Quat[T]) T {
	return q.X*p.X + q.Y*p.Y + q.Z*p.Z + q.W*p.W
}

// LengthSq returns the squared norm of q.
func (q Quat[T]) LengthSq() T {
	return q.Dot(q)
}

// Length returns the norm of q. Integer element types truncate.
func (q Quat[T]) Length() T {
	return T(math.Sqrt(float64(q.Dot(q))))
}

// Normalize returns q scaled to unit norm. The zero quaternion is
// returned unchanged.
func (q Quat[T]) Normalize() Quat[T] {
	l := q.Length()
	if l == 0 {
		return q
	}
	return Quat[T]{q.X / l, q.Y / l, q.Z / l, q.W / l}
}

// Mul returns the Hamilton product q * p. Applying the result rotates
// by p first, then by q.
func (q Quat[T]) Mul(p Quat[T]) Quat[T] {
	return Quat[T]{
		q.W*p.X + q.X*p.W + q.Y*p.Z - q.Z*p.Y,
		q.W*p.Y - q.X*p.Z + q.Y*p.W + q.Z*p.X,
		q.W*p.Z + q.X*p.Y - q.Y*p.X + q.Z*p.W,
		q.W*p.W - q.X*p.X - q.Y*p.Y - q.Z*p.Z,
	}
}

// Rotate applies the rotation q to v. q must be unit length.
func (q Quat[T]) Rotate(v Vec3[T]) Vec3[T] {
	u := Vec3[T]{q.X, q.Y, q.Z}
	t := u.Cross(v).Scale(2)
	return v.Add(t.Scale(q.W)).Add(u.Cross(t))
}

// Mat33 returns the rotation matrix of q. q must be unit length.
func (q Quat[T]) Mat33() Mat33[T] {
	x, y, z, w := q.X, q.Y, q.Z, q.W
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z

	return Mat33[T]{
		1 - 2*(yy+zz), 2 * (xy - wz), 2 * (xz + wy),
		2 * (xy + wz), 1 - 2*(xx+zz), 2 * (yz - wx),
		2 * (xz - wy), 2 * (yz + wx), 1 - 2*(xx+yy),
	}
}
