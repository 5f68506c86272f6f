package glmath

import "fmt"

// Compile-time checks that every exported type renders itself.
var (
	_ fmt.Stringer = Vec2[float32]{}
	_ fmt.Stringer = Vec3[float32]{}
	_ fmt.Stringer = Vec4[float32]{}
	_ fmt.Stringer = Quat[float32]{}
	_ fmt.Stringer = Mat22[float32]{}
	_ fmt.Stringer = Mat33[float32]{}
	_ fmt.Stringer = Mat44[float32]{}

	_ fmt.Stringer = Vec2[int]{}
	_ fmt.Stringer = Vec3[uint8]{}
	_ fmt.Stringer = Mat44[float64]{}
)
