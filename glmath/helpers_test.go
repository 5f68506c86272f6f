package glmath

import "math"

const epsilon = 1e-5

func almostEqual(a, b float32) bool {
	return math.Abs(float64(a)-float64(b)) < epsilon
}

func vec2Equal(a, b Vec2f) bool {
	return almostEqual(a.X, b.X) && almostEqual(a.Y, b.Y)
}

func vec3Equal(a, b Vec3f) bool {
	return almostEqual(a.X, b.X) && almostEqual(a.Y, b.Y) && almostEqual(a.Z, b.Z)
}

func quatEqual(a, b Quatf) bool {
	return almostEqual(a.X, b.X) && almostEqual(a.Y, b.Y) &&
		almostEqual(a.Z, b.Z) && almostEqual(a.W, b.W)
}

func mat33Equal(a, b Mat33f) bool {
	for i := range a {
		if !almostEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

func mat44Equal(a, b Mat44f) bool {
	for i := range a {
		if !almostEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}
