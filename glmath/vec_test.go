package glmath

import (
	"math"
	"testing"
)

func TestVec2_Arithmetic(t *testing.T) {
	v := NewVec2[float32](1, 2)
	u := NewVec2[float32](3, -4)

	if got := v.Add(u); !vec2Equal(got, Vec2f{4, -2}) {
		t.Errorf("Add=%v; want Vec2(4, -2)", got)
	}
	if got := v.Sub(u); !vec2Equal(got, Vec2f{-2, 6}) {
		t.Errorf("Sub=%v; want Vec2(-2, 6)", got)
	}
	if got := v.Scale(2); !vec2Equal(got, Vec2f{2, 4}) {
		t.Errorf("Scale=%v; want Vec2(2, 4)", got)
	}
	if got := v.Neg(); !vec2Equal(got, Vec2f{-1, -2}) {
		t.Errorf("Neg=%v; want Vec2(-1, -2)", got)
	}
	if got := v.Dot(u); !almostEqual(got, -5) {
		t.Errorf("Dot=%v; want -5", got)
	}
	if got := u.Length(); !almostEqual(got, 5) {
		t.Errorf("Length=%v; want 5", got)
	}
	if got := v.Lerp(u, 0.5); !vec2Equal(got, Vec2f{2, -1}) {
		t.Errorf("Lerp=%v; want Vec2(2, -1)", got)
	}
}

func TestVec2_Normalize(t *testing.T) {
	n := Vec2f{X: 3, Y: 4}.Normalize()
	if !almostEqual(n.Length(), 1) {
		t.Errorf("Normalize length=%v; want 1", n.Length())
	}
	if !vec2Equal(n, Vec2f{0.6, 0.8}) {
		t.Errorf("Normalize=%v; want Vec2(0.6, 0.8)", n)
	}

	// The zero vector must come back unchanged instead of dividing by zero.
	z := Vec2f{}.Normalize()
	if !vec2Equal(z, Vec2f{}) {
		t.Errorf("Normalize(zero)=%v; want zero", z)
	}
}

func TestVec3_CrossFollowsRightHandRule(t *testing.T) {
	x := NewVec3[float32](1, 0, 0)
	y := NewVec3[float32](0, 1, 0)
	z := NewVec3[float32](0, 0, 1)

	if got := x.Cross(y); !vec3Equal(got, z) {
		t.Errorf("x cross y = %v; want %v", got, z)
	}
	if got := y.Cross(x); !vec3Equal(got, z.Neg()) {
		t.Errorf("y cross x = %v; want %v", got, z.Neg())
	}
	if got := x.Cross(x); !vec3Equal(got, Vec3f{}) {
		t.Errorf("x cross x = %v; want zero", got)
	}
}

func TestVec_DimensionBridges(t *testing.T) {
	v2 := NewVec2[float32](1, 2)
	v3 := v2.Extend(3)
	if !vec3Equal(v3, Vec3f{1, 2, 3}) {
		t.Fatalf("Extend=%v; want Vec3(1, 2, 3)", v3)
	}
	v4 := v3.Extend(4)
	if got := v4.Truncate(); !vec3Equal(got, v3) {
		t.Errorf("Truncate=%v; want %v", got, v3)
	}
	if got := v3.Truncate(); !vec2Equal(got, v2) {
		t.Errorf("Truncate=%v; want %v", got, v2)
	}
}

func TestVec_IntegerInstantiation(t *testing.T) {
	v := NewVec2(3, 4)
	if got := v.Dot(v); got != 25 {
		t.Errorf("Dot=%d; want 25", got)
	}
	// Length truncates through float64 for integer elements.
	if got := NewVec2(1, 1).Length(); got != 1 {
		t.Errorf("Length=%d; want 1", got)
	}
}

func TestScalarHelpers(t *testing.T) {
	if got := Abs(-3.5); got != 3.5 {
		t.Errorf("Abs=%v; want 3.5", got)
	}
	if got := Min(2, 5); got != 2 {
		t.Errorf("Min=%v; want 2", got)
	}
	if got := Max(2, 5); got != 5 {
		t.Errorf("Max=%v; want 5", got)
	}
	if got := Clamp(7, 0, 5); got != 5 {
		t.Errorf("Clamp=%v; want 5", got)
	}
	if got := Lerp(0.0, 10.0, 0.25); math.Abs(got-2.5) > 1e-9 {
		t.Errorf("Lerp=%v; want 2.5", got)
	}
}
