package glmath

import (
	"math"
	"testing"
)

func TestQuatFromAxisAngle_RotatesVectors(t *testing.T) {
	halfPi := float32(math.Pi / 2)
	zAxis := NewVec3[float32](0, 0, 1)

	// Quarter turn around z maps x onto y.
	q := QuatFromAxisAngle(zAxis, halfPi)
	got := q.Rotate(NewVec3[float32](1, 0, 0))
	if !vec3Equal(got, Vec3f{0, 1, 0}) {
		t.Errorf("Rotate=%v; want Vec3(0, 1, 0)", got)
	}

	// The identity leaves vectors alone.
	v := NewVec3[float32](1, 2, 3)
	if got := QuatIdentity[float32]().Rotate(v); !vec3Equal(got, v) {
		t.Errorf("identity Rotate=%v; want %v", got, v)
	}
}

func TestQuat_MulComposesRotations(t *testing.T) {
	halfPi := float32(math.Pi / 2)
	zAxis := NewVec3[float32](0, 0, 1)

	q := QuatFromAxisAngle(zAxis, halfPi)
	twice := q.Mul(q)
	want := QuatFromAxisAngle(zAxis, 2*halfPi)
	if !quatEqual(twice, want) {
		t.Errorf("q*q=%v; want %v", twice, want)
	}

	x := NewVec3[float32](1, 0, 0)
	if got := twice.Rotate(x); !vec3Equal(got, x.Neg()) {
		t.Errorf("half turn Rotate=%v; want %v", got, x.Neg())
	}
}

func TestQuat_ConjugateInverts(t *testing.T) {
	q := QuatFromAxisAngle(NewVec3[float32](1, 1, 0), 0.7)
	if got := q.Mul(q.Conjugate()); !quatEqual(got, QuatIdentity[float32]()) {
		t.Errorf("q*conj(q)=%v; want identity", got)
	}
}

func TestQuat_Normalize(t *testing.T) {
	q := NewQuat[float32](1, 2, 3, 4).Normalize()
	if !almostEqual(q.Length(), 1) {
		t.Errorf("Normalize length=%v; want 1", q.Length())
	}

	z := Quatf{}.Normalize()
	if !quatEqual(z, Quatf{}) {
		t.Errorf("Normalize(zero)=%v; want zero", z)
	}
}

func TestQuat_Mat33MatchesRotate(t *testing.T) {
	q := QuatFromAxisAngle(NewVec3[float32](0, 1, 0), 1.2)
	m := q.Mat33()

	vs := []Vec3f{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {1, -2, 3}}
	for _, v := range vs {
		if got, want := m.MulVec(v), q.Rotate(v); !vec3Equal(got, want) {
			t.Errorf("Mat33*%v=%v; Rotate=%v", v, got, want)
		}
	}
}
