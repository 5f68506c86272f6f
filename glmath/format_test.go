package glmath

import "testing"

func TestString_DelegatesToElementType(t *testing.T) {
	tcs := []struct {
		name string
		got  string
		want string
	}{
		{"vec2 float32", Vec2f{X: 1, Y: 2.5}.String(), "Vec2(1, 2.5)"},
		{"vec2 int", Vec2i{X: -3, Y: 7}.String(), "Vec2(-3, 7)"},
		{"vec3 float64", Vec3d{X: 0.5, Y: 0, Z: -1}.String(), "Vec3(0.5, 0, -1)"},
		{"vec4 float32", Vec4f{X: 1, Y: 2, Z: 3, W: 4}.String(), "Vec4(1, 2, 3, 4)"},
		{"quat identity", QuatIdentity[float32]().String(), "Quat(0, 0, 0, 1)"},
		{"mat22 identity", Mat22Identity[int]().String(), "Mat22[1 0; 0 1]"},
		{"mat33 identity", Mat33Identity[float32]().String(), "Mat33[1 0 0; 0 1 0; 0 0 1]"},
		{"mat44 identity", Mat44Identity[float64]().String(),
			"Mat44[1 0 0 0; 0 1 0 0; 0 0 1 0; 0 0 0 1]"},
	}

	for _, tc := range tcs {
		if tc.got != tc.want {
			t.Errorf("%s: String()=%q; want %q", tc.name, tc.got, tc.want)
		}
	}
}
