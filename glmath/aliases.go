package glmath

// Float32 instantiations, the forms the game works in.

type Vec2f = Vec2[float32]
type Vec3f = Vec3[float32]
type Vec4f = Vec4[float32]
type Quatf = Quat[float32]
type Mat22f = Mat22[float32]
type Mat33f = Mat33[float32]
type Mat44f = Mat44[float32]

// Float64 instantiations.

type Vec2d = Vec2[float64]
type Vec3d = Vec3[float64]
type Vec4d = Vec4[float64]
type Quatd = Quat[float64]
type Mat22d = Mat22[float64]
type Mat33d = Mat33[float64]
type Mat44d = Mat44[float64]

// Integer instantiations, for tile and grid coordinates.

type Vec2i = Vec2[int]
type Vec3i = Vec3[int]
type Vec4i = Vec4[int]
