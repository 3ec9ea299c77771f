package core

import "math"

// Frame is an orthonormal shading basis with N as the local z axis
type Frame struct {
	S, T, N Vec3
}

// NewFrame builds a shading frame around a unit normal
func NewFrame(normal Vec3) Frame {
	// Pick a helper axis that is not parallel to the normal
	var helper Vec3
	if math.Abs(normal.X) > 0.1 {
		helper = NewVec3(0, 1, 0)
	} else {
		helper = NewVec3(1, 0, 0)
	}

	s := helper.Cross(normal).Normalize()
	t := normal.Cross(s)
	return Frame{S: s, T: t, N: normal}
}

// ToLocal expresses a world-space vector in this frame
func (f Frame) ToLocal(v Vec3) Vec3 {
	return NewVec3(v.Dot(f.S), v.Dot(f.T), v.Dot(f.N))
}

// ToWorld converts a local vector back to world space
func (f Frame) ToWorld(v Vec3) Vec3 {
	return f.S.Multiply(v.X).Add(f.T.Multiply(v.Y)).Add(f.N.Multiply(v.Z))
}

// CosTheta returns the cosine of the angle between a local direction and the normal
func CosTheta(v Vec3) float64 {
	return v.Z
}
