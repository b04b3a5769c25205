package math3d

import "math"

// Quaternion represents a unit rotation quaternion.
type Quaternion struct {
	X, Y, Z, W float64
}

// QIdentity returns the identity rotation.
func QIdentity() Quaternion {
	return Quaternion{0, 0, 0, 1}
}

// QFromAxisAngle builds a unit quaternion rotating by angle radians
// around axis.
func QFromAxisAngle(axis Vec3, angle float64) Quaternion {
	axis = axis.Normalize()
	s := math.Sin(angle / 2)
	return Quaternion{axis.X * s, axis.Y * s, axis.Z * s, math.Cos(angle / 2)}
}
