package math3d

// Barycentric computes the barycentric coordinates of 2D point p (only X
// and Y are used) with respect to triangle (a, b, c), ignoring Z. The
// returned vector sums to 1 across its components. Degenerate
// (zero-area) triangles return a sentinel with a negative component, so
// callers that reject any negative component automatically reject them.
func Barycentric(p, a, b, c Vec3) Vec3 {
	v0x, v0y := c.X-a.X, c.Y-a.Y
	v1x, v1y := b.X-a.X, b.Y-a.Y
	v2x, v2y := p.X-a.X, p.Y-a.Y

	dot00 := v0x*v0x + v0y*v0y
	dot01 := v0x*v1x + v0y*v1y
	dot02 := v0x*v2x + v0y*v2y
	dot11 := v1x*v1x + v1y*v1y
	dot12 := v1x*v2x + v1y*v2y

	denom := dot00*dot11 - dot01*dot01
	if denom == 0 {
		return Vec3{-1, -1, -1}
	}

	invDenom := 1.0 / denom
	u := (dot11*dot02 - dot01*dot12) * invDenom
	v := (dot00*dot12 - dot01*dot02) * invDenom

	return Vec3{1 - u - v, v, u}
}
