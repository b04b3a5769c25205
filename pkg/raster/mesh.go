package raster

import "github.com/sean-h/swrast/pkg/math3d"

// Triangle holds the three object-space vertex attributes of one
// triangle. Positions carry W=1. UV coordinates reuse Vector3 (Z
// unused) rather than introducing a dedicated 2D type, matching the
// original renderer's triangle representation.
type Triangle struct {
	Positions [3]math3d.Vec4
	UVs       [3]math3d.Vec3
	Normals   [3]math3d.Vec3
}

// Mesh is an ordered sequence of triangles. Unlike an indexed
// vertex/face table, attributes are duplicated per triangle — this
// matches the rasterizer's per-triangle pixel kernel, which never
// needs to follow shared-vertex indices.
type Mesh struct {
	Triangles []Triangle
}

// Material describes the surface appearance of a mesh. Specular and
// Normal are parsed and retained for format fidelity but unused by the
// current single-directional-light shading model.
type Material struct {
	Albedo   *Texture
	Specular *Texture
	Normal   *Texture
}
