// Package loader provides the mesh and material external collaborators:
// a Wavefront .obj mesh parser and a TOML material manifest parser.
package loader

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sean-h/swrast/pkg/math3d"
	"github.com/sean-h/swrast/pkg/raster"
)

type faceVertex struct {
	v, vt, vn int // 0-based; -1 = absent
}

// LoadMesh parses a Wavefront .obj file at path into a raster.Mesh.
// Polygons with more than three vertices are fan-triangulated. If the
// file supplies no vertex normals, area-weighted normals are generated
// from face geometry. Texture V is flipped (v' = 1 - v_source): OBJ
// puts v=0 at the image's bottom row, while Texture.Sample reads v=0
// from the image's top row.
func LoadMesh(path string) (*raster.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: open mesh %q: %w", path, err)
	}
	defer f.Close()

	var positions []math3d.Vec3
	var normals []math3d.Vec3
	var uvs []math3d.Vec3
	var faces []faceVertex // flattened triangle vertices, 3 per triangle

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				continue
			}
			x, _ := strconv.ParseFloat(fields[1], 64)
			y, _ := strconv.ParseFloat(fields[2], 64)
			z, _ := strconv.ParseFloat(fields[3], 64)
			positions = append(positions, math3d.V3(x, y, z))

		case "vn":
			if len(fields) < 4 {
				continue
			}
			x, _ := strconv.ParseFloat(fields[1], 64)
			y, _ := strconv.ParseFloat(fields[2], 64)
			z, _ := strconv.ParseFloat(fields[3], 64)
			normals = append(normals, math3d.V3(x, y, z))

		case "vt":
			if len(fields) < 3 {
				continue
			}
			u, _ := strconv.ParseFloat(fields[1], 64)
			v, _ := strconv.ParseFloat(fields[2], 64)
			uvs = append(uvs, math3d.V3(u, 1-v, 0))

		case "f":
			if len(fields) < 4 {
				continue
			}
			var verts []faceVertex
			for _, tok := range fields[1:] {
				verts = append(verts, parseFaceVertex(tok))
			}
			// Fan triangulation: 0-1-2, 0-2-3, 0-3-4, ...
			for i := 1; i+1 < len(verts); i++ {
				faces = append(faces, verts[0], verts[i], verts[i+1])
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("loader: scan mesh %q: %w", path, err)
	}
	if len(faces) == 0 {
		return nil, fmt.Errorf("loader: no geometry found in %q", path)
	}

	safePos := func(i int) math3d.Vec3 {
		if i >= 0 && i < len(positions) {
			return positions[i]
		}
		return math3d.Vec3{}
	}
	safeNorm := func(i int) math3d.Vec3 {
		if i >= 0 && i < len(normals) {
			return normals[i]
		}
		return math3d.V3(0, 1, 0)
	}
	safeUV := func(i int) math3d.Vec3 {
		if i >= 0 && i < len(uvs) {
			return uvs[i]
		}
		return math3d.Vec3{}
	}

	mesh := &raster.Mesh{Triangles: make([]raster.Triangle, 0, len(faces)/3)}
	for i := 0; i+2 < len(faces); i += 3 {
		var tri raster.Triangle
		for c, fv := range [3]faceVertex{faces[i], faces[i+1], faces[i+2]} {
			p := safePos(fv.v)
			tri.Positions[c] = math3d.V4(p.X, p.Y, p.Z, 1)
			tri.UVs[c] = safeUV(fv.vt)
			tri.Normals[c] = safeNorm(fv.vn)
		}
		mesh.Triangles = append(mesh.Triangles, tri)
	}

	if len(normals) == 0 {
		generateFlatNormals(mesh)
	}

	return mesh, nil
}

// parseFaceVertex parses one face vertex token: "v", "v/vt", "v//vn",
// "v/vt/vn". OBJ indices are 1-based; this returns 0-based indices
// (-1 if absent). Negative (relative) OBJ indices are not resolved —
// they fall through to the safe-accessor default, matching how minimal
// OBJ loaders in this codebase's lineage treat them.
func parseFaceVertex(tok string) faceVertex {
	parseIdx := func(s string) int {
		if s == "" {
			return -1
		}
		n, _ := strconv.Atoi(s)
		if n > 0 {
			return n - 1
		}
		return n
	}
	parts := strings.Split(tok, "/")
	fv := faceVertex{v: -1, vt: -1, vn: -1}
	if len(parts) > 0 {
		fv.v = parseIdx(parts[0])
	}
	if len(parts) > 1 {
		fv.vt = parseIdx(parts[1])
	}
	if len(parts) > 2 {
		fv.vn = parseIdx(parts[2])
	}
	return fv
}

// generateFlatNormals overwrites every triangle's per-vertex normals
// with an area-weighted average of the normals of triangles sharing
// that position, used when the source file supplied no "vn" lines.
func generateFlatNormals(mesh *raster.Mesh) {
	type accumKey struct{ x, y, z float64 }
	accum := map[accumKey]math3d.Vec3{}

	key := func(p math3d.Vec4) accumKey { return accumKey{p.X, p.Y, p.Z} }

	for _, tri := range mesh.Triangles {
		v0 := tri.Positions[0].Vec3()
		v1 := tri.Positions[1].Vec3()
		v2 := tri.Positions[2].Vec3()
		n := v1.Sub(v0).Cross(v2.Sub(v0)) // area-weighted (unnormalized)
		for _, p := range tri.Positions {
			k := key(p)
			accum[k] = accum[k].Add(n)
		}
	}

	for i, tri := range mesh.Triangles {
		for c, p := range tri.Positions {
			mesh.Triangles[i].Normals[c] = accum[key(p)].Normalize()
		}
	}
}
