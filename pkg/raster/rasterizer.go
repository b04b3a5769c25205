package raster

import (
	"errors"
	"fmt"
	"math"

	"github.com/sean-h/swrast/pkg/math3d"
)

// ErrEmptyViewport is returned by Render when the sink reports a
// non-positive viewport dimension.
var ErrEmptyViewport = errors.New("raster: sink viewport has zero or negative dimension")

// FrameParams bundles the per-Render-call inputs that are not derived
// from the camera: the mesh's model matrix, the light, the albedo
// texture, the ambient term, and the shading mode.
type FrameParams struct {
	// Model is the mesh's model matrix. Identity in current use — no
	// caller constructs a non-identity model matrix today, but the
	// field exists because the per-triangle transform always composes
	// one.
	Model math3d.Mat4

	// LightDir is the normalized direction the single directional
	// light travels (from the light towards the surface).
	LightDir math3d.Vec3

	// Albedo is the optional albedo texture. Nil means untextured: the
	// pixel kernel falls back to a neutral gray.
	Albedo *Texture

	// Ambient is the fallback intensity used when a surface faces away
	// from the light, clamped to [0, 1] by the caller.
	Ambient float64

	// Smooth selects Gouraud (true) vs. flat (false) shading.
	Smooth bool
}

// Rasterizer rasterizes triangle meshes into a PixelSink. It owns a
// DepthBuffer, lazily resized to match the sink's viewport on every
// Render call. A zero-value Rasterizer is ready to use.
type Rasterizer struct {
	depth *DepthBuffer
}

// Render draws every triangle of every mesh into sink, after culling,
// transforming, and depth-testing against camera and params. It is a
// single synchronous call: there is no persisted state across calls
// other than the owned depth buffer.
func (r *Rasterizer) Render(sink PixelSink, meshes []*Mesh, camera Camera, params FrameParams) error {
	w, h := sink.ViewportSize()
	if w <= 0 || h <= 0 {
		return fmt.Errorf("raster: render: %w", ErrEmptyViewport)
	}

	if r.depth == nil {
		r.depth = NewDepthBuffer(w, h)
	} else {
		r.depth.Resize(w, h)
	}
	r.depth.Clear()

	aspect := float64(w) / float64(h)
	view := camera.ViewMatrix()
	proj := camera.ProjectionMatrix(aspect)
	viewProj := proj.Mul(view)
	cameraForward := camera.Position.Normalize()

	for _, mesh := range meshes {
		if mesh == nil {
			continue
		}
		mvp := viewProj.Mul(params.Model)
		for _, tri := range mesh.Triangles {
			r.renderTriangle(sink, tri, mvp, cameraForward, params, w, h)
		}
	}

	return nil
}

// Resize pre-warms the owned depth buffer ahead of the first frame, so
// a host can size it before the initial Render call instead of paying
// for a lazy allocation mid-frame.
func (r *Rasterizer) Resize(w, h int) {
	if r.depth == nil {
		r.depth = NewDepthBuffer(w, h)
		return
	}
	r.depth.Resize(w, h)
}

func (r *Rasterizer) renderTriangle(
	sink PixelSink,
	tri Triangle,
	mvp math3d.Mat4,
	cameraForward math3d.Vec3,
	params FrameParams,
	w, h int,
) {
	v0 := tri.Positions[0].Vec3()
	v1 := tri.Positions[1].Vec3()
	v2 := tri.Positions[2].Vec3()

	// Backface cull: note the cross-product operand order here
	// (v2-v0, v1-v0) is the opposite of the flat-shading normal below
	// (v1-v0, v2-v0) — both are intentional and independently grounded,
	// not a bug to unify.
	cullNormal := v2.Sub(v0).Cross(v1.Sub(v0)).Normalize()
	if cullNormal.Dot(cameraForward) > 0 {
		return
	}

	c0 := mvp.MulVec4(tri.Positions[0])
	c1 := mvp.MulVec4(tri.Positions[1])
	c2 := mvp.MulVec4(tri.Positions[2])

	ndc0 := c0.PerspectiveDivide()
	ndc1 := c1.PerspectiveDivide()
	ndc2 := c2.PerspectiveDivide()

	fw, fh := float64(w), float64(h)
	ss0 := math3d.V3((ndc0.X+1)*fw/2, (ndc0.Y+1)*fh/2, ndc0.Z)
	ss1 := math3d.V3((ndc1.X+1)*fw/2, (ndc1.Y+1)*fh/2, ndc1.Z)
	ss2 := math3d.V3((ndc2.X+1)*fw/2, (ndc2.Y+1)*fh/2, ndc2.Z)

	minX := int(math.Floor(min3(ss0.X, ss1.X, ss2.X)))
	maxX := int(math.Ceil(max3(ss0.X, ss1.X, ss2.X)))
	minY := int(math.Floor(min3(ss0.Y, ss1.Y, ss2.Y)))
	maxY := int(math.Ceil(max3(ss0.Y, ss1.Y, ss2.Y)))

	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX > w-1 {
		maxX = w - 1
	}
	if maxY > h-1 {
		maxY = h - 1
	}
	if minX > maxX || minY > maxY {
		return
	}

	var flatNormal math3d.Vec3
	var flatIntensity float64
	if !params.Smooth {
		flatNormal = v1.Sub(v0).Cross(v2.Sub(v0)).Normalize()
		flatIntensity = shadeIntensity(flatNormal, params.LightDir, params.Ambient)
	}

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			r.shadePixel(sink, x, y, ss0, ss1, ss2, c0, c1, c2, tri, params, flatNormal, flatIntensity)
		}
	}
}

func (r *Rasterizer) shadePixel(
	sink PixelSink,
	x, y int,
	ss0, ss1, ss2 math3d.Vec3,
	c0, c1, c2 math3d.Vec4,
	tri Triangle,
	params FrameParams,
	flatNormal math3d.Vec3,
	flatIntensity float64,
) {
	p := math3d.V3(float64(x), float64(y), 0)
	bc := math3d.Barycentric(p, ss0, ss1, ss2)
	if bc.X < 0 || bc.Y < 0 || bc.Z < 0 {
		return
	}

	z := bc.X*ss0.Z + bc.Y*ss1.Z + bc.Z*ss2.Z
	if z < -1 || z > 1 {
		return
	}
	if z >= r.depth.Sample(x, y) {
		return
	}
	r.depth.Set(x, y, z)

	// Perspective-correct reweighting.
	pw0 := bc.X / c0.W
	pw1 := bc.Y / c1.W
	pw2 := bc.Z / c2.W
	sum := pw0 + pw1 + pw2
	if sum != 0 {
		pw0 /= sum
		pw1 /= sum
		pw2 /= sum
	}

	uv := tri.UVs[0].Scale(pw0).Add(tri.UVs[1].Scale(pw1)).Add(tri.UVs[2].Scale(pw2))

	var intensity float64
	if params.Smooth {
		n := tri.Normals[0].Scale(pw0).Add(tri.Normals[1].Scale(pw1)).Add(tri.Normals[2].Scale(pw2))
		intensity = shadeIntensity(n, params.LightDir, params.Ambient)
	} else {
		intensity = flatIntensity
	}

	var cr, cg, cb uint8
	if params.Albedo != nil {
		c := params.Albedo.Sample(uv.X, uv.Y)
		cr = scaleChannel(c.R, intensity)
		cg = scaleChannel(c.G, intensity)
		cb = scaleChannel(c.B, intensity)
	} else {
		cr = scaleChannel(128, intensity)
		cg = scaleChannel(128, intensity)
		cb = scaleChannel(128, intensity)
	}

	sink.SetColor(cr, cg, cb)
	sink.DrawPoint(x, y)
}

// shadeIntensity computes -dot(n, lightDir), falling back to ambient
// when the surface faces away from the light.
func shadeIntensity(n, lightDir math3d.Vec3, ambient float64) float64 {
	intensity := -n.Dot(lightDir)
	if intensity < 0 {
		return ambient
	}
	return intensity
}

func scaleChannel(c uint8, intensity float64) uint8 {
	v := float64(c) * intensity
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func min3(a, b, c float64) float64 {
	return math.Min(a, math.Min(b, c))
}

func max3(a, b, c float64) float64 {
	return math.Max(a, math.Max(b, c))
}
