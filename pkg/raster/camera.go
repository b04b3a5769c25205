package raster

import (
	"math"

	"github.com/sean-h/swrast/pkg/math3d"
)

// Orthographic is a Projection variant holding the ortho half-height
// scale.
type Orthographic struct {
	Scale float64
}

// Perspective is a Projection variant holding the vertical field of
// view in degrees.
type Perspective struct {
	FovYDeg float64
}

// Projection is the tagged variant a Camera carries: either
// Orthographic or Perspective. Exactly one of the two fields is
// meaningful, selected by Kind.
type Projection struct {
	Kind         ProjectionKind
	Orthographic Orthographic
	Perspective  Perspective
}

// ProjectionKind discriminates the Projection union.
type ProjectionKind int

const (
	// KindOrthographic selects the Orthographic field of Projection.
	KindOrthographic ProjectionKind = iota
	// KindPerspective selects the Perspective field of Projection.
	KindPerspective
)

const (
	nearPlane = 0.1
	farPlane  = 50.0
)

// Camera is an immutable-per-frame snapshot: a position, an implicit
// target at the world origin, an implicit +Y up vector, and a tagged
// projection.
type Camera struct {
	Position   math3d.Vec3
	Projection Projection
}

// NewPerspectiveCamera builds a camera at position, looking at the
// origin, using a perspective projection with the given vertical FOV.
func NewPerspectiveCamera(position math3d.Vec3, fovYDeg float64) Camera {
	return Camera{
		Position:   position,
		Projection: Projection{Kind: KindPerspective, Perspective: Perspective{FovYDeg: fovYDeg}},
	}
}

// NewOrthographicCamera builds a camera at position, looking at the
// origin, using an orthographic projection with the given half-height
// scale.
func NewOrthographicCamera(position math3d.Vec3, scale float64) Camera {
	return Camera{
		Position:   position,
		Projection: Projection{Kind: KindOrthographic, Orthographic: Orthographic{Scale: scale}},
	}
}

// ViewMatrix builds the view matrix looking from Position at the world
// origin with +Y up.
func (c Camera) ViewMatrix() math3d.Mat4 {
	return math3d.LookAt(c.Position, math3d.Vec3{}, math3d.Vec3{X: 0, Y: 1, Z: 0})
}

// ProjectionMatrix builds the projection matrix for the given viewport
// aspect ratio (width/height), dispatching on the camera's projection
// kind.
func (c Camera) ProjectionMatrix(aspect float64) math3d.Mat4 {
	switch c.Projection.Kind {
	case KindOrthographic:
		scale := c.Projection.Orthographic.Scale
		// Left and right are swapped deliberately — see
		// math3d.LookAt's doc comment for why.
		return math3d.Orthographic(scale*aspect, -scale*aspect, -scale, scale, nearPlane, farPlane)
	default:
		fovy := c.Projection.Perspective.FovYDeg * math.Pi / 180
		return math3d.Perspective(fovy, aspect, nearPlane, farPlane)
	}
}
