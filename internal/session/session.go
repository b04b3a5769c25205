// Package session holds the per-run camera and shading control state:
// orbit, zoom, projection toggling, ambient intensity, and the
// shading-mode flag. None of this executes inside raster.Rasterizer —
// the core only ever consumes the resolved raster.Camera and
// raster.FrameParams snapshot a Session produces each frame.
package session

import (
	"math"

	"github.com/charmbracelet/harmonica"

	"github.com/sean-h/swrast/pkg/math3d"
	"github.com/sean-h/swrast/pkg/raster"
)

const (
	initialAzimuth    = 1.57 // radians, matches the original viewer's starting orbit angle
	initialElevation  = 0.0
	defaultOrthoScale = 2.0
	defaultFovYDeg    = 60.0

	// toggleFovYDeg and toggleOrthoScale are the fixed values a
	// projection switches to on ToggleProjection, independent of
	// whatever scale/fov was zoomed to beforehand.
	toggleFovYDeg    = 60.0
	toggleOrthoScale = 5.0
)

// orbitAxis tracks an accumulated angle plus a harmonica-smoothed
// velocity, so that drag-driven orbiting decelerates instead of
// stopping the instant input stops — mirrors the rotation-axis
// momentum pattern used by the terminal host loop.
type orbitAxis struct {
	angle    float64
	velocity float64
	accel    float64
	spring   harmonica.Spring
}

func newOrbitAxis(angle float64, fps int) orbitAxis {
	return orbitAxis{
		angle:  angle,
		spring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0),
	}
}

func (a *orbitAxis) tick() {
	a.angle += a.velocity
	a.velocity, a.accel = a.spring.Update(a.velocity, a.accel, 0)
}

// Session is the mutable control state for one viewer run.
type Session struct {
	radius     float64
	azimuth    orbitAxis
	elevation  orbitAxis
	projKind   raster.ProjectionKind
	orthoScale float64
	fovYDeg    float64
	ambient    float64
	smooth     bool
}

// New creates a Session at the given starting radius, ticking its
// orbit springs at fps frames per second.
func New(radius float64, fps int) *Session {
	return &Session{
		radius:     radius,
		azimuth:    newOrbitAxis(initialAzimuth, fps),
		elevation:  newOrbitAxis(initialElevation, fps),
		projKind:   raster.KindPerspective,
		orthoScale: defaultOrthoScale,
		fovYDeg:    defaultFovYDeg,
		ambient:    0.1,
		smooth:     true,
	}
}

// Camera derives the current raster.Camera snapshot from the session's
// orbit angles, radius, and projection state.
func (s *Session) Camera() raster.Camera {
	pos := math3d.V3(
		s.radius*math.Cos(s.elevation.angle)*math.Sin(s.azimuth.angle),
		s.radius*math.Sin(s.elevation.angle),
		s.radius*math.Cos(s.elevation.angle)*math.Cos(s.azimuth.angle),
	)
	if s.projKind == raster.KindOrthographic {
		return raster.NewOrthographicCamera(pos, s.orthoScale)
	}
	return raster.NewPerspectiveCamera(pos, s.fovYDeg)
}

// FrameParams derives the current raster.FrameParams snapshot for the
// given light direction. The model matrix is always identity.
func (s *Session) FrameParams(lightDir math3d.Vec3) raster.FrameParams {
	return raster.FrameParams{
		Model:    math3d.Identity(),
		LightDir: lightDir,
		Ambient:  s.ambient,
		Smooth:   s.smooth,
	}
}

// Orbit accumulates dx radians of azimuth and dy radians of elevation,
// re-deriving the camera position on the sphere of the current radius.
func (s *Session) Orbit(dx, dy float64) {
	s.azimuth.angle += dx
	s.elevation.angle += dy
}

// ApplyOrbitImpulse adds to the orbit velocity, for drag-driven
// momentum that decelerates over subsequent Tick calls rather than
// stopping immediately.
func (s *Session) ApplyOrbitImpulse(dx, dy float64) {
	s.azimuth.velocity += dx
	s.elevation.velocity += dy
}

// Tick integrates one frame of orbit momentum. Call once per rendered
// frame; a no-op if no impulse is outstanding.
func (s *Session) Tick() {
	s.azimuth.tick()
	s.elevation.tick()
}

// Zoom adjusts the active projection's own parameter: Orthographic's
// scale moves by delta*0.1, Perspective's vertical FOV moves by delta
// directly. No clamping in either case.
func (s *Session) Zoom(delta float64) {
	if s.projKind == raster.KindOrthographic {
		s.orthoScale += delta * 0.1
		return
	}
	s.fovYDeg += delta
}

// ToggleProjection swaps Orthographic <-> Perspective, resetting the
// new projection to its fixed default (Perspective(60) /
// Orthographic(5)) rather than whatever it was last zoomed to.
func (s *Session) ToggleProjection() {
	if s.projKind == raster.KindPerspective {
		s.projKind = raster.KindOrthographic
		s.orthoScale = toggleOrthoScale
	} else {
		s.projKind = raster.KindPerspective
		s.fovYDeg = toggleFovYDeg
	}
}

// ToggleSmoothShading flips the Gouraud/flat shading flag.
func (s *Session) ToggleSmoothShading() {
	s.smooth = !s.smooth
}

// AdjustAmbient adds delta to the ambient intensity, clamped to [0, 1].
func (s *Session) AdjustAmbient(delta float64) {
	s.ambient += delta
	if s.ambient < 0 {
		s.ambient = 0
	}
	if s.ambient > 1 {
		s.ambient = 1
	}
}
