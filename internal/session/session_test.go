package session

import (
	"testing"

	"github.com/sean-h/swrast/pkg/raster"
)

func TestNewStartsAtInitialAzimuth(t *testing.T) {
	s := New(10, 60)
	if s.azimuth.angle != initialAzimuth {
		t.Errorf("expected initial azimuth %v, got %v", initialAzimuth, s.azimuth.angle)
	}
}

func TestCameraDefaultsToPerspective(t *testing.T) {
	s := New(10, 60)
	cam := s.Camera()
	if cam.Projection.Kind != raster.KindPerspective {
		t.Errorf("expected a perspective camera by default, got kind %v", cam.Projection.Kind)
	}
}

func TestToggleProjectionSwapsKind(t *testing.T) {
	s := New(10, 60)
	s.ToggleProjection()
	cam := s.Camera()
	if cam.Projection.Kind != raster.KindOrthographic {
		t.Error("expected ToggleProjection to switch to Orthographic")
	}
	if cam.Projection.Orthographic.Scale != toggleOrthoScale {
		t.Errorf("expected Orthographic(%v), got Orthographic(%v)", toggleOrthoScale, cam.Projection.Orthographic.Scale)
	}

	s.ToggleProjection()
	cam = s.Camera()
	if cam.Projection.Kind != raster.KindPerspective {
		t.Error("expected a second ToggleProjection to switch back to Perspective")
	}
	if cam.Projection.Perspective.FovYDeg != toggleFovYDeg {
		t.Errorf("expected Perspective(%v), got Perspective(%v)", toggleFovYDeg, cam.Projection.Perspective.FovYDeg)
	}
}

func TestZoomPerspectiveAddsDeltaToFovDirectly(t *testing.T) {
	s := New(10, 60)
	before := s.fovYDeg
	s.Zoom(5)
	if s.fovYDeg != before+5 {
		t.Errorf("expected fovYDeg %v, got %v", before+5, s.fovYDeg)
	}
}

func TestZoomOrthographicScalesDeltaByOneTenth(t *testing.T) {
	s := New(10, 60)
	s.ToggleProjection() // Orthographic(5)
	before := s.orthoScale
	s.Zoom(5)
	want := before + 5*0.1
	if s.orthoScale != want {
		t.Errorf("expected orthoScale %v, got %v", want, s.orthoScale)
	}
}

func TestZoomNeverClamps(t *testing.T) {
	s := New(10, 60)
	s.Zoom(1000)
	if s.fovYDeg != defaultFovYDeg+1000 {
		t.Errorf("expected unclamped fovYDeg %v, got %v", defaultFovYDeg+1000, s.fovYDeg)
	}
}

func TestOrbitAccumulatesAngles(t *testing.T) {
	s := New(10, 60)
	before := s.azimuth.angle
	s.Orbit(0.3, 0.1)
	if s.azimuth.angle != before+0.3 {
		t.Errorf("expected azimuth to accumulate by 0.3, got delta %v", s.azimuth.angle-before)
	}
	if s.elevation.angle != initialElevation+0.1 {
		t.Errorf("expected elevation to accumulate by 0.1, got %v", s.elevation.angle)
	}
}

func TestAdjustAmbientClampsToUnitRange(t *testing.T) {
	s := New(10, 60)
	s.AdjustAmbient(-5)
	if s.ambient != 0 {
		t.Errorf("expected ambient to clamp at 0, got %v", s.ambient)
	}
	s.AdjustAmbient(5)
	if s.ambient != 1 {
		t.Errorf("expected ambient to clamp at 1, got %v", s.ambient)
	}
}

func TestToggleSmoothShadingFlips(t *testing.T) {
	s := New(10, 60)
	initial := s.smooth
	s.ToggleSmoothShading()
	if s.smooth == initial {
		t.Error("expected ToggleSmoothShading to flip the flag")
	}
}

func TestTickDecaysVelocityTowardZero(t *testing.T) {
	s := New(10, 60)
	s.ApplyOrbitImpulse(1.0, 0)
	s.Tick()
	v1 := s.azimuth.velocity
	s.Tick()
	v2 := s.azimuth.velocity
	if v1 == 0 {
		t.Fatal("expected a nonzero velocity after an impulse")
	}
	if v2 >= v1 {
		t.Errorf("expected velocity to decay: v1=%v v2=%v", v1, v2)
	}
}
