package camera

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestNew(t *testing.T) {
	cam := New(r3.Vec{X: 1, Y: 2, Z: 3}, 20, 0.1)

	if cam.Distance != 20 {
		t.Errorf("expected distance 20, got %f", cam.Distance)
	}
	if cam.MinDistance >= cam.MaxDistance {
		t.Error("distance bounds inverted")
	}
}

func TestEyeKeepsDistance(t *testing.T) {
	cam := New(r3.Vec{X: 5, Y: -2, Z: 1}, 30, 0)

	// The eye stays exactly Distance from the target through any sequence of
	// orbit updates and drags.
	for i := 0; i < 50; i++ {
		cam.Update(0.016)
		cam.Drag(float64(i%7)-3, float64(i%5)-2)

		d := r3.Norm(r3.Sub(cam.Eye(), cam.Target))
		if math.Abs(d-cam.Distance) > 1e-9 {
			t.Fatalf("eye distance %f, want %f", d, cam.Distance)
		}
	}
}

func TestPitchClamped(t *testing.T) {
	cam := New(r3.Vec{}, 10, 0)

	for i := 0; i < 1000; i++ {
		cam.Drag(0, 50)
	}
	if cam.Pitch >= math.Pi/2 {
		t.Errorf("pitch %f reached the pole", cam.Pitch)
	}

	for i := 0; i < 1000; i++ {
		cam.Drag(0, -50)
	}
	if cam.Pitch <= -math.Pi/2 {
		t.Errorf("pitch %f reached the lower pole", cam.Pitch)
	}
}

func TestZoomClamped(t *testing.T) {
	cam := New(r3.Vec{}, 10, 0)

	for i := 0; i < 500; i++ {
		cam.Zoom(5)
	}
	if cam.Distance < cam.MinDistance {
		t.Errorf("distance %f below minimum %f", cam.Distance, cam.MinDistance)
	}

	for i := 0; i < 500; i++ {
		cam.Zoom(-5)
	}
	if cam.Distance > cam.MaxDistance {
		t.Errorf("distance %f above maximum %f", cam.Distance, cam.MaxDistance)
	}
}

func TestAutoOrbitAdvancesYaw(t *testing.T) {
	cam := New(r3.Vec{}, 10, 0.5)
	before := cam.Yaw
	cam.Update(1.0)
	if math.Abs(cam.Yaw-before-0.5) > 1e-9 {
		t.Errorf("yaw advanced by %f, want 0.5", cam.Yaw-before)
	}
}

func TestRetarget(t *testing.T) {
	cam := New(r3.Vec{}, 10, 0)
	cam.Retarget(r3.Vec{X: 7})
	d := r3.Norm(r3.Sub(cam.Eye(), r3.Vec{X: 7}))
	if math.Abs(d-10) > 1e-9 {
		t.Errorf("eye distance after retarget %f, want 10", d)
	}
}
