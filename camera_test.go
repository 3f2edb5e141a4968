package shapedraw

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func newTestCamera() *Camera3D {
	return NewCamera3D(Vec3{Y: 5, Z: 5}, Vec3{}, Rect{Width: 640, Height: 480})
}

func TestCameraDefaults(t *testing.T) {
	cam := newTestCamera()
	if !approxEqual(cam.FovY, math.Pi/3, epsilon) {
		t.Errorf("FovY = %v, want pi/3", cam.FovY)
	}
	if cam.Up != (Vec3{Y: 1}) {
		t.Errorf("Up = %v, want +Y", cam.Up)
	}
	if cam.Moving() {
		t.Error("new camera should not be moving")
	}
}

func TestCameraProjectTargetToCenter(t *testing.T) {
	cam := newTestCamera()
	p, depth, ok := cam.Project(Vec3{})
	if !ok {
		t.Fatal("target should be visible")
	}
	if !approxEqual(p.X, 320, 1e-6) || !approxEqual(p.Y, 240, 1e-6) {
		t.Errorf("Project(target) = %v, want (320, 240)", p)
	}
	if !approxEqual(depth, math.Sqrt(50), 1e-9) {
		t.Errorf("depth = %v, want %v", depth, math.Sqrt(50))
	}
}

func TestCameraProjectOrientation(t *testing.T) {
	cam := newTestCamera()
	right, _, _ := cam.Project(Vec3{X: 1})
	if right.X <= 320 {
		t.Errorf("+X projected to x=%v, want right of center", right.X)
	}
	up, _, _ := cam.Project(Vec3{Y: 1})
	if up.Y >= 240 {
		t.Errorf("+Y projected to y=%v, want above center", up.Y)
	}
}

func TestCameraProjectBehind(t *testing.T) {
	cam := newTestCamera()
	if _, _, ok := cam.Project(Vec3{Y: 10, Z: 10}); ok {
		t.Error("point behind the camera should not project")
	}
}

func TestCameraScreenRayRoundtrip(t *testing.T) {
	cam := newTestCamera()
	points := []Vec3{{X: 1, Z: -1}, {X: -2, Y: 0.5, Z: 1}, {}}
	for _, w := range points {
		s, _, ok := cam.Project(w)
		if !ok {
			t.Fatalf("Project(%v) failed", w)
		}
		ray, ok := cam.ScreenRay(s)
		if !ok {
			t.Fatalf("ScreenRay(%v) failed", s)
		}
		want := w.Sub(cam.Eye).Normalize()
		if !approxEqual(ray.Dir.X, want.X, 1e-9) || !approxEqual(ray.Dir.Y, want.Y, 1e-9) || !approxEqual(ray.Dir.Z, want.Z, 1e-9) {
			t.Errorf("ScreenRay(Project(%v)).Dir = %v, want %v", w, ray.Dir, want)
		}
	}
}

func TestCameraNoViewport(t *testing.T) {
	cam := NewCamera3D(Vec3{Z: 5}, Vec3{}, Rect{})
	if _, ok := cam.ScreenRay(Vec2{}); ok {
		t.Error("ScreenRay without viewport should fail")
	}
	if _, _, ok := cam.Project(Vec3{}); ok {
		t.Error("Project without viewport should fail")
	}
}

func TestRayAt(t *testing.T) {
	r := Ray{Origin: Vec3{X: 1}, Dir: Vec3{Z: -1}}
	assertVec(t, "At(2)", r.At(2), Vec3{X: 1, Z: -2})
}

func TestCameraMoveTo(t *testing.T) {
	cam := newTestCamera()
	target := Vec3{X: 2, Y: 4, Z: 6}
	cam.MoveTo(target, 1.0, ease.Linear)
	if !cam.Moving() {
		t.Fatal("expected Moving after MoveTo")
	}

	cam.update(0.5)
	if !approxEqual(cam.Eye.X, 1, 0.01) || !approxEqual(cam.Eye.Y, 4.5, 0.01) {
		t.Errorf("Eye at half time = %v, want ~(1, 4.5, 5.5)", cam.Eye)
	}

	cam.update(0.5)
	if cam.Moving() {
		t.Error("expected move to finish")
	}
	if !approxEqual(cam.Eye.X, 2, 1e-4) || !approxEqual(cam.Eye.Y, 4, 1e-4) || !approxEqual(cam.Eye.Z, 6, 1e-4) {
		t.Errorf("Eye = %v, want %v", cam.Eye, target)
	}
}
