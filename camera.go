package shapedraw

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// moveAnim holds active move-to tweens for the camera eye.
type moveAnim struct {
	tweens [3]*gween.Tween
	done   [3]bool
}

// Camera3D is a perspective camera looking from Eye towards Target.
type Camera3D struct {
	Eye    Vec3
	Target Vec3
	// Up is the world up direction. Zero means +Y.
	Up Vec3
	// FovY is the vertical field of view in radians.
	FovY float64
	// Near is the distance below which points are not projected.
	Near float64
	// Viewport is the screen-space rectangle this camera renders into.
	Viewport Rect

	moveTween *moveAnim
}

// NewCamera3D creates a camera with a 60 degree field of view.
func NewCamera3D(eye, target Vec3, viewport Rect) *Camera3D {
	return &Camera3D{
		Eye:      eye,
		Target:   target,
		Up:       Vec3{Y: 1},
		FovY:     math.Pi / 3,
		Near:     0.01,
		Viewport: viewport,
	}
}

// Ray is a half-line starting at Origin. Dir is unit length.
type Ray struct {
	Origin Vec3
	Dir    Vec3
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Dir.MulScalar(t))
}

// basis returns the camera's forward, right and up unit vectors.
func (c *Camera3D) basis() (forward, right, up Vec3) {
	worldUp := c.Up
	if worldUp == (Vec3{}) {
		worldUp = Vec3{Y: 1}
	}
	forward = c.Target.Sub(c.Eye).Normalize()
	right = forward.Cross(worldUp).Normalize()
	up = right.Cross(forward)
	return forward, right, up
}

func (c *Camera3D) frustum() (tanHalf, aspect float64, ok bool) {
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 || c.FovY <= 0 || c.Eye == c.Target {
		return 0, 0, false
	}
	return math.Tan(c.FovY / 2), c.Viewport.Width / c.Viewport.Height, true
}

// ScreenRay returns the ray from the eye through screen point p. Returns
// false when the camera has no usable viewport.
func (c *Camera3D) ScreenRay(p Vec2) (Ray, bool) {
	tanHalf, aspect, ok := c.frustum()
	if !ok {
		return Ray{}, false
	}
	forward, right, up := c.basis()

	nx := 2*(p.X-c.Viewport.X)/c.Viewport.Width - 1
	ny := 1 - 2*(p.Y-c.Viewport.Y)/c.Viewport.Height

	dir := forward.
		Add(right.MulScalar(nx * tanHalf * aspect)).
		Add(up.MulScalar(ny * tanHalf))
	return Ray{Origin: c.Eye, Dir: dir.Normalize()}, true
}

// Project converts a world point to screen coordinates. depth is the distance
// along the view direction. Returns false for points behind the near plane.
func (c *Camera3D) Project(w Vec3) (screen Vec2, depth float64, ok bool) {
	tanHalf, aspect, ok := c.frustum()
	if !ok {
		return Vec2{}, 0, false
	}
	forward, right, up := c.basis()

	d := w.Sub(c.Eye)
	depth = d.Dot(forward)
	if depth <= c.Near {
		return Vec2{}, depth, false
	}
	x := d.Dot(right) / (depth * tanHalf * aspect)
	y := d.Dot(up) / (depth * tanHalf)
	screen = Vec2{
		X: c.Viewport.X + (x+1)/2*c.Viewport.Width,
		Y: c.Viewport.Y + (1-y)/2*c.Viewport.Height,
	}
	return screen, depth, true
}

// MoveTo animates the eye to the given position over duration seconds. The
// camera keeps looking at Target while it moves.
func (c *Camera3D) MoveTo(eye Vec3, duration float32, easeFn ease.TweenFunc) {
	c.moveTween = &moveAnim{tweens: [3]*gween.Tween{
		gween.New(float32(c.Eye.X), float32(eye.X), duration, easeFn),
		gween.New(float32(c.Eye.Y), float32(eye.Y), duration, easeFn),
		gween.New(float32(c.Eye.Z), float32(eye.Z), duration, easeFn),
	}}
}

// Moving reports whether a MoveTo animation is in progress.
func (c *Camera3D) Moving() bool {
	return c.moveTween != nil
}

// update advances the move animation. Called from Plugin.Update.
func (c *Camera3D) update(dt float32) {
	m := c.moveTween
	if m == nil {
		return
	}
	fields := [3]*float64{&c.Eye.X, &c.Eye.Y, &c.Eye.Z}
	for i, tw := range m.tweens {
		if m.done[i] {
			continue
		}
		val, done := tw.Update(dt)
		*fields[i] = float64(val)
		m.done[i] = done
	}
	if m.done[0] && m.done[1] && m.done[2] {
		c.moveTween = nil
	}
}
