package shapedraw

import (
	"math"

	"github.com/deadsy/sdfx/sdf"
	"github.com/yohamta/donburi"
)

// Intersector turns a screen position into the world point where it meets a
// drawing surface. It reports false when nothing is hit.
type Intersector interface {
	Intersect(screen Vec2) (Vec3, bool)
}

// IntersectorFunc adapts a function to the Intersector interface.
type IntersectorFunc func(screen Vec2) (Vec3, bool)

// Intersect implements Intersector.
func (f IntersectorFunc) Intersect(screen Vec2) (Vec3, bool) {
	return f(screen)
}

// Raycaster intersects camera rays with every entity carrying a Surface
// component. The nearest hit wins.
type Raycaster struct {
	World  donburi.World
	Camera *Camera3D
}

// NewRaycaster returns a Raycaster over world's surfaces seen through cam.
func NewRaycaster(world donburi.World, cam *Camera3D) *Raycaster {
	return &Raycaster{World: world, Camera: cam}
}

// Intersect implements Intersector. Points outside the camera viewport never
// hit.
func (r *Raycaster) Intersect(screen Vec2) (Vec3, bool) {
	if r.Camera == nil || !r.Camera.Viewport.Contains(screen) {
		return Vec3{}, false
	}
	ray, ok := r.Camera.ScreenRay(screen)
	if !ok {
		return Vec3{}, false
	}
	return r.Cast(ray)
}

// Cast returns the nearest surface point along ray.
func (r *Raycaster) Cast(ray Ray) (Vec3, bool) {
	best := math.Inf(1)
	surfaceQuery.Each(r.World, func(entry *donburi.Entry) {
		// Surface bounds are local, so test the ray in the entity's space.
		local := Ray{Origin: TransformOf(entry).WorldToLocal(ray.Origin), Dir: ray.Dir}
		if d, ok := local.intersectBox(SurfaceComponent.Get(entry).Bounds); ok && d < best {
			best = d
		}
	})
	if math.IsInf(best, 1) {
		return Vec3{}, false
	}
	return ray.At(best), true
}

// intersectBox slab-tests the ray against b and returns the distance to the
// first point of contact. Flat boxes (zero extent on an axis) are supported.
func (r Ray) intersectBox(b sdf.Box3) (float64, bool) {
	tmin := math.Inf(-1)
	tmax := math.Inf(1)

	origin := [3]float64{r.Origin.X, r.Origin.Y, r.Origin.Z}
	dir := [3]float64{r.Dir.X, r.Dir.Y, r.Dir.Z}
	lo := [3]float64{b.Min.X, b.Min.Y, b.Min.Z}
	hi := [3]float64{b.Max.X, b.Max.Y, b.Max.Z}

	for i := 0; i < 3; i++ {
		if math.Abs(dir[i]) < 1e-12 {
			if origin[i] < lo[i] || origin[i] > hi[i] {
				return 0, false
			}
			continue
		}
		t1 := (lo[i] - origin[i]) / dir[i]
		t2 := (hi[i] - origin[i]) / dir[i]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
		if tmin > tmax {
			return 0, false
		}
	}
	if tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		// Ray starts inside the box.
		return tmax, true
	}
	return tmin, true
}
