package shapedraw

import "github.com/yohamta/donburi"

// Transform places an entity in the world. Shapes are axis-aligned, so only
// a translation is carried; mesh vertices are local to it.
type Transform struct {
	Translation Vec3
}

// LocalToWorld converts a local-space point to world-space.
func (t Transform) LocalToWorld(p Vec3) Vec3 {
	return p.Add(t.Translation)
}

// WorldToLocal converts a world-space point to this transform's local space.
func (t Transform) WorldToLocal(p Vec3) Vec3 {
	return p.Sub(t.Translation)
}

// TransformOf returns the transform attached to entry, or the identity
// transform when there is none.
func TransformOf(entry *donburi.Entry) Transform {
	if entry == nil || !entry.Valid() || !entry.HasComponent(TransformComponent) {
		return Transform{}
	}
	return TransformComponent.GetValue(entry)
}

// spawnPlacement is the center of a box of the given size whose minimum
// corner sits on hit.
func spawnPlacement(hit, size Vec3) Vec3 {
	return hit.Add(size.MulScalar(0.5))
}

// dragPlacement is the center of a box spanning origin to opposite on the
// horizontal plane and resting on opposite's height.
//
//	x = opposite.x - dx/2, y = opposite.y + height/2, z = opposite.z - dz/2
func dragPlacement(origin, opposite Vec3, height float64) Vec3 {
	dx := opposite.X - origin.X
	dz := opposite.Z - origin.Z
	return Vec3{
		X: opposite.X - dx/2,
		Y: opposite.Y + height/2,
		Z: opposite.Z - dz/2,
	}
}
