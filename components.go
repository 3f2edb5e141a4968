package shapedraw

import (
	"github.com/deadsy/sdfx/sdf"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// Editing marks the entity currently being drawn. Origin is the fixed corner
// recorded at pointer-down. At most one entity carries it at a time.
type Editing struct {
	Origin Vec3
}

// MaterialRef points an entity at a shared Material.
type MaterialRef struct {
	Material *Material
}

// Surface marks an entity as something shapes can be drawn on. Bounds are in
// the entity's local space and offset by its Transform when ray tested.
type Surface struct {
	Bounds sdf.Box3
}

var (
	TransformComponent = donburi.NewComponentType[Transform]()
	MeshComponent      = donburi.NewComponentType[Mesh]()
	MaterialComponent  = donburi.NewComponentType[MaterialRef]()
	ShapeComponent     = donburi.NewComponentType[ShapeData]()
	EditingComponent   = donburi.NewComponentType[Editing]()
	SurfaceComponent   = donburi.NewComponentType[Surface]()

	// DrawingboardTag marks the entity spawned by the drawing board.
	DrawingboardTag = donburi.NewTag()
)

var (
	editingQuery      = donburi.NewQuery(filter.Contains(EditingComponent))
	surfaceQuery      = donburi.NewQuery(filter.Contains(SurfaceComponent))
	drawingboardQuery = donburi.NewQuery(filter.Contains(DrawingboardTag))
)

// ensureComponent adds c to entry if it is missing.
func ensureComponent(entry *donburi.Entry, c donburi.IComponentType) {
	if !entry.HasComponent(c) {
		entry.AddComponent(c)
	}
}

// editingEntities returns every entity carrying the Editing marker.
// Collected up front so callers may remove the marker while walking them.
func editingEntities(world donburi.World, buf []donburi.Entity) []donburi.Entity {
	buf = buf[:0]
	editingQuery.Each(world, func(entry *donburi.Entry) {
		buf = append(buf, entry.Entity())
	})
	return buf
}

// SpawnSurface creates a flat, drawable square of the given size centered at
// center.
func SpawnSurface(world donburi.World, center Vec3, size float64, material *Material) donburi.Entity {
	e := world.Create(TransformComponent, MeshComponent, MaterialComponent, SurfaceComponent)
	entry := world.Entry(e)
	mesh := NewPlaneMesh(size)
	TransformComponent.SetValue(entry, Transform{Translation: center})
	MeshComponent.SetValue(entry, mesh)
	MaterialComponent.SetValue(entry, MaterialRef{Material: material})
	SurfaceComponent.SetValue(entry, Surface{Bounds: mesh.Bounds()})
	return e
}

// SpawnBox creates a static box centered at center. The box is not a drawing
// surface and carries no Shape, so the editor never touches it.
func SpawnBox(world donburi.World, center, size Vec3, material *Material) donburi.Entity {
	e := world.Create(TransformComponent, MeshComponent, MaterialComponent)
	entry := world.Entry(e)
	TransformComponent.SetValue(entry, Transform{Translation: center})
	MeshComponent.SetValue(entry, NewBoxMesh(size))
	MaterialComponent.SetValue(entry, MaterialRef{Material: material})
	return e
}
