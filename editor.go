package shapedraw

import (
	"math"

	"github.com/yohamta/donburi"
)

// editBoxes drives the box editor for one tick: pointer-down, then the held
// resize, then pointer-up. Running all three lets a press and release landing
// in the same tick still produce a finished box.
func (p *Plugin) editBoxes(f PointerFrame) {
	if p.state.Disabled() {
		return
	}
	if f.Started {
		p.pointerDown(f)
	}
	if f.Held {
		p.pointerHeld(f)
	}
	if f.Ended {
		p.pointerUp()
	}
}

// intersect queries the surface intersector at the pointer position.
func (p *Plugin) intersect(f PointerFrame) (Vec3, bool) {
	if !f.HasPosition || p.intersector == nil {
		return Vec3{}, false
	}
	return p.intersector.Intersect(f.Position)
}

// pointerDown spawns a new box, or restarts the redraw target, with its
// minimum corner at the hit point.
func (p *Plugin) pointerDown(f PointerFrame) {
	if editingQuery.Count(p.world) > 0 {
		p.debugf("pointer down ignored: a shape is already being edited")
		return
	}

	hit, ok := p.intersect(f)
	if !ok {
		p.debugf("pointer down at %v: no surface hit", f.Position)
		return
	}

	target, redraw := p.state.Target()
	var entry *donburi.Entry
	if redraw {
		if !p.world.Valid(target) {
			p.logf("redraw target %v no longer exists", target)
			return
		}
		entry = p.world.Entry(target)
	}

	height := p.res.InitialHeight
	if redraw {
		if s, ok := ShapeOf(entry); ok {
			if h, ok := shapeHeight(s); ok {
				height = h
			}
		}
	}
	size := p.res.initialBoxSize(height)
	shape := Box{Size: size}

	if !redraw {
		e := p.world.Create(TransformComponent, MeshComponent, MaterialComponent, ShapeComponent, EditingComponent)
		entry = p.world.Entry(e)
	} else {
		ensureComponent(entry, TransformComponent)
		ensureComponent(entry, MeshComponent)
		ensureComponent(entry, MaterialComponent)
		ensureComponent(entry, ShapeComponent)
		ensureComponent(entry, EditingComponent)
	}

	TransformComponent.SetValue(entry, Transform{Translation: spawnPlacement(hit, size)})
	MeshComponent.SetValue(entry, meshFor(shape))
	MaterialComponent.SetValue(entry, MaterialRef{Material: p.res.Material})
	ShapeComponent.SetValue(entry, ShapeData{Shape: shape})
	EditingComponent.SetValue(entry, Editing{Origin: hit})

	kind := ShapeSpawned
	if redraw {
		kind = ShapeRedrawing
	}
	p.events.enqueue(DrawShapeEvent{Kind: kind, Entity: entry.Entity()})
	p.debugf("%s %v at %v", kind, entry.Entity(), hit)
}

// pointerHeld stretches the edited box from its origin to the current hit
// point on the horizontal plane. Height is preserved.
func (p *Plugin) pointerHeld(f PointerFrame) {
	if editingQuery.Count(p.world) != 1 {
		return
	}
	entry, ok := editingQuery.First(p.world)
	if !ok || !entry.HasComponent(ShapeComponent) || !entry.HasComponent(MeshComponent) {
		return
	}

	opposite, ok := p.intersect(f)
	if !ok {
		return
	}
	origin := EditingComponent.Get(entry).Origin
	// A hit on the world origin or on the recorded corner carries no new
	// information yet.
	if opposite == (Vec3{}) || opposite == origin {
		return
	}

	data := ShapeComponent.Get(entry)
	switch s := data.Shape.(type) {
	case Box:
		s.Size = Vec3{
			X: math.Abs(opposite.X - origin.X),
			Y: s.Size.Y,
			Z: math.Abs(opposite.Z - origin.Z),
		}
		data.Shape = s
		MeshComponent.Get(entry).SetBox(s.Size)
		ensureComponent(entry, TransformComponent)
		TransformComponent.Get(entry).Translation = dragPlacement(origin, opposite, s.Size.Y)
	default:
		return
	}
}

// pointerUp releases every edited entity and reports it finished. A release
// with nothing being edited is a no-op.
func (p *Plugin) pointerUp() {
	p.editBuf = editingEntities(p.world, p.editBuf)
	if len(p.editBuf) == 0 {
		p.debugf("pointer up: nothing being edited")
		return
	}
	for _, e := range p.editBuf {
		p.finishEdit(e)
	}
}

// abandonEdit finishes any edit still open when drawing is disabled, so every
// Spawned or Redrawing event is matched by a Finished one.
func (p *Plugin) abandonEdit() {
	p.editBuf = editingEntities(p.world, p.editBuf)
	for _, e := range p.editBuf {
		p.debugf("disable: closing edit of %v", e)
		p.finishEdit(e)
	}
}

func (p *Plugin) finishEdit(e donburi.Entity) {
	p.world.Entry(e).RemoveComponent(EditingComponent)
	p.events.enqueue(DrawShapeEvent{Kind: ShapeFinished, Entity: e})
}
