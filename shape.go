package shapedraw

import (
	"fmt"

	"github.com/yohamta/donburi"
)

// Shape is the geometry a drawn entity carries. The set of shapes is closed:
// only types in this package implement it, and every switch over a Shape
// lists them all.
type Shape interface {
	isShape()
	fmt.Stringer
}

// Box is an axis-aligned box. Size holds width (X), height (Y) and depth (Z).
type Box struct {
	Size Vec3
}

func (Box) isShape() {}

func (b Box) String() string {
	return fmt.Sprintf("Box(%g, %g, %g)", b.Size.X, b.Size.Y, b.Size.Z)
}

// ShapeData is the component wrapper holding an entity's Shape.
type ShapeData struct {
	Shape Shape
}

// ShapeOf returns the shape attached to entry, if any.
func ShapeOf(entry *donburi.Entry) (Shape, bool) {
	if entry == nil || !entry.Valid() || !entry.HasComponent(ShapeComponent) {
		return nil, false
	}
	s := ShapeComponent.Get(entry).Shape
	return s, s != nil
}

// shapeHeight returns the vertical extent of s.
func shapeHeight(s Shape) (float64, bool) {
	switch s := s.(type) {
	case Box:
		return s.Size.Y, true
	default:
		return 0, false
	}
}

// meshFor builds the render geometry for s, centered on the local origin.
func meshFor(s Shape) Mesh {
	switch s := s.(type) {
	case Box:
		return NewBoxMesh(s.Size)
	default:
		return Mesh{}
	}
}
