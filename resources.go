package shapedraw

// Resources configures newly drawn boxes. It is read-only while drawing.
type Resources struct {
	// Material is shared by every box the editor spawns.
	Material *Material
	// InitialSize is the width and depth a box starts with before it is
	// dragged out. Must be > 0.
	InitialSize float64
	// InitialHeight is the height of a newly spawned box. Must be > 0.
	InitialHeight float64
}

// DefaultResources returns a translucent blue material, a 0.01 starting
// footprint and a 0.2 starting height.
func DefaultResources() Resources {
	return Resources{
		Material: &Material{
			Color: RGBA8(0x10, 0x10, 0xF0, 0.5),
			Blend: BlendNormal,
		},
		InitialSize:   0.01,
		InitialHeight: 0.2,
	}
}

// initialBoxSize is the extent a box starts with for the given height.
func (r *Resources) initialBoxSize(height float64) Vec3 {
	return Vec3{X: r.InitialSize, Y: height, Z: r.InitialSize}
}

// DrawingboardResources configures the drawing board surface.
type DrawingboardResources struct {
	// Size is the side length of the square board.
	Size float64
	// Color is the board's final color once its fade-in completes.
	Color Color
	// FadeSeconds is how long the board takes to fade in. Zero disables it.
	FadeSeconds float32
}

// DefaultDrawingboardResources returns a 500x500 translucent sand colored
// board that fades in over a quarter second.
func DefaultDrawingboardResources() DrawingboardResources {
	return DrawingboardResources{
		Size:        500,
		Color:       RGBA8(0xE1, 0xC1, 0x6E, 0.7),
		FadeSeconds: 0.25,
	}
}
