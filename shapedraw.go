package shapedraw

import (
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/hajimehoshi/ebiten/v2"
)

// Vec2 is a screen-space position in pixels, origin top-left, Y down.
type Vec2 = v2.Vec

// Vec3 is a world-space position or extent. Y is up.
type Vec3 = v3.Vec

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// RGBA8 builds a Color from 8-bit channel values and a [0, 1] alpha.
func RGBA8(r, g, b uint8, a float64) Color {
	return Color{R: float64(r) / 0xFF, G: float64(g) / 0xFF, B: float64(b) / 0xFF, A: a}
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether p falls within r, edges included.
func (r Rect) Contains(p Vec2) bool {
	if p.X < r.X || p.Y < r.Y {
		return false
	}
	return p.X-r.X <= r.Width && p.Y-r.Y <= r.Height
}

// BlendMode selects a compositing operation. Each maps to a specific ebiten.Blend value.
type BlendMode uint8

const (
	BlendNormal   BlendMode = iota // source-over (standard alpha blending)
	BlendAdd                       // additive / lighter
	BlendMultiply                  // multiply (source * destination; only darkens)
	BlendScreen                    // screen (1 - (1-src)*(1-dst); only brightens)
	BlendNone                      // opaque copy (skip blending)
)

var blendModeNames = [...]string{"normal", "add", "multiply", "screen", "none"}

func (b BlendMode) String() string {
	if int(b) < len(blendModeNames) {
		return blendModeNames[b]
	}
	return "unknown"
}

// ParseBlendMode maps a blend mode name ("normal", "add", ...) to its value.
func ParseBlendMode(name string) (BlendMode, bool) {
	for i, n := range blendModeNames {
		if n == name {
			return BlendMode(i), true
		}
	}
	return BlendNormal, false
}

// EbitenBlend returns the ebiten.Blend value corresponding to this BlendMode.
func (b BlendMode) EbitenBlend() ebiten.Blend {
	switch b {
	case BlendNormal:
		return ebiten.BlendSourceOver
	case BlendAdd:
		return ebiten.BlendLighter
	case BlendMultiply:
		return ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorDestinationColor,
			BlendFactorSourceAlpha:      ebiten.BlendFactorDestinationAlpha,
			BlendFactorDestinationRGB:   ebiten.BlendFactorOneMinusSourceAlpha,
			BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
			BlendOperationRGB:           ebiten.BlendOperationAdd,
			BlendOperationAlpha:         ebiten.BlendOperationAdd,
		}
	case BlendScreen:
		return ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorOne,
			BlendFactorSourceAlpha:      ebiten.BlendFactorOne,
			BlendFactorDestinationRGB:   ebiten.BlendFactorOneMinusSourceColor,
			BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
			BlendOperationRGB:           ebiten.BlendOperationAdd,
			BlendOperationAlpha:         ebiten.BlendOperationAdd,
		}
	case BlendNone:
		return ebiten.BlendCopy
	default:
		return ebiten.BlendSourceOver
	}
}

// Material is the visual appearance shared by drawn shapes. Entities hold a
// pointer to it, so editing a Material restyles every shape using it.
type Material struct {
	Color Color
	Blend BlendMode
}
