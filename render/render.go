// Package render draws the boxes and surfaces of a shapedraw world with
// ebiten. Meshes are projected through a [shapedraw.Camera3D], flat shaded,
// depth sorted back to front and submitted in batched DrawTriangles32 calls.
package render

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"

	"github.com/phanxgames/shapedraw"
)

var drawableQuery = donburi.NewQuery(filter.Contains(
	shapedraw.TransformComponent,
	shapedraw.MeshComponent,
	shapedraw.MaterialComponent,
))

// defaultLight points down and slightly away from the default camera.
var defaultLight = shapedraw.Vec3{X: -0.3, Y: -1, Z: -0.5}

// Renderer draws a shapedraw world. The zero value is not usable; create one
// with New.
type Renderer struct {
	Camera     *shapedraw.Camera3D
	ClearColor shapedraw.Color
	// Light is the direction light travels. Zero means defaultLight.
	Light shapedraw.Vec3
	// Ambient is the shade applied to faces turned away from the light.
	Ambient float64
	// ScreenshotDir is where queued screenshots are written.
	ScreenshotDir string

	tris    []triangle
	sortBuf []triangle
	verts   []ebiten.Vertex
	inds    []uint32
}

// triangle is one projected, shaded mesh triangle.
type triangle struct {
	pts   [3]shapedraw.Vec2
	depth float64
	color shapedraw.Color
	blend shapedraw.BlendMode
	order int
}

// New creates a Renderer viewing through cam.
func New(cam *shapedraw.Camera3D) *Renderer {
	return &Renderer{
		Camera:        cam,
		ClearColor:    shapedraw.Color{R: 0.118, G: 0.118, B: 0.157, A: 1},
		Ambient:       0.35,
		ScreenshotDir: "screenshots",
	}
}

// Draw renders every entity with a Transform, Mesh and Material, then writes
// any screenshots p has queued.
func (r *Renderer) Draw(screen *ebiten.Image, p *shapedraw.Plugin) {
	if r.ClearColor.A > 0 {
		screen.Fill(premultiplied(r.ClearColor))
	}
	if r.Camera != nil {
		r.collect(p.World())
		r.mergeSort()
		r.submit(viewportImage(screen, r.Camera.Viewport))
	}
	r.flushScreenshots(screen, p.TakeScreenshotRequests())
}

// collect projects every visible triangle of the world into r.tris.
func (r *Renderer) collect(world donburi.World) {
	r.tris = r.tris[:0]
	light := r.Light
	if light == (shapedraw.Vec3{}) {
		light = defaultLight
	}
	light = light.Normalize()
	eye := r.Camera.Eye

	drawableQuery.Each(world, func(entry *donburi.Entry) {
		mat := shapedraw.MaterialComponent.Get(entry).Material
		if mat == nil || mat.Color.A <= 0 {
			return
		}
		tr := shapedraw.TransformComponent.GetValue(entry)
		mesh := shapedraw.MeshComponent.Get(entry)

		for i := 0; i+2 < len(mesh.Indices); i += 3 {
			var tri triangle
			var wp [3]shapedraw.Vec3
			ok := true
			for k := 0; k < 3; k++ {
				idx := int(mesh.Indices[i+k])
				if idx >= len(mesh.Positions) {
					ok = false
					break
				}
				wp[k] = tr.LocalToWorld(mesh.Positions[idx])
				pt, depth, visible := r.Camera.Project(wp[k])
				if !visible {
					ok = false
					break
				}
				tri.pts[k] = pt
				tri.depth += depth / 3
			}
			if !ok {
				continue
			}

			normal := faceNormal(mesh, int(mesh.Indices[i]), wp)
			// Back faces are hidden by the front faces of the same box.
			if normal.Dot(eye.Sub(wp[0])) < 0 {
				continue
			}
			tri.color = shade(mat.Color, normal, light, r.Ambient)
			tri.blend = mat.Blend
			tri.order = len(r.tris)
			r.tris = append(r.tris, tri)
		}
	})
}

// faceNormal prefers the mesh normal and falls back to the winding of the
// world-space triangle.
func faceNormal(m *shapedraw.Mesh, idx int, wp [3]shapedraw.Vec3) shapedraw.Vec3 {
	if idx < len(m.Normals) && m.Normals[idx] != (shapedraw.Vec3{}) {
		return m.Normals[idx]
	}
	return wp[1].Sub(wp[0]).Cross(wp[2].Sub(wp[0])).Normalize()
}

// shade applies Lambert lighting to c. Alpha is left untouched.
func shade(c shapedraw.Color, normal, light shapedraw.Vec3, ambient float64) shapedraw.Color {
	lambert := math.Max(0, -normal.Dot(light))
	k := ambient + (1-ambient)*lambert
	return shapedraw.Color{R: c.R * k, G: c.G * k, B: c.B * k, A: c.A}
}

// triangleLessOrEqual returns true if a should be drawn before or with b.
// Farther triangles draw first; <= on order keeps the sort stable.
func triangleLessOrEqual(a, b triangle) bool {
	if a.depth != b.depth {
		return a.depth > b.depth
	}
	return a.order <= b.order
}

// mergeSort sorts r.tris in place using r.sortBuf as scratch space.
// Bottom-up merge sort: zero allocations after the sort buffer reaches high-water mark.
func (r *Renderer) mergeSort() {
	n := len(r.tris)
	if n <= 1 {
		return
	}
	if cap(r.sortBuf) < n {
		r.sortBuf = make([]triangle, n)
	}
	r.sortBuf = r.sortBuf[:n]

	src, dst := r.tris, r.sortBuf
	for width := 1; width < n; width *= 2 {
		for lo := 0; lo < n; lo += 2 * width {
			mid := min(lo+width, n)
			hi := min(lo+2*width, n)
			mergeRun(src, dst, lo, mid, hi)
		}
		src, dst = dst, src
	}
	if &src[0] != &r.tris[0] {
		copy(r.tris, src)
	}
}

func mergeRun(src, dst []triangle, lo, mid, hi int) {
	i, j, k := lo, mid, lo
	for i < mid && j < hi {
		if triangleLessOrEqual(src[i], src[j]) {
			dst[k] = src[i]
			i++
		} else {
			dst[k] = src[j]
			j++
		}
		k++
	}
	for i < mid {
		dst[k] = src[i]
		i++
		k++
	}
	for j < hi {
		dst[k] = src[j]
		j++
		k++
	}
}

// submit draws the sorted triangles, batching runs that share a blend mode.
func (r *Renderer) submit(target *ebiten.Image) {
	if len(r.tris) == 0 {
		return
	}
	blend := r.tris[0].blend
	for i := range r.tris {
		t := &r.tris[i]
		if t.blend != blend {
			r.flush(target, blend)
			blend = t.blend
		}
		r.appendTriangle(t)
	}
	r.flush(target, blend)
}

func (r *Renderer) appendTriangle(t *triangle) {
	ca := float32(t.color.A)
	cr := float32(t.color.R) * ca
	cg := float32(t.color.G) * ca
	cb := float32(t.color.B) * ca

	base := uint32(len(r.verts))
	for _, pt := range t.pts {
		r.verts = append(r.verts, ebiten.Vertex{
			DstX:   float32(pt.X),
			DstY:   float32(pt.Y),
			SrcX:   0.5,
			SrcY:   0.5,
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		})
	}
	r.inds = append(r.inds, base, base+1, base+2)
}

// flush submits accumulated vertices as a single DrawTriangles32 call.
func (r *Renderer) flush(target *ebiten.Image, blend shapedraw.BlendMode) {
	if len(r.verts) == 0 {
		return
	}
	var triOp ebiten.DrawTrianglesOptions
	triOp.Blend = blend.EbitenBlend()
	triOp.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	triOp.AntiAlias = true

	target.DrawTriangles32(r.verts, r.inds, ensureWhitePixel(), &triOp)

	r.verts = r.verts[:0]
	r.inds = r.inds[:0]
}

// --- White pixel singleton (no sync.Once, drawing is single-threaded) ---

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image used
// as the source of every triangle.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}

func premultiplied(c shapedraw.Color) color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}

// viewportImage returns the part of screen covered by the camera viewport.
func viewportImage(screen *ebiten.Image, vp shapedraw.Rect) *ebiten.Image {
	if vp.Width <= 0 || vp.Height <= 0 {
		return screen
	}
	return screen.SubImage(image.Rect(
		int(vp.X), int(vp.Y),
		int(vp.X+vp.Width), int(vp.Y+vp.Height),
	)).(*ebiten.Image)
}
