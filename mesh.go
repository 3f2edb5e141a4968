package shapedraw

import (
	"github.com/deadsy/sdfx/sdf"
)

// Mesh is an indexed triangle list in local space. Positions and Normals are
// parallel slices; every three Indices form one triangle.
type Mesh struct {
	Positions []Vec3
	Normals   []Vec3
	Indices   []uint16

	bounds sdf.Box3
}

// boxFaces lists the four corners of each box face, counter-clockwise when
// seen from outside. Corner bits: 1 = max X, 2 = max Y, 4 = max Z.
var boxFaces = [6]struct {
	normal  Vec3
	corners [4]int
}{
	{Vec3{X: -1}, [4]int{0, 4, 6, 2}},
	{Vec3{X: 1}, [4]int{1, 3, 7, 5}},
	{Vec3{Y: -1}, [4]int{0, 1, 5, 4}},
	{Vec3{Y: 1}, [4]int{2, 6, 7, 3}},
	{Vec3{Z: -1}, [4]int{0, 2, 3, 1}},
	{Vec3{Z: 1}, [4]int{4, 5, 7, 6}},
}

// NewBoxMesh builds a box of the given size centered on the local origin.
// Zero extents are allowed and produce flat faces.
func NewBoxMesh(size Vec3) Mesh {
	var m Mesh
	m.SetBox(size)
	return m
}

// SetBox rebuilds m in place as a box of the given size, reusing its buffers.
// Buffers only ever grow.
func (m *Mesh) SetBox(size Vec3) {
	b := sdf.NewBox3(Vec3{}, size)
	m.Positions = m.Positions[:0]
	m.Normals = m.Normals[:0]
	m.Indices = m.Indices[:0]

	for _, face := range boxFaces {
		base := uint16(len(m.Positions))
		for _, c := range face.corners {
			m.Positions = append(m.Positions, boxCorner(b, c))
			m.Normals = append(m.Normals, face.normal)
		}
		m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	m.bounds = b
}

func boxCorner(b sdf.Box3, c int) Vec3 {
	v := b.Min
	if c&1 != 0 {
		v.X = b.Max.X
	}
	if c&2 != 0 {
		v.Y = b.Max.Y
	}
	if c&4 != 0 {
		v.Z = b.Max.Z
	}
	return v
}

// NewPlaneMesh builds a horizontal square of the given side length centered
// on the local origin, facing +Y.
func NewPlaneMesh(size float64) Mesh {
	b := planeBounds(size)
	up := Vec3{Y: 1}
	return Mesh{
		Positions: []Vec3{
			{X: b.Min.X, Z: b.Min.Z},
			{X: b.Min.X, Z: b.Max.Z},
			{X: b.Max.X, Z: b.Max.Z},
			{X: b.Max.X, Z: b.Min.Z},
		},
		Normals: []Vec3{up, up, up, up},
		Indices: []uint16{0, 1, 2, 0, 2, 3},
		bounds:  b,
	}
}

func planeBounds(size float64) sdf.Box3 {
	return sdf.NewBox3(Vec3{}, Vec3{X: size, Z: size})
}

// TriangleCount returns the number of triangles in m.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Bounds returns the local-space bounding box of m as built.
func (m *Mesh) Bounds() sdf.Box3 {
	return m.bounds
}
