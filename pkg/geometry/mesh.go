package geometry

import (
	gomath "math"

	"github.com/Faultbox/fragments-go/pkg/math"
)

// Mesh is an indexed triangle list.
type Mesh struct {
	Vertices  []math.Vec3
	Triangles [][3]uint32
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	if m == nil {
		return 0
	}
	return len(m.Triangles)
}

// IsEmpty reports whether the mesh has no triangles.
func (m *Mesh) IsEmpty() bool {
	return m.TriangleCount() == 0
}

// AddVertex appends a vertex and returns its index.
func (m *Mesh) AddVertex(v math.Vec3) uint32 {
	m.Vertices = append(m.Vertices, v)
	return uint32(len(m.Vertices) - 1)
}

// AddTriangle appends a triangle.
func (m *Mesh) AddTriangle(a, b, c uint32) {
	m.Triangles = append(m.Triangles, [3]uint32{a, b, c})
}

// Append merges other into m, offsetting its indices.
func (m *Mesh) Append(other *Mesh) {
	if other == nil {
		return
	}
	base := uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices, other.Vertices...)
	for _, t := range other.Triangles {
		m.Triangles = append(m.Triangles, [3]uint32{t[0] + base, t[1] + base, t[2] + base})
	}
}

// TriangleArea returns the area of triangle i.
func (m *Mesh) TriangleArea(i int) float64 {
	t := m.Triangles[i]
	a, b, c := m.Vertices[t[0]], m.Vertices[t[1]], m.Vertices[t[2]]
	return b.Sub(a).Cross(c.Sub(a)).Length() / 2
}

// SurfaceArea returns the summed area of all triangles.
func (m *Mesh) SurfaceArea() float64 {
	var area float64
	for i := range m.Triangles {
		area += m.TriangleArea(i)
	}
	return area
}

// Bounds returns the axis-aligned bounding box of the vertices.
// An empty mesh returns two zero vectors.
func (m *Mesh) Bounds() (min, max math.Vec3) {
	if len(m.Vertices) == 0 {
		return math.Vec3{}, math.Vec3{}
	}
	min = math.Vec3{X: gomath.Inf(1), Y: gomath.Inf(1), Z: gomath.Inf(1)}
	max = math.Vec3{X: gomath.Inf(-1), Y: gomath.Inf(-1), Z: gomath.Inf(-1)}
	for _, v := range m.Vertices {
		min.X = gomath.Min(min.X, v.X)
		min.Y = gomath.Min(min.Y, v.Y)
		min.Z = gomath.Min(min.Z, v.Z)
		max.X = gomath.Max(max.X, v.X)
		max.Y = gomath.Max(max.Y, v.Y)
		max.Z = gomath.Max(max.Z, v.Z)
	}
	return min, max
}

// Transformed returns a copy of the mesh with every vertex placed by t.
func (m *Mesh) Transformed(t RigidTransform) *Mesh {
	out := &Mesh{
		Vertices:  make([]math.Vec3, len(m.Vertices)),
		Triangles: append([][3]uint32(nil), m.Triangles...),
	}
	for i, v := range m.Vertices {
		out.Vertices[i] = t.ApplyPoint(v)
	}
	return out
}
