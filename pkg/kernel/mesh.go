package kernel

import "math"

// Mesh is a triangle mesh suitable for rendering.
// All arrays are flat: vertices has 3 floats per vertex (x,y,z),
// normals has 3 floats per vertex, indices has 3 uint32s per triangle.
type Mesh struct {
	Vertices []float32 `json:"vertices"` // [x0,y0,z0, x1,y1,z1, ...]
	Normals  []float32 `json:"normals"`  // [nx0,ny0,nz0, ...]
	Indices  []uint32  `json:"indices"`  // [i0,i1,i2, ...] triangles
	Name     string    `json:"name"`     // which plan produced it
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / 3
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// IsEmpty returns true if the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}

// Vertex returns vertex i as float64 coordinates.
func (m *Mesh) Vertex(i int) [3]float64 {
	return [3]float64{
		float64(m.Vertices[i*3]),
		float64(m.Vertices[i*3+1]),
		float64(m.Vertices[i*3+2]),
	}
}

// Triangle returns the three vertices of triangle i.
func (m *Mesh) Triangle(i int) [3][3]float64 {
	return [3][3]float64{
		m.Vertex(int(m.Indices[i*3])),
		m.Vertex(int(m.Indices[i*3+1])),
		m.Vertex(int(m.Indices[i*3+2])),
	}
}

// BoundingBox returns the axis-aligned bounding box of the vertices.
// An empty mesh has zero bounds.
func (m *Mesh) BoundingBox() (min, max [3]float64) {
	if m.IsEmpty() {
		return min, max
	}
	min = m.Vertex(0)
	max = min
	for i := 1; i < m.VertexCount(); i++ {
		v := m.Vertex(i)
		for a := 0; a < 3; a++ {
			min[a] = math.Min(min[a], v[a])
			max[a] = math.Max(max[a], v[a])
		}
	}
	return min, max
}

// BoundingSphere returns a sphere enclosing every vertex, centred on the
// bounding box centre.
func (m *Mesh) BoundingSphere() (center [3]float64, radius float64) {
	if m.IsEmpty() {
		return center, 0
	}
	min, max := m.BoundingBox()
	for a := 0; a < 3; a++ {
		center[a] = (min[a] + max[a]) / 2
	}
	var r2 float64
	for i := 0; i < m.VertexCount(); i++ {
		v := m.Vertex(i)
		dx, dy, dz := v[0]-center[0], v[1]-center[1], v[2]-center[2]
		r2 = math.Max(r2, dx*dx+dy*dy+dz*dz)
	}
	return center, math.Sqrt(r2)
}
