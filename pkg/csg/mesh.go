package csg

import (
	"fmt"
	"math"
)

// Mesh is an unordered set of convex faces. Faces share no vertices.
type Mesh struct {
	Faces []*Polygon
}

// NewMesh returns a mesh over faces. The mesh takes ownership of them.
func NewMesh(faces ...*Polygon) *Mesh {
	return &Mesh{Faces: faces}
}

// Clone returns a deep copy.
func (m *Mesh) Clone() *Mesh {
	faces := make([]*Polygon, len(m.Faces))
	for i, f := range m.Faces {
		faces[i] = f.Clone()
	}
	return &Mesh{Faces: faces}
}

// IsEmpty reports whether the mesh has no faces left.
func (m *Mesh) IsEmpty() bool {
	return len(m.Faces) == 0
}

// VertexCount returns the number of face vertices, counting every face
// separately.
func (m *Mesh) VertexCount() int {
	n := 0
	for _, f := range m.Faces {
		n += len(f.Vertices)
	}
	return n
}

// Subtract returns m with the volume of other removed. Neither mesh is
// modified.
//
// other is read as a cutter whose faces point into the material being
// removed: the result is the part of m behind every face plane of other,
// plus the parts of other's faces that lie inside m, which become the cap
// faces of the cut. The caps keep other's winding, which under this
// convention already faces out of the remaining solid.
//
// The operation is exact only for a convex cutter; see the package
// documentation.
func (m *Mesh) Subtract(other *Mesh) (*Mesh, error) {
	if m.IsEmpty() {
		return &Mesh{}, nil
	}
	if other == nil || other.IsEmpty() {
		return m.Clone(), nil
	}

	outside, err := NewClipper(other)
	if err != nil {
		return nil, fmt.Errorf("csg: subtract: cutter %w", err)
	}
	outside.Flip()

	inside, err := NewClipper(m)
	if err != nil {
		return nil, fmt.Errorf("csg: subtract: mesh %w", err)
	}
	inside.Flip()

	faces := make([]*Polygon, 0, len(m.Faces)+len(other.Faces))
	faces = clipFaces(faces, m.Faces, outside)
	faces = clipFaces(faces, other.Faces, inside)
	return &Mesh{Faces: faces}, nil
}

// clipFaces appends the non-empty clips of faces against c to dst.
// Slivers too thin to carry a plane are dropped so the result can always
// seed the next Clipper.
func clipFaces(dst, faces []*Polygon, c *Clipper) []*Polygon {
	for _, f := range faces {
		p := f.Clip(c)
		if p.IsEmpty() {
			continue
		}
		if _, err := p.Plane(); err != nil {
			continue
		}
		dst = append(dst, p)
	}
	return dst
}

// Carve subtracts each cutter from m in order. An empty intermediate
// result short-circuits the remaining cuts.
func Carve(m *Mesh, cutters ...*Mesh) (*Mesh, error) {
	out := m.Clone()
	for i, c := range cutters {
		if out.IsEmpty() {
			break
		}
		next, err := out.Subtract(c)
		if err != nil {
			return nil, fmt.Errorf("cut %d: %w", i, err)
		}
		out = next
	}
	return out, nil
}

// BoundingBox returns the axis-aligned bounds of all face vertices. An
// empty mesh has zero bounds.
func (m *Mesh) BoundingBox() (min, max [3]float64) {
	if m.VertexCount() == 0 {
		return min, max
	}
	min = [3]float64{math.Inf(1), math.Inf(1), math.Inf(1)}
	max = [3]float64{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for _, f := range m.Faces {
		for _, v := range f.Vertices {
			min[0], max[0] = math.Min(min[0], v.X), math.Max(max[0], v.X)
			min[1], max[1] = math.Min(min[1], v.Y), math.Max(max[1], v.Y)
			min[2], max[2] = math.Min(min[2], v.Z), math.Max(max[2], v.Z)
		}
	}
	return min, max
}
