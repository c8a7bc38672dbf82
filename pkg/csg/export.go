package csg

import (
	"fmt"

	"github.com/chazu/facet/pkg/kernel"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Triangles fans every face from its first vertex. Each triangle gets its
// own copies of its three vertices.
func (m *Mesh) Triangles() ([]*sdf.Triangle3, error) {
	n, err := m.triangleCount()
	if err != nil {
		return nil, err
	}
	tris := make([]*sdf.Triangle3, 0, n)
	for _, f := range m.Faces {
		vs := f.Vertices
		for j := 2; j < len(vs); j++ {
			tris = append(tris, &sdf.Triangle3{vs[0], vs[j-1], vs[j]})
		}
	}
	return tris, nil
}

// ToMesh exports m as a flat triangle soup. Vertices are never shared
// between triangles and every vertex carries the normal of its face.
func (m *Mesh) ToMesh() (*kernel.Mesh, error) {
	n, err := m.triangleCount()
	if err != nil {
		return nil, err
	}

	vertices := make([]float32, 0, n*9)
	normals := make([]float32, 0, n*9)
	indices := make([]uint32, 0, n*3)

	var k uint32
	for _, f := range m.Faces {
		fn := f.Normal()
		vs := f.Vertices
		for j := 2; j < len(vs); j++ {
			for _, v := range [3]v3.Vec{vs[0], vs[j-1], vs[j]} {
				vertices = append(vertices, float32(v.X), float32(v.Y), float32(v.Z))
				normals = append(normals, float32(fn.X), float32(fn.Y), float32(fn.Z))
			}
			indices = append(indices, k, k+1, k+2)
			k += 3
		}
	}

	return &kernel.Mesh{
		Vertices: vertices,
		Normals:  normals,
		Indices:  indices,
	}, nil
}

func (m *Mesh) triangleCount() (int, error) {
	n := 0
	for i, f := range m.Faces {
		if len(f.Vertices) < 3 {
			return 0, fmt.Errorf("csg: face %d has %d vertices: %w", i, len(f.Vertices), ErrInvalidPolygon)
		}
		n += len(f.Vertices) - 2
	}
	return n, nil
}
