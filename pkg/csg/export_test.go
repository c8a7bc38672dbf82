package csg

import (
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrianglesFan(t *testing.T) {
	pentagon := NewPolygon(
		v3.Vec{X: 0, Y: 0},
		v3.Vec{X: 2, Y: 0},
		v3.Vec{X: 3, Y: 1},
		v3.Vec{X: 1, Y: 3},
		v3.Vec{X: -1, Y: 1},
	)
	tris, err := NewMesh(pentagon).Triangles()
	require.NoError(t, err)
	require.Len(t, tris, 3)
	for j, tri := range tris {
		assert.Equal(t, pentagon.Vertices[0], tri[0])
		assert.Equal(t, pentagon.Vertices[j+1], tri[1])
		assert.Equal(t, pentagon.Vertices[j+2], tri[2])
	}

	// Triangles own their vertices.
	tris[0][0].X = 99
	assert.Equal(t, 0.0, tris[1][0].X)
	assert.Equal(t, 0.0, pentagon.Vertices[0].X)
}

func TestToMeshCube(t *testing.T) {
	km, err := Cube(2).ToMesh()
	require.NoError(t, err)
	assert.Equal(t, 12, km.TriangleCount())
	assert.Equal(t, 36, km.VertexCount())
	assert.Len(t, km.Normals, len(km.Vertices))
	for i, idx := range km.Indices {
		assert.Equal(t, uint32(i), idx)
	}
}

func TestToMeshNormalsFaceOutward(t *testing.T) {
	m, err := Carve(Cube(2),
		mustSlab(t, v3.Vec{X: 0.3}, v3.Vec{X: 1, Y: 1}, 10),
		mustSlab(t, v3.Vec{Z: -0.5}, v3.Vec{Y: 0.2, Z: -1}, 10),
	)
	require.NoError(t, err)
	km, err := m.ToMesh()
	require.NoError(t, err)
	require.False(t, km.IsEmpty())

	// The carved solid is convex, so the centroid of its vertices is inside.
	var c v3.Vec
	for i := 0; i < km.VertexCount(); i++ {
		p := km.Vertex(i)
		c = c.Add(v3.Vec{X: p[0], Y: p[1], Z: p[2]})
	}
	c = c.MulScalar(1 / float64(km.VertexCount()))

	for i := 0; i < km.TriangleCount(); i++ {
		tri := km.Triangle(i)
		a := v3.Vec{X: tri[0][0], Y: tri[0][1], Z: tri[0][2]}
		b := v3.Vec{X: tri[1][0], Y: tri[1][1], Z: tri[1][2]}
		d := v3.Vec{X: tri[2][0], Y: tri[2][1], Z: tri[2][2]}
		n := b.Sub(a).Cross(d.Sub(a))
		if n.Length() < 1e-9 {
			continue
		}
		assert.Greater(t, n.Dot(a.Sub(c)), 0.0, "triangle %d winds inward", i)

		stored := v3.Vec{
			X: float64(km.Normals[i*9]),
			Y: float64(km.Normals[i*9+1]),
			Z: float64(km.Normals[i*9+2]),
		}
		assert.Greater(t, stored.Dot(n), 0.0, "triangle %d normal disagrees with winding", i)
	}
}

func TestToMeshInvalidFace(t *testing.T) {
	m := NewMesh(square(), &Polygon{Vertices: []v3.Vec{{}, {X: 1}}})
	_, err := m.ToMesh()
	require.ErrorIs(t, err, ErrInvalidPolygon)
	_, err = m.Triangles()
	require.ErrorIs(t, err, ErrInvalidPolygon)
}

func TestToMeshEmpty(t *testing.T) {
	km, err := NewMesh().ToMesh()
	require.NoError(t, err)
	assert.True(t, km.IsEmpty())
	assert.Equal(t, 0, km.TriangleCount())
}
