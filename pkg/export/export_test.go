package export

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/chazu/facet/pkg/csg"
	"github.com/chazu/facet/pkg/kernel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cubeMesh(t *testing.T) *kernel.Mesh {
	t.Helper()
	m, err := csg.Cube(2).ToMesh()
	require.NoError(t, err)
	m.Name = "cube"
	return m
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"stl", "STL", "json"} {
		_, err := ParseFormat(s)
		assert.NoError(t, err, s)
	}
	_, err := ParseFormat("obj")
	assert.Error(t, err)

	assert.Equal(t, FormatJSON, FormatFromPath("out/gem.json", FormatSTL))
	assert.Equal(t, FormatSTL, FormatFromPath("gem.Stl", FormatJSON))
	assert.Equal(t, FormatJSON, FormatFromPath("gem", FormatJSON))
}

func TestTriangles(t *testing.T) {
	m := cubeMesh(t)
	tris := Triangles(m)
	require.Len(t, tris, 12)
	for i, tri := range tris {
		want := m.Triangle(i)
		for j := 0; j < 3; j++ {
			assert.Equal(t, want[j][0], tri[j].X)
			assert.Equal(t, want[j][1], tri[j].Y)
			assert.Equal(t, want[j][2], tri[j].Z)
		}
	}
}

func TestWriteSTL(t *testing.T) {
	m := cubeMesh(t)
	path := filepath.Join(t.TempDir(), "cube.stl")
	require.NoError(t, WriteFile(path, FormatSTL, m))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	// 80 byte header, triangle count, 50 bytes per triangle.
	require.Len(t, data, 84+50*12)
	assert.Equal(t, uint32(12), binary.LittleEndian.Uint32(data[80:84]))
}

func TestWriteSTLEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.stl")
	require.NoError(t, WriteSTL(path, &kernel.Mesh{}))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, data, 84)
}

func TestWriteJSON(t *testing.T) {
	m := cubeMesh(t)
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, m))

	var got MeshData
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "cube", got.Name)
	assert.Len(t, got.Vertices, 36*3)
	assert.Len(t, got.Indices, 36)
	assert.Equal(t, [3]float64{-1, -1, -1}, got.Min)
	assert.Equal(t, [3]float64{1, 1, 1}, got.Max)
	assert.InDelta(t, 1.7320508, got.Radius, 1e-6)
}

func TestWriteJSONEmptyMeshHasArrays(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, &kernel.Mesh{}))
	assert.Contains(t, buf.String(), `"vertices": []`)
	assert.NotContains(t, buf.String(), "null")
}

func TestWriteFileJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "cube.json")
	require.NoError(t, WriteFile(path, FormatJSON, cubeMesh(t)))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, json.Valid(data))
}

func TestWriteFileUnknownFormat(t *testing.T) {
	err := WriteFile(filepath.Join(t.TempDir(), "x"), Format("obj"), cubeMesh(t))
	assert.Error(t, err)
}
