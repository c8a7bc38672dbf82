// Package export writes kernel meshes to files.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chazu/facet/pkg/kernel"
	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Format is an output file format.
type Format string

const (
	FormatSTL  Format = "stl"  // binary STL
	FormatJSON Format = "json" // MeshData JSON
)

// ParseFormat returns the format named s, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatSTL, FormatJSON:
		return f, nil
	}
	return "", fmt.Errorf("export: unknown format %q (want stl or json)", s)
}

// FormatFromPath guesses the format from a file extension, falling back
// to def.
func FormatFromPath(path string, def Format) Format {
	if f, err := ParseFormat(strings.TrimPrefix(filepath.Ext(path), ".")); err == nil {
		return f
	}
	return def
}

// MeshData is the JSON form of a mesh.
type MeshData struct {
	Name     string     `json:"name"`
	Vertices []float32  `json:"vertices"`
	Normals  []float32  `json:"normals"`
	Indices  []uint32   `json:"indices"`
	Min      [3]float64 `json:"min"`
	Max      [3]float64 `json:"max"`
	Center   [3]float64 `json:"center"`
	Radius   float64    `json:"radius"`
}

// NewMeshData copies m into its JSON form with bounds filled in.
func NewMeshData(m *kernel.Mesh) MeshData {
	d := MeshData{
		Name:     m.Name,
		Vertices: m.Vertices,
		Normals:  m.Normals,
		Indices:  m.Indices,
	}
	if d.Vertices == nil {
		d.Vertices = []float32{}
	}
	if d.Normals == nil {
		d.Normals = []float32{}
	}
	if d.Indices == nil {
		d.Indices = []uint32{}
	}
	d.Min, d.Max = m.BoundingBox()
	d.Center, d.Radius = m.BoundingSphere()
	return d
}

// Triangles converts m to sdfx triangles.
func Triangles(m *kernel.Mesh) []*sdf.Triangle3 {
	tris := make([]*sdf.Triangle3, m.TriangleCount())
	for i := range tris {
		t := m.Triangle(i)
		tris[i] = &sdf.Triangle3{toVec(t[0]), toVec(t[1]), toVec(t[2])}
	}
	return tris
}

// WriteSTL writes m to path as binary STL.
func WriteSTL(path string, m *kernel.Mesh) error {
	if err := render.SaveSTL(path, Triangles(m)); err != nil {
		return fmt.Errorf("export: writing %s: %w", path, err)
	}
	return nil
}

// WriteJSON encodes m as indented MeshData JSON.
func WriteJSON(w io.Writer, m *kernel.Mesh) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewMeshData(m))
}

// WriteFile writes m to path in format f, creating parent directories.
func WriteFile(path string, f Format, m *kernel.Mesh) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	switch f {
	case FormatSTL:
		return WriteSTL(path, m)
	case FormatJSON:
		out, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := WriteJSON(out, m); err != nil {
			out.Close()
			return fmt.Errorf("export: writing %s: %w", path, err)
		}
		return out.Close()
	}
	return fmt.Errorf("export: unknown format %q", f)
}

func toVec(p [3]float64) v3.Vec {
	return v3.Vec{X: p[0], Y: p[1], Z: p[2]}
}
