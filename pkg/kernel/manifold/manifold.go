//go:build manifold

// Package manifold provides a CGo-based faceting kernel binding to the
// Manifold library (https://github.com/elalish/manifold). Manifold trims
// with guaranteed-manifold output and shares vertices between triangles.
//
// This package requires the Manifold C library (manifoldc) to be installed.
// Build with: go build -tags=manifold
package manifold

/*
#cgo CFLAGS: -I/usr/local/include
#cgo LDFLAGS: -L/usr/local/lib -lmanifoldc

#include <stdlib.h>
#include <manifold/manifoldc.h>
*/
import "C"

import (
	"fmt"
	"math"
	"runtime"
	"unsafe"

	"github.com/chazu/facet/pkg/kernel"
)

// Compile-time interface checks.
var _ kernel.Kernel = (*ManifoldKernel)(nil)
var _ kernel.Solid = (*manifoldSolid)(nil)

// manifoldSolid wraps a C ManifoldManifold pointer and implements kernel.Solid.
type manifoldSolid struct {
	ptr *C.ManifoldManifold
}

// BoundingBox returns the axis-aligned bounding box of the solid.
func (s *manifoldSolid) BoundingBox() (min, max [3]float64) {
	alloc := C.manifold_alloc_box()
	bbox := C.manifold_bounding_box(alloc, s.ptr)
	defer C.manifold_delete_box(bbox)

	min[0] = float64(C.manifold_box_min_x(bbox))
	min[1] = float64(C.manifold_box_min_y(bbox))
	min[2] = float64(C.manifold_box_min_z(bbox))
	max[0] = float64(C.manifold_box_max_x(bbox))
	max[1] = float64(C.manifold_box_max_y(bbox))
	max[2] = float64(C.manifold_box_max_z(bbox))
	return min, max
}

// newSolid wraps a C ManifoldManifold pointer with Go-side finalizer
// for automatic memory management.
func newSolid(ptr *C.ManifoldManifold) *manifoldSolid {
	s := &manifoldSolid{ptr: ptr}
	runtime.SetFinalizer(s, func(s *manifoldSolid) {
		if s.ptr != nil {
			C.manifold_delete_manifold(s.ptr)
			s.ptr = nil
		}
	})
	return s
}

// ManifoldKernel implements kernel.Kernel using the Manifold C library.
type ManifoldKernel struct{}

// New creates a new ManifoldKernel. Returns an error if the Manifold
// C library cannot be initialized.
func New() (kernel.Kernel, error) {
	return &ManifoldKernel{}, nil
}

// Name returns "manifold".
func (k *ManifoldKernel) Name() string {
	return "manifold"
}

// Cube creates a cube with edge size centred on the origin.
func (k *ManifoldKernel) Cube(size float64) kernel.Solid {
	alloc := C.manifold_alloc_manifold()
	ptr := C.manifold_cube(alloc,
		C.double(size), C.double(size), C.double(size),
		C.int(1), // center=true
	)
	return newSolid(ptr)
}

// Cut trims the solid by the plane through point. Manifold keeps the side
// the trim normal points to, so the normal is inverted and the offset is
// measured along the inverted normal. Extent is ignored.
func (k *ManifoldKernel) Cut(s kernel.Solid, point, normal [3]float64, extent float64) (kernel.Solid, error) {
	l := math.Sqrt(normal[0]*normal[0] + normal[1]*normal[1] + normal[2]*normal[2])
	if l == 0 {
		return nil, fmt.Errorf("manifold: cut with zero normal")
	}
	nx, ny, nz := -normal[0]/l, -normal[1]/l, -normal[2]/l
	offset := nx*point[0] + ny*point[1] + nz*point[2]

	ms := s.(*manifoldSolid)
	alloc := C.manifold_alloc_manifold()
	ptr := C.manifold_trim_by_plane(alloc, ms.ptr,
		C.double(nx), C.double(ny), C.double(nz),
		C.double(offset),
	)
	return newSolid(ptr), nil
}

// ToMesh extracts the triangles of the solid from Manifold's MeshGL
// format. MeshGL shares vertices between triangles; the result does not,
// so every triangle gets three fresh vertices carrying its flat normal.
func (k *ManifoldKernel) ToMesh(s kernel.Solid) (*kernel.Mesh, error) {
	ms := s.(*manifoldSolid)

	meshAlloc := C.manifold_alloc_meshgl()
	meshGL := C.manifold_get_meshgl(meshAlloc, ms.ptr)
	defer C.manifold_delete_meshgl(meshGL)

	numVert := int(C.manifold_meshgl_num_vert(meshGL))
	numTri := int(C.manifold_meshgl_num_tri(meshGL))
	if numVert == 0 || numTri == 0 {
		return &kernel.Mesh{}, nil
	}

	// The first 3 of numProp properties per vertex are the position.
	numProp := int(C.manifold_meshgl_num_prop(meshGL))
	if numProp < 3 {
		return nil, fmt.Errorf("manifold: meshgl has %d vertex properties, want >= 3", numProp)
	}
	props := make([]float32, numVert*numProp)
	C.manifold_meshgl_vert_properties(
		(*C.float)(unsafe.Pointer(&props[0])),
		meshGL,
	)
	triVerts := make([]uint32, numTri*3)
	C.manifold_meshgl_tri_verts(
		(*C.uint32_t)(unsafe.Pointer(&triVerts[0])),
		meshGL,
	)

	mesh := &kernel.Mesh{
		Vertices: make([]float32, 0, numTri*9),
		Normals:  make([]float32, 0, numTri*9),
		Indices:  make([]uint32, 0, numTri*3),
	}
	for t := 0; t < numTri; t++ {
		var p [3][3]float64
		for j := 0; j < 3; j++ {
			base := int(triVerts[t*3+j]) * numProp
			if base+2 >= len(props) {
				return nil, fmt.Errorf("manifold: triangle %d references vertex %d of %d", t, triVerts[t*3+j], numVert)
			}
			p[j] = [3]float64{float64(props[base]), float64(props[base+1]), float64(props[base+2])}
		}
		n := flatNormal(p)
		for j := 0; j < 3; j++ {
			mesh.Vertices = append(mesh.Vertices, float32(p[j][0]), float32(p[j][1]), float32(p[j][2]))
			mesh.Normals = append(mesh.Normals, n[0], n[1], n[2])
			mesh.Indices = append(mesh.Indices, uint32(t*3+j))
		}
	}
	return mesh, nil
}

// flatNormal returns the unit normal of a triangle, or zero if degenerate.
func flatNormal(p [3][3]float64) [3]float32 {
	e1 := [3]float64{p[1][0] - p[0][0], p[1][1] - p[0][1], p[1][2] - p[0][2]}
	e2 := [3]float64{p[2][0] - p[0][0], p[2][1] - p[0][1], p[2][2] - p[0][2]}
	nx := e1[1]*e2[2] - e1[2]*e2[1]
	ny := e1[2]*e2[0] - e1[0]*e2[2]
	nz := e1[0]*e2[1] - e1[1]*e2[0]
	l := math.Sqrt(nx*nx + ny*ny + nz*nz)
	if l < 1e-12 {
		return [3]float32{}
	}
	return [3]float32{float32(nx / l), float32(ny / l), float32(nz / l)}
}
