// Package halfspace implements the kernel.Kernel interface with the
// polygon-clipping faceting kernel in package csg. Cuts are exact planar
// facets and the exported mesh has one flat-shaded triangle fan per face.
package halfspace

import (
	"fmt"

	"github.com/chazu/facet/pkg/csg"
	"github.com/chazu/facet/pkg/kernel"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Compile-time interface check.
var _ kernel.Kernel = (*HalfspaceKernel)(nil)

// meshSolid wraps a csg.Mesh to implement kernel.Solid.
type meshSolid struct {
	m *csg.Mesh
}

// BoundingBox returns the axis-aligned bounding box.
func (s *meshSolid) BoundingBox() (min, max [3]float64) {
	return s.m.BoundingBox()
}

// HalfspaceKernel implements kernel.Kernel using csg.
type HalfspaceKernel struct{}

// New returns a new HalfspaceKernel.
func New() *HalfspaceKernel {
	return &HalfspaceKernel{}
}

// Mesh returns the face mesh behind a solid produced by this kernel.
func Mesh(s kernel.Solid) *csg.Mesh {
	return unwrap(s)
}

func unwrap(s kernel.Solid) *csg.Mesh {
	return s.(*meshSolid).m
}

func wrap(m *csg.Mesh) kernel.Solid {
	return &meshSolid{m: m}
}

// Name returns "halfspace".
func (k *HalfspaceKernel) Name() string {
	return "halfspace"
}

// Cube creates a cube of six quad faces.
func (k *HalfspaceKernel) Cube(size float64) kernel.Solid {
	return wrap(csg.Cube(size))
}

// Cut subtracts a slab of half side extent from the solid.
func (k *HalfspaceKernel) Cut(s kernel.Solid, point, normal [3]float64, extent float64) (kernel.Solid, error) {
	slab, err := csg.Slab(toVec(point), toVec(normal), extent)
	if err != nil {
		return nil, err
	}
	m, err := unwrap(s).Subtract(slab)
	if err != nil {
		return nil, fmt.Errorf("halfspace: cut: %w", err)
	}
	return wrap(m), nil
}

// ToMesh fans each face into triangles.
func (k *HalfspaceKernel) ToMesh(s kernel.Solid) (*kernel.Mesh, error) {
	return unwrap(s).ToMesh()
}

func toVec(a [3]float64) v3.Vec {
	return v3.Vec{X: a[0], Y: a[1], Z: a[2]}
}
