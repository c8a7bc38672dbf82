// Package kernel defines the abstract faceting kernel interface.
// Implementations (halfspace, sdfx, manifold) start from a cube of stock
// and remove half-spaces from it behind this interface. The kernel
// abstraction allows swapping backends without changing the rest of the
// system.
package kernel

// Solid is an opaque handle to a geometry kernel solid.
// Implementations wrap their internal representation.
type Solid interface {
	// BoundingBox returns the axis-aligned bounding box.
	BoundingBox() (min, max [3]float64)
}

// Kernel is the abstract faceting kernel interface.
type Kernel interface {
	// Name identifies the backend in logs and results.
	Name() string

	// Cube returns an axis-aligned cube with edge size centred on the origin.
	Cube(size float64) Solid

	// Cut removes everything on the normal side of the plane through point.
	// Extent is the half side of the cutting slab; backends that cut with
	// an infinite plane ignore it.
	Cut(s Solid, point, normal [3]float64, extent float64) (Solid, error)

	// ToMesh converts a solid to a triangle mesh.
	ToMesh(s Solid) (*Mesh, error)
}
