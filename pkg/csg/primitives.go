package csg

import (
	"fmt"
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Cube returns an axis-aligned cube with edge size centred on the origin.
// Faces are wound outward.
func Cube(size float64) *Mesh {
	s := size / 2
	v := [8]v3.Vec{
		{X: -s, Y: -s, Z: -s},
		{X: s, Y: -s, Z: -s},
		{X: -s, Y: s, Z: -s},
		{X: s, Y: s, Z: -s},
		{X: -s, Y: -s, Z: s},
		{X: s, Y: -s, Z: s},
		{X: -s, Y: s, Z: s},
		{X: s, Y: s, Z: s},
	}
	return NewMesh(
		NewPolygon(v[0], v[4], v[6], v[2]), // -x
		NewPolygon(v[1], v[3], v[7], v[5]), // +x
		NewPolygon(v[0], v[1], v[5], v[4]), // -y
		NewPolygon(v[2], v[6], v[7], v[3]), // +y
		NewPolygon(v[0], v[2], v[3], v[1]), // -z
		NewPolygon(v[4], v[5], v[7], v[6]), // +z
	)
}

// Slab returns a single square face of side 2*extent centred on point and
// perpendicular to normal. The face is wound so that its plane points
// along normal; subtracting the slab removes everything on the normal
// side of point.
func Slab(point, normal v3.Vec, extent float64) (*Mesh, error) {
	if !(extent > 0) {
		return nil, fmt.Errorf("csg: slab extent %g must be positive", extent)
	}
	pl, err := NewPlane(point, normal)
	if err != nil {
		return nil, fmt.Errorf("csg: slab: %w", err)
	}
	n := pl.Normal

	// u and w span the face with u x w along n.
	u := seedAxis(n).Cross(n)
	u = u.MulScalar(extent / u.Length())
	w := n.Cross(u)

	return NewMesh(NewPolygon(
		point.Sub(u).Sub(w),
		point.Add(u).Sub(w),
		point.Add(u).Add(w),
		point.Sub(u).Add(w),
	)), nil
}

// seedAxis returns the coordinate axis least aligned with unit vector n.
func seedAxis(n v3.Vec) v3.Vec {
	ax, ay, az := math.Abs(n.X), math.Abs(n.Y), math.Abs(n.Z)
	switch {
	case ax <= ay && ax <= az:
		return v3.Vec{X: 1}
	case ay <= az:
		return v3.Vec{Y: 1}
	default:
		return v3.Vec{Z: 1}
	}
}
