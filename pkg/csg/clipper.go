package csg

import "fmt"

// Clipper is the set of face planes of a mesh. Clipping against it keeps
// what lies in front of every plane. Flipped, the planes of a convex mesh
// with outward faces keep exactly the mesh interior.
//
// Planes are copied by value, so flipping a clipper never touches the
// faces it was built from.
type Clipper struct {
	Planes []Plane
}

// NewClipper collects the supporting plane of every face of m.
func NewClipper(m *Mesh) (*Clipper, error) {
	c := &Clipper{Planes: make([]Plane, 0, len(m.Faces))}
	for i, f := range m.Faces {
		pl, err := f.Plane()
		if err != nil {
			return nil, fmt.Errorf("face %d: %w", i, err)
		}
		c.Planes = append(c.Planes, pl)
	}
	return c, nil
}

// Flip negates every plane in place and returns c.
func (c *Clipper) Flip() *Clipper {
	for i := range c.Planes {
		c.Planes[i].Negate()
	}
	return c
}
