package csg

import (
	"fmt"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Plane is an oriented plane with unit Normal. The signed distance of a
// point p is dot(Normal, p) - Offset; points with positive distance are
// in front of the plane, everything else is behind it.
type Plane struct {
	Normal v3.Vec
	Offset float64
}

// NewPlane returns the plane through point perpendicular to normal. The
// normal is normalized; a zero normal is ErrDegeneratePlane.
func NewPlane(point, normal v3.Vec) (Plane, error) {
	l := normal.Length()
	if l < Epsilon {
		return Plane{}, fmt.Errorf("normal %v: %w", normal, ErrDegeneratePlane)
	}
	n := normal.MulScalar(1 / l)
	return Plane{Normal: n, Offset: n.Dot(point)}, nil
}

// PlaneFromPoints returns the plane through a, b and c with normal
// normalize((b-a) x (c-a)), so a counter-clockwise triple faces the viewer.
func PlaneFromPoints(a, b, c v3.Vec) (Plane, error) {
	n := b.Sub(a).Cross(c.Sub(a))
	l := n.Length()
	if l < areaEpsilon {
		return Plane{}, fmt.Errorf("points %v %v %v: %w", a, b, c, ErrDegeneratePlane)
	}
	n = n.MulScalar(1 / l)
	return Plane{Normal: n, Offset: n.Dot(a)}, nil
}

// Distance returns the signed distance from the plane to p.
func (p Plane) Distance(q v3.Vec) float64 {
	return p.Normal.Dot(q) - p.Offset
}

// Negate flips the plane in place, swapping front and back.
func (p *Plane) Negate() {
	p.Normal = p.Normal.Neg()
	p.Offset = -p.Offset
}

// Negated returns a flipped copy of the plane.
func (p Plane) Negated() Plane {
	p.Negate()
	return p
}

// IntersectLine returns the point where segment a-b crosses the plane.
// The result is only meaningful when a and b are on opposite sides.
func (p Plane) IntersectLine(a, b v3.Vec) v3.Vec {
	da := p.Distance(a)
	db := p.Distance(b)
	t := da / (da - db)
	return a.Add(b.Sub(a).MulScalar(t))
}

func (p Plane) String() string {
	return fmt.Sprintf("plane(n=%.4g,%.4g,%.4g d=%.4g)", p.Normal.X, p.Normal.Y, p.Normal.Z, p.Offset)
}
