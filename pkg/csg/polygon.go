package csg

import (
	"fmt"
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Polygon is a planar convex face. Vertices are ordered counter-clockwise
// when viewed from the side the face points to. A polygon with no
// vertices is the empty result of clipping.
type Polygon struct {
	Vertices []v3.Vec
}

// NewPolygon returns a polygon owning a copy of vertices.
func NewPolygon(vertices ...v3.Vec) *Polygon {
	vs := make([]v3.Vec, len(vertices))
	copy(vs, vertices)
	return &Polygon{Vertices: vs}
}

// Clone returns a deep copy.
func (p *Polygon) Clone() *Polygon {
	return NewPolygon(p.Vertices...)
}

// IsEmpty reports whether the polygon has been clipped away.
func (p *Polygon) IsEmpty() bool {
	return len(p.Vertices) == 0
}

// Flip reverses the winding in place and returns p.
func (p *Polygon) Flip() *Polygon {
	vs := p.Vertices
	for i, j := 0, len(vs)-1; i < j; i, j = i+1, j-1 {
		vs[i], vs[j] = vs[j], vs[i]
	}
	return p
}

// Plane returns the supporting plane of the face, derived from its first
// three vertices. If those are collinear, which clipping can produce when
// a cut passes next to a vertex, the largest fan triangle from vertex 0
// is used instead.
func (p *Polygon) Plane() (Plane, error) {
	vs := p.Vertices
	if len(vs) < 3 {
		return Plane{}, fmt.Errorf("polygon with %d vertices: %w", len(vs), ErrInvalidPolygon)
	}
	pl, err := PlaneFromPoints(vs[0], vs[1], vs[2])
	if err == nil {
		return pl, nil
	}

	best, bestArea := -1, areaEpsilon
	for j := 3; j < len(vs); j++ {
		a := vs[j-1].Sub(vs[0]).Cross(vs[j].Sub(vs[0])).Length()
		if a >= bestArea {
			best, bestArea = j, a
		}
	}
	if best < 0 {
		return Plane{}, err
	}
	return PlaneFromPoints(vs[0], vs[best-1], vs[best])
}

// Normal returns the unit face normal by Newell's method, or the zero
// vector for a degenerate polygon.
func (p *Polygon) Normal() v3.Vec {
	n := p.newell()
	l := n.Length()
	if l < areaEpsilon {
		return v3.Vec{}
	}
	return n.MulScalar(1 / l)
}

// Area returns the surface area of the polygon.
func (p *Polygon) Area() float64 {
	return p.newell().Length() / 2
}

// Centroid returns the vertex average.
func (p *Polygon) Centroid() v3.Vec {
	var c v3.Vec
	if len(p.Vertices) == 0 {
		return c
	}
	for _, v := range p.Vertices {
		c = c.Add(v)
	}
	return c.MulScalar(1 / float64(len(p.Vertices)))
}

func (p *Polygon) newell() v3.Vec {
	var n v3.Vec
	vs := p.Vertices
	for i, cur := range vs {
		next := vs[(i+1)%len(vs)]
		n.X += (cur.Y - next.Y) * (cur.Z + next.Z)
		n.Y += (cur.Z - next.Z) * (cur.X + next.X)
		n.Z += (cur.X - next.X) * (cur.Y + next.Y)
	}
	return n
}

// ClipToPlane returns the part of p strictly in front of pl. A vertex on
// the plane counts as behind it. The result keeps the input order and may
// be empty.
func (p *Polygon) ClipToPlane(pl Plane) *Polygon {
	n := len(p.Vertices)
	front := make([]v3.Vec, 0, n+1)
	for i := 0; i < n; i++ {
		a := p.Vertices[i]
		b := p.Vertices[(i+1)%n]

		fa := pl.Distance(a) > 0
		fb := pl.Distance(b) > 0

		if fa {
			front = appendDistinct(front, a)
		}
		if fa != fb {
			front = appendDistinct(front, pl.IntersectLine(a, b))
		}
	}

	// The walk is cyclic, so the seam can repeat a point as well.
	if k := len(front); k > 1 && coincident(front[0], front[k-1]) {
		front = front[:k-1]
	}
	if len(front) < 3 {
		return &Polygon{}
	}
	return &Polygon{Vertices: front}
}

// Clip clips p against every plane of c in turn. The result is always a
// new polygon; once empty it stays empty.
func (p *Polygon) Clip(c *Clipper) *Polygon {
	out := p.Clone()
	for _, pl := range c.Planes {
		if out.IsEmpty() {
			break
		}
		out = out.ClipToPlane(pl)
	}
	return out
}

func appendDistinct(vs []v3.Vec, v v3.Vec) []v3.Vec {
	if k := len(vs); k > 0 && coincident(vs[k-1], v) {
		return vs
	}
	return append(vs, v)
}

func coincident(a, b v3.Vec) bool {
	return math.Abs(a.X-b.X) <= Epsilon &&
		math.Abs(a.Y-b.Y) <= Epsilon &&
		math.Abs(a.Z-b.Z) <= Epsilon
}
