package plan

import (
	"fmt"
	"math"
)

// DefaultStockSize is the edge length of the stock cube when none is given.
const DefaultStockSize = 3.0

// DefaultExtent is the half-width of a cut's slab when none is given.
const DefaultExtent = 10.0

// Vec3 is a 3D vector.
type Vec3 struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

// Array returns v as a [3]float64, the form the kernel interface takes.
func (v Vec3) Array() [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

// Length returns the Euclidean length of v.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Scale returns v multiplied by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Normalized returns v scaled to unit length. The zero vector is returned
// unchanged.
func (v Vec3) Normalized() Vec3 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%g %g %g)", v.X, v.Y, v.Z)
}

// Stock describes the starting solid.
type Stock struct {
	Size float64 `json:"size" yaml:"size"` // cube edge length
}

// Cut is one slab subtraction.
type Cut struct {
	Name   string  `json:"name,omitempty" yaml:"name,omitempty"`
	Point  Vec3    `json:"point" yaml:"point"`
	Normal Vec3    `json:"normal" yaml:"normal"`
	Extent float64 `json:"extent" yaml:"extent"`
}

// Label returns the cut's name, or its position in the plan if unnamed.
func (c Cut) Label(i int) string {
	if c.Name != "" {
		return c.Name
	}
	return fmt.Sprintf("#%d", i)
}

// Plan is a complete faceting job.
type Plan struct {
	Name  string `json:"name,omitempty" yaml:"name,omitempty"`
	Stock Stock  `json:"stock" yaml:"stock"`
	Cuts  []Cut  `json:"cuts" yaml:"cuts"`
	// Version is set by the engine to the evaluation generation that
	// produced the plan. Zero for plans built by hand or loaded from disk.
	Version uint64 `json:"version,omitempty" yaml:"-"`
}

// New returns an empty plan over the default stock.
func New() *Plan {
	return &Plan{Stock: Stock{Size: DefaultStockSize}}
}

// AddCut appends a cut and returns its index.
func (p *Plan) AddCut(c Cut) int {
	p.Cuts = append(p.Cuts, c)
	return len(p.Cuts) - 1
}

// Lookup returns the first cut with the given name.
func (p *Plan) Lookup(name string) (Cut, bool) {
	for _, c := range p.Cuts {
		if c.Name == name {
			return c, true
		}
	}
	return Cut{}, false
}

// Clone returns a deep copy of p.
func (p *Plan) Clone() *Plan {
	out := *p
	out.Cuts = append([]Cut(nil), p.Cuts...)
	return &out
}
