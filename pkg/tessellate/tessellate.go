// Package tessellate runs a plan against a geometry kernel and produces
// the triangle mesh of the faceted stock.
package tessellate

import (
	"fmt"
	"time"

	"github.com/chazu/facet/pkg/kernel"
	"github.com/chazu/facet/pkg/plan"
)

// DefaultMeshName names the mesh of an unnamed plan.
const DefaultMeshName = "facet"

// CutStat records one applied cut.
type CutStat struct {
	Name    string        // cut name, or "#i" if unnamed
	Elapsed time.Duration // time spent in Kernel.Cut
}

// Stats summarizes a run.
type Stats struct {
	Kernel    string
	Cuts      []CutStat
	Triangles int
	Elapsed   time.Duration // whole run, including ToMesh
}

// Result bundles the output of Run.
type Result struct {
	Mesh  *kernel.Mesh
	Stats Stats
	// Warnings are the advisory validation findings for the plan.
	Warnings []plan.ValidationError
}

// Tessellate cuts the plan's stock with every cut in order and returns
// the resulting mesh. The plan is never mutated.
func Tessellate(p *plan.Plan, k kernel.Kernel) (*kernel.Mesh, error) {
	res, err := Run(p, k)
	if err != nil {
		return nil, err
	}
	return res.Mesh, nil
}

// Run is Tessellate with statistics. A plan with error-severity
// validation findings is rejected before the kernel is touched.
func Run(p *plan.Plan, k kernel.Kernel) (*Result, error) {
	if p == nil {
		return nil, fmt.Errorf("tessellate: nil plan")
	}

	var warnings []plan.ValidationError
	for _, f := range plan.Validate(p) {
		if f.Severity == plan.SeverityError {
			return nil, fmt.Errorf("tessellate: invalid plan: %w", f)
		}
		warnings = append(warnings, f)
	}

	start := time.Now()
	res := &Result{
		Stats:    Stats{Kernel: k.Name(), Cuts: make([]CutStat, 0, len(p.Cuts))},
		Warnings: warnings,
	}

	solid := k.Cube(p.Stock.Size)
	for i, c := range p.Cuts {
		t := time.Now()
		next, err := k.Cut(solid, c.Point.Array(), c.Normal.Array(), c.Extent)
		if err != nil {
			return nil, fmt.Errorf("tessellate: cut %s: %w", c.Label(i), err)
		}
		solid = next
		res.Stats.Cuts = append(res.Stats.Cuts, CutStat{Name: c.Label(i), Elapsed: time.Since(t)})
	}

	mesh, err := k.ToMesh(solid)
	if err != nil {
		return nil, fmt.Errorf("tessellate: ToMesh failed: %w", err)
	}
	mesh.Name = p.Name
	if mesh.Name == "" {
		mesh.Name = DefaultMeshName
	}

	res.Mesh = mesh
	res.Stats.Triangles = mesh.TriangleCount()
	res.Stats.Elapsed = time.Since(start)
	return res, nil
}
