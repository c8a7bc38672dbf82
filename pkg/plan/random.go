package plan

import (
	"fmt"
	"math/rand"
)

// RandomOptions controls Random.
type RandomOptions struct {
	StockSize float64 // default DefaultStockSize
	MinCuts   int     // default 5
	MaxCuts   int     // exclusive; default 55
	// Cut planes sit at a distance in [MinDepth, MinDepth+DepthJitter)
	// from the origin along their normal.
	MinDepth    float64 // default 1
	DepthJitter float64 // default 0.25
	Extent      float64 // default DefaultExtent
}

// DefaultRandomOptions returns the options that shave a size-3 cube into
// a rough gem.
func DefaultRandomOptions() RandomOptions {
	return RandomOptions{
		StockSize:   DefaultStockSize,
		MinCuts:     5,
		MaxCuts:     55,
		MinDepth:    1,
		DepthJitter: 0.25,
		Extent:      DefaultExtent,
	}
}

// Random builds a plan of cuts with uniformly random directions. The same
// source state always yields the same plan. With MaxCuts <= MinCuts the
// plan has exactly MinCuts cuts.
func Random(rng *rand.Rand, opts RandomOptions) *Plan {
	def := DefaultRandomOptions()
	if opts.StockSize <= 0 {
		opts.StockSize = def.StockSize
	}
	if opts.MinCuts <= 0 && opts.MaxCuts <= 0 {
		opts.MinCuts, opts.MaxCuts = def.MinCuts, def.MaxCuts
	}
	if opts.MinDepth <= 0 {
		opts.MinDepth = def.MinDepth
	}
	if opts.DepthJitter < 0 {
		opts.DepthJitter = 0
	}
	if opts.Extent <= 0 {
		opts.Extent = def.Extent
	}

	n := opts.MinCuts
	if opts.MaxCuts > opts.MinCuts {
		n += rng.Intn(opts.MaxCuts - opts.MinCuts)
	}

	p := &Plan{
		Name:  "random",
		Stock: Stock{Size: opts.StockSize},
		Cuts:  make([]Cut, 0, n),
	}
	for i := 0; i < n; i++ {
		dir := randomDirection(rng)
		depth := opts.MinDepth + rng.Float64()*opts.DepthJitter
		p.Cuts = append(p.Cuts, Cut{
			Name:   fmt.Sprintf("facet-%d", i+1),
			Point:  dir.Scale(depth),
			Normal: dir,
			Extent: opts.Extent,
		})
	}
	return p
}

// randomDirection returns a unit vector from a cube-uniform sample,
// rejecting samples too short to normalize.
func randomDirection(rng *rand.Rand) Vec3 {
	for {
		v := Vec3{
			X: rng.Float64()*2 - 1,
			Y: rng.Float64()*2 - 1,
			Z: rng.Float64()*2 - 1,
		}
		if v.Length() > 1e-6 {
			return v.Normalized()
		}
	}
}
