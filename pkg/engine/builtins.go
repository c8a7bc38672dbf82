package engine

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/chazu/facet/pkg/plan"
	zygo "github.com/glycerine/zygomys/zygo"
)

// ---------------------------------------------------------------------------
// Custom Sexp types for passing Go values through the zygomys environment
// ---------------------------------------------------------------------------

// sexpVec3 wraps a plan.Vec3.
type sexpVec3 struct {
	vec plan.Vec3
}

func (v *sexpVec3) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(vec3 %g %g %g)", v.vec.X, v.vec.Y, v.vec.Z)
}
func (v *sexpVec3) Type() *zygo.RegisteredType { return nil }

// sexpStock is returned by `stock`.
type sexpStock struct {
	stock plan.Stock
}

func (s *sexpStock) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(stock :size %g)", s.stock.Size)
}
func (s *sexpStock) Type() *zygo.RegisteredType { return nil }

// sexpCutRef refers to a cut already appended to the plan.
type sexpCutRef struct {
	index int
	name  string
}

func (c *sexpCutRef) SexpString(ps *zygo.PrintState) string {
	if c.name != "" {
		return fmt.Sprintf("(cutref %q)", c.name)
	}
	return fmt.Sprintf("(cutref #%d)", c.index)
}
func (c *sexpCutRef) Type() *zygo.RegisteredType { return nil }

// ---------------------------------------------------------------------------
// Keyword argument parsing
// ---------------------------------------------------------------------------

// kwPrefix is the marker prepended to keyword names by preprocessSource.
const kwPrefix = "__kw_"

// isKW checks if a Sexp is a preprocessed keyword string.
// Returns the keyword name (without prefix) and true if it is.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", false
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], true
	}
	return "", false
}

// kwArgs holds the result of parsing a mixed positional+keyword argument list.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

// parseArgs separates args into keyword and positional arguments.
func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	i := 0
	for i < len(args) {
		name, ok := isKW(args[i])
		if !ok {
			result.positional = append(result.positional, args[i])
			i++
			continue
		}
		if i+1 < len(args) {
			result.kw[name] = args[i+1]
			i += 2
		} else {
			// Trailing keyword with no value.
			result.kw[name] = zygo.SexpNull
			i++
		}
	}
	return result
}

// float reads keyword k as a number, leaving dst untouched if absent.
func (a kwArgs) float(fn, k string, dst *float64) error {
	v, ok := a.kw[k]
	if !ok {
		return nil
	}
	f, err := toFloat64(v)
	if err != nil {
		return fmt.Errorf("%s: %s: %w", fn, k, err)
	}
	*dst = f
	return nil
}

// vec reads keyword k as a vec3. It reports whether k was present.
func (a kwArgs) vec(fn, k string, dst *plan.Vec3) (bool, error) {
	v, ok := a.kw[k]
	if !ok {
		return false, nil
	}
	vec, err := toVec3(v)
	if err != nil {
		return true, fmt.Errorf("%s: %s: %w", fn, k, err)
	}
	*dst = vec
	return true, nil
}

// str reads keyword k as a string, leaving dst untouched if absent.
func (a kwArgs) str(fn, k string, dst *string) error {
	v, ok := a.kw[k]
	if !ok {
		return nil
	}
	s, err := toString(v)
	if err != nil {
		return fmt.Errorf("%s: %s: %w", fn, k, err)
	}
	*dst = s
	return nil
}

// ---------------------------------------------------------------------------
// Value extraction helpers
// ---------------------------------------------------------------------------

// toFloat64 extracts a float64 from a Sexp (SexpInt or SexpFloat).
func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

// toString extracts a string from a Sexp.
func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected string, got %T (%s)", s, s.SexpString(nil))
}

// toVec3 extracts a Vec3 from a sexpVec3.
func toVec3(s zygo.Sexp) (plan.Vec3, error) {
	if v, ok := s.(*sexpVec3); ok {
		return v.vec, nil
	}
	return plan.Vec3{}, fmt.Errorf("expected vec3, got %T (%s)", s, s.SexpString(nil))
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// registerBuiltins installs the cut-script builtins into a zygomys
// environment. The builtins append to p as the script runs.
//
// Source code must be preprocessed with preprocessSource() before evaluation so
// that :keyword tokens are converted to recognizable string literals.
func registerBuiltins(env *zygo.Zlisp, p *plan.Plan) {
	stockSet := false

	// addCut appends c after checking what the kernel would reject anyway,
	// so the script author gets the line number.
	addCut := func(fn string, c plan.Cut) (zygo.Sexp, error) {
		if c.Normal.Length() == 0 {
			return zygo.SexpNull, fmt.Errorf("%s: normal must be non-zero", fn)
		}
		if c.Extent <= 0 {
			return zygo.SexpNull, fmt.Errorf("%s: extent must be positive, got %g", fn, c.Extent)
		}
		if c.Name != "" {
			if _, dup := p.Lookup(c.Name); dup {
				return zygo.SexpNull, fmt.Errorf("%s: a cut named %q already exists", fn, c.Name)
			}
		}
		i := p.AddCut(c)
		return &sexpCutRef{index: i, name: c.Name}, nil
	}

	// -----------------------------------------------------------------------
	// (vec3 1 2 3)
	// -----------------------------------------------------------------------
	env.AddFunction("vec3", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 3 {
			return zygo.SexpNull, fmt.Errorf("vec3 requires exactly 3 arguments, got %d", len(args))
		}

		var xyz [3]float64
		for i, axis := range []string{"x", "y", "z"} {
			f, err := toFloat64(args[i])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("vec3: %s: %w", axis, err)
			}
			xyz[i] = f
		}

		return &sexpVec3{vec: plan.Vec3{X: xyz[0], Y: xyz[1], Z: xyz[2]}}, nil
	})

	// -----------------------------------------------------------------------
	// (stock :size 3)
	// -----------------------------------------------------------------------
	env.AddFunction("stock", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if stockSet {
			return zygo.SexpNull, fmt.Errorf("stock: already defined")
		}
		if len(p.Cuts) > 0 {
			return zygo.SexpNull, fmt.Errorf("stock: must come before the first cut")
		}
		pa := parseArgs(args)

		size := p.Stock.Size
		if err := pa.float("stock", "size", &size); err != nil {
			return zygo.SexpNull, err
		}
		if size <= 0 {
			return zygo.SexpNull, fmt.Errorf("stock: size must be positive, got %g", size)
		}

		p.Stock.Size = size
		stockSet = true
		return &sexpStock{stock: p.Stock}, nil
	})

	// -----------------------------------------------------------------------
	// (cut :at (vec3 0 0 1) :normal (vec3 0 0 1) :extent 10 :name "top")
	// -----------------------------------------------------------------------
	env.AddFunction("cut", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		c := plan.Cut{Extent: plan.DefaultExtent}

		if ok, err := pa.vec("cut", "at", &c.Point); err != nil {
			return zygo.SexpNull, err
		} else if !ok {
			return zygo.SexpNull, fmt.Errorf("cut requires :at")
		}
		if ok, err := pa.vec("cut", "normal", &c.Normal); err != nil {
			return zygo.SexpNull, err
		} else if !ok {
			return zygo.SexpNull, fmt.Errorf("cut requires :normal")
		}
		if err := pa.float("cut", "extent", &c.Extent); err != nil {
			return zygo.SexpNull, err
		}
		if err := pa.str("cut", "name", &c.Name); err != nil {
			return zygo.SexpNull, err
		}

		return addCut("cut", c)
	})

	// -----------------------------------------------------------------------
	// (facet :normal (vec3 1 1 1) :depth 1.2 :extent 10 :name "corner")
	//
	// A cut whose plane sits depth units from the origin along normal.
	// -----------------------------------------------------------------------
	env.AddFunction("facet", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		c := plan.Cut{Extent: plan.DefaultExtent}
		depth := 1.0

		if ok, err := pa.vec("facet", "normal", &c.Normal); err != nil {
			return zygo.SexpNull, err
		} else if !ok {
			return zygo.SexpNull, fmt.Errorf("facet requires :normal")
		}
		if err := pa.float("facet", "depth", &depth); err != nil {
			return zygo.SexpNull, err
		}
		if err := pa.float("facet", "extent", &c.Extent); err != nil {
			return zygo.SexpNull, err
		}
		if err := pa.str("facet", "name", &c.Name); err != nil {
			return zygo.SexpNull, err
		}

		c.Point = c.Normal.Normalized().Scale(depth)
		return addCut("facet", c)
	})

	// -----------------------------------------------------------------------
	// (random-cuts :count 20 :seed 7 :depth 1 :jitter 0.25 :extent 10)
	//
	// Registered as "random_cuts"; the preprocessor rewrites the hyphen.
	// Returns the number of cuts added.
	// -----------------------------------------------------------------------
	env.AddFunction("random_cuts", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		opts := plan.DefaultRandomOptions()
		opts.StockSize = p.Stock.Size

		var count, seed float64
		if err := pa.float("random-cuts", "count", &count); err != nil {
			return zygo.SexpNull, err
		}
		if err := pa.float("random-cuts", "seed", &seed); err != nil {
			return zygo.SexpNull, err
		}
		if err := pa.float("random-cuts", "depth", &opts.MinDepth); err != nil {
			return zygo.SexpNull, err
		}
		if err := pa.float("random-cuts", "jitter", &opts.DepthJitter); err != nil {
			return zygo.SexpNull, err
		}
		if err := pa.float("random-cuts", "extent", &opts.Extent); err != nil {
			return zygo.SexpNull, err
		}
		if count > 0 {
			opts.MinCuts, opts.MaxCuts = int(count), 0
		}

		// A script is deterministic: an unseeded call still uses seed 0.
		r := plan.Random(rand.New(rand.NewSource(int64(seed))), opts)
		for _, c := range r.Cuts {
			c.Name = fmt.Sprintf("random-%d", len(p.Cuts)+1)
			if _, err := addCut("random-cuts", c); err != nil {
				return zygo.SexpNull, err
			}
		}
		return &zygo.SexpInt{Val: int64(len(r.Cuts))}, nil
	})

	// -----------------------------------------------------------------------
	// (cut-count)
	// -----------------------------------------------------------------------
	env.AddFunction("cut_count", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		return &zygo.SexpInt{Val: int64(len(p.Cuts))}, nil
	})
}
